package notes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-stickies/internal/tui/notes/components/confirm"
	"github.com/mattsolo1/grove-stickies/pkg/board"
	"github.com/mattsolo1/grove-stickies/pkg/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeInputs()
		m.ensureCursorVisible()
		return m, nil

	case PaletteChangedMsg:
		if err := m.store.SetPalette(msg.Palette); err != nil {
			m.log.WithError(err).Warn("Palette change rejected")
			m.setStatus(fmt.Sprintf("Palette not applied: %v", err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Palette updated (%d colors)", len(msg.Palette)), false)
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Copied note #%d", msg.id), false)
		}
		return m, nil

	case confirm.ConfirmedMsg:
		if msg.Tag == quitTag {
			return m, tea.Quit
		}
		return m, nil

	case confirm.CancelledMsg:
		m.setStatus("", false)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.confirm.Active {
			m.confirm, cmd = m.confirm.Update(msg)
			return m, cmd
		}
		if m.help.ShowAll {
			m.help.ShowAll = false
			return m, nil
		}

		ui := m.store.UI()
		switch {
		case ui.EditorOpen:
			return m.handleModalKey(msg)
		case ui.ComposeOpen:
			return m.handleComposeKey(msg)
		case ui.ColorPickerOpen:
			if handled, next, cmd := m.handlePickerKey(msg); handled {
				return next, cmd
			}
		}
		return m.handleBoardKey(msg)
	}

	// Forward everything else (cursor blink and the like) to the focused
	// input.
	return m.updateFocusedInput(msg)
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Submit):
		m.router.Click(board.ModalClose{}, board.Point{})
		m.reconcile()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.modalField = 1 - m.modalField
		m.reconcile()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		// Leaving the form is an outside click: a pending draft is kept as
		// a note, an empty form just closes.
		m.router.Click(board.Background{}, board.Point{})
		m.reconcile()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.router.Submit()
		m.reconcile()
		return m, nil
	case key.Matches(msg, m.keys.Discard):
		m.router.Click(board.ComposeClose{}, board.Point{})
		m.reconcile()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.composeField = 1 - m.composeField
		m.reconcile()
		return m, nil
	case msg.Type == tea.KeyEnter && m.composeField == 0:
		m.composeField = 1
		m.reconcile()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.store.CloseColorPicker()
		m.reconcile()
		return true, m, nil
	case key.Matches(msg, m.keys.Swatch):
		idx := int(msg.Runes[0] - '1')
		c, ok := m.store.Palette().At(idx)
		if !ok {
			return true, m, nil
		}
		area, _ := m.swatchArea(c)
		m.router.Click(board.Swatch{Color: c}, area.origin())
		m.store.CloseColorPicker()
		m.reconcile()
		return true, m, nil
	}
	return false, m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rm := m.store.RenderModel()
	current, hasCurrent := m.current(rm)

	switch {
	case key.Matches(msg, m.keys.Quit):
		if len(rm.Notes) == 0 {
			return m, tea.Quit
		}
		m.confirm.Activate(quitTag, "Quit? Notes are not saved.")
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		return m, nil
	case key.Matches(msg, m.keys.Compose):
		m.composeField = 0
		m.router.Click(board.ComposeForm{}, board.Point{})
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns(), len(rm.Notes))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns(), len(rm.Notes))
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, len(rm.Notes))
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, len(rm.Notes))
	case !hasCurrent:
		return m, nil
	case key.Matches(msg, m.keys.Open):
		m.modalField = 0
		m.router.Click(board.NoteCard{ID: current.ID}, board.Point{})
	case key.Matches(msg, m.keys.Delete):
		m.router.Click(board.DeleteIcon{ID: current.ID}, board.Point{})
		m.setStatus(fmt.Sprintf("Deleted note #%d", current.ID), false)
	case key.Matches(msg, m.keys.Color):
		area, _ := m.iconArea(current.ID)
		m.router.Click(board.ColorIcon{ID: current.ID}, area.origin())
	case key.Matches(msg, m.keys.Yank):
		return m, copyNoteCmd(current)
	default:
		return m, nil
	}

	m.reconcile()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll {
		return m, nil
	}

	f := m.layout(m.store.RenderModel())

	if m.confirm.Active {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Click(msg.X-f.dialog.x, msg.Y-f.dialog.y)
		return m, cmd
	}

	target, area := f.targetAt(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-1, f)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(1, f)
		return m, nil
	case msg.Action == tea.MouseActionMotion:
		m.router.Hover(target, area.origin())
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.log.WithField("target", target.Kind()).Debug("Click")
		m.focusFor(target)
		m.router.Click(target, area.origin())
	default:
		return m, nil
	}

	m.reconcile()
	return m, nil
}

// focusFor moves the cursor or input focus to where a click landed.
func (m *Model) focusFor(t board.Target) {
	rm := m.store.RenderModel()
	switch t := t.(type) {
	case board.NoteCard:
		m.modalField = 0
		for i, v := range rm.Notes {
			if v.ID == t.ID {
				m.cursor = i
			}
		}
	case board.ComposeForm:
		if !rm.UI.ComposeOpen {
			m.composeField = 0
		}
	}
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	ui := m.store.UI()
	switch {
	case ui.EditorOpen:
		if m.modalField == 0 {
			m.modalTitle, cmd = m.modalTitle.Update(msg)
		} else {
			m.modalBody, cmd = m.modalBody.Update(msg)
		}
		m.store.SetModalFields(m.modalTitle.Value(), m.modalBody.Value())
	case ui.ComposeOpen:
		if m.composeField == 0 {
			m.titleInput, cmd = m.titleInput.Update(msg)
		} else {
			m.bodyInput, cmd = m.bodyInput.Update(msg)
		}
		m.store.SetDraft(m.titleInput.Value(), m.bodyInput.Value())
	}
	return m, cmd
}

// reconcile brings the widgets back in line with the store after a
// command: inputs mirror the draft and modal fields, focus follows the open
// form, and the cursor stays on an existing note.
func (m *Model) reconcile() {
	rm := m.store.RenderModel()
	ui := rm.UI

	if m.titleInput.Value() != ui.DraftTitle {
		m.titleInput.SetValue(ui.DraftTitle)
	}
	if m.bodyInput.Value() != ui.DraftBody {
		m.bodyInput.SetValue(ui.DraftBody)
	}
	if m.modalTitle.Value() != ui.ModalTitle {
		m.modalTitle.SetValue(ui.ModalTitle)
	}
	if m.modalBody.Value() != ui.ModalBody {
		m.modalBody.SetValue(ui.ModalBody)
	}

	m.titleInput.Blur()
	m.bodyInput.Blur()
	m.modalTitle.Blur()
	m.modalBody.Blur()
	switch {
	case ui.EditorOpen && m.modalField == 0:
		m.modalTitle.Focus()
	case ui.EditorOpen:
		m.modalBody.Focus()
	case ui.ComposeOpen && m.composeField == 0:
		m.titleInput.Focus()
	case ui.ComposeOpen:
		m.bodyInput.Focus()
	}

	if m.cursor >= len(rm.Notes) {
		m.cursor = len(rm.Notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m Model) current(rm board.RenderModel) (board.NoteView, bool) {
	if m.cursor < 0 || m.cursor >= len(rm.Notes) {
		return board.NoteView{}, false
	}
	return rm.Notes[m.cursor], true
}

func (m *Model) moveCursor(delta, count int) {
	if count == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= count {
		return
	}
	m.cursor = next
}

func (m *Model) scroll(delta int, f frame) {
	next := m.scrollRow + delta
	if next < 0 || next >= f.cardRows {
		return
	}
	m.scrollRow = next
}

// ensureCursorVisible scrolls the card rows so the cursor's row is on
// screen.
func (m *Model) ensureCursorVisible() {
	row := m.cursor / m.columns()
	if row < m.scrollRow {
		m.scrollRow = row
		return
	}
	for i := 0; i < 64; i++ {
		f := m.layout(m.store.RenderModel())
		if f.visibleRows == 0 || row < m.scrollRow+f.visibleRows {
			return
		}
		m.scrollRow++
	}
}

// iconArea locates the color icon of a note on the current screen.
func (m Model) iconArea(id models.ID) (rect, bool) {
	f := m.layout(m.store.RenderModel())
	return f.find(func(t board.Target) bool {
		icon, ok := t.(board.ColorIcon)
		return ok && icon.ID == id
	})
}

func (m Model) swatchArea(c models.Color) (rect, bool) {
	f := m.layout(m.store.RenderModel())
	return f.find(func(t board.Target) bool {
		s, ok := t.(board.Swatch)
		return ok && s.Color == c
	})
}

func copyNoteCmd(v board.NoteView) tea.Cmd {
	text := v.Body
	if v.HasTitle {
		text = v.Title + "\n\n" + v.Body
	}
	return func() tea.Msg {
		return clipboardResultMsg{id: v.ID, err: copyText(text)}
	}
}
