package confirm

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-stickies/internal/tui/theme"
)

// --- Messages ---

// ConfirmedMsg is sent when the user confirms the action.
type ConfirmedMsg struct{ Tag string }

// CancelledMsg is sent when the user cancels the action.
type CancelledMsg struct{ Tag string }

// --- Model ---

// Model represents a yes/no dialog. Tag identifies what is being confirmed
// so one dialog can serve several prompts.
type Model struct {
	Active bool
	Prompt string
	Tag    string
	keys   keyMap
}

// New creates a new confirmation dialog model.
func New() Model {
	return Model{
		keys: defaultKeyMap,
	}
}

// Activate prepares the dialog for display with a given prompt.
func (m *Model) Activate(tag, prompt string) {
	m.Tag = tag
	m.Prompt = prompt
	m.Active = true
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m.resolve(true)
		case key.Matches(msg, m.keys.Cancel):
			return m.resolve(false)
		}
	}

	return m, nil
}

// Click resolves the dialog from a mouse press at (x, y), relative to the
// dialog's top-left corner. Presses outside the buttons are ignored.
func (m Model) Click(x, y int) (Model, tea.Cmd) {
	if !m.Active {
		return m, nil
	}
	yes, no := m.buttonAreas()
	switch {
	case yes.contains(x, y):
		return m.resolve(true)
	case no.contains(x, y):
		return m.resolve(false)
	}
	return m, nil
}

func (m Model) resolve(ok bool) (Model, tea.Cmd) {
	tag := m.Tag
	m.Active = false
	if ok {
		return m, func() tea.Msg { return ConfirmedMsg{Tag: tag} }
	}
	return m, func() tea.Msg { return CancelledMsg{Tag: tag} }
}

// --- View ---

const (
	yesLabel = "[y] yes"
	noLabel  = "[n] no"
)

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.DefaultTheme.Colors.Orange).
	Padding(1, 2)

func (m Model) View() string {
	if !m.Active {
		return ""
	}
	buttons := theme.DefaultTheme.Highlight.Render(yesLabel) + "   " + theme.DefaultTheme.Muted.Render(noLabel)
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.Prompt, "", buttons))
}

type area struct{ x, y, w int }

func (a area) contains(x, y int) bool {
	return y == a.y && x >= a.x && x < a.x+a.w
}

// buttonAreas locates the buttons inside View: one border line, one line
// of padding, the prompt and a blank line above them; one border column and
// two columns of padding to their left.
func (m Model) buttonAreas() (yes, no area) {
	row := 1 + 1 + lipgloss.Height(m.Prompt) + 1
	col := 1 + 2
	yes = area{x: col, y: row, w: len(yesLabel)}
	no = area{x: col + len(yesLabel) + 3, y: row, w: len(noLabel)}
	return yes, no
}

// --- KeyMap ---

type keyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var defaultKeyMap = keyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}
