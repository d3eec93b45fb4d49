package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/mattsolo1/grove-stickies/internal/tui/theme"
	"github.com/mattsolo1/grove-stickies/pkg/board"
)

const (
	deleteLabel = "[del]"
	colorLabel  = "[color]"
	closeLabel  = "[close]"
	cardGap     = 1
)

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) origin() board.Point {
	return board.Point{X: r.x, Y: r.y}
}

type hit struct {
	area   rect
	target board.Target
}

// frame is one laid-out screen: the lines to draw and the clickable areas
// on them. Later hits sit on top of earlier ones.
type frame struct {
	lines []string
	hits  []hit
	// cardRows is the number of card rows on the board and visibleRows how
	// many of them fit on screen starting at the scroll position.
	cardRows    int
	visibleRows int
	columns     int
	// dialog is where the confirm dialog was drawn, if it is up.
	dialog rect
}

func (f *frame) add(area rect, t board.Target) {
	f.hits = append(f.hits, hit{area: area, target: t})
}

func (f *frame) appendBlock(block string) int {
	top := len(f.lines)
	f.lines = append(f.lines, strings.Split(block, "\n")...)
	return top
}

// targetAt classifies the innermost element under (x, y). Anything not
// covered resolves to the background.
func (f frame) targetAt(x, y int) (board.Target, rect) {
	for i := len(f.hits) - 1; i >= 0; i-- {
		if f.hits[i].area.contains(x, y) {
			return f.hits[i].target, f.hits[i].area
		}
	}
	return board.Background{}, rect{x: x, y: y, w: 1, h: 1}
}

// find returns the area of the first hit matching pred.
func (f frame) find(pred func(board.Target) bool) (rect, bool) {
	for _, h := range f.hits {
		if pred(h.target) {
			return h.area, true
		}
	}
	return rect{}, false
}

func (f frame) String() string {
	return strings.Join(f.lines, "\n")
}

// layout renders the board for rm and records every clickable area.
func (m Model) layout(rm board.RenderModel) frame {
	var f frame

	header := theme.DefaultTheme.Header.Render("Stickies")
	if n := len(rm.Notes); n > 0 {
		header += theme.DefaultTheme.Muted.Render(fmt.Sprintf("  %d note(s)", n))
	}
	f.appendBlock(header)
	f.appendBlock("")

	m.layoutCompose(&f, rm)
	f.appendBlock("")

	footer := m.footer()
	footerHeight := lipgloss.Height(footer)
	m.layoutCards(&f, rm, footerHeight)

	if m.height > 0 {
		for len(f.lines) < m.height-footerHeight {
			f.lines = append(f.lines, "")
		}
	}
	f.appendBlock(footer)

	if rm.UI.ColorPickerOpen && rm.UI.ColorPickerAnchor != nil {
		m.layoutColorPicker(&f, rm)
	}
	if rm.UI.EditorOpen {
		m.layoutModal(&f, rm)
	}
	if m.confirm.Active {
		view := m.confirm.View()
		x, y := overlayCenter(&f, view, m.screenWidth())
		f.dialog = rect{x: x, y: y, w: lipgloss.Width(view), h: lipgloss.Height(view)}
	}
	return f
}

func (m Model) screenWidth() int {
	if m.width > 0 {
		return m.width
	}
	return m.formWidth() + 2
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

func (m Model) layoutCompose(f *frame, rm board.RenderModel) {
	width := m.formWidth()
	style := boxStyle.Width(width - 2).BorderForeground(theme.DefaultTheme.Colors.Muted)

	var content string
	if rm.UI.ComposeOpen {
		style = style.BorderForeground(theme.DefaultTheme.Colors.Orange)
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.titleInput.View(),
			m.bodyInput.View(),
			theme.DefaultTheme.Muted.Render(closeLabel)+"  "+
				theme.DefaultTheme.Muted.Render("ctrl+s save · esc done"),
		)
	} else {
		content = theme.DefaultTheme.Muted.Render("Take a note...")
	}

	box := style.Render(content)
	top := f.appendBlock(box)
	height := lipgloss.Height(box)
	f.add(rect{x: 0, y: top, w: width, h: height}, board.ComposeForm{})
	if rm.UI.ComposeOpen {
		f.add(rect{x: 2, y: top + height - 2, w: len(closeLabel), h: 1}, board.ComposeClose{})
	}
}

func (m Model) columns() int {
	if m.width <= 0 {
		return 1
	}
	cols := (m.width + cardGap) / (m.cardWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m Model) layoutCards(f *frame, rm board.RenderModel, footerHeight int) {
	if rm.Placeholder {
		f.appendBlock(theme.DefaultTheme.Muted.Render("  Notes you add appear here"))
		return
	}

	cols := m.columns()
	f.columns = cols
	f.cardRows = (len(rm.Notes) + cols - 1) / cols

	budget := -1
	if m.height > 0 {
		// One line is kept for the scroll indicator.
		budget = m.height - len(f.lines) - footerHeight - 1
	}

	start := m.scrollRow
	if start >= f.cardRows {
		start = f.cardRows - 1
	}
	if start < 0 {
		start = 0
	}

	for row := start; row < f.cardRows; row++ {
		first := row * cols
		last := first + cols
		if last > len(rm.Notes) {
			last = len(rm.Notes)
		}

		cards := make([]string, 0, cols*2)
		for i := first; i < last; i++ {
			if i > first {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(rm.Notes[i], i == m.cursor))
		}
		rowBlock := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		rowHeight := lipgloss.Height(rowBlock)
		if budget >= 0 && row > start && rowHeight > budget {
			break
		}

		top := f.appendBlock(rowBlock)
		budget -= rowHeight
		f.visibleRows++

		for i := first; i < last; i++ {
			v := rm.Notes[i]
			x := (i - first) * (m.cardWidth + cardGap)
			h := lipgloss.Height(m.renderCard(v, i == m.cursor))
			toolbar := top + h - 2
			f.add(rect{x: x, y: top, w: m.cardWidth, h: h}, board.NoteCard{ID: v.ID})
			f.add(rect{x: x + 2, y: toolbar, w: len(deleteLabel), h: 1}, board.DeleteIcon{ID: v.ID})
			f.add(rect{x: x + 2 + len(deleteLabel) + 1, y: toolbar, w: len(colorLabel), h: 1}, board.ColorIcon{ID: v.ID})
		}
	}

	if f.visibleRows < f.cardRows {
		f.appendBlock(theme.DefaultTheme.Muted.Render(
			fmt.Sprintf(" (rows %d-%d of %d)", start+1, start+f.visibleRows, f.cardRows)))
	}
}

func (m Model) renderCard(v board.NoteView, atCursor bool) string {
	inner := m.cardWidth - 4
	fg := theme.NoteForeground
	bg := theme.NoteBackground(v.Color)

	var lines []string
	if v.HasTitle {
		title := runewidth.Truncate(firstLine(v.Title), inner, "…")
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(title))
	}
	if v.Body != "" {
		wrapped := strings.Split(runewidth.Wrap(v.Body, inner), "\n")
		if len(wrapped) > cardBodyMaxLines {
			wrapped = wrapped[:cardBodyMaxLines]
			last := wrapped[cardBodyMaxLines-1]
			wrapped[cardBodyMaxLines-1] = runewidth.Truncate(last+" …", inner, "…")
		}
		lines = append(lines, wrapped...)
	}
	lines = append(lines, deleteLabel+" "+colorLabel)

	border := lipgloss.Color("#9AA0A6")
	switch {
	case v.Active:
		border = lipgloss.Color("#FFA657")
	case atCursor:
		border = lipgloss.Color("#58A6FF")
	}

	return lipgloss.NewStyle().
		Width(m.cardWidth-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(bg).
		Foreground(fg).
		Render(strings.Join(lines, "\n"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

var swatchOrder = "123456789"

func (m Model) layoutColorPicker(f *frame, rm board.RenderModel) {
	var swatches []string
	for i, c := range rm.Palette {
		label := " "
		if i < len(swatchOrder) {
			label = string(swatchOrder[i])
		}
		swatches = append(swatches, lipgloss.NewStyle().
			Background(theme.NoteBackground(c)).
			Foreground(theme.NoteForeground).
			Render(" "+label+" "))
	}
	box := boxStyle.
		BorderForeground(theme.DefaultTheme.Colors.Orange).
		Render(strings.Join(swatches, " "))

	anchor := *rm.UI.ColorPickerAnchor
	x, y := anchor.X, anchor.Y+1
	boxWidth := lipgloss.Width(box)
	if sw := m.screenWidth(); x+boxWidth > sw {
		x = sw - boxWidth
	}
	if x < 0 {
		x = 0
	}

	overlayAt(f, box, x, y, m.screenWidth())
	f.add(rect{x: x, y: y, w: boxWidth, h: lipgloss.Height(box)}, board.ColorPicker{})
	for i, c := range rm.Palette {
		f.add(rect{x: x + 2 + i*4, y: y + 1, w: 3, h: 1}, board.Swatch{Color: c})
	}
}

func (m Model) layoutModal(f *frame, rm board.RenderModel) {
	width := m.modalWidth()
	heading := "Edit note"
	if rm.UI.HasActive() {
		heading = fmt.Sprintf("Edit note #%d", rm.UI.ActiveID)
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.DefaultTheme.Header.Render(heading),
		"",
		m.modalTitle.View(),
		m.modalBody.View(),
		"",
		theme.DefaultTheme.Highlight.Render(closeLabel)+"  "+
			theme.DefaultTheme.Muted.Render("esc save & close"),
	)
	box := boxStyle.
		Width(width - 2).
		BorderForeground(theme.DefaultTheme.Colors.Orange).
		Render(content)

	// The modal swallows every click around it, like a backdrop.
	f.add(rect{x: 0, y: 0, w: m.screenWidth(), h: len(f.lines)}, board.Modal{})
	x, y := overlayCenter(f, box, m.screenWidth())
	f.add(rect{x: x + 2, y: y + lipgloss.Height(box) - 2, w: len(closeLabel), h: 1}, board.ModalClose{})
}

// overlayCenter draws block centered on the frame and returns its top-left
// corner.
func overlayCenter(f *frame, block string, screenWidth int) (int, int) {
	w, h := lipgloss.Width(block), lipgloss.Height(block)
	x := (screenWidth - w) / 2
	y := (len(f.lines) - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	overlayAt(f, block, x, y, screenWidth)
	return x, y
}

// overlayAt splices block over the frame's lines with its top-left corner
// at (x, y), growing the frame if the block runs past the last line.
func overlayAt(f *frame, block string, x, y, screenWidth int) {
	fg := strings.Split(block, "\n")
	fgWidth := lipgloss.Width(block)
	for len(f.lines) < y+len(fg) {
		f.lines = append(f.lines, "")
	}
	for i, line := range fg {
		bg := f.lines[y+i]
		if pad := x - xansi.StringWidth(bg); pad > 0 {
			bg += strings.Repeat(" ", pad)
		}
		left := xansi.Cut(bg, 0, x)
		right := xansi.Cut(bg, x+fgWidth, max(screenWidth, xansi.StringWidth(bg)))
		if n := xansi.StringWidth(line); n < fgWidth {
			line += strings.Repeat(" ", fgWidth-n)
		}
		f.lines[y+i] = left + line + right
	}
}
