package notes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-stickies/internal/tui/theme"
)

func (m Model) View() string {
	if m.help.ShowAll {
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.DefaultTheme.Header.Render("Stickies · keys"),
			"",
			m.help.View(m.keys),
			"",
			theme.DefaultTheme.Muted.Render("press any key to return"),
		)
	}
	return m.layout(m.store.RenderModel()).String()
}

// footer is the status line followed by the short key help.
func (m Model) footer() string {
	status := ""
	if m.statusMessage != "" {
		if m.statusIsError {
			status = theme.DefaultTheme.Error.Render(m.statusMessage)
		} else {
			status = theme.DefaultTheme.Info.Render(m.statusMessage)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}
