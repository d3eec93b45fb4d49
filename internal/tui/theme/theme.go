// Package theme holds the lipgloss styles shared by the stickies TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-stickies/pkg/models"
)

// Colors is the base palette of the interface chrome.
type Colors struct {
	Orange lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
	Accent lipgloss.AdaptiveColor
	Text   lipgloss.AdaptiveColor
	Error  lipgloss.AdaptiveColor
}

// Theme groups the styles used across views.
type Theme struct {
	Colors    Colors
	Header    lipgloss.Style
	Info      lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
}

var DefaultTheme = newTheme()

func newTheme() Theme {
	c := Colors{
		Orange: lipgloss.AdaptiveColor{Light: "#D9730D", Dark: "#FFA657"},
		Muted:  lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#6E7681"},
		Accent: lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#58A6FF"},
		Text:   lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E6EDF3"},
		Error:  lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF7B72"},
	}
	return Theme{
		Colors:    c,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(c.Orange),
		Info:      lipgloss.NewStyle().Foreground(c.Accent),
		Muted:     lipgloss.NewStyle().Foreground(c.Muted),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(c.Orange),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(c.Accent),
		Error:     lipgloss.NewStyle().Foreground(c.Error),
	}
}

// noteBackgrounds maps palette tags to card backgrounds. Tags added through
// configuration that are not listed here are passed to lipgloss as-is, so
// a palette may also use hex values or ANSI numbers.
var noteBackgrounds = map[models.Color]lipgloss.Color{
	models.ColorWhite:  lipgloss.Color("#FFFFFF"),
	models.ColorRed:    lipgloss.Color("#F28B82"),
	models.ColorOrange: lipgloss.Color("#FBBC04"),
	models.ColorYellow: lipgloss.Color("#FFF475"),
	models.ColorGreen:  lipgloss.Color("#CCFF90"),
	models.ColorBlue:   lipgloss.Color("#AECBFA"),
	models.ColorPurple: lipgloss.Color("#D7AEFB"),
}

// NoteBackground returns the card background for a color tag.
func NoteBackground(c models.Color) lipgloss.Color {
	if bg, ok := noteBackgrounds[c]; ok {
		return bg
	}
	return lipgloss.Color(c)
}

// NoteForeground is the text color drawn on every card; all built-in
// backgrounds are light.
var NoteForeground = lipgloss.Color("#202124")
