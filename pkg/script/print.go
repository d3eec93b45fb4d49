package script

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-stickies/pkg/board"
	"github.com/mattsolo1/grove-stickies/pkg/models"
)

// Format selects how a render model is written.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want yaml, json or text)", s)
	}
}

// Write encodes m to w in the given format.
func Write(w io.Writer, m board.RenderModel, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case FormatText:
		return writeText(w, m)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	}
}

var noteColors = map[models.Color]*color.Color{
	models.ColorWhite:  color.New(color.BgWhite, color.FgBlack),
	models.ColorRed:    color.New(color.BgRed, color.FgWhite),
	models.ColorOrange: color.New(color.BgHiRed, color.FgBlack),
	models.ColorYellow: color.New(color.BgYellow, color.FgBlack),
	models.ColorGreen:  color.New(color.BgGreen, color.FgBlack),
	models.ColorBlue:   color.New(color.BgBlue, color.FgWhite),
	models.ColorPurple: color.New(color.BgMagenta, color.FgWhite),
}

var titleCase = cases.Title(language.English)

// ColorLabel returns the display name of a palette tag.
func ColorLabel(c models.Color) string {
	return titleCase.String(string(c))
}

// ColorSample renders text on the terminal color closest to c. Tags
// without a known terminal color are printed plain.
func ColorSample(c models.Color, text string) string {
	if swatch, ok := noteColors[c]; ok {
		return swatch.Sprint(text)
	}
	return text
}

func writeText(w io.Writer, m board.RenderModel) error {
	var b strings.Builder
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	if m.Placeholder {
		b.WriteString(faint.Sprint("Notes you add appear here"))
		b.WriteString("\n")
	}

	for _, n := range m.Notes {
		marker := " "
		if n.Active {
			marker = "▶"
		}
		header := fmt.Sprintf("%s #%d [%s]", marker, n.ID, ColorLabel(n.Color))
		b.WriteString(ColorSample(n.Color, header))
		b.WriteString("\n")
		if n.HasTitle {
			b.WriteString("  " + bold.Sprint(n.Title) + "\n")
		}
		for _, line := range strings.Split(n.Body, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	ui := m.UI
	var modes []string
	if ui.ComposeOpen {
		modes = append(modes, fmt.Sprintf("composing %q/%q", ui.DraftTitle, ui.DraftBody))
	}
	if ui.EditorOpen {
		modes = append(modes, fmt.Sprintf("editing #%d", ui.ActiveID))
	}
	if ui.ColorPickerOpen && ui.ColorPickerAnchor != nil {
		modes = append(modes, fmt.Sprintf("color picker for #%d at (%d,%d)",
			ui.ActiveID, ui.ColorPickerAnchor.X, ui.ColorPickerAnchor.Y))
	}
	if len(modes) > 0 {
		b.WriteString(faint.Sprint(strings.Join(modes, "; ")))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
