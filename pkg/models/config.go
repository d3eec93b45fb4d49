package models

import (
	"fmt"
	"strings"
)

// Color is a palette tag such as "white" or "green"
type Color string

const (
	ColorWhite  Color = "white"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
)

// DefaultColor is assigned to every newly created note unless configured otherwise.
const DefaultColor = ColorWhite

// DefaultPalette provides the built-in set of note colors, in picker order.
var DefaultPalette = Palette{
	ColorWhite,
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorPurple,
}

// Palette is the fixed, ordered set of colors a note may take.
type Palette []Color

// Contains reports whether c is one of the palette's tags.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// At returns the color at a zero-based picker position.
func (p Palette) At(i int) (Color, bool) {
	if i < 0 || i >= len(p) {
		return "", false
	}
	return p[i], true
}

// ParsePalette normalizes raw config values into a palette. Tags are
// lower-cased and trimmed; blanks and duplicates are rejected.
func ParsePalette(raw []string) (Palette, error) {
	seen := make(map[Color]bool, len(raw))
	p := make(Palette, 0, len(raw))
	for _, r := range raw {
		c := Color(strings.ToLower(strings.TrimSpace(r)))
		if c == "" {
			return nil, fmt.Errorf("palette contains an empty color")
		}
		if seen[c] {
			return nil, fmt.Errorf("palette contains %q twice", c)
		}
		seen[c] = true
		p = append(p, c)
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	return p, nil
}
