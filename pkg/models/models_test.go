package models

import (
	"testing"
)

func TestPaletteContains(t *testing.T) {
	tests := []struct {
		color   Color
		isValid bool
	}{
		{"white", true},
		{"red", true},
		{"orange", true},
		{"yellow", true},
		{"green", true},
		{"blue", true},
		{"purple", true},
		{Color("not-a-color"), false},
		{Color("Green"), false},
		{Color(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			valid := DefaultPalette.Contains(tt.color)
			if valid != tt.isValid {
				t.Errorf("Expected isValid %v for color %s", tt.isValid, tt.color)
			}
		})
	}
}

func TestDefaultColorInPalette(t *testing.T) {
	if !DefaultPalette.Contains(DefaultColor) {
		t.Errorf("Expected default color %s to be part of the default palette", DefaultColor)
	}
}

func TestPaletteAt(t *testing.T) {
	c, ok := DefaultPalette.At(0)
	if !ok || c != ColorWhite {
		t.Errorf("Expected white at position 0, got %q (ok=%v)", c, ok)
	}

	if _, ok := DefaultPalette.At(len(DefaultPalette)); ok {
		t.Error("Expected out of range position to fail")
	}
	if _, ok := DefaultPalette.At(-1); ok {
		t.Error("Expected negative position to fail")
	}
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    Palette
		wantErr bool
	}{
		{name: "normalizes case and spaces", raw: []string{" White", "GREEN "}, want: Palette{"white", "green"}},
		{name: "empty list", raw: nil, wantErr: true},
		{name: "blank entry", raw: []string{"white", " "}, wantErr: true},
		{name: "duplicate", raw: []string{"red", "Red"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePalette(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %v", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %s at %d, got %s", tt.want[i], i, got[i])
				}
			}
		})
	}
}

func TestNoteHasTitle(t *testing.T) {
	note := Note{ID: 1, Title: "Groceries", Body: "Milk, eggs", Color: ColorWhite}
	if !note.HasTitle() {
		t.Error("Expected note with title to report HasTitle")
	}

	untitled := Note{ID: 2, Title: "  ", Body: "just a body"}
	if untitled.HasTitle() {
		t.Error("Expected whitespace title to report no title")
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		title, body string
		blank       bool
	}{
		{"", "", true},
		{"   ", "", true},
		{"\t", "\n ", true},
		{"x", "", false},
		{"", "y", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.title, tt.body); got != tt.blank {
			t.Errorf("IsBlank(%q, %q) = %v, want %v", tt.title, tt.body, got, tt.blank)
		}
	}
}
