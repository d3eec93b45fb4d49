package board

import "github.com/mattsolo1/grove-stickies/pkg/models"

// Point is a screen coordinate supplied by the host. The store never
// interprets it.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// UIState holds the transient interaction state of the board. ActiveID is
// a lookup key only; the note it names may have been deleted since.
type UIState struct {
	ActiveID          models.ID `json:"active_id,omitempty" yaml:"active_id,omitempty"`
	ComposeOpen       bool      `json:"compose_open" yaml:"compose_open"`
	EditorOpen        bool      `json:"editor_open" yaml:"editor_open"`
	ColorPickerOpen   bool      `json:"color_picker_open" yaml:"color_picker_open"`
	ColorPickerAnchor *Point    `json:"color_picker_anchor,omitempty" yaml:"color_picker_anchor,omitempty"`

	// Compose form inputs.
	DraftTitle string `json:"draft_title,omitempty" yaml:"draft_title,omitempty"`
	DraftBody  string `json:"draft_body,omitempty" yaml:"draft_body,omitempty"`

	// Editor modal inputs, seeded by Select.
	ModalTitle string `json:"modal_title,omitempty" yaml:"modal_title,omitempty"`
	ModalBody  string `json:"modal_body,omitempty" yaml:"modal_body,omitempty"`
}

// HasActive reports whether a note is targeted by the current interaction.
func (u UIState) HasActive() bool {
	return u.ActiveID > 0
}

// HasDraft reports whether the compose form holds text worth keeping.
func (u UIState) HasDraft() bool {
	return !models.IsBlank(u.DraftTitle, u.DraftBody)
}

func (u UIState) clone() UIState {
	c := u
	if u.ColorPickerAnchor != nil {
		anchor := *u.ColorPickerAnchor
		c.ColorPickerAnchor = &anchor
	}
	return c
}
