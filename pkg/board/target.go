package board

import (
	"fmt"

	"github.com/mattsolo1/grove-stickies/pkg/models"
)

// TargetKind names the kind of element an input event landed on.
type TargetKind string

const (
	KindComposeForm  TargetKind = "compose"
	KindComposeClose TargetKind = "compose-close"
	KindNoteCard     TargetKind = "note"
	KindDeleteIcon   TargetKind = "delete-icon"
	KindColorIcon    TargetKind = "color-icon"
	KindSwatch       TargetKind = "swatch"
	KindColorPicker  TargetKind = "color-picker"
	KindModal        TargetKind = "modal"
	KindModalClose   TargetKind = "modal-close"
	KindBackground   TargetKind = "background"
)

// Target is the classified origin of a pointer event. Hosts resolve the
// innermost element under the pointer exactly once and hand the result to
// the Router; the concrete types below are the only implementations.
type Target interface {
	Kind() TargetKind
	target()
}

// ComposeForm is any part of the compose form other than its close button.
type ComposeForm struct{}

// ComposeClose is the compose form's close button.
type ComposeClose struct{}

// NoteCard is the body of a rendered note.
type NoteCard struct{ ID models.ID }

// DeleteIcon is the delete button in a note's toolbar.
type DeleteIcon struct{ ID models.ID }

// ColorIcon is the recolor button in a note's toolbar.
type ColorIcon struct{ ID models.ID }

// Swatch is one color in the open color picker.
type Swatch struct{ Color models.Color }

// ColorPicker is the picker popover outside of any swatch.
type ColorPicker struct{}

// Modal is the editor modal outside of its close button.
type Modal struct{}

// ModalClose is the editor modal's close button.
type ModalClose struct{}

// Background is anything not covered by another target.
type Background struct{}

func (ComposeForm) Kind() TargetKind  { return KindComposeForm }
func (ComposeClose) Kind() TargetKind { return KindComposeClose }
func (NoteCard) Kind() TargetKind     { return KindNoteCard }
func (DeleteIcon) Kind() TargetKind   { return KindDeleteIcon }
func (ColorIcon) Kind() TargetKind    { return KindColorIcon }
func (Swatch) Kind() TargetKind       { return KindSwatch }
func (ColorPicker) Kind() TargetKind  { return KindColorPicker }
func (Modal) Kind() TargetKind        { return KindModal }
func (ModalClose) Kind() TargetKind   { return KindModalClose }
func (Background) Kind() TargetKind   { return KindBackground }

func (ComposeForm) target()  {}
func (ComposeClose) target() {}
func (NoteCard) target()     {}
func (DeleteIcon) target()   {}
func (ColorIcon) target()    {}
func (Swatch) target()       {}
func (ColorPicker) target()  {}
func (Modal) target()        {}
func (ModalClose) target()   {}
func (Background) target()   {}

// NewTarget builds a target from its kind. id is used by the note-scoped
// kinds and color by swatches; both are ignored otherwise.
func NewTarget(kind TargetKind, id models.ID, color models.Color) (Target, error) {
	switch kind {
	case KindComposeForm:
		return ComposeForm{}, nil
	case KindComposeClose:
		return ComposeClose{}, nil
	case KindNoteCard:
		return NoteCard{ID: id}, nil
	case KindDeleteIcon:
		return DeleteIcon{ID: id}, nil
	case KindColorIcon:
		return ColorIcon{ID: id}, nil
	case KindSwatch:
		if color == "" {
			return nil, fmt.Errorf("swatch target needs a color")
		}
		return Swatch{Color: color}, nil
	case KindColorPicker:
		return ColorPicker{}, nil
	case KindModal:
		return Modal{}, nil
	case KindModalClose:
		return ModalClose{}, nil
	case KindBackground:
		return Background{}, nil
	default:
		return nil, fmt.Errorf("unknown target kind %q", kind)
	}
}
