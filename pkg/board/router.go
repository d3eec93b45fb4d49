package board

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Router turns classified pointer events into store commands. Command
// outcomes such as ErrNotFound are logged and dropped so that no event can
// interrupt the host's redraw.
type Router struct {
	store *Store
	log   logrus.FieldLogger
}

// NewRouter creates a router driving store. A nil logger discards output.
func NewRouter(store *Store, log logrus.FieldLogger) *Router {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Router{store: store, log: log}
}

// Store returns the store the router drives.
func (r *Router) Store() *Store {
	return r.store
}

// Click handles a press on t. at is the pointer position, used as the
// picker anchor when t is a color icon.
//
// Every target except the compose close button first goes through ambient
// dismissal, so clicking a note while a draft is pending commits the draft
// before the note is selected. Delete icons are resolved as their own
// target and therefore never select the note they sit on.
func (r *Router) Click(t Target, at Point) {
	if _, ok := t.(ComposeClose); ok {
		r.store.CloseCompose()
		r.log.WithField("target", t.Kind()).Debug("Compose closed")
		return
	}

	_, inside := t.(ComposeForm)
	r.store.DismissAmbient(inside)

	switch t := t.(type) {
	case DeleteIcon:
		r.drop(t, r.store.Delete(t.ID))
	case NoteCard:
		r.drop(t, r.store.Select(t.ID))
	case ColorIcon:
		r.drop(t, r.store.OpenColorPicker(t.ID, at))
	case Swatch:
		r.drop(t, r.store.UpdateColor(r.store.ui.ActiveID, t.Color))
	case ModalClose:
		ui := r.store.ui
		r.drop(t, r.store.CommitModalEdit(ui.ModalTitle, ui.ModalBody))
	}
}

// Hover handles the pointer moving onto t. Entering a color icon opens the
// picker anchored at at; the picker stays open while the pointer is over
// it and closes when the pointer leaves both.
func (r *Router) Hover(t Target, at Point) {
	switch t := t.(type) {
	case ColorIcon:
		r.drop(t, r.store.OpenColorPicker(t.ID, at))
	case Swatch, ColorPicker:
	default:
		if r.store.ui.ColorPickerOpen {
			r.store.CloseColorPicker()
		}
	}
}

// Submit handles the compose form being submitted.
func (r *Router) Submit() {
	ui := r.store.ui
	note, err := r.store.Create(ui.DraftTitle, ui.DraftBody)
	if err != nil {
		r.drop(ComposeForm{}, err)
		return
	}
	r.log.WithField("id", note.ID).Debug("Note created")
}

func (r *Router) drop(t Target, err error) {
	if err == nil {
		return
	}
	r.log.WithError(err).WithField("target", t.Kind()).Debug("Command ignored")
}
