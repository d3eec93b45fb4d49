// Package board holds the note state of a sticky-note board and the
// commands that mutate it. A Store is owned by exactly one host, which
// forwards user input as commands and redraws from RenderModel after each
// one. The Store is not safe for concurrent use.
package board

import (
	"fmt"

	"github.com/mattsolo1/grove-stickies/pkg/models"
)

// Store owns every note on the board together with the UI mode flags.
type Store struct {
	notes        []models.Note
	lastID       models.ID
	palette      models.Palette
	defaultColor models.Color
	ui           UIState
}

type storeOptions struct {
	palette      models.Palette
	defaultColor models.Color
}

// Option configures a Store.
type Option func(*storeOptions)

// WithPalette replaces the built-in palette.
func WithPalette(p models.Palette) Option {
	return func(o *storeOptions) {
		o.palette = p
	}
}

// WithDefaultColor sets the color given to new notes.
func WithDefaultColor(c models.Color) Option {
	return func(o *storeOptions) {
		o.defaultColor = c
	}
}

// New creates an empty board.
func New(options ...Option) (*Store, error) {
	opts := &storeOptions{
		palette:      models.DefaultPalette,
		defaultColor: models.DefaultColor,
	}
	for _, opt := range options {
		opt(opts)
	}

	if err := validatePalette(opts.palette, opts.defaultColor); err != nil {
		return nil, err
	}

	return &Store{
		palette:      append(models.Palette(nil), opts.palette...),
		defaultColor: opts.defaultColor,
	}, nil
}

func validatePalette(p models.Palette, def models.Color) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: no colors", ErrInvalidPalette)
	}
	if !p.Contains(def) {
		return fmt.Errorf("%w: default color %q missing", ErrInvalidPalette, def)
	}
	return nil
}

// Palette returns a copy of the colors notes may take.
func (s *Store) Palette() models.Palette {
	return append(models.Palette(nil), s.palette...)
}

// SetPalette swaps the palette. Notes keep their current color even if it
// is no longer offered.
func (s *Store) SetPalette(p models.Palette) error {
	if err := validatePalette(p, s.defaultColor); err != nil {
		return err
	}
	s.palette = append(models.Palette(nil), p...)
	return nil
}

// Len returns the number of notes on the board.
func (s *Store) Len() int {
	return len(s.notes)
}

// Note looks up a note by id.
func (s *Store) Note(id models.ID) (models.Note, bool) {
	i, ok := s.index(id)
	if !ok {
		return models.Note{}, false
	}
	return s.notes[i], true
}

// UI returns a snapshot of the interaction state.
func (s *Store) UI() UIState {
	return s.ui.clone()
}

func (s *Store) index(id models.ID) (int, bool) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Create appends a note built from title and body, then closes the compose
// form. Blank input leaves the board untouched.
func (s *Store) Create(title, body string) (models.Note, error) {
	if models.IsBlank(title, body) {
		return models.Note{}, ErrEmptyNote
	}

	s.lastID++
	note := models.Note{
		ID:    s.lastID,
		Title: title,
		Body:  body,
		Color: s.defaultColor,
	}
	s.notes = append(s.notes, note)
	s.CloseCompose()
	return note, nil
}

// UpdateText replaces the title and body of a note.
func (s *Store) UpdateText(id models.ID, title, body string) error {
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("update text of note %d: %w", id, ErrNotFound)
	}
	note := s.notes[i]
	note.Title = title
	note.Body = body
	s.notes[i] = note
	return nil
}

// UpdateColor recolors a note. Colors outside the palette are rejected.
func (s *Store) UpdateColor(id models.ID, c models.Color) error {
	if !s.palette.Contains(c) {
		return fmt.Errorf("recolor note %d to %q: %w", id, c, ErrInvalidColor)
	}
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("recolor note %d: %w", id, ErrNotFound)
	}
	note := s.notes[i]
	note.Color = c
	s.notes[i] = note
	return nil
}

// Delete removes a note. Remaining ids are never renumbered and the
// removed id is never issued again.
func (s *Store) Delete(id models.ID) error {
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("delete note %d: %w", id, ErrNotFound)
	}
	s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
	return nil
}

// Select makes a note active and opens the editor modal on it.
func (s *Store) Select(id models.ID) error {
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("select note %d: %w", id, ErrNotFound)
	}
	s.ui.ActiveID = id
	s.ui.EditorOpen = true
	s.ui.ModalTitle = s.notes[i].Title
	s.ui.ModalBody = s.notes[i].Body
	return nil
}

// OpenColorPicker makes a note active and shows the picker at anchor.
func (s *Store) OpenColorPicker(id models.ID, anchor Point) error {
	if _, ok := s.index(id); !ok {
		return fmt.Errorf("open color picker for note %d: %w", id, ErrNotFound)
	}
	s.ui.ActiveID = id
	s.ui.ColorPickerOpen = true
	s.ui.ColorPickerAnchor = &anchor
	return nil
}

// CloseColorPicker hides the picker. The active note is kept because an
// edit may still be pending on it.
func (s *Store) CloseColorPicker() {
	s.ui.ColorPickerOpen = false
	s.ui.ColorPickerAnchor = nil
}

// OpenCompose shows the compose form.
func (s *Store) OpenCompose() {
	s.ui.ComposeOpen = true
}

// CloseCompose hides the compose form and discards the draft.
func (s *Store) CloseCompose() {
	s.ui.ComposeOpen = false
	s.ui.DraftTitle = ""
	s.ui.DraftBody = ""
}

// SetDraft records the current contents of the compose inputs.
func (s *Store) SetDraft(title, body string) {
	s.ui.DraftTitle = title
	s.ui.DraftBody = body
}

// SetModalFields records the current contents of the editor inputs.
func (s *Store) SetModalFields(title, body string) {
	s.ui.ModalTitle = title
	s.ui.ModalBody = body
}

// CommitModalEdit writes title and body to the active note and closes the
// modal. The modal closes even when the note was deleted meanwhile; in that
// case ErrNotFound is returned.
func (s *Store) CommitModalEdit(title, body string) error {
	if !s.ui.EditorOpen || !s.ui.HasActive() {
		return ErrModalClosed
	}
	err := s.UpdateText(s.ui.ActiveID, title, body)
	s.ui.EditorOpen = false
	s.ui.ActiveID = 0
	s.ui.ModalTitle = ""
	s.ui.ModalBody = ""
	return err
}

// DismissAmbient resolves a click that no more specific handler claimed.
// The checks run in a fixed order: a click inside the compose form keeps
// composing, otherwise a non-empty draft becomes a note, otherwise the form
// closes. Checking the draft first would commit a note every time the user
// clicked into the form mid-edit.
func (s *Store) DismissAmbient(insideCompose bool) {
	switch {
	case insideCompose:
		s.OpenCompose()
	case s.ui.HasDraft():
		// HasDraft guarantees Create cannot reject the input.
		_, _ = s.Create(s.ui.DraftTitle, s.ui.DraftBody)
	default:
		s.CloseCompose()
	}
}
