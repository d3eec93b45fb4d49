package board

import "errors"

// Outcomes a command reports instead of mutating state. Hosts are expected
// to log and drop them; none of them abort a render cycle.
var (
	// ErrNotFound is returned when a command names a note id that is not on
	// the board. Stale ids are normal: a note can be deleted while a click
	// that targets it is still being handled.
	ErrNotFound = errors.New("note not found")

	// ErrInvalidColor is returned when a color is not part of the palette.
	ErrInvalidColor = errors.New("color not in palette")

	// ErrEmptyNote is returned by Create when title and body are both blank.
	ErrEmptyNote = errors.New("note has no title or body")

	// ErrModalClosed is returned by CommitModalEdit when no edit is pending.
	ErrModalClosed = errors.New("editor modal is not open")

	// ErrInvalidPalette is returned when a palette cannot serve the board.
	ErrInvalidPalette = errors.New("invalid palette")
)
