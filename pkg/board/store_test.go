package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-stickies/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	return s
}

func TestNewRejectsPaletteWithoutDefault(t *testing.T) {
	_, err := New(WithPalette(models.Palette{"red", "green"}))
	assert.ErrorIs(t, err, ErrInvalidPalette)

	_, err = New(WithPalette(models.Palette{}))
	assert.ErrorIs(t, err, ErrInvalidPalette)

	s, err := New(WithPalette(models.Palette{"red", "green"}), WithDefaultColor("green"))
	require.NoError(t, err)
	note, err := s.Create("t", "")
	require.NoError(t, err)
	assert.Equal(t, models.Color("green"), note.Color)
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	s := newTestStore(t)

	var last models.ID
	for i := 0; i < 10; i++ {
		note, err := s.Create("note", "body")
		require.NoError(t, err)
		assert.Greater(t, note.ID, last)
		last = note.ID
	}
	assert.Equal(t, 10, s.Len())

	seen := map[models.ID]bool{}
	for _, v := range s.RenderModel().Notes {
		assert.False(t, seen[v.ID], "duplicate id %d", v.ID)
		seen[v.ID] = true
	}
}

func TestCreateRejectsBlankInput(t *testing.T) {
	tests := []struct {
		name, title, body string
	}{
		{"both empty", "", ""},
		{"whitespace title", "   ", ""},
		{"whitespace both", "\t", " \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			s.OpenCompose()

			_, err := s.Create(tt.title, tt.body)
			assert.ErrorIs(t, err, ErrEmptyNote)
			assert.Equal(t, 0, s.Len())
			assert.True(t, s.UI().ComposeOpen, "a rejected create must not close the form")
		})
	}
}

func TestCreateClosesComposeAndClearsDraft(t *testing.T) {
	s := newTestStore(t)
	s.OpenCompose()
	s.SetDraft("Groceries", "Milk")

	note, err := s.Create("Groceries", "Milk")
	require.NoError(t, err)

	assert.Equal(t, models.ID(1), note.ID)
	assert.Equal(t, models.ColorWhite, note.Color)
	ui := s.UI()
	assert.False(t, ui.ComposeOpen)
	assert.Empty(t, ui.DraftTitle)
	assert.Empty(t, ui.DraftBody)
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.Create("a", "")
	b, _ := s.Create("b", "")

	require.NoError(t, s.Delete(b.ID))
	c, err := s.Create("c", "")
	require.NoError(t, err)

	assert.Equal(t, models.ID(1), a.ID)
	assert.Equal(t, models.ID(3), c.ID, "the id of the deleted newest note must not come back")

	require.NoError(t, s.Delete(a.ID))
	require.NoError(t, s.Delete(c.ID))
	d, err := s.Create("d", "")
	require.NoError(t, err)
	assert.Equal(t, models.ID(4), d.ID)
}

func TestDeleteKeepsOrderAndIDs(t *testing.T) {
	s := newTestStore(t)
	for _, title := range []string{"one", "two", "three"} {
		_, err := s.Create(title, "")
		require.NoError(t, err)
	}

	require.NoError(t, s.Delete(2))

	notes := s.RenderModel().Notes
	require.Len(t, notes, 2)
	assert.Equal(t, models.ID(1), notes[0].ID)
	assert.Equal(t, "one", notes[0].Title)
	assert.Equal(t, models.ID(3), notes[1].ID)
	assert.Equal(t, "three", notes[1].Title)

	assert.ErrorIs(t, s.Delete(2), ErrNotFound)
	assert.Equal(t, 2, s.Len())
}

func TestUpdateText(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("old", "old body")
	require.NoError(t, s.UpdateColor(note.ID, models.ColorBlue))

	require.NoError(t, s.UpdateText(note.ID, "new", "new body"))

	got, ok := s.Note(note.ID)
	require.True(t, ok)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "new body", got.Body)
	assert.Equal(t, models.ColorBlue, got.Color)

	assert.ErrorIs(t, s.UpdateText(42, "x", "y"), ErrNotFound)
}

func TestUpdateColorRejectsUnknownColor(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("t", "b")
	require.NoError(t, s.UpdateColor(note.ID, models.ColorGreen))

	err := s.UpdateColor(note.ID, "not-a-color")
	assert.ErrorIs(t, err, ErrInvalidColor)

	got, _ := s.Note(note.ID)
	assert.Equal(t, models.ColorGreen, got.Color)

	assert.ErrorIs(t, s.UpdateColor(99, models.ColorRed), ErrNotFound)
}

func TestSelectSeedsModal(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("Title", "Body")

	require.NoError(t, s.Select(note.ID))

	ui := s.UI()
	assert.Equal(t, note.ID, ui.ActiveID)
	assert.True(t, ui.EditorOpen)
	assert.Equal(t, "Title", ui.ModalTitle)
	assert.Equal(t, "Body", ui.ModalBody)
}

func TestSelectAfterDeleteIsNoop(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("gone", "")
	require.NoError(t, s.Delete(note.ID))

	err := s.Select(note.ID)

	assert.ErrorIs(t, err, ErrNotFound)
	ui := s.UI()
	assert.False(t, ui.EditorOpen)
	assert.False(t, ui.HasActive())
}

func TestCommitModalEditRoundTrip(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("t", "b")
	require.NoError(t, s.UpdateColor(note.ID, models.ColorPurple))
	require.NoError(t, s.Select(note.ID))

	require.NoError(t, s.CommitModalEdit("t2", "b2"))

	got, ok := s.Note(note.ID)
	require.True(t, ok)
	assert.Equal(t, models.Note{ID: note.ID, Title: "t2", Body: "b2", Color: models.ColorPurple}, got)

	ui := s.UI()
	assert.False(t, ui.EditorOpen)
	assert.False(t, ui.HasActive())
	assert.Empty(t, ui.ModalTitle)
}

func TestCommitModalEditWithoutModal(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("t", "b")

	assert.ErrorIs(t, s.CommitModalEdit("x", "y"), ErrModalClosed)

	got, _ := s.Note(note.ID)
	assert.Equal(t, "t", got.Title)
}

func TestCommitModalEditAfterDeleteClosesModal(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("t", "b")
	require.NoError(t, s.Select(note.ID))
	require.NoError(t, s.Delete(note.ID))

	err := s.CommitModalEdit("x", "y")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.UI().EditorOpen)
	assert.Equal(t, 0, s.Len())
}

func TestColorPicker(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("t", "")

	require.NoError(t, s.OpenColorPicker(note.ID, Point{X: 10, Y: 20}))
	ui := s.UI()
	assert.True(t, ui.ColorPickerOpen)
	require.NotNil(t, ui.ColorPickerAnchor)
	assert.Equal(t, Point{X: 10, Y: 20}, *ui.ColorPickerAnchor)
	assert.Equal(t, note.ID, ui.ActiveID)

	s.CloseColorPicker()
	ui = s.UI()
	assert.False(t, ui.ColorPickerOpen)
	assert.Nil(t, ui.ColorPickerAnchor)
	assert.Equal(t, note.ID, ui.ActiveID, "closing the picker keeps the active note")
}

func TestOpenColorPickerUnknownNote(t *testing.T) {
	s := newTestStore(t)

	err := s.OpenColorPicker(7, Point{})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.UI().ColorPickerOpen)
}

func TestCloseComposeClearsDraft(t *testing.T) {
	s := newTestStore(t)
	s.OpenCompose()
	s.SetDraft("half", "written")

	s.CloseCompose()

	ui := s.UI()
	assert.False(t, ui.ComposeOpen)
	assert.False(t, ui.HasDraft())
	assert.Equal(t, 0, s.Len())
}

func TestDismissAmbient(t *testing.T) {
	tests := []struct {
		name          string
		draftTitle    string
		draftBody     string
		insideCompose bool
		wantNotes     int
		wantOpen      bool
		wantDraft     bool
	}{
		{name: "click inside form keeps composing", draftTitle: "x", insideCompose: true, wantNotes: 0, wantOpen: true, wantDraft: true},
		{name: "click inside empty form opens it", insideCompose: true, wantNotes: 0, wantOpen: true},
		{name: "outside click commits title-only draft", draftTitle: "x", wantNotes: 1, wantOpen: false},
		{name: "outside click commits body-only draft", draftBody: "y", wantNotes: 1, wantOpen: false},
		{name: "outside click with empty draft closes", wantNotes: 0, wantOpen: false},
		{name: "outside click with whitespace draft closes", draftTitle: "  ", wantNotes: 0, wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			s.OpenCompose()
			s.SetDraft(tt.draftTitle, tt.draftBody)

			s.DismissAmbient(tt.insideCompose)

			ui := s.UI()
			assert.Equal(t, tt.wantNotes, s.Len())
			assert.Equal(t, tt.wantOpen, ui.ComposeOpen)
			assert.Equal(t, tt.wantDraft, ui.HasDraft())
		})
	}
}

func TestDismissAmbientCreatesFromDraft(t *testing.T) {
	s := newTestStore(t)
	s.OpenCompose()
	s.SetDraft("x", "")

	s.DismissAmbient(false)

	notes := s.RenderModel().Notes
	require.Len(t, notes, 1)
	assert.Equal(t, "x", notes[0].Title)
	assert.Empty(t, notes[0].Body)
}

func TestSetPalette(t *testing.T) {
	s := newTestStore(t)
	note, _ := s.Create("t", "")
	require.NoError(t, s.UpdateColor(note.ID, models.ColorPurple))

	assert.ErrorIs(t, s.SetPalette(models.Palette{"red"}), ErrInvalidPalette)
	require.NoError(t, s.SetPalette(models.Palette{"white", "teal"}))

	assert.NoError(t, s.UpdateColor(note.ID, "teal"))
	assert.ErrorIs(t, s.UpdateColor(note.ID, models.ColorPurple), ErrInvalidColor)
	assert.Equal(t, models.Palette{"white", "teal"}, s.Palette())
}
