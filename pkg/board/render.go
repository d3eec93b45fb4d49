package board

import "github.com/mattsolo1/grove-stickies/pkg/models"

// NoteView is one note as the host should draw it.
type NoteView struct {
	ID       models.ID    `json:"id" yaml:"id"`
	Title    string       `json:"title" yaml:"title"`
	Body     string       `json:"body" yaml:"body"`
	Color    models.Color `json:"color" yaml:"color"`
	HasTitle bool         `json:"has_title" yaml:"has_title"`
	Active   bool         `json:"active" yaml:"active"`
}

// RenderModel is a detached snapshot of everything a host needs to redraw
// the board.
type RenderModel struct {
	Notes       []NoteView     `json:"notes" yaml:"notes"`
	Placeholder bool           `json:"placeholder" yaml:"placeholder"`
	Palette     models.Palette `json:"palette" yaml:"palette"`
	UI          UIState        `json:"ui" yaml:"ui"`
}

// RenderModel builds the current snapshot. It never mutates the store.
func (s *Store) RenderModel() RenderModel {
	views := make([]NoteView, 0, len(s.notes))
	for _, n := range s.notes {
		views = append(views, NoteView{
			ID:       n.ID,
			Title:    n.Title,
			Body:     n.Body,
			Color:    n.Color,
			HasTitle: n.HasTitle(),
			Active:   s.ui.HasActive() && n.ID == s.ui.ActiveID,
		})
	}

	return RenderModel{
		Notes:       views,
		Placeholder: len(views) == 0,
		Palette:     s.Palette(),
		UI:          s.ui.clone(),
	}
}

// Find returns the view of a note by id.
func (m RenderModel) Find(id models.ID) (NoteView, bool) {
	for _, v := range m.Notes {
		if v.ID == id {
			return v, true
		}
	}
	return NoteView{}, false
}
