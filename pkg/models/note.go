package models

import "strings"

// ID identifies a note. Ids are positive and assigned in increasing order.
type ID int

// Note represents a single sticky note on the board
type Note struct {
	ID    ID     `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
	Color Color  `json:"color" yaml:"color"`
}

// IsBlank reports whether a title/body pair carries no visible text.
func IsBlank(title, body string) bool {
	return strings.TrimSpace(title) == "" && strings.TrimSpace(body) == ""
}

// HasTitle reports whether the note has a non-empty title.
func (n Note) HasTitle() bool {
	return strings.TrimSpace(n.Title) != ""
}
