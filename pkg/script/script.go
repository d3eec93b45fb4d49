// Package script replays a recorded sequence of board events without a
// terminal. Scripts are YAML documents with one entry per event:
//
//	events:
//	  - op: create
//	    title: Groceries
//	    body: Milk, eggs
//	  - op: hover
//	    target: {kind: color-icon, id: 1}
//	    at: {x: 10, y: 20}
//	  - op: click
//	    target: {kind: swatch, color: green}
package script

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-stickies/pkg/board"
	"github.com/mattsolo1/grove-stickies/pkg/models"
)

// Op names a single scripted event.
type Op string

const (
	OpCreate           Op = "create"
	OpUpdateText       Op = "update-text"
	OpRecolor          Op = "recolor"
	OpDelete           Op = "delete"
	OpSelect           Op = "select"
	OpOpenColorPicker  Op = "open-color-picker"
	OpCloseColorPicker Op = "close-color-picker"
	OpOpenCompose      Op = "open-compose"
	OpCloseCompose     Op = "close-compose"
	OpCommit           Op = "commit"
	OpDismiss          Op = "dismiss"
	OpDraft            Op = "draft"
	OpModalFields      Op = "modal-fields"
	OpClick            Op = "click"
	OpHover            Op = "hover"
	OpSubmit           Op = "submit"
)

var knownOps = map[Op]bool{
	OpCreate: true, OpUpdateText: true, OpRecolor: true, OpDelete: true,
	OpSelect: true, OpOpenColorPicker: true, OpCloseColorPicker: true,
	OpOpenCompose: true, OpCloseCompose: true, OpCommit: true, OpDismiss: true,
	OpDraft: true, OpModalFields: true, OpClick: true, OpHover: true, OpSubmit: true,
}

// TargetSpec is the YAML form of a board.Target.
type TargetSpec struct {
	Kind  board.TargetKind `yaml:"kind"`
	ID    models.ID        `yaml:"id,omitempty"`
	Color models.Color     `yaml:"color,omitempty"`
}

// Event is one step of a script.
type Event struct {
	Op     Op           `yaml:"op"`
	ID     models.ID    `yaml:"id,omitempty"`
	Title  string       `yaml:"title,omitempty"`
	Body   string       `yaml:"body,omitempty"`
	Color  models.Color `yaml:"color,omitempty"`
	Inside bool         `yaml:"inside,omitempty"`
	At     board.Point  `yaml:"at,omitempty"`
	Target *TargetSpec  `yaml:"target,omitempty"`

	target board.Target
}

// Script is a decoded, validated event sequence.
type Script struct {
	Events []Event `yaml:"events"`
}

// Decode reads and validates a script. Unknown fields, ops and target kinds
// are errors.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}

	for i := range s.Events {
		if err := s.Events[i].validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (e *Event) validate() error {
	if !knownOps[e.Op] {
		return fmt.Errorf("unknown op %q", e.Op)
	}
	switch e.Op {
	case OpClick, OpHover:
		if e.Target == nil {
			return fmt.Errorf("%s needs a target", e.Op)
		}
		t, err := board.NewTarget(e.Target.Kind, e.Target.ID, e.Target.Color)
		if err != nil {
			return err
		}
		e.target = t
	}
	return nil
}

// Run replays every event against r. each, when non-nil, is called after
// every event with the render model the host would draw. Command outcomes
// such as a stale id are logged and skipped, as an interactive host would.
func (s *Script) Run(r *board.Router, log logrus.FieldLogger, each func(step int, ev Event, m board.RenderModel)) board.RenderModel {
	store := r.Store()
	for i, ev := range s.Events {
		if err := apply(r, ev); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"step": i + 1,
				"op":   ev.Op,
			}).Debug("Event had no effect")
		}
		if each != nil {
			each(i+1, ev, store.RenderModel())
		}
	}
	return store.RenderModel()
}

func apply(r *board.Router, ev Event) error {
	store := r.Store()
	switch ev.Op {
	case OpCreate:
		_, err := store.Create(ev.Title, ev.Body)
		return err
	case OpUpdateText:
		return store.UpdateText(ev.ID, ev.Title, ev.Body)
	case OpRecolor:
		return store.UpdateColor(ev.ID, ev.Color)
	case OpDelete:
		return store.Delete(ev.ID)
	case OpSelect:
		return store.Select(ev.ID)
	case OpOpenColorPicker:
		return store.OpenColorPicker(ev.ID, ev.At)
	case OpCloseColorPicker:
		store.CloseColorPicker()
	case OpOpenCompose:
		store.OpenCompose()
	case OpCloseCompose:
		store.CloseCompose()
	case OpCommit:
		return store.CommitModalEdit(ev.Title, ev.Body)
	case OpDismiss:
		store.DismissAmbient(ev.Inside)
	case OpDraft:
		store.SetDraft(ev.Title, ev.Body)
	case OpModalFields:
		store.SetModalFields(ev.Title, ev.Body)
	case OpClick:
		r.Click(ev.target, ev.At)
	case OpHover:
		r.Hover(ev.target, ev.At)
	case OpSubmit:
		r.Submit()
	}
	return nil
}
