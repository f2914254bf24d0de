// Package song provides the canonical in-memory song document model.
//
// A Song owns its parts, slides, backgrounds, sources and formatting;
// nothing outlives the Song that created it. Every mutating operation
// keeps the structural invariants true on completion:
//
//  1. part names are unique within a song,
//  2. every slide's background index is valid,
//  3. every part has at least one slide,
//  4. every order entry resolves to an existing part,
//
// and records itself into the song's history stack so it can be undone.
package song

import (
	"github.com/google/uuid"

	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/history"
)

// PartReference is a lightweight pointer into the performance order. The
// same part may be referenced any number of times; the reference never
// owns the part.
type PartReference struct {
	Part *Part
}

// Name returns the referenced part's name.
func (r *PartReference) Name() string {
	return r.Part.Name()
}

// Song is the aggregate root of the document model.
type Song struct {
	ID uuid.UUID

	Title               string
	Category            string
	Language            string
	TranslationLanguage string
	Comment             string
	Copyright           string
	SongbookNumber      string

	Sources     []Source
	Backgrounds []Background
	Parts       []*Part
	Order       []*PartReference
	Formatting  Formatting

	history *history.Stack
}

// New creates an empty song from the template: default formatting, one
// default black background (so slide background indexes are valid from
// the start), and a fresh history stack.
func New() *Song {
	return &Song{
		ID:          uuid.New(),
		Backgrounds: []Background{ColorBackground(Color{})},
		Formatting:  DefaultFormatting(),
		history:     history.NewStack(),
	}
}

// History returns the song's undo/redo stack.
func (s *Song) History() *history.Stack {
	return s.history
}

// Property setters. Each is merge-keyed so consecutive edits to the same
// field collapse into one undo step.

// SetTitle sets the song title.
func (s *Song) SetTitle(v string) { s.setString(&s.Title, "title", v) }

// SetCategory sets the category.
func (s *Song) SetCategory(v string) { s.setString(&s.Category, "category", v) }

// SetLanguage sets the language.
func (s *Song) SetLanguage(v string) { s.setString(&s.Language, "language", v) }

// SetTranslationLanguage sets the translation language.
func (s *Song) SetTranslationLanguage(v string) {
	s.setString(&s.TranslationLanguage, "translationLanguage", v)
}

// SetComment sets the free-text comment.
func (s *Song) SetComment(v string) { s.setString(&s.Comment, "comment", v) }

// SetCopyright sets the copyright text.
func (s *Song) SetCopyright(v string) { s.setString(&s.Copyright, "copyright", v) }

// SetSongbookNumber sets the external songbook-number identifier.
func (s *Song) SetSongbookNumber(v string) { s.setString(&s.SongbookNumber, "songbookNumber", v) }

// SetSlideText sets a slide's lyric text.
func (s *Song) SetSlideText(sl *Slide, v string) { s.setSlideString(sl, &sl.Text, "text", v) }

// SetSlideTranslation sets a slide's translation text.
func (s *Song) SetSlideTranslation(sl *Slide, v string) {
	s.setSlideString(sl, &sl.Translation, "translation", v)
}

// SetSlideFontSize sets a slide's font-size override (0 inherits).
func (s *Song) SetSlideFontSize(sl *Slide, size int) {
	old := sl.FontSize
	if old == size {
		return
	}
	sl.FontSize = size
	s.history.RecordProperty(sl, "fontSize",
		func() { sl.FontSize = old },
		func() { sl.FontSize = size })
}

func (s *Song) setString(field *string, property string, v string) {
	old := *field
	if old == v {
		return
	}
	*field = v
	s.history.RecordProperty(s, property,
		func() { *field = old },
		func() { *field = v })
}

func (s *Song) setSlideString(sl *Slide, field *string, property string, v string) {
	old := *field
	if old == v {
		return
	}
	*field = v
	s.history.RecordProperty(sl, property,
		func() { *field = old },
		func() { *field = v })
}

// PartByName returns the part with the given name, or nil.
func (s *Song) PartByName(name string) *Part {
	for _, p := range s.Parts {
		if p.name == name {
			return p
		}
	}
	return nil
}

func (s *Song) partIndex(p *Part) int {
	for i, q := range s.Parts {
		if q == p {
			return i
		}
	}
	return -1
}

// AddPart appends a detached part to the song. The part's name must be
// unused and the part must hold at least one slide with a valid
// background index.
func (s *Song) AddPart(p *Part) error {
	if s.PartByName(p.name) != nil {
		return errors.NewDuplicateName("part", p.name)
	}
	if len(p.Slides) == 0 {
		return errors.NewInvalidOp("add part", "a part must hold at least one slide")
	}
	for _, sl := range p.Slides {
		if sl.BackgroundIndex < 0 || sl.BackgroundIndex >= len(s.Backgrounds) {
			return errors.NewInvalidOp("add part", "slide background index out of range")
		}
	}
	p.song = s
	s.Parts = append(s.Parts, p)

	s.history.Record(history.Change{
		Undo: func() {
			s.Parts = s.Parts[:len(s.Parts)-1]
			p.song = nil
		},
		Redo: func() {
			p.song = s
			s.Parts = append(s.Parts, p)
		},
		Target: s, Property: "parts",
	})
	return nil
}

// RemovePart removes the part and every order entry referencing it, as
// one batch. The order entries go first on redo and come back last on
// undo, so the order-resolves-to-existing-part invariant holds at every
// intermediate step.
func (s *Song) RemovePart(p *Part) error {
	idx := s.partIndex(p)
	if idx < 0 {
		return errors.NewNotFound("part", p.name)
	}

	s.history.Begin()
	defer s.history.End()

	for i := len(s.Order) - 1; i >= 0; i-- {
		if s.Order[i].Part == p {
			s.removeOrderEntry(i)
		}
	}

	s.Parts = append(s.Parts[:idx], s.Parts[idx+1:]...)
	p.song = nil
	s.history.Record(history.Change{
		Undo: func() {
			p.song = s
			s.Parts = append(s.Parts, nil)
			copy(s.Parts[idx+1:], s.Parts[idx:])
			s.Parts[idx] = p
		},
		Redo: func() {
			s.Parts = append(s.Parts[:idx], s.Parts[idx+1:]...)
			p.song = nil
		},
		Target: s, Property: "parts",
	})
	return nil
}

// RenamePart renames a part, rejecting names already in use. Merge-keyed
// so letter-by-letter renames collapse into one undo step.
func (s *Song) RenamePart(p *Part, name string) error {
	if p.name == name {
		return nil
	}
	if s.PartByName(name) != nil {
		return errors.NewDuplicateName("part", name)
	}
	old := p.name
	p.name = name
	s.history.RecordProperty(p, "name",
		func() { p.name = old },
		func() { p.name = name })
	return nil
}

// MoveSlide moves slide i of one part to position j of another, inserting
// before removing so the minimum-one-slide invariant holds throughout,
// including during undo and redo replay. Moving a part's last slide is
// rejected.
func (s *Song) MoveSlide(from *Part, i int, to *Part, j int) error {
	if from == to {
		return errors.NewInvalidOp("move slide", "source and target part are the same")
	}
	if i < 0 || i >= len(from.Slides) {
		return errors.NewInvalidOp("move slide", "slide index out of range")
	}
	if j < 0 || j > len(to.Slides) {
		return errors.NewInvalidOp("move slide", "target index out of range")
	}
	if len(from.Slides) == 1 {
		return errors.NewInvalidOp("move slide", "a part must keep at least one slide")
	}

	s.history.Begin()
	defer s.history.End()

	sl := from.Slides[i]
	to.insertSlideAt(j, sl)
	s.history.Record(history.Change{
		Undo:   func() { to.removeSlideAt(j) },
		Redo:   func() { to.insertSlideAt(j, sl) },
		Target: to, Property: "slides",
	})

	from.removeSlideAt(i)
	s.history.Record(history.Change{
		Undo:   func() { from.insertSlideAt(i, sl) },
		Redo:   func() { from.removeSlideAt(i) },
		Target: from, Property: "slides",
	})
	return nil
}

// Order operations: pure list manipulation, never touching the parts.

// AddPartToOrder inserts a reference to the part at the given order
// index; index len(Order) appends.
func (s *Song) AddPartToOrder(p *Part, index int) error {
	if s.partIndex(p) < 0 {
		return errors.NewNotFound("part", p.name)
	}
	if index < 0 || index > len(s.Order) {
		return errors.NewInvalidOp("add to order", "order index out of range")
	}
	ref := &PartReference{Part: p}
	s.insertOrderAt(index, ref)
	s.history.Record(history.Change{
		Undo:   func() { s.removeOrderAt(index) },
		Redo:   func() { s.insertOrderAt(index, ref) },
		Target: s, Property: "order",
	})
	return nil
}

// MovePartInOrder moves the order entry at from to position to.
func (s *Song) MovePartInOrder(from, to int) error {
	if from < 0 || from >= len(s.Order) || to < 0 || to >= len(s.Order) {
		return errors.NewInvalidOp("move in order", "order index out of range")
	}
	if from == to {
		return nil
	}
	s.moveOrder(from, to)
	s.history.Record(history.Change{
		Undo:   func() { s.moveOrder(to, from) },
		Redo:   func() { s.moveOrder(from, to) },
		Target: s, Property: "order",
	})
	return nil
}

// RemovePartFromOrder removes the order entry at the given index.
func (s *Song) RemovePartFromOrder(index int) error {
	if index < 0 || index >= len(s.Order) {
		return errors.NewInvalidOp("remove from order", "order index out of range")
	}
	s.removeOrderEntry(index)
	return nil
}

func (s *Song) removeOrderEntry(index int) {
	ref := s.Order[index]
	s.removeOrderAt(index)
	s.history.Record(history.Change{
		Undo:   func() { s.insertOrderAt(index, ref) },
		Redo:   func() { s.removeOrderAt(index) },
		Target: s, Property: "order",
	})
}

func (s *Song) insertOrderAt(i int, ref *PartReference) {
	s.Order = append(s.Order, nil)
	copy(s.Order[i+1:], s.Order[i:])
	s.Order[i] = ref
}

func (s *Song) removeOrderAt(i int) {
	s.Order = append(s.Order[:i], s.Order[i+1:]...)
}

func (s *Song) moveOrder(from, to int) {
	ref := s.Order[from]
	s.removeOrderAt(from)
	s.insertOrderAt(to, ref)
}
