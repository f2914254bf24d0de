package song

import (
	"strings"

	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/history"
)

// Part is a uniquely-named group of slides. A part always has at least
// one slide; operations that would leave it empty fail.
type Part struct {
	name   string
	Slides []*Slide
	song   *Song
}

// NewPart creates a detached part holding one empty slide. It becomes
// live once added to a Song.
func NewPart(name string) *Part {
	return &Part{
		name:   name,
		Slides: []*Slide{{}},
	}
}

// Name returns the part's name. Renaming goes through Song.RenamePart so
// the unique-name invariant stays enforced in one place.
func (p *Part) Name() string {
	return p.name
}

// Song returns the owning song, or nil for a detached part.
func (p *Part) Song() *Song {
	return p.song
}

func (p *Part) hist() *history.Stack {
	if p.song == nil {
		return nil
	}
	return p.song.history
}

// AddSlide appends a new empty slide inheriting the background of the
// part's last slide.
func (p *Part) AddSlide() *Slide {
	sl := &Slide{}
	if n := len(p.Slides); n > 0 {
		sl.BackgroundIndex = p.Slides[n-1].BackgroundIndex
	}
	p.Slides = append(p.Slides, sl)

	p.hist().Record(history.Change{
		Undo:   func() { p.removeSlideAt(len(p.Slides) - 1) },
		Redo:   func() { p.Slides = append(p.Slides, sl) },
		Target: p, Property: "slides",
	})
	return sl
}

// InsertSlideAfter inserts a new empty slide immediately after index i,
// inheriting that slide's background.
func (p *Part) InsertSlideAfter(i int) (*Slide, error) {
	if i < 0 || i >= len(p.Slides) {
		return nil, errors.NewInvalidOp("insert slide", "slide index out of range")
	}
	sl := &Slide{BackgroundIndex: p.Slides[i].BackgroundIndex}
	p.insertSlideAt(i+1, sl)

	p.hist().Record(history.Change{
		Undo:   func() { p.removeSlideAt(i + 1) },
		Redo:   func() { p.insertSlideAt(i+1, sl) },
		Target: p, Property: "slides",
	})
	return sl, nil
}

// RemoveSlide removes the slide at index i. Removing a part's last
// remaining slide is an invalid operation and leaves the part unchanged.
func (p *Part) RemoveSlide(i int) error {
	if i < 0 || i >= len(p.Slides) {
		return errors.NewInvalidOp("remove slide", "slide index out of range")
	}
	if len(p.Slides) == 1 {
		return errors.NewInvalidOp("remove slide", "a part must keep at least one slide")
	}
	sl := p.Slides[i]
	p.removeSlideAt(i)

	p.hist().Record(history.Change{
		Undo:   func() { p.insertSlideAt(i, sl) },
		Redo:   func() { p.removeSlideAt(i) },
		Target: p, Property: "slides",
	})
	return nil
}

// DuplicateSlide deep-copies the slide at index i (text, translation,
// background index and font size) and inserts the copy immediately after
// it. Recorded as one batch.
func (p *Part) DuplicateSlide(i int) (*Slide, error) {
	if i < 0 || i >= len(p.Slides) {
		return nil, errors.NewInvalidOp("duplicate slide", "slide index out of range")
	}
	h := p.hist()
	h.Begin()
	defer h.End()

	dup := p.Slides[i].Copy()
	p.insertSlideAt(i+1, dup)

	h.Record(history.Change{
		Undo:   func() { p.removeSlideAt(i + 1) },
		Redo:   func() { p.insertSlideAt(i+1, dup) },
		Target: p, Property: "slides",
	})
	return dup, nil
}

// SplitSlide splits the slide at index i at the given byte offset into
// its text. The new slide holds the text from the offset onward, with a
// single line break at the cut point stripped, and is inserted
// immediately after the original.
func (p *Part) SplitSlide(i, offset int) (*Slide, error) {
	if i < 0 || i >= len(p.Slides) {
		return nil, errors.NewInvalidOp("split slide", "slide index out of range")
	}
	sl := p.Slides[i]
	if offset < 0 || offset > len(sl.Text) {
		return nil, errors.NewInvalidOp("split slide", "offset out of range")
	}

	head, tail := sl.Text[:offset], sl.Text[offset:]
	switch {
	case strings.HasPrefix(tail, "\r\n"):
		tail = tail[2:]
	case strings.HasPrefix(tail, "\n"):
		tail = tail[1:]
	case strings.HasSuffix(head, "\r\n"):
		head = head[:len(head)-2]
	case strings.HasSuffix(head, "\n"):
		head = head[:len(head)-1]
	}

	h := p.hist()
	h.Begin()
	defer h.End()

	oldText := sl.Text
	sl.Text = head
	h.Record(history.Change{
		Undo:   func() { sl.Text = oldText },
		Redo:   func() { sl.Text = head },
		Target: sl, Property: "text",
	})

	next := &Slide{
		Text:            tail,
		BackgroundIndex: sl.BackgroundIndex,
		FontSize:        sl.FontSize,
	}
	p.insertSlideAt(i+1, next)
	h.Record(history.Change{
		Undo:   func() { p.removeSlideAt(i + 1) },
		Redo:   func() { p.insertSlideAt(i+1, next) },
		Target: p, Property: "slides",
	})
	return next, nil
}

// SetBackground assigns the background to every slide of this part, then
// prunes unreferenced backgrounds song-wide. One batch.
func (p *Part) SetBackground(bg Background) {
	if p.song == nil {
		return
	}
	h := p.hist()
	h.Begin()
	defer h.End()

	idx := p.song.AddBackground(bg)
	for _, sl := range p.Slides {
		p.song.setSlideBackground(sl, idx)
	}
	p.song.CleanBackgrounds()
}

func (p *Part) insertSlideAt(i int, sl *Slide) {
	p.Slides = append(p.Slides, nil)
	copy(p.Slides[i+1:], p.Slides[i:])
	p.Slides[i] = sl
}

func (p *Part) removeSlideAt(i int) {
	p.Slides = append(p.Slides[:i], p.Slides[i+1:]...)
}
