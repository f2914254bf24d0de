package song

import (
	"testing"

	"github.com/openworship/cantus/core/chord"
	"github.com/openworship/cantus/core/errors"
)

func newTestSong(t *testing.T, partNames ...string) *Song {
	t.Helper()
	s := New()
	for _, name := range partNames {
		if err := s.AddPart(NewPart(name)); err != nil {
			t.Fatalf("AddPart(%q): %v", name, err)
		}
	}
	return s
}

func TestAddPartRejectsDuplicateName(t *testing.T) {
	s := newTestSong(t, "Verse 1")

	err := s.AddPart(NewPart("Verse 1"))
	if !errors.Is(err, errors.ErrDuplicateName) {
		t.Fatalf("err = %v, want duplicate name condition", err)
	}
	if len(s.Parts) != 1 {
		t.Errorf("Parts = %d, want 1 (state must be unchanged)", len(s.Parts))
	}
}

func TestRenamePart(t *testing.T) {
	s := newTestSong(t, "Verse 1", "Chorus")
	p := s.PartByName("Verse 1")

	if err := s.RenamePart(p, "Chorus"); !errors.Is(err, errors.ErrDuplicateName) {
		t.Fatalf("renaming to taken name: err = %v, want duplicate name condition", err)
	}
	if p.Name() != "Verse 1" {
		t.Errorf("failed rename must leave name unchanged, got %q", p.Name())
	}

	if err := s.RenamePart(p, "Verse 2"); err != nil {
		t.Fatalf("RenamePart: %v", err)
	}
	if p.Name() != "Verse 2" {
		t.Errorf("Name = %q, want %q", p.Name(), "Verse 2")
	}

	s.History().Undo()
	if p.Name() != "Verse 1" {
		t.Errorf("after undo Name = %q, want %q", p.Name(), "Verse 1")
	}
}

func TestRemoveSlideKeepsLastSlide(t *testing.T) {
	s := newTestSong(t, "Verse 1")
	p := s.PartByName("Verse 1")

	err := p.RemoveSlide(0)
	if !errors.Is(err, errors.ErrInvalidOperation) {
		t.Fatalf("err = %v, want invalid operation condition", err)
	}
	if len(p.Slides) != 1 {
		t.Errorf("Slides = %d, want 1 (part must be unchanged)", len(p.Slides))
	}

	p.AddSlide()
	if err := p.RemoveSlide(0); err != nil {
		t.Fatalf("RemoveSlide with two slides: %v", err)
	}
	if len(p.Slides) != 1 {
		t.Errorf("Slides = %d, want 1", len(p.Slides))
	}
}

func TestDuplicateSlideDeepCopy(t *testing.T) {
	s := newTestSong(t, "Verse 1")
	p := s.PartByName("Verse 1")
	sl := p.Slides[0]
	s.SetSlideText(sl, "Amazing [C]grace")
	s.SetSlideTranslation(sl, "Erstaunliche Gnade")
	s.SetSlideFontSize(sl, 36)

	dup, err := p.DuplicateSlide(0)
	if err != nil {
		t.Fatalf("DuplicateSlide: %v", err)
	}
	if dup == sl {
		t.Fatal("duplicate must be a new slide")
	}
	if dup.Text != sl.Text || dup.Translation != sl.Translation ||
		dup.BackgroundIndex != sl.BackgroundIndex || dup.FontSize != sl.FontSize {
		t.Errorf("duplicate = %+v, want copy of %+v", dup, sl)
	}

	// Mutating the copy must not touch the original.
	s.SetSlideText(dup, "changed")
	if sl.Text != "Amazing [C]grace" {
		t.Error("duplicate shares state with original")
	}
}

func TestSplitSlide(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		offset   int
		wantHead string
		wantTail string
	}{
		{"mid line", "Amazing grace", 7, "Amazing", " grace"},
		{"at line break", "line one\nline two", 8, "line one", "line two"},
		{"after line break", "line one\nline two", 9, "line one", "line two"},
		{"crlf", "line one\r\nline two", 8, "line one", "line two"},
		{"start", "abc", 0, "", "abc"},
		{"end", "abc", 3, "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSong(t, "Verse 1")
			p := s.PartByName("Verse 1")
			p.Slides[0].Text = tt.text

			next, err := p.SplitSlide(0, tt.offset)
			if err != nil {
				t.Fatalf("SplitSlide: %v", err)
			}
			if len(p.Slides) != 2 {
				t.Fatalf("Slides = %d, want 2", len(p.Slides))
			}
			if p.Slides[0].Text != tt.wantHead {
				t.Errorf("head = %q, want %q", p.Slides[0].Text, tt.wantHead)
			}
			if next.Text != tt.wantTail {
				t.Errorf("tail = %q, want %q", next.Text, tt.wantTail)
			}
			if p.Slides[1] != next {
				t.Error("new slide must sit immediately after the original")
			}
		})
	}
}

func TestSplitSlideUndoRestoresText(t *testing.T) {
	s := newTestSong(t, "Verse 1")
	p := s.PartByName("Verse 1")
	const original = "line one\nline two\nline three"
	p.Slides[0].Text = original

	if _, err := p.SplitSlide(0, 9); err != nil {
		t.Fatalf("SplitSlide: %v", err)
	}
	if !s.History().Undo() {
		t.Fatal("Undo returned false")
	}
	if len(p.Slides) != 1 {
		t.Fatalf("after undo Slides = %d, want 1", len(p.Slides))
	}
	if p.Slides[0].Text != original {
		t.Errorf("after undo text = %q, want %q", p.Slides[0].Text, original)
	}
}

func TestUndoRedoRestoresBatchState(t *testing.T) {
	s := newTestSong(t, "Verse 1")
	p := s.PartByName("Verse 1")
	s.SetSlideText(p.Slides[0], "one\ntwo")

	if _, err := p.DuplicateSlide(0); err != nil {
		t.Fatalf("DuplicateSlide: %v", err)
	}
	after := len(p.Slides)

	s.History().Undo()
	s.History().Redo()

	if len(p.Slides) != after {
		t.Errorf("Slides = %d, want %d", len(p.Slides), after)
	}
	if p.Slides[1].Text != "one\ntwo" {
		t.Errorf("redone duplicate text = %q", p.Slides[1].Text)
	}
}

func TestRemovePartRemovesOrderEntries(t *testing.T) {
	s := newTestSong(t, "Verse 1", "Chorus")
	verse := s.PartByName("Verse 1")
	chorus := s.PartByName("Chorus")

	// Performance order: V C V C
	for i, p := range []*Part{verse, chorus, verse, chorus} {
		if err := s.AddPartToOrder(p, i); err != nil {
			t.Fatalf("AddPartToOrder: %v", err)
		}
	}

	if err := s.RemovePart(chorus); err != nil {
		t.Fatalf("RemovePart: %v", err)
	}
	if len(s.Parts) != 1 {
		t.Errorf("Parts = %d, want 1", len(s.Parts))
	}
	if len(s.Order) != 2 {
		t.Fatalf("Order = %d entries, want 2", len(s.Order))
	}
	for _, ref := range s.Order {
		if ref.Part != verse {
			t.Error("surviving order entries must reference the remaining part")
		}
	}

	// Undo restores both the part and its order entries.
	s.History().Undo()
	if len(s.Parts) != 2 || len(s.Order) != 4 {
		t.Fatalf("after undo Parts = %d, Order = %d, want 2 and 4", len(s.Parts), len(s.Order))
	}
	wantOrder := []*Part{verse, chorus, verse, chorus}
	for i, ref := range s.Order {
		if ref.Part != wantOrder[i] {
			t.Errorf("order[%d] references %q", i, ref.Name())
		}
	}
}

func TestOrderOperations(t *testing.T) {
	s := newTestSong(t, "Verse 1", "Chorus")
	verse := s.PartByName("Verse 1")
	chorus := s.PartByName("Chorus")

	if err := s.AddPartToOrder(verse, 0); err != nil {
		t.Fatalf("AddPartToOrder: %v", err)
	}
	if err := s.AddPartToOrder(chorus, 1); err != nil {
		t.Fatalf("AddPartToOrder: %v", err)
	}
	if err := s.AddPartToOrder(chorus, 2); err != nil {
		t.Fatalf("AddPartToOrder: %v", err)
	}

	if err := s.MovePartInOrder(2, 0); err != nil {
		t.Fatalf("MovePartInOrder: %v", err)
	}
	if s.Order[0].Part != chorus || s.Order[1].Part != verse {
		t.Error("move did not reorder entries")
	}

	if err := s.RemovePartFromOrder(0); err != nil {
		t.Fatalf("RemovePartFromOrder: %v", err)
	}
	if len(s.Order) != 2 {
		t.Errorf("Order = %d entries, want 2", len(s.Order))
	}
	if len(s.Parts) != 2 {
		t.Error("order operations must never touch Parts")
	}

	if err := s.AddPartToOrder(NewPart("Detached"), 0); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("ordering a foreign part: err = %v, want not found", err)
	}
}

func TestMoveSlide(t *testing.T) {
	s := newTestSong(t, "Verse 1", "Verse 2")
	from := s.PartByName("Verse 1")
	to := s.PartByName("Verse 2")
	from.AddSlide()
	s.SetSlideText(from.Slides[1], "moving")

	if err := s.MoveSlide(from, 1, to, 1); err != nil {
		t.Fatalf("MoveSlide: %v", err)
	}
	if len(from.Slides) != 1 || len(to.Slides) != 2 {
		t.Fatalf("slide counts = %d/%d, want 1/2", len(from.Slides), len(to.Slides))
	}
	if to.Slides[1].Text != "moving" {
		t.Errorf("moved slide text = %q", to.Slides[1].Text)
	}

	s.History().Undo()
	if len(from.Slides) != 2 || len(to.Slides) != 1 {
		t.Errorf("after undo counts = %d/%d, want 2/1", len(from.Slides), len(to.Slides))
	}

	// Moving a part's only slide would empty it.
	solo := s.PartByName("Verse 2")
	if err := s.MoveSlide(solo, 0, from, 0); !errors.Is(err, errors.ErrInvalidOperation) {
		t.Errorf("moving last slide: err = %v, want invalid operation", err)
	}
}

func TestPropertyEditsMerge(t *testing.T) {
	s := New()
	before := s.History().Len()

	s.SetTitle("A")
	s.SetTitle("Am")
	s.SetTitle("Amazing Grace")

	if got := s.History().Len() - before; got != 1 {
		t.Fatalf("history grew by %d entries, want 1 (merged)", got)
	}
	s.History().Undo()
	if s.Title != "" {
		t.Errorf("after undo Title = %q, want empty", s.Title)
	}
}

func TestTransposeChordsAcrossParts(t *testing.T) {
	s := newTestSong(t, "Verse 1", "Chorus")
	v := s.PartByName("Verse 1")
	c := s.PartByName("Chorus")
	v.Slides[0].Text = "Ama[C]zing"
	c.AddSlide()
	c.Slides[1].Text = "gr[G]ace"

	s.TransposeChords(chord.Notation{}, chord.Key{Tonic: 0}, 2)

	if v.Slides[0].Text != "Ama[D]zing" {
		t.Errorf("verse text = %q", v.Slides[0].Text)
	}
	if c.Slides[1].Text != "gr[A]ace" {
		t.Errorf("chorus text = %q", c.Slides[1].Text)
	}

	// One user-visible step.
	s.History().Undo()
	if v.Slides[0].Text != "Ama[C]zing" || c.Slides[1].Text != "gr[G]ace" {
		t.Error("single undo must revert the whole transposition")
	}
}

func TestRemoveAllChords(t *testing.T) {
	s := newTestSong(t, "Verse 1")
	p := s.PartByName("Verse 1")
	p.Slides[0].Text = "Ama[C]zing gr[G]ace"

	s.RemoveAllChords()
	if p.Slides[0].Text != "Amazing grace" {
		t.Errorf("text = %q", p.Slides[0].Text)
	}
}
