package song

import "github.com/openworship/cantus/core/history"

// AddBackground returns the index of the background, reusing an existing
// structurally-equal entry instead of appending a duplicate.
func (s *Song) AddBackground(bg Background) int {
	for i, existing := range s.Backgrounds {
		if existing.Equal(bg) {
			return i
		}
	}
	s.Backgrounds = append(s.Backgrounds, bg)
	idx := len(s.Backgrounds) - 1

	s.history.Record(history.Change{
		Undo:   func() { s.Backgrounds = s.Backgrounds[:len(s.Backgrounds)-1] },
		Redo:   func() { s.Backgrounds = append(s.Backgrounds, bg) },
		Target: s, Property: "backgrounds",
	})
	return idx
}

// SetBackground assigns the background to every slide of every part,
// then prunes the now-unreferenced entries. One batch.
func (s *Song) SetBackground(bg Background) {
	s.history.Begin()
	defer s.history.End()

	idx := s.AddBackground(bg)
	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			s.setSlideBackground(sl, idx)
		}
	}
	s.CleanBackgrounds()
}

// SetSlideBackground assigns the (possibly newly added) background to a
// single slide.
func (s *Song) SetSlideBackground(sl *Slide, bg Background) {
	s.history.Begin()
	defer s.history.End()

	idx := s.AddBackground(bg)
	s.setSlideBackground(sl, idx)
}

func (s *Song) setSlideBackground(sl *Slide, idx int) {
	old := sl.BackgroundIndex
	if old == idx {
		return
	}
	sl.BackgroundIndex = idx
	s.history.Record(history.Change{
		Undo:   func() { sl.BackgroundIndex = old },
		Redo:   func() { sl.BackgroundIndex = idx },
		Target: sl, Property: "backgroundIndex",
	})
}

// CleanBackgrounds removes every background no slide references and
// rewrites each slide's index to the post-removal position. The
// old-index-to-new-index map is computed in a single pass before any
// removal is applied, so indexes are never remapped against a
// partially-shifted list. The resolved background of every slide is
// unchanged.
func (s *Song) CleanBackgrounds() {
	used := make(map[int]bool)
	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			used[sl.BackgroundIndex] = true
		}
	}

	remap := make(map[int]int, len(used))
	kept := make([]Background, 0, len(used))
	for i, bg := range s.Backgrounds {
		if used[i] {
			remap[i] = len(kept)
			kept = append(kept, bg)
		}
	}
	if len(kept) == len(s.Backgrounds) {
		return
	}

	oldBackgrounds := s.Backgrounds
	oldIndexes := make(map[*Slide]int)
	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			oldIndexes[sl] = sl.BackgroundIndex
		}
	}

	apply := func() {
		s.Backgrounds = kept
		for sl, old := range oldIndexes {
			sl.BackgroundIndex = remap[old]
		}
	}
	revert := func() {
		s.Backgrounds = oldBackgrounds
		for sl, old := range oldIndexes {
			sl.BackgroundIndex = old
		}
	}

	apply()
	s.history.Record(history.Change{
		Undo:   revert,
		Redo:   apply,
		Target: s, Property: "backgrounds",
	})
}
