package song

import (
	"github.com/openworship/cantus/core/chord"
	"github.com/openworship/cantus/core/history"
)

// TransposeChords shifts every chord token in every slide's lyric text
// by the given number of semitones, rendered in the given notation. The
// original key picks the accidental spelling of the result. One batch.
func (s *Song) TransposeChords(n chord.Notation, original chord.Key, semitones int) {
	s.rewriteSlideTexts(func(text string) string {
		return chord.TransposeText(text, n, original, semitones)
	})
}

// RemoveAllChords strips every chord token from every slide. One batch.
func (s *Song) RemoveAllChords() {
	s.rewriteSlideTexts(chord.RemoveAll)
}

// PrettyPrintChords re-renders every chord token in the given notation
// without transposing. One batch.
func (s *Song) PrettyPrintChords(n chord.Notation) {
	s.rewriteSlideTexts(func(text string) string {
		return chord.PrettyPrint(text, n)
	})
}

func (s *Song) rewriteSlideTexts(fn func(string) string) {
	s.history.Begin()
	defer s.history.End()

	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			old := sl.Text
			rewritten := fn(old)
			if rewritten == old {
				continue
			}
			sl.Text = rewritten
			slide := sl
			s.history.Record(history.Change{
				Undo:   func() { slide.Text = old },
				Redo:   func() { slide.Text = rewritten },
				Target: slide, Property: "text",
			})
		}
	}
}
