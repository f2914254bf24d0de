package song

import "strings"

// Slide is one displayable unit: lyric text (possibly with inline chord
// tokens), an optional translation, a background index into the owning
// Song's background list, and a font-size override (0 inherits the
// song's main text size).
type Slide struct {
	Text            string
	Translation     string
	BackgroundIndex int
	FontSize        int
}

// Copy returns a deep copy of the slide.
func (s *Slide) Copy() *Slide {
	c := *s
	return &c
}

// Lines splits the lyric text into lines.
func (s *Slide) Lines() []string {
	if s.Text == "" {
		return nil
	}
	return strings.Split(s.Text, "\n")
}

// TranslationLines splits the translation text into lines.
func (s *Slide) TranslationLines() []string {
	if s.Translation == "" {
		return nil
	}
	return strings.Split(s.Translation, "\n")
}
