package formats

import (
	"strings"

	"github.com/openworship/cantus/core/song"
)

// AppendPart adds a named part holding the given slides to the song,
// merging into an existing part of the same name (legacy formats repeat
// part headers freely). Parts always end up with at least one slide.
func AppendPart(s *song.Song, name string, slides []*song.Slide) (*song.Part, error) {
	if existing := s.PartByName(name); existing != nil {
		existing.Slides = append(existing.Slides, slides...)
		return existing, nil
	}
	p := song.NewPart(name)
	if len(slides) > 0 {
		p.Slides = slides
	}
	if err := s.AddPart(p); err != nil {
		return nil, err
	}
	return p, nil
}

// NormalizeLineEndings rewrites CRLF and lone CR line endings to LF.
func NormalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
