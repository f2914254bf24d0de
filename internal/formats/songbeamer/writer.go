package songbeamer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

type writerImpl struct{}

// Write emits a property header followed by one "---" block per part,
// with further slides of the same part separated by "--". Translations
// raise the language count to 2 and interleave line-by-line.
func (writerImpl) Write(s *song.Song, w io.Writer) error {
	bw := bufio.NewWriter(w)

	langCount := 1
	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			if sl.Translation != "" {
				langCount = 2
			}
		}
	}

	if s.Title != "" {
		fmt.Fprintf(bw, "#Title=%s\n", s.Title)
	}
	if s.Copyright != "" {
		fmt.Fprintf(bw, "#(c)=%s\n", s.Copyright)
	}
	if s.Category != "" {
		fmt.Fprintf(bw, "#Categories=%s\n", s.Category)
	}
	if s.Comment != "" {
		fmt.Fprintf(bw, "#Comments=%s\n", s.Comment)
	}
	if s.SongbookNumber != "" {
		fmt.Fprintf(bw, "#CCLI=%s\n", s.SongbookNumber)
	}
	if len(s.Sources) > 0 {
		fmt.Fprintf(bw, "#Songbook=%s\n", s.Sources[0].String())
	}
	if langCount > 1 {
		fmt.Fprintf(bw, "#LangCount=%d\n", langCount)
	}

	for _, p := range s.Parts {
		fmt.Fprintln(bw, "---")
		if markerPattern.MatchString(p.Name()) {
			fmt.Fprintln(bw, p.Name())
		} else {
			fmt.Fprintf(bw, "$$M=%s\n", p.Name())
		}
		for i, sl := range p.Slides {
			if i > 0 {
				fmt.Fprintln(bw, "--")
			}
			writeSlide(bw, sl, langCount)
		}
	}

	return errors.Wrap(bw.Flush(), "writing songbeamer output")
}

func writeSlide(w *bufio.Writer, sl *song.Slide, langCount int) {
	if langCount == 1 {
		for _, line := range sl.Lines() {
			fmt.Fprintln(w, line)
		}
		return
	}

	text := sl.Lines()
	trans := sl.TranslationLines()
	n := max(len(text), len(trans))
	for i := 0; i < n; i++ {
		if i < len(text) {
			fmt.Fprintln(w, text[i])
		} else {
			fmt.Fprintln(w)
		}
		if i < len(trans) {
			fmt.Fprintln(w, trans[i])
		} else {
			fmt.Fprintln(w)
		}
	}
}
