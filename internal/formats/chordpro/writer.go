package chordpro

import (
	"bufio"
	"fmt"
	"io"

	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

type writerImpl struct{}

// Write emits one {comment:Name:} headed stanza per slide. Repeated
// names merge back into one part on read, so multi-slide parts survive
// the round trip.
func (writerImpl) Write(s *song.Song, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if s.Title != "" {
		fmt.Fprintf(bw, "{title:%s}\n", s.Title)
	}
	if s.Comment != "" {
		fmt.Fprintf(bw, "{subtitle:%s}\n", s.Comment)
	}
	fmt.Fprintln(bw)

	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			fmt.Fprintf(bw, "{comment:%s:}\n", p.Name())
			fmt.Fprintln(bw, sl.Text)
			fmt.Fprintln(bw)
		}
	}

	return errors.Wrap(bw.Flush(), "writing chordpro output")
}
