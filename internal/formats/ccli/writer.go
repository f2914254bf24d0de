package ccli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/openworship/cantus/core/chord"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

type writerImpl struct{}

// Write emits the title, one headed stanza per slide, and a closing
// CCLI copyright block. Chord tokens are stripped; the format carries
// plain lyrics only.
func (writerImpl) Write(s *song.Song, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, s.Title)
	fmt.Fprintln(bw)

	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			fmt.Fprintln(bw, heading(p.Name()))
			for _, line := range sl.Lines() {
				fmt.Fprintln(bw, chord.RemoveAll(line))
			}
			fmt.Fprintln(bw)
		}
	}

	if s.SongbookNumber != "" || s.Copyright != "" {
		fmt.Fprintf(bw, "CCLI Song # %s\n", s.SongbookNumber)
		if s.Copyright != "" {
			fmt.Fprintln(bw, s.Copyright)
		}
	}

	return errors.Wrap(bw.Flush(), "writing ccli output")
}

// heading renders a stanza heading the reader maps back to the same
// part name. Names outside the heading vocabulary ride in parentheses
// on a Misc heading.
func heading(name string) string {
	if headingPattern.MatchString(name) && parenNamePattern.FindStringSubmatch(name) == nil {
		return name
	}
	return fmt.Sprintf("Misc (%s)", name)
}
