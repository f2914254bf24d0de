package opensong

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/openworship/cantus/core/chord"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

type writerImpl struct{}

var partNamePattern = regexp.MustCompile(`^(Verse|Chorus|Bridge|Pre-Chorus|Tag|Ending|Intro)(?: (\d+))?$`)

// Write emits one [PartKey] section per part. Chord-annotated lines
// split into a lyric line with a '.'-marker chord line directly below
// it, so a read merges the chords back into that line; slides are
// separated by a "||" marker line.
func (writerImpl) Write(s *song.Song, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, p := range s.Parts {
		fmt.Fprintf(bw, "[%s]\n", compressPartName(p.Name()))
		for i, sl := range p.Slides {
			if i > 0 {
				fmt.Fprintln(bw, " ||")
			}
			for _, line := range sl.Lines() {
				if chord.HasChords(line) {
					fmt.Fprintln(bw, " "+chord.RemoveAll(line))
					fmt.Fprintln(bw, buildChordLine(line))
				} else {
					fmt.Fprintln(bw, " "+line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	return errors.Wrap(bw.Flush(), "writing opensong output")
}

// compressPartName reverses expandPartKey for the standard categories;
// other names are written verbatim.
func compressPartName(name string) string {
	m := partNamePattern.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	return m[1][:1] + m[2]
}

// buildChordLine lays the line's chord tokens out on a '.'-marker line
// so each token's column matches its position on the lyric line above.
func buildChordLine(line string) string {
	out := []rune{'.'}
	for pos, name := range chord.Chords(line) {
		col := pos + 1 // the lyric line below carries a 1-wide marker
		if col <= len(out) && len(out) > 1 {
			col = len(out) + 1 // keep at least one space between tokens
		}
		for len(out) < col {
			out = append(out, ' ')
		}
		out = append(out, []rune(name)...)
	}
	return string(out)
}
