package html

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/openworship/cantus/core/chord"
	"github.com/openworship/cantus/core/encoding"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

type writerImpl struct{}

const styleBlock = `    body { font-family: sans-serif; }
    p { line-height: 2.2em; }
    span.chord { position: relative; }
    span.chord > span { position: absolute; top: -1.1em; left: 0; font-weight: bold; font-size: 0.8em; }`

// Write renders the Song as a standalone HTML lyric sheet following
// the performance order. Parts outside the order are appended at the
// end so no lyric content is lost.
func (writerImpl) Write(s *song.Song, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "<!DOCTYPE html>")
	fmt.Fprintln(bw, "<html>")
	fmt.Fprintln(bw, "<head>")
	fmt.Fprintln(bw, `  <meta charset="utf-8">`)
	fmt.Fprintf(bw, "  <title>%s</title>\n", encoding.EscapeHTML(s.Title))
	fmt.Fprintln(bw, "  <style>")
	fmt.Fprintln(bw, styleBlock)
	fmt.Fprintln(bw, "  </style>")
	fmt.Fprintln(bw, "</head>")
	fmt.Fprintln(bw, "<body>")
	fmt.Fprintf(bw, "  <h1>%s</h1>\n", encoding.EscapeHTML(s.Title))

	written := make(map[string]bool, len(s.Parts))
	for _, p := range sequence(s) {
		if written[p.Name()] {
			// Back-reference: the full text already appeared above.
			fmt.Fprintf(bw, "  <h2>(%s)</h2>\n", encoding.EscapeHTML(p.Name()))
			continue
		}
		written[p.Name()] = true

		fmt.Fprintf(bw, "  <h2>%s</h2>\n", encoding.EscapeHTML(p.Name()))
		for _, sl := range p.Slides {
			fmt.Fprintln(bw, "  <p>")
			for _, line := range sl.Lines() {
				fmt.Fprintf(bw, "    %s<br>\n", renderLine(line))
			}
			fmt.Fprintln(bw, "  </p>")
		}
	}

	if s.Copyright != "" {
		fmt.Fprintf(bw, "  <footer><small>%s</small></footer>\n", encoding.EscapeHTML(s.Copyright))
	}
	fmt.Fprintln(bw, "</body>")
	fmt.Fprintln(bw, "</html>")

	return errors.Wrap(bw.Flush(), "writing html output")
}

// sequence yields the parts to render: the performance order first,
// then any part the order never references.
func sequence(s *song.Song) []*song.Part {
	var parts []*song.Part
	referenced := make(map[string]bool, len(s.Parts))
	for _, ref := range s.Order {
		if p := s.PartByName(ref.Name()); p != nil {
			parts = append(parts, p)
			referenced[p.Name()] = true
		}
	}
	for _, p := range s.Parts {
		if !referenced[p.Name()] {
			parts = append(parts, p)
		}
	}
	return parts
}

// renderLine escapes the lyric text and turns bracket chord tokens into
// nested chord spans.
func renderLine(line string) string {
	stripped := []rune(chord.RemoveAll(line))

	var sb strings.Builder
	last := 0
	for pos, name := range chord.Chords(line) {
		if pos > len(stripped) {
			pos = len(stripped)
		}
		sb.WriteString(encoding.EscapeHTML(string(stripped[last:pos])))
		fmt.Fprintf(&sb, `<span class="chord"><span>%s</span></span>`, encoding.EscapeHTML(name))
		last = pos
	}
	sb.WriteString(encoding.EscapeHTML(string(stripped[last:])))
	return sb.String()
}
