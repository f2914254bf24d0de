package openlyrics

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/openworship/cantus/core/chord"
	"github.com/openworship/cantus/core/encoding"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

type writerImpl struct{}

var verseCategories = map[string]byte{
	"chorus":     'c',
	"verse":      'v',
	"bridge":     'b',
	"pre-chorus": 'p',
	"ending":     'e',
}

var trailingDigitPattern = regexp.MustCompile(`(\d+)\s*$`)

// Write serializes the Song as OpenLyrics XML. One verse element per
// part, one lines element per slide.
func (writerImpl) Write(s *song.Song, w io.Writer) error {
	bw := bufio.NewWriter(w)

	codes := verseCodes(s.Parts)

	fmt.Fprintln(bw, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(bw, "<song xmlns=%q version=\"0.8\">\n", xmlns)

	fmt.Fprintln(bw, "  <properties>")
	fmt.Fprintln(bw, "    <titles>")
	fmt.Fprintf(bw, "      <title>%s</title>\n", encoding.EscapeXMLText(s.Title))
	fmt.Fprintln(bw, "    </titles>")
	if s.Copyright != "" {
		fmt.Fprintf(bw, "    <copyright>%s</copyright>\n", encoding.EscapeXMLText(s.Copyright))
	}
	if s.Comment != "" {
		fmt.Fprintln(bw, "    <comments>")
		fmt.Fprintf(bw, "      <comment>%s</comment>\n", encoding.EscapeXMLText(s.Comment))
		fmt.Fprintln(bw, "    </comments>")
	}
	if s.Category != "" {
		fmt.Fprintln(bw, "    <themes>")
		fmt.Fprintf(bw, "      <theme>%s</theme>\n", encoding.EscapeXMLText(s.Category))
		fmt.Fprintln(bw, "    </themes>")
	}
	if len(s.Sources) > 0 {
		fmt.Fprintln(bw, "    <songbooks>")
		for _, src := range s.Sources {
			fmt.Fprintf(bw, "      <songbook name=\"%s\"", encoding.EscapeXMLAttr(src.Songbook))
			if src.HasNumber {
				fmt.Fprintf(bw, " entry=\"%d\"", src.Number)
			}
			fmt.Fprintln(bw, "/>")
		}
		fmt.Fprintln(bw, "    </songbooks>")
	}
	if len(s.Order) > 0 {
		var order []string
		for _, ref := range s.Order {
			if code, ok := codes[ref.Name()]; ok {
				order = append(order, code)
			}
		}
		fmt.Fprintf(bw, "    <verseOrder>%s</verseOrder>\n", strings.Join(order, " "))
	}
	fmt.Fprintln(bw, "  </properties>")

	fmt.Fprintln(bw, "  <lyrics>")
	for _, p := range s.Parts {
		fmt.Fprintf(bw, "    <verse name=\"%s\">\n", codes[p.Name()])
		for _, sl := range p.Slides {
			fmt.Fprintln(bw, "      <lines>")
			lines := sl.Lines()
			for i, line := range lines {
				fmt.Fprintf(bw, "        %s", renderLine(line))
				if i < len(lines)-1 {
					fmt.Fprint(bw, "<br/>")
				}
				fmt.Fprintln(bw)
			}
			fmt.Fprintln(bw, "      </lines>")
		}
		fmt.Fprintln(bw, "    </verse>")
	}
	fmt.Fprintln(bw, "  </lyrics>")
	fmt.Fprintln(bw, "</song>")

	return errors.Wrap(bw.Flush(), "writing openlyrics output")
}

// verseCodes assigns each part its verse name. Codes already taken get
// underscores appended until unique.
func verseCodes(parts []*song.Part) map[string]string {
	codes := make(map[string]string, len(parts))
	taken := make(map[string]bool, len(parts))
	for _, p := range parts {
		code := baseCode(p.Name())
		for taken[code] {
			code += "_"
		}
		taken[code] = true
		codes[p.Name()] = code
	}
	return codes
}

func baseCode(name string) string {
	letter := byte('o') // anything outside the category table
	lower := strings.ToLower(name)
	for word, l := range verseCategories {
		if strings.HasPrefix(lower, word) {
			letter = l
			break
		}
	}
	code := string(letter)
	if m := trailingDigitPattern.FindStringSubmatch(name); m != nil {
		code += m[1]
	}
	return code
}

// renderLine converts bracket chord tokens into OpenLyrics chord
// elements and escapes the remaining text.
func renderLine(line string) string {
	stripped := []rune(chord.RemoveAll(line))

	type tok struct {
		pos  int
		name string
	}
	var toks []tok
	for pos, name := range chord.Chords(line) {
		toks = append(toks, tok{pos, name})
	}

	var sb strings.Builder
	last := 0
	for _, tk := range toks {
		if tk.pos > len(stripped) {
			tk.pos = len(stripped)
		}
		sb.WriteString(encoding.EscapeXMLText(string(stripped[last:tk.pos])))
		fmt.Fprintf(&sb, "<chord name=\"%s\"/>", encoding.EscapeXMLAttr(tk.name))
		last = tk.pos
	}
	sb.WriteString(encoding.EscapeXMLText(string(stripped[last:])))
	return sb.String()
}
