package opensong

import (
	"io"
	"strings"
	"unicode"

	"github.com/openworship/cantus/core/encoding"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
	"github.com/openworship/cantus/internal/formats"
)

type readerImpl struct{}

// parsedLine is one assembled lyric line. chorded blocks a later chord
// line from merging into it a second time.
type parsedLine struct {
	text    string
	chorded bool
}

type parsedPart struct {
	name  string
	lines []parsedLine
}

// parser walks the line stream. A chord line merges into the directly
// preceding unchorded lyric line when one exists; otherwise it is held
// and applied to the next lyric line of each verse group, so interleaved
// numbered verses share one chord line.
type parser struct {
	parts   []*parsedPart
	byName  map[string]*parsedPart
	section string // full section name, e.g. "Verse 1"
	categ   string // section category, e.g. "Verse"

	pending  string          // held chord line
	consumed map[string]bool // part names the held line was applied to

	prevPart  *parsedPart // directly preceding lyric line, if any
	prevIdx   int
	prevStrip int // marker-prefix width stripped from that line
}

// Read parses bracket-header text into the Song. The format carries no
// metadata; the caller's template Song supplies formatting and
// backgrounds and only Parts and Order are overwritten.
func (readerImpl) Read(s *song.Song, r io.Reader) error {
	data, err := io.ReadAll(encoding.TextReader(r))
	if err != nil {
		return errors.Wrap(err, "reading opensong input")
	}

	p := &parser{byName: make(map[string]*parsedPart)}
	if err := p.parse(formats.NormalizeLineEndings(string(data))); err != nil {
		return err
	}

	apply(s, p.parts)
	return nil
}

func (p *parser) parse(text string) error {
	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1

		if header, ok := cutHeader(line); ok {
			p.section, p.categ = expandPartKey(header)
			p.pending = ""
			p.prevPart = nil
			continue
		}
		if strings.TrimSpace(line) == "" {
			p.prevPart = nil
			continue
		}
		if line[0] == ';' || strings.HasPrefix(line, "---") {
			continue
		}
		if p.section == "" {
			return errors.NewParse(formatName, lineNo, "content before first part header")
		}

		switch {
		case line[0] == '.':
			p.chordLine(line)
		case line[0] >= '0' && line[0] <= '9':
			digits := line[0:1]
			rest := line[1:]
			for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
				digits += rest[0:1]
				rest = rest[1:]
			}
			offset := len(digits)
			if strings.HasPrefix(rest, " ") {
				rest = rest[1:]
				offset++
			}
			p.lyricLine(p.categ+" "+digits, rest, offset)
		case line[0] == ' ':
			p.lyricLine(p.section, line[1:], 1)
		default:
			// Informally authored lines without a role marker degrade to
			// plain lyric content.
			p.lyricLine(p.section, line, 0)
		}
	}

	if len(p.parts) == 0 {
		return errors.NewParse(formatName, 0, "document holds no parts")
	}
	return nil
}

func (p *parser) chordLine(line string) {
	if p.prevPart != nil {
		prev := &p.prevPart.lines[p.prevIdx]
		if !prev.chorded {
			prev.text = mergeChordLine(line, prev.text, p.prevStrip)
			prev.chorded = true
			p.prevPart = nil
			return
		}
	}
	p.pending = line
	p.consumed = make(map[string]bool)
	p.prevPart = nil
}

func (p *parser) lyricLine(partName, stripped string, offset int) {
	pa := p.byName[partName]
	if pa == nil {
		pa = &parsedPart{name: partName}
		p.byName[partName] = pa
		p.parts = append(p.parts, pa)
	}

	ln := parsedLine{text: stripped}
	if p.pending != "" && !p.consumed[partName] {
		ln.text = mergeChordLine(p.pending, stripped, offset)
		ln.chorded = true
		p.consumed[partName] = true
	}
	pa.lines = append(pa.lines, ln)

	p.prevPart = pa
	p.prevIdx = len(pa.lines) - 1
	p.prevStrip = offset
}

// mergeChordLine inserts each chord token of a '.'-marker line into the
// lyric at its raw column, bracket-delimited. offset is the number of
// leading marker characters stripped from the lyric line.
func mergeChordLine(chordLine, lyric string, offset int) string {
	type token struct {
		col  int
		name string
	}
	var tokens []token
	rs := []rune(chordLine)
	start := -1
	for i := 1; i < len(rs); i++ { // rune 0 is the '.' marker
		switch {
		case unicode.IsSpace(rs[i]):
			if start >= 0 {
				tokens = append(tokens, token{start, string(rs[start:i])})
				start = -1
			}
		case start < 0:
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{start, string(rs[start:])})
	}

	out := []rune(lyric)
	for i := len(tokens) - 1; i >= 0; i-- {
		pos := tokens[i].col - offset
		if pos < 0 {
			pos = 0
		}
		for pos > len(out) {
			out = append(out, ' ')
		}
		insert := []rune("[" + tokens[i].name + "]")
		out = append(out[:pos], append(insert, out[pos:]...)...)
	}
	return string(out)
}

// cutHeader reports whether the line is a [PartKey] section header.
func cutHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(trimmed[1 : len(trimmed)-1]), true
}

// expandPartKey turns a header key like "V1" into a part name like
// "Verse 1" plus its category. Unrecognized keys pass through verbatim.
func expandPartKey(key string) (name, category string) {
	if key == "" {
		return "Verse", "Verse"
	}
	categ, ok := partCategories[key[0]&^0x20] // uppercase the letter
	if !ok || (len(key) > 1 && !allDigits(key[1:])) {
		return key, key
	}
	if len(key) == 1 {
		return categ, categ
	}
	return categ + " " + key[1:], categ
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// apply assembles parsed parts into the Song: joined lines split into
// slides on "||", with "|" as an in-slide line break.
func apply(s *song.Song, parts []*parsedPart) {
	for _, pa := range parts {
		lines := make([]string, len(pa.lines))
		for i, ln := range pa.lines {
			lines[i] = strings.TrimRight(ln.text, " ")
		}
		text := strings.Join(lines, "\n")

		var slides []*song.Slide
		for _, block := range strings.Split(text, "||") {
			block = strings.ReplaceAll(block, "|", "\n")
			blockLines := strings.Split(block, "\n")
			for i := range blockLines {
				blockLines[i] = strings.TrimSpace(blockLines[i])
			}
			for len(blockLines) > 0 && blockLines[0] == "" {
				blockLines = blockLines[1:]
			}
			for len(blockLines) > 0 && blockLines[len(blockLines)-1] == "" {
				blockLines = blockLines[:len(blockLines)-1]
			}
			slides = append(slides, &song.Slide{Text: strings.Join(blockLines, "\n")})
		}

		p, err := formats.AppendPart(s, pa.name, slides)
		if err != nil {
			continue
		}
		s.AddPartToOrder(p, len(s.Order)) //nolint:errcheck // part added above
	}

	s.History().Clear()
}
