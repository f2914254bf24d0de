package songbeamer

import (
	"io"
	"strconv"
	"strings"

	"github.com/openworship/cantus/core/encoding"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
	"github.com/openworship/cantus/internal/formats"
)

type readerImpl struct{}

// parserState tracks whether the line stream is still inside the
// property header or already in slide content.
type parserState int

const (
	stateHeader parserState = iota
	stateContent
)

type parsedSlide struct {
	partName string // set when the block opened with a part marker
	lines    []string
}

type parsedSong struct {
	props  map[string]string
	slides []parsedSlide
}

// Read parses property-header text into the Song. Metadata the format
// does not carry keeps its template values.
func (readerImpl) Read(s *song.Song, r io.Reader) error {
	data, err := io.ReadAll(encoding.TextReader(r))
	if err != nil {
		return errors.Wrap(err, "reading songbeamer input")
	}

	ps, err := parse(formats.NormalizeLineEndings(string(data)))
	if err != nil {
		return err
	}
	return apply(s, ps)
}

func parse(text string) (*parsedSong, error) {
	ps := &parsedSong{props: make(map[string]string)}

	state := stateHeader
	var current *parsedSlide
	newBlock := false // the next content line may carry a part marker

	// Blank lines inside a block are kept (they pad the language
	// interleave), but trailing ones are layout, not content.
	flush := func() {
		if current == nil {
			return
		}
		lines := current.lines
		for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}
		if len(lines) > 0 {
			current.lines = lines
			ps.slides = append(ps.slides, *current)
		}
		current = nil
	}

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimRight(line, " \t")

		if state == stateHeader {
			switch {
			case trimmed == "---":
				state = stateContent
				newBlock = true
			case strings.HasPrefix(trimmed, "#"):
				key, value, ok := strings.Cut(trimmed[1:], "=")
				if !ok {
					return nil, errors.NewParse(formatName, lineNo, "malformed property line")
				}
				ps.props[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
			case strings.TrimSpace(trimmed) == "":
				// leading blank lines are tolerated
			default:
				return nil, errors.NewParse(formatName, lineNo, "content before the header delimiter")
			}
			continue
		}

		switch {
		case trimmed == "---":
			flush()
			current = &parsedSlide{}
			newBlock = true
		case trimmed == "--" || trimmed == "--A":
			flush()
			current = &parsedSlide{}
		default:
			if current == nil {
				current = &parsedSlide{}
			}
			if newBlock {
				newBlock = false
				if name, ok := strings.CutPrefix(trimmed, "$$M="); ok {
					current.partName = strings.TrimSpace(name)
					continue
				}
				if markerPattern.MatchString(strings.TrimSpace(trimmed)) {
					current.partName = strings.TrimSpace(trimmed)
					continue
				}
			}
			current.lines = append(current.lines, line)
		}
	}
	flush()

	if len(ps.slides) == 0 {
		return nil, errors.NewParse(formatName, 0, "document holds no slide content")
	}
	return ps, nil
}

func apply(s *song.Song, ps *parsedSong) error {
	langCount := 1
	if v, ok := ps.props["langcount"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return errors.NewParse(formatName, 0, "invalid language count "+v)
		}
		langCount = n
	}

	if v, ok := ps.props["title"]; ok {
		s.Title = v
	}
	if v, ok := ps.props["(c)"]; ok {
		s.Copyright = v
	}
	if v, ok := ps.props["categories"]; ok {
		s.Category = v
	}
	if v, ok := ps.props["comments"]; ok {
		s.Comment = v
	}
	if v, ok := ps.props["ccli"]; ok {
		s.SongbookNumber = v
	}
	if v, ok := ps.props["songbook"]; ok {
		if src, err := song.ParseSource(v); err == nil {
			s.Sources = append(s.Sources, src)
		}
	}

	partName := ""
	for _, sl := range ps.slides {
		if sl.partName != "" {
			partName = sl.partName
		}
		name := partName
		if name == "" {
			name = "Verse 1"
		}

		text, translation := deinterleave(sl.lines, langCount)
		p, err := formats.AppendPart(s, name, []*song.Slide{{Text: text, Translation: translation}})
		if err != nil {
			return err
		}
		// Consecutive slides of the same part share one performance-order
		// entry; a later return to the part adds another.
		if len(s.Order) == 0 || s.Order[len(s.Order)-1].Name() != name {
			s.AddPartToOrder(p, len(s.Order)) //nolint:errcheck // part added above
		}
	}

	s.History().Clear()
	return nil
}

// deinterleave splits a slide's lines into text and translation: with a
// language count of n, line i belongs to language i mod n. Languages
// beyond the second are dropped.
func deinterleave(lines []string, langCount int) (text, translation string) {
	if langCount == 1 {
		return strings.Join(lines, "\n"), ""
	}
	var main, trans []string
	for i, line := range lines {
		switch i % langCount {
		case 0:
			main = append(main, line)
		case 1:
			trans = append(trans, line)
		}
	}
	// Padding lines written to keep the interleave aligned are dropped.
	for len(main) > 0 && main[len(main)-1] == "" {
		main = main[:len(main)-1]
	}
	for len(trans) > 0 && trans[len(trans)-1] == "" {
		trans = trans[:len(trans)-1]
	}
	return strings.Join(main, "\n"), strings.Join(trans, "\n")
}
