package chordpro

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

// parserState tracks which section of the document the line stream is
// currently inside.
type parserState int

const (
	stateLyric parserState = iota
	stateChorus
	stateTab
)

// parsedStanza is one blank-line separated block with the part name it
// resolved to. Chorus stanzas share a name so they merge on apply.
type parsedStanza struct {
	name   string
	chorus bool
	text   string
}

type parsedSong struct {
	title    string
	subtitle string
	stanzas  []parsedStanza
}

// Read parses the tag-annotated line stream into the Song. Only the
// fields the format encodes are overwritten; the caller's template
// formatting and backgrounds stay in place.
func (readerImpl) Read(s *song.Song, r io.Reader) error {
	data, err := io.ReadAll(encoding.TextReader(r))
	if err != nil {
		return errors.Wrap(err, "reading chordpro input")
	}

	ps, err := parse(formats.NormalizeLineEndings(string(data)))
	if err != nil {
		return err
	}

	apply(s, ps)
	return nil
}

func parse(text string) (*parsedSong, error) {
	ps := &parsedSong{}

	var (
		state       = stateLyric
		tabReturn   = stateLyric
		stanza      []string
		pendingName string
		verseCount  int
	)

	flush := func(chorus bool) {
		if len(stanza) == 0 {
			return
		}
		name := pendingName
		pendingName = ""
		if name == "" {
			if chorus {
				name = "Chorus"
			} else {
				verseCount++
				name = "Verse " + strconv.Itoa(verseCount)
			}
		}
		ps.stanzas = append(ps.stanzas, parsedStanza{
			name:   name,
			chorus: chorus,
			text:   strings.Join(stanza, "\n"),
		})
		stanza = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if state == stateTab {
			// Tab content is opaque; only the closing tag is structural.
			if tag, _, ok := directive(line); ok && (tag == "end_of_tab" || tag == "eot") {
				state = tabReturn
				continue
			}
			stanza = append(stanza, line)
			continue
		}

		if tag, value, ok := directive(line); ok {
			switch tag {
			case "title", "t":
				ps.title = value
			case "subtitle", "st":
				ps.subtitle = value
			case "comment", "c":
				if name, ok := strings.CutSuffix(value, ":"); ok {
					flush(state == stateChorus)
					pendingName = strings.TrimSpace(name)
				}
			case "start_of_chorus", "soc":
				flush(false)
				state = stateChorus
			case "end_of_chorus", "eoc":
				flush(true)
				state = stateLyric
			case "start_of_tab", "sot":
				tabReturn = state
				state = stateTab
			default:
				// Unknown directives degrade to being skipped.
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			flush(state == stateChorus)
			continue
		}
		stanza = append(stanza, line)
	}
	flush(state == stateChorus)

	if len(ps.stanzas) == 0 {
		return nil, errors.NewParse(formatName, 0, "document holds no lyric content")
	}
	return ps, nil
}

// directive reports whether the line is a {tag} or {tag:value}
// directive. Lines with stray or unbalanced braces stay literal text.
func directive(line string) (tag, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		return "", "", false
	}
	body := trimmed[1 : len(trimmed)-1]
	tag, value, _ = strings.Cut(body, ":")
	return strings.ToLower(strings.TrimSpace(tag)), strings.TrimSpace(value), true
}

func apply(s *song.Song, ps *parsedSong) {
	if ps.title != "" {
		s.Title = ps.title
	}
	if ps.subtitle != "" {
		s.Comment = ps.subtitle
	}

	for _, st := range ps.stanzas {
		existing := s.PartByName(st.name)
		p, _ := formats.AppendPart(s, st.name, []*song.Slide{{Text: st.text}})

		// Every stanza of a new part and every repeated chorus block is
		// one performance-order entry.
		if existing == nil || st.chorus {
			s.AddPartToOrder(p, len(s.Order)) //nolint:errcheck // part just added above
		}
	}

	s.History().Clear()
}
