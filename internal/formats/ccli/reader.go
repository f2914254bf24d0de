package ccli

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

type parsedStanza struct {
	name  string
	lines []string
}

type parsedSong struct {
	title      string
	number     string
	copyright  string
	stanzas    []parsedStanza
	verseCount int
}

// Read parses title + verse-block text into the Song.
func (readerImpl) Read(s *song.Song, r io.Reader) error {
	data, err := io.ReadAll(encoding.TextReader(r))
	if err != nil {
		return errors.Wrap(err, "reading ccli input")
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

	blocks := splitBlocks(text)
	if len(blocks) == 0 {
		return nil, errors.NewParse(formatName, 0, "document is empty")
	}

	// The first block is the title, alone or with leading lyric content
	// attached when the author skipped the separating blank line.
	ps.title = strings.TrimSpace(blocks[0][0])
	if ps.title == "" {
		return nil, errors.NewParse(formatName, 0, "missing title line")
	}
	if rest := blocks[0][1:]; len(rest) > 0 {
		ps.addStanza(rest)
	}

	for _, block := range blocks[1:] {
		if strings.HasPrefix(strings.TrimSpace(block[0]), "CCLI") {
			ps.number = firstNumber(block[0])
			ps.copyright = strings.TrimSpace(strings.Join(block[1:], "\n"))
			break
		}
		ps.addStanza(block)
	}

	if len(ps.stanzas) == 0 {
		return nil, errors.NewParse(formatName, 0, "document holds no lyric stanzas")
	}
	return ps, nil
}

// addStanza resolves the block's part name: a parenthesized override on
// the heading wins, then the heading itself when it matches the part
// vocabulary; otherwise the whole block is lyric content under a
// generated verse name.
func (ps *parsedSong) addStanza(block []string) {
	heading := strings.TrimSpace(block[0])

	if m := parenNamePattern.FindStringSubmatch(heading); m != nil {
		ps.stanzas = append(ps.stanzas, parsedStanza{name: strings.TrimSpace(m[1]), lines: block[1:]})
		return
	}
	if headingPattern.MatchString(heading) {
		ps.stanzas = append(ps.stanzas, parsedStanza{name: heading, lines: block[1:]})
		return
	}

	ps.verseCount++
	ps.stanzas = append(ps.stanzas, parsedStanza{
		name:  "Verse " + strconv.Itoa(ps.verseCount),
		lines: block,
	})
}

// splitBlocks cuts the line stream into blank-line separated blocks of
// non-empty lines.
func splitBlocks(text string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func firstNumber(line string) string {
	if m := ccliNumberPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

func apply(s *song.Song, ps *parsedSong) {
	s.Title = ps.title
	if ps.number != "" {
		s.SongbookNumber = ps.number
	}
	if ps.copyright != "" {
		s.Copyright = ps.copyright
	}

	for _, st := range ps.stanzas {
		text := strings.Join(st.lines, "\n")
		p, err := formats.AppendPart(s, st.name, []*song.Slide{{Text: text}})
		if err != nil {
			continue
		}
		if len(s.Order) == 0 || s.Order[len(s.Order)-1].Name() != st.name {
			s.AddPartToOrder(p, len(s.Order)) //nolint:errcheck // part added above
		}
	}

	s.History().Clear()
}
