package usr

import (
	"io"
	"strings"

	"github.com/openworship/cantus/core/encoding"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
	"github.com/openworship/cantus/internal/formats"
)

type readerImpl struct{}

// Read parses Key=Value property text into the Song. [Section] markers
// and unknown keys are skipped; Fields and Words must both be present
// and are zipped into parts, truncating to the shorter list.
func (readerImpl) Read(s *song.Song, r io.Reader) error {
	data, err := io.ReadAll(encoding.TextReader(r))
	if err != nil {
		return errors.Wrap(err, "reading usr input")
	}

	props := make(map[string]string)
	for _, line := range strings.Split(formats.NormalizeLineEndings(string(data)), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue // stray lines degrade to being skipped
		}
		props[strings.ToLower(strings.TrimSpace(key))] = value
	}

	fieldsRaw, haveFields := props["fields"]
	wordsRaw, haveWords := props["words"]
	if !haveFields || !haveWords {
		return errors.NewParse(formatName, 0, "missing Fields or Words property")
	}

	fields := strings.Split(fieldsRaw, entrySeparator)
	words := strings.Split(wordsRaw, entrySeparator)

	type entry struct{ name, text string }
	var entries []entry
	for i := 0; i < min(len(fields), len(words)); i++ {
		name := strings.TrimSpace(fields[i])
		if name == "" {
			continue
		}
		text := strings.ReplaceAll(words[i], lineBreak, "\n")
		entries = append(entries, entry{name, strings.TrimSpace(text)})
	}
	if len(entries) == 0 {
		return errors.NewParse(formatName, 0, "Fields property holds no parts")
	}

	if v, ok := props["title"]; ok {
		s.Title = strings.TrimSpace(v)
	}
	if v, ok := props["copyright"]; ok {
		s.Copyright = strings.TrimSpace(v)
	}
	if v, ok := props["themes"]; ok {
		// The first theme doubles as the category.
		themes := strings.Split(v, entrySeparator)
		s.Category = strings.TrimSpace(themes[0])
	}

	for _, e := range entries {
		p, err := formats.AppendPart(s, e.name, []*song.Slide{{Text: e.text}})
		if err != nil {
			continue
		}
		if len(s.Order) == 0 || s.Order[len(s.Order)-1].Name() != e.name {
			s.AddPartToOrder(p, len(s.Order)) //nolint:errcheck // part added above
		}
	}

	s.History().Clear()
	return nil
}
