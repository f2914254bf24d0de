package chord

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/openworship/cantus/core/errors"
)

// Chord is the parsed interior of a chord token: a root pitch, a verbatim
// quality suffix, and an optional slash-bass pitch. Only root and bass
// take part in transposition; the suffix is carried through unchanged
// apart from minor-quality normalization.
type Chord struct {
	Root    PitchClass
	Suffix  string
	Bass    PitchClass
	HasBass bool
}

// chordGrammar is the participle grammar for chord-name interiors.
// Examples: "C", "F#m", "Bb7", "Am7/G", "C#min7/G#"
//
type chordGrammar struct {
	Root   noteGrammar  `parser:"@@"`
	Suffix *string      `parser:"@Suffix?"`
	Bass   *noteGrammar `parser:"( '/' @@ )?"`
}

type noteGrammar struct {
	Letter     string  `parser:"@Note"`
	Accidental *string `parser:"@Acc?"`
}

// chordLexer tokenizes chord names. Rule order matters: note letters and
// accidentals are tried before the catch-all suffix.
var chordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Note", Pattern: `[A-H]`},
	{Name: "Acc", Pattern: `[#b]`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Suffix", Pattern: `[^/]+`},
})

var chordParser = participle.MustBuild[chordGrammar](
	participle.Lexer(chordLexer),
)

// Parse parses the interior of a chord token. The notation decides how
// the letter "B" is interpreted (pitch class 10 in German notation, 11
// internationally).
func Parse(name string, n Notation) (Chord, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Chord{}, errors.NewParse("chord", 0, "empty chord name")
	}

	parsed, err := chordParser.ParseString("", trimmed)
	if err != nil {
		return Chord{}, errors.NewParse("chord", 0, "invalid chord name "+trimmed)
	}

	c := Chord{}
	root, ok := pitchFromNote(parsed.Root, n)
	if !ok {
		return Chord{}, errors.NewParse("chord", 0, "invalid chord root in "+trimmed)
	}
	c.Root = root

	if parsed.Suffix != nil {
		c.Suffix = *parsed.Suffix
	}

	if parsed.Bass != nil {
		bass, ok := pitchFromNote(*parsed.Bass, n)
		if !ok {
			return Chord{}, errors.NewParse("chord", 0, "invalid bass note in "+trimmed)
		}
		c.Bass = bass
		c.HasBass = true
	}

	return c, nil
}

func pitchFromNote(note noteGrammar, n Notation) (PitchClass, bool) {
	accidental := ""
	if note.Accidental != nil {
		accidental = *note.Accidental
	}
	return pitchFromLetter(note.Letter, accidental, n)
}

// Transpose returns the chord shifted by the given number of semitones.
func (c Chord) Transpose(semitones int) Chord {
	out := c
	out.Root = c.Root.Transpose(semitones)
	if c.HasBass {
		out.Bass = c.Bass.Transpose(semitones)
	}
	return out
}

// String renders the chord in the given notation. When flat is set,
// accidentals are spelled with flats.
func (c Chord) String(n Notation, flat bool) string {
	var sb strings.Builder
	sb.WriteString(c.Root.Name(n, flat))
	sb.WriteString(normalizeQuality(c.Suffix, n))
	if c.HasBass {
		sb.WriteString("/")
		sb.WriteString(c.Bass.Name(n, flat))
	}
	return sb.String()
}

// normalizeQuality rewrites a leading minor marker to match the
// notation's short/long preference. Everything else passes through
// verbatim; "maj" is never a minor marker.
func normalizeQuality(suffix string, n Notation) string {
	switch {
	case strings.HasPrefix(suffix, "maj"):
		return suffix
	case strings.HasPrefix(suffix, "min"):
		if n.Long {
			return suffix
		}
		return "m" + suffix[len("min"):]
	case strings.HasPrefix(suffix, "m"):
		if n.Long {
			return "min" + suffix[len("m"):]
		}
		return suffix
	default:
		return suffix
	}
}
