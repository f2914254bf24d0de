// Package chord provides the chord annotation and key transposition engine.
//
// Lyric text is treated as plain text with embedded bracket-delimited chord
// tokens, e.g. "Ama[C]zing gr[G]ace". The engine extracts, strips and
// transposes those tokens without disturbing the surrounding text.
//
// All rendering behavior is controlled by an explicit Notation value passed
// into each entry point; the package holds no ambient style state.
package chord

// PitchClass is a pitch reduced to its class, 0 (C) through 11 (B).
type PitchClass int

// Notation selects how pitch and quality names are rendered and parsed.
type Notation struct {
	// German selects German letter names: pitch class 10 is written "B"
	// and 11 is written "H" (international writes them "Bb" and "B").
	German bool

	// Long selects long minor-quality suffixes ("min" instead of "m").
	Long bool
}

// Letter-name tables indexed by pitch class.
var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

	germanSharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "B", "H"}
	germanFlatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "B", "H"}
)

// baseLetters maps natural note letters to pitch classes. "B" is
// notation-dependent and handled separately.
var baseLetters = map[string]PitchClass{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "H": 11,
}

// NormalizeSemitones reduces an arbitrary signed transposition amount to
// the canonical range 0..11. Two amounts producing the same resulting
// pitch class normalize to the same value.
func NormalizeSemitones(n int) int {
	return ((n % 12) + 12) % 12
}

// Name renders a pitch class using the given notation. When flat is set,
// accidentals are spelled with flats instead of sharps.
func (p PitchClass) Name(n Notation, flat bool) string {
	pc := ((int(p) % 12) + 12) % 12
	switch {
	case n.German && flat:
		return germanFlatNames[pc]
	case n.German:
		return germanSharpNames[pc]
	case flat:
		return flatNames[pc]
	default:
		return sharpNames[pc]
	}
}

// Transpose returns the pitch class shifted by the given number of
// semitones, reduced modulo 12.
func (p PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(NormalizeSemitones(int(p) + semitones))
}

// pitchFromLetter resolves a natural letter plus optional accidental to a
// pitch class. The letter "B" means pitch class 10 in German notation and
// 11 internationally; "H" is always 11.
func pitchFromLetter(letter, accidental string, n Notation) (PitchClass, bool) {
	var pc PitchClass
	if letter == "B" {
		if n.German {
			pc = 10
		} else {
			pc = 11
		}
	} else {
		base, ok := baseLetters[letter]
		if !ok {
			return 0, false
		}
		pc = base
	}
	switch accidental {
	case "#":
		pc = pc.Transpose(1)
	case "b":
		pc = pc.Transpose(-1)
	case "":
	default:
		return 0, false
	}
	return pc, true
}

// minorSuffix renders the minor quality marker for the notation.
func minorSuffix(n Notation) string {
	if n.Long {
		return "min"
	}
	return "m"
}
