package chord

import (
	"strings"

	"github.com/openworship/cantus/core/errors"
)

// Key is a tonic pitch class plus major/minor quality, the unit of
// musical transposition.
type Key struct {
	Tonic PitchClass
	Minor bool
}

// flatMajorTonics are the major tonics conventionally spelled with flats
// (F, Bb, Eb, Ab, Db, Gb).
var flatMajorTonics = map[PitchClass]bool{5: true, 10: true, 3: true, 8: true, 1: true, 6: true}

// flatMinorTonics are the minor tonics whose relative major is a flat key
// (Dm, Gm, Cm, Fm, Bbm, Ebm).
var flatMinorTonics = map[PitchClass]bool{2: true, 7: true, 0: true, 5: true, 10: true, 3: true}

// ParseKey parses a short-notation key string such as "F#m", "Bb" or
// "Hm". An unparseable string yields a format error and no Key.
func ParseKey(s string, n Notation) (Key, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Key{}, errors.NewParse("key", 0, "empty key string")
	}

	letter := strings.ToUpper(trimmed[:1])
	rest := trimmed[1:]

	accidental := ""
	if strings.HasPrefix(rest, "#") || strings.HasPrefix(rest, "b") {
		accidental = rest[:1]
		rest = rest[1:]
	}

	minor := false
	switch strings.ToLower(rest) {
	case "":
	case "m", "min", "minor", "moll":
		minor = true
	case "maj", "major", "dur":
	default:
		return Key{}, errors.NewParse("key", 0, "unrecognized quality "+rest)
	}

	tonic, ok := pitchFromLetter(letter, accidental, n)
	if !ok {
		return Key{}, errors.NewParse("key", 0, "unrecognized tonic "+letter)
	}

	return Key{Tonic: tonic, Minor: minor}, nil
}

// Transpose returns a new Key with the tonic shifted by amount semitones
// modulo 12, quality unchanged.
func (k Key) Transpose(amount int) Key {
	return Key{Tonic: k.Tonic.Transpose(amount), Minor: k.Minor}
}

// PrefersFlats reports whether chords in this key are conventionally
// spelled with flat accidentals.
func (k Key) PrefersFlats() bool {
	if k.Minor {
		return flatMinorTonics[k.Tonic]
	}
	return flatMajorTonics[k.Tonic]
}

// String renders the key in the given notation, e.g. "F#m" or "Bb".
func (k Key) String(n Notation) string {
	name := k.Tonic.Name(n, k.PrefersFlats())
	if k.Minor {
		return name + minorSuffix(n)
	}
	return name
}
