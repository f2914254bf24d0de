package chord

import (
	"iter"
	"strings"
)

// Chords returns a lazy, restartable sequence of (position, name) pairs
// for every chord token in text, scanning left to right. Positions are
// rune offsets into the stripped text (the text with all chord tokens
// removed). A "[" with no matching "]" before the next "[" is not a
// chord; it stays literal text and scanning resumes after it.
func Chords(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		runes := []rune(text)
		stripped := 0
		for i := 0; i < len(runes); {
			if runes[i] != '[' {
				stripped++
				i++
				continue
			}
			name, end, ok := matchToken(runes, i)
			if !ok {
				stripped++
				i++
				continue
			}
			if !yield(stripped, name) {
				return
			}
			i = end
		}
	}
}

// matchToken tries to read a chord token starting at the "[" at runes[i].
// It returns the token interior and the index just past the closing "]".
func matchToken(runes []rune, i int) (name string, end int, ok bool) {
	for j := i + 1; j < len(runes); j++ {
		switch runes[j] {
		case ']':
			return string(runes[i+1 : j]), j + 1, true
		case '[':
			return "", 0, false
		}
	}
	return "", 0, false
}

// mapTokens rebuilds text with every valid chord token replaced by
// fn(interior). Literal brackets and all non-token text pass through.
func mapTokens(text string, fn func(name string) string) string {
	runes := []rune(text)
	var sb strings.Builder
	for i := 0; i < len(runes); {
		if runes[i] != '[' {
			sb.WriteRune(runes[i])
			i++
			continue
		}
		name, end, ok := matchToken(runes, i)
		if !ok {
			sb.WriteRune(runes[i])
			i++
			continue
		}
		sb.WriteString(fn(name))
		i = end
	}
	return sb.String()
}

// RemoveAll returns the text with every valid chord token removed and all
// other content unchanged.
func RemoveAll(text string) string {
	return mapTokens(text, func(string) string { return "" })
}

// HasChords reports whether the text contains at least one chord token.
func HasChords(text string) bool {
	for range Chords(text) {
		return true
	}
	return false
}

// TransposeText shifts every parseable chord token in text by the given
// number of semitones and re-renders it in the given notation. The
// original key decides the accidental spelling: the target key (original
// transposed) selects flats or sharps. Tokens with unparseable interiors
// are left as literal text.
func TransposeText(text string, n Notation, original Key, semitones int) string {
	flat := original.Transpose(semitones).PrefersFlats()
	return mapTokens(text, func(name string) string {
		c, err := Parse(name, n)
		if err != nil {
			return "[" + name + "]"
		}
		return "[" + c.Transpose(semitones).String(n, flat) + "]"
	})
}

// PrettyPrint re-renders every parseable chord token in the given
// notation without transposing, normalizing letter names and quality
// suffixes. Unparseable tokens are left untouched.
func PrettyPrint(text string, n Notation) string {
	return mapTokens(text, func(name string) string {
		c, err := Parse(name, n)
		if err != nil {
			return "[" + name + "]"
		}
		return "[" + c.String(n, false) + "]"
	})
}
