package chord

import (
	"testing"

	"github.com/openworship/cantus/core/errors"
)

func TestParseKey(t *testing.T) {
	intl := Notation{}
	german := Notation{German: true}

	tests := []struct {
		name     string
		input    string
		notation Notation
		want     Key
	}{
		{"c major", "C", intl, Key{Tonic: 0}},
		{"f sharp minor", "F#m", intl, Key{Tonic: 6, Minor: true}},
		{"b flat", "Bb", intl, Key{Tonic: 10}},
		{"a minor long", "Amin", intl, Key{Tonic: 9, Minor: true}},
		{"international b", "B", intl, Key{Tonic: 11}},
		{"german b is b flat", "B", german, Key{Tonic: 10}},
		{"german h", "H", german, Key{Tonic: 11}},
		{"h minor", "Hm", german, Key{Tonic: 11, Minor: true}},
		{"whitespace", " Eb ", intl, Key{Tonic: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input, tt.notation)
			if err != nil {
				t.Fatalf("ParseKey(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, input := range []string{"", "X", "C#q", "12"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseKey(input, Notation{}); err == nil {
				t.Errorf("ParseKey(%q) should fail", input)
			} else if !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("ParseKey(%q) error should be a format condition, got %v", input, err)
			}
		})
	}
}

func TestKeyTransposeComposes(t *testing.T) {
	keys := []Key{{Tonic: 0}, {Tonic: 6, Minor: true}, {Tonic: 10}}
	amounts := []int{-25, -12, -6, -1, 0, 1, 3, 6, 11, 12, 40}

	for _, k := range keys {
		for _, a := range amounts {
			for _, b := range amounts {
				if got, want := k.Transpose(a).Transpose(b), k.Transpose(a+b); got != want {
					t.Fatalf("Transpose(%d).Transpose(%d) = %+v, want %+v", a, b, got, want)
				}
			}
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		notation Notation
		want     string
	}{
		{"a minor plus three", Key{Tonic: 9, Minor: true}.Transpose(3), Notation{}, "Cm"},
		{"c minus one german", Key{Tonic: 0}.Transpose(-1), Notation{German: true}, "H"},
		{"c minus one international", Key{Tonic: 0}.Transpose(-1), Notation{}, "B"},
		{"flat key spelling", Key{Tonic: 10}, Notation{}, "Bb"},
		{"german b flat", Key{Tonic: 10}, Notation{German: true}, "B"},
		{"long minor", Key{Tonic: 4, Minor: true}, Notation{Long: true}, "Emin"},
		{"sharp key", Key{Tonic: 6, Minor: true}, Notation{}, "F#m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(tt.notation); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeSemitones(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0}, {1, 1}, {11, 11}, {12, 0}, {13, 1},
		{-1, 11}, {-12, 0}, {-13, 11}, {26, 2}, {-26, 10},
	}
	for _, tt := range tests {
		if got := NormalizeSemitones(tt.in); got != tt.want {
			t.Errorf("NormalizeSemitones(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseKeyStringRoundTrip(t *testing.T) {
	for _, n := range []Notation{{}, {German: true}, {Long: true}} {
		for pc := 0; pc < 12; pc++ {
			for _, minor := range []bool{false, true} {
				k := Key{Tonic: PitchClass(pc), Minor: minor}
				parsed, err := ParseKey(k.String(n), n)
				if err != nil {
					t.Fatalf("ParseKey(%q) error: %v", k.String(n), err)
				}
				if parsed != k {
					t.Errorf("round trip of %+v via %q = %+v", k, k.String(n), parsed)
				}
			}
		}
	}
}
