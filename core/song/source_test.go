package song

import (
	"testing"

	"github.com/openworship/cantus/core/errors"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Source
	}{
		{"slash layout", "Feiern & Loben / 12", Source{Songbook: "Feiern & Loben", Number: 12, HasNumber: true}},
		{"comma nr layout", "Feiern & Loben, Nr. 12", Source{Songbook: "Feiern & Loben", Number: 12, HasNumber: true}},
		{"comma nr no period", "Songbook, Nr 7", Source{Songbook: "Songbook", Number: 7, HasNumber: true}},
		{"comma only", "Songbook, 33", Source{Songbook: "Songbook", Number: 33, HasNumber: true}},
		{"bare name", "Feiern & Loben", Source{Songbook: "Feiern & Loben"}},
		{"tight slash", "Book/5", Source{Songbook: "Book", Number: 5, HasNumber: true}},
		{"surrounding space", "  Book / 5  ", Source{Songbook: "Book", Number: 5, HasNumber: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSource(tt.input)
			if err != nil {
				t.Fatalf("ParseSource(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSource(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSourceEmpty(t *testing.T) {
	if _, err := ParseSource("   "); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("err = %v, want format condition", err)
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		name   string
		source Source
		want   string
	}{
		{"with number", Source{Songbook: "Feiern & Loben", Number: 12, HasNumber: true}, "Feiern & Loben / 12"},
		{"bare", Source{Songbook: "Feiern & Loben"}, "Feiern & Loben"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceRoundTrip(t *testing.T) {
	inputs := []string{"Feiern & Loben / 12", "Songbook"}
	for _, in := range inputs {
		parsed, err := ParseSource(in)
		if err != nil {
			t.Fatalf("ParseSource(%q): %v", in, err)
		}
		again, err := ParseSource(parsed.String())
		if err != nil {
			t.Fatalf("reparse of %q: %v", parsed.String(), err)
		}
		if again != parsed {
			t.Errorf("round trip of %q: %+v vs %+v", in, parsed, again)
		}
	}
}
