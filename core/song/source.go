package song

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/openworship/cantus/core/errors"
)

// Source identifies a songbook entry: a songbook name plus an optional
// number within it.
type Source struct {
	Songbook  string
	Number    int
	HasNumber bool
}

// sourcePattern matches the numbered free-text layouts:
// "Book / 12" and "Book, Nr. 12" (with flexible whitespace and an
// optional period after "Nr").
var sourcePattern = regexp.MustCompile(`^(.*?)\s*(?:/|,)\s*(?:[Nn]r\.?\s*)?(\d+)\s*$`)

// ParseSource parses a free-text source line. Supported layouts:
//
//	"Book / 12"
//	"Book, Nr. 12"
//	"Book"
func ParseSource(s string) (Source, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Source{}, errors.NewParse("source", 0, "empty source string")
	}

	if m := sourcePattern.FindStringSubmatch(trimmed); m != nil && m[1] != "" {
		number, err := strconv.Atoi(m[2])
		if err != nil {
			return Source{}, errors.NewParse("source", 0, "invalid source number "+m[2])
		}
		return Source{Songbook: strings.TrimSpace(m[1]), Number: number, HasNumber: true}, nil
	}

	return Source{Songbook: trimmed}, nil
}

// String renders the canonical "Book / Nr" form, or just the songbook
// name when no number is set.
func (s Source) String() string {
	if s.HasNumber {
		return s.Songbook + " / " + strconv.Itoa(s.Number)
	}
	return s.Songbook
}
