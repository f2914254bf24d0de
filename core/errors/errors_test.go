package errors

import (
	"errors"
	"testing"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"with line", &ParseError{Format: "chordpro", Line: 3, Message: "unclosed directive"}, "failed to parse chordpro at line 3: unclosed directive"},
		{"without line", &ParseError{Format: "canonical", Message: "wrong root element"}, "failed to parse canonical: wrong root element"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Error("ParseError should unwrap to ErrInvalidInput")
			}
		})
	}
}

func TestParseErrorUnwrapsUnderlying(t *testing.T) {
	underlying := errors.New("boom")
	err := &ParseError{Format: "usr", Message: "bad", Err: underlying}
	if !errors.Is(err, underlying) {
		t.Error("ParseError with Err should unwrap to the underlying error")
	}
}

func TestDuplicateNameError(t *testing.T) {
	err := NewDuplicateName("part", "Chorus 1")
	if got, want := err.Error(), `part name already in use: "Chorus 1"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrDuplicateName) {
		t.Error("should unwrap to ErrDuplicateName")
	}
}

func TestInvalidOpError(t *testing.T) {
	err := NewInvalidOp("remove slide", "a part must keep at least one slide")
	if got, want := err.Error(), "cannot remove slide: a part must keep at least one slide"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidOperation) {
		t.Error("should unwrap to ErrInvalidOperation")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("format", "pdf")
	if got, want := err.Error(), "format not found: pdf"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("should unwrap to ErrNotFound")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	base := errors.New("base")
	wrapped := Wrap(base, "reading header")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base")
	}
	if got, want := wrapped.Error(), "reading header: base"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "line %d", 4) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
	base := errors.New("base")
	wrapped := Wrapf(base, "line %d", 4)
	if got, want := wrapped.Error(), "line 4: base"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
