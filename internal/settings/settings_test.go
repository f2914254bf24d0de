package settings

import (
	"testing"

	"github.com/openworship/cantus/core/chord"
)

func TestDefaults(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Chords.Notation != "international" {
		t.Errorf("notation = %q", s.Chords.Notation)
	}
	if s.Logging.Level != "info" || s.Logging.Format != "text" {
		t.Errorf("logging defaults = %+v", s.Logging)
	}
	if got := s.Notation(); got != (chord.Notation{}) {
		t.Errorf("Notation() = %+v, want zero value", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CANTUS_CHORD_NOTATION", "german")
	t.Setenv("CANTUS_CHORD_LONG_NAMES", "true")
	t.Setenv("CANTUS_LOG_LEVEL", "debug")

	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := chord.Notation{German: true, Long: true}
	if got := s.Notation(); got != want {
		t.Errorf("Notation() = %+v, want %+v", got, want)
	}
	if s.Logging.Level != "debug" {
		t.Errorf("level = %q", s.Logging.Level)
	}
}

func TestInvalidNotationRejected(t *testing.T) {
	t.Setenv("CANTUS_CHORD_NOTATION", "klingon")
	if _, err := New(); err == nil {
		t.Fatal("expected validation error")
	}
}
