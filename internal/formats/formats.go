// Package formats provides the format interchange layer: one independent
// reader/writer pair per external lyrics file format, each translating
// between raw bytes and the canonical song model.
//
// Format packages register themselves at init time; importing
// internal/formats/all pulls in every built-in format.
package formats

import (
	"io"
	"sort"
	"strings"

	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

// Reader populates a caller-supplied Song from a byte stream. Formats
// lacking full metadata expect the Song to be pre-initialized from a
// template; the reader only overwrites the fields its format encodes.
// On structurally invalid input the reader fails with a format condition
// and leaves the Song untouched.
type Reader interface {
	Read(s *song.Song, r io.Reader) error
}

// Writer serializes a fully-populated Song to a byte stream. Writer
// output is re-readable by the same format's Reader.
type Writer interface {
	Write(s *song.Song, w io.Writer) error
}

// Format describes one registered file format.
type Format struct {
	// Name is the registry key (e.g., "canonical", "chordpro").
	Name string
	// Description is a one-line human-readable summary.
	Description string
	// Extensions lists file extensions commonly used for this format,
	// leading dot included.
	Extensions []string
	// Reader is nil for export-only formats.
	Reader Reader
	// Writer is nil for import-only formats.
	Writer Writer
}

// CanRead reports whether the format supports import.
func (f *Format) CanRead() bool { return f.Reader != nil }

// CanWrite reports whether the format supports export.
func (f *Format) CanWrite() bool { return f.Writer != nil }

var registry = make(map[string]*Format)

// Register adds a format to the registry. Called from format package
// init functions; a duplicate name panics.
func Register(f *Format) {
	if _, exists := registry[f.Name]; exists {
		panic("formats: duplicate registration of " + f.Name)
	}
	registry[f.Name] = f
}

// Get returns the format registered under the given name.
func Get(name string) (*Format, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.NewNotFound("format", name)
	}
	return f, nil
}

// Names returns all registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByExtension returns the first format claiming the given file
// extension (leading dot optional, case-insensitive), or nil.
func ByExtension(ext string) *Format {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, name := range Names() {
		for _, e := range registry[name].Extensions {
			if strings.ToLower(e) == ext {
				return registry[name]
			}
		}
	}
	return nil
}
