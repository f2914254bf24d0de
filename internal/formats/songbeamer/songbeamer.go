// Package songbeamer implements the property-header lyric text format.
// A document opens with #Key=Value property lines up to a "---"
// delimiter; after it, "---" starts a new slide block and "--"/"--A"
// split further slides inside the block. The first line of a "---"
// block may name a part, either through a fixed vocabulary of marker
// words (Verse, Chorus, Bridge, ...) or an explicit $$M= directive.
// With a language count of n, every group of n consecutive lines
// interleaves text and translation.
package songbeamer

import (
	"regexp"

	"github.com/openworship/cantus/internal/formats"
)

const formatName = "songbeamer"

func init() {
	formats.Register(&formats.Format{
		Name:        formatName,
		Description: "SongBeamer property-header lyric text",
		Extensions:  []string{".sng"},
		Reader:      readerImpl{},
		Writer:      writerImpl{},
	})
}

// markerPattern matches the fixed part-marker vocabulary, optionally
// followed by a number. German marker words appear alongside the
// English ones in files written by the original tools.
var markerPattern = regexp.MustCompile(`(?i)^(verse|vers|strophe|chorus|refrain|pre-chorus|pre-refrain|bridge|intro|outro|ending|schluss|interlude|zwischenspiel|instrumental|coda|tag|teil|part|solo|misc|unbekannt|unbenannt)(?: *\d+)?$`)
