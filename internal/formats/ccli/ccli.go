// Package ccli implements the title + verse-block lyric text format.
// The first line is the song title; blank-line separated stanzas follow,
// each opened by a heading line such as "Verse 1" or "Chorus". A part
// name in parentheses on the heading overrides the heading itself. A
// line starting with "CCLI" ends the lyric section and begins the
// copyright block.
package ccli

import (
	"regexp"

	"github.com/openworship/cantus/internal/formats"
)

const formatName = "ccli"

func init() {
	formats.Register(&formats.Format{
		Name:        formatName,
		Description: "CCLI SongSelect lyric text",
		Extensions:  []string{".txt"},
		Reader:      readerImpl{},
		Writer:      writerImpl{},
	})
}

// headingPattern matches stanza headings derived from the common part
// vocabulary, optionally numbered.
var headingPattern = regexp.MustCompile(`(?i)^(verse|chorus|bridge|pre-chorus|intro|outro|ending|tag|interlude|misc|vamp)(?: *\d+)?$`)

// parenNamePattern captures a parenthesized part-name override on a
// heading line, e.g. "Misc 1 (Bridge)".
var parenNamePattern = regexp.MustCompile(`\(([^)]+)\)\s*$`)

// ccliNumberPattern pulls the song number out of the "CCLI Song # NNNN"
// line that opens the copyright block.
var ccliNumberPattern = regexp.MustCompile(`(\d+)`)
