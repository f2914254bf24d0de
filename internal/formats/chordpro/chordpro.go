// Package chordpro implements the tag-annotated lyric text format. A
// document is a line stream of {tag:value} directives and blank-line
// separated stanzas; each stanza becomes one slide. Chorus sections
// bracketed by {start_of_chorus}/{end_of_chorus} accumulate into a
// single part across repeats, tab sections pass through verbatim, and a
// trailing {comment:Name:} line names the part that follows it.
package chordpro

import "github.com/openworship/cantus/internal/formats"

const formatName = "chordpro"

func init() {
	formats.Register(&formats.Format{
		Name:        formatName,
		Description: "ChordPro tag-annotated lyric text",
		Extensions:  []string{".cho", ".chopro", ".crd", ".pro"},
		Reader:      readerImpl{},
		Writer:      writerImpl{},
	})
}
