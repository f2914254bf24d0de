// Package html implements the write-only plain HTML export: one
// heading plus paragraphs per performance-order entry, with chords as
// nested inline spans so a stylesheet can position them superscript. A
// part repeated later in the order renders as a parenthesized
// back-reference heading instead of its full text.
package html

import "github.com/openworship/cantus/internal/formats"

const formatName = "html"

func init() {
	formats.Register(&formats.Format{
		Name:        formatName,
		Description: "Plain HTML lyric sheet (export only)",
		Extensions:  []string{".html", ".htm"},
		Reader:      nil,
		Writer:      writerImpl{},
	})
}
