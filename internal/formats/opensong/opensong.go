// Package opensong implements the bracket-header lyric text format.
// Sections open with a [PartKey] header; the first character of each
// content line selects its role: '.' starts a chord line, a space
// starts a lyric line, a digit starts a numbered verse-group line, and
// ';' or "---" lines are ignored. Chord lines merge into lyric lines by
// column-aligned insertion of bracket tokens; inside assembled text
// "||" splits slides and "|" breaks lines.
package opensong

import "github.com/openworship/cantus/internal/formats"

const formatName = "opensong"

func init() {
	formats.Register(&formats.Format{
		Name:        formatName,
		Description: "OpenSong bracket-header lyric text",
		Extensions:  nil, // these files conventionally carry no extension
		Reader:      readerImpl{},
		Writer:      writerImpl{},
	})
}

// partCategories maps a header key letter to its part category name.
var partCategories = map[byte]string{
	'V': "Verse",
	'C': "Chorus",
	'B': "Bridge",
	'P': "Pre-Chorus",
	'T': "Tag",
	'E': "Ending",
	'I': "Intro",
}
