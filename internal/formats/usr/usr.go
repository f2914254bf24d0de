// Package usr implements the Key=Value lyric property format. Part
// names and lyric bodies travel in the parallel Fields and Words lists,
// both "/t"-delimited, with "/n" as the in-body line break. Mismatched
// list lengths truncate to the shorter list.
package usr

import "github.com/openworship/cantus/internal/formats"

const formatName = "usr"

const (
	entrySeparator = "/t"
	lineBreak      = "/n"
)

func init() {
	formats.Register(&formats.Format{
		Name:        formatName,
		Description: "SongSelect USR key-value text",
		Extensions:  []string{".usr", ".bin"},
		Reader:      readerImpl{},
		Writer:      writerImpl{},
	})
}
