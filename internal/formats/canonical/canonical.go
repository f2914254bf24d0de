// Package canonical implements the primary, full-fidelity XML song
// format. The document is a tagged tree with general, songtext, order,
// information and formatting sections, encoded in ISO 8859-1. Colors are
// packed integers (R | G<<8 | B<<16); backgrounds are a
// file-name-or-color-or-"none" string list, with a video background
// carried as an attribute plus a dummy "none" entry for backward
// compatibility.
package canonical

import "github.com/openworship/cantus/internal/formats"

const formatName = "canonical"

// formatVersion is written to new files. Readers accept any 1.x input.
const formatVersion = "1.2"

func init() {
	formats.Register(&formats.Format{
		Name:        formatName,
		Description: "Canonical XML song format (full fidelity)",
		Extensions:  []string{".song", ".xml"},
		Reader:      readerImpl{},
		Writer:      writerImpl{},
	})
}
