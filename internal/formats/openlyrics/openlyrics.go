// Package openlyrics implements the write-only OpenLyrics XML export.
// Verse names are derived from part names: the leading word picks a
// category letter (chorus→c, verse→v, bridge→b, pre-chorus→p,
// ending→e), a trailing digit in the name is appended, and underscores
// break ties when two parts would otherwise share a code.
package openlyrics

import "github.com/openworship/cantus/internal/formats"

const formatName = "openlyrics"

const xmlns = "http://openlyrics.info/namespace/2009/song"

func init() {
	formats.Register(&formats.Format{
		Name:        formatName,
		Description: "OpenLyrics XML (export only)",
		Extensions:  []string{".ol.xml"},
		Reader:      nil,
		Writer:      writerImpl{},
	})
}
