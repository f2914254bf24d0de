package encoding

import (
	"io"

	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextReader wraps r with BOM sniffing: UTF-8, UTF-16LE and UTF-16BE
// BOMs are honored and stripped, everything else passes through as
// UTF-8. Line-oriented format readers use this so that files saved by
// Windows editors parse the same as plain ones.
func TextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder().Transformer))
}

// Latin1Reader wraps r so ISO 8859-1 bytes read from it come out as UTF-8.
func Latin1Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, charmap.ISO8859_1.NewDecoder().Transformer)
}

// Latin1Writer wraps w so UTF-8 written to it is emitted as ISO 8859-1.
// Runes outside the Latin-1 repertoire are replaced rather than failing
// the write; the canonical format predates Unicode-clean tooling.
func Latin1Writer(w io.Writer) io.Writer {
	enc := xenc.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	return transform.NewWriter(w, enc.Transformer)
}
