package usr

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

type writerImpl struct{}

// Write emits the Key=Value property list. Every slide becomes one
// Fields/Words entry pair; repeated names merge back into multi-slide
// parts on read.
func (writerImpl) Write(s *song.Song, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "[File]")
	fmt.Fprintln(bw, "Type=SongSelect Import File")
	fmt.Fprintln(bw, "Version=3.0")
	fmt.Fprintln(bw, "[S]")
	fmt.Fprintf(bw, "Title=%s\n", s.Title)
	if s.Copyright != "" {
		fmt.Fprintf(bw, "Copyright=%s\n", s.Copyright)
	}
	if s.Category != "" {
		fmt.Fprintf(bw, "Themes=%s\n", s.Category)
	}

	var fields, words []string
	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			fields = append(fields, p.Name())
			words = append(words, strings.ReplaceAll(sl.Text, "\n", lineBreak))
		}
	}
	fmt.Fprintf(bw, "Fields=%s\n", strings.Join(fields, entrySeparator))
	fmt.Fprintf(bw, "Words=%s\n", strings.Join(words, entrySeparator))

	return errors.Wrap(bw.Flush(), "writing usr output")
}
