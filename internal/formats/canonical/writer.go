package canonical

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/openworship/cantus/core/encoding"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

type writerImpl struct{}

// Write serializes the Song as canonical XML in ISO 8859-1.
func (writerImpl) Write(s *song.Song, w io.Writer) error {
	bw := bufio.NewWriter(encoding.Latin1Writer(w))

	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n")
	fmt.Fprintf(bw, "<song version=%q id=%q>\n", formatVersion, s.ID.String())

	writeGeneral(bw, s)
	writeSongtext(bw, s)
	writeOrder(bw, s)
	writeInformation(bw, s)
	writeFormatting(bw, s)

	fmt.Fprintf(bw, "</song>\n")
	return errors.Wrap(bw.Flush(), "writing canonical output")
}

func writeGeneral(w *bufio.Writer, s *song.Song) {
	fmt.Fprintf(w, "  <general>\n")
	writeElem(w, 4, "title", s.Title)
	writeElem(w, 4, "category", s.Category)
	writeElem(w, 4, "language", s.Language)
	writeElem(w, 4, "translationlanguage", s.TranslationLanguage)
	writeElem(w, 4, "comment", s.Comment)
	writeElem(w, 4, "songbooknumber", s.SongbookNumber)
	fmt.Fprintf(w, "  </general>\n")
}

func writeSongtext(w *bufio.Writer, s *song.Song) {
	fmt.Fprintf(w, "  <songtext>\n")
	for _, p := range s.Parts {
		fmt.Fprintf(w, "    <part caption=\"%s\">\n", encoding.EscapeXMLAttr(p.Name()))
		for _, sl := range p.Slides {
			fmt.Fprintf(w, "      <slide backgroundnr=\"%d\"", sl.BackgroundIndex)
			if sl.FontSize != 0 {
				fmt.Fprintf(w, " fontsize=\"%d\"", sl.FontSize)
			}
			fmt.Fprintf(w, ">\n")
			for _, line := range sl.Lines() {
				writeElem(w, 8, "line", line)
			}
			for _, line := range sl.TranslationLines() {
				writeElem(w, 8, "translation", line)
			}
			fmt.Fprintf(w, "      </slide>\n")
		}
		fmt.Fprintf(w, "    </part>\n")
	}
	fmt.Fprintf(w, "  </songtext>\n")
}

func writeOrder(w *bufio.Writer, s *song.Song) {
	if len(s.Order) == 0 {
		return
	}
	fmt.Fprintf(w, "  <order>\n")
	for _, ref := range s.Order {
		writeElem(w, 4, "item", ref.Name())
	}
	fmt.Fprintf(w, "  </order>\n")
}

func writeInformation(w *bufio.Writer, s *song.Song) {
	fmt.Fprintf(w, "  <information>\n")
	fmt.Fprintf(w, "    <copyright position=\"%s\">\n", s.Formatting.CopyrightPosition)
	writeElem(w, 6, "text", s.Copyright)
	fmt.Fprintf(w, "    </copyright>\n")
	fmt.Fprintf(w, "    <source position=\"%s\">\n", s.Formatting.SourcePosition)
	for _, src := range s.Sources {
		writeElem(w, 6, "text", src.String())
	}
	fmt.Fprintf(w, "    </source>\n")
	fmt.Fprintf(w, "  </information>\n")
}

func writeFormatting(w *bufio.Writer, s *song.Song) {
	f := s.Formatting
	fmt.Fprintf(w, "  <formatting>\n")

	fmt.Fprintf(w, "    <font>\n")
	writeStyle(w, "maintext", f.MainText)
	writeStyle(w, "translationtext", f.TranslationText)
	writeStyle(w, "sourcetext", f.SourceText)
	writeStyle(w, "copyrighttext", f.CopyrightText)
	fmt.Fprintf(w, "    </font>\n")

	writeBackgrounds(w, s)

	fmt.Fprintf(w, "    <textorientation>\n")
	writeElem(w, 6, "horizontal", f.Horizontal.String())
	writeElem(w, 6, "vertical", f.Vertical.String())
	writeElem(w, 6, "transpos", f.TranslationPosition.String())
	fmt.Fprintf(w, "    </textorientation>\n")

	fmt.Fprintf(w, "    <borders>\n")
	writeElem(w, 6, "mainleft", strconv.Itoa(f.Margins.Left))
	writeElem(w, 6, "maintop", strconv.Itoa(f.Margins.Top))
	writeElem(w, 6, "mainright", strconv.Itoa(f.Margins.Right))
	writeElem(w, 6, "mainbottom", strconv.Itoa(f.Margins.Bottom))
	fmt.Fprintf(w, "    </borders>\n")

	fmt.Fprintf(w, "    <effects>\n")
	fmt.Fprintf(w, "      <outline enabled=\"%t\" color=\"%d\"/>\n", f.OutlineEnabled, f.OutlineColor.Packed())
	fmt.Fprintf(w, "      <shadow enabled=\"%t\" color=\"%d\" direction=\"%d\"/>\n",
		f.ShadowEnabled, f.ShadowColor.Packed(), f.ShadowDirection)
	fmt.Fprintf(w, "    </effects>\n")

	fmt.Fprintf(w, "  </formatting>\n")
}

// writeBackgrounds emits the background string list. A video background
// is carried on the video attribute and writes a dummy "none" file entry
// in its list position so older readers still see a complete list.
func writeBackgrounds(w *bufio.Writer, s *song.Song) {
	video := ""
	for _, bg := range s.Backgrounds {
		if bg.Kind == song.BackgroundVideo {
			video = bg.Path
			break
		}
	}

	if video != "" {
		fmt.Fprintf(w, "    <background video=\"%s\">\n", encoding.EscapeXMLAttr(video))
	} else {
		fmt.Fprintf(w, "    <background>\n")
	}

	wroteDummy := false
	for _, bg := range s.Backgrounds {
		switch bg.Kind {
		case song.BackgroundColor:
			writeElem(w, 6, "file", strconv.Itoa(bg.Color.Packed()))
		case song.BackgroundImage:
			writeElem(w, 6, "file", bg.Path)
		case song.BackgroundVideo:
			if !wroteDummy && bg.Path == video {
				writeElem(w, 6, "file", "none")
				wroteDummy = true
			} else {
				// Only one video survives the legacy encoding; extras
				// degrade to plain file references.
				writeElem(w, 6, "file", bg.Path)
			}
		}
	}
	fmt.Fprintf(w, "    </background>\n")
}

func writeStyle(w *bufio.Writer, name string, style song.TextStyle) {
	fmt.Fprintf(w, "      <%s>\n", name)
	writeElem(w, 8, "name", style.FontName)
	writeElem(w, 8, "size", strconv.Itoa(style.Size))
	writeElem(w, 8, "bold", strconv.FormatBool(style.Bold))
	writeElem(w, 8, "italic", strconv.FormatBool(style.Italic))
	writeElem(w, 8, "color", strconv.Itoa(style.Color.Packed()))
	writeElem(w, 8, "linespacing", strconv.Itoa(style.LineSpacing))
	fmt.Fprintf(w, "      </%s>\n", name)
}

func writeElem(w *bufio.Writer, indent int, name, value string) {
	for range indent {
		w.WriteByte(' ')
	}
	fmt.Fprintf(w, "<%s>%s</%s>\n", name, encoding.EscapeXMLText(value), name)
}
