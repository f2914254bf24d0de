package canonical

import (
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/google/uuid"

	"github.com/openworship/cantus/core/encoding"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
	"github.com/openworship/cantus/internal/formats"
)

type readerImpl struct{}

// Compiled selectors for the sections visited on every read.
var (
	partsExpr = xpath.MustCompile("songtext/part")
	orderExpr = xpath.MustCompile("order/item")
	filesExpr = xpath.MustCompile("formatting/background/file")
)

// xmlDeclEncPattern extracts the encoding pseudo-attribute of the XML
// declaration so legacy Latin-1 files can be transcoded before parsing.
var xmlDeclEncPattern = regexp.MustCompile(`(?i)encoding\s*=\s*"([A-Za-z0-9._-]+)"`)

// parsed mirror of the file, built completely before the Song is touched.
type parsedSong struct {
	id                  string
	title               string
	category            string
	language            string
	translationLanguage string
	comment             string
	copyright           string
	songbookNumber      string
	sources             []song.Source
	backgrounds         []song.Background
	parts               []parsedPart
	order               []string
	copyrightPos        string
	sourcePos           string
	formattingNode      *xmlquery.Node
}

type parsedPart struct {
	name   string
	slides []*song.Slide
}

// Read populates the Song from canonical XML. Structural errors leave
// the Song untouched.
func (readerImpl) Read(s *song.Song, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading canonical input")
	}

	doc, err := parseDocument(data)
	if err != nil {
		return errors.NewParse(formatName, 0, err.Error())
	}

	root := xmlquery.FindOne(doc, "song")
	if root == nil {
		return errors.NewParse(formatName, 0, "missing song root element")
	}
	if v := root.SelectAttr("version"); v != "" && !strings.HasPrefix(v, "1.") {
		return errors.NewParse(formatName, 0, "unsupported format version "+v)
	}

	ps, err := parseSong(root)
	if err != nil {
		return err
	}

	apply(s, ps)
	return nil
}

func parseDocument(data []byte) (*xmlquery.Node, error) {
	head := data
	if len(head) > 128 {
		head = head[:128]
	}
	if m := xmlDeclEncPattern.FindSubmatch(head); m != nil {
		switch strings.ToLower(string(m[1])) {
		case "iso-8859-1", "latin1", "windows-1252":
			decoded, err := io.ReadAll(encoding.Latin1Reader(bytes.NewReader(data)))
			if err != nil {
				return nil, err
			}
			data = xmlDeclEncPattern.ReplaceAll(decoded, []byte(`encoding="UTF-8"`))
		}
	}
	return xmlquery.Parse(bytes.NewReader(data))
}

func parseSong(root *xmlquery.Node) (*parsedSong, error) {
	general := xmlquery.FindOne(root, "general")
	if general == nil {
		return nil, errors.NewParse(formatName, 0, "missing general section")
	}
	songtext := xmlquery.FindOne(root, "songtext")
	if songtext == nil {
		return nil, errors.NewParse(formatName, 0, "missing songtext section")
	}

	ps := &parsedSong{
		id:                  root.SelectAttr("id"),
		title:               childText(general, "title"),
		category:            childText(general, "category"),
		language:            childText(general, "language"),
		translationLanguage: childText(general, "translationlanguage"),
		comment:             childText(general, "comment"),
		songbookNumber:      childText(general, "songbooknumber"),
	}
	if ps.title == "" {
		return nil, errors.NewParse(formatName, 0, "missing song title")
	}

	if info := xmlquery.FindOne(root, "information"); info != nil {
		if c := xmlquery.FindOne(info, "copyright"); c != nil {
			ps.copyright = childText(c, "text")
			ps.copyrightPos = c.SelectAttr("position")
		}
		if src := xmlquery.FindOne(info, "source"); src != nil {
			ps.sourcePos = src.SelectAttr("position")
			for _, item := range xmlquery.Find(src, "text") {
				parsed, err := song.ParseSource(strings.TrimSpace(item.InnerText()))
				if err != nil {
					continue // stray empty entries degrade gracefully
				}
				ps.sources = append(ps.sources, parsed)
			}
		}
	}

	if err := parseBackgrounds(root, ps); err != nil {
		return nil, err
	}

	for _, partNode := range xmlquery.QuerySelectorAll(root, partsExpr) {
		part, err := parsePart(partNode, len(ps.backgrounds))
		if err != nil {
			return nil, err
		}
		ps.parts = append(ps.parts, part)
	}
	if len(ps.parts) == 0 {
		return nil, errors.NewParse(formatName, 0, "songtext holds no parts")
	}

	for _, item := range xmlquery.QuerySelectorAll(root, orderExpr) {
		ps.order = append(ps.order, strings.TrimSpace(item.InnerText()))
	}

	ps.formattingNode = xmlquery.FindOne(root, "formatting")

	return ps, nil
}

func parseBackgrounds(root *xmlquery.Node, ps *parsedSong) error {
	bgNode := xmlquery.FindOne(root, "formatting/background")
	video := ""
	if bgNode != nil {
		video = bgNode.SelectAttr("video")
	}
	for _, file := range xmlquery.QuerySelectorAll(root, filesExpr) {
		text := strings.TrimSpace(file.InnerText())
		switch {
		case text == "none" && video != "":
			// The dummy entry written for a video background.
			ps.backgrounds = append(ps.backgrounds, song.VideoBackground(video))
			video = ""
		case text == "none":
			ps.backgrounds = append(ps.backgrounds, song.ColorBackground(song.Color{}))
		default:
			if packed, err := strconv.Atoi(text); err == nil {
				ps.backgrounds = append(ps.backgrounds, song.ColorBackground(song.ColorFromPacked(packed)))
			} else {
				ps.backgrounds = append(ps.backgrounds, song.ImageBackground(text))
			}
		}
	}
	if len(ps.backgrounds) == 0 {
		ps.backgrounds = []song.Background{song.ColorBackground(song.Color{})}
	}
	return nil
}

func parsePart(node *xmlquery.Node, backgroundCount int) (parsedPart, error) {
	name := node.SelectAttr("caption")
	if name == "" {
		return parsedPart{}, errors.NewParse(formatName, 0, "part without caption")
	}
	part := parsedPart{name: name}

	for _, slideNode := range xmlquery.Find(node, "slide") {
		sl := &song.Slide{}

		if nr := slideNode.SelectAttr("backgroundnr"); nr != "" {
			idx, err := strconv.Atoi(nr)
			if err != nil {
				return parsedPart{}, errors.NewParse(formatName, 0, "invalid background number "+nr)
			}
			if idx < 0 || idx >= backgroundCount {
				idx = 0 // dangling references degrade to the first background
			}
			sl.BackgroundIndex = idx
		}
		if fs := slideNode.SelectAttr("fontsize"); fs != "" {
			size, err := strconv.Atoi(fs)
			if err != nil {
				return parsedPart{}, errors.NewParse(formatName, 0, "invalid font size "+fs)
			}
			sl.FontSize = size
		}

		var lines, translations []string
		for child := slideNode.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			switch child.Data {
			case "line":
				lines = append(lines, child.InnerText())
			case "translation":
				translations = append(translations, child.InnerText())
			}
		}
		sl.Text = strings.Join(lines, "\n")
		sl.Translation = strings.Join(translations, "\n")

		part.slides = append(part.slides, sl)
	}

	if len(part.slides) == 0 {
		part.slides = []*song.Slide{{}}
	}
	return part, nil
}

func apply(s *song.Song, ps *parsedSong) {
	if id, err := uuid.Parse(ps.id); err == nil {
		s.ID = id
	}
	s.Title = ps.title
	s.Category = ps.category
	s.Language = ps.language
	s.TranslationLanguage = ps.translationLanguage
	s.Comment = ps.comment
	s.Copyright = ps.copyright
	s.SongbookNumber = ps.songbookNumber
	s.Sources = ps.sources
	s.Backgrounds = ps.backgrounds
	if ps.copyrightPos != "" {
		s.Formatting.CopyrightPosition = song.ParseDisplayPosition(ps.copyrightPos)
	}
	if ps.sourcePos != "" {
		s.Formatting.SourcePosition = song.ParseDisplayPosition(ps.sourcePos)
	}

	applyFormatting(&s.Formatting, ps.formattingNode)

	for _, pp := range ps.parts {
		formats.AppendPart(s, pp.name, pp.slides) //nolint:errcheck // names already deduplicated by merge
	}
	for _, name := range ps.order {
		p := s.PartByName(name)
		if p == nil {
			continue // dangling order entries are dropped
		}
		s.AddPartToOrder(p, len(s.Order)) //nolint:errcheck // index and part validated above
	}

	s.History().Clear()
}
