package song

// HorizontalOrientation is the horizontal text alignment.
type HorizontalOrientation int

// Horizontal alignments.
const (
	HorizontalLeft HorizontalOrientation = iota
	HorizontalCenter
	HorizontalRight
)

// String returns the canonical-format name of the orientation.
func (o HorizontalOrientation) String() string {
	switch o {
	case HorizontalLeft:
		return "left"
	case HorizontalRight:
		return "right"
	default:
		return "center"
	}
}

// ParseHorizontalOrientation parses a canonical-format orientation name.
// Unknown names fall back to center.
func ParseHorizontalOrientation(s string) HorizontalOrientation {
	switch s {
	case "left":
		return HorizontalLeft
	case "right":
		return HorizontalRight
	default:
		return HorizontalCenter
	}
}

// VerticalOrientation is the vertical text placement.
type VerticalOrientation int

// Vertical placements.
const (
	VerticalTop VerticalOrientation = iota
	VerticalCenter
	VerticalBottom
)

// String returns the canonical-format name of the orientation.
func (o VerticalOrientation) String() string {
	switch o {
	case VerticalTop:
		return "top"
	case VerticalBottom:
		return "bottom"
	default:
		return "center"
	}
}

// ParseVerticalOrientation parses a canonical-format orientation name.
// Unknown names fall back to center.
func ParseVerticalOrientation(s string) VerticalOrientation {
	switch s {
	case "top":
		return VerticalTop
	case "bottom":
		return VerticalBottom
	default:
		return VerticalCenter
	}
}

// TranslationPosition is the translation placement mode.
type TranslationPosition int

// Translation placements.
const (
	// TranslationInline interleaves each translation line below its
	// main-text line.
	TranslationInline TranslationPosition = iota
	// TranslationBlock renders the whole translation after the main text.
	TranslationBlock
)

// String returns the canonical-format name of the placement.
func (p TranslationPosition) String() string {
	if p == TranslationBlock {
		return "block"
	}
	return "inline"
}

// ParseTranslationPosition parses a canonical-format placement name.
func ParseTranslationPosition(s string) TranslationPosition {
	if s == "block" {
		return TranslationBlock
	}
	return TranslationInline
}

// DisplayPosition is the display policy for the source and copyright
// lines.
type DisplayPosition int

// Display policies.
const (
	DisplayNone DisplayPosition = iota
	DisplayFirstSlide
	DisplayLastSlide
	DisplayAllSlides
)

// String returns the canonical-format name of the policy.
func (p DisplayPosition) String() string {
	switch p {
	case DisplayFirstSlide:
		return "firstslide"
	case DisplayLastSlide:
		return "lastslide"
	case DisplayAllSlides:
		return "all"
	default:
		return "none"
	}
}

// ParseDisplayPosition parses a canonical-format policy name. Unknown
// names fall back to none.
func ParseDisplayPosition(s string) DisplayPosition {
	switch s {
	case "firstslide":
		return DisplayFirstSlide
	case "lastslide":
		return DisplayLastSlide
	case "all":
		return DisplayAllSlides
	default:
		return DisplayNone
	}
}

// TextStyle is the typography for one of the song's text roles.
type TextStyle struct {
	FontName    string
	Size        int
	Bold        bool
	Italic      bool
	Color       Color
	LineSpacing int
}

// Margins are the page margins in display units.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Formatting is the per-song typography and layout record.
type Formatting struct {
	MainText        TextStyle
	TranslationText TextStyle
	SourceText      TextStyle
	CopyrightText   TextStyle

	Margins Margins

	Horizontal HorizontalOrientation
	Vertical   VerticalOrientation

	OutlineEnabled  bool
	OutlineColor    Color
	ShadowEnabled   bool
	ShadowColor     Color
	ShadowDirection int

	TranslationPosition TranslationPosition
	SourcePosition      DisplayPosition
	CopyrightPosition   DisplayPosition
}

// DefaultFormatting returns the template formatting used for new songs
// and as the baseline for metadata-sparse formats.
func DefaultFormatting() Formatting {
	white := Color{R: 255, G: 255, B: 255}
	return Formatting{
		MainText:          TextStyle{FontName: "Arial", Size: 40, Bold: true, Color: white, LineSpacing: 30},
		TranslationText:   TextStyle{FontName: "Arial", Size: 30, Color: white, LineSpacing: 20},
		SourceText:        TextStyle{FontName: "Arial", Size: 20, Color: white, LineSpacing: 10},
		CopyrightText:     TextStyle{FontName: "Arial", Size: 16, Color: white, LineSpacing: 10},
		Margins:           Margins{Left: 40, Top: 70, Right: 60, Bottom: 70},
		Horizontal:        HorizontalCenter,
		Vertical:          VerticalCenter,
		OutlineEnabled:    false,
		OutlineColor:      Color{},
		ShadowEnabled:     true,
		ShadowColor:       Color{},
		ShadowDirection:   125,
		SourcePosition:    DisplayFirstSlide,
		CopyrightPosition: DisplayLastSlide,
	}
}
