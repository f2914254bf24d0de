package canonical

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/openworship/cantus/core/song"
)

// applyFormatting overlays the formatting section onto the template
// formatting already present on the Song. Absent elements keep their
// template values; this is what makes metadata-sparse 1.0 files open
// cleanly.
func applyFormatting(f *song.Formatting, node *xmlquery.Node) {
	if node == nil {
		return
	}

	if font := xmlquery.FindOne(node, "font"); font != nil {
		applyStyle(&f.MainText, xmlquery.FindOne(font, "maintext"))
		applyStyle(&f.TranslationText, xmlquery.FindOne(font, "translationtext"))
		applyStyle(&f.SourceText, xmlquery.FindOne(font, "sourcetext"))
		applyStyle(&f.CopyrightText, xmlquery.FindOne(font, "copyrighttext"))
	}

	if orient := xmlquery.FindOne(node, "textorientation"); orient != nil {
		if v := childText(orient, "horizontal"); v != "" {
			f.Horizontal = song.ParseHorizontalOrientation(v)
		}
		if v := childText(orient, "vertical"); v != "" {
			f.Vertical = song.ParseVerticalOrientation(v)
		}
		if v := childText(orient, "transpos"); v != "" {
			f.TranslationPosition = song.ParseTranslationPosition(v)
		}
	}

	if borders := xmlquery.FindOne(node, "borders"); borders != nil {
		childInt(borders, "mainleft", &f.Margins.Left)
		childInt(borders, "maintop", &f.Margins.Top)
		childInt(borders, "mainright", &f.Margins.Right)
		childInt(borders, "mainbottom", &f.Margins.Bottom)
	}

	if outline := xmlquery.FindOne(node, "effects/outline"); outline != nil {
		f.OutlineEnabled = outline.SelectAttr("enabled") == "true"
		if packed, err := strconv.Atoi(outline.SelectAttr("color")); err == nil {
			f.OutlineColor = song.ColorFromPacked(packed)
		}
	}
	if shadow := xmlquery.FindOne(node, "effects/shadow"); shadow != nil {
		f.ShadowEnabled = shadow.SelectAttr("enabled") == "true"
		if packed, err := strconv.Atoi(shadow.SelectAttr("color")); err == nil {
			f.ShadowColor = song.ColorFromPacked(packed)
		}
		if dir, err := strconv.Atoi(shadow.SelectAttr("direction")); err == nil {
			f.ShadowDirection = dir
		}
	}
}

func applyStyle(style *song.TextStyle, node *xmlquery.Node) {
	if node == nil {
		return
	}
	if v := childText(node, "name"); v != "" {
		style.FontName = v
	}
	childInt(node, "size", &style.Size)
	if v := childText(node, "bold"); v != "" {
		style.Bold = v == "true"
	}
	if v := childText(node, "italic"); v != "" {
		style.Italic = v == "true"
	}
	if v := childText(node, "color"); v != "" {
		if packed, err := strconv.Atoi(v); err == nil {
			style.Color = song.ColorFromPacked(packed)
		}
	}
	childInt(node, "linespacing", &style.LineSpacing)
}

func childText(node *xmlquery.Node, name string) string {
	child := xmlquery.FindOne(node, name)
	if child == nil {
		return ""
	}
	return child.InnerText()
}

func childInt(node *xmlquery.Node, name string, out *int) {
	v := childText(node, name)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*out = n
	}
}
