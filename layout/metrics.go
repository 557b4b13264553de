package layout

import (
	"math"
	"unicode"
)

// Metrics provides the font and glyph metrics the engine needs.
type Metrics interface {
	// FontMetrics returns the vertical metrics of the font.
	FontMetrics(id FontID) FontMetrics

	// GlyphIndex returns the glyph of the rune in the font, or 0 if the
	// font has no glyph for it.
	GlyphIndex(id FontID, r rune) GlyphID

	// GlyphMetrics fills the advance, bearings and size of the glyph
	// identified by its FontID and Index. It returns false if the font is
	// unknown.
	GlyphMetrics(glyph *GlyphInfo) bool

	// HasItalicStyle reports whether the font has a real italic style.
	HasItalicStyle(id FontID) bool
}

// italicSlant is the horizontal shear of a synthetic italic glyph, about 12 degrees.
const italicSlant = 0.21

// hyphenRunes are tried in order to synthesise the hyphen glyph.
var hyphenRunes = [...]rune{'\u2010', '-'}

// groupMetrics are the accumulated metrics of a glyph group.
type groupMetrics struct {
	fontID         FontID
	numberOfGlyphs int
	fontHeight     float64
	advance        float64
	xBearing       float64
	width          float64
	ascender       float64
	italic         bool
}

// numberOfGlyphsOfGroup returns the number of glyphs shaped from the same
// characters as the glyph. Glyphs with no characters are followed by the
// glyph carrying the characters of the group.
func numberOfGlyphsOfGroup(glyphIndex, lastGlyphPlusOne int, charactersPerGlyph []int) int {
	n := 1
	for i := glyphIndex; i < lastGlyphPlusOne-1 && charactersPerGlyph[i] == 0; i++ {
		n++
	}
	return n
}

// groupMetricsAt returns the metrics of the glyph group starting at the glyph.
func (e *Engine) groupMetricsAt(vm *VisualModel, glyphIndex, lastGlyphPlusOne int) groupMetrics {
	n := numberOfGlyphsOfGroup(glyphIndex, lastGlyphPlusOne, vm.CharactersPerGlyph)
	first := &vm.Glyphs[glyphIndex]

	g := groupMetrics{
		fontID:         first.FontID,
		numberOfGlyphs: n,
		xBearing:       first.XBearing,
		italic:         first.IsItalicRequired,
	}
	if first.FontID != 0 {
		fm := e.metrics.FontMetrics(first.FontID)
		g.fontHeight = fm.Height
		g.ascender = fm.Ascender
	} else {
		g.fontHeight = first.Height
		g.ascender = first.Height
	}

	// The width is the extent of the group measured from the first bearing.
	right := 0.0
	pen := 0.0
	for i := glyphIndex; i < glyphIndex+n; i++ {
		glyph := &vm.Glyphs[i]
		right = math.Max(right, pen+glyph.XBearing+glyph.Width)
		pen += glyph.Advance
	}
	g.advance = pen
	g.width = right - first.XBearing

	if g.italic && first.FontID != 0 && !e.metrics.HasItalicStyle(first.FontID) {
		g.width += italicSlant * g.fontHeight
	}
	return g
}

// fontMetricsOf returns the metrics used for the line height of the group.
// Glyphs without font take their height from the glyph itself.
func (e *Engine) fontMetricsOf(g *groupMetrics) FontMetrics {
	if g.fontID != 0 {
		return e.metrics.FontMetrics(g.fontID)
	}
	return FontMetrics{
		Ascender:           g.fontHeight,
		Height:             g.fontHeight,
		UnderlineThickness: 1,
	}
}

// hyphenGlyph synthesises the hyphen glyph of the font.
func (e *Engine) hyphenGlyph(id FontID) GlyphInfo {
	hyphen := GlyphInfo{FontID: id}
	for _, r := range hyphenRunes {
		if index := e.metrics.GlyphIndex(id, r); index != 0 {
			hyphen.Index = index
			break
		}
	}
	e.metrics.GlyphMetrics(&hyphen)
	return hyphen
}

// isWhiteSpace reports whether the character is laid out as white space.
// No-break spaces are treated as ordinary glyphs.
func isWhiteSpace(r rune) bool {
	switch r {
	case '\u00A0', '\u2007', '\u202F':
		return false
	}
	return unicode.IsSpace(r)
}
