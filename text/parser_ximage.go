package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

func (f *ximageParsedFont) name(id sfnt.NameID) string {
	if buf, err := f.font.Name(nil, id); err == nil {
		return buf
	}
	return ""
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string { return f.name(sfnt.NameIDFamily) }

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string { return f.name(sfnt.NameIDFull) }

// Subfamily implements ParsedFont.Subfamily.
func (f *ximageParsedFont) Subfamily() string { return f.name(sfnt.NameIDSubfamily) }

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64, hinting Hinting) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), fontHinting(hinting))
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(glyphIndex uint16, ppem float64, hinting Hinting) Rect {
	var buf sfnt.Buffer
	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), fontHinting(hinting))
	if err != nil {
		return Rect{}
	}

	return Rect{
		MinX: fixedToFloat(bounds.Min.X),
		MinY: fixedToFloat(bounds.Min.Y),
		MaxX: fixedToFloat(bounds.Max.X),
		MaxY: fixedToFloat(bounds.Max.Y),
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64, hinting Hinting) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), fontHinting(hinting))
	if err != nil {
		return FontMetrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return FontMetrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(0, fixedToFloat(m.Height)-ascent-descent),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// fontHinting converts a Hinting to the x/image hinting mode.
func fontHinting(h Hinting) font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
