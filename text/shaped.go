package text

import "github.com/gogpu/textlayout/layout"

// ShapedGlyph is a glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID layout.GlyphID

	// Cluster is the index, relative to the shaped runes, of the first
	// character the glyph was shaped from. Glyphs of the same cluster
	// share it.
	Cluster int

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64

	// XOffset and YOffset move the glyph from its pen position.
	XOffset float64
	YOffset float64

	// XBearing is the distance from the pen position to the left of the glyph.
	XBearing float64

	// YBearing is the distance from the baseline to the top of the glyph.
	YBearing float64

	// Width and Height are the size of the glyph ink box.
	Width  float64
	Height float64
}
