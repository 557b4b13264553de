package text

import "github.com/gogpu/textlayout/layout"

// BuiltinShaper maps every character to the nominal glyph of the font, using
// golang.org/x/image/font for the metrics. It supports Latin, Cyrillic,
// Greek, CJK and the scripts that need no contextual shaping.
//
// The shaping is one glyph per character, without:
//   - Ligature substitution (fi, fl, etc.)
//   - Kerning pairs
//   - Contextual forms of Arabic letters
//
// For these features, use GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(runes []rune, face Face, _ layout.Direction) []ShapedGlyph {
	if len(runes) == 0 || face == nil {
		return nil
	}
	parsed := face.Source().Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	hinting := face.Hinting()
	result := make([]ShapedGlyph, len(runes))
	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		bounds := parsed.GlyphBounds(gid, size, hinting)
		result[cluster] = ShapedGlyph{
			GID:      layout.GlyphID(gid),
			Cluster:  cluster,
			XAdvance: parsed.GlyphAdvance(gid, size, hinting),
			XBearing: bounds.MinX,
			YBearing: -bounds.MinY,
			Width:    bounds.Width(),
			Height:   bounds.Height(),
		}
	}
	return result
}
