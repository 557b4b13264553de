package text

import "github.com/gogpu/textlayout/layout"

// Shaper converts a run of characters with a single direction into glyphs.
//
// The glyphs are returned in logical order: clusters sorted by their first
// character, whatever the direction of the run.
type Shaper interface {
	Shape(runes []rune, face Face, dir layout.Direction) []ShapedGlyph
}
