package layout

import "math"

// lineLayout accumulates the glyphs of a candidate line.
//
// It is a plain value: a speculative extension is done on a copy, and the
// copy is dropped or restored when the extension overflows.
type lineLayout struct {
	glyphIndex                     int
	characterIndex                 int
	glyphIndexInSecondHalf         int
	characterIndexInSecondHalf     int
	numberOfGlyphs                 int
	numberOfCharacters             int
	numberOfGlyphsInSecondHalf     int
	numberOfCharactersInSecondHalf int

	penX                      float64
	previousAdvance           float64
	length                    float64
	whiteSpaceLengthEndOfLine float64
	ascender                  float64
	descender                 float64
	lineSpacing               float64
	relativeLineSize          float64

	direction          Direction
	isSplitToTwoHalves bool
}

// newLineLayout returns an empty line starting at the glyph and character.
func newLineLayout(glyphIndex, characterIndex int, direction Direction) lineLayout {
	return lineLayout{
		glyphIndex:     glyphIndex,
		characterIndex: characterIndex,
		ascender:       -math.MaxFloat64,
		descender:      math.MaxFloat64,
		direction:      direction,
	}
}

// clearCounts empties the glyph and character counters and the vertical
// extents. The pen position and the accumulated length are kept, they are
// absolute within the line.
func (l *lineLayout) clearCounts() {
	l.numberOfGlyphs = 0
	l.numberOfCharacters = 0
	l.numberOfGlyphsInSecondHalf = 0
	l.numberOfCharactersInSecondHalf = 0
	l.ascender = -math.MaxFloat64
	l.descender = math.MaxFloat64
}

// totalGlyphs returns the glyphs of both halves.
func (l *lineLayout) totalGlyphs() int {
	return l.numberOfGlyphs + l.numberOfGlyphsInSecondHalf
}

// totalCharacters returns the characters of both halves.
func (l *lineLayout) totalCharacters() int {
	return l.numberOfCharacters + l.numberOfCharactersInSecondHalf
}

// updateHeight grows the vertical extents with the font metrics.
func (l *lineLayout) updateHeight(fm FontMetrics) {
	l.ascender = math.Max(l.ascender, fm.Ascender)
	l.descender = math.Min(l.descender, fm.Descender)
}

// merge appends the temporary layout to the line. With shifted set the
// start of the line moves to the start of tmp, which happens when glyphs
// were removed from the front for a START ellipsis.
func (l *lineLayout) merge(tmp *lineLayout, shifted bool) {
	l.numberOfCharacters += tmp.numberOfCharacters
	l.numberOfGlyphs += tmp.numberOfGlyphs

	l.penX = tmp.penX
	l.previousAdvance = tmp.previousAdvance
	l.length = tmp.length
	l.whiteSpaceLengthEndOfLine = tmp.whiteSpaceLengthEndOfLine

	l.ascender = math.Max(l.ascender, tmp.ascender)
	l.descender = math.Min(l.descender, tmp.descender)

	l.isSplitToTwoHalves = tmp.isSplitToTwoHalves
	l.glyphIndexInSecondHalf = tmp.glyphIndexInSecondHalf
	l.characterIndexInSecondHalf = tmp.characterIndexInSecondHalf
	l.numberOfGlyphsInSecondHalf = tmp.numberOfGlyphsInSecondHalf
	l.numberOfCharactersInSecondHalf = tmp.numberOfCharactersInSecondHalf

	if shifted {
		l.glyphIndex = tmp.glyphIndex
		l.characterIndex = tmp.characterIndex
	}
}

// lineRun converts the layout into a persisted line.
func (l *lineLayout) lineRun() LineRun {
	run := LineRun{
		GlyphRun:     GlyphRun{GlyphIndex: l.glyphIndex, NumberOfGlyphs: l.numberOfGlyphs},
		CharacterRun: CharacterRun{CharacterIndex: l.characterIndex, NumberOfCharacters: l.numberOfCharacters},
		Width:        l.length,
		Ascender:     l.ascender,
		Descender:    l.descender,
		ExtraLength:  math.Ceil(l.whiteSpaceLengthEndOfLine),
		LineSpacing:  l.lineSpacing,
		Direction:    l.direction,
	}
	if l.isSplitToTwoHalves {
		run.IsSplitToTwoHalves = true
		run.GlyphRunSecondHalf = GlyphRun{GlyphIndex: l.glyphIndexInSecondHalf, NumberOfGlyphs: l.numberOfGlyphsInSecondHalf}
		run.CharacterRunForSecondHalfLine = CharacterRun{
			CharacterIndex:     l.characterIndexInSecondHalf,
			NumberOfCharacters: l.numberOfCharactersInSecondHalf,
		}
	}
	return run
}
