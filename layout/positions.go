package layout

// positionBuffer addresses glyph positions by glyph index. A partial
// layout writes into a buffer holding only the glyphs of its range.
type positionBuffer struct {
	buf    []Vector2
	offset int
}

func (b *positionBuffer) at(glyphIndex int) *Vector2 {
	return &b.buf[glyphIndex-b.offset]
}

// clear zeroes the positions of the glyphs [from, to).
func (b *positionBuffer) clear(from, to int) {
	for g := from; g < to; g++ {
		*b.at(g) = Vector2{}
	}
}

// setGlyphPositions computes the position of every glyph of the line
// relative to the line origin. Lines with a reordered bidi line run are
// walked in visual order.
func (pass *layoutPass) setGlyphPositions(line *lineLayout) {
	if line.totalGlyphs() == 0 {
		return
	}
	lm := &pass.p.Model.Logical
	if run := lm.BidiLineAt(line.characterIndex); run != nil && !run.IsIdentity &&
		run.CharacterRun.CharacterIndex == line.characterIndex &&
		len(run.VisualToLogicalMap) == line.numberOfCharacters {
		pass.bidiPositions(line, run)
		return
	}
	pass.ltrPositions(line)
}

func (pass *layoutPass) penStart(glyphIndex int) float64 {
	return -pass.p.Model.Visual.Glyphs[glyphIndex].XBearing + pass.e.cursorWidth + pass.p.Model.OutlineWidth
}

// ltrPositions walks the glyphs of the line in logical order.
func (pass *layoutPass) ltrPositions(line *lineLayout) {
	start := line.glyphIndex
	if line.numberOfGlyphs == 0 {
		start = line.glyphIndexInSecondHalf
	}
	penX := pass.penStart(start)
	penX = pass.placeGlyphs(line.glyphIndex, line.numberOfGlyphs, penX)
	pass.placeGlyphs(line.glyphIndexInSecondHalf, line.numberOfGlyphsInSecondHalf, penX)
}

// bidiPositions walks the characters of the line in visual order and places
// the glyphs of every character carrying glyphs.
func (pass *layoutPass) bidiPositions(line *lineLayout, run *BidiLineInfoRun) {
	vm := &pass.p.Model.Visual

	var penX float64
	started := false
	walk := func(firstCharacter int, visualToLogical []int) {
		for _, relative := range visualToLogical {
			c := firstCharacter + relative
			n := vm.GlyphsPerCharacter[c]
			if n == 0 {
				continue
			}
			g := vm.CharactersToGlyph[c]
			if !started {
				penX = pass.penStart(g)
				started = true
			}
			penX = pass.placeGlyphs(g, n, penX)
		}
	}

	if !line.isSplitToTwoHalves {
		walk(run.CharacterRun.CharacterIndex, run.VisualToLogicalMap)
		return
	}

	second := run.VisualToLogicalMapSecondHalf
	if len(second) != line.numberOfCharactersInSecondHalf {
		second = identityMap(line.numberOfCharactersInSecondHalf)
	}
	// The halves are reordered separately. On a right-to-left line the
	// second half is visually on the left.
	if line.direction == RightToLeft {
		walk(line.characterIndexInSecondHalf, second)
		walk(run.CharacterRun.CharacterIndex, run.VisualToLogicalMap)
		return
	}
	walk(run.CharacterRun.CharacterIndex, run.VisualToLogicalMap)
	walk(line.characterIndexInSecondHalf, second)
}

// placeGlyphs positions count glyphs from start and returns the pen
// position after them.
func (pass *layoutPass) placeGlyphs(start, count int, penX float64) float64 {
	m := pass.p.Model
	vm := &m.Visual
	for i := start; i < start+count; i++ {
		glyph := &vm.Glyphs[i]
		pos := pass.positions.at(i)
		pos.X = penX + glyph.XBearing
		pos.Y = -glyph.YBearing
		penX += glyph.Advance
		if vm.CharactersPerGlyph[i] > 0 && !isWhiteSpace(m.Logical.Text[vm.GlyphsToCharacters[i]]) {
			penX += pass.p.InterGlyphExtraAdvance
		}
	}
	return penX
}

func identityMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}
