package layout

import "math"

// visualOrder returns the visual to logical map of a run of embedding
// levels (UAX #9 rule L2): from the highest level down to the lowest odd
// level, every maximal sequence at that level or higher is reversed.
func visualOrder(levels []uint8) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	if len(levels) == 0 {
		return order
	}

	highest, lowest := levels[0], levels[0]
	for _, l := range levels[1:] {
		highest = max(highest, l)
		lowest = min(lowest, l)
	}
	lowestOdd := lowest | 1

	for level := highest; level >= lowestOdd; level-- {
		for i := 0; i < len(levels); {
			if levels[i] < level {
				i++
				continue
			}
			j := i
			for j < len(levels) && levels[j] >= level {
				j++
			}
			reverse(order[i:j])
			i = j
		}
	}
	return order
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// reorderLine returns the visual to logical map of the characters
// [start, start+count), relative to start. Each piece of the range inside a
// bidi paragraph is reordered with the paragraph levels; pieces outside
// bidi paragraphs, or whose paragraph levels don't cover them, keep their
// logical order.
func (lm *LogicalModel) reorderLine(start, count int) (visualToLogical []int, identity bool) {
	visualToLogical = make([]int, count)
	for i := range visualToLogical {
		visualToLogical[i] = i
	}
	identity = true

	for i := 0; i < count; {
		para := lm.paragraphAt(start + i)
		if para == nil {
			i++
			continue
		}
		segmentEnd := min(count, para.CharacterRun.End()-start)
		offset := start + i - para.CharacterRun.CharacterIndex
		if offset+segmentEnd-i > len(para.Levels) {
			i = segmentEnd
			continue
		}

		levels := make([]uint8, segmentEnd-i)
		copy(levels, para.Levels[offset:])

		// Rule L1: white spaces at the end of the line take the paragraph level.
		base := uint8(0)
		if para.Direction == RightToLeft {
			base = 1
		}
		for j := len(levels) - 1; j >= 0 && isWhiteSpace(lm.Text[start+i+j]); j-- {
			levels[j] = base
		}

		for k, logical := range visualOrder(levels) {
			visualToLogical[i+k] = i + logical
			if logical != k {
				identity = false
			}
		}
		i = segmentEnd
	}
	return visualToLogical, identity
}

// storeBidiLine computes and stores the conversion tables of the line.
func (e *Engine) storeBidiLine(p *Parameters, line *lineLayout) BidiLineInfoRun {
	lm := &p.Model.Logical

	run := BidiLineInfoRun{
		CharacterRun: CharacterRun{CharacterIndex: line.characterIndex, NumberOfCharacters: line.numberOfCharacters},
		Direction:    line.direction,
	}
	run.VisualToLogicalMap, run.IsIdentity = lm.reorderLine(line.characterIndex, line.numberOfCharacters)

	if line.isSplitToTwoHalves {
		run.CharacterRunForSecondHalfLine = CharacterRun{
			CharacterIndex:     line.characterIndexInSecondHalf,
			NumberOfCharacters: line.numberOfCharactersInSecondHalf,
		}
		var identity bool
		run.VisualToLogicalMapSecondHalf, identity = lm.reorderLine(line.characterIndexInSecondHalf, line.numberOfCharactersInSecondHalf)
		run.IsIdentity = run.IsIdentity && identity
	}

	lm.setBidiLine(run)
	return run
}

// reorderBidiLayout stores the conversion tables of a line with right-to-left
// characters. With fit set the line is measured again in visual order and
// trimmed from its logical end until it fits in the box: by glyph groups if
// breakInCharacters is set, by words otherwise.
//
// Lines split in two halves are never trimmed here.
func (e *Engine) reorderBidiLayout(p *Parameters, line *lineLayout, fit, breakInCharacters bool) {
	lm := &p.Model.Logical

	isBidi := lm.hasBidi(line.characterIndex, line.numberOfCharacters)
	if line.isSplitToTwoHalves {
		isBidi = isBidi || lm.hasBidi(line.characterIndexInSecondHalf, line.numberOfCharactersInSecondHalf)
	}
	if !isBidi || line.totalGlyphs() == 0 {
		return
	}

	trimmed := false
	for {
		run := e.storeBidiLine(p, line)
		// A trimmed line is measured again even when it became identity.
		if !fit || line.isSplitToTwoHalves || (run.IsIdentity && !trimmed) {
			return
		}

		line.length = e.layoutRightToLeft(p, line, run.VisualToLogicalMap)
		if line.length <= p.BoundingBox.Width {
			return
		}

		slogger().Debug("layout: bidi line overflows",
			"character", line.characterIndex, "length", line.length, "width", p.BoundingBox.Width)
		if !e.trimLineEnd(p, line, breakInCharacters) {
			return
		}
		trimmed = true
	}
}

// layoutRightToLeft returns the length of the line measured in visual
// order. The white spaces at the logical end of the line are not measured.
func (e *Engine) layoutRightToLeft(p *Parameters, line *lineLayout, visualToLogical []int) float64 {
	m := p.Model
	vm := &m.Visual
	lm := &m.Logical
	end := p.StartGlyphIndex + p.NumberOfGlyphs

	lastMeasured := line.characterIndex + line.numberOfCharacters - 1
	for lastMeasured >= line.characterIndex && isWhiteSpace(lm.Text[lastMeasured]) {
		lastMeasured--
	}

	var (
		penX, previousAdvance, whiteSpace, length float64
		started                                   bool
	)
	for _, relative := range visualToLogical {
		c := line.characterIndex + relative
		if c > lastMeasured || vm.GlyphsPerCharacter[c] == 0 {
			continue
		}
		g := e.groupMetricsAt(vm, vm.CharactersToGlyph[c], end)
		if !started {
			penX = -g.xBearing + e.cursorWidth + m.OutlineWidth
			started = true
		}
		if isWhiteSpace(lm.Text[c]) {
			whiteSpace += g.advance
			continue
		}
		penX += previousAdvance + whiteSpace
		whiteSpace = 0
		previousAdvance = g.advance + p.InterGlyphExtraAdvance
		length = math.Max(length, penX+g.xBearing+g.width)
	}
	return length
}

// trimLineEnd removes the last word, or the last glyph group, of the line.
// It returns false when the line has a single glyph group left.
func (e *Engine) trimLineEnd(p *Parameters, line *lineLayout, breakInCharacters bool) bool {
	vm := &p.Model.Visual
	lm := &p.Model.Logical

	lineEnd := line.characterIndex + line.numberOfCharacters
	cut := -1
	if !breakInCharacters {
		for c := lineEnd - 2; c >= line.characterIndex; c-- {
			if lm.LineBreakInfo[c] == LineAllowBreak {
				cut = c + 1
				break
			}
		}
	}
	if cut <= line.characterIndex {
		lastGroup := line.glyphIndex + line.numberOfGlyphs - 1
		for lastGroup > line.glyphIndex && vm.CharactersPerGlyph[lastGroup-1] == 0 {
			lastGroup--
		}
		if lastGroup <= line.glyphIndex {
			return false
		}
		cut = vm.GlyphsToCharacters[lastGroup]
	}

	line.numberOfCharacters = cut - line.characterIndex
	line.numberOfGlyphs = vm.CharactersToGlyph[cut] - line.glyphIndex

	line.whiteSpaceLengthEndOfLine = 0
	for c := cut - 1; c >= line.characterIndex && isWhiteSpace(lm.Text[c]); c-- {
		if n := vm.GlyphsPerCharacter[c]; n > 0 {
			g := vm.CharactersToGlyph[c]
			for i := g; i < g+n; i++ {
				line.whiteSpaceLengthEndOfLine += vm.Glyphs[i].Advance
			}
		}
	}
	return true
}
