package layout

import (
	"math"
	"slices"
)

// ellipsisLine lays out again the last persisted line, or a first line if
// there is none, filling it completely, and marks it as elided. With
// enforce set the rest of the text is laid out in that single line. It
// returns false if no glyph fits in the line.
func (pass *layoutPass) ellipsisLine(enforce bool) bool {
	e, p := pass.e, pass.p
	m := p.Model
	vm := &m.Visual
	lm := &m.Logical
	end := p.StartGlyphIndex + p.NumberOfGlyphs

	p.AutoScrollEnabled = false

	var (
		lineIndex int
		line      lineLayout
	)
	if n := len(pass.lines); n > 0 {
		lineIndex = n - 1
		last := &pass.lines[lineIndex]
		line = newLineLayout(last.GlyphRun.GlyphIndex, last.CharacterRun.CharacterIndex, last.Direction)
	} else {
		pass.lines = append(pass.lines, LineRun{})
		characterIndex := vm.GlyphsToCharacters[p.StartGlyphIndex]
		line = newLineLayout(p.StartGlyphIndex, characterIndex, lm.paragraphDirection(characterIndex))
	}

	lm.RemoveBidiLines(line.characterIndex, math.MaxInt)
	pass.positions.clear(line.glyphIndex, end)

	e.lineLayoutForBox(p, &line, breakRequest{
		completelyFill:              true,
		ellipsisPosition:            p.EllipsisPosition,
		enforceEllipsisInSingleLine: enforce,
	})
	if line.totalGlyphs() == 0 {
		return false
	}
	e.finishLine(m, &line)

	run := line.lineRun()
	run.Ellipsis = true
	pass.lines[lineIndex] = run

	vm.Hyphens.truncateAfter(line.glyphIndex)
	pass.setGlyphPositions(&line)

	switch {
	case p.EllipsisPosition == EllipsisStart && (enforce || !pass.isMultiline):
		vm.Elided.Start = run.GlyphRun.GlyphIndex
	case p.EllipsisPosition == EllipsisMiddle && run.IsSplitToTwoHalves:
		vm.Elided.FirstMiddle = run.GlyphRun.End() - 1
		vm.Elided.SecondMiddle = run.GlyphRunSecondHalf.GlyphIndex
	case p.EllipsisPosition == EllipsisMiddle:
		vm.Elided.FirstMiddle = run.GlyphRun.End() - 1
		vm.Elided.SecondMiddle = run.GlyphRun.End()
	default:
		vm.Elided.End = run.GlyphRun.End() - 1
	}

	slogger().Debug("layout: line elided",
		"position", p.EllipsisPosition.String(),
		"glyph", run.GlyphRun.GlyphIndex,
		"glyphs", run.NumberOfGlyphs())
	return true
}

// positionalEllipsis removes the lines that don't fit in the box height for
// a START or MIDDLE ellipsis in a multi-line box, and marks the line where
// the text is cut.
func (pass *layoutPass) positionalEllipsis() {
	p := pass.p
	vm := &p.Model.Visual
	lm := &p.Model.Logical
	height := p.BoundingBox.Height
	lines := pass.lines

	switch p.EllipsisPosition {
	case EllipsisStart:
		drop := 0
		for len(lines)-drop > 1 && heightOf(lines[drop:]) > height {
			drop++
		}
		if drop > 0 {
			kept := lines[drop]
			lm.RemoveBidiLines(lines[0].CharacterRun.CharacterIndex, kept.CharacterRun.CharacterIndex)
			vm.Hyphens.removeRange(lines[0].GlyphRun.GlyphIndex, kept.GlyphRun.GlyphIndex)
			lines = slices.Delete(lines, 0, drop)
		}
		lines[0].Ellipsis = true
		vm.Elided.Start = lines[0].GlyphRun.GlyphIndex

	case EllipsisMiddle:
		for len(lines) > 2 && heightOf(lines) > height {
			mid := len(lines) / 2
			removed := lines[mid]
			lm.RemoveBidiLines(removed.CharacterRun.CharacterIndex, removed.CharacterRun.End())
			vm.Hyphens.removeRange(removed.GlyphRun.GlyphIndex, removed.GlyphRun.End())
			lines = slices.Delete(lines, mid, mid+1)
		}
		mid := len(lines) / 2
		lines[mid-1].Ellipsis = true
		vm.Elided.FirstMiddle = lines[mid-1].GlyphRun.End() - 1
		vm.Elided.SecondMiddle = lines[mid].GlyphRun.GlyphIndex
	}

	pass.lines = lines
}
