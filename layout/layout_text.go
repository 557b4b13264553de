package layout

import (
	"math"
	"slices"
)

// Parameters are the inputs of LayoutText.
type Parameters struct {
	Model       *Model
	BoundingBox Size

	// StartGlyphIndex and NumberOfGlyphs select the glyphs to lay out. A
	// range shorter than the whole text is a partial layout: the caller
	// removes the lines, the glyph positions and the bidi line runs of the
	// range before calling LayoutText, which inserts the new ones.
	StartGlyphIndex int
	NumberOfGlyphs  int

	// StartLineIndex is where the lines of a partial layout are inserted.
	StartLineIndex         int
	EstimatedNumberOfLines int

	// InterGlyphExtraAdvance is added to the advance of every glyph that
	// is not a white space.
	InterGlyphExtraAdvance float64

	// IsLastNewParagraph is set when the text ends with a paragraph separator.
	IsLastNewParagraph bool

	ElideEnabled     bool
	EllipsisPosition EllipsisPosition

	// AutoScrollEnabled is cleared by LayoutText when the text is elided.
	AutoScrollEnabled bool
	// AutoScrollMaxTextureExceeded elides a scrolling text that is too
	// long to be rendered.
	AutoScrollMaxTextureExceeded bool

	// HiddenInputEnabled lays out the text in a single line.
	HiddenInputEnabled bool
}

// isMultiline reports whether lines are wrapped.
func (e *Engine) isMultiline(p *Parameters) bool {
	return e.layout == MultiLineBox && !p.HiddenInputEnabled
}

// layoutPass holds the state of one LayoutText call.
type layoutPass struct {
	e           *Engine
	p           *Parameters
	isMultiline bool
	lines       []LineRun
	positions   positionBuffer
}

// LayoutText lays out the glyphs of the model in the bounding box.
//
// It fills the lines, the glyph positions, the hyphens, the bidi line
// runs and the elided glyph markers of the model, and returns the size of
// the laid-out text. It returns false when there is nothing to lay out or
// the box is too narrow for any glyph.
func (e *Engine) LayoutText(p *Parameters) (Size, bool) {
	m := p.Model
	vm := &m.Visual
	lm := &m.Logical
	total := len(vm.Glyphs)
	isMultiline := e.isMultiline(p)

	if p.NumberOfGlyphs <= 0 {
		// A new paragraph at the end of the text needs an empty line for
		// the cursor.
		if n := len(vm.Lines); isMultiline && p.IsLastNewParagraph && n > 0 && vm.Lines[n-1].NumberOfCharacters() != 0 {
			last := &vm.Lines[n-1]
			vm.Lines = append(vm.Lines, e.emptyLine(m, lastCharacterPlusOne(last), lastGlyphPlusOne(last)))
		}
		return layoutSizeOf(vm.Lines, p.BoundingBox), false
	}

	end := p.StartGlyphIndex + p.NumberOfGlyphs
	partial := p.NumberOfGlyphs < total

	if p.BoundingBox.Width <= 0 {
		slogger().Debug("layout: box too narrow", "width", p.BoundingBox.Width)
		if !partial {
			vm.Lines = vm.Lines[:0]
		}
		return Size{}, false
	}

	// An empty line added by a previous layout is added again if needed.
	if n := len(vm.Lines); n > 0 && vm.Lines[n-1].NumberOfCharacters() == 0 && end == total {
		vm.Lines = vm.Lines[:n-1]
	}

	pass := &layoutPass{e: e, p: p, isMultiline: isMultiline}
	capacity := max(1, p.EstimatedNumberOfLines)

	var (
		penY       float64
		startLine  int
		hyphenTail HyphenInfo
	)
	if partial {
		pass.lines = make([]LineRun, 0, capacity)
		pass.positions = positionBuffer{buf: make([]Vector2, p.NumberOfGlyphs), offset: p.StartGlyphIndex}
		hyphenTail = vm.Hyphens.split(p.StartGlyphIndex, end)
		startLine = min(max(p.StartLineIndex, 0), len(vm.Lines))
		penY = lineOffset(vm.Lines, startLine)
	} else {
		pass.lines = slices.Grow(vm.Lines[:0], capacity)
		vm.GlyphPositions = slices.Grow(vm.GlyphPositions[:0], total)[:total]
		clear(vm.GlyphPositions)
		pass.positions = positionBuffer{buf: vm.GlyphPositions}
		lm.BidiLines = lm.BidiLines[:0]
		vm.Hyphens.reset()
		vm.Elided = ElidedGlyphs{}
	}

	var ellipsized, positionalEllipsis bool
	for index := p.StartGlyphIndex; index < end; {
		characterIndex := vm.GlyphsToCharacters[index]
		line := newLineLayout(index, characterIndex, lm.paragraphDirection(characterIndex))
		outcome := e.lineLayoutForBox(p, &line, breakRequest{ellipsisPosition: p.EllipsisPosition})
		if line.totalGlyphs() == 0 {
			slogger().Debug("layout: no glyph fits", "glyph", index, "width", p.BoundingBox.Width)
			if !partial {
				vm.Lines = pass.lines[:0]
			}
			return Size{}, false
		}
		slogger().Debug("layout: line",
			"glyph", line.glyphIndex,
			"glyphs", line.totalGlyphs(),
			"oneWordLaidOut", outcome.oneWordLaidOut,
			"characterBreak", outcome.characterBreak)

		e.finishLine(m, &line)
		penY += line.ascender

		if p.ElideEnabled && !positionalEllipsis && pass.overflows(&line, penY) {
			// A START or MIDDLE ellipsis in a multi-line box removes lines
			// once everything is laid out. With a single line to show, the
			// rest of the text is elided in that line.
			if p.EllipsisPosition == EllipsisEnd || !isMultiline || len(pass.lines) <= 1 {
				if !pass.ellipsisLine(isMultiline && p.EllipsisPosition != EllipsisEnd) {
					slogger().Debug("layout: no glyph fits the elided line", "width", p.BoundingBox.Width)
					if !partial {
						vm.Lines = pass.lines[:0]
					}
					return Size{}, false
				}
				ellipsized = true
				break
			}
			positionalEllipsis = true
		}

		pass.lines = append(pass.lines, line.lineRun())
		pass.setGlyphPositions(&line)

		penY += -line.descender + line.lineSpacing
		index += line.totalGlyphs()
	}

	if isMultiline && p.IsLastNewParagraph && end == total && !ellipsized && !positionalEllipsis {
		last := &pass.lines[len(pass.lines)-1]
		if last.NumberOfCharacters() != 0 {
			pass.lines = append(pass.lines, e.emptyLine(m, lastCharacterPlusOne(last), lastGlyphPlusOne(last)))
		}
	}

	if positionalEllipsis {
		pass.positionalEllipsis()
	}

	if partial {
		vm.Lines = slices.Insert(vm.Lines, startLine, pass.lines...)
		vm.GlyphPositions = slices.Insert(vm.GlyphPositions, p.StartGlyphIndex, pass.positions.buf...)
		updateLineIndexOffsets(vm.Lines, startLine+len(pass.lines))
		vm.Hyphens.Glyphs = append(vm.Hyphens.Glyphs, hyphenTail.Glyphs...)
		vm.Hyphens.Indices = append(vm.Hyphens.Indices, hyphenTail.Indices...)
	} else {
		vm.Lines = pass.lines
	}

	return layoutSizeOf(vm.Lines, p.BoundingBox), true
}

// finishLine sets the relative size and the spacing of the line.
func (e *Engine) finishLine(m *Model, line *lineLayout) {
	first, count := line.characterIndex, line.numberOfCharacters
	if line.isSplitToTwoHalves && line.numberOfCharactersInSecondHalf > 0 {
		first, count = line.characterIndexInSecondHalf, line.numberOfCharactersInSecondHalf
	}
	line.relativeLineSize = relativeLineSizeFor(m, first, count)
	line.lineSpacing = e.lineSpacing(line.ascender, line.descender, line.relativeLineSize)
}

// relativeLineSizeFor returns the relative size of the line ending with the
// characters. The size of a bounded paragraph applies to its last line only.
func relativeLineSizeFor(m *Model, firstCharacter, numberOfCharacters int) float64 {
	if numberOfCharacters > 0 {
		last := firstCharacter + numberOfCharacters - 1
		if bp := m.Logical.boundedParagraphAt(last); bp != nil && bp.RelativeLineSizeDefined && bp.CharacterRun.End() == last+1 {
			return bp.RelativeLineSize
		}
	}
	return m.relativeLineSize()
}

// overflows reports whether the line at penY has to be elided.
func (pass *layoutPass) overflows(line *lineLayout, penY float64) bool {
	p := pass.p
	if p.AutoScrollEnabled {
		return p.AutoScrollMaxTextureExceeded
	}
	return penY-line.descender > p.BoundingBox.Height ||
		(!pass.isMultiline && line.length > p.BoundingBox.Width)
}

// emptyLine returns the line with no characters added after a paragraph
// separator ending the text. It takes the height of the last font.
func (e *Engine) emptyLine(m *Model, characterIndex, glyphIndex int) LineRun {
	var fm FontMetrics
	if n := len(m.Visual.Glyphs); n > 0 && m.Visual.Glyphs[n-1].FontID != 0 {
		fm = e.metrics.FontMetrics(m.Visual.Glyphs[n-1].FontID)
	}
	return LineRun{
		GlyphRun:     GlyphRun{GlyphIndex: glyphIndex},
		CharacterRun: CharacterRun{CharacterIndex: characterIndex},
		Ascender:     fm.Ascender,
		Descender:    fm.Descender,
		LineSpacing:  e.lineSpacing(fm.Ascender, fm.Descender, m.relativeLineSize()),
		Direction:    LeftToRight,
	}
}

// lastCharacterPlusOne returns the character after the line.
func lastCharacterPlusOne(line *LineRun) int {
	if line.IsSplitToTwoHalves && line.CharacterRunForSecondHalfLine.NumberOfCharacters > 0 {
		return line.CharacterRunForSecondHalfLine.End()
	}
	return line.CharacterRun.End()
}

// lastGlyphPlusOne returns the glyph after the line.
func lastGlyphPlusOne(line *LineRun) int {
	if line.IsSplitToTwoHalves && line.GlyphRunSecondHalf.NumberOfGlyphs > 0 {
		return line.GlyphRunSecondHalf.End()
	}
	return line.GlyphRun.End()
}

// lineOffset returns the vertical position of the top of the line.
func lineOffset(lines []LineRun, lineIndex int) float64 {
	var offset float64
	for i := 0; i < lineIndex && i < len(lines); i++ {
		offset += lines[i].Height(false)
	}
	return offset
}

// updateLineIndexOffsets chains the glyph and character runs of the lines
// from the given one to the end of the previous line.
func updateLineIndexOffsets(lines []LineRun, from int) {
	for i := max(from, 1); i < len(lines); i++ {
		prev := &lines[i-1]
		lines[i].GlyphRun.GlyphIndex = lastGlyphPlusOne(prev)
		lines[i].CharacterRun.CharacterIndex = lastCharacterPlusOne(prev)
	}
}

// heightOf returns the height of the lines.
func heightOf(lines []LineRun) float64 {
	var height float64
	for i := range lines {
		height += lines[i].Height(i == len(lines)-1)
	}
	return height
}

// layoutSizeOf returns the size of the laid-out text. An elided text takes
// the whole box width.
func layoutSizeOf(lines []LineRun, box Size) Size {
	var size Size
	elided := false
	for i := range lines {
		size.Width = math.Max(size.Width, lines[i].Width)
		elided = elided || lines[i].Ellipsis
	}
	if elided {
		size.Width = box.Width
	}
	size.Height = math.Ceil(heightOf(lines))
	return size
}
