package layout

import "math"

// breakRequest selects how a line is fitted into the box.
type breakRequest struct {
	// completelyFill breaks the last word by characters so the line is
	// filled up to the box width. Used when the line is elided.
	completelyFill bool

	ellipsisPosition EllipsisPosition

	// enforceEllipsisInSingleLine lays out the rest of the text as a single
	// line even if the engine is a multi-line one.
	enforceEllipsisInSingleLine bool
}

// breakOutcome reports how the line was broken.
type breakOutcome struct {
	// oneWordLaidOut is set when at least one complete word fitted before
	// the line was broken.
	oneWordLaidOut bool

	// characterBreak is set when the line was broken inside a word.
	characterBreak bool
}

// lineLayoutForBox finds the glyphs that fit in a line of the bounding box
// starting at line.glyphIndex and stores them in line.
func (e *Engine) lineLayoutForBox(p *Parameters, line *lineLayout, req breakRequest) breakOutcome {
	m := p.Model
	vm := &m.Visual
	lm := &m.Logical

	end := p.StartGlyphIndex + p.NumberOfGlyphs
	if line.glyphIndex >= end {
		return breakOutcome{}
	}

	targetWidth := p.BoundingBox.Width
	isMultiline := e.isMultiline(p) && !req.enforceEllipsisInSingleLine

	isWordLaidOut := m.LineWrapMode == LineWrapWord ||
		m.LineWrapMode == LineWrapHyphenation ||
		m.LineWrapMode == LineWrapMixed
	isHyphenMode := m.LineWrapMode == LineWrapHyphenation
	isMixedMode := m.LineWrapMode == LineWrapMixed

	// A MIDDLE ellipsis keeps the beginning and the end of the text: the
	// glyphs that don't fit in the first half of the box go to a second
	// half, which is trimmed from its front.
	isSplitToTwoHalves := req.ellipsisPosition == EllipsisMiddle && req.completelyFill && !isMultiline
	trimStart := req.ellipsisPosition == EllipsisStart && req.completelyFill && !isMultiline
	widthFirstHalf := targetWidth
	if isSplitToTwoHalves {
		widthFirstHalf = targetWidth - math.Floor(targetWidth/2)
	}

	// The pen starts after the cursor and the outline. A negative bearing of
	// the first glyph moves it right so the glyph is not clipped.
	first := e.groupMetricsAt(vm, line.glyphIndex, end)
	tmp := *line
	tmp.clearCounts()
	tmp.penX = -first.xBearing + e.cursorWidth + m.OutlineWidth
	tmp.previousAdvance = 0
	tmp.length = 0
	tmp.whiteSpaceLengthEndOfLine = 0

	var (
		oneWordLaidOut   bool
		oneHyphenLaidOut bool
		isSecondHalf     bool
		hyphenIndex      int
		hyphen           GlyphInfo

		// White spaces at the end of the first half.
		trailingSpaceGlyphs     int
		trailingSpaceCharacters int
	)

	for glyphIndex := line.glyphIndex; glyphIndex < end; {
		g := e.groupMetricsAt(vm, glyphIndex, end)
		n := g.numberOfGlyphs
		lastGlyphOfGroup := glyphIndex + n - 1

		// Break info is given for the last character of the group.
		characterIndex := vm.GlyphsToCharacters[lastGlyphOfGroup]
		charactersPerGroup := vm.CharactersPerGlyph[lastGlyphOfGroup]
		lastCharacter := characterIndex
		if charactersPerGroup > 0 {
			lastCharacter += charactersPerGroup - 1
		}
		breakInfo := lm.LineBreakInfo[lastCharacter]
		isLastGlyph := glyphIndex+n >= end
		whiteSpace := isWhiteSpace(lm.Text[lastCharacter])

		previous := tmp
		tmp.updateHeight(e.fontMetricsOf(&g))

		if isSecondHalf {
			tmp.numberOfGlyphsInSecondHalf += n
			tmp.numberOfCharactersInSecondHalf += charactersPerGroup
		} else {
			tmp.numberOfGlyphs += n
			tmp.numberOfCharacters += charactersPerGroup
		}

		if whiteSpace {
			// White spaces don't extend the line until a glyph follows them.
			tmp.whiteSpaceLengthEndOfLine += g.advance
		} else {
			tmp.penX += tmp.previousAdvance + tmp.whiteSpaceLengthEndOfLine
			tmp.previousAdvance = g.advance + p.InterGlyphExtraAdvance
			tmp.length = math.Max(tmp.length, tmp.penX+g.xBearing+g.width)
			tmp.whiteSpaceLengthEndOfLine = 0
		}

		// The first half keeps at least one group. Its trailing white spaces
		// start the second half, so they are the first glyphs trimmed.
		moved := n + trailingSpaceGlyphs
		if isSplitToTwoHalves && !isSecondHalf && tmp.length > widthFirstHalf && tmp.numberOfGlyphs > moved {
			movedCharacters := charactersPerGroup + trailingSpaceCharacters
			tmp.numberOfGlyphs -= moved
			tmp.numberOfCharacters -= movedCharacters
			tmp.numberOfGlyphsInSecondHalf += moved
			tmp.numberOfCharactersInSecondHalf += movedCharacters
			tmp.glyphIndexInSecondHalf = glyphIndex - trailingSpaceGlyphs
			tmp.characterIndexInSecondHalf = vm.GlyphsToCharacters[tmp.glyphIndexInSecondHalf]
			tmp.isSplitToTwoHalves = true
			isSecondHalf = true
		}
		if whiteSpace {
			trailingSpaceGlyphs += n
			trailingSpaceCharacters += charactersPerGroup
		} else {
			trailingSpaceGlyphs, trailingSpaceCharacters = 0, 0
		}

		switch {
		case trimStart || isSecondHalf:
			if tmp.length > targetWidth {
				e.trimFront(p, &tmp, isSecondHalf, n)
			}
			if isSecondHalf && tmp.length > targetWidth {
				e.trimBack(p, &tmp)
			}
			if tmp.length > targetWidth {
				// The group is wider than what is left of the box.
				slogger().Debug("layout: glyph doesn't fit the elided line",
					"glyph", glyphIndex, "length", tmp.length, "width", targetWidth)
				line.merge(&previous, trimStart)
				e.reorderBidiLayout(p, line, isMultiline, true)
				return breakOutcome{oneWordLaidOut: oneWordLaidOut, characterBreak: true}
			}

		case (req.completelyFill || isMultiline) && tmp.length > targetWidth:
			if !req.completelyFill && oneHyphenLaidOut && (isHyphenMode || (isMixedMode && !oneWordLaidOut)) {
				vm.Hyphens.Glyphs = append(vm.Hyphens.Glyphs, hyphen)
				vm.Hyphens.Indices = append(vm.Hyphens.Indices, hyphenIndex+1)
			}

			characterBreak := (!oneWordLaidOut && !oneHyphenLaidOut) || req.completelyFill
			if characterBreak {
				slogger().Debug("layout: break the word by character",
					"glyph", glyphIndex, "length", tmp.length, "width", targetWidth)

				// The glyph that overflows is dropped. A line with no glyph
				// tells the caller the box is too narrow.
				line.merge(&previous, trimStart)
			}
			e.reorderBidiLayout(p, line, isMultiline, characterBreak)
			return breakOutcome{oneWordLaidOut: oneWordLaidOut, characterBreak: characterBreak}
		}

		if breakInfo == LineMustBreak && (isMultiline || isLastGlyph) {
			slogger().Debug("layout: must break", "glyph", glyphIndex)
			line.merge(&tmp, trimStart)
			e.reorderBidiLayout(p, line, isMultiline, false)
			return breakOutcome{oneWordLaidOut: oneWordLaidOut}
		}

		if isMultiline && breakInfo == LineAllowBreak {
			oneHyphenLaidOut = false
			oneWordLaidOut = isWordLaidOut
			line.merge(&tmp, false)
			tmp.clearCounts()
		}

		if isMultiline && breakInfo == LineHyphenationBreak && (isHyphenMode || (isMixedMode && !oneWordLaidOut)) {
			hyphen = e.hyphenGlyph(vm.Glyphs[glyphIndex].FontID)
			if tmp.length+hyphen.Width <= targetWidth {
				hyphenIndex = lastGlyphOfGroup
				oneHyphenLaidOut = true
				line.merge(&tmp, false)
				tmp.clearCounts()
			}
		}

		glyphIndex += n
	}

	// The range ended without a mandatory break, e.g. a partial layout.
	line.merge(&tmp, trimStart)
	e.reorderBidiLayout(p, line, isMultiline, false)
	return breakOutcome{oneWordLaidOut: oneWordLaidOut}
}

// trimFront removes glyph groups from the front of the line, or from the
// front of its second half, until it fits in the box. The last keep glyphs
// are never removed.
func (e *Engine) trimFront(p *Parameters, tmp *lineLayout, secondHalf bool, keep int) {
	vm := &p.Model.Visual
	lm := &p.Model.Logical
	end := p.StartGlyphIndex + p.NumberOfGlyphs

	for tmp.length > p.BoundingBox.Width {
		glyphIndex, count := tmp.glyphIndex, tmp.numberOfGlyphs
		if secondHalf {
			glyphIndex, count = tmp.glyphIndexInSecondHalf, tmp.numberOfGlyphsInSecondHalf
		}
		if count <= keep {
			return
		}

		g := e.groupMetricsAt(vm, glyphIndex, end)
		last := glyphIndex + g.numberOfGlyphs - 1
		characters := vm.CharactersPerGlyph[last]
		removed := g.advance
		if !isWhiteSpace(lm.Text[vm.GlyphsToCharacters[last]]) {
			removed += p.InterGlyphExtraAdvance
		}
		tmp.penX -= removed
		tmp.length -= removed

		if secondHalf {
			tmp.glyphIndexInSecondHalf += g.numberOfGlyphs
			tmp.characterIndexInSecondHalf += characters
			tmp.numberOfGlyphsInSecondHalf -= g.numberOfGlyphs
			tmp.numberOfCharactersInSecondHalf -= characters
		} else {
			tmp.glyphIndex += g.numberOfGlyphs
			tmp.characterIndex += characters
			tmp.numberOfGlyphs -= g.numberOfGlyphs
			tmp.numberOfCharacters -= characters
		}
	}
}

// trimBack removes glyph groups from the end of the first half of a split
// line until it fits in the box. The first group of the line is never
// removed.
func (e *Engine) trimBack(p *Parameters, tmp *lineLayout) {
	vm := &p.Model.Visual
	lm := &p.Model.Logical

	for tmp.length > p.BoundingBox.Width {
		last := tmp.glyphIndex + tmp.numberOfGlyphs - 1
		first := last
		for first > tmp.glyphIndex && vm.CharactersPerGlyph[first-1] == 0 {
			first--
		}
		if first == tmp.glyphIndex {
			return
		}

		g := e.groupMetricsAt(vm, first, last+1)
		characters := vm.CharactersPerGlyph[last]
		removed := g.advance
		if !isWhiteSpace(lm.Text[vm.GlyphsToCharacters[last]]) {
			removed += p.InterGlyphExtraAdvance
		}
		tmp.penX -= removed
		tmp.length -= removed
		tmp.numberOfGlyphs -= g.numberOfGlyphs
		tmp.numberOfCharacters -= characters
	}
}
