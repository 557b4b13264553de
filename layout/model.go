package layout

import (
	"fmt"
	"sort"
)

// LogicalModel holds the text in logical order and the analysis tables
// computed from it.
type LogicalModel struct {
	Text []rune
	// LineBreakInfo has one entry per character.
	LineBreakInfo []LineBreakInfo
	// BidiParagraphs lists the paragraphs with right-to-left characters,
	// sorted by first character.
	BidiParagraphs []BidiParagraphInfoRun
	// BidiLines is filled by the engine, sorted by first character.
	BidiLines         []BidiLineInfoRun
	BoundedParagraphs []BoundedParagraphRun
}

// VisualModel holds the shaped glyphs, the conversion tables between
// characters and glyphs, and the layout results.
type VisualModel struct {
	Glyphs             []GlyphInfo
	GlyphsToCharacters []int
	CharactersToGlyph  []int
	CharactersPerGlyph []int
	GlyphsPerCharacter []int

	GlyphPositions []Vector2
	Lines          []LineRun
	Hyphens        HyphenInfo
	Elided         ElidedGlyphs
}

// Model is the text model the engine lays out.
type Model struct {
	Logical LogicalModel
	Visual  VisualModel

	LineWrapMode LineWrapMode
	// RelativeLineSize is the default line size multiplier. Zero means 1.
	RelativeLineSize float64
	OutlineWidth     float64
}

// NumberOfCharacters returns the length of the text.
func (m *Model) NumberOfCharacters() int {
	return len(m.Logical.Text)
}

// NumberOfGlyphs returns the number of shaped glyphs.
func (m *Model) NumberOfGlyphs() int {
	return len(m.Visual.Glyphs)
}

// Validate checks that the conversion tables are consistent with the text
// and the glyphs.
func (m *Model) Validate() error {
	nc := len(m.Logical.Text)
	ng := len(m.Visual.Glyphs)
	switch {
	case len(m.Logical.LineBreakInfo) != nc:
		return fmt.Errorf("%w: %d break infos for %d characters", ErrInconsistentModel, len(m.Logical.LineBreakInfo), nc)
	case len(m.Visual.CharactersToGlyph) != nc || len(m.Visual.GlyphsPerCharacter) != nc:
		return fmt.Errorf("%w: character tables do not match %d characters", ErrInconsistentModel, nc)
	case len(m.Visual.GlyphsToCharacters) != ng || len(m.Visual.CharactersPerGlyph) != ng:
		return fmt.Errorf("%w: glyph tables do not match %d glyphs", ErrInconsistentModel, ng)
	}

	chars := 0
	for g, n := range m.Visual.CharactersPerGlyph {
		if c := m.Visual.GlyphsToCharacters[g]; c < 0 || c >= nc {
			return fmt.Errorf("%w: glyph %d maps to character %d", ErrInconsistentModel, g, c)
		}
		chars += n
	}
	if chars != nc {
		return fmt.Errorf("%w: glyphs cover %d of %d characters", ErrInconsistentModel, chars, nc)
	}
	if nc > 0 && m.Logical.LineBreakInfo[nc-1] != LineMustBreak {
		return fmt.Errorf("%w: last character must break the line", ErrInconsistentModel)
	}
	return nil
}

// relativeLineSize returns the model default multiplier.
func (m *Model) relativeLineSize() float64 {
	if m.RelativeLineSize == 0 {
		return 1
	}
	return m.RelativeLineSize
}

// paragraphAt returns the bidi paragraph containing the character, or nil.
func (lm *LogicalModel) paragraphAt(charIndex int) *BidiParagraphInfoRun {
	i := sort.Search(len(lm.BidiParagraphs), func(i int) bool {
		return lm.BidiParagraphs[i].CharacterRun.End() > charIndex
	})
	if i < len(lm.BidiParagraphs) && lm.BidiParagraphs[i].CharacterRun.Contains(charIndex) {
		return &lm.BidiParagraphs[i]
	}
	return nil
}

// paragraphDirection returns the direction of the paragraph containing the
// character. Characters outside bidi paragraphs are left-to-right.
func (lm *LogicalModel) paragraphDirection(charIndex int) Direction {
	if para := lm.paragraphAt(charIndex); para != nil {
		return para.Direction
	}
	return LeftToRight
}

// hasBidi reports whether any character of the range is inside a bidi paragraph.
func (lm *LogicalModel) hasBidi(start, count int) bool {
	end := start + count
	for i := range lm.BidiParagraphs {
		r := lm.BidiParagraphs[i].CharacterRun
		if r.CharacterIndex < end && r.End() > start {
			return true
		}
	}
	return false
}

// BidiLineAt returns the bidi line run whose first or second half contains
// the character, or nil.
func (lm *LogicalModel) BidiLineAt(charIndex int) *BidiLineInfoRun {
	for i := range lm.BidiLines {
		run := &lm.BidiLines[i]
		if run.CharacterRun.Contains(charIndex) || run.CharacterRunForSecondHalfLine.Contains(charIndex) {
			return run
		}
	}
	return nil
}

// setBidiLine stores the run, replacing a run starting at the same character.
func (lm *LogicalModel) setBidiLine(run BidiLineInfoRun) {
	start := run.CharacterRun.CharacterIndex
	i := sort.Search(len(lm.BidiLines), func(i int) bool {
		return lm.BidiLines[i].CharacterRun.CharacterIndex >= start
	})
	if i < len(lm.BidiLines) && lm.BidiLines[i].CharacterRun.CharacterIndex == start {
		lm.BidiLines[i] = run
		return
	}
	lm.BidiLines = append(lm.BidiLines, BidiLineInfoRun{})
	copy(lm.BidiLines[i+1:], lm.BidiLines[i:])
	lm.BidiLines[i] = run
}

// RemoveBidiLines removes the bidi line runs starting in [start, end).
func (lm *LogicalModel) RemoveBidiLines(start, end int) {
	kept := lm.BidiLines[:0]
	for _, run := range lm.BidiLines {
		if run.CharacterRun.CharacterIndex >= start && run.CharacterRun.CharacterIndex < end {
			continue
		}
		kept = append(kept, run)
	}
	lm.BidiLines = kept
}

// ShiftBidiLines moves the bidi line runs starting at or after the character
// by delta characters.
func (lm *LogicalModel) ShiftBidiLines(from, delta int) {
	for i := range lm.BidiLines {
		run := &lm.BidiLines[i]
		if run.CharacterRun.CharacterIndex < from {
			continue
		}
		run.CharacterRun.CharacterIndex += delta
		if run.CharacterRunForSecondHalfLine.NumberOfCharacters > 0 {
			run.CharacterRunForSecondHalfLine.CharacterIndex += delta
		}
	}
}

// boundedParagraphAt returns the bounded paragraph containing the character, or nil.
func (lm *LogicalModel) boundedParagraphAt(charIndex int) *BoundedParagraphRun {
	i := sort.Search(len(lm.BoundedParagraphs), func(i int) bool {
		return lm.BoundedParagraphs[i].CharacterRun.End() > charIndex
	})
	if i < len(lm.BoundedParagraphs) && lm.BoundedParagraphs[i].CharacterRun.Contains(charIndex) {
		return &lm.BoundedParagraphs[i]
	}
	return nil
}

// LogicalIndex converts a visual character index of a line into a logical
// character index. Characters outside bidi lines are returned unchanged.
func (lm *LogicalModel) LogicalIndex(visualIndex int) int {
	run := lm.BidiLineAt(visualIndex)
	if run == nil || run.IsIdentity {
		return visualIndex
	}
	if run.CharacterRun.Contains(visualIndex) && len(run.VisualToLogicalMap) == run.CharacterRun.NumberOfCharacters {
		return run.CharacterRun.CharacterIndex + run.VisualToLogicalMap[visualIndex-run.CharacterRun.CharacterIndex]
	}
	second := run.CharacterRunForSecondHalfLine
	if second.Contains(visualIndex) && len(run.VisualToLogicalMapSecondHalf) == second.NumberOfCharacters {
		return second.CharacterIndex + run.VisualToLogicalMapSecondHalf[visualIndex-second.CharacterIndex]
	}
	return visualIndex
}
