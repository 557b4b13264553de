package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elideParams(m *Model, width, height float64, position EllipsisPosition) *Parameters {
	p := paramsFor(m, width, height)
	p.ElideEnabled = true
	p.EllipsisPosition = position
	return p
}

func TestEllipsis_SingleLine(t *testing.T) {
	tests := []struct {
		position   EllipsisPosition
		wantRun    GlyphRun
		wantSecond GlyphRun
		wantElided ElidedGlyphs
	}{
		{
			position:   EllipsisEnd,
			wantRun:    GlyphRun{GlyphIndex: 0, NumberOfGlyphs: 5},
			wantElided: ElidedGlyphs{End: 4},
		},
		{
			position:   EllipsisStart,
			wantRun:    GlyphRun{GlyphIndex: 5, NumberOfGlyphs: 5},
			wantElided: ElidedGlyphs{Start: 5},
		},
		{
			position:   EllipsisMiddle,
			wantRun:    GlyphRun{GlyphIndex: 0, NumberOfGlyphs: 2},
			wantSecond: GlyphRun{GlyphIndex: 7, NumberOfGlyphs: 3},
			wantElided: ElidedGlyphs{FirstMiddle: 1, SecondMiddle: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.position.String(), func(t *testing.T) {
			e := newTestEngine()
			m := newTestModel("abcdefghij")

			size, ok := e.LayoutText(elideParams(m, 55, 100, tt.position))

			require.True(t, ok)
			require.Len(t, m.Visual.Lines, 1)
			line := m.Visual.Lines[0]
			assert.True(t, line.Ellipsis)
			assert.Equal(t, tt.wantRun, line.GlyphRun)
			assert.Equal(t, tt.wantSecond, line.GlyphRunSecondHalf)
			assert.Equal(t, tt.wantSecond.NumberOfGlyphs > 0, line.IsSplitToTwoHalves)
			assert.Equal(t, tt.wantElided, m.Visual.Elided)
			assert.LessOrEqual(t, line.Width, 55.0)
			assert.Equal(t, Size{Width: 55, Height: 10}, size)
		})
	}
}

func TestEllipsis_StartPositions(t *testing.T) {
	e := newTestEngine()
	m := newTestModel("abcdefghij")

	_, ok := e.LayoutText(elideParams(m, 55, 100, EllipsisStart))

	require.True(t, ok)
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, positionsX(m, 5, 10))
	assert.Equal(t, CharacterRun{CharacterIndex: 5, NumberOfCharacters: 5}, m.Visual.Lines[0].CharacterRun)
}

func TestEllipsis_MiddlePositions(t *testing.T) {
	e := newTestEngine()
	m := newTestModel("abcdefghij")

	_, ok := e.LayoutText(elideParams(m, 55, 100, EllipsisMiddle))

	require.True(t, ok)
	assert.Equal(t, []float64{0, 10}, positionsX(m, 0, 2))
	assert.Equal(t, []float64{20, 30, 40}, positionsX(m, 7, 10))
	line := m.Visual.Lines[0]
	assert.Equal(t, CharacterRun{CharacterIndex: 7, NumberOfCharacters: 3}, line.CharacterRunForSecondHalfLine)
	assert.Equal(t, 50.0, line.Width)
}

func TestEllipsis_FitsWithoutEllipsis(t *testing.T) {
	e := newTestEngine()
	m := newTestModel("abcde")

	size, ok := e.LayoutText(elideParams(m, 55, 100, EllipsisEnd))

	require.True(t, ok)
	assert.False(t, m.Visual.Lines[0].Ellipsis)
	assert.Equal(t, ElidedGlyphs{}, m.Visual.Elided)
	assert.Equal(t, 50.0, size.Width)
}

func TestEllipsis_MultiLine(t *testing.T) {
	tests := []struct {
		position     EllipsisPosition
		wantLines    []string
		wantEllipsis []bool
		wantElided   ElidedGlyphs
	}{
		{
			position:     EllipsisEnd,
			wantLines:    []string{"ab ", "cd "},
			wantEllipsis: []bool{false, true},
			wantElided:   ElidedGlyphs{End: 5},
		},
		{
			position:     EllipsisStart,
			wantLines:    []string{"ef ", "gh"},
			wantEllipsis: []bool{true, false},
			wantElided:   ElidedGlyphs{Start: 6},
		},
		{
			position:     EllipsisMiddle,
			wantLines:    []string{"ab ", "gh"},
			wantEllipsis: []bool{true, false},
			wantElided:   ElidedGlyphs{FirstMiddle: 2, SecondMiddle: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.position.String(), func(t *testing.T) {
			e := newTestEngine(WithLayout(MultiLineBox))
			m := newTestModel("ab cd ef gh")

			size, ok := e.LayoutText(elideParams(m, 25, 25, tt.position))

			require.True(t, ok)
			assert.Equal(t, tt.wantLines, lineTexts(m))
			var ellipsis []bool
			for _, line := range m.Visual.Lines {
				ellipsis = append(ellipsis, line.Ellipsis)
			}
			assert.Equal(t, tt.wantEllipsis, ellipsis)
			assert.Equal(t, tt.wantElided, m.Visual.Elided)
			assert.Equal(t, Size{Width: 25, Height: 20}, size)
		})
	}
}

func TestEllipsis_StartWithRoomForOneLine(t *testing.T) {
	e := newTestEngine(WithLayout(MultiLineBox))
	m := newTestModel("ab cd ef gh")

	_, ok := e.LayoutText(elideParams(m, 25, 5, EllipsisStart))

	// The whole text is laid out in a single line trimmed from its start.
	require.True(t, ok)
	require.Len(t, m.Visual.Lines, 1)
	line := m.Visual.Lines[0]
	assert.True(t, line.Ellipsis)
	assert.Equal(t, GlyphRun{GlyphIndex: 9, NumberOfGlyphs: 2}, line.GlyphRun)
	assert.Equal(t, 9, m.Visual.Elided.Start)
}

func TestEllipsis_DropsHyphensOfElidedLines(t *testing.T) {
	e := newTestEngine(WithLayout(MultiLineBox))
	m := newTestModel("abcdefghi")
	m.LineWrapMode = LineWrapHyphenation
	m.Logical.LineBreakInfo[2] = LineHyphenationBreak
	m.Logical.LineBreakInfo[5] = LineHyphenationBreak

	_, ok := e.LayoutText(elideParams(m, 45, 15, EllipsisEnd))

	// The elided line is filled up to the box width and loses its hyphen.
	require.True(t, ok)
	require.Len(t, m.Visual.Lines, 1)
	assert.Equal(t, []string{"abcd"}, lineTexts(m))
	assert.Empty(t, m.Visual.Hyphens.Indices)
	assert.Equal(t, 3, m.Visual.Elided.End)
}

func TestEllipsis_AutoScroll(t *testing.T) {
	t.Run("scrolling text is not elided", func(t *testing.T) {
		e := newTestEngine()
		m := newTestModel("abcdefghij")
		p := elideParams(m, 55, 100, EllipsisEnd)
		p.AutoScrollEnabled = true

		_, ok := e.LayoutText(p)

		require.True(t, ok)
		assert.False(t, m.Visual.Lines[0].Ellipsis)
		assert.Equal(t, 10, m.Visual.Lines[0].NumberOfGlyphs())
		assert.True(t, p.AutoScrollEnabled)
	})

	t.Run("texture exceeded", func(t *testing.T) {
		e := newTestEngine()
		m := newTestModel("abcdefghij")
		p := elideParams(m, 55, 100, EllipsisEnd)
		p.AutoScrollEnabled = true
		p.AutoScrollMaxTextureExceeded = true

		_, ok := e.LayoutText(p)

		require.True(t, ok)
		assert.True(t, m.Visual.Lines[0].Ellipsis)
		assert.Equal(t, 5, m.Visual.Lines[0].NumberOfGlyphs())
		assert.False(t, p.AutoScrollEnabled)
	})
}

func TestEllipsis_NoTrailingEmptyLine(t *testing.T) {
	e := newTestEngine(WithLayout(MultiLineBox))
	m := newTestModel("ab cd ef\n")
	p := elideParams(m, 25, 15, EllipsisEnd)
	p.IsLastNewParagraph = true

	_, ok := e.LayoutText(p)

	require.True(t, ok)
	require.Len(t, m.Visual.Lines, 1)
	assert.True(t, m.Visual.Lines[0].Ellipsis)
}

func TestEllipsis_MiddleSplit(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		width      float64
		wideFirst  bool
		wantFirst  GlyphRun
		wantSecond GlyphRun
		wantElided ElidedGlyphs
	}{
		{
			name:       "white spaces at the split",
			text:       "a  bcdefghijk",
			width:      31,
			wantFirst:  GlyphRun{GlyphIndex: 0, NumberOfGlyphs: 1},
			wantSecond: GlyphRun{GlyphIndex: 11, NumberOfGlyphs: 2},
			wantElided: ElidedGlyphs{FirstMiddle: 0, SecondMiddle: 11},
		},
		{
			name:       "first glyph wider than half the box",
			text:       "abcdefgh",
			width:      40,
			wideFirst:  true,
			wantFirst:  GlyphRun{GlyphIndex: 0, NumberOfGlyphs: 1},
			wantSecond: GlyphRun{GlyphIndex: 7, NumberOfGlyphs: 1},
			wantElided: ElidedGlyphs{FirstMiddle: 0, SecondMiddle: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			m := newTestModel(tt.text)
			if tt.wideFirst {
				m.Visual.Glyphs[0].Advance = 30
				m.Visual.Glyphs[0].Width = 30
			}

			_, ok := e.LayoutText(elideParams(m, tt.width, 100, EllipsisMiddle))

			require.True(t, ok)
			require.Len(t, m.Visual.Lines, 1)
			line := m.Visual.Lines[0]
			assert.True(t, line.IsSplitToTwoHalves)
			assert.Equal(t, tt.wantFirst, line.GlyphRun)
			assert.Equal(t, tt.wantSecond, line.GlyphRunSecondHalf)
			assert.Equal(t, tt.wantElided, m.Visual.Elided)
			assert.LessOrEqual(t, line.Width, tt.width)

			// The last glyph ends at the line width.
			last := tt.wantSecond.End() - 1
			glyph := m.Visual.Glyphs[last]
			assert.Equal(t, line.Width, m.Visual.GlyphPositions[last].X+glyph.Width)
		})
	}
}

func TestEllipsis_GlyphWiderThanBox(t *testing.T) {
	for _, position := range []EllipsisPosition{EllipsisEnd, EllipsisStart, EllipsisMiddle} {
		t.Run(position.String(), func(t *testing.T) {
			e := newTestEngine()
			m := newTestModel("abcdef")

			size, ok := e.LayoutText(elideParams(m, 5, 100, position))

			assert.False(t, ok)
			assert.Empty(t, m.Visual.Lines)
			assert.Equal(t, Size{}, size)
		})
	}
}
