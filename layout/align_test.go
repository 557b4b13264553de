package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHorizontalAlignment(t *testing.T) {
	ltr := LineRun{Width: 50}
	rtl := LineRun{Width: 50, ExtraLength: 10, Direction: RightToLeft}

	tests := []struct {
		name      string
		line      LineRun
		alignment HorizontalAlignment
		layout    Direction
		match     bool
		want      float64
	}{
		{"ltr begin", ltr, AlignBegin, LeftToRight, false, 0},
		{"ltr center", ltr, AlignCenter, LeftToRight, false, 25},
		{"ltr end", ltr, AlignEnd, LeftToRight, false, 50},
		{"rtl begin is visual left", rtl, AlignBegin, LeftToRight, false, -10},
		{"rtl center", rtl, AlignCenter, LeftToRight, false, 15},
		{"rtl end is visual right", rtl, AlignEnd, LeftToRight, false, 40},
		{"ltr line in rtl layout begin", ltr, AlignBegin, RightToLeft, true, 50},
		{"ltr line in rtl layout end", ltr, AlignEnd, RightToLeft, true, 0},
		{"rtl line in rtl layout begin", rtl, AlignBegin, RightToLeft, true, 40},
		{"rtl line in rtl layout end", rtl, AlignEnd, RightToLeft, true, -10},
		{"rtl line in ltr layout begin", rtl, AlignBegin, LeftToRight, true, -10},
		{"rtl line in ltr layout end", rtl, AlignEnd, LeftToRight, true, 40},
		{"layout direction ignored", ltr, AlignBegin, RightToLeft, false, 0},
		{"rtl layout direction ignored", rtl, AlignEnd, RightToLeft, false, 40},
		{"unknown alignment", ltr, HorizontalAlignment(99), LeftToRight, false, 0},
		{"center is floored", LineRun{Width: 45}, AlignCenter, LeftToRight, false, 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := tt.line
			line.AlignmentOffset = 123
			CalculateHorizontalAlignment(100, tt.alignment, &line, tt.layout, tt.match)
			assert.Equal(t, tt.want, line.AlignmentOffset)
		})
	}
}

func TestCalculateHorizontalAlignment_Mirror(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		box := float64(rng.Intn(500))
		width := float64(rng.Intn(500))
		extra := float64(rng.Intn(3)) * 10
		ltr := LineRun{Width: width, ExtraLength: extra}
		rtl := LineRun{Width: width, ExtraLength: extra, Direction: RightToLeft}

		// The text of a right-to-left line starts after its trailing white
		// spaces.
		left := func(line LineRun, alignment HorizontalAlignment) float64 {
			CalculateHorizontalAlignment(box, alignment, &line, LeftToRight, false)
			if line.Direction == RightToLeft {
				return line.AlignmentOffset + line.ExtraLength
			}
			return line.AlignmentOffset
		}

		assert.Equal(t, box-width, left(ltr, AlignBegin)+left(rtl, AlignEnd),
			"ltr begin, rtl end: box %v width %v extra %v", box, width, extra)
		assert.Equal(t, box-width, left(rtl, AlignBegin)+left(ltr, AlignEnd),
			"rtl begin, ltr end: box %v width %v extra %v", box, width, extra)
		assert.Equal(t, left(ltr, AlignBegin), left(rtl, AlignBegin),
			"begin is the visual left of both directions")
	}
}

func TestCalculateHorizontalAlignment_LaidOutPair(t *testing.T) {
	e := newTestEngine(WithLayout(MultiLineBox))
	m := withRTLParagraph(newTestModel("abc\ndef"), 4, 3)
	p := paramsFor(m, 100, 100)
	_, ok := e.LayoutText(p)
	require.True(t, ok)
	require.Len(t, m.Visual.Lines, 2)
	ltr, rtl := m.Visual.Lines[0], m.Visual.Lines[1]
	require.Equal(t, LeftToRight, ltr.Direction)
	require.Equal(t, RightToLeft, rtl.Direction)
	require.Equal(t, 30.0, rtl.Width)

	CalculateHorizontalAlignment(100, AlignBegin, &ltr, LeftToRight, false)
	CalculateHorizontalAlignment(100, AlignEnd, &rtl, LeftToRight, false)

	assert.Equal(t, 0.0, ltr.AlignmentOffset)
	assert.Equal(t, 70.0, rtl.AlignmentOffset)
	assert.Equal(t, 100-rtl.Width, ltr.AlignmentOffset+rtl.AlignmentOffset)
}

func TestAlign(t *testing.T) {
	e := newTestEngine(WithLayout(MultiLineBox))
	lines := []LineRun{
		{CharacterRun: CharacterRun{CharacterIndex: 0, NumberOfCharacters: 3}, Width: 20, AlignmentOffset: 7},
		{CharacterRun: CharacterRun{CharacterIndex: 3, NumberOfCharacters: 3}, Width: 50},
		{CharacterRun: CharacterRun{CharacterIndex: 6, NumberOfCharacters: 3}, Width: 30},
		{CharacterRun: CharacterRun{CharacterIndex: 9, NumberOfCharacters: 3}, Width: 10},
	}

	offset := e.Align(Size{Width: 100, Height: 100}, 3, 3, AlignCenter, lines, LeftToRight, false)

	assert.Equal(t, 25.0, offset)
	assert.Equal(t, 7.0, lines[0].AlignmentOffset, "lines before the range are kept")
	assert.Equal(t, 25.0, lines[1].AlignmentOffset)
	assert.Equal(t, 35.0, lines[2].AlignmentOffset)
	assert.Equal(t, 0.0, lines[3].AlignmentOffset, "lines after the range are kept")
}

func TestAlign_NoLines(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, 0.0, e.Align(Size{Width: 100}, 0, 0, AlignEnd, nil, LeftToRight, false))
}

func TestAlign_LaidOutText(t *testing.T) {
	e := newTestEngine(WithLayout(MultiLineBox))
	m := newTestModel("Hello world")
	p := paramsFor(m, 80, 100)
	_, ok := e.LayoutText(p)
	assert.True(t, ok)

	e.Align(p.BoundingBox, 0, m.NumberOfCharacters(), AlignEnd, m.Visual.Lines, LeftToRight, true)

	// The trailing space of the first line is outside the box.
	assert.Equal(t, 30.0, m.Visual.Lines[0].AlignmentOffset)
	assert.Equal(t, 30.0, m.Visual.Lines[1].AlignmentOffset)
}
