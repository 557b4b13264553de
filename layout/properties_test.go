package layout

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomText returns words of one to eight letters separated by spaces,
// with an occasional paragraph separator.
func randomText(rng *rand.Rand) string {
	var sb strings.Builder
	words := 1 + rng.Intn(30)
	for i := range words {
		if i > 0 {
			if rng.Intn(8) == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteString(strings.Repeat(" ", 1+rng.Intn(2)))
			}
		}
		for range 1 + rng.Intn(8) {
			sb.WriteByte(byte('a' + rng.Intn(26)))
		}
	}
	return sb.String()
}

// randomModel builds a model of the text with random advances, widths and
// bearings. Some paragraphs are right-to-left with random levels 1 and 2.
// It returns the model and the widest glyph.
func randomModel(rng *rand.Rand, text string) (*Model, float64) {
	m := newTestModel(text)
	widest := 0.0
	for i := range m.Visual.Glyphs {
		g := &m.Visual.Glyphs[i]
		switch m.Logical.Text[i] {
		case '\n':
			continue
		case ' ':
			g.Advance = float64(1 + rng.Intn(15))
			continue
		}
		g.Advance = float64(1 + rng.Intn(30))
		g.Width = float64(1 + rng.Intn(30))
		g.XBearing = float64(rng.Intn(7) - 3)
		widest = max(widest, g.Width)
	}

	start := 0
	for i, r := range m.Logical.Text {
		if r != '\n' && i != len(m.Logical.Text)-1 {
			continue
		}
		if count := i + 1 - start; rng.Intn(2) == 0 {
			levels := make([]uint8, count)
			for j := range levels {
				levels[j] = uint8(1 + rng.Intn(2))
			}
			withRTLParagraph(m, start, count, levels...)
		}
		start = i + 1
	}
	return m, widest
}

func TestLayoutText_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := range 200 {
		text := randomText(rng)
		width := float64(testAdvance + rng.Intn(120))
		e := newTestEngine(WithLayout(MultiLineBox))
		m := newTestModel(text)

		_, ok := e.LayoutText(paramsFor(m, width, 1000))
		require.True(t, ok, "iteration %d: %q", iter, text)

		glyph, character := 0, 0
		for i, line := range m.Visual.Lines {
			assert.LessOrEqual(t, line.Width, width, "iteration %d line %d: %q", iter, i, text)
			assert.Positive(t, line.NumberOfGlyphs(), "iteration %d line %d", iter, i)
			assert.Equal(t, glyph, line.GlyphRun.GlyphIndex, "iteration %d line %d", iter, i)
			assert.Equal(t, character, line.CharacterRun.CharacterIndex, "iteration %d line %d", iter, i)
			glyph = line.GlyphRun.End()
			character = line.CharacterRun.End()
		}
		assert.Equal(t, m.NumberOfGlyphs(), glyph, "iteration %d: all glyphs laid out", iter)
		assert.Equal(t, m.NumberOfCharacters(), character, "iteration %d: all characters laid out", iter)
	}
}

func TestLayoutText_EllipsisProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	positions := []EllipsisPosition{EllipsisEnd, EllipsisStart, EllipsisMiddle}
	for iter := range 200 {
		text := randomText(rng)
		width := float64(testAdvance + rng.Intn(120))
		height := float64(rng.Intn(80))
		position := positions[rng.Intn(len(positions))]
		e := newTestEngine(WithLayout(MultiLineBox))
		m := newTestModel(text)

		size, ok := e.LayoutText(elideParams(m, width, height, position))
		require.True(t, ok, "iteration %d", iter)

		lines := m.Visual.Lines
		require.NotEmpty(t, lines, "iteration %d", iter)
		elided := 0
		for _, line := range lines {
			if line.Ellipsis {
				elided++
			}
		}
		assert.LessOrEqual(t, elided, 1, "iteration %d %s: %q", iter, position, text)
		if len(lines) > 1 {
			assert.LessOrEqual(t, size.Height, height, "iteration %d %s: %q", iter, position, text)
		}
		if elided == 1 {
			assert.Equal(t, width, size.Width, "iteration %d", iter)
		}
	}
}

func TestLayoutText_RandomMetricsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for iter := range 300 {
		text := randomText(rng)
		m, widest := randomModel(rng, text)
		// Some boxes are narrower than the widest glyph.
		width := float64(5 + rng.Intn(100))
		e := newTestEngine(WithLayout(MultiLineBox))

		size, ok := e.LayoutText(paramsFor(m, width, 1000))

		require.Equal(t, widest <= width, ok, "iteration %d: widest %v width %v %q", iter, widest, width, text)
		if !ok {
			assert.Empty(t, m.Visual.Lines, "iteration %d", iter)
			assert.Equal(t, Size{}, size, "iteration %d", iter)
			continue
		}

		glyph, character := 0, 0
		for i, line := range m.Visual.Lines {
			assert.LessOrEqual(t, line.Width, width, "iteration %d line %d: %q", iter, i, text)
			assert.Positive(t, line.NumberOfGlyphs(), "iteration %d line %d", iter, i)
			assert.Equal(t, glyph, line.GlyphRun.GlyphIndex, "iteration %d line %d", iter, i)
			assert.Equal(t, character, line.CharacterRun.CharacterIndex, "iteration %d line %d", iter, i)
			glyph = line.GlyphRun.End()
			character = line.CharacterRun.End()
		}
		assert.Equal(t, m.NumberOfGlyphs(), glyph, "iteration %d: all glyphs laid out", iter)
		assert.Equal(t, m.NumberOfCharacters(), character, "iteration %d: all characters laid out", iter)
	}
}

func TestLayoutText_RandomMetricsEllipsisProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	positions := []EllipsisPosition{EllipsisEnd, EllipsisStart, EllipsisMiddle}
	layouts := []LayoutType{SingleLineBox, MultiLineBox}
	for iter := range 300 {
		text := randomText(rng)
		m, widest := randomModel(rng, text)
		width := float64(5 + rng.Intn(100))
		height := float64(rng.Intn(80))
		position := positions[rng.Intn(len(positions))]
		e := newTestEngine(WithLayout(layouts[rng.Intn(len(layouts))]))

		_, ok := e.LayoutText(elideParams(m, width, height, position))

		if widest <= width {
			require.True(t, ok, "iteration %d %s: %q", iter, position, text)
		}
		if !ok {
			assert.Empty(t, m.Visual.Lines, "iteration %d", iter)
			continue
		}

		elided := 0
		for i, line := range m.Visual.Lines {
			if line.Ellipsis {
				elided++
				assert.Positive(t, line.GlyphRun.NumberOfGlyphs, "iteration %d line %d", iter, i)
			}
			assert.LessOrEqual(t, line.Width, width, "iteration %d %s line %d: %q", iter, position, i, text)
		}
		assert.LessOrEqual(t, elided, 1, "iteration %d %s: %q", iter, position, text)

		vm := &m.Visual
		if vm.Elided.FirstMiddle != 0 || vm.Elided.SecondMiddle != 0 {
			assert.GreaterOrEqual(t, vm.Elided.FirstMiddle, 0, "iteration %d", iter)
			assert.Less(t, vm.Elided.FirstMiddle, vm.Elided.SecondMiddle, "iteration %d", iter)
		}
	}
}
