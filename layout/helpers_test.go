package layout

// Test fixtures: a synthetic metrics provider and models with one glyph per
// character, advance 10 and width 10 (white spaces have no width and
// newlines no advance). Font 1 has ascender 8 and descender -2.

const (
	testAdvance   = 10.0
	testAscender  = 8.0
	testDescender = -2.0
	testYBearing  = 8.0
)

type fakeMetrics struct {
	fonts  map[FontID]FontMetrics
	italic map[FontID]bool
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		fonts: map[FontID]FontMetrics{
			1: {Ascender: testAscender, Descender: testDescender, Height: testAscender - testDescender},
			2: {Ascender: 16, Descender: -4, Height: 20},
		},
		italic: map[FontID]bool{},
	}
}

func (f *fakeMetrics) FontMetrics(id FontID) FontMetrics { return f.fonts[id] }

func (f *fakeMetrics) GlyphIndex(_ FontID, r rune) GlyphID {
	if r == '-' {
		return GlyphID(r)
	}
	return 0
}

func (f *fakeMetrics) GlyphMetrics(g *GlyphInfo) bool {
	if _, ok := f.fonts[g.FontID]; !ok {
		return false
	}
	g.Advance = 4
	g.Width = 4
	g.Height = 10
	g.YBearing = 5
	return true
}

func (f *fakeMetrics) HasItalicStyle(id FontID) bool { return f.italic[id] }

// newTestEngine returns an engine with no cursor width.
func newTestEngine(opts ...Option) *Engine {
	return NewEngine(newFakeMetrics(), append([]Option{WithCursorWidth(0)}, opts...)...)
}

// newTestModel builds a model with one glyph per character. Spaces allow
// a line break, newlines and the last character must break the line.
func newTestModel(text string) *Model {
	runes := []rune(text)
	m := &Model{}
	m.Logical.Text = runes
	for i, r := range runes {
		glyph := GlyphInfo{
			FontID:   1,
			Index:    GlyphID(r),
			Advance:  testAdvance,
			Width:    testAdvance,
			Height:   testAscender,
			YBearing: testYBearing,
		}
		info := LineNoBreak
		switch {
		case r == '\n':
			glyph.Advance, glyph.Width = 0, 0
			info = LineMustBreak
		case r == ' ':
			glyph.Width = 0
			info = LineAllowBreak
		}
		if i == len(runes)-1 {
			info = LineMustBreak
		}

		m.Logical.LineBreakInfo = append(m.Logical.LineBreakInfo, info)
		m.Visual.Glyphs = append(m.Visual.Glyphs, glyph)
		m.Visual.GlyphsToCharacters = append(m.Visual.GlyphsToCharacters, i)
		m.Visual.CharactersToGlyph = append(m.Visual.CharactersToGlyph, i)
		m.Visual.CharactersPerGlyph = append(m.Visual.CharactersPerGlyph, 1)
		m.Visual.GlyphsPerCharacter = append(m.Visual.GlyphsPerCharacter, 1)
	}
	return m
}

// withRTLParagraph marks [start, start+count) as a right-to-left paragraph
// with all characters at level 1, or at the given levels.
func withRTLParagraph(m *Model, start, count int, levels ...uint8) *Model {
	if levels == nil {
		levels = make([]uint8, count)
		for i := range levels {
			levels[i] = 1
		}
	}
	m.Logical.BidiParagraphs = append(m.Logical.BidiParagraphs, BidiParagraphInfoRun{
		CharacterRun: CharacterRun{CharacterIndex: start, NumberOfCharacters: count},
		Direction:    RightToLeft,
		Levels:       levels,
	})
	return m
}

// paramsFor returns parameters laying out the whole model in the box.
func paramsFor(m *Model, width, height float64) *Parameters {
	return &Parameters{
		Model:          m,
		BoundingBox:    Size{Width: width, Height: height},
		NumberOfGlyphs: len(m.Visual.Glyphs),
	}
}

// lineTexts returns the characters of every line.
func lineTexts(m *Model) []string {
	var texts []string
	for _, line := range m.Visual.Lines {
		r := line.CharacterRun
		texts = append(texts, string(m.Logical.Text[r.CharacterIndex:r.End()]))
	}
	return texts
}

func positionsX(m *Model, from, to int) []float64 {
	xs := make([]float64, 0, to-from)
	for _, p := range m.Visual.GlyphPositions[from:to] {
		xs = append(xs, p.X)
	}
	return xs
}
