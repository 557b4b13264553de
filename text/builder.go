package text

import (
	"fmt"

	"github.com/gogpu/textlayout/layout"
)

// defaultShapingCacheLimit is the number of shaped direction runs kept by a Builder.
const defaultShapingCacheLimit = 256

// Builder turns a string into a layout.Model: it finds the line break
// opportunities, analyses the bidirectional paragraphs, shapes every
// direction run and fills the character and glyph conversion tables.
//
// Builder is safe for concurrent use once configured.
type Builder struct {
	registry *Registry
	shaper   Shaper
	fallback BuiltinShaper
	cache    *shapingCache

	wrapMode         layout.LineWrapMode
	baseDirection    layout.Direction
	relativeLineSize float64
	lineSizes        map[int]float64
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithShaper sets the shaper. The default is a GoTextShaper.
func WithShaper(s Shaper) BuilderOption {
	return func(b *Builder) {
		if s != nil {
			b.shaper = s
		}
	}
}

// WithWrapMode sets the line wrap mode of the built models.
func WithWrapMode(m layout.LineWrapMode) BuilderOption {
	return func(b *Builder) {
		b.wrapMode = m
	}
}

// WithBaseDirection sets the direction of paragraphs without strong characters.
func WithBaseDirection(d layout.Direction) BuilderOption {
	return func(b *Builder) {
		b.baseDirection = d
	}
}

// WithShapingCacheLimit sets the number of shaped runs kept between builds.
// Zero means unlimited.
func WithShapingCacheLimit(n int) BuilderOption {
	return func(b *Builder) {
		b.cache = newShapingCache(n)
	}
}

// WithRelativeLineSize sets the default line size multiplier of the built models.
func WithRelativeLineSize(size float64) BuilderOption {
	return func(b *Builder) {
		b.relativeLineSize = size
	}
}

// WithParagraphLineSize overrides the relative line size of a paragraph.
func WithParagraphLineSize(paragraph int, size float64) BuilderOption {
	return func(b *Builder) {
		b.SetParagraphLineSize(paragraph, size)
	}
}

// NewBuilder creates a Builder shaping with the faces of the registry.
func NewBuilder(registry *Registry, opts ...BuilderOption) *Builder {
	b := &Builder{
		registry:  registry,
		shaper:    NewGoTextShaper(),
		cache:     newShapingCache(defaultShapingCacheLimit),
		wrapMode:  layout.LineWrapWord,
		lineSizes: make(map[int]float64),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the registry of the builder.
func (b *Builder) Registry() *Registry { return b.registry }

// SetWrapMode sets the line wrap mode of the built models.
func (b *Builder) SetWrapMode(m layout.LineWrapMode) { b.wrapMode = m }

// WrapMode returns the line wrap mode of the built models.
func (b *Builder) WrapMode() layout.LineWrapMode { return b.wrapMode }

// SetBaseDirection sets the direction of paragraphs without strong characters.
func (b *Builder) SetBaseDirection(d layout.Direction) { b.baseDirection = d }

// BaseDirection returns the direction of paragraphs without strong characters.
func (b *Builder) BaseDirection() layout.Direction { return b.baseDirection }

// SetParagraphLineSize overrides the relative line size of the paragraph
// with the given index. A size of zero or less removes the override.
func (b *Builder) SetParagraphLineSize(paragraph int, size float64) {
	if size <= 0 {
		delete(b.lineSizes, paragraph)
		return
	}
	b.lineSizes[paragraph] = size
}

// ParagraphLineSize returns the relative line size override of the paragraph.
func (b *Builder) ParagraphLineSize(paragraph int) (float64, bool) {
	size, ok := b.lineSizes[paragraph]
	return size, ok
}

// ClearCache drops the shaped runs kept between builds, and the parsed
// fonts of the shaper if it keeps any.
func (b *Builder) ClearCache() {
	hits, misses := b.cache.reset()
	if s, ok := b.shaper.(interface{ ClearCache() }); ok {
		s.ClearCache()
	}
	slogger().Debug("text: shaping cache cleared", "hits", hits, "misses", misses)
}

// Build creates the model of the text shaped with the font.
func (b *Builder) Build(s string, font layout.FontID) (*layout.Model, error) {
	face, err := b.registry.Face(font)
	if err != nil {
		return nil, fmt.Errorf("text: build: %w", err)
	}

	runes := []rune(s)
	m := &layout.Model{
		LineWrapMode:     b.wrapMode,
		RelativeLineSize: b.relativeLineSize,
	}
	m.Logical.Text = runes
	m.Logical.LineBreakInfo = LineBreakInfo(runes, b.wrapMode)
	m.Visual.CharactersToGlyph = make([]int, len(runes))
	m.Visual.GlyphsPerCharacter = make([]int, len(runes))

	paragraphs := Paragraphs(runes)
	for i, para := range paragraphs {
		b.buildParagraph(m, face, font, para)
		if size, ok := b.lineSizes[i]; ok {
			m.Logical.BoundedParagraphs = append(m.Logical.BoundedParagraphs, layout.BoundedParagraphRun{
				CharacterRun:            para,
				RelativeLineSize:        size,
				RelativeLineSizeDefined: true,
			})
		}
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("text: build: %w", err)
	}
	slogger().Debug("text: model built",
		"characters", len(runes),
		"glyphs", len(m.Visual.Glyphs),
		"paragraphs", len(paragraphs),
		"bidiParagraphs", len(m.Logical.BidiParagraphs))
	return m, nil
}

// buildParagraph analyses and shapes one paragraph.
func (b *Builder) buildParagraph(m *layout.Model, face Face, font layout.FontID, para layout.CharacterRun) {
	chars := m.Logical.Text[para.CharacterIndex:para.End()]

	dir, ok := firstStrongDirection(chars)
	if !ok {
		dir = b.baseDirection
	}

	var levels []uint8
	if dir == layout.RightToLeft || hasRightToLeft(chars) {
		levels = bidiLevels(chars, dir)
		m.Logical.BidiParagraphs = append(m.Logical.BidiParagraphs, layout.BidiParagraphInfoRun{
			CharacterRun: para,
			Direction:    dir,
			Levels:       levels,
		})
	}

	italic := face.Italic() && !face.Source().IsItalic()
	for _, run := range directionRuns(len(chars), levels) {
		runes := chars[run.start:run.end]
		glyphs := b.shape(runes, face, font, run.direction)
		appendGlyphs(&m.Visual, runes, glyphs, para.CharacterIndex+run.start, font, italic)
	}
}

// shape returns the glyphs of a direction run, from the cache if possible.
func (b *Builder) shape(runes []rune, face Face, font layout.FontID, dir layout.Direction) []ShapedGlyph {
	key := shapingKey{text: string(runes), font: font, direction: dir}
	return b.cache.shaped(key, func() []ShapedGlyph {
		glyphs := b.shaper.Shape(runes, face, dir)
		if len(glyphs) == 0 {
			slogger().Debug("text: shaper returned no glyphs, using nominal glyphs", "characters", len(runes))
			glyphs = b.fallback.Shape(runes, face, dir)
		}
		return glyphs
	})
}

// appendGlyphs appends the glyphs of a run starting at the character base.
// The last glyph of a cluster carries its characters; the others carry none.
func appendGlyphs(vm *layout.VisualModel, runes []rune, glyphs []ShapedGlyph, base int, font layout.FontID, italic bool) {
	count := len(runes)
	for i := 0; i < len(glyphs); {
		cluster := glyphs[i].Cluster
		j := i + 1
		for j < len(glyphs) && glyphs[j].Cluster == cluster {
			j++
		}
		next := count
		if j < len(glyphs) {
			next = min(glyphs[j].Cluster, count)
		}
		if i == 0 {
			// Characters before the first cluster belong to it.
			cluster = 0
		}
		chars := max(next-cluster, 0)
		separator := chars > 0 && isParagraphSeparator(runes[next-1])

		first := len(vm.Glyphs)
		for k := i; k < j; k++ {
			g := glyphs[k]
			info := layout.GlyphInfo{
				FontID:           font,
				Index:            g.GID,
				Advance:          g.XAdvance,
				XBearing:         g.XBearing + g.XOffset,
				YBearing:         g.YBearing + g.YOffset,
				Width:            g.Width,
				Height:           g.Height,
				IsItalicRequired: italic,
			}
			if separator {
				// Paragraph separators take no room.
				info.Advance, info.Width = 0, 0
			}
			carried := 0
			if k == j-1 {
				carried = chars
			}
			vm.Glyphs = append(vm.Glyphs, info)
			vm.GlyphsToCharacters = append(vm.GlyphsToCharacters, base+cluster)
			vm.CharactersPerGlyph = append(vm.CharactersPerGlyph, carried)
		}
		for c := base + cluster; c < base+cluster+chars; c++ {
			vm.CharactersToGlyph[c] = first
			vm.GlyphsPerCharacter[c] = 0
		}
		if chars > 0 {
			vm.GlyphsPerCharacter[base+cluster] = j - i
		}
		i = j
	}
}

// Paragraphs splits the text after every paragraph separator. The
// separator belongs to the paragraph it ends.
func Paragraphs(runes []rune) []layout.CharacterRun {
	var paragraphs []layout.CharacterRun
	start := 0
	for i, r := range runes {
		if isParagraphSeparator(r) {
			paragraphs = append(paragraphs, layout.CharacterRun{CharacterIndex: start, NumberOfCharacters: i + 1 - start})
			start = i + 1
		}
	}
	if start < len(runes) {
		paragraphs = append(paragraphs, layout.CharacterRun{CharacterIndex: start, NumberOfCharacters: len(runes) - start})
	}
	return paragraphs
}

// ParagraphBounds returns the first character of the paragraph containing
// the index and the character after it. An index at the end of a text
// ending with a separator is an empty paragraph.
func ParagraphBounds(runes []rune, index int) (start, end int) {
	index = min(max(index, 0), len(runes))
	start = index
	for start > 0 && !isParagraphSeparator(runes[start-1]) {
		start--
	}
	end = index
	for end < len(runes) {
		end++
		if isParagraphSeparator(runes[end-1]) {
			break
		}
	}
	return start, end
}
