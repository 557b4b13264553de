package text

// Face represents a font face at a specific size.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// without shaping.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Hinting returns the hinting mode used for measurements.
	Hinting() Hinting

	// Language returns the language tag used for shaping.
	Language() string

	// Italic reports whether an italic rendering was requested.
	Italic() bool

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	fm := f.source.Parsed().Metrics(f.size, f.config.hinting)
	return Metrics{
		Ascent:    fm.Ascent,
		Descent:   fm.Descent,
		LineGap:   fm.LineGap,
		XHeight:   fm.XHeight,
		CapHeight: fm.CapHeight,
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	total := 0.0
	for _, r := range text {
		total += parsed.GlyphAdvance(parsed.GlyphIndex(r), f.size, f.config.hinting)
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.Parsed().GlyphIndex(r) != 0
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource { return f.source }

// Size implements Face.Size.
func (f *sourceFace) Size() float64 { return f.size }

// Hinting implements Face.Hinting.
func (f *sourceFace) Hinting() Hinting { return f.config.hinting }

// Language implements Face.Language.
func (f *sourceFace) Language() string { return f.config.language }

// Italic implements Face.Italic.
func (f *sourceFace) Italic() bool { return f.config.italic }

// private implements the Face interface.
func (f *sourceFace) private() {}
