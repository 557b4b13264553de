package text

import (
	"bytes"
	"slices"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textlayout/layout"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning pairs (AV, To, etc.)
//   - Right-to-left text (Arabic, Hebrew)
//   - Complex scripts (Devanagari, Thai, etc.)
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape() call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(runes []rune, face Face, dir layout.Direction) []ShapedGlyph {
	if len(runes) == 0 || face == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		slogger().Warn("text: go-text cannot parse font", "font", face.Source().Name(), "err", err)
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.Language()),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face). A closed source
// loses its cached font.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	if source.Data() == nil {
		s.removeSource(source)
		return nil, ErrSourceClosed
	}

	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

func (s *GoTextShaper) removeSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// mapDirection converts a layout.Direction to go-text's di.Direction.
func mapDirection(d layout.Direction) di.Direction {
	if d == layout.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first character that has one.
// Runs are split by direction, not by script, so mixed-script runs are
// shaped with the script of their first letter.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s.Strong() {
			return s
		}
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to ShapedGlyphs in logical
// order. Right-to-left output comes in visual order; the stable sort keeps
// the order of the glyphs inside a cluster.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		result[i] = ShapedGlyph{
			GID:      layout.GlyphID(g.GlyphID),
			Cluster:  g.TextIndex(),
			XAdvance: fixedToFloat(g.Advance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
			XBearing: fixedToFloat(g.XBearing),
			YBearing: fixedToFloat(g.YBearing),
			Width:    fixedToFloat(g.Width),
			// go-text heights grow downwards.
			Height: -fixedToFloat(g.Height),
		}
	}
	slices.SortStableFunc(result, func(a, b ShapedGlyph) int {
		return a.Cluster - b.Cluster
	})
	return result
}
