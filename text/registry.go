package text

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/textlayout/layout"
)

// Registry assigns font identifiers to faces and serves their metrics to
// the layout engine. Identifiers start at 1; 0 means no font.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	faces []Face
}

var _ layout.Metrics = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds the face and returns its identifier.
// Registering the same face twice returns the identifier of the first call.
func (r *Registry) Register(face Face) (layout.FontID, error) {
	if face == nil {
		return 0, ErrNoFace
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.faces {
		if f == face {
			return layout.FontID(i + 1), nil
		}
	}
	r.faces = append(r.faces, face)
	return layout.FontID(len(r.faces)), nil
}

// Face returns the face registered under the identifier.
func (r *Registry) Face(id layout.FontID) (Face, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id == 0 || int(id) > len(r.faces) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return r.faces[id-1], nil
}

// Len returns the number of registered faces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.faces)
}

// FontMetrics implements layout.Metrics. Unknown fonts have zero metrics.
func (r *Registry) FontMetrics(id layout.FontID) layout.FontMetrics {
	face, err := r.Face(id)
	if err != nil {
		return layout.FontMetrics{}
	}
	m := face.Metrics()
	thickness := math.Max(1, face.Size()*underlineThicknessRatio)
	return layout.FontMetrics{
		Ascender:           m.Ascent,
		Descender:          -m.Descent,
		Height:             m.Ascent + m.Descent,
		UnderlinePosition:  m.Descent / 2,
		UnderlineThickness: thickness,
	}
}

// GlyphIndex implements layout.Metrics.
func (r *Registry) GlyphIndex(id layout.FontID, c rune) layout.GlyphID {
	face, err := r.Face(id)
	if err != nil {
		return 0
	}
	return layout.GlyphID(face.Source().Parsed().GlyphIndex(c))
}

// GlyphMetrics implements layout.Metrics. It fills the metrics of the glyph
// from the font tables, without shaping.
func (r *Registry) GlyphMetrics(glyph *layout.GlyphInfo) bool {
	face, err := r.Face(glyph.FontID)
	if err != nil {
		return false
	}
	parsed := face.Source().Parsed()
	if parsed == nil || glyph.Index > math.MaxUint16 {
		return false
	}

	gid := uint16(glyph.Index)
	bounds := parsed.GlyphBounds(gid, face.Size(), face.Hinting())
	glyph.Advance = parsed.GlyphAdvance(gid, face.Size(), face.Hinting())
	glyph.XBearing = bounds.MinX
	glyph.YBearing = -bounds.MinY
	glyph.Width = bounds.Width()
	glyph.Height = bounds.Height()
	glyph.IsItalicRequired = face.Italic() && !face.Source().IsItalic()
	return true
}

// HasItalicStyle implements layout.Metrics.
func (r *Registry) HasItalicStyle(id layout.FontID) bool {
	face, err := r.Face(id)
	if err != nil {
		return false
	}
	return face.Source().IsItalic()
}
