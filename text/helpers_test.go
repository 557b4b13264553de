package text

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textlayout/layout"
)

// testSize is the face size used by the tests, in pixels per em.
const testSize = 16

func goRegular(t *testing.T) *FontSource {
	t.Helper()
	source, err := NewFontSource(goregular.TTF)
	require.NoError(t, err)
	t.Cleanup(func() { _ = source.Close() })
	return source
}

func goItalic(t *testing.T) *FontSource {
	t.Helper()
	source, err := NewFontSource(goitalic.TTF)
	require.NoError(t, err)
	t.Cleanup(func() { _ = source.Close() })
	return source
}

// newTestRegistry registers a Go Regular face and returns its identifier.
func newTestRegistry(t *testing.T, opts ...FaceOption) (*Registry, layout.FontID) {
	t.Helper()
	registry := NewRegistry()
	id, err := registry.Register(goRegular(t).Face(testSize, opts...))
	require.NoError(t, err)
	return registry, id
}

// buildText builds the model of the text with the builtin shaper.
func buildText(t *testing.T, s string, opts ...BuilderOption) *layout.Model {
	t.Helper()
	registry, id := newTestRegistry(t)
	opts = append([]BuilderOption{WithShaper(&BuiltinShaper{})}, opts...)
	m, err := NewBuilder(registry, opts...).Build(s, id)
	require.NoError(t, err)
	return m
}
