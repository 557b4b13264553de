package controller

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/text"
)

const testSize = 16

// newTestController returns a multi-line controller using Go Regular with
// the builtin shaper, and a width fitting "Hello " but not "Hello world".
func newTestController(t *testing.T, opts ...Option) (*Controller, layout.Size) {
	t.Helper()
	source, err := text.NewFontSource(goregular.TTF)
	require.NoError(t, err)
	t.Cleanup(func() { _ = source.Close() })

	registry := text.NewRegistry()
	face := source.Face(testSize)
	id, err := registry.Register(face)
	require.NoError(t, err)

	builder := text.NewBuilder(registry, text.WithShaper(&text.BuiltinShaper{}))
	engine := layout.NewEngine(registry, layout.WithLayout(layout.MultiLineBox))
	box := layout.Size{Width: face.Advance("Hello world") / 1.5, Height: 1000}
	return New(builder, engine, id, opts...), box
}

// captureLogs enables debug logging into a buffer until the test ends.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

// assertSameLayout checks that two controllers hold the same layout.
func assertSameLayout(t *testing.T, want, got *Controller) {
	t.Helper()
	require.NotNil(t, want.Model())
	require.NotNil(t, got.Model())
	wm, gm := want.Model(), got.Model()

	assert.Equal(t, want.Size(), got.Size())
	assert.Equal(t, want.AlignmentOffset(), got.AlignmentOffset())
	assert.Equal(t, wm.Visual.Lines, gm.Visual.Lines)
	assert.Equal(t, wm.Visual.GlyphPositions, gm.Visual.GlyphPositions)
	assert.ElementsMatch(t, wm.Logical.BidiLines, gm.Logical.BidiLines)
	assert.ElementsMatch(t, wm.Visual.Hyphens.Indices, gm.Visual.Hyphens.Indices)
}
