package controller

import (
	"fmt"
	"slices"
	"sort"

	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/text"
)

// Controller owns an editable text and keeps its layout up to date.
//
// Edits mark the paragraphs they touch. When only the text changed since the
// last layout of a multi-line box, Relayout lays out those paragraphs again
// and keeps the lines of the others; any other change lays out everything.
//
// Controller is not safe for concurrent use.
type Controller struct {
	builder *text.Builder
	engine  *layout.Engine
	font    layout.FontID

	runes []rune
	model *layout.Model
	size  layout.Size

	dirty       dirtyRange
	needsLayout bool
	last        layoutState
	laidOut     bool

	alignment            layout.HorizontalAlignment
	layoutDirection      layout.Direction
	matchLayoutDirection bool
	alignmentOffset      float64

	elide                        bool
	ellipsisPosition             layout.EllipsisPosition
	autoScroll                   bool
	autoScrollMaxTextureExceeded bool
	scrolling                    bool
	hiddenInput                  bool
	interGlyphExtraAdvance       float64
}

// dirtyRange is the edited part of the text, in current character indices.
type dirtyRange struct {
	start, end int
	valid      bool
}

// layoutState holds the inputs of the last layout that are not the text.
type layoutState struct {
	box         layout.Size
	layoutType  layout.LayoutType
	cursorWidth float64
	lineSpacing float64
	lineSize    float64
	wrapMode    layout.LineWrapMode
	direction   layout.Direction
}

// Option configures a Controller.
type Option func(*Controller)

// WithHorizontalAlignment sets the alignment of the lines. The default is AlignBegin.
func WithHorizontalAlignment(a layout.HorizontalAlignment) Option {
	return func(c *Controller) {
		c.alignment = a
	}
}

// WithLayoutDirection sets the system layout direction used by AlignBegin and AlignEnd.
func WithLayoutDirection(d layout.Direction, matchLayoutDirection bool) Option {
	return func(c *Controller) {
		c.layoutDirection = d
		c.matchLayoutDirection = matchLayoutDirection
	}
}

// WithEllipsis elides the text that does not fit in the box.
func WithEllipsis(position layout.EllipsisPosition) Option {
	return func(c *Controller) {
		c.elide = true
		c.ellipsisPosition = position
	}
}

// WithInterGlyphSpacing adds extra advance between glyphs.
func WithInterGlyphSpacing(advance float64) Option {
	return func(c *Controller) {
		c.interGlyphExtraAdvance = advance
	}
}

// New creates a controller building its models with the builder and laying
// them out with the engine. The text uses the given font.
func New(builder *text.Builder, engine *layout.Engine, font layout.FontID, opts ...Option) *Controller {
	c := &Controller{
		builder:     builder,
		engine:      engine,
		font:        font,
		needsLayout: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Text returns the current text.
func (c *Controller) Text() string { return string(c.runes) }

// Len returns the number of characters of the text.
func (c *Controller) Len() int { return len(c.runes) }

// SetText replaces the whole text.
func (c *Controller) SetText(s string) {
	c.runes = []rune(s)
	c.dirty = dirtyRange{}
	c.needsLayout = true
}

// InsertText inserts s before the character at.
func (c *Controller) InsertText(at int, s string) error {
	if at < 0 || at > len(c.runes) {
		return fmt.Errorf("%w: insert at %d in %d characters", ErrInvalidRange, at, len(c.runes))
	}
	inserted := []rune(s)
	if len(inserted) == 0 {
		return nil
	}
	c.runes = slices.Insert(c.runes, at, inserted...)
	c.markDirty(at, 0, len(inserted))
	return nil
}

// DeleteText removes n characters starting at the character at.
func (c *Controller) DeleteText(at, n int) error {
	if at < 0 || n < 0 || at+n > len(c.runes) {
		return fmt.Errorf("%w: delete [%d, %d) in %d characters", ErrInvalidRange, at, at+n, len(c.runes))
	}
	if n == 0 {
		return nil
	}
	c.runes = slices.Delete(c.runes, at, at+n)
	c.markDirty(at, n, 0)
	return nil
}

// markDirty maps the dirty range through an edit and adds the edit to it.
func (c *Controller) markDirty(at, removed, inserted int) {
	if !c.dirty.valid {
		c.dirty = dirtyRange{start: at, end: at + inserted, valid: true}
		return
	}
	remap := func(i int) int {
		switch {
		case i <= at:
			return i
		case i >= at+removed:
			return i - removed + inserted
		default:
			return at
		}
	}
	c.dirty.start = min(remap(c.dirty.start), at)
	c.dirty.end = max(remap(c.dirty.end), at+inserted)
}

// SetFont sets the font of the text.
func (c *Controller) SetFont(font layout.FontID) {
	c.font = font
	c.needsLayout = true
}

// SetLayout sets the layout type of the engine.
func (c *Controller) SetLayout(t layout.LayoutType) {
	c.engine.SetLayout(t)
	c.needsLayout = true
}

// SetLineWrapMode sets the line wrap mode of the builder.
func (c *Controller) SetLineWrapMode(m layout.LineWrapMode) {
	c.builder.SetWrapMode(m)
	c.needsLayout = true
}

// SetHorizontalAlignment sets the alignment of the lines.
func (c *Controller) SetHorizontalAlignment(a layout.HorizontalAlignment) { c.alignment = a }

// SetLayoutDirection sets the system layout direction used by AlignBegin and AlignEnd.
func (c *Controller) SetLayoutDirection(d layout.Direction) { c.layoutDirection = d }

// SetMatchLayoutDirection makes AlignBegin and AlignEnd follow the system
// layout direction instead of the direction of every line.
func (c *Controller) SetMatchLayoutDirection(match bool) { c.matchLayoutDirection = match }

// SetEllipsis enables or disables the ellipsis and sets its position.
func (c *Controller) SetEllipsis(enabled bool, position layout.EllipsisPosition) {
	c.elide = enabled
	c.ellipsisPosition = position
	c.needsLayout = true
}

// SetAutoScroll enables the scrolling of a single line. A scrolling text
// exceeding the maximum texture size is elided instead.
func (c *Controller) SetAutoScroll(enabled, maxTextureExceeded bool) {
	c.autoScroll = enabled
	c.autoScrollMaxTextureExceeded = maxTextureExceeded
	c.needsLayout = true
}

// SetHiddenInput lays out the text in a single line, as password fields do.
func (c *Controller) SetHiddenInput(enabled bool) {
	c.hiddenInput = enabled
	c.needsLayout = true
}

// SetInterGlyphSpacing sets the extra advance between glyphs.
func (c *Controller) SetInterGlyphSpacing(advance float64) {
	c.interGlyphExtraAdvance = advance
	c.needsLayout = true
}

// Model returns the model of the last layout, or nil.
func (c *Controller) Model() *layout.Model { return c.model }

// Lines returns the lines of the last layout.
func (c *Controller) Lines() []layout.LineRun {
	if c.model == nil {
		return nil
	}
	return c.model.Visual.Lines
}

// Size returns the size of the last layout.
func (c *Controller) Size() layout.Size { return c.size }

// AlignmentOffset returns the smallest alignment offset of the lines.
func (c *Controller) AlignmentOffset() float64 { return c.alignmentOffset }

// IsScrolling reports whether the last layout kept the text scrolling.
// An elided text does not scroll.
func (c *Controller) IsScrolling() bool { return c.scrolling }

// Relayout lays out the text in the box if anything changed since the last
// layout, aligns the lines and returns the size of the text.
func (c *Controller) Relayout(box layout.Size) (layout.Size, error) {
	state := c.state(box)
	switch {
	case c.needsLayout || !c.laidOut || state != c.last:
		if err := c.fullLayout(box); err != nil {
			return layout.Size{}, err
		}
	case c.dirty.valid:
		if err := c.updateLayout(box); err != nil {
			return layout.Size{}, err
		}
	}
	c.last = state
	c.needsLayout = false
	c.dirty = dirtyRange{}
	c.align(box)
	return c.size, nil
}

func (c *Controller) state(box layout.Size) layoutState {
	return layoutState{
		box:         box,
		layoutType:  c.engine.Layout(),
		cursorWidth: c.engine.CursorWidth(),
		lineSpacing: c.engine.DefaultLineSpacing(),
		lineSize:    c.engine.DefaultLineSize(),
		wrapMode:    c.builder.WrapMode(),
		direction:   c.builder.BaseDirection(),
	}
}

// parameters returns the layout parameters of the whole model.
func (c *Controller) parameters(m *layout.Model, box layout.Size) *layout.Parameters {
	return &layout.Parameters{
		Model:                        m,
		BoundingBox:                  box,
		NumberOfGlyphs:               m.NumberOfGlyphs(),
		EstimatedNumberOfLines:       len(c.Lines()),
		InterGlyphExtraAdvance:       c.interGlyphExtraAdvance,
		IsLastNewParagraph:           endsWithSeparator(c.runes),
		ElideEnabled:                 c.elide,
		EllipsisPosition:             c.ellipsisPosition,
		AutoScrollEnabled:            c.autoScroll,
		AutoScrollMaxTextureExceeded: c.autoScrollMaxTextureExceeded,
		HiddenInputEnabled:           c.hiddenInput,
	}
}

// fullLayout builds the model of the whole text and lays it out.
func (c *Controller) fullLayout(box layout.Size) error {
	m, err := c.builder.Build(string(c.runes), c.font)
	if err != nil {
		c.laidOut = false
		return fmt.Errorf("controller: relayout: %w", err)
	}

	p := c.parameters(m, box)
	size, ok := c.engine.LayoutText(p)
	c.model = m
	c.scrolling = p.AutoScrollEnabled
	if !ok && m.NumberOfGlyphs() > 0 {
		c.laidOut = false
		c.size = layout.Size{}
		return fmt.Errorf("%w: %d glyphs in %gx%g", ErrLayoutFailed, m.NumberOfGlyphs(), box.Width, box.Height)
	}
	c.size = size
	c.laidOut = true
	slogger().Debug("controller: full layout",
		"characters", len(c.runes),
		"lines", len(m.Visual.Lines),
		"width", size.Width,
		"height", size.Height)
	return nil
}

// updateLayout lays out the paragraphs of the dirty range again and keeps
// the lines of the other paragraphs. It falls back to fullLayout when the
// layout depends on the whole text.
func (c *Controller) updateLayout(box layout.Size) error {
	if c.elide || c.hiddenInput || c.autoScroll || c.engine.Layout() != layout.MultiLineBox {
		return c.fullLayout(box)
	}

	// The range is extended to whole paragraphs. Its text before and after
	// did not change, so its bounds are paragraph bounds in the old text too.
	start, _ := text.ParagraphBounds(c.runes, c.dirty.start)
	_, end := text.ParagraphBounds(c.runes, c.dirty.end)
	old := c.model
	delta := len(c.runes) - old.NumberOfCharacters()
	oldStart, oldEnd := start, end-delta
	if end <= start || oldStart < 0 || oldEnd < oldStart || oldEnd > old.NumberOfCharacters() {
		return c.fullLayout(box)
	}

	m, err := c.builder.Build(string(c.runes), c.font)
	if err != nil {
		c.laidOut = false
		return fmt.Errorf("controller: relayout: %w", err)
	}
	glyphStart, glyphEnd := glyphRange(m, start, end)
	if glyphEnd-glyphStart >= m.NumberOfGlyphs() {
		return c.fullLayout(box)
	}
	oldGlyphStart, oldGlyphEnd := glyphRange(old, oldStart, oldEnd)
	glyphDelta := glyphEnd - oldGlyphEnd

	// Move what is kept from the old layout to the new model. An empty line
	// after a final separator starts at oldEnd at most, so it is kept; the
	// engine replaces it when the range reaches the end of the text.
	lines := old.Visual.Lines
	first := sort.Search(len(lines), func(i int) bool {
		return lines[i].CharacterRun.CharacterIndex >= oldStart
	})
	last := sort.Search(len(lines), func(i int) bool {
		return lines[i].CharacterRun.CharacterIndex >= oldEnd
	})
	m.Visual.Lines = slices.Delete(lines, first, last)
	m.Visual.GlyphPositions = slices.Delete(old.Visual.GlyphPositions, oldGlyphStart, oldGlyphEnd)

	m.Logical.BidiLines = old.Logical.BidiLines
	m.Logical.RemoveBidiLines(oldStart, oldEnd)
	m.Logical.ShiftBidiLines(oldEnd, delta)

	m.Visual.Hyphens = shiftHyphens(old.Visual.Hyphens, oldGlyphStart, oldGlyphEnd, glyphDelta)

	p := c.parameters(m, box)
	p.StartGlyphIndex = glyphStart
	p.NumberOfGlyphs = glyphEnd - glyphStart
	p.StartLineIndex = first
	p.EstimatedNumberOfLines = max(1, last-first)
	size, ok := c.engine.LayoutText(p)
	if !ok {
		slogger().Debug("controller: partial layout failed, laying out everything", "start", start, "end", end)
		return c.fullLayout(box)
	}
	c.model = m
	c.size = size
	c.scrolling = false
	slogger().Debug("controller: partial layout",
		"start", start,
		"end", end,
		"removedLines", last-first,
		"lines", len(m.Visual.Lines))
	return nil
}

// align computes the alignment offsets of all the lines.
func (c *Controller) align(box layout.Size) {
	if c.model == nil {
		c.alignmentOffset = 0
		return
	}
	c.alignmentOffset = c.engine.Align(box, 0, c.model.NumberOfCharacters(), c.alignment,
		c.model.Visual.Lines, c.layoutDirection, c.matchLayoutDirection)
}

// glyphRange returns the glyphs of the characters [start, end).
func glyphRange(m *layout.Model, start, end int) (int, int) {
	glyphAt := func(c int) int {
		if c >= m.NumberOfCharacters() {
			return m.NumberOfGlyphs()
		}
		return m.Visual.CharactersToGlyph[c]
	}
	return glyphAt(start), glyphAt(end)
}

// shiftHyphens removes the hyphens placed in (start, end] and moves the
// ones after end by delta glyphs.
func shiftHyphens(h layout.HyphenInfo, start, end, delta int) layout.HyphenInfo {
	var shifted layout.HyphenInfo
	for i, index := range h.Indices {
		switch {
		case index > end:
			index += delta
		case index > start:
			continue
		}
		shifted.Indices = append(shifted.Indices, index)
		shifted.Glyphs = append(shifted.Glyphs, h.Glyphs[i])
	}
	return shifted
}

func endsWithSeparator(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	r := runes[len(runes)-1]
	return r == '\n' || r == '\u2029'
}
