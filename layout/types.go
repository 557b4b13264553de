package layout

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// FontID identifies a font face known to the [Metrics] provider.
// Zero means "no font"; glyphs with a zero FontID are embedded items
// (e.g. images) whose height is taken from the glyph itself.
type FontID uint32

// GlyphID is the index of a glyph inside its font.
type GlyphID uint32

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Vector2 is a glyph position relative to the line's pen origin.
// X grows to the right, Y grows downwards from the baseline.
type Vector2 struct {
	X, Y float64
}

// Direction is the direction of a paragraph, a line or the system layout.
type Direction uint8

const (
	// LeftToRight is the direction of Latin, Cyrillic, CJK text.
	LeftToRight Direction = iota
	// RightToLeft is the direction of Arabic or Hebrew text.
	RightToLeft
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LTR"
	case RightToLeft:
		return "RTL"
	default:
		return unknownStr
	}
}

// LayoutType selects between single and multi-line layout.
type LayoutType uint8

const (
	// SingleLineBox lays out all the text in one line. Paragraph
	// separators do not break the line.
	SingleLineBox LayoutType = iota
	// MultiLineBox wraps the text inside the bounding box width.
	MultiLineBox
)

// String returns the string representation of the layout type.
func (t LayoutType) String() string {
	switch t {
	case SingleLineBox:
		return "SingleLine"
	case MultiLineBox:
		return "MultiLine"
	default:
		return unknownStr
	}
}

// LineBreakInfo describes the line break opportunity after a character.
type LineBreakInfo uint8

const (
	// LineNoBreak means the line can't be broken after the character.
	LineNoBreak LineBreakInfo = iota
	// LineAllowBreak means the line may be broken after the character.
	LineAllowBreak
	// LineMustBreak means the line has to be broken after the character
	// (paragraph separators and the end of the text).
	LineMustBreak
	// LineHyphenationBreak means a hyphen may be inserted after the character.
	LineHyphenationBreak
)

// String returns the string representation of the break info.
func (b LineBreakInfo) String() string {
	switch b {
	case LineNoBreak:
		return "NoBreak"
	case LineAllowBreak:
		return "AllowBreak"
	case LineMustBreak:
		return "MustBreak"
	case LineHyphenationBreak:
		return "HyphenationBreak"
	default:
		return unknownStr
	}
}

// LineWrapMode controls where lines are wrapped when the text is wider than
// the bounding box.
type LineWrapMode uint8

const (
	// LineWrapWord wraps at word boundaries and breaks a word by characters
	// only when it doesn't fit in a line on its own.
	LineWrapWord LineWrapMode = iota
	// LineWrapCharacter wraps at any character.
	LineWrapCharacter
	// LineWrapHyphenation wraps at word boundaries or hyphenation points,
	// inserting a hyphen glyph at the end of hyphenated lines.
	LineWrapHyphenation
	// LineWrapMixed wraps at word boundaries and falls back to hyphenation
	// when a line has no complete word.
	LineWrapMixed
)

// String returns the string representation of the wrap mode.
func (m LineWrapMode) String() string {
	switch m {
	case LineWrapWord:
		return "Word"
	case LineWrapCharacter:
		return "Character"
	case LineWrapHyphenation:
		return "Hyphenation"
	case LineWrapMixed:
		return "Mixed"
	default:
		return unknownStr
	}
}

// EllipsisPosition is where the ellipsis is placed when the text overflows.
type EllipsisPosition uint8

const (
	// EllipsisEnd truncates the end of the text (default).
	EllipsisEnd EllipsisPosition = iota
	// EllipsisStart truncates the beginning of the text.
	EllipsisStart
	// EllipsisMiddle truncates the middle of the text.
	EllipsisMiddle
)

// String returns the string representation of the ellipsis position.
func (p EllipsisPosition) String() string {
	switch p {
	case EllipsisEnd:
		return "End"
	case EllipsisStart:
		return "Start"
	case EllipsisMiddle:
		return "Middle"
	default:
		return unknownStr
	}
}

// HorizontalAlignment is the alignment of the lines inside the box.
// BEGIN and END depend on the line or system direction.
type HorizontalAlignment uint8

const (
	// AlignBegin aligns lines to the start edge.
	AlignBegin HorizontalAlignment = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignEnd aligns lines to the end edge.
	AlignEnd
)

// String returns the string representation of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignBegin:
		return "Begin"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	default:
		return unknownStr
	}
}

// GlyphInfo is the shaping result for one glyph.
// The engine never modifies it.
type GlyphInfo struct {
	FontID   FontID
	Index    GlyphID
	Advance  float64
	XBearing float64
	// YBearing is the distance from the baseline to the top of the glyph.
	YBearing float64
	Width    float64
	Height   float64
	// IsItalicRequired is set when the glyph has to be rendered with a
	// synthetic slant because its font has no italic style.
	IsItalicRequired bool
}

// FontMetrics are the vertical metrics of a font.
type FontMetrics struct {
	// Ascender is the distance from the baseline to the top of the font (positive).
	Ascender float64
	// Descender is the distance from the baseline to the bottom of the font (negative).
	Descender          float64
	Height             float64
	UnderlinePosition  float64
	UnderlineThickness float64
}

// CharacterRun is a contiguous range of characters.
type CharacterRun struct {
	CharacterIndex     int
	NumberOfCharacters int
}

// End returns the index one past the last character of the run.
func (r CharacterRun) End() int {
	return r.CharacterIndex + r.NumberOfCharacters
}

// Contains reports whether the character index is inside the run.
func (r CharacterRun) Contains(index int) bool {
	return index >= r.CharacterIndex && index < r.End()
}

// GlyphRun is a contiguous range of glyphs.
type GlyphRun struct {
	GlyphIndex     int
	NumberOfGlyphs int
}

// End returns the index one past the last glyph of the run.
func (r GlyphRun) End() int {
	return r.GlyphIndex + r.NumberOfGlyphs
}

// LineRun is a laid-out line.
type LineRun struct {
	GlyphRun GlyphRun
	// GlyphRunSecondHalf holds the glyphs after a middle ellipsis.
	GlyphRunSecondHalf GlyphRun
	CharacterRun       CharacterRun
	// CharacterRunForSecondHalfLine holds the characters after a middle ellipsis.
	CharacterRunForSecondHalfLine CharacterRun

	Width     float64
	Ascender  float64
	Descender float64
	// ExtraLength is the length of the white spaces at the end of the line.
	ExtraLength     float64
	AlignmentOffset float64
	LineSpacing     float64

	Direction          Direction
	Ellipsis           bool
	IsSplitToTwoHalves bool
}

// Height returns the height of the line: ascender minus descender plus the
// line spacing. The spacing of the last line is only added when positive.
func (l *LineRun) Height(isLastLine bool) float64 {
	h := l.Ascender - l.Descender
	if !isLastLine || l.LineSpacing > 0 {
		h += l.LineSpacing
	}
	return h
}

// NumberOfGlyphs returns the glyphs of both halves of the line.
func (l *LineRun) NumberOfGlyphs() int {
	return l.GlyphRun.NumberOfGlyphs + l.GlyphRunSecondHalf.NumberOfGlyphs
}

// NumberOfCharacters returns the characters of both halves of the line.
func (l *LineRun) NumberOfCharacters() int {
	return l.CharacterRun.NumberOfCharacters + l.CharacterRunForSecondHalfLine.NumberOfCharacters
}

// BidiParagraphInfoRun describes a paragraph that contains right-to-left
// characters.
type BidiParagraphInfoRun struct {
	CharacterRun CharacterRun
	Direction    Direction
	// Levels holds the resolved embedding level of every character of the
	// paragraph. Even levels are left-to-right.
	Levels []uint8
}

// BidiLineInfoRun holds the visual to logical conversion tables of a line.
// Map entries are relative to the first character of their run.
type BidiLineInfoRun struct {
	CharacterRun                  CharacterRun
	CharacterRunForSecondHalfLine CharacterRun
	VisualToLogicalMap            []int
	VisualToLogicalMapSecondHalf  []int
	Direction                     Direction
	IsIdentity                    bool
}

// BoundedParagraphRun overrides the relative line size of a paragraph.
type BoundedParagraphRun struct {
	CharacterRun            CharacterRun
	RelativeLineSize        float64
	RelativeLineSizeDefined bool
}

// HyphenInfo lists the hyphen glyphs to render after hyphenated lines.
// Indices[i] is the glyph index the hyphen Glyphs[i] is placed before.
type HyphenInfo struct {
	Glyphs  []GlyphInfo
	Indices []int
}

func (h *HyphenInfo) reset() {
	h.Glyphs = h.Glyphs[:0]
	h.Indices = h.Indices[:0]
}

// truncateAfter removes the hyphens placed after the glyph index.
func (h *HyphenInfo) truncateAfter(glyphIndex int) {
	n := len(h.Indices)
	for n > 0 && h.Indices[n-1] > glyphIndex {
		n--
	}
	h.Indices = h.Indices[:n]
	h.Glyphs = h.Glyphs[:n]
}

// removeRange removes the hyphens placed in [lo, hi].
func (h *HyphenInfo) removeRange(lo, hi int) {
	n := 0
	for i, index := range h.Indices {
		if index >= lo && index <= hi {
			continue
		}
		h.Indices[n] = index
		h.Glyphs[n] = h.Glyphs[i]
		n++
	}
	h.Indices = h.Indices[:n]
	h.Glyphs = h.Glyphs[:n]
}

// split removes the hyphens placed in (start, end] and returns a copy of
// the ones placed after end, which are removed too.
func (h *HyphenInfo) split(start, end int) HyphenInfo {
	var tail HyphenInfo
	n := 0
	for i, index := range h.Indices {
		switch {
		case index > end:
			tail.Indices = append(tail.Indices, index)
			tail.Glyphs = append(tail.Glyphs, h.Glyphs[i])
		case index > start:
		default:
			h.Indices[n] = index
			h.Glyphs[n] = h.Glyphs[i]
			n++
		}
	}
	h.Indices = h.Indices[:n]
	h.Glyphs = h.Glyphs[:n]
	return tail
}

// ElidedGlyphs marks the glyphs that stay visible around an ellipsis.
type ElidedGlyphs struct {
	// Start is the first visible glyph (START ellipsis).
	Start int
	// End is the last visible glyph (END ellipsis).
	End int
	// FirstMiddle is the last glyph before a MIDDLE ellipsis.
	FirstMiddle int
	// SecondMiddle is the first glyph after a MIDDLE ellipsis.
	SecondMiddle int
}
