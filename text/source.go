package text

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont

	name   string
	italic bool

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   append([]byte(nil), data...),
		parsed: parsed,
		config: config,
	}
	s.addr = s
	s.name = extractFontName(parsed)
	s.italic = isItalicSubfamily(parsed.Subfamily())

	slogger().Debug("text: font source loaded",
		"name", s.name, "glyphs", parsed.NumGlyphs(), "italic", s.italic)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size (in pixels per em).
// Multiple faces can be created from the same FontSource.
// Panics if s is nil (e.g. when the error of NewFontSourceFromFile was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil, check the error of NewFontSourceFromFile")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// IsItalic reports whether the font itself is an italic or oblique style.
func (s *FontSource) IsItalic() bool {
	s.copyCheck()
	return s.italic
}

// Parsed returns the parsed font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Data returns the raw font data. The slice must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.parsed = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}

// isItalicSubfamily reports whether a style name describes a slanted face.
func isItalicSubfamily(subfamily string) bool {
	s := strings.ToLower(subfamily)
	return strings.Contains(s, "italic") || strings.Contains(s, "oblique")
}
