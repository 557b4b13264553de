package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned when a FontID was not assigned by the Registry.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrNoFace is returned when a nil face is registered.
	ErrNoFace = errors.New("text: face is nil")

	// ErrSourceClosed is returned when a closed FontSource is shaped.
	ErrSourceClosed = errors.New("text: font source is closed")
)
