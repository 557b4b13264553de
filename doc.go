// Package textlayout lays out text in a box: it wraps lines at word,
// character or hyphenation boundaries, reorders bidirectional lines,
// places an ellipsis when the text does not fit and aligns the lines.
//
// # Overview
//
// The work is split across sub-packages:
//   - layout: the engine. It lays out the glyphs of a Model in a bounding
//     box and fills its lines, glyph positions and bidi line runs.
//   - text: fonts, shaping and analysis. It builds the Model of a string.
//   - controller: an editable text kept laid out, relaying out only the
//     edited paragraphs when it can.
//
// # Quick Start
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model, size, err := textlayout.LayoutString("Hello, world!", source.Face(16),
//	    layout.Size{Width: 200, Height: 100})
//
// # Coordinate System
//
// Glyph positions are relative to the origin of their line:
//   - X increases right, from the start of the line
//   - Y increases down, the baseline is at 0
//
// The vertical position of a line is the sum of the heights of the lines
// before it.
package textlayout

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
