// Package text builds the text models laid out by package layout.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific size
//   - Registry: Assigns layout.FontID values to faces and implements layout.Metrics
//   - Shaper: Converts direction runs into glyphs (GoTextShaper, BuiltinShaper)
//   - Builder: Splits paragraphs, resolves bidi levels, finds line break
//     opportunities and fills the glyph and character tables of a layout.Model
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	registry := text.NewRegistry()
//	font, _ := registry.Register(source.Face(16))
//
//	model, err := text.NewBuilder(registry).Build("Hello, world!", font)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine := layout.NewEngine(registry, layout.WithLayout(layout.MultiLineBox))
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
