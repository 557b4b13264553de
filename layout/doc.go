// Package layout implements the text line-layout engine.
//
// The engine takes a shaped glyph buffer together with the logical tables
// that describe it (characters, glyph/character maps, line break
// opportunities, bidirectional paragraphs and per-paragraph line sizes) and
// produces one [LineRun] per laid-out line plus a position for every glyph.
//
// The pipeline has four stages:
//
//   - the line breaker walks glyph groups, accumulating a candidate line
//     until the bounding width, a mandatory break or the end of the text is
//     reached, and re-measures bidirectional lines in visual order;
//   - [Engine.LayoutText] drives the breaker over a glyph range, persists
//     lines, computes glyph positions and supports partial relayout;
//   - the ellipsizer re-runs the breaker in "completely fill" mode on the
//     last visible line when the text overflows (END, START or MIDDLE);
//   - [Engine.Align] computes the horizontal offset of every line.
//
// # Example usage
//
//	engine := layout.NewEngine(metrics, layout.WithLayout(layout.MultiLineBox))
//	params := &layout.Parameters{
//	    Model:          model,
//	    BoundingBox:    layout.Size{Width: 200, Height: 100},
//	    NumberOfGlyphs: len(model.Visual.Glyphs),
//	}
//	size, ok := engine.LayoutText(params)
//	if !ok {
//	    // The box is too narrow for a single glyph.
//	}
//	engine.Align(size, 0, len(model.Logical.Text), layout.AlignCenter,
//	    model.Visual.Lines, layout.LeftToRight, true)
//
// The engine is synchronous and keeps no state between calls other than its
// configuration. A model must not be laid out from two goroutines at once.
package layout
