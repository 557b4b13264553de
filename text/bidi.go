package text

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textlayout/layout"
)

// directionRun is a range of paragraph characters with the same direction.
type directionRun struct {
	start, end int
	direction  layout.Direction
}

// firstStrongDirection returns the direction of the first strong character,
// following rules P2 and P3 of UAX #9.
func firstStrongDirection(runes []rune) (layout.Direction, bool) {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return layout.LeftToRight, true
		case bidi.R, bidi.AL:
			return layout.RightToLeft, true
		}
	}
	return layout.LeftToRight, false
}

// hasRightToLeft reports whether the characters need bidi reordering.
func hasRightToLeft(runes []rune) bool {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL, bidi.AN, bidi.RLE, bidi.RLO, bidi.RLI:
			return true
		}
	}
	return false
}

// bidiLevels resolves the embedding level of every character of the
// paragraph. Right-to-left runs get level 1; left-to-right runs get level 0,
// or 2 inside a right-to-left paragraph.
func bidiLevels(runes []rune, dir layout.Direction) []uint8 {
	levels := make([]uint8, len(runes))
	ltrLevel := uint8(0)
	defaultDir := bidi.LeftToRight
	if dir == layout.RightToLeft {
		ltrLevel = 2
		defaultDir = bidi.RightToLeft
		for i := range levels {
			levels[i] = 1
		}
	}

	var p bidi.Paragraph
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(defaultDir)); err != nil {
		slogger().Warn("text: bidi analysis failed", "err", err)
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		slogger().Warn("text: bidi ordering failed", "err", err)
		return levels
	}

	// Run.Pos returns rune indices, end inclusive.
	for i := range ordering.NumRuns() {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := ltrLevel
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = level
		}
	}
	return levels
}

// directionRuns splits the paragraph where the direction of the levels changes.
// Nil levels are a single left-to-right run.
func directionRuns(n int, levels []uint8) []directionRun {
	if n == 0 {
		return nil
	}
	if levels == nil {
		return []directionRun{{start: 0, end: n, direction: layout.LeftToRight}}
	}

	dirOf := func(level uint8) layout.Direction {
		if level%2 == 1 {
			return layout.RightToLeft
		}
		return layout.LeftToRight
	}

	runs := make([]directionRun, 0, 4)
	current := directionRun{start: 0, direction: dirOf(levels[0])}
	for i := 1; i < n; i++ {
		if d := dirOf(levels[i]); d != current.direction {
			current.end = i
			runs = append(runs, current)
			current = directionRun{start: i, direction: d}
		}
	}
	current.end = n
	return append(runs, current)
}
