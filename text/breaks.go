package text

import (
	"github.com/go-text/typesetting/segmenter"

	"github.com/gogpu/textlayout/layout"
)

// softHyphen marks a hyphenation point inside a word.
const softHyphen = '\u00AD'

// LineBreakInfo returns the line break opportunity after every character,
// following UAX #14. Soft hyphens are hyphenation points in the hyphenation
// and mixed modes. In character mode every character allows a break. The
// last character always breaks the line.
func LineBreakInfo(runes []rune, mode layout.LineWrapMode) []layout.LineBreakInfo {
	n := len(runes)
	if n == 0 {
		return nil
	}

	info := make([]layout.LineBreakInfo, n)
	var seg segmenter.Segmenter
	seg.Init(runes)
	lines := seg.LineIterator()
	for lines.Next() {
		line := lines.Line()
		last := line.Offset + len(line.Text) - 1
		if last < 0 || last >= n {
			continue
		}
		if line.IsMandatoryBreak {
			info[last] = layout.LineMustBreak
		} else {
			info[last] = layout.LineAllowBreak
		}
	}

	hyphenation := mode == layout.LineWrapHyphenation || mode == layout.LineWrapMixed
	for i, r := range runes {
		switch {
		case info[i] == layout.LineMustBreak:
		case r == softHyphen && hyphenation:
			info[i] = layout.LineHyphenationBreak
		case mode == layout.LineWrapCharacter:
			info[i] = layout.LineAllowBreak
		}
	}

	info[n-1] = layout.LineMustBreak
	return info
}

// isParagraphSeparator reports whether the character ends a paragraph.
func isParagraphSeparator(r rune) bool {
	return r == '\n' || r == '\u2029'
}
