package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/textlayout/layout"
)

func TestLineBreakInfo(t *testing.T) {
	const (
		no   = layout.LineNoBreak
		may  = layout.LineAllowBreak
		must = layout.LineMustBreak
		hyph = layout.LineHyphenationBreak
	)

	tests := []struct {
		name string
		text string
		mode layout.LineWrapMode
		want []layout.LineBreakInfo
	}{
		{"words", "ab cd", layout.LineWrapWord, []layout.LineBreakInfo{no, no, may, no, must}},
		{"new line", "ab\ncd", layout.LineWrapWord, []layout.LineBreakInfo{no, no, must, no, must}},
		{"paragraph separator", "a\u2029b", layout.LineWrapWord, []layout.LineBreakInfo{no, must, must}},
		{"characters", "abc", layout.LineWrapCharacter, []layout.LineBreakInfo{may, may, must}},
		{"soft hyphen in word mode", "ab\u00ADcd", layout.LineWrapWord, []layout.LineBreakInfo{no, no, may, no, must}},
		{"soft hyphen", "ab\u00ADcd", layout.LineWrapHyphenation, []layout.LineBreakInfo{no, no, hyph, no, must}},
		{"soft hyphen mixed", "ab\u00ADcd e", layout.LineWrapMixed, []layout.LineBreakInfo{no, no, hyph, no, no, may, must}},
		{"single character", "a", layout.LineWrapWord, []layout.LineBreakInfo{must}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineBreakInfo([]rune(tt.text), tt.mode))
		})
	}

	assert.Nil(t, LineBreakInfo(nil, layout.LineWrapWord))
}

func TestParagraphs(t *testing.T) {
	run := func(start, count int) layout.CharacterRun {
		return layout.CharacterRun{CharacterIndex: start, NumberOfCharacters: count}
	}

	assert.Nil(t, Paragraphs(nil))
	assert.Equal(t, []layout.CharacterRun{run(0, 3)}, Paragraphs([]rune("abc")))
	assert.Equal(t, []layout.CharacterRun{run(0, 3), run(3, 2)}, Paragraphs([]rune("ab\ncd")))
	assert.Equal(t, []layout.CharacterRun{run(0, 3)}, Paragraphs([]rune("ab\n")))
	assert.Equal(t, []layout.CharacterRun{run(0, 1), run(1, 1), run(2, 1)}, Paragraphs([]rune("\n\u2029a")))
}

func TestParagraphBounds(t *testing.T) {
	text := []rune("ab\ncd\nef")
	tests := []struct {
		index, start, end int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{3, 3, 6},
		{5, 3, 6},
		{7, 6, 8},
		{8, 6, 8},
		{-1, 0, 3},
	}
	for _, tt := range tests {
		start, end := ParagraphBounds(text, tt.index)
		assert.Equal(t, tt.start, start, "start of %d", tt.index)
		assert.Equal(t, tt.end, end, "end of %d", tt.index)
	}

	start, end := ParagraphBounds([]rune("ab\n"), 3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end, "empty paragraph after a final separator")
}
