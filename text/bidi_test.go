package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/textlayout/layout"
)

func TestFirstStrongDirection(t *testing.T) {
	tests := []struct {
		text   string
		want   layout.Direction
		strong bool
	}{
		{"abc", layout.LeftToRight, true},
		{"12 אב abc", layout.RightToLeft, true},
		{"(abc אב)", layout.LeftToRight, true},
		{"مرحبا", layout.RightToLeft, true},
		{"123 !", layout.LeftToRight, false},
		{"", layout.LeftToRight, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			dir, strong := firstStrongDirection([]rune(tt.text))
			assert.Equal(t, tt.want, dir)
			assert.Equal(t, tt.strong, strong)
		})
	}
}

func TestHasRightToLeft(t *testing.T) {
	assert.False(t, hasRightToLeft([]rune("hello, world 123")))
	assert.True(t, hasRightToLeft([]rune("hello אב")))
	assert.True(t, hasRightToLeft([]rune("مرحبا")))
}

func TestBidiLevels(t *testing.T) {
	tests := []struct {
		name string
		text string
		dir  layout.Direction
		want []uint8
	}{
		{"ltr paragraph", "abc אב", layout.LeftToRight, []uint8{0, 0, 0, 0, 1, 1}},
		{"rtl paragraph", "אב abc", layout.RightToLeft, []uint8{1, 1, 1, 2, 2, 2}},
		{"numbers in rtl", "אב 12", layout.RightToLeft, []uint8{1, 1, 1, 2, 2}},
		{"rtl only", "אבג", layout.RightToLeft, []uint8{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bidiLevels([]rune(tt.text), tt.dir))
		})
	}
}

func TestDirectionRuns(t *testing.T) {
	ltr, rtl := layout.LeftToRight, layout.RightToLeft

	assert.Nil(t, directionRuns(0, nil))
	assert.Equal(t, []directionRun{{0, 3, ltr}}, directionRuns(3, nil))
	assert.Equal(t,
		[]directionRun{{0, 4, ltr}, {4, 6, rtl}},
		directionRuns(6, []uint8{0, 0, 0, 0, 1, 1}))
	assert.Equal(t,
		[]directionRun{{0, 3, rtl}, {3, 5, ltr}, {5, 6, rtl}},
		directionRuns(6, []uint8{1, 1, 1, 2, 2, 1}))
}
