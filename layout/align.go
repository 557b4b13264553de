package layout

import "math"

// Align sets the alignment offset of the lines starting inside the
// character range [startIndex, startIndex+numberOfCharacters] and returns
// the minimum offset. Lines before the range are left untouched.
//
// With matchLayoutDirection set, BEGIN and END follow the system layout
// direction instead of the direction of every line.
func (e *Engine) Align(size Size, startIndex, numberOfCharacters int, alignment HorizontalAlignment,
	lines []LineRun, layoutDirection Direction, matchLayoutDirection bool,
) float64 {
	lastCharacterPlusOne := startIndex + numberOfCharacters
	offset := math.MaxFloat64
	for i := range lines {
		line := &lines[i]
		if line.CharacterRun.CharacterIndex < startIndex {
			continue
		}
		if line.CharacterRun.CharacterIndex > lastCharacterPlusOne {
			break
		}
		CalculateHorizontalAlignment(size.Width, alignment, line, layoutDirection, matchLayoutDirection)
		offset = math.Min(offset, line.AlignmentOffset)
	}
	if offset == math.MaxFloat64 {
		return 0
	}
	return offset
}

// CalculateHorizontalAlignment sets the alignment offset of the line.
//
// BEGIN is the visual left of the box and END its visual right. With
// matchLayoutDirection set they follow the system layout direction instead,
// so BEGIN is on the right of a right-to-left layout.
//
// The white spaces at the end of a right-to-left line are at its visual
// beginning; they are left outside the box when the line is aligned.
// Centered offsets are floored to whole pixels.
func CalculateHorizontalAlignment(boxWidth float64, alignment HorizontalAlignment, line *LineRun,
	layoutDirection Direction, matchLayoutDirection bool,
) {
	line.AlignmentOffset = 0
	var extraLength float64
	if line.Direction == RightToLeft {
		extraLength = line.ExtraLength
	}
	mirrored := matchLayoutDirection && layoutDirection == RightToLeft

	switch alignment {
	case AlignBegin, AlignEnd:
		if (alignment == AlignEnd) != mirrored {
			line.AlignmentOffset = boxWidth - line.Width - extraLength
		} else {
			line.AlignmentOffset = -extraLength
		}

	case AlignCenter:
		line.AlignmentOffset = math.Floor(0.5*(boxWidth-line.Width) - extraLength)
	}
}
