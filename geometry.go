package icongen

import (
	"image"

	"github.com/esimov/icongen/utils"
)

// The glyph geometry expressed as fractions of the icon edge length,
// respectively of the inner bounding square.
const (
	paddingRatio   = 0.15
	lineStartRatio = 0.2
	lineEndRatio   = 0.8
	shortenRatio   = 0.2
)

// lineOffsets are the relative vertical positions of the guide lines
// inside the bounding square.
var lineOffsets = [3]float64{0.3, 0.5, 0.7}

// segment is a horizontal stroke spanning the [x0, x1] pixel range.
type segment struct {
	x0, x1, y int
}

// layout holds the glyph geometry of a single icon. All values are derived
// from the edge length, so icons are self-similar across sizes.
type layout struct {
	padding int
	stroke  int
	bounds  image.Rectangle
	lines   [3]segment
}

// newLayout derives the glyph geometry from the icon edge length:
// the bounding square is inset by 15% of the edge length and the guide
// lines are placed at 30/50/70% of its inner height, spanning from 20%
// to 80% of its inner width. The right endpoint of the third line is
// pulled back by a further 20%, keeping it shorter than the other two.
func newLayout(size int) layout {
	padding := int(float64(size) * paddingRatio)
	inner := size - 2*padding

	l := layout{
		padding: padding,
		stroke:  utils.Max(2, size/32),
		bounds:  image.Rect(padding, padding, size-padding+1, size-padding+1),
	}

	x0 := padding + int(float64(inner)*lineStartRatio)
	x1 := padding + int(float64(inner)*lineEndRatio)

	for i, offset := range lineOffsets {
		l.lines[i] = segment{
			x0: x0,
			x1: x1,
			y:  padding + int(float64(inner)*offset),
		}
	}
	l.lines[2].x1 -= int(float64(inner) * shortenRatio)

	return l
}
