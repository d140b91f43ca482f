package icongen

import (
	"image"
	"image/color"
	"image/draw"
)

// fillRect fills the rectangle area with a solid color.
func fillRect(img *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	draw.Draw(img, rect, &image.Uniform{c}, image.Point{}, draw.Src)
}

// strokeRect draws an unfilled rectangle outline of the given stroke width.
// The border grows inward from the rectangle edges.
func strokeRect(img *image.NRGBA, rect image.Rectangle, width int, c color.NRGBA) {
	fillRect(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width), c)
	fillRect(img, image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y), c)
	fillRect(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y), c)
	fillRect(img, image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}

// strokeHLine draws a horizontal line segment of the given stroke width,
// centered on the segment's y coordinate.
func strokeHLine(img *image.NRGBA, seg segment, width int, c color.NRGBA) {
	y0 := seg.y - width/2
	fillRect(img, image.Rect(seg.x0, y0, seg.x1+1, y0+width), c)
}
