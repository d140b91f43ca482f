package icongen

import (
	"image"
	"image/color"
)

// gradient paints the vertical gradient backdrop. Each row is a full-width
// opaque band whose channels are linearly interpolated between the start
// and the end color, truncated to integer values.
func (r *Renderer) gradient(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size)
		col := color.NRGBA{
			R: lerp(r.StartColor.R, r.EndColor.R, ratio),
			G: lerp(r.StartColor.G, r.EndColor.G, ratio),
			B: lerp(r.StartColor.B, r.EndColor.B, ratio),
			A: 0xff,
		}
		fillRect(img, image.Rect(0, y, size, y+1), col)
	}
	return img
}

// lerp interpolates between two channel values.
func lerp(a, b uint8, ratio float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*ratio)
}
