package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	op.Set(DstOver)
	assert.Equal(DstOver, op.Get())

	// Unsupported operations are ignored.
	op.Set("unsupported_composite_operation")
	assert.Equal(DstOver, op.Get())
}

func TestComp_Ops(t *testing.T) {
	assert := assert.New(t)
	op := InitOp()

	transparent := color.NRGBA{R: 0, G: 0, B: 0, A: 0}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	bmp := NewBitmap(rect)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	// SrcOver is the default operation: the source wins wherever it is
	// opaque and the backdrop shows through everywhere else.
	op.Draw(bmp, source, backdrop, nil)

	assert.EqualValues(magenta, bmp.Img.NRGBAAt(9, 0))
	assert.EqualValues(cyan, bmp.Img.NRGBAAt(0, 9))
	assert.EqualValues(cyan, bmp.Img.NRGBAAt(5, 5))

	// Copy retains the source only.
	op.Set(Copy)
	op.Draw(bmp, source, backdrop, nil)

	assert.EqualValues(transparent, bmp.Img.NRGBAAt(9, 0))
	assert.EqualValues(cyan, bmp.Img.NRGBAAt(0, 9))
	assert.EqualValues(cyan, bmp.Img.NRGBAAt(5, 5))

	// DstOver lets the backdrop win over the overlapping region.
	op.Set(DstOver)
	op.Draw(bmp, source, backdrop, nil)

	assert.EqualValues(magenta, bmp.Img.NRGBAAt(9, 0))
	assert.EqualValues(cyan, bmp.Img.NRGBAAt(0, 9))
	assert.EqualValues(magenta, bmp.Img.NRGBAAt(5, 5))

	// Xor drops the overlapping region entirely.
	op.Set(Xor)
	op.Draw(bmp, source, backdrop, nil)

	assert.EqualValues(magenta, bmp.Img.NRGBAAt(9, 0))
	assert.EqualValues(cyan, bmp.Img.NRGBAAt(0, 9))
	assert.EqualValues(transparent, bmp.Img.NRGBAAt(5, 5))

	// SrcIn keeps the source clipped to the backdrop coverage.
	op.Set(SrcIn)
	op.Draw(bmp, source, backdrop, nil)

	assert.EqualValues(transparent, bmp.Img.NRGBAAt(9, 0))
	assert.EqualValues(transparent, bmp.Img.NRGBAAt(0, 9))
	assert.EqualValues(cyan, bmp.Img.NRGBAAt(5, 5))
}

func TestComp_Blend(t *testing.T) {
	assert := assert.New(t)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	gray := color.NRGBA{R: 100, G: 100, B: 100, A: 255}

	rect := image.Rect(0, 0, 4, 4)
	bmp := NewBitmap(rect)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	draw.Draw(source, rect, &image.Uniform{white}, image.Point{}, draw.Src)
	draw.Draw(backdrop, rect, &image.Uniform{gray}, image.Point{}, draw.Src)

	op := InitOp()
	blend := NewBlend()

	// Multiplying with white yields the backdrop.
	blend.Set(Multiply)
	op.Draw(bmp, source, backdrop, blend)
	assert.EqualValues(gray, bmp.Img.NRGBAAt(2, 2))

	// Screening with white saturates to white.
	blend.Set(Screen)
	op.Draw(bmp, source, backdrop, blend)
	assert.EqualValues(white, bmp.Img.NRGBAAt(2, 2))

	// Darken picks the smaller channel values.
	blend.Set(Darken)
	op.Draw(bmp, source, backdrop, blend)
	assert.EqualValues(gray, bmp.Img.NRGBAAt(2, 2))

	// Lighten picks the bigger ones.
	blend.Set(Lighten)
	op.Draw(bmp, source, backdrop, blend)
	assert.EqualValues(white, bmp.Img.NRGBAAt(2, 2))

	// Unsupported blend modes are ignored.
	blend.Set("unsupported_blend_mode")
	assert.Equal(Lighten, blend.Get())
}
