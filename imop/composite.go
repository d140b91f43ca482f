// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// The icon renderer is using it to place the opaque glyph strokes
// over the gradient backdrop, optionally routed through one of the
// separable blend modes.
package imop

import (
	"image"
	"image/color"

	"github.com/esimov/icongen/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the composition result.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// pixel is a straight-alpha pixel value with each channel normalized to [0, 1].
type pixel struct {
	r, g, b, a float64
}

// NewBitmap initializes a new Bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new Composite operation with
// source-over-destination as the active operator.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw applies the active composition operation over the source and
// backdrop images and stores the result into the bitmap. When a blend
// mode is provided the composed pixel is additionally blended with the
// backdrop pixel.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}

	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			s := norm(src.At(x, y))
			b := norm(dst.At(x, y))
			res := op.compose(s, b)

			if blend != nil {
				res = blend.apply(res, b)
			}

			// Rounding compensates the float conversion error,
			// keeping fully opaque channel values exact.
			bitmap.Img.Set(x, y, color.NRGBA{
				R: uint8(res.r*255 + 0.5),
				G: uint8(res.g*255 + 0.5),
				B: uint8(res.b*255 + 0.5),
				A: uint8(res.a*255 + 0.5),
			})
		}
	}
}

// compose applies the alpha composition formula of the active operator.
func (op *Composite) compose(s, b pixel) pixel {
	var fs, fb float64

	switch op.current {
	case Copy:
		fs, fb = 1, 0
	case SrcOver:
		fs, fb = 1, 1-s.a
	case DstOver:
		fs, fb = 1-b.a, 1
	case SrcIn:
		fs, fb = b.a, 0
	case DstIn:
		fs, fb = 0, s.a
	case SrcOut:
		fs, fb = 1-b.a, 0
	case DstOut:
		fs, fb = 0, 1-s.a
	case SrcAtop:
		fs, fb = b.a, 1-s.a
	case DstAtop:
		fs, fb = 1-b.a, s.a
	case Xor:
		fs, fb = 1-b.a, 1-s.a
	}

	res := pixel{
		r: s.a*s.r*fs + b.a*b.r*fb,
		g: s.a*s.g*fs + b.a*b.g*fb,
		b: s.a*s.b*fs + b.a*b.b*fb,
		a: s.a*fs + b.a*fb,
	}
	// Convert the premultiplied terms back to straight alpha.
	if res.a > 0 {
		res.r /= res.a
		res.g /= res.a
		res.b /= res.a
	}
	return res
}

// norm converts a color to straight-alpha normalized float channel values.
func norm(c color.Color) pixel {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return pixel{
		r: float64(nc.R) / 255,
		g: float64(nc.G) / 255,
		b: float64(nc.B) / 255,
		a: float64(nc.A) / 255,
	}
}
