package icongen

import (
	"image"
	"image/color"

	"github.com/esimov/icongen/imop"
)

// Default colors of the document glyph icon.
var (
	DefaultStartColor  = color.NRGBA{R: 139, G: 92, B: 246, A: 255}
	DefaultEndColor    = color.NRGBA{R: 59, G: 130, B: 246, A: 255}
	DefaultStrokeColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer options
type Renderer struct {
	StartColor  color.NRGBA
	EndColor    color.NRGBA
	StrokeColor color.NRGBA
	BlendMode   string
}

// NewRenderer initializes a new Renderer with the default color scheme.
func NewRenderer() *Renderer {
	return &Renderer{
		StartColor:  DefaultStartColor,
		EndColor:    DefaultEndColor,
		StrokeColor: DefaultStrokeColor,
	}
}

// Render draws the document glyph icon at the requested edge length and
// returns the resulting canvas. The glyph strokes are drawn on a fully
// transparent layer which afterwards is composited over the gradient
// backdrop with the source-over operator. The output depends only on the
// edge length and the renderer options.
func (r *Renderer) Render(size int) *image.NRGBA {
	backdrop := r.gradient(size)
	glyph := r.glyph(size)

	var blend *imop.Blend
	if len(r.BlendMode) > 0 {
		blend = imop.NewBlend()
		blend.Set(r.BlendMode)
	}

	op := imop.InitOp()
	bmp := imop.NewBitmap(image.Rect(0, 0, size, size))
	op.Draw(bmp, glyph, backdrop, blend)

	return bmp.Img
}

// glyph draws the white document strokes on a transparent layer:
// a rectangle outline and three horizontal guide lines, the last
// one deliberately shorter, mimicking the final line of a text block.
func (r *Renderer) glyph(size int) *image.NRGBA {
	l := newLayout(size)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	strokeRect(img, l.bounds, l.stroke, r.StrokeColor)
	for _, seg := range l.lines {
		strokeHLine(img, seg, l.stroke, r.StrokeColor)
	}
	return img
}
