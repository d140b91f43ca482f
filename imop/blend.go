package imop

import (
	"github.com/esimov/icongen/utils"
)

const (
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) {
	bModes := []string{Darken, Lighten, Multiply, Screen, Overlay}

	if utils.Contains(bModes, opType) {
		o.OpType = opType
	}
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// apply mixes the composed pixel with the backdrop pixel
// according to the active blend mode.
func (o *Blend) apply(s, b pixel) pixel {
	switch o.OpType {
	case Darken:
		return pixel{
			r: utils.Min(s.r, b.r),
			g: utils.Min(s.g, b.g),
			b: utils.Min(s.b, b.b),
			a: s.a,
		}
	case Lighten:
		return pixel{
			r: utils.Max(s.r, b.r),
			g: utils.Max(s.g, b.g),
			b: utils.Max(s.b, b.b),
			a: s.a,
		}
	case Multiply:
		return pixel{
			r: s.r * b.r,
			g: s.g * b.g,
			b: s.b * b.b,
			a: s.a,
		}
	case Screen:
		return pixel{
			r: 1 - (1-s.r)*(1-b.r),
			g: 1 - (1-s.g)*(1-b.g),
			b: 1 - (1-s.b)*(1-b.b),
			a: s.a,
		}
	case Overlay:
		return pixel{
			r: overlay(s.r, b.r),
			g: overlay(s.g, b.g),
			b: overlay(s.b, b.b),
			a: s.a,
		}
	}
	return s
}

func overlay(s, b float64) float64 {
	if s <= 0.5 {
		return 2 * s * b
	}
	return 1 - 2*(1-s)*(1-b)
}
