package quarkgl

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear-light RGBA color. Channels are unbounded above so
// the renderer can accumulate HDR values; A is coverage in 0..1.
type Color struct {
	R, G, B, A Scalar
}

// RGB returns an opaque linear color from 0..1 channel values.
func RGB(r, g, b Scalar) Color { return Color{R: r, G: g, B: b, A: 1} }

// Hex parses a CSS-style "#rrggbb" sRGB color into linear light.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("quarkgl: color %q: %w", s, err)
	}
	lr, lg, lb := c.LinearRgb()
	return Color{R: Scalar(lr), G: Scalar(lg), B: Scalar(lb), A: 1}, nil
}

// MustHex is Hex for compile-time constants; it panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// MulScalar scales the color channels, leaving alpha.
func (c Color) MulScalar(s Scalar) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Mul multiplies channel-wise, leaving alpha.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A}
}

// MixColor is GLSL mix over rgb; alpha is taken from a.
func MixColor(a, b Color, t Scalar) Color {
	return Color{R: Mix(a.R, b.R, t), G: Mix(a.G, b.G, t), B: Mix(a.B, b.B, t), A: a.A}
}

// Luminance returns Rec. 709 relative luminance.
func (c Color) Luminance() Scalar {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
