package postfx

import (
	"github.com/lucasb-eyer/go-colorful"

	"station/scene/quarkgl"
)

const lutSize = 4096

// Encoder converts linear [0, 1] colors to 8-bit sRGB through a lookup table.
type Encoder struct {
	lut [lutSize]uint8
}

// NewEncoder builds the sRGB transfer table.
func NewEncoder() *Encoder {
	e := &Encoder{}
	for i := range e.lut {
		v := float64(i) / (lutSize - 1)
		c := colorful.LinearRgb(v, v, v).Clamped()
		r, _, _ := c.RGB255()
		e.lut[i] = r
	}
	return e
}

// Channel encodes one linear channel.
func (e *Encoder) Channel(v quarkgl.Scalar) uint8 {
	i := int(quarkgl.Clamp01(v)*(lutSize-1) + 0.5)
	return e.lut[i]
}

// Encode writes src as RGBA8 rows of strideBytes into dst. Alpha is opaque.
func (e *Encoder) Encode(dst []byte, strideBytes int, src *quarkgl.FloatTarget) {
	for y := 0; y < src.H; y++ {
		row := y * strideBytes
		if row+src.W*4 > len(dst) {
			return
		}
		for x := 0; x < src.W; x++ {
			c := src.Pix[y*src.W+x]
			o := row + x*4
			dst[o+0] = e.Channel(c.R)
			dst[o+1] = e.Channel(c.G)
			dst[o+2] = e.Channel(c.B)
			dst[o+3] = 0xFF
		}
	}
}
