package postfx

import (
	"github.com/chewxy/math32"

	"station/scene/quarkgl"
)

// Vignette darkens the frame toward the corners.
type Vignette struct {
	Offset   quarkgl.Scalar
	Darkness quarkgl.Scalar
}

func (vg Vignette) Apply(dst, src *quarkgl.FloatTarget) {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			u, v := uv(x, y, src.W, src.H)
			du, dv := u-0.5, v-0.5
			d := math32.Sqrt(du*du + dv*dv)
			k := quarkgl.Smoothstep(0.8, vg.Offset*0.799, d*(vg.Darkness+vg.Offset))
			i := y*src.W + x
			dst.Pix[i] = src.Pix[i].MulScalar(k)
		}
	}
}
