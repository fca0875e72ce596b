package postfx

import (
	"github.com/chewxy/math32"

	"station/scene/quarkgl"
)

// ChromaticAberration shifts red outward and blue inward. The shift grows
// with distance from the centre past Falloff.
type ChromaticAberration struct {
	Offset  quarkgl.Vec2
	Falloff quarkgl.Scalar
}

func (ca ChromaticAberration) Apply(dst, src *quarkgl.FloatTarget) {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			u, v := uv(x, y, src.W, src.H)
			du, dv := u-0.5, v-0.5
			d := math32.Max(2*math32.Sqrt(du*du+dv*dv)-ca.Falloff, 0)
			ou, ov := ca.Offset.X*d, ca.Offset.Y*d

			i := y*src.W + x
			out := src.Pix[i]
			if ou != 0 || ov != 0 {
				out.R = src.Sample(u+ou, v+ov).R
				out.B = src.Sample(u-ou, v-ov).B
			}
			dst.Pix[i] = out
		}
	}
}
