package postfx

import "station/scene/quarkgl"

// ToneMap maps linear HDR radiance into [0, 1] with the fitted ACES filmic
// curve.
type ToneMap struct {
	Exposure quarkgl.Scalar
}

func (tm ToneMap) Apply(dst, src *quarkgl.FloatTarget) {
	e := tm.Exposure
	if e == 0 {
		e = 1
	}
	for i, c := range src.Pix {
		out := ACESFilmic(c.MulScalar(e))
		out.A = c.A
		dst.Pix[i] = out
	}
}

// ACESFilmic is the sRGB->ACEScg->RRT+ODT->sRGB fit, including the 1/0.6
// exposure bias of the reference curve.
func ACESFilmic(c quarkgl.Color) quarkgl.Color {
	r, g, b := c.R/0.6, c.G/0.6, c.B/0.6

	ir := 0.59719*r + 0.35458*g + 0.04823*b
	ig := 0.07600*r + 0.90834*g + 0.01566*b
	ib := 0.02840*r + 0.13383*g + 0.83777*b

	ir, ig, ib = rrtAndODTFit(ir), rrtAndODTFit(ig), rrtAndODTFit(ib)

	return quarkgl.Color{
		R: quarkgl.Clamp01(1.60475*ir - 0.53108*ig - 0.07367*ib),
		G: quarkgl.Clamp01(-0.10208*ir + 1.10813*ig - 0.00605*ib),
		B: quarkgl.Clamp01(-0.00327*ir - 0.07276*ig + 1.07602*ib),
		A: c.A,
	}
}

func rrtAndODTFit(v quarkgl.Scalar) quarkgl.Scalar {
	a := v*(v+0.0245786) - 0.000090537
	b := v*(0.983729*v+0.4329510) + 0.238081
	return a / b
}
