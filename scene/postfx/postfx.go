// Package postfx holds the screen-space passes applied to the HDR frame:
// tone mapping, then bloom, chromatic aberration and vignette, then the
// lost-focus backdrop, then sRGB encoding into an 8-bit surface.
package postfx

import (
	"fmt"

	"station/scene/quarkgl"
)

// Pass reads src and writes dst. dst and src have the same size and are
// never the same buffer.
type Pass interface {
	Apply(dst, src *quarkgl.FloatTarget)
}

// Default effect parameters.
const (
	Exposure quarkgl.Scalar = 1.4

	BloomThreshold quarkgl.Scalar = 0.4
	BloomSmoothing quarkgl.Scalar = 0.9
	BloomIntensity quarkgl.Scalar = 0.8
	BloomRadius    quarkgl.Scalar = 0.85
	BloomLevels                   = 6

	ChromaticOffset  quarkgl.Scalar = 0.0008
	ChromaticFalloff quarkgl.Scalar = 0.2

	VignetteOffset   quarkgl.Scalar = 0.3
	VignetteDarkness quarkgl.Scalar = 0.7

	// Lost-focus overlay: about 12px of blur on a 1080-line frame, 30% black,
	// one-second transition.
	BackdropBlur quarkgl.Scalar = 0.011
	BackdropDim  quarkgl.Scalar = 0.3
	BackdropFade quarkgl.Scalar = 1
)

// uv returns the normalised centre of pixel x, y.
func uv(x, y, w, h int) (u, v quarkgl.Scalar) {
	return (quarkgl.Scalar(x) + 0.5) / quarkgl.Scalar(w), (quarkgl.Scalar(y) + 0.5) / quarkgl.Scalar(h)
}

func mustMatch(what string, w, h int, t *quarkgl.FloatTarget) {
	if t.W != w || t.H != h {
		panic(fmt.Sprintf("postfx: %s is %dx%d, frame is %dx%d", what, w, h, t.W, t.H))
	}
}
