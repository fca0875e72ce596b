package postfx

import (
	"github.com/chewxy/math32"

	"station/scene/quarkgl"
)

// Backdrop blurs and dims the finished frame behind an overlay. Amount
// runs from 0 (off) to 1 (full blur, Dim darkening).
type Backdrop struct {
	Amount quarkgl.Scalar
	// Blur is the full blur radius as a fraction of frame height.
	Blur quarkgl.Scalar
	Dim  quarkgl.Scalar
	// FadeTime is the seconds taken to go from off to full.
	FadeTime quarkgl.Scalar

	tmp *quarkgl.FloatTarget
}

// NewBackdrop returns an inactive backdrop for a w×h frame.
func NewBackdrop(w, h int) *Backdrop {
	return &Backdrop{
		Blur:     BackdropBlur,
		Dim:      BackdropDim,
		FadeTime: BackdropFade,
		tmp:      quarkgl.NewFloatTarget(w, h),
	}
}

// Active reports whether Apply changes the frame.
func (b *Backdrop) Active() bool { return b != nil && b.Amount > 0 }

// Fade moves Amount toward 1 when on and toward 0 otherwise, covering the
// whole range in FadeTime seconds.
func (b *Backdrop) Fade(on bool, dt quarkgl.Scalar) {
	if b == nil || dt <= 0 {
		return
	}
	step := quarkgl.Scalar(1)
	if b.FadeTime > 0 {
		step = dt / b.FadeTime
	}
	if on {
		b.Amount = math32.Min(b.Amount+step, 1)
	} else {
		b.Amount = math32.Max(b.Amount-step, 0)
	}
}

func (b *Backdrop) Apply(dst, src *quarkgl.FloatTarget) {
	r := int(b.Amount*b.Blur*quarkgl.Scalar(src.H) + 0.5)
	k := 1 - b.Dim*b.Amount
	if r < 1 {
		for i, c := range src.Pix {
			dst.Pix[i] = c.MulScalar(k)
		}
		return
	}
	boxBlur(b.tmp, src, r, 1, 0)
	boxBlur(dst, b.tmp, r, 0, 1)
	for i := range dst.Pix {
		dst.Pix[i] = dst.Pix[i].MulScalar(k)
	}
}

// boxBlur averages 2r+1 taps along (dx, dy), clamping at the edges.
func boxBlur(dst, src *quarkgl.FloatTarget, r, dx, dy int) {
	inv := 1 / quarkgl.Scalar(2*r+1)
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			var sum quarkgl.Color
			for t := -r; t <= r; t++ {
				sum = sum.Add(src.At(clampInt(x+t*dx, src.W), clampInt(y+t*dy, src.H)))
			}
			dst.Pix[y*src.W+x] = sum.MulScalar(inv)
		}
	}
}

func clampInt(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
