package postfx

import "station/scene/quarkgl"

// Bloom extracts bright pixels, blurs them through a mip pyramid and
// screen-blends the result over the source.
type Bloom struct {
	Threshold quarkgl.Scalar
	Smoothing quarkgl.Scalar
	Intensity quarkgl.Scalar
	// Radius is the weight of the coarser level when upsampling.
	Radius quarkgl.Scalar

	down []*quarkgl.FloatTarget
	up   []*quarkgl.FloatTarget
}

// NewBloom allocates a pyramid for a w×h frame with at most levels mips.
// Level 0 is half resolution.
func NewBloom(w, h, levels int) *Bloom {
	b := &Bloom{
		Threshold: BloomThreshold,
		Smoothing: BloomSmoothing,
		Intensity: BloomIntensity,
		Radius:    BloomRadius,
	}
	for i := 0; i < levels; i++ {
		w, h = (w+1)/2, (h+1)/2
		b.down = append(b.down, quarkgl.NewFloatTarget(w, h))
		b.up = append(b.up, quarkgl.NewFloatTarget(w, h))
		if w <= 1 && h <= 1 {
			break
		}
	}
	return b
}

// Levels returns the number of mips in the pyramid.
func (b *Bloom) Levels() int { return len(b.down) }

func (b *Bloom) Apply(dst, src *quarkgl.FloatTarget) {
	if len(b.down) == 0 {
		copy(dst.Pix, src.Pix)
		return
	}

	b.luminancePass(b.down[0], src)
	for i := 1; i < len(b.down); i++ {
		downsample(b.down[i], b.down[i-1])
	}

	last := len(b.down) - 1
	copy(b.up[last].Pix, b.down[last].Pix)
	for i := last - 1; i >= 0; i-- {
		upsample(b.up[i], b.down[i], b.up[i+1], b.Radius)
	}

	glow := b.up[0]
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			u, v := uv(x, y, src.W, src.H)
			s := src.Pix[y*src.W+x]
			g := glow.Sample(u, v).MulScalar(b.Intensity)
			dst.Pix[y*src.W+x] = quarkgl.Color{
				R: screen(s.R, g.R),
				G: screen(s.G, g.G),
				B: screen(s.B, g.B),
				A: s.A,
			}
		}
	}
}

// luminancePass writes the thresholded source into the half-resolution
// level, averaging 2×2 blocks.
func (b *Bloom) luminancePass(dst, src *quarkgl.FloatTarget) {
	lo := b.Threshold
	hi := b.Threshold + b.Smoothing
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			c := box(src, 2*x, 2*y)
			m := quarkgl.Smoothstep(lo, hi, c.Luminance())
			dst.Pix[y*dst.W+x] = c.MulScalar(m)
		}
	}
}

func downsample(dst, src *quarkgl.FloatTarget) {
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			dst.Pix[y*dst.W+x] = box(src, 2*x, 2*y)
		}
	}
}

func upsample(dst, fine, coarse *quarkgl.FloatTarget, radius quarkgl.Scalar) {
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			u, v := uv(x, y, dst.W, dst.H)
			f := fine.Pix[y*fine.W+x]
			dst.Pix[y*dst.W+x] = quarkgl.MixColor(f, coarse.Sample(u, v), radius)
		}
	}
}

// box averages the 2×2 block at x, y, clamping at the edges.
func box(src *quarkgl.FloatTarget, x, y int) quarkgl.Color {
	x1, y1 := x+1, y+1
	if x1 >= src.W {
		x1 = src.W - 1
	}
	if y1 >= src.H {
		y1 = src.H - 1
	}
	c := src.At(x, y).Add(src.At(x1, y)).Add(src.At(x, y1)).Add(src.At(x1, y1))
	return c.MulScalar(0.25)
}

func screen(a, b quarkgl.Scalar) quarkgl.Scalar {
	return a + b - a*b
}
