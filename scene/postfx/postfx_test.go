package postfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station/scene/quarkgl"
)

func filled(w, h int, c quarkgl.Color) *quarkgl.FloatTarget {
	t := quarkgl.NewFloatTarget(w, h)
	t.Clear(c)
	return t
}

func TestACESFilmic(t *testing.T) {
	black := ACESFilmic(quarkgl.RGB(0, 0, 0))
	assert.InDelta(t, 0, black.R, 1e-3)

	prev := quarkgl.Scalar(-1)
	for _, v := range []quarkgl.Scalar{0.01, 0.1, 0.5, 1, 2} {
		c := ACESFilmic(quarkgl.RGB(v, v, v))
		require.Greater(t, c.G, prev, "curve must be monotone at %v", v)
		require.LessOrEqual(t, c.G, quarkgl.Scalar(1))
		prev = c.G
	}
	assert.InDelta(t, 1, ACESFilmic(quarkgl.RGB(1000, 1000, 1000)).R, 0.02)
}

func TestToneMapKeepsAlpha(t *testing.T) {
	src := filled(2, 2, quarkgl.Color{R: 2, G: 2, B: 2, A: 0.5})
	dst := quarkgl.NewFloatTarget(2, 2)
	ToneMap{Exposure: Exposure}.Apply(dst, src)
	assert.Equal(t, quarkgl.Scalar(0.5), dst.Pix[0].A)
	assert.LessOrEqual(t, dst.Pix[0].R, quarkgl.Scalar(1))
}

func TestBloomIgnoresDarkFrames(t *testing.T) {
	src := filled(32, 16, quarkgl.RGB(0.2, 0.2, 0.2))
	dst := quarkgl.NewFloatTarget(32, 16)
	NewBloom(32, 16, BloomLevels).Apply(dst, src)
	for i := range dst.Pix {
		require.InDelta(t, 0.2, dst.Pix[i].R, 1e-5)
	}
}

func TestBloomSpreadsBrightPixels(t *testing.T) {
	src := quarkgl.NewFloatTarget(32, 32)
	src.Clear(quarkgl.Color{A: 1})
	for y := 14; y < 18; y++ {
		for x := 14; x < 18; x++ {
			src.SetPixel(x, y, quarkgl.RGB(1, 1, 1))
		}
	}
	dst := quarkgl.NewFloatTarget(32, 32)
	b := NewBloom(32, 32, BloomLevels)
	assert.Equal(t, 5, b.Levels())
	b.Apply(dst, src)

	assert.Greater(t, dst.At(10, 16).R, quarkgl.Scalar(0), "glow must leak outside the bright block")
	assert.InDelta(t, 1, dst.At(16, 16).R, 1e-5)
	assert.Greater(t, dst.At(12, 16).R, dst.At(4, 16).R)
}

func TestChromaticAberrationCentreUntouched(t *testing.T) {
	src := quarkgl.NewFloatTarget(64, 64)
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			src.SetPixel(x, y, quarkgl.RGB(quarkgl.Scalar(x)/64, 0.5, quarkgl.Scalar(y)/64))
		}
	}
	dst := quarkgl.NewFloatTarget(64, 64)
	ca := ChromaticAberration{Offset: quarkgl.V2(0.05, 0.05), Falloff: ChromaticFalloff}
	ca.Apply(dst, src)

	assert.Equal(t, src.At(32, 32), dst.At(32, 32))
	corner := dst.At(60, 60)
	assert.NotEqual(t, src.At(60, 60).R, corner.R)
	assert.Equal(t, src.At(60, 60).G, corner.G)
}

func TestVignetteDarkensCorners(t *testing.T) {
	src := filled(64, 36, quarkgl.RGB(1, 1, 1))
	dst := quarkgl.NewFloatTarget(64, 36)
	Vignette{Offset: VignetteOffset, Darkness: VignetteDarkness}.Apply(dst, src)

	centre := dst.At(32, 18).R
	corner := dst.At(0, 0).R
	assert.InDelta(t, 1, centre, 1e-3)
	assert.Less(t, corner, centre)
}

func TestChainAndEncode(t *testing.T) {
	src := filled(16, 8, quarkgl.Color{A: 1})
	c := NewChain(16, 8)
	out := c.Apply(src)
	require.NotSame(t, src, out)

	buf := make([]byte, 16*8*4)
	NewEncoder().Encode(buf, 16*4, out)
	for i := 0; i < len(buf); i += 4 {
		require.Equal(t, []byte{0, 0, 0, 0xFF}, buf[i:i+4])
	}

	assert.Panics(t, func() { NewChain(4, 4).Apply(src) }, "frame size must match the chain")
}

func TestBackdropFade(t *testing.T) {
	b := NewBackdrop(4, 4)
	assert.False(t, b.Active())

	for i := 0; i < 5; i++ {
		b.Fade(true, 0.1)
	}
	assert.InDelta(t, 0.5, b.Amount, 1e-5)
	for i := 0; i < 20; i++ {
		b.Fade(true, 0.1)
	}
	assert.Equal(t, quarkgl.Scalar(1), b.Amount)

	b.Fade(false, 0)
	assert.Equal(t, quarkgl.Scalar(1), b.Amount, "zero dt holds")
	for i := 0; i < 20; i++ {
		b.Fade(false, 0.1)
	}
	assert.False(t, b.Active())
}

func TestBackdropBlursAndDims(t *testing.T) {
	src := filled(32, 32, quarkgl.Color{A: 1})
	src.SetPixel(16, 16, quarkgl.RGB(1, 1, 1))
	dst := quarkgl.NewFloatTarget(32, 32)

	b := NewBackdrop(32, 32)
	b.Amount = 1
	b.Blur = 2.0 / 32
	b.Apply(dst, src)

	want := quarkgl.Scalar(0.7) / 25
	assert.InDelta(t, want, dst.At(16, 16).R, 1e-5)
	assert.InDelta(t, want, dst.At(18, 14).R, 1e-5)
	assert.InDelta(t, 0, dst.At(19, 16).R, 1e-6)

	src.Clear(quarkgl.RGB(1, 1, 1))
	b.Blur = 0
	b.Apply(dst, src)
	assert.InDelta(t, 0.7, dst.At(0, 0).G, 1e-5, "dims without blur")
}

func TestChainAppliesBackdropOnlyWhenActive(t *testing.T) {
	src := filled(16, 8, quarkgl.RGB(0.5, 0.5, 0.5))
	c := NewChain(16, 8)
	plain := c.Apply(src).At(8, 4)

	c.Backdrop.Amount = 1
	dimmed := c.Apply(src).At(8, 4)
	assert.InDelta(t, plain.R*0.7, dimmed.R, 1e-3)
}

func TestEncoderTransfer(t *testing.T) {
	e := NewEncoder()
	assert.Equal(t, uint8(0), e.Channel(-1))
	assert.Equal(t, uint8(255), e.Channel(1))
	assert.Equal(t, uint8(255), e.Channel(7))
	// Linear 0.214 is about sRGB 0.5.
	assert.InDelta(t, 128, int(e.Channel(0.2140)), 1)
}
