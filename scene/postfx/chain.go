package postfx

import "station/scene/quarkgl"

// Chain runs tone mapping, then its passes in order, then the backdrop
// when active, ping-ponging between two preallocated buffers.
type Chain struct {
	ToneMap  ToneMap
	Passes   []Pass
	Backdrop *Backdrop

	a, b *quarkgl.FloatTarget
}

// NewChain returns the default chain for a w×h frame: bloom, chromatic
// aberration, vignette.
func NewChain(w, h int) *Chain {
	return &Chain{
		ToneMap: ToneMap{Exposure: Exposure},
		Passes: []Pass{
			NewBloom(w, h, BloomLevels),
			ChromaticAberration{Offset: quarkgl.V2(ChromaticOffset, ChromaticOffset), Falloff: ChromaticFalloff},
			Vignette{Offset: VignetteOffset, Darkness: VignetteDarkness},
		},
		Backdrop: NewBackdrop(w, h),
		a:        quarkgl.NewFloatTarget(w, h),
		b:        quarkgl.NewFloatTarget(w, h),
	}
}

// Apply processes src and returns the buffer holding the result. The
// returned buffer is owned by the chain and valid until the next call.
// src must have the size the chain was built for; anything else panics.
func (c *Chain) Apply(src *quarkgl.FloatTarget) *quarkgl.FloatTarget {
	mustMatch("chain", c.a.W, c.a.H, src)
	c.ToneMap.Apply(c.a, src)
	cur, next := c.a, c.b
	for _, p := range c.Passes {
		p.Apply(next, cur)
		cur, next = next, cur
	}
	if c.Backdrop.Active() {
		c.Backdrop.Apply(next, cur)
		cur = next
	}
	return cur
}
