package particles

import (
	"math/rand"

	"station/scene/quarkgl"
)

// Field owns the particle set, its clock and the point program drawing it.
type Field struct {
	shell Shell
	rng   *rand.Rand

	set   []Particle
	clock Clock

	material Material
}

// NewField generates n points. A nil rng uses a time-independent source
// seeded with 1.
func NewField(n int, shell Shell, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	f := &Field{shell: shell, rng: rng}
	f.material.field = f
	f.set = Generate(n, shell, rng)
	return f
}

// SetCount regenerates the set when n differs from the current count and
// reports whether it did.
func (f *Field) SetCount(n int) bool {
	if n < 0 {
		n = 0
	}
	if n == len(f.set) {
		return false
	}
	f.set = Generate(n, f.shell, f.rng)
	return true
}

// Advance steps the clock by one frame.
func (f *Field) Advance(dt quarkgl.Scalar) { f.clock.Advance(dt) }

func (f *Field) Time() quarkgl.Scalar { return f.clock.Seconds() }

func (f *Field) Count() int { return len(f.set) }

// Particles returns the static records. Callers must not modify them.
func (f *Field) Particles() []Particle { return f.set }

// Shader returns the point program for registration with a scene.
func (f *Field) Shader() quarkgl.PointShader { return &f.material }
