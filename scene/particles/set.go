// Package particles is the decorative point field around the station.
//
// The field stores only static attributes: an origin on a spherical shell and
// a phase seed per point. Motion and brightness are computed by the point
// program from those attributes and a single scalar clock.
package particles

import (
	"math/rand"

	"github.com/chewxy/math32"

	"station/scene/quarkgl"
)

// DefaultCount is the number of points in the field.
const DefaultCount = 300

// Shell bounds the radius of point origins.
type Shell struct {
	Inner, Outer quarkgl.Scalar
}

// DefaultShell is the [8, 33] shell around the station.
var DefaultShell = Shell{Inner: 8, Outer: 33}

// Particle is the static record of one point.
type Particle struct {
	Origin quarkgl.Vec3
	// Seed is in [0, 1).
	Seed quarkgl.Scalar
}

// Generate samples n points uniformly over the shell directions.
//
// The polar angle comes from acos(2u-1) so points do not bunch up at the poles.
func Generate(n int, shell Shell, rng *rand.Rand) []Particle {
	if n <= 0 {
		return nil
	}
	out := make([]Particle, n)
	span := shell.Outer - shell.Inner
	for i := range out {
		r := shell.Inner + rng.Float32()*span
		theta := 2 * quarkgl.Pi * rng.Float32()
		phi := math32.Acos(2*rng.Float32() - 1)
		sp := math32.Sin(phi)
		out[i] = Particle{
			Origin: quarkgl.V3(
				r*sp*math32.Cos(theta),
				r*sp*math32.Sin(theta),
				r*math32.Cos(phi),
			),
			Seed: rng.Float32(),
		}
	}
	return out
}
