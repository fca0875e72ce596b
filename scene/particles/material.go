package particles

import (
	"github.com/chewxy/math32"

	"station/scene/quarkgl"
)

const (
	wobbleAmplitude quarkgl.Scalar = 0.5

	baseSize  quarkgl.Scalar = 1.5
	seedSize  quarkgl.Scalar = 2.5
	sizeScale quarkgl.Scalar = 8
)

var (
	colorA = quarkgl.RGB(0.4, 0.8, 0.7)
	colorB = quarkgl.RGB(0.9, 0.95, 1.0)
)

// Material is the glow point program of a Field.
type Material struct {
	field *Field
}

// Wobble is the rendered position of a point at time t.
func Wobble(origin quarkgl.Vec3, seed, t quarkgl.Scalar) quarkgl.Vec3 {
	return quarkgl.V3(
		origin.X+math32.Sin(t*0.3+seed*6.28)*wobbleAmplitude,
		origin.Y+math32.Cos(t*0.2+seed*4.0)*wobbleAmplitude,
		origin.Z+math32.Sin(t*0.25+seed*5.0)*wobbleAmplitude,
	)
}

// Alpha is the pulsing brightness of a point at time t, in [0.3, 1].
func Alpha(seed, t quarkgl.Scalar) quarkgl.Scalar {
	p := math32.Sin(t*(0.5+seed*0.5)+seed*6.28)*0.5 + 0.5
	return 0.3 + 0.7*p*p
}

// PointSize is the sprite diameter in pixels for a point at view-space
// depth viewZ (negative in front of the camera).
func PointSize(seed, viewZ quarkgl.Scalar) quarkgl.Scalar {
	if viewZ >= 0 {
		return 0
	}
	return (baseSize + seed*seedSize) * (sizeScale / -viewZ)
}

func (m *Material) Count() int { return len(m.field.set) }

func (m *Material) Blend() quarkgl.BlendMode { return quarkgl.BlendAdditive }

func (m *Material) Vertex(i int, u *quarkgl.PointUniforms) quarkgl.PointVertex {
	p := m.field.set[i]
	t := m.field.clock.Seconds()
	view := quarkgl.Mat4MulPoint(u.ModelView, Wobble(p.Origin, p.Seed, t))
	return quarkgl.PointVertex{
		View:     view,
		Size:     PointSize(p.Seed, view.Z),
		Varyings: [4]quarkgl.Scalar{Alpha(p.Seed, t), p.Seed},
	}
}

func (m *Material) Fragment(v *quarkgl.PointVertex, coord quarkgl.Vec2) (quarkgl.Color, bool) {
	dx := coord.X - 0.5
	dy := coord.Y - 0.5
	d := math32.Sqrt(dx*dx + dy*dy)
	if d > 0.5 {
		return quarkgl.Color{}, false
	}
	glow := math32.Exp(-4 * d)
	alpha, seed := v.Varyings[0], v.Varyings[1]
	c := quarkgl.MixColor(colorA, colorB, seed).MulScalar(glow * 2)
	c.A = glow * alpha * 0.8
	return c, true
}
