package quarkgl

import "github.com/chewxy/math32"

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Color     Color
	Intensity Scalar
}

// DirLight is a directional light located at Pos and pointing at the origin,
// with no attenuation, like the Sun.
type DirLight struct {
	Pos       Vec3
	Color     Color
	Intensity Scalar
}

// PointLight is an omnidirectional light with inverse-square falloff.
// Range, when non-zero, smoothly cuts the light off at that distance.
type PointLight struct {
	Pos       Vec3
	Color     Color
	Intensity Scalar
	Range     Scalar
}

// LightRig is the set of lights applied to every mesh in a scene.
//
// Environment is a uniform image-based fill approximated as extra ambient.
type LightRig struct {
	Ambient     AmbientLight
	Environment AmbientLight
	Dir         []DirLight
	Point       []PointLight
}

const recipPi = 1 / math32.Pi

// Irradiance evaluates a Lambert surface at p with unit normal n.
// The result is multiplied by the albedo by the caller.
func (l *LightRig) Irradiance(p, n Vec3) Color {
	var out Color
	out = out.Add(l.Ambient.Color.MulScalar(l.Ambient.Intensity))
	out = out.Add(l.Environment.Color.MulScalar(l.Environment.Intensity))

	for i := range l.Dir {
		d := &l.Dir[i]
		ld := Normalize(d.Pos)
		if ld == (Vec3{}) {
			continue
		}
		ndl := Dot(n, ld)
		if ndl <= 0 {
			continue
		}
		out = out.Add(d.Color.MulScalar(d.Intensity * ndl))
	}

	for i := range l.Point {
		pl := &l.Point[i]
		toLight := pl.Pos.Sub(p)
		dist := Len(toLight)
		if dist == 0 {
			continue
		}
		ndl := Dot(n, toLight.Mul(1/dist))
		if ndl <= 0 {
			continue
		}
		att := distanceAttenuation(dist, pl.Range)
		if att == 0 {
			continue
		}
		out = out.Add(pl.Color.MulScalar(pl.Intensity * ndl * att))
	}

	out = out.MulScalar(recipPi)
	out.A = 1
	return out
}

func distanceAttenuation(dist, cutoff Scalar) Scalar {
	falloff := 1 / math32.Max(dist*dist, 0.01)
	if cutoff > 0 {
		r := dist / cutoff
		w := Clamp01(1 - r*r*r*r)
		falloff *= w * w
	}
	return falloff
}
