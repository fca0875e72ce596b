package quarkgl

// PointUniforms are the per-draw values shared by every point of a draw.
type PointUniforms struct {
	ModelView  Mat4
	Projection Mat4

	// Viewport size in pixels.
	Viewport Vec2
}

// PointVertex is the output of a point program's vertex stage.
type PointVertex struct {
	// View is the view-space position (camera looks down -Z).
	View Vec3
	// Size is the point diameter in pixels.
	Size Scalar

	Varyings [4]Scalar
}

// PointShader is a programmable point draw.
//
// Vertex is called once per point per frame and must derive everything from
// the point index, its static attributes and uniforms; it must not mutate
// per-point state. Fragment receives the point-sprite coordinate in [0,1]²
// and reports false to discard.
type PointShader interface {
	Count() int
	Vertex(i int, u *PointUniforms) PointVertex
	Fragment(v *PointVertex, coord Vec2) (Color, bool)
	Blend() BlendMode
}

const (
	minPointSize Scalar = 1
	maxPointSize Scalar = 64
)

func (r *Renderer) renderPoints(t BlendTarget, w, h int, proj, view Mat4, p PointShader) {
	n := p.Count()
	if n <= 0 {
		return
	}
	u := PointUniforms{
		ModelView:  view,
		Projection: proj,
		Viewport:   V2(Scalar(w), Scalar(h)),
	}
	blend := p.Blend()

	for i := 0; i < n; i++ {
		pv := p.Vertex(i, &u)
		if pv.View.Z >= 0 {
			continue
		}
		clip := Mat4MulV4(proj, Vec4{X: pv.View.X, Y: pv.View.Y, Z: pv.View.Z, W: 1})
		ndc, ok := clipToNDC(clip)
		if !ok || ndc.Z < -1 || ndc.Z > 1 {
			continue
		}

		size := Clamp(pv.Size, minPointSize, maxPointSize)
		cx := (ndc.X*0.5 + 0.5) * Scalar(w)
		cy := (1 - (ndc.Y*0.5 + 0.5)) * Scalar(h)
		left := cx - size/2
		top := cy - size/2

		x0 := floorInt(left)
		y0 := floorInt(top)
		x1 := floorInt(left + size)
		y1 := floorInt(top + size)
		if x1 < 0 || y1 < 0 || x0 >= w || y0 >= h {
			continue
		}
		if x0 < 0 {
			x0 = 0
		}
		if y0 < 0 {
			y0 = 0
		}
		if x1 >= w {
			x1 = w - 1
		}
		if y1 >= h {
			y1 = h - 1
		}

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				coord := V2(
					Clamp01((Scalar(x)+0.5-left)/size),
					Clamp01((Scalar(y)+0.5-top)/size),
				)
				if !r.depthPass(w, x, y, ndc.Z) {
					continue
				}
				c, keep := p.Fragment(&pv, coord)
				if !keep {
					continue
				}
				t.BlendPixel(x, y, c, blend)
			}
		}
	}
}
