package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// BlendTarget is a Target that can composite onto existing pixels.
// Point draws require it; meshes only need Target.
type BlendTarget interface {
	Target
	BlendPixel(x, y int, c Color, mode BlendMode)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
)

// BlendMode selects how a fragment combines with the destination.
type BlendMode uint8

const (
	// BlendNormal is src*srcAlpha + dst*(1-srcAlpha).
	BlendNormal BlendMode = iota
	// BlendAdditive is src*srcAlpha + dst.
	BlendAdditive
)

// FloatTarget is a linear float RGBA buffer. It is the HDR frame the
// renderer draws into and the post-processing chain reads from.
type FloatTarget struct {
	W, H int
	Pix  []Color
}

// NewFloatTarget allocates a w×h target.
func NewFloatTarget(w, h int) *FloatTarget {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FloatTarget{W: w, H: h, Pix: make([]Color, w*h)}
}

func (t *FloatTarget) Size() (w, h int) { return t.W, t.H }

func (t *FloatTarget) Clear(c Color) {
	for i := range t.Pix {
		t.Pix[i] = c
	}
}

func (t *FloatTarget) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	t.Pix[y*t.W+x] = c
}

// At returns the pixel at x, y or the zero color when out of bounds.
func (t *FloatTarget) At(x, y int) Color {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return Color{}
	}
	return t.Pix[y*t.W+x]
}

func (t *FloatTarget) BlendPixel(x, y int, c Color, mode BlendMode) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	i := y*t.W + x
	dst := t.Pix[i]
	a := Clamp01(c.A)
	switch mode {
	case BlendAdditive:
		t.Pix[i] = Color{
			R: dst.R + c.R*a,
			G: dst.G + c.G*a,
			B: dst.B + c.B*a,
			A: Clamp01(dst.A + a),
		}
	default:
		t.Pix[i] = Color{
			R: c.R*a + dst.R*(1-a),
			G: c.G*a + dst.G*(1-a),
			B: c.B*a + dst.B*(1-a),
			A: a + dst.A*(1-a),
		}
	}
}

// Sample reads the target at normalised coordinates (u right, v down)
// with bilinear filtering and clamp-to-edge addressing.
func (t *FloatTarget) Sample(u, v Scalar) Color {
	if t.W == 0 || t.H == 0 {
		return Color{}
	}
	fx := u*Scalar(t.W) - 0.5
	fy := v*Scalar(t.H) - 0.5
	x0 := floorInt(fx)
	y0 := floorInt(fy)
	tx := fx - Scalar(x0)
	ty := fy - Scalar(y0)

	c00 := t.clampAt(x0, y0)
	c10 := t.clampAt(x0+1, y0)
	c01 := t.clampAt(x0, y0+1)
	c11 := t.clampAt(x0+1, y0+1)

	top := MixColor(c00, c10, tx)
	top.A = Mix(c00.A, c10.A, tx)
	bot := MixColor(c01, c11, tx)
	bot.A = Mix(c01.A, c11.A, tx)
	out := MixColor(top, bot, ty)
	out.A = Mix(top.A, bot.A, ty)
	return out
}

func (t *FloatTarget) clampAt(x, y int) Color {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= t.W {
		x = t.W - 1
	}
	if y >= t.H {
		y = t.H - 1
	}
	return t.Pix[y*t.W+x]
}

func floorInt(v Scalar) int {
	i := int(v)
	if Scalar(i) > v {
		i--
	}
	return i
}
