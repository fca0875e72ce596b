package quarkgl

import "testing"

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	got := Mat4Mul(a, b)
	if got != b {
		t.Fatalf("identity*a mismatch")
	}
	got2 := Mat4Mul(b, a)
	if got2 != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestLookAtPutsTargetOnNegativeZ(t *testing.T) {
	eye := V3(4, 5, -16)
	m := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))
	p := Mat4MulPoint(m, V3(0, 0, 0))
	if abs(p.X) > 1e-4 || abs(p.Y) > 1e-4 {
		t.Fatalf("expected target on the view axis, got %+v", p)
	}
	if want := -Len(eye); abs(p.Z-want) > 1e-4 {
		t.Fatalf("expected view z %f, got %f", want, p.Z)
	}
}

func TestLerpAndDistance(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, 0, 0)
	if got := a.Lerp(b, 0.25); got != V3(2.5, 0, 0) {
		t.Fatalf("expected (2.5,0,0), got %+v", got)
	}
	if got := a.DistanceTo(b); got != 10 {
		t.Fatalf("expected distance 10, got %f", got)
	}
}

func TestSmoothstepInverted(t *testing.T) {
	if got := Smoothstep(0.8, 0.24, 0); got != 1 {
		t.Fatalf("expected 1 below inverted ramp, got %f", got)
	}
	if got := Smoothstep(0.8, 0.24, 1); got != 0 {
		t.Fatalf("expected 0 above inverted ramp, got %f", got)
	}
	if got := Smoothstep(0, 1, 0.5); got != 0.5 {
		t.Fatalf("expected 0.5 at midpoint, got %f", got)
	}
}

func abs(v Scalar) Scalar {
	if v < 0 {
		return -v
	}
	return v
}
