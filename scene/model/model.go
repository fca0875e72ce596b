// Package model builds the procedural station meshes shown at the centre
// of the scene.
package model

import (
	"github.com/chewxy/math32"

	"station/scene/quarkgl"
)

// ModulesOffset and ModulesScale place the module cluster next to the station.
var (
	ModulesOffset                = quarkgl.V3(4, -4, 3)
	ModulesScale  quarkgl.Scalar = 0.3
)

var (
	hullMaterial = quarkgl.Material{
		Albedo: quarkgl.MustHex("#b8c0c8"),
	}
	panelMaterial = quarkgl.Material{
		Albedo:   quarkgl.MustHex("#23346b"),
		Emissive: quarkgl.MustHex("#05080f"),
	}
	lightMaterial = quarkgl.Material{
		Albedo:   quarkgl.MustHex("#ffffff"),
		Emissive: quarkgl.RGB(0.9, 1.4, 1.3),
	}
)

// Station returns the meshes of the main station at the origin: a habitat
// ring on spokes around a hub, a mast carrying solar panels and a ring of
// beacon lights.
func Station() []quarkgl.Mesh {
	var hull, panels, beacons builder

	hull.torus(quarkgl.V3(0, 0, 0), 3, 0.35, 48, 12)
	hull.cylinder(quarkgl.V3(0, 0, 0), 0.7, 1.2, 16)
	for i := 0; i < 4; i++ {
		a := quarkgl.Pi / 2 * quarkgl.Scalar(i)
		mid := quarkgl.V3(1.85*math32.Cos(a), 0, 1.85*math32.Sin(a))
		half := quarkgl.V3(
			math32.Max(1.15*math32.Abs(math32.Cos(a)), 0.08),
			0.08,
			math32.Max(1.15*math32.Abs(math32.Sin(a)), 0.08),
		)
		hull.box(mid, half)
	}
	hull.box(quarkgl.V3(0, 2.6, 0), quarkgl.V3(0.12, 1.4, 0.12))
	hull.box(quarkgl.V3(0, -1.9, 0), quarkgl.V3(0.4, 0.7, 0.4))

	for _, side := range []quarkgl.Scalar{-1, 1} {
		panels.box(quarkgl.V3(side*2.2, 3.4, 0), quarkgl.V3(1.8, 0.03, 0.6))
	}

	for i := 0; i < 8; i++ {
		a := quarkgl.Pi / 4 * (quarkgl.Scalar(i) + 0.5)
		p := quarkgl.V3(3*math32.Cos(a), 0.4, 3*math32.Sin(a))
		beacons.box(p, quarkgl.V3(0.07, 0.07, 0.07))
	}

	return []quarkgl.Mesh{
		hull.mesh(hullMaterial),
		panels.mesh(panelMaterial),
		beacons.mesh(lightMaterial),
	}
}

// Modules returns the docked module cluster, already placed with
// ModulesOffset and ModulesScale.
func Modules() []quarkgl.Mesh {
	var b builder
	b.cylinder(quarkgl.V3(0, 0, 0), 1, 2.5, 12)
	b.cylinder(quarkgl.V3(0, 3.5, 0), 0.6, 1, 12)
	b.box(quarkgl.V3(0, -3.2, 0), quarkgl.V3(1.4, 0.7, 1.4))
	b.torus(quarkgl.V3(0, 1.5, 0), 1.8, 0.2, 24, 8)

	m := b.mesh(hullMaterial)
	m.Transform = quarkgl.Mat4Mul(
		quarkgl.Mat4Translate(ModulesOffset),
		quarkgl.Mat4Scale(quarkgl.V3(ModulesScale, ModulesScale, ModulesScale)),
	)
	return []quarkgl.Mesh{m}
}

type builder struct {
	verts   []quarkgl.Vertex
	indices []uint16
}

func (b *builder) mesh(mat quarkgl.Material) quarkgl.Mesh {
	return quarkgl.Mesh{
		Vertices: b.verts,
		Indices:  b.indices,
		Material: mat,
	}
}

func (b *builder) vertex(p, n quarkgl.Vec3) uint16 {
	b.verts = append(b.verts, quarkgl.Vertex{Pos: p, Normal: n})
	return uint16(len(b.verts) - 1)
}

func (b *builder) quad(i0, i1, i2, i3 uint16) {
	b.indices = append(b.indices, i0, i1, i2, i0, i2, i3)
}

// torus lies in the XZ plane around center.
func (b *builder) torus(center quarkgl.Vec3, major, minor quarkgl.Scalar, segU, segV int) {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}
	base := uint16(len(b.verts))
	for u := 0; u < segU; u++ {
		theta := 2 * quarkgl.Pi * quarkgl.Scalar(u) / quarkgl.Scalar(segU)
		ct, st := math32.Cos(theta), math32.Sin(theta)
		for v := 0; v < segV; v++ {
			phi := 2 * quarkgl.Pi * quarkgl.Scalar(v) / quarkgl.Scalar(segV)
			cp, sp := math32.Cos(phi), math32.Sin(phi)
			r := major + minor*cp
			n := quarkgl.V3(cp*ct, sp, cp*st)
			b.vertex(center.Add(quarkgl.V3(r*ct, minor*sp, r*st)), n)
		}
	}
	idx := func(u, v int) uint16 {
		return base + uint16((u%segU)*segV+v%segV)
	}
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			b.quad(idx(u, v), idx(u+1, v), idx(u+1, v+1), idx(u, v+1))
		}
	}
}

// cylinder is capped and aligned with Y.
func (b *builder) cylinder(center quarkgl.Vec3, radius, halfHeight quarkgl.Scalar, seg int) {
	if seg < 3 {
		seg = 3
	}
	top := b.vertex(center.Add(quarkgl.V3(0, halfHeight, 0)), quarkgl.V3(0, 1, 0))
	bottom := b.vertex(center.Add(quarkgl.V3(0, -halfHeight, 0)), quarkgl.V3(0, -1, 0))
	ring := uint16(len(b.verts))
	for i := 0; i < seg; i++ {
		a := 2 * quarkgl.Pi * quarkgl.Scalar(i) / quarkgl.Scalar(seg)
		n := quarkgl.V3(math32.Cos(a), 0, math32.Sin(a))
		b.vertex(center.Add(quarkgl.V3(n.X*radius, halfHeight, n.Z*radius)), n)
		b.vertex(center.Add(quarkgl.V3(n.X*radius, -halfHeight, n.Z*radius)), n)
	}
	for i := 0; i < seg; i++ {
		j := (i + 1) % seg
		t0, b0 := ring+uint16(2*i), ring+uint16(2*i+1)
		t1, b1 := ring+uint16(2*j), ring+uint16(2*j+1)
		b.quad(t0, t1, b1, b0)
		b.indices = append(b.indices, top, t1, t0, bottom, b0, b1)
	}
}

func (b *builder) box(center, half quarkgl.Vec3) {
	faces := [6]struct{ n, u, v quarkgl.Vec3 }{
		{quarkgl.V3(1, 0, 0), quarkgl.V3(0, 1, 0), quarkgl.V3(0, 0, 1)},
		{quarkgl.V3(-1, 0, 0), quarkgl.V3(0, 0, 1), quarkgl.V3(0, 1, 0)},
		{quarkgl.V3(0, 1, 0), quarkgl.V3(0, 0, 1), quarkgl.V3(1, 0, 0)},
		{quarkgl.V3(0, -1, 0), quarkgl.V3(1, 0, 0), quarkgl.V3(0, 0, 1)},
		{quarkgl.V3(0, 0, 1), quarkgl.V3(1, 0, 0), quarkgl.V3(0, 1, 0)},
		{quarkgl.V3(0, 0, -1), quarkgl.V3(0, 1, 0), quarkgl.V3(1, 0, 0)},
	}
	scale := func(v quarkgl.Vec3) quarkgl.Vec3 {
		return quarkgl.V3(v.X*half.X, v.Y*half.Y, v.Z*half.Z)
	}
	for _, f := range faces {
		c := center.Add(scale(f.n))
		u, v := scale(f.u), scale(f.v)
		i0 := b.vertex(c.Sub(u).Sub(v), f.n)
		i1 := b.vertex(c.Add(u).Sub(v), f.n)
		i2 := b.vertex(c.Add(u).Add(v), f.n)
		i3 := b.vertex(c.Sub(u).Add(v), f.n)
		b.quad(i0, i1, i2, i3)
	}
}
