package quarkgl

import (
	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"
)

// DefaultDampingFactor is the fraction of pending orbit input applied per tick.
const DefaultDampingFactor Scalar = 0.05

// Polar angle limit keeping the camera off the poles, where the up vector
// and view direction would be parallel.
const minPolar Scalar = 1e-3

// OrbitController provides damped orbit/zoom/pan interactions for a camera.
//
// It does not depend on any input system and keeps no copy of the camera pose:
// every Update reads Camera.Position and Camera.Target afresh, so other writers
// may move the camera between updates and the last writer wins.
type OrbitController struct {
	EnableRotate bool
	EnableZoom   bool
	EnablePan    bool

	AutoRotate bool
	// AutoRotateSpeed is in revolutions per minute.
	AutoRotateSpeed Scalar

	MinRadius Scalar
	MaxRadius Scalar

	RotateSpeed Scalar
	ZoomSpeed   Scalar
	PanSpeed    Scalar

	// Suspended drops pending input and leaves the camera untouched on Update.
	Suspended bool

	spring harmonica.Spring

	theta springAxis
	phi   springAxis
	dolly springAxis
	panX  springAxis
	panY  springAxis

	rotated bool
}

// NewOrbitController returns a controller ticking at tps updates per second.
//
// Every input channel is a critically damped spring whose response matches an
// exponential decay of dampingFactor per tick.
func NewOrbitController(tps int, dampingFactor Scalar) *OrbitController {
	if tps <= 0 {
		tps = 60
	}
	dampingFactor = Clamp(dampingFactor, 0.001, 0.999)
	omega := -math32.Log(1-dampingFactor) * Scalar(tps)
	return &OrbitController{
		EnableRotate: true,
		EnableZoom:   true,
		EnablePan:    true,
		RotateSpeed:  1,
		ZoomSpeed:    1,
		PanSpeed:     1,
		spring:       harmonica.NewSpring(harmonica.FPS(tps), float64(omega), 1.0),
	}
}

// Rotate queues a drag of dx, dy pixels on a viewport viewportH pixels tall.
// A drag the full viewport height turns the camera once around the target.
func (c *OrbitController) Rotate(dx, dy, viewportH Scalar) {
	if !c.EnableRotate || viewportH <= 0 {
		return
	}
	c.theta.goal -= float64(2 * Pi * dx / viewportH * c.RotateSpeed)
	c.phi.goal -= float64(2 * Pi * dy / viewportH * c.RotateSpeed)
	c.rotated = true
}

// Zoom queues scroll steps; positive steps move the camera toward the target.
func (c *OrbitController) Zoom(steps Scalar) {
	if !c.EnableZoom {
		return
	}
	// One step scales the radius by 0.95^ZoomSpeed.
	c.dolly.goal += float64(steps * -math32.Log(0.95) * c.ZoomSpeed)
}

// Pan queues a drag of dx, dy pixels that slides the target in the view plane.
func (c *OrbitController) Pan(dx, dy, viewportH Scalar) {
	if !c.EnablePan || viewportH <= 0 {
		return
	}
	c.panX.goal += float64(dx / viewportH * c.PanSpeed)
	c.panY.goal += float64(dy / viewportH * c.PanSpeed)
}

// Idle reports whether no queued input remains to be applied.
func (c *OrbitController) Idle() bool {
	return c.theta.idle() && c.phi.idle() && c.dolly.idle() && c.panX.idle() && c.panY.idle()
}

// Update advances the damped motion by one tick of dt seconds and writes the
// resulting pose to cam.
func (c *OrbitController) Update(cam *Camera, dt Scalar) {
	if cam == nil {
		return
	}
	rotated := c.rotated
	c.rotated = false
	if c.Suspended {
		c.settle()
		return
	}

	offset := cam.Position.Sub(cam.Target)
	radius := Len(offset)
	if radius == 0 {
		radius = c.clampRadius(1)
		offset = V3(0, 0, radius)
	}
	theta := math32.Atan2(offset.X, offset.Z)
	phi := math32.Acos(Clamp(offset.Y/radius, -1, 1))

	if c.AutoRotate && !rotated && dt > 0 {
		theta -= 2 * Pi / 60 * c.AutoRotateSpeed * dt
	}

	theta += c.theta.step(c.spring)
	phi += c.phi.step(c.spring)
	phi = Clamp(phi, minPolar, Pi-minPolar)
	radius = c.clampRadius(radius * math32.Exp(-c.dolly.step(c.spring)))

	dx := c.panX.step(c.spring)
	dy := c.panY.step(c.spring)
	if dx != 0 || dy != 0 {
		fov := cam.FOVYRad
		if fov == 0 {
			fov = 1
		}
		dist := 2 * radius * math32.Tan(fov/2)
		forward := Normalize(cam.Target.Sub(cam.Position))
		up := cam.Up
		if up == (Vec3{}) {
			up = V3(0, 1, 0)
		}
		right := Normalize(Cross(forward, up))
		camUp := Cross(right, forward)
		cam.Target = cam.Target.Add(right.Mul(-dx * dist)).Add(camUp.Mul(dy * dist))
	}

	sp := math32.Sin(phi)
	cam.Position = cam.Target.Add(V3(
		radius*sp*math32.Sin(theta),
		radius*math32.Cos(phi),
		radius*sp*math32.Cos(theta),
	))
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) clampRadius(r Scalar) Scalar {
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}

func (c *OrbitController) settle() {
	c.theta.settle()
	c.phi.settle()
	c.dolly.settle()
	c.panX.settle()
	c.panY.settle()
}

// springAxis chases the accumulated input (goal) with a damped spring; the
// per-tick change in pos is the amount of input applied that tick.
type springAxis struct {
	pos, vel, goal float64
}

const springRest = 1e-7

func (a *springAxis) step(s harmonica.Spring) Scalar {
	prev := a.pos
	a.pos, a.vel = s.Update(a.pos, a.vel, a.goal)
	d := a.pos - prev
	if a.idle() {
		// Rebase so long sessions do not grow the accumulators.
		d += a.goal - a.pos
		a.settle()
	}
	return Scalar(d)
}

func (a *springAxis) idle() bool {
	diff := a.goal - a.pos
	return diff < springRest && diff > -springRest && a.vel < springRest && a.vel > -springRest
}

func (a *springAxis) settle() {
	a.pos, a.vel, a.goal = 0, 0, 0
}
