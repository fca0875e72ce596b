package particles

import "station/scene/quarkgl"

// Clock is the time uniform of the point program, in seconds since start.
type Clock struct {
	t quarkgl.Scalar
}

// Advance moves the clock forward by dt. Non-positive deltas are ignored so
// the clock never runs backwards.
func (c *Clock) Advance(dt quarkgl.Scalar) {
	if dt <= 0 {
		return
	}
	c.t += dt
}

func (c *Clock) Seconds() quarkgl.Scalar { return c.t }
