package stage

import (
	"station/scene/choreo"
	"station/scene/quarkgl"
)

// FrameInfo describes the state after the most recent Tick.
type FrameInfo struct {
	Frame    uint64
	Elapsed  quarkgl.Scalar
	Section  choreo.Section
	Arrived  bool
	Position quarkgl.Vec3
	Target   quarkgl.Vec3
}

// Frame returns the state after the most recent Tick.
func (s *Stage) Frame() FrameInfo {
	return FrameInfo{
		Frame:    s.frame,
		Elapsed:  s.elapsed,
		Section:  s.section,
		Arrived:  s.choreo.Arrived(),
		Position: s.scene.Camera.Position,
		Target:   s.scene.Camera.Target,
	}
}
