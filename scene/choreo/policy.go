package choreo

import "station/scene/quarkgl"

// OrbitPolicy is the orbit controller configuration for a section.
type OrbitPolicy struct {
	Interactive     bool
	AutoRotateSpeed quarkgl.Scalar
}

// Policy returns the orbit configuration for s. The camera is frozen for
// user input while the contact panel is shown and drifts slower in lost focus.
func Policy(s Section) OrbitPolicy {
	p := OrbitPolicy{Interactive: s != Contact, AutoRotateSpeed: 0.3}
	if s == LostFocus {
		p.AutoRotateSpeed = 0.1
	}
	return p
}

// Apply configures o for the policy.
func (p OrbitPolicy) Apply(o *quarkgl.OrbitController) {
	if o == nil {
		return
	}
	o.EnableRotate = p.Interactive
	o.EnableZoom = p.Interactive
	o.EnablePan = p.Interactive
	o.AutoRotate = true
	o.AutoRotateSpeed = p.AutoRotateSpeed
}
