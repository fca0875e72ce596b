package choreo

import "station/scene/quarkgl"

const (
	// ArrivalEpsilon is the distance at which a transition is complete.
	ArrivalEpsilon quarkgl.Scalar = 0.1

	defaultSpeed quarkgl.Scalar = 0.03
	contactSpeed quarkgl.Scalar = 0.05
)

// Speed returns the fraction of the remaining distance covered per frame.
func Speed(s Section) quarkgl.Scalar {
	if s == Contact {
		return contactSpeed
	}
	return defaultSpeed
}

// Choreographer eases a camera toward the active section's target.
//
// The ease is a fixed fraction per call, so it is tied to the tick rate; the
// presenters tick at a fixed rate regardless of display refresh.
type Choreographer struct {
	table   Table
	section Section
	arrived bool
}

// New returns a Choreographer that starts in section initial, not yet arrived.
func New(table Table, initial Section) *Choreographer {
	return &Choreographer{table: table, section: initial}
}

// Section returns the section seen on the last Update.
func (c *Choreographer) Section() Section { return c.section }

// Arrived reports whether the camera has settled for the current section.
// While false the choreographer owns the camera.
func (c *Choreographer) Arrived() bool { return c.arrived }

// Update runs one frame of choreography for section, writing cam.Position
// and cam.Target while a transition is in progress.
func (c *Choreographer) Update(section Section, cam *quarkgl.Camera) {
	if section != c.section {
		c.arrived = false
		c.section = section
	}

	if section == Projects {
		c.arrived = true
		return
	}
	if c.arrived || cam == nil {
		return
	}

	tgt := c.table.Lookup(section)
	speed := Speed(section)
	cam.Position = cam.Position.Lerp(tgt.Position, speed)
	cam.Target = cam.Target.Lerp(tgt.LookAt, speed)

	if cam.Position.DistanceTo(tgt.Position) < ArrivalEpsilon {
		c.arrived = true
	}
}
