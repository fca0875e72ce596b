package choreo

import (
	"errors"

	"station/scene/quarkgl"
)

// ErrNoHomeTarget is returned when a target table lacks the home entry that
// every other lookup falls back to.
var ErrNoHomeTarget = errors.New("choreo: target table has no home entry")

// Target is where the camera sits and what it looks at for one section.
type Target struct {
	Position quarkgl.Vec3
	LookAt   quarkgl.Vec3
}

// Table maps sections to camera targets. The zero Table is not usable;
// build one with NewTable or DefaultTable.
type Table struct {
	entries map[Section]Target
	home    Target
}

// NewTable copies entries into an immutable table. It fails unless entries
// contains Home.
func NewTable(entries map[Section]Target) (Table, error) {
	home, ok := entries[Home]
	if !ok {
		return Table{}, ErrNoHomeTarget
	}
	cp := make(map[Section]Target, len(entries))
	for s, t := range entries {
		cp[s] = t
	}
	return Table{entries: cp, home: home}, nil
}

// DefaultTable returns the scene's camera targets.
func DefaultTable() Table {
	t, err := NewTable(map[Section]Target{
		Home:      {Position: quarkgl.V3(4, 5, -16), LookAt: quarkgl.V3(0, 0, 0)},
		Projects:  {Position: quarkgl.V3(4, 5, -16), LookAt: quarkgl.V3(0, 0, 0)},
		LostFocus: {Position: quarkgl.V3(10, 28, -35), LookAt: quarkgl.V3(0, 0, 0)},
		Contact:   {Position: quarkgl.V3(4, 5, -8), LookAt: quarkgl.V3(6, 0, 0)},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the target for s, or the home target when s has no entry.
func (t Table) Lookup(s Section) Target {
	if e, ok := t.entries[s]; ok {
		return e
	}
	return t.home
}
