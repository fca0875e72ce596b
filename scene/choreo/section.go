// Package choreo drives the camera between the portfolio's sections.
//
// A Choreographer eases the shared camera toward a per-section target once per
// frame and then holds, handing the camera to the orbit controller. The
// projects section is never animated: it is always freely explorable.
package choreo

import "strings"

// Section is a named view of the scene.
type Section uint8

const (
	Home Section = iota
	Projects
	LostFocus
	Contact
)

// Sections lists every section in navigation order.
var Sections = [...]Section{Home, Projects, LostFocus, Contact}

var sectionNames = [...]string{
	Home:      "home",
	Projects:  "projects",
	LostFocus: "lostfocus",
	Contact:   "contact",
}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "unknown"
}

// ParseSection maps a navigation id to a Section. It accepts "lost-focus" as
// an alias and ignores case and surrounding space.
func ParseSection(id string) (Section, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "lost-focus" {
		return LostFocus, true
	}
	for i, name := range sectionNames {
		if name == id {
			return Section(i), true
		}
	}
	return Home, false
}
