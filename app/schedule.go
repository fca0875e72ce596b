package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"station/scene/choreo"
)

// Cue selects Section once Frame frames have run.
type Cue struct {
	Frame   uint64
	Section choreo.Section
}

// ParseSchedule parses "frame:section" pairs separated by commas, for
// example "120:contact,400:home". Cues are returned in frame order.
func ParseSchedule(s string) ([]Cue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var cues []Cue
	for _, part := range strings.Split(s, ",") {
		frame, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("cue %q: want frame:section", part)
		}
		n, err := strconv.ParseUint(strings.TrimSpace(frame), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cue %q: %w", part, err)
		}
		sec, ok := choreo.ParseSection(name)
		if !ok {
			return nil, fmt.Errorf("cue %q: unknown section %q", part, name)
		}
		cues = append(cues, Cue{Frame: n, Section: sec})
	}
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Frame < cues[j].Frame })
	return cues, nil
}
