// Package trace records the camera trajectory of a run as YAML.
package trace

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"station/scene/stage"
)

// Sample is one recorded frame.
type Sample struct {
	Frame    uint64     `yaml:"frame"`
	Time     float32    `yaml:"t"`
	Section  string     `yaml:"section"`
	Arrived  bool       `yaml:"arrived"`
	Position [3]float32 `yaml:"position,flow"`
	Target   [3]float32 `yaml:"target,flow"`
}

// Trace is the document written to disk.
type Trace struct {
	Every   int      `yaml:"every"`
	Samples []Sample `yaml:"samples"`
}

// Recorder keeps every Nth frame plus every frame where the section or the
// arrival flag changed.
type Recorder struct {
	every int
	last  *Sample
	trace Trace
}

// NewRecorder samples every nth frame; n < 1 records every frame.
func NewRecorder(n int) *Recorder {
	if n < 1 {
		n = 1
	}
	return &Recorder{every: n, trace: Trace{Every: n}}
}

// Record adds f if it is due or marks a change.
func (r *Recorder) Record(f stage.FrameInfo) {
	s := Sample{
		Frame:    f.Frame,
		Time:     f.Elapsed,
		Section:  f.Section.String(),
		Arrived:  f.Arrived,
		Position: [3]float32{f.Position.X, f.Position.Y, f.Position.Z},
		Target:   [3]float32{f.Target.X, f.Target.Y, f.Target.Z},
	}
	changed := r.last == nil || r.last.Section != s.Section || r.last.Arrived != s.Arrived
	if !changed && f.Frame%uint64(r.every) != 0 {
		return
	}
	r.trace.Samples = append(r.trace.Samples, s)
	r.last = &r.trace.Samples[len(r.trace.Samples)-1]
}

// Trace returns the recorded samples.
func (r *Recorder) Trace() Trace { return r.trace }

// Save writes the trace to path.
func (r *Recorder) Save(path string) error {
	data, err := yaml.Marshal(r.trace)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads a trace written by Save.
func Load(path string) (Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Trace{}, fmt.Errorf("read %s: %w", path, err)
	}
	var t Trace
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Trace{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return t, nil
}
