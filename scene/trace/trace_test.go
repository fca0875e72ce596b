package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station/scene/choreo"
	"station/scene/quarkgl"
	"station/scene/stage"
)

func frame(n uint64, sec choreo.Section, arrived bool) stage.FrameInfo {
	return stage.FrameInfo{
		Frame:    n,
		Section:  sec,
		Arrived:  arrived,
		Position: quarkgl.V3(4, 5, -16),
	}
}

func TestRecorderKeepsChangesAndEveryNth(t *testing.T) {
	r := NewRecorder(10)
	r.Record(frame(1, choreo.Home, false))
	for n := uint64(2); n < 25; n++ {
		r.Record(frame(n, choreo.Home, n >= 7))
	}
	r.Record(frame(25, choreo.Contact, false))

	var frames []uint64
	for _, s := range r.Trace().Samples {
		frames = append(frames, s.Frame)
	}
	assert.Equal(t, []uint64{1, 7, 10, 20, 25}, frames)
	assert.Equal(t, "contact", r.Trace().Samples[4].Section)
}

func TestSaveWritesYAML(t *testing.T) {
	r := NewRecorder(0)
	r.Record(frame(1, choreo.LostFocus, true))

	path := filepath.Join(t.TempDir(), "trace.yaml")
	require.NoError(t, r.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "section: lostfocus"))
	assert.True(t, strings.Contains(string(data), "position: [4, 5, -16]"))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got.Samples, 1)
	assert.True(t, got.Samples[0].Arrived)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
