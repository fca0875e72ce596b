package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station/hal"
	"station/scene/choreo"
	"station/scene/stage"
	"station/scene/trace"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f *fakeFB) StrideBytes() int        { return f.w * 4 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }
func (f *fakeFB) ClearRGB(r, g, b uint8) {
	for i := 0; i < len(f.buf); i += 4 {
		f.buf[i], f.buf[i+1], f.buf[i+2], f.buf[i+3] = r, g, b, 0xFF
	}
}

type fakeHAL struct {
	fb  *fakeFB
	kbd chan hal.KeyEvent
	ptr chan hal.PointerEvent
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:  &fakeFB{w: w, h: h, buf: make([]byte, w*h*4)},
		kbd: make(chan hal.KeyEvent, 16),
		ptr: make(chan hal.PointerEvent, 16),
	}
}

func (f *fakeHAL) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
func (f *fakeHAL) Display() hal.Display { return f }
func (f *fakeHAL) Input() hal.Input     { return f }

func (f *fakeHAL) Framebuffer() hal.Framebuffer {
	if f.fb == nil {
		return nil
	}
	return f.fb
}
func (f *fakeHAL) Keyboard() hal.Keyboard { return f }
func (f *fakeHAL) Pointer() hal.Pointer   { return pointerOf(f.ptr) }

func (f *fakeHAL) Events() <-chan hal.KeyEvent { return f.kbd }

type pointerOf chan hal.PointerEvent

func (p pointerOf) Events() <-chan hal.PointerEvent { return p }

const tick = time.Second / 60

func testConfig() Config {
	return Config{Particles: 50, Seed: 3, TPS: 60}
}

func TestNewFailsWithoutSurface(t *testing.T) {
	h := newFakeHAL(0, 0)
	h.fb = nil
	_, err := New(testConfig())(h)
	require.ErrorIs(t, err, stage.ErrNoSurface)
}

func TestKeysSelectSections(t *testing.T) {
	h := newFakeHAL(48, 27)
	a, err := newApp(h, testConfig())
	require.NoError(t, err)

	h.kbd <- hal.KeyEvent{Press: true, Rune: '4'}
	require.NoError(t, a.Step(tick))
	assert.Equal(t, choreo.Contact, a.stage.Section())

	h.kbd <- hal.KeyEvent{Code: hal.KeyTab, Press: true}
	require.NoError(t, a.Step(tick))
	assert.Equal(t, choreo.Home, a.stage.Section())

	h.kbd <- hal.KeyEvent{Press: true, Rune: '3'}
	require.NoError(t, a.Step(tick))
	assert.Equal(t, choreo.LostFocus, a.stage.Section())

	h.kbd <- hal.KeyEvent{Code: hal.KeyHome, Press: true}
	require.NoError(t, a.Step(tick))
	assert.Equal(t, choreo.Home, a.stage.Section())
}

func TestToggles(t *testing.T) {
	h := newFakeHAL(16, 9)
	a, err := newApp(h, testConfig())
	require.NoError(t, err)

	h.kbd <- hal.KeyEvent{Press: true, Rune: 'x'}
	h.kbd <- hal.KeyEvent{Press: true, Rune: 'h'}
	require.NoError(t, a.Step(tick))
	assert.True(t, a.stage.Wireframe())
	assert.True(t, a.hud.enabled)

	h.kbd <- hal.KeyEvent{Press: false, Rune: 'x'}
	require.NoError(t, a.Step(tick))
	assert.True(t, a.stage.Wireframe(), "key release must not toggle")
}

func TestTabAdvancesFromPendingSection(t *testing.T) {
	h := newFakeHAL(16, 9)
	a, err := newApp(h, testConfig())
	require.NoError(t, err)

	h.kbd <- hal.KeyEvent{Code: hal.KeyTab, Press: true}
	h.kbd <- hal.KeyEvent{Code: hal.KeyTab, Press: true}
	require.NoError(t, a.Step(tick))
	assert.Equal(t, choreo.LostFocus, a.stage.Section())
}

func TestEscapeQuits(t *testing.T) {
	h := newFakeHAL(16, 9)
	a, err := newApp(h, testConfig())
	require.NoError(t, err)

	h.kbd <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	require.ErrorIs(t, a.Step(tick), hal.ErrQuit)
}

func TestScheduleAndTrace(t *testing.T) {
	h := newFakeHAL(32, 18)
	cfg := testConfig()
	cfg.Schedule = []Cue{{Frame: 2, Section: choreo.Contact}}
	cfg.TracePath = filepath.Join(t.TempDir(), "trace.yaml")
	a, err := newApp(h, cfg)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, a.Step(tick))
	}
	require.NoError(t, a.Close())
	assert.Equal(t, 5, h.fb.presents)

	tr, err := trace.Load(cfg.TracePath)
	require.NoError(t, err)
	require.NotEmpty(t, tr.Samples)
	assert.Equal(t, "home", tr.Samples[0].Section)
	assert.Equal(t, "contact", tr.Samples[len(tr.Samples)-1].Section)
}

func TestHUDDrawsOverFrame(t *testing.T) {
	h := newFakeHAL(240, 60)
	cfg := testConfig()
	cfg.HUD = true
	a, err := newApp(h, cfg)
	require.NoError(t, err)
	require.NoError(t, a.Step(tick))

	found := false
	for i := 0; i < len(h.fb.buf); i += 4 {
		if h.fb.buf[i] == hudActive.R && h.fb.buf[i+1] == hudActive.G && h.fb.buf[i+2] == hudActive.B {
			found = true
			break
		}
	}
	assert.True(t, found, "active section label must be drawn")
}

func TestPanicBecomesError(t *testing.T) {
	h := newFakeHAL(64, 32)
	a, err := newApp(h, testConfig())
	require.NoError(t, err)
	a.stage = nil

	err = a.Step(tick)
	require.ErrorIs(t, err, ErrFramePanic)
	assert.Equal(t, 1, h.fb.presents)
}

func TestParseSchedule(t *testing.T) {
	cues, err := ParseSchedule("400:home, 120:lost-focus")
	require.NoError(t, err)
	assert.Equal(t, []Cue{{Frame: 120, Section: choreo.LostFocus}, {Frame: 400, Section: choreo.Home}}, cues)

	cues, err = ParseSchedule("")
	require.NoError(t, err)
	assert.Empty(t, cues)

	for _, bad := range []string{"120", "x:home", "10:blog"} {
		_, err := ParseSchedule(bad)
		assert.Error(t, err, bad)
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	assert.Equal(t, "hé", p)
	assert.Equal(t, "llo", r)
	p, r = takeRunes("ab", 5)
	assert.Equal(t, "ab", p)
	assert.Empty(t, r)
}
