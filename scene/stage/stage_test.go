package stage

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station/scene/choreo"
	"station/scene/quarkgl"
)

type fakeSurface struct {
	w, h     int
	buf      []byte
	presents int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, buf: make([]byte, w*h*4)}
}

func (f *fakeSurface) Width() int       { return f.w }
func (f *fakeSurface) Height() int      { return f.h }
func (f *fakeSurface) Buffer() []byte   { return f.buf }
func (f *fakeSurface) StrideBytes() int { return f.w * 4 }
func (f *fakeSurface) Present()         { f.presents++ }

const dt = quarkgl.Scalar(1.0 / 60)

func newTestStage(t *testing.T) (*Stage, *fakeSurface) {
	t.Helper()
	surf := newFakeSurface(32, 18)
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(7))
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := New(surf, opts)
	require.NoError(t, err)
	return s, surf
}

func tickUntilArrived(t *testing.T, s *Stage) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		s.Tick(dt)
		if s.Frame().Arrived {
			return
		}
	}
	t.Fatalf("stage never arrived in %s", s.Section())
}

func TestNewRequiresSurface(t *testing.T) {
	_, err := New(nil, DefaultOptions())
	require.ErrorIs(t, err, ErrNoSurface)

	_, err = New(newFakeSurface(0, 10), DefaultOptions())
	require.ErrorIs(t, err, ErrNoSurface)

	short := newFakeSurface(8, 8)
	short.buf = short.buf[:10]
	_, err = New(short, DefaultOptions())
	require.ErrorIs(t, err, ErrNoSurface)
}

func TestReadyFiresOnceAfterFirstFrame(t *testing.T) {
	s, surf := newTestStage(t)
	calls := 0
	s.OnReady(func() { calls++ })
	require.False(t, s.Ready())
	require.Zero(t, calls)

	s.Tick(dt)
	assert.True(t, s.Ready())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, surf.presents)

	s.Tick(dt)
	s.Tick(dt)
	assert.Equal(t, 1, calls)

	late := 0
	s.OnReady(func() { late++ })
	assert.Equal(t, 1, late)
}

func TestTickProducesImage(t *testing.T) {
	s, surf := newTestStage(t)
	s.Tick(dt)

	lit := 0
	for i := 0; i < len(surf.buf); i += 4 {
		require.Equal(t, byte(0xFF), surf.buf[i+3])
		if surf.buf[i] != 0 || surf.buf[i+1] != 0 || surf.buf[i+2] != 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 0)
}

func TestSetSectionLatchedOnTick(t *testing.T) {
	s, _ := newTestStage(t)
	s.Tick(dt)
	require.Equal(t, choreo.Home, s.Section())

	s.SetSection(choreo.Contact)
	assert.Equal(t, choreo.Home, s.Section())
	before := s.Frame().Position

	s.Tick(dt)
	assert.Equal(t, choreo.Contact, s.Section())
	assert.False(t, s.Frame().Arrived)
	assert.NotEqual(t, before, s.Frame().Position)
}

func TestContactIgnoresOrbitInput(t *testing.T) {
	a, _ := newTestStage(t)
	b, _ := newTestStage(t)
	for _, s := range []*Stage{a, b} {
		s.SetSection(choreo.Contact)
		tickUntilArrived(t, s)
	}
	require.Equal(t, a.Frame().Position, b.Frame().Position)

	for i := 0; i < 30; i++ {
		a.Orbit().Rotate(40, 10, 18)
		a.Orbit().Zoom(3)
		a.Orbit().Pan(5, 5, 18)
		a.Tick(dt)
		b.Tick(dt)
	}
	assert.Equal(t, b.Frame().Position, a.Frame().Position)
	assert.Equal(t, b.Frame().Target, a.Frame().Target)
}

func TestOrbitInputDroppedDuringTransition(t *testing.T) {
	a, _ := newTestStage(t)
	b, _ := newTestStage(t)
	for _, s := range []*Stage{a, b} {
		s.SetSection(choreo.LostFocus)
		s.Tick(dt)
	}
	a.Orbit().Rotate(100, 0, 18)
	for i := 0; i < 10; i++ {
		a.Tick(dt)
		b.Tick(dt)
	}
	assert.Equal(t, b.Frame().Position, a.Frame().Position)
}

func TestOrbitTakesOverAfterArrival(t *testing.T) {
	s, _ := newTestStage(t)
	s.SetSection(choreo.LostFocus)
	tickUntilArrived(t, s)
	arrivedAt := s.Frame().Position

	s.Orbit().Rotate(9, 0, 18)
	for i := 0; i < 60; i++ {
		s.Tick(dt)
		require.True(t, s.Frame().Arrived)
	}
	f := s.Frame()
	assert.Greater(t, f.Position.DistanceTo(arrivedAt), quarkgl.Scalar(1))
	assert.InDelta(t, arrivedAt.DistanceTo(f.Target), f.Position.DistanceTo(f.Target), 1e-2)
}

func TestProjectsHandsCameraToOrbit(t *testing.T) {
	s, _ := newTestStage(t)
	s.SetSection(choreo.Projects)
	s.Tick(dt)
	require.True(t, s.Frame().Arrived)

	s.Orbit().Zoom(30)
	for i := 0; i < 120; i++ {
		s.Tick(dt)
	}
	f := s.Frame()
	assert.InDelta(t, float64(MinDistance), float64(f.Position.DistanceTo(f.Target)), 0.5)
}

func TestHomeContactHomeThroughStage(t *testing.T) {
	s, _ := newTestStage(t)
	tickUntilArrived(t, s)

	s.SetSection(choreo.Contact)
	s.Tick(dt)
	tickUntilArrived(t, s)
	assert.Less(t, s.Frame().Target.DistanceTo(quarkgl.V3(6, 0, 0)), choreo.ArrivalEpsilon)

	s.SetSection(choreo.Home)
	s.Tick(dt)
	tickUntilArrived(t, s)
	assert.Less(t, s.Frame().Target.DistanceTo(quarkgl.V3(0, 0, 0)), choreo.ArrivalEpsilon)
}

func TestSetParticleCount(t *testing.T) {
	s, _ := newTestStage(t)
	s.SetParticleCount(0)
	s.Tick(dt)
	assert.True(t, s.Ready())
}

func TestWireframeToggle(t *testing.T) {
	s, surf := newTestStage(t)
	assert.False(t, s.Wireframe())

	s.SetWireframe(true)
	assert.True(t, s.Wireframe())
	s.Tick(dt)
	assert.Equal(t, 1, surf.presents)

	s.SetWireframe(false)
	assert.False(t, s.Wireframe())
}

func TestCustomTableFallsBackToHome(t *testing.T) {
	home := choreo.Target{Position: quarkgl.V3(0, 10, -20), LookAt: quarkgl.V3(1, 0, 0)}
	table, err := choreo.NewTable(map[choreo.Section]choreo.Target{choreo.Home: home})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(7))
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	opts.Table = &table
	opts.Initial = choreo.LostFocus
	s, err := New(newFakeSurface(32, 18), opts)
	require.NoError(t, err)

	tickUntilArrived(t, s)
	f := s.Frame()
	assert.Equal(t, choreo.LostFocus, f.Section)
	assert.InDelta(t, 0, quarkgl.Len(f.Position.Sub(home.Position)), 0.1)
	assert.InDelta(t, 0, quarkgl.Len(f.Target.Sub(home.LookAt)), 0.1)
}

func TestLostFocusFadesBackdrop(t *testing.T) {
	s, _ := newTestStage(t)
	s.SetSection(choreo.LostFocus)
	for i := 0; i < 90; i++ {
		s.Tick(dt)
	}
	assert.Equal(t, quarkgl.Scalar(1), s.chain.Backdrop.Amount)

	s.SetSection(choreo.Home)
	s.Tick(dt)
	assert.Less(t, s.chain.Backdrop.Amount, quarkgl.Scalar(1))
	for i := 0; i < 90; i++ {
		s.Tick(dt)
	}
	assert.False(t, s.chain.Backdrop.Active())
}

func TestPendingSection(t *testing.T) {
	s, _ := newTestStage(t)
	s.SetSection(choreo.Contact)
	assert.Equal(t, choreo.Contact, s.Pending())
	assert.Equal(t, choreo.Home, s.Section())
	s.Tick(dt)
	assert.Equal(t, choreo.Contact, s.Section())
}
