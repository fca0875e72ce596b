// Package app connects a HAL to the scene stage: input mapping, the HUD
// overlay, scripted section changes and trajectory recording.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"station/hal"
	"station/scene/choreo"
	"station/scene/quarkgl"
	"station/scene/stage"
	"station/scene/trace"
)

// Config selects what the app builds.
type Config struct {
	Particles int
	// Seed feeds the particle field; zero picks a seed from the clock.
	Seed int64
	TPS  int
	HUD  bool

	Section  choreo.Section
	Schedule []Cue

	// TracePath, when set, receives the camera trajectory on Close.
	TracePath  string
	TraceEvery int
}

type app struct {
	log *slog.Logger
	cfg Config

	fb    hal.Framebuffer
	kbd   <-chan hal.KeyEvent
	ptr   <-chan hal.PointerEvent
	stage *stage.Stage
	hud   *hud
	rec   *trace.Recorder

	frame uint64
	cue   int
}

// New returns a constructor for the station app.
func New(cfg Config) hal.NewApp {
	return func(h hal.HAL) (hal.App, error) {
		return newApp(h, cfg)
	}
}

func newApp(h hal.HAL, cfg Config) (*app, error) {
	log := h.Logger()
	if log == nil {
		log = slog.Default()
	}
	a := &app{log: log, cfg: cfg}

	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if k := in.Keyboard(); k != nil {
			a.kbd = k.Events()
		}
		if p := in.Pointer(); p != nil {
			a.ptr = p.Events()
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := stage.DefaultOptions()
	opts.Particles = cfg.Particles
	opts.Rand = rand.New(rand.NewSource(seed))
	if cfg.TPS > 0 {
		opts.TPS = cfg.TPS
	}
	opts.Initial = cfg.Section
	opts.Logger = log

	a.hud = newHUD(a.fb, cfg.HUD)
	var surf stage.Surface
	if a.fb != nil {
		surf = &fbSurface{fb: a.fb, hud: a.hud, log: log}
	}
	st, err := stage.New(surf, opts)
	if err != nil {
		return nil, fmt.Errorf("build stage: %w", err)
	}
	a.stage = st
	a.hud.section = cfg.Section
	st.OnReady(func() {
		a.hud.ready = true
		log.Info("station ready", "section", cfg.Section.String(), "seed", seed)
	})

	if cfg.TracePath != "" {
		a.rec = trace.NewRecorder(cfg.TraceEvery)
	}
	return a, nil
}

// Step drains input, applies due cues and runs one frame.
func (a *app) Step(dt time.Duration) (err error) {
	defer a.recoverFrame(&err)

	if err := a.drainInput(); err != nil {
		return err
	}
	for a.cue < len(a.cfg.Schedule) && a.cfg.Schedule[a.cue].Frame <= a.frame {
		a.setSection(a.cfg.Schedule[a.cue].Section)
		a.cue++
	}

	a.stage.Tick(quarkgl.Scalar(dt.Seconds()))
	a.frame++
	a.hud.section = a.stage.Section()
	if a.rec != nil {
		a.rec.Record(a.stage.Frame())
	}
	return nil
}

// Close writes the trace, if one was requested.
func (a *app) Close() error {
	if a.rec == nil {
		return nil
	}
	if err := a.rec.Save(a.cfg.TracePath); err != nil {
		return err
	}
	a.log.Info("trace written", "path", a.cfg.TracePath, "samples", len(a.rec.Trace().Samples))
	return nil
}

func (a *app) setSection(s choreo.Section) {
	a.log.Debug("section selected", "section", s.String(), "frame", a.frame)
	a.stage.SetSection(s)
}

// fbSurface presents stage frames through a HAL framebuffer, drawing the
// HUD on top first.
type fbSurface struct {
	fb  hal.Framebuffer
	hud *hud
	log *slog.Logger
}

func (s *fbSurface) Width() int       { return s.fb.Width() }
func (s *fbSurface) Height() int      { return s.fb.Height() }
func (s *fbSurface) Buffer() []byte   { return s.fb.Buffer() }
func (s *fbSurface) StrideBytes() int { return s.fb.StrideBytes() }

func (s *fbSurface) Present() {
	s.hud.draw()
	if err := s.fb.Present(); err != nil && !errors.Is(err, hal.ErrQuit) {
		s.log.Warn("present failed", "err", err)
	}
}
