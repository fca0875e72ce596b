// Package stage composes the scene and runs the per-frame pipeline.
//
// Each Tick runs, in order:
//
//  1. latch the section set since the previous tick
//  2. Choreographer.Update writes the camera while a transition is running
//  3. the section's orbit policy is applied
//  4. OrbitController.Update reads the camera and may write it again
//  5. the particle clock advances and the lost-focus backdrop fades
//  6. meshes and points render into the HDR target
//  7. tone mapping, the effect chain and the backdrop run
//  8. the frame is encoded into the surface and presented
//
// The choreographer always writes before the orbit controller, so the orbit
// controller's write is the one that survives the frame.
package stage

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"

	"station/scene/choreo"
	"station/scene/model"
	"station/scene/particles"
	"station/scene/postfx"
	"station/scene/quarkgl"
)

// ErrNoSurface is returned by New when there is nothing to render into.
var ErrNoSurface = errors.New("stage: no render surface")

// Surface is an RGBA8 frame the stage renders into.
type Surface interface {
	Width() int
	Height() int
	// Buffer holds Height rows of StrideBytes bytes, 4 bytes per pixel.
	Buffer() []byte
	StrideBytes() int
	// Present publishes the buffer once a frame is complete.
	Present()
}

// Options configures a Stage.
type Options struct {
	// Particles is the size of the particle field; zero draws no particles.
	Particles int
	// Rand seeds the particle field. Nil uses a fixed seed.
	Rand *rand.Rand
	// TPS is the tick rate the orbit damping is tuned for.
	TPS int
	// Table overrides the per-section camera targets.
	Table   *choreo.Table
	Initial choreo.Section
	Logger  *slog.Logger
}

// DefaultOptions returns the stock scene configuration.
func DefaultOptions() Options {
	return Options{
		Particles: particles.DefaultCount,
		TPS:       60,
		Initial:   choreo.Home,
	}
}

// Orbit limits.
const (
	MinDistance quarkgl.Scalar = 5
	MaxDistance quarkgl.Scalar = 50
)

// Stage owns the scene and everything that updates it each frame.
type Stage struct {
	log     *slog.Logger
	surface Surface

	scene    *quarkgl.Scene
	renderer *quarkgl.Renderer
	hdr      *quarkgl.FloatTarget
	chain    *postfx.Chain
	encoder  *postfx.Encoder

	choreo *choreo.Choreographer
	orbit  *quarkgl.OrbitController
	field  *particles.Field

	pending atomic.Uint32
	section choreo.Section
	frame   uint64
	elapsed quarkgl.Scalar

	mu      sync.Mutex
	ready   bool
	onReady []func()
}

// New builds the scene for surface. It fails with ErrNoSurface when the
// surface is nil or has no pixels.
func New(surface Surface, opts Options) (*Stage, error) {
	if surface == nil || surface.Width() <= 0 || surface.Height() <= 0 {
		return nil, ErrNoSurface
	}
	w, h := surface.Width(), surface.Height()
	if surface.StrideBytes() < w*4 || len(surface.Buffer()) < surface.StrideBytes()*h {
		return nil, ErrNoSurface
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	table := choreo.DefaultTable()
	if opts.Table != nil {
		table = *opts.Table
	}

	s := &Stage{
		log:      log.With("component", "stage"),
		surface:  surface,
		scene:    newScene(),
		renderer: quarkgl.NewRenderer(w, h, true),
		hdr:      quarkgl.NewFloatTarget(w, h),
		chain:    postfx.NewChain(w, h),
		encoder:  postfx.NewEncoder(),
		choreo:   choreo.New(table, opts.Initial),
		orbit:    quarkgl.NewOrbitController(opts.TPS, quarkgl.DefaultDampingFactor),
		field:    particles.NewField(opts.Particles, particles.DefaultShell, opts.Rand),
		section:  opts.Initial,
	}
	s.orbit.MinRadius = MinDistance
	s.orbit.MaxRadius = MaxDistance
	s.pending.Store(uint32(opts.Initial))

	for _, m := range model.Station() {
		s.scene.AddMesh(m)
	}
	for _, m := range model.Modules() {
		s.scene.AddMesh(m)
	}
	s.scene.AddPoints(s.field.Shader())

	s.log.Debug("scene built",
		"width", w, "height", h,
		"meshes", s.scene.MeshCount(),
		"particles", s.field.Count(),
	)
	return s, nil
}

// SetSection selects the active section. It takes effect on the next Tick
// and is safe to call from any goroutine.
func (s *Stage) SetSection(sec choreo.Section) {
	s.pending.Store(uint32(sec))
}

// Section returns the section the last Tick ran with.
func (s *Stage) Section() choreo.Section { return s.section }

// Pending returns the section the next Tick will use.
func (s *Stage) Pending() choreo.Section { return choreo.Section(s.pending.Load()) }

// OnReady registers fn to run once the first frame has been presented. If
// that already happened fn runs immediately.
func (s *Stage) OnReady(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	if s.ready {
		s.mu.Unlock()
		fn()
		return
	}
	s.onReady = append(s.onReady, fn)
	s.mu.Unlock()
}

// Ready reports whether a frame has been presented.
func (s *Stage) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Orbit returns the orbit controller for input wiring.
func (s *Stage) Orbit() *quarkgl.OrbitController { return s.orbit }

// SetParticleCount resizes the particle field, regenerating it only when the
// count changes.
func (s *Stage) SetParticleCount(n int) {
	if s.field.SetCount(n) {
		s.log.Debug("particles regenerated", "count", s.field.Count())
	}
}

// Wireframe reports whether meshes are drawn as edges only.
func (s *Stage) Wireframe() bool { return s.renderer.Mode == quarkgl.RenderWireframe }

// SetWireframe switches meshes between solid and edge-only drawing. Call it
// from the goroutine that runs Tick.
func (s *Stage) SetWireframe(on bool) {
	mode := quarkgl.RenderSolidFlat
	if on {
		mode = quarkgl.RenderWireframe
	}
	s.renderer.SetRenderMode(mode)
}

// Tick advances the scene by dt seconds and presents one frame.
func (s *Stage) Tick(dt quarkgl.Scalar) {
	sec := choreo.Section(s.pending.Load())
	if sec != s.section {
		s.log.Debug("section changed", "from", s.section.String(), "to", sec.String(), "frame", s.frame)
		s.section = sec
	}

	cam := &s.scene.Camera
	s.choreo.Update(sec, cam)
	choreo.Policy(sec).Apply(s.orbit)
	s.orbit.Suspended = !s.choreo.Arrived()
	s.orbit.Update(cam, dt)

	s.field.Advance(dt)
	s.chain.Backdrop.Fade(sec == choreo.LostFocus, dt)
	if dt > 0 {
		s.elapsed += dt
	}

	s.renderer.Render(s.hdr, s.scene)
	out := s.chain.Apply(s.hdr)
	s.encoder.Encode(s.surface.Buffer(), s.surface.StrideBytes(), out)
	s.surface.Present()
	s.frame++

	s.markReady()
}

func (s *Stage) markReady() {
	s.mu.Lock()
	if s.ready {
		s.mu.Unlock()
		return
	}
	s.ready = true
	fns := s.onReady
	s.onReady = nil
	s.mu.Unlock()

	s.log.Info("scene ready", "frame", s.frame)
	for _, fn := range fns {
		fn()
	}
}
