//go:build cgo

package hal

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// Scale multiplies the framebuffer size for the initial window size.
	Scale  int
	TPS    int
	Logger *slog.Logger
}

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard and mouse input. It blocks until the window closes or
// the app returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp NewApp) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	h := newHost(HostConfig{Width: cfg.Width, Height: cfg.Height, Logger: cfg.Logger})
	app, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, app: app, dt: time.Second / time.Duration(cfg.TPS)}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	h.log.Info("window opened", "width", h.fb.width, "height", h.fb.height, "tps", cfg.TPS)

	runErr := ebiten.RunGame(g)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	return errors.Join(runErr, app.Close())
}

type hostGame struct {
	h     *hostHAL
	app   App
	dt    time.Duration
	fbImg *ebiten.Image
	pix   []byte
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	if err := g.app.Step(g.dt); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.pix = make([]byte, len(fb.front))
	}
	fb.snapshot(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
