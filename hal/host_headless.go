package hal

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	// Ticks stops the run after N ticks (0 = run until cancelled).
	Ticks uint64
	// Fast steps without waiting for the ticker; dt is still 1/Hz.
	Fast bool
	// Snapshot, when set, receives the last presented frame as PNG.
	Snapshot string
	Logger   *slog.Logger
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp NewApp) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(HostConfig{Width: cfg.Width, Height: cfg.Height, Logger: cfg.Logger})
	app, err := newApp(h)
	if err != nil {
		return err
	}
	defer func() {
		if cfg.Snapshot != "" {
			err = errors.Join(err, writeSnapshot(h.fb, cfg.Snapshot))
		}
		err = errors.Join(err, app.Close())
	}()

	var tick <-chan time.Time
	if !cfg.Fast {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	var n uint64
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := app.Step(d); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		n++
		if cfg.Ticks > 0 && n >= cfg.Ticks {
			h.log.Debug("headless run complete", "ticks", n)
			return nil
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, fb.image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
