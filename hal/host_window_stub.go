//go:build !cgo

package hal

import "log/slog"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
	TPS    int
	Logger *slog.Logger
}

func RunWindow(_ WindowConfig, _ NewApp) error {
	return ErrNoWindow
}

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}

func (p *hostPointer) poll() {}
