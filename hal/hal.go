package hal

import (
	"errors"
	"log/slog"
	"time"
)

var (
	// ErrQuit is returned by an App step to end a run cleanly.
	ErrQuit = errors.New("hal: quit")

	// ErrNoWindow is returned by RunWindow in builds without a window backend.
	ErrNoWindow = errors.New("hal: window mode requires cgo (build/run with CGO_ENABLED=1)")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyHome
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown
// and the typed Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerButton identifies the button held during a drag.
type PointerButton uint8

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
)

// PointerEvent is a drag of DX, DY pixels with Button held, or a wheel
// movement of Wheel steps (positive away from the user).
type PointerEvent struct {
	Button PointerButton
	DX, DY float32
	Wheel  float32
}

// Pointer provides mouse or touch events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() *slog.Logger
	Display() Display
	Input() Input
}

// App is driven by a runner: Step once per tick with the tick length, Close
// once when the run ends.
type App interface {
	Step(dt time.Duration) error
	Close() error
}

// NewApp builds an App on top of a HAL.
type NewApp func(HAL) (App, error)
