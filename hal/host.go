package hal

import (
	"log/slog"
)

// HostConfig sizes the host framebuffer.
type HostConfig struct {
	Width  int
	Height int
	Logger *slog.Logger
}

type hostHAL struct {
	log *slog.Logger
	fb  *hostFramebuffer
	kbd *hostKeyboard
	ptr *hostPointer
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 480
	}
	if cfg.Height <= 0 {
		cfg.Height = 270
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &hostHAL{
		log: log,
		fb:  newHostFramebuffer(cfg.Width, cfg.Height),
		kbd: newHostKeyboard(),
		ptr: newHostPointer(),
	}
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func (h *hostHAL) Logger() *slog.Logger { return h.log }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd, ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type hostPointer struct {
	ch chan PointerEvent

	// Last cursor position while a button is held.
	lastX, lastY int
	dragging     bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// drag turns an absolute cursor position into a relative drag event.
func (p *hostPointer) drag(b PointerButton, x, y int) {
	if b == ButtonNone {
		p.dragging = false
		return
	}
	if !p.dragging {
		p.dragging = true
		p.lastX, p.lastY = x, y
		return
	}
	dx, dy := x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	p.emit(PointerEvent{Button: b, DX: float32(dx), DY: float32(dy)})
}
