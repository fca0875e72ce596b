package hal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
)

// halfBlock draws the top pixel as foreground and the bottom as background.
const halfBlock = '▀'

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	TPS int
	// Screen overrides the terminal screen; nil opens the controlling tty.
	Screen tcell.Screen
	Logger *slog.Logger
}

// RunTerminal renders the framebuffer into the terminal, two pixels per
// cell, sized to the terminal at startup. It blocks until ctx is done or the
// app returns ErrQuit.
func RunTerminal(ctx context.Context, cfg TerminalConfig, newApp NewApp) (err error) {
	if cfg.TPS <= 0 {
		cfg.TPS = 30
	}
	screen := cfg.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return err
		}
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	h := newHost(HostConfig{Width: cols, Height: rows * 2, Logger: cfg.Logger})
	app, err := newApp(h)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, app.Close()) }()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	d := time.Second / time.Duration(cfg.TPS)
	t := time.NewTicker(d)
	defer t.Stop()

	term := &termInput{h: h}
	pix := make([]byte, len(h.fb.front))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			term.handle(ev)
		case <-t.C:
			if err := app.Step(d); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			h.fb.snapshot(pix)
			drawHalfBlocks(screen, pix, h.fb.stride, cols, rows)
			screen.Show()
		}
	}
}

func drawHalfBlocks(screen tcell.Screen, pix []byte, stride, cols, rows int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			tr, tg, tb := rgbAt(pix, stride, x, 2*y)
			br, bg, bb := rgbAt(pix, stride, x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

// termInput maps terminal events onto the host keyboard and pointer.
type termInput struct {
	h *hostHAL
}

var termKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyEnter:  KeyEnter,
	tcell.KeyEscape: KeyEscape,
	tcell.KeyTab:    KeyTab,
	tcell.KeyHome:   KeyHome,
}

func (in *termInput) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			in.h.kbd.emit(KeyEvent{Press: true, Rune: ev.Rune()})
			return
		}
		if ev.Key() == tcell.KeyCtrlC {
			in.h.kbd.emit(KeyEvent{Code: KeyEscape, Press: true})
			return
		}
		if code, ok := termKeys[ev.Key()]; ok {
			in.h.kbd.emit(KeyEvent{Code: code, Press: true})
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		// Cells are two pixels tall.
		y *= 2
		btn := ev.Buttons()
		switch {
		case btn&tcell.WheelUp != 0:
			in.h.ptr.emit(PointerEvent{Wheel: 1})
		case btn&tcell.WheelDown != 0:
			in.h.ptr.emit(PointerEvent{Wheel: -1})
		case btn&tcell.Button1 != 0:
			in.h.ptr.drag(ButtonPrimary, x, y)
		case btn&tcell.Button2 != 0:
			in.h.ptr.drag(ButtonSecondary, x, y)
		default:
			in.h.ptr.drag(ButtonNone, x, y)
		}
	}
}
