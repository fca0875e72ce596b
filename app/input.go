package app

import (
	"station/hal"
	"station/scene/choreo"
	"station/scene/quarkgl"
)

// Keyboard orbit steps.
const (
	keyRotateFraction quarkgl.Scalar = 1.0 / 48
	keyZoomSteps      quarkgl.Scalar = 1
)

func (a *app) drainInput() error {
	for {
		select {
		case ev, ok := <-a.kbd:
			if !ok {
				a.kbd = nil
				continue
			}
			if err := a.handleKey(ev); err != nil {
				return err
			}
		case ev, ok := <-a.ptr:
			if !ok {
				a.ptr = nil
				continue
			}
			a.handlePointer(ev)
		default:
			return nil
		}
	}
}

func (a *app) viewportH() quarkgl.Scalar {
	if a.fb == nil {
		return 1
	}
	return quarkgl.Scalar(a.fb.Height())
}

func (a *app) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	orbit := a.stage.Orbit()
	h := a.viewportH()
	step := h * keyRotateFraction

	switch ev.Code {
	case hal.KeyEscape:
		return hal.ErrQuit
	case hal.KeyHome:
		a.setSection(choreo.Home)
	case hal.KeyTab:
		a.setSection(choreo.Sections[(int(a.stage.Pending())+1)%len(choreo.Sections)])
	case hal.KeyLeft:
		orbit.Rotate(-step, 0, h)
	case hal.KeyRight:
		orbit.Rotate(step, 0, h)
	case hal.KeyUp:
		orbit.Rotate(0, -step, h)
	case hal.KeyDown:
		orbit.Rotate(0, step, h)
	}

	switch ev.Rune {
	case '1', '2', '3', '4':
		a.setSection(choreo.Sections[ev.Rune-'1'])
	case '+', '=':
		orbit.Zoom(keyZoomSteps)
	case '-', '_':
		orbit.Zoom(-keyZoomSteps)
	case 'h':
		a.hud.enabled = !a.hud.enabled
	case 'x':
		a.stage.SetWireframe(!a.stage.Wireframe())
	case 'q':
		return hal.ErrQuit
	}
	return nil
}

func (a *app) handlePointer(ev hal.PointerEvent) {
	orbit := a.stage.Orbit()
	h := a.viewportH()
	if ev.Wheel != 0 {
		orbit.Zoom(quarkgl.Scalar(ev.Wheel))
	}
	switch ev.Button {
	case hal.ButtonPrimary:
		orbit.Rotate(quarkgl.Scalar(ev.DX), quarkgl.Scalar(ev.DY), h)
	case hal.ButtonSecondary:
		orbit.Pan(quarkgl.Scalar(ev.DX), quarkgl.Scalar(ev.DY), h)
	}
}
