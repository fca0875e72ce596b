package app

import (
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"station/hal"
	"station/scene/choreo"
)

var (
	hudFont     = &tinyfont.TomThumb
	hudActive   = color.RGBA{R: 0xE0, G: 0xF0, B: 0xFF, A: 0xFF}
	hudInactive = color.RGBA{R: 0x70, G: 0x80, B: 0x90, A: 0xFF}
)

const (
	hudMargin     = 4
	hudLineHeight = 7
)

const hudHelp = "1-4 sections  drag orbit  right-drag pan  wheel zoom  x wire  esc quit"

// hud draws the section bar and key help over the frame.
type hud struct {
	fb      hal.Framebuffer
	enabled bool
	ready   bool
	section choreo.Section
}

func newHUD(fb hal.Framebuffer, enabled bool) *hud {
	return &hud{fb: fb, enabled: enabled}
}

func (h *hud) draw() {
	if h == nil || !h.enabled || h.fb == nil || h.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	d := &fbDisplayer{fb: h.fb}

	x := int16(hudMargin)
	y := int16(hudMargin + hudLineHeight)
	for i, s := range choreo.Sections {
		c := hudInactive
		if s == h.section {
			c = hudActive
		}
		label := string(rune('1'+i)) + " " + strings.ToUpper(s.String())
		tinyfont.WriteLine(d, hudFont, x, y, label, c)
		_, w := tinyfont.LineWidth(hudFont, label)
		x += int16(w) + 3*hudMargin
	}

	if !h.ready {
		tinyfont.WriteLine(d, hudFont, hudMargin, y+hudLineHeight, "loading", hudInactive)
	}
	bottom := int16(h.fb.Height() - hudMargin)
	tinyfont.WriteLine(d, hudFont, hudMargin, bottom, hudHelp, hudInactive)
}

// fbDisplayer adapts an RGBA8888 framebuffer to drivers.Displayer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *fbDisplayer) Display() error { return nil }
