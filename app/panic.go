package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"
)

// ErrFramePanic wraps a panic recovered while running a frame.
var ErrFramePanic = errors.New("app: frame panicked")

// recoverFrame turns a panic in Step into an error, logs the stack and
// paints it on the framebuffer so a windowed run shows what happened.
func (a *app) recoverFrame(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := string(debug.Stack())
	a.log.Error("frame panicked", "frame", a.frame, "panic", v, "stack", stack)
	a.paintPanic(v, stack)
	*err = fmt.Errorf("%w: frame %d: %v", ErrFramePanic, a.frame, v)
}

func (a *app) paintPanic(v any, stack string) {
	fb := a.fb
	if fb == nil {
		return
	}
	fb.ClearRGB(0x20, 0x08, 0x08)
	d := &fbDisplayer{fb: fb}

	lines := []string{"station panic:", fmt.Sprintf("frame: %d", a.frame), fmt.Sprintf("panic: %v", v)}
	for _, line := range strings.Split(stack, "\n") {
		if line != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	_, glyphW := tinyfont.LineWidth(hudFont, "0")
	cols := 1
	if glyphW > 0 {
		cols = (fb.Width() - 2*hudMargin) / int(glyphW)
	}
	if cols < 1 {
		cols = 1
	}
	fg := color.RGBA{R: 0xFF, G: 0xD0, B: 0xD0, A: 0xFF}
	y := hudMargin + hudLineHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, hudFont, hudMargin, int16(y), chunk, fg)
			y += hudLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
