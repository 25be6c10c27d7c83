package widgets

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/runtime"
)

func key(k tcell.Key) runtime.KeyMsg { return runtime.KeyMsg{Key: k} }
func char(r rune) runtime.KeyMsg     { return runtime.KeyMsg{Key: tcell.KeyRune, Rune: r} }

func press(x, y int) runtime.MouseMsg {
	return runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MousePress}
}

func move(x, y int) runtime.MouseMsg {
	return runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MouseMove}
}

func release(x, y int) runtime.MouseMsg {
	return runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MouseRelease}
}

// draw lays w out at the origin and renders it into a fresh buffer.
func draw(w runtime.Widget, width, height int) *runtime.Buffer {
	buf := runtime.NewBuffer(width, height)
	w.Layout(runtime.Rect{Width: width, Height: height})
	w.Render(runtime.RenderContext{Buffer: buf})
	return buf
}

func line(buf *runtime.Buffer, y int) string {
	return strings.TrimRight(buf.Line(y), " ")
}

type fakeCall struct {
	delay    time.Duration
	fn       func()
	disposed bool
}

func (c *fakeCall) Dispose() { c.disposed = true }

// fakeTimer holds After calls until fire.
type fakeTimer struct {
	calls []*fakeCall
}

func (f *fakeTimer) After(delay time.Duration, fn func()) lifecycle.Disposable {
	c := &fakeCall{delay: delay, fn: fn}
	f.calls = append(f.calls, c)
	return c
}

// fire runs every call that is still armed.
func (f *fakeTimer) fire() {
	calls := f.calls
	f.calls = nil
	for _, c := range calls {
		if !c.disposed {
			c.disposed = true
			c.fn()
		}
	}
}
