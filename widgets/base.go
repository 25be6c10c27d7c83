// Package widgets provides terminal controls that implement the binding
// capability interfaces.
package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/runtime"
)

// Base provides common functionality for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	id          ulid.ULID
	bounds      runtime.Rect
	focused     bool
	disabled    bool
	hidden      bool
	needsRender bool
}

// ID returns the widget identifier, assigned on first use.
func (b *Base) ID() ulid.ULID {
	if b.id == (ulid.ULID{}) {
		b.id = ulid.Make()
	}
	return b.id
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	if b.bounds != bounds {
		b.bounds = bounds
		b.needsRender = true
	}
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// CanFocus returns false by default.
func (b *Base) CanFocus() bool {
	return false
}

// Focus marks the widget as focused.
func (b *Base) Focus() {
	b.focused = true
	b.needsRender = true
}

// Blur marks the widget as unfocused.
func (b *Base) Blur() {
	b.focused = false
	b.needsRender = true
}

// IsFocused returns whether the widget is focused.
func (b *Base) IsFocused() bool {
	return b.focused
}

// Enabled reports whether the widget accepts input.
func (b *Base) Enabled() bool {
	return !b.disabled
}

// SetEnabled enables or disables input.
func (b *Base) SetEnabled(enabled bool) {
	if b.disabled == !enabled {
		return
	}
	b.disabled = !enabled
	b.needsRender = true
}

// Visible reports whether the widget is drawn.
func (b *Base) Visible() bool {
	return !b.hidden
}

// SetVisible shows or hides the widget. Hidden widgets draw nothing and
// take no input.
func (b *Base) SetVisible(visible bool) {
	if b.hidden == !visible {
		return
	}
	b.hidden = !visible
	b.needsRender = true
}

// Invalidate marks the widget as needing a render pass.
func (b *Base) Invalidate() {
	b.needsRender = true
}

// NeedsRender reports whether the widget needs to re-render.
func (b *Base) NeedsRender() bool {
	return b.needsRender
}

// ClearInvalidation clears the render-needed flag.
func (b *Base) ClearInvalidation() {
	b.needsRender = false
}

// interactive reports whether the widget should react to input.
func (b *Base) interactive() bool {
	return b.focused && !b.disabled && !b.hidden
}

// drawable reports whether the widget has something to draw into.
func (b *Base) drawable() bool {
	return !b.hidden && !b.bounds.Empty()
}

// activated reports whether msg presses the control: space or Enter while
// focused, or a left click inside the bounds.
func (b *Base) activated(msg runtime.Message) bool {
	if b.disabled || b.hidden {
		return false
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		return b.focused && (m.Key == tcell.KeyEnter || m.IsRune(' '))
	case runtime.MouseMsg:
		return m.Button == runtime.MouseLeft && m.Action == runtime.MousePress && b.bounds.Contains(m.X, m.Y)
	}
	return false
}

// FocusableBase extends Base for focusable widgets.
type FocusableBase struct {
	Base
}

// CanFocus returns true while the widget is visible and enabled.
func (f *FocusableBase) CanFocus() bool {
	return !f.hidden && !f.disabled
}

// pickStyle picks the style for the widget's current state.
func (b *Base) pickStyle(normal, focus backend.Style) backend.Style {
	style := normal
	if b.focused {
		style = focus
	}
	if b.disabled {
		style = style.Dim(true)
	}
	return style
}

// drawText draws text with wrapping inside bounds.
func drawText(buf *runtime.Buffer, bounds runtime.Rect, text string, style backend.Style) {
	x := bounds.X
	y := bounds.Y
	maxX := bounds.X + bounds.Width
	maxY := bounds.Y + bounds.Height

	for _, r := range text {
		if r == '\n' {
			x = bounds.X
			y++
			if y >= maxY {
				break
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if x+w > maxX {
			x = bounds.X
			y++
			if y >= maxY {
				break
			}
		}
		buf.SetString(x, y, string(r), style)
		x += w
	}
}

// truncateString truncates a string to fit within maxWidth cells.
// Adds "..." if truncated.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// writePadded writes text clipped to width and pads the rest of the row.
func writePadded(buf *runtime.Buffer, x, y, width int, text string, style backend.Style) {
	if buf == nil || width <= 0 {
		return
	}
	used := buf.SetString(x, y, truncateString(text, width), style)
	if pad := width - used; pad > 0 {
		buf.Fill(runtime.Rect{X: x + used, Y: y, Width: pad, Height: 1}, ' ', style)
	}
}
