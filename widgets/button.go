package widgets

import (
	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/runtime"
)

// Button triggers its click listeners on activation.
type Button struct {
	FocusableBase

	label      string
	style      backend.Style
	focusStyle backend.Style
	clicked    listeners[func()]
}

// NewButton creates a button.
func NewButton(label string) *Button {
	return &Button{
		label:      label,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Reverse(true),
	}
}

// Text returns the label.
func (b *Button) Text() string {
	return b.label
}

// SetText replaces the label.
func (b *Button) SetText(text string) {
	b.label = text
	b.Invalidate()
}

// OnClick registers a click listener.
func (b *Button) OnClick(fn func()) (remove func()) {
	return b.clicked.add(fn)
}

// Click activates the button unless it is disabled.
func (b *Button) Click() {
	if b.disabled {
		return
	}
	b.clicked.each(func(fn func()) { fn() })
}

// Render draws the button.
func (b *Button) Render(ctx runtime.RenderContext) {
	if !b.drawable() {
		return
	}
	writePadded(ctx.Buffer, b.bounds.X, b.bounds.Y, b.bounds.Width, "[ "+b.label+" ]", b.pickStyle(b.style, b.focusStyle))
}

// HandleMessage clicks on space, Enter or mouse press.
func (b *Button) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if b.activated(msg) {
		b.Click()
		return runtime.Handled()
	}
	return runtime.Unhandled()
}
