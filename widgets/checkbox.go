package widgets

import (
	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/runtime"
)

// Checkbox is a labeled two-state control.
type Checkbox struct {
	FocusableBase

	label      string
	checked    bool
	style      backend.Style
	focusStyle backend.Style
	changed    listeners[func(bool)]
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		label:      label,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Reverse(true),
	}
}

// Text returns the label.
func (c *Checkbox) Text() string {
	return c.label
}

// SetText replaces the label.
func (c *Checkbox) SetText(text string) {
	c.label = text
	c.Invalidate()
}

// Checked reports the state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked updates the state and notifies listeners on change.
func (c *Checkbox) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}
	c.checked = checked
	c.Invalidate()
	c.changed.each(func(fn func(bool)) { fn(checked) })
}

// Toggle flips the state.
func (c *Checkbox) Toggle() {
	c.SetChecked(!c.checked)
}

// OnCheckedChanged registers a state listener.
func (c *Checkbox) OnCheckedChanged(fn func(checked bool)) (remove func()) {
	return c.changed.add(fn)
}

// Render draws the checkbox.
func (c *Checkbox) Render(ctx runtime.RenderContext) {
	if !c.drawable() {
		return
	}
	marker := "[ ] "
	if c.checked {
		marker = "[x] "
	}
	writePadded(ctx.Buffer, c.bounds.X, c.bounds.Y, c.bounds.Width, marker+c.label, c.pickStyle(c.style, c.focusStyle))
}

// HandleMessage toggles on space, Enter or click.
func (c *Checkbox) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if c.activated(msg) {
		c.Toggle()
		return runtime.Handled()
	}
	return runtime.Unhandled()
}
