package widgets

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/runtime"
)

// Slider picks a value in [min, max] in increments of step.
// Values outside the range are clamped.
type Slider struct {
	FocusableBase

	value, min, max, step float64
	style                 backend.Style
	focusStyle            backend.Style
	changed               listeners[func(float64)]
}

// NewSlider creates a slider over [min, max]. A non-positive step means 1.
func NewSlider(min, max, step float64) *Slider {
	if max < min {
		min, max = max, min
	}
	if step <= 0 {
		step = 1
	}
	return &Slider{
		value:      min,
		min:        min,
		max:        max,
		step:       step,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Reverse(true),
	}
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue clamps v into range and notifies listeners on change.
func (s *Slider) SetValue(v float64) {
	v = min(max(v, s.min), s.max)
	if v == s.value {
		return
	}
	s.value = v
	s.Invalidate()
	s.changed.each(func(fn func(float64)) { fn(v) })
}

// Range returns the bounds.
func (s *Slider) Range() (float64, float64) {
	return s.min, s.max
}

// SetRange replaces the bounds, clamping the current value.
func (s *Slider) SetRange(lo, hi float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.min, s.max = lo, hi
	s.SetValue(s.value)
	s.Invalidate()
}

// Step returns the increment.
func (s *Slider) Step() float64 {
	return s.step
}

// OnValueChanged registers a value listener.
func (s *Slider) OnValueChanged(fn func(v float64)) (remove func()) {
	return s.changed.add(fn)
}

// Render draws a track with a thumb and the numeric value.
func (s *Slider) Render(ctx runtime.RenderContext) {
	if !s.drawable() {
		return
	}
	label := " " + strconv.FormatFloat(s.value, 'f', -1, 64)
	track := s.bounds.Width - len(label) - 2
	if track < 1 {
		writePadded(ctx.Buffer, s.bounds.X, s.bounds.Y, s.bounds.Width, label, s.style)
		return
	}
	pos := 0
	if span := s.max - s.min; span > 0 {
		pos = int((s.value - s.min) / span * float64(track-1))
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(strings.Repeat("=", pos))
	sb.WriteByte('|')
	sb.WriteString(strings.Repeat("-", track-pos-1))
	sb.WriteByte(']')
	sb.WriteString(label)
	writePadded(ctx.Buffer, s.bounds.X, s.bounds.Y, s.bounds.Width, sb.String(), s.pickStyle(s.style, s.focusStyle))
}

// HandleMessage moves the thumb by one step with the arrow keys.
func (s *Slider) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !s.interactive() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}
	switch key.Key {
	case tcell.KeyLeft, tcell.KeyDown:
		s.SetValue(s.value - s.step)
	case tcell.KeyRight, tcell.KeyUp:
		s.SetValue(s.value + s.step)
	case tcell.KeyHome:
		s.SetValue(s.min)
	case tcell.KeyEnd:
		s.SetValue(s.max)
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}
