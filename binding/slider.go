package binding

import (
	"math"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// FitRange clamps v into the range spanned by a and b and snaps it to the
// step grid anchored at the lower bound. A step of zero disables snapping.
func FitRange(v, a, b, step float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	v = math.Min(math.Max(v, lo), hi)
	if step <= 0 {
		return v
	}
	v = lo + step*math.Round((v-lo)/step)
	for v > hi {
		v -= step
	}
	return math.Max(v, lo)
}

// SliderBinding synchronizes a RangeControl with a float value. Incoming
// values are clamped to the control's range and snapped to its step before
// they reach the control, and the range itself may follow observable bounds.
type SliderBinding struct {
	Base[float64]
	min state.Readable[float64]
	max state.Readable[float64]
}

// NewSliderBinding creates an unconnected slider binding.
func NewSliderBinding(data state.Readable[float64], mode Mode) *SliderBinding {
	return &SliderBinding{Base: newBase("slider", data, mode, state.EqualComparable[float64])}
}

// WithRange makes the control's bounds follow min and max. Either may be nil.
func (b *SliderBinding) WithRange(min, max state.Readable[float64]) *SliderBinding {
	b.min, b.max = min, max
	return b
}

// Connect attaches a RangeControl.
func (b *SliderBinding) Connect(scope *lifecycle.Scope, control any) *SliderBinding {
	view := mustControl[RangeControl]("slider", control)
	if b.min != nil || b.max != nil {
		b.setRange(view)
	}
	ok := b.connect(scope, view, func(v float64) {
		lo, hi := view.Range()
		t := FitRange(v, lo, hi, view.Step())
		if view.Value() != t {
			view.SetValue(t)
		}
	})
	if !ok {
		return b
	}
	for _, bound := range []state.Readable[float64]{b.min, b.max} {
		if bound != nil {
			b.OnDispose(state.Observe(scope, bound, func(float64) {
				if !b.disposed {
					b.setRange(view)
				}
			}).Dispose)
		}
	}
	if b.mode.ToData() {
		b.OnDispose(view.OnValueChanged(func(v float64) {
			b.Write(v)
		}))
		if b.mode == OneWayToSource {
			b.Write(view.Value())
		}
	}
	return b
}

// setRange applies the observable bounds. The current value is brought
// inside the new range before the range changes so the control never holds
// an out-of-range value.
func (b *SliderBinding) setRange(view RangeControl) {
	lo, hi := view.Range()
	if b.min != nil {
		lo = b.min.Get()
	}
	if b.max != nil {
		hi = b.max.Get()
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	v := FitRange(view.Value(), lo, hi, view.Step())
	if v != view.Value() {
		view.SetValue(v)
	}
	view.SetRange(lo, hi)
}

// BindSlider connects view to data.
func BindSlider(binder *Binder, view RangeControl, data state.Readable[float64], mode Mode) *Binder {
	return binder.Add(NewSliderBinding(data, mode).Connect(binder.RequireScope(), view))
}
