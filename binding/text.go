package binding

import (
	"strconv"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// TextBinding displays a string value. It is always OneWay.
type TextBinding struct {
	Base[string]
}

// NewTextBinding creates an unconnected text binding.
func NewTextBinding(data state.Readable[string]) *TextBinding {
	return &TextBinding{Base: newBase("text", data, OneWay, state.EqualComparable[string])}
}

// Connect attaches a TextDisplay.
func (b *TextBinding) Connect(scope *lifecycle.Scope, control any) *TextBinding {
	view := mustControl[TextDisplay]("text", control)
	b.connect(scope, view, func(v string) {
		if view.Text() != v {
			view.SetText(v)
		}
	})
	return b
}

// BindText connects view to data on the binder's default scope.
func BindText(binder *Binder, view TextDisplay, data state.Readable[string]) *Binder {
	return binder.Add(NewTextBinding(data).Connect(binder.RequireScope(), view))
}

// EditTextBinding synchronizes an editable text control with a string value.
type EditTextBinding struct {
	Base[string]
}

// NewEditTextBinding creates an unconnected edit binding.
func NewEditTextBinding(data state.Readable[string], mode Mode) *EditTextBinding {
	return &EditTextBinding{Base: newBase("edit-text", data, mode, state.EqualComparable[string])}
}

// Connect attaches a TextControl.
func (b *EditTextBinding) Connect(scope *lifecycle.Scope, control any) *EditTextBinding {
	view := mustControl[TextControl]("edit-text", control)
	ok := b.connect(scope, view, func(v string) {
		if view.Text() != v {
			view.SetText(v)
		}
	})
	if !ok || !b.mode.ToData() {
		return b
	}
	b.OnDispose(view.OnTextChanged(func(text string) {
		b.Write(text)
	}))
	if b.mode == OneWayToSource {
		b.Write(view.Text())
	}
	return b
}

// BindEditText connects view to data in the given mode.
func BindEditText(binder *Binder, view TextControl, data state.Writable[string], mode Mode) *Binder {
	return binder.Add(NewEditTextBinding(data, mode).Connect(binder.RequireScope(), view))
}

// IntText exposes an int value as decimal text. Text that does not parse
// maps back to the current value, so typing garbage never changes the data.
func IntText(data state.Writable[int]) *state.Converted[int, string] {
	return state.NewConverted(data, strconv.Itoa, func(text string) int {
		n, err := strconv.Atoi(text)
		if err != nil {
			return data.Get()
		}
		return n
	})
}

// FloatText exposes a float value as text with the given precision.
func FloatText(data state.Writable[float64], precision int) *state.Converted[float64, string] {
	format := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	return state.NewConverted(data, format, func(text string) float64 {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return data.Get()
		}
		return v
	})
}

// BindEditInt connects an editable text control to an int value.
func BindEditInt(binder *Binder, view TextControl, data state.Writable[int], mode Mode) *Binder {
	return BindEditText(binder, view, IntText(data), mode)
}
