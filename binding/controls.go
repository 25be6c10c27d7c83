package binding

import "github.com/odvcencio/furry-binder/scroll"

// Capability interfaces implemented by controls. A binding asserts the
// capability it needs at Connect time. Every On* registration returns a
// function that removes the listener.

// TextDisplay shows a string.
type TextDisplay interface {
	Text() string
	SetText(text string)
}

// TextControl is an editable TextDisplay.
type TextControl interface {
	TextDisplay
	OnTextChanged(fn func(text string)) (remove func())
}

// CheckControl is a two-state control.
type CheckControl interface {
	Checked() bool
	SetChecked(checked bool)
	OnCheckedChanged(fn func(checked bool)) (remove func())
}

// EnableControl can be enabled and disabled.
type EnableControl interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// VisibleControl can be shown and hidden.
type VisibleControl interface {
	Visible() bool
	SetVisible(visible bool)
}

// ClickControl reports activation.
type ClickControl interface {
	OnClick(fn func()) (remove func())
}

// RangeControl is a continuous control over [min, max] quantized to step.
// Implementations may reject values outside the range or off the step grid.
type RangeControl interface {
	Value() float64
	SetValue(v float64)
	Range() (min, max float64)
	SetRange(min, max float64)
	Step() float64
	OnValueChanged(fn func(v float64)) (remove func())
}

// GroupControl is a set of checkable buttons addressed by id.
type GroupControl interface {
	CheckedIDs() []int
	Check(id int)
	Uncheck(id int)
	ClearChecked()
	SetSingleSelection(single bool)
	OnButtonChecked(fn func(id int, checked bool)) (remove func())
}

// ChoiceControl is an editable dropdown: a text field with a list of labels.
type ChoiceControl interface {
	TextDisplay
	SetOptions(labels []string)
	OnItemChosen(fn func(label string)) (remove func())
}

// SelectControl selects one item of a list by index.
type SelectControl interface {
	SetOptions(labels []string)
	Selected() int
	Select(index int)
	OnSelected(fn func(index int)) (remove func())
}

// ItemSource feeds rows to a ListControl. BindItem is called whenever a
// visible row needs content; binder is owned by the row and reused.
type ItemSource interface {
	ItemCount() int
	BindItem(binder *Binder, row TextDisplay, index int)
}

// ListControl is a windowed list view that accepts incremental updates.
type ListControl interface {
	scroll.Controller
	SetSource(src ItemSource)
	NotifyDataSetChanged()
	NotifyItemRangeInserted(position, count int)
	NotifyItemRangeRemoved(position, count int)
	NotifyItemMoved(from, to int)
	NotifyItemRangeChanged(position, count int)
}

// GestureRecognizer describes the gestures a surface should recognize.
// Settled fires once when a drag ends; Swiped fires when a swipe completes.
type GestureRecognizer struct {
	Drag    bool
	Swipe   bool
	Settled func(from, to int)
	Swiped  func(index int)
}

// GestureSurface recognizes drag and swipe gestures on list rows.
type GestureSurface interface {
	AttachGestures(r *GestureRecognizer) (detach func())
}

// UndoPresenter shows a transient undo affordance. It calls undo if the user
// takes the action and dismissed when the affordance goes away, in either
// case. The display duration belongs to the presenter.
type UndoPresenter interface {
	ShowUndo(label, action string, undo func(), dismissed func())
}
