package binding

import (
	"fmt"
	"slices"

	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// DropdownBinding binds an editable dropdown to one value of a fixed item
// list, matching items by label. A label that maps to no item is treated
// as invalid input: it is logged and ignored, and the data keeps its value.
type DropdownBinding[T comparable] struct {
	Base[T]
	items   []T
	toLabel func(T) string
	toItem  func(string) (T, bool)
}

// NewDropdownBinding creates an unconnected dropdown binding. Labels default
// to fmt.Sprint of each item.
func NewDropdownBinding[T comparable](data state.Readable[T], items []T, mode Mode) *DropdownBinding[T] {
	b := &DropdownBinding[T]{
		Base:    newBase("dropdown", data, mode, state.EqualComparable[T]),
		items:   slices.Clone(items),
		toLabel: func(v T) string { return fmt.Sprint(v) },
	}
	b.toItem = b.lookup
	return b
}

// WithLabels overrides the label mapping. toItem may be nil to search items
// by toLabel.
func (b *DropdownBinding[T]) WithLabels(toLabel func(T) string, toItem func(string) (T, bool)) *DropdownBinding[T] {
	if toLabel != nil {
		b.toLabel = toLabel
	}
	if toItem != nil {
		b.toItem = toItem
	}
	return b
}

func (b *DropdownBinding[T]) lookup(label string) (T, bool) {
	for _, item := range b.items {
		if b.toLabel(item) == label {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Connect attaches a ChoiceControl and fills its options.
func (b *DropdownBinding[T]) Connect(scope *lifecycle.Scope, control any) *DropdownBinding[T] {
	view := mustControl[ChoiceControl]("dropdown", control)
	labels := make([]string, len(b.items))
	for i, item := range b.items {
		labels[i] = b.toLabel(item)
	}
	view.SetOptions(labels)
	ok := b.connect(scope, view, func(v T) {
		if tx := b.toLabel(v); view.Text() != tx {
			view.SetText(tx)
		}
	})
	if !ok || !b.mode.ToData() {
		return b
	}
	b.OnDispose(view.OnItemChosen(b.choose))
	if b.mode == OneWayToSource {
		b.choose(view.Text())
	}
	return b
}

func (b *DropdownBinding[T]) choose(label string) {
	v, ok := b.toItem(label)
	if !ok {
		glog.V(1).Infof("[binding][%s] dropdown ignores unknown label %q", b.id, label)
		return
	}
	b.Write(v)
}

// BindDropdown connects view to data.
func BindDropdown[T comparable](binder *Binder, view ChoiceControl, data state.Readable[T], items []T, mode Mode) *Binder {
	return binder.Add(NewDropdownBinding(data, items, mode).Connect(binder.RequireScope(), view))
}

// SelectBinding binds an index-based selector to one value of a fixed item
// list. Values not in the list leave the selection unchanged.
type SelectBinding[T comparable] struct {
	Base[T]
	items   []T
	toLabel func(T) string
}

// NewSelectBinding creates an unconnected select binding.
func NewSelectBinding[T comparable](data state.Readable[T], items []T, mode Mode) *SelectBinding[T] {
	return &SelectBinding[T]{
		Base:    newBase("select", data, mode, state.EqualComparable[T]),
		items:   slices.Clone(items),
		toLabel: func(v T) string { return fmt.Sprint(v) },
	}
}

// WithLabel overrides the option label.
func (b *SelectBinding[T]) WithLabel(toLabel func(T) string) *SelectBinding[T] {
	if toLabel != nil {
		b.toLabel = toLabel
	}
	return b
}

// Connect attaches a SelectControl and fills its options.
func (b *SelectBinding[T]) Connect(scope *lifecycle.Scope, control any) *SelectBinding[T] {
	view := mustControl[SelectControl]("select", control)
	labels := make([]string, len(b.items))
	for i, item := range b.items {
		labels[i] = b.toLabel(item)
	}
	view.SetOptions(labels)
	ok := b.connect(scope, view, func(v T) {
		index := slices.Index(b.items, v)
		if index < 0 {
			glog.V(1).Infof("[binding][%s] select has no item %v", b.id, v)
			return
		}
		if view.Selected() != index {
			view.Select(index)
		}
	})
	if !ok || !b.mode.ToData() {
		return b
	}
	b.OnDispose(view.OnSelected(b.selected))
	if b.mode == OneWayToSource {
		b.selected(view.Selected())
	}
	return b
}

func (b *SelectBinding[T]) selected(index int) {
	if index < 0 || index >= len(b.items) {
		return
	}
	b.Write(b.items[index])
}

// BindSelect connects view to data.
func BindSelect[T comparable](binder *Binder, view SelectControl, data state.Readable[T], items []T, mode Mode) *Binder {
	return binder.Add(NewSelectBinding(data, items, mode).Connect(binder.RequireScope(), view))
}
