package binding

import (
	"slices"

	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// RadioGroupBinding selects exactly one button of a group from a value.
type RadioGroupBinding[T comparable] struct {
	Base[T]
	resolver Resolver[T]
}

// NewRadioGroupBinding creates an unconnected radio binding.
func NewRadioGroupBinding[T comparable](data state.Readable[T], resolver Resolver[T], mode Mode) *RadioGroupBinding[T] {
	return &RadioGroupBinding[T]{Base: newBase("radio-group", data, mode, state.EqualComparable[T]), resolver: resolver}
}

// Connect attaches a GroupControl in single-selection mode.
func (b *RadioGroupBinding[T]) Connect(scope *lifecycle.Scope, control any) *RadioGroupBinding[T] {
	view := mustControl[GroupControl]("radio-group", control)
	view.SetSingleSelection(true)
	ok := b.connect(scope, view, func(v T) {
		id := b.resolver.ValueToID(v)
		checked := view.CheckedIDs()
		switch {
		case id == NoID && len(checked) > 0:
			view.ClearChecked()
		case id != NoID && !slices.Equal(checked, []int{id}):
			view.Check(id)
		}
	})
	if !ok || !b.mode.ToData() {
		return b
	}
	b.OnDispose(view.OnButtonChecked(func(id int, checked bool) {
		if !checked {
			return
		}
		v, ok := b.resolver.IDToValue(id)
		if !ok {
			glog.V(1).Infof("[binding][%s] radio-group ignores unmapped id %d", b.id, id)
			return
		}
		b.Write(v)
	}))
	if b.mode == OneWayToSource {
		if ids := view.CheckedIDs(); len(ids) > 0 {
			if v, ok := b.resolver.IDToValue(ids[0]); ok {
				b.Write(v)
			}
		}
	}
	return b
}

// BindRadioGroup connects view to data.
func BindRadioGroup[T comparable](binder *Binder, view GroupControl, data state.Readable[T], resolver Resolver[T], mode Mode) *Binder {
	return binder.Add(NewRadioGroupBinding(data, resolver, mode).Connect(binder.RequireScope(), view))
}

// UnselectableRadioBinding is a radio group that also allows no selection.
// The resolver must map NoID to the value meaning "nothing selected".
//
// The group runs in multi-selection mode so a checked button can be
// unchecked; the binding enforces single selection itself. Corrections to
// the check state are deferred to the UI scheduler because the group
// discards state changes made from inside its own check callback. Pending
// corrections coalesce: only the latest value is applied.
type UnselectableRadioBinding[T comparable] struct {
	Base[T]
	resolver  Resolver[T]
	ui        state.Scheduler
	pending   int
	scheduled bool
}

// NewUnselectableRadioBinding creates an unconnected binding. ui receives the
// deferred corrections; nil applies them immediately.
func NewUnselectableRadioBinding[T comparable](data state.Writable[T], resolver Resolver[T], mode Mode, ui state.Scheduler) *UnselectableRadioBinding[T] {
	if ui == nil {
		ui = state.DirectScheduler
	}
	return &UnselectableRadioBinding[T]{
		Base:     newBase[T]("unselectable-radio", data, mode, state.EqualComparable[T]),
		resolver: resolver,
		ui:       ui,
		pending:  NoID,
	}
}

// Connect attaches a GroupControl.
func (b *UnselectableRadioBinding[T]) Connect(scope *lifecycle.Scope, control any) *UnselectableRadioBinding[T] {
	view := mustControl[GroupControl]("unselectable-radio", control)
	view.SetSingleSelection(false)
	ok := b.connect(scope, view, func(v T) {
		b.pending = b.resolver.ValueToID(v)
		if b.scheduled {
			return
		}
		b.scheduled = true
		b.ui.Schedule(func() {
			b.scheduled = false
			if !b.disposed {
				b.correct(view, b.pending)
			}
		})
	})
	if !ok || !b.mode.ToData() {
		return b
	}
	b.OnDispose(view.OnButtonChecked(func(id int, checked bool) {
		b.onButtonChecked(id, checked)
	}))
	if b.mode == OneWayToSource {
		id := NoID
		if ids := view.CheckedIDs(); len(ids) > 0 {
			id = ids[0]
		}
		if v, ok := b.resolver.IDToValue(id); ok {
			b.Write(v)
		}
	}
	return b
}

// correct makes id the only checked button. It is idempotent.
func (b *UnselectableRadioBinding[T]) correct(view GroupControl, id int) {
	checked := view.CheckedIDs()
	if id != NoID && !slices.Contains(checked, id) {
		view.Check(id)
	}
	for _, c := range checked {
		if c != id {
			view.Uncheck(c)
		}
	}
}

func (b *UnselectableRadioBinding[T]) onButtonChecked(id int, checked bool) {
	if id == NoID {
		return
	}
	sel, ok := b.resolver.IDToValue(id)
	if !ok {
		glog.V(1).Infof("[binding][%s] unselectable-radio ignores unmapped id %d", b.id, id)
		return
	}
	switch {
	case checked:
		b.Write(sel)
	case sel == b.writable.Get():
		none, ok := b.resolver.IDToValue(NoID)
		if !ok {
			glog.V(1).Infof("[binding][%s] unselectable-radio has no value for NoID", b.id)
			return
		}
		b.Write(none)
	}
}

// BindUnselectableRadio connects view to data.
func BindUnselectableRadio[T comparable](binder *Binder, view GroupControl, data state.Writable[T], resolver Resolver[T], mode Mode, ui state.Scheduler) *Binder {
	return binder.Add(NewUnselectableRadioBinding(data, resolver, mode, ui).Connect(binder.RequireScope(), view))
}

// ToggleGroupBinding synchronizes a multi-selection group with a slice of
// values. Writes in either direction run under a busy guard so that the
// check events raised while the binding rewrites the group are not echoed
// back into the data.
type ToggleGroupBinding[T comparable] struct {
	Base[[]T]
	resolver Resolver[T]
	guard    Guard
}

// NewToggleGroupBinding creates an unconnected toggle binding.
func NewToggleGroupBinding[T comparable](data state.Readable[[]T], resolver Resolver[T], mode Mode) *ToggleGroupBinding[T] {
	return &ToggleGroupBinding[T]{Base: newBase("toggle-group", data, mode, slices.Equal[[]T]), resolver: resolver}
}

// Connect attaches a GroupControl in multi-selection mode.
func (b *ToggleGroupBinding[T]) Connect(scope *lifecycle.Scope, control any) *ToggleGroupBinding[T] {
	view := mustControl[GroupControl]("toggle-group", control)
	view.SetSingleSelection(false)
	ok := b.connect(scope, view, func(v []T) {
		want := make([]int, 0, len(v))
		for _, item := range v {
			if id := b.resolver.ValueToID(item); id != NoID {
				want = append(want, id)
			}
		}
		have := slices.Sorted(slices.Values(view.CheckedIDs()))
		if slices.Equal(have, slices.Sorted(slices.Values(want))) {
			return
		}
		b.guard.Run(func() {
			view.ClearChecked()
			for _, id := range want {
				view.Check(id)
			}
		})
	})
	if !ok || !b.mode.ToData() {
		return b
	}
	b.OnDispose(view.OnButtonChecked(func(int, bool) {
		b.guard.Run(func() { b.Write(b.selection(view)) })
	}))
	if b.mode == OneWayToSource {
		b.Write(b.selection(view))
	}
	return b
}

func (b *ToggleGroupBinding[T]) selection(view GroupControl) []T {
	ids := view.CheckedIDs()
	values := make([]T, 0, len(ids))
	for _, id := range ids {
		if v, ok := b.resolver.IDToValue(id); ok {
			values = append(values, v)
		}
	}
	return values
}

// BindToggleGroup connects view to data.
func BindToggleGroup[T comparable](binder *Binder, view GroupControl, data state.Readable[[]T], resolver Resolver[T], mode Mode) *Binder {
	return binder.Add(NewToggleGroupBinding(data, resolver, mode).Connect(binder.RequireScope(), view))
}
