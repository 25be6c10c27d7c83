package binding

import (
	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// HeadlessBinding runs a function on every value, with no control attached.
type HeadlessBinding[T any] struct {
	Base[T]
	fn func(T)
}

// NewHeadlessBinding creates an unconnected headless binding.
func NewHeadlessBinding[T any](data state.Readable[T], fn func(T)) *HeadlessBinding[T] {
	return &HeadlessBinding[T]{Base: newBase("headless", data, OneWay, nil), fn: fn}
}

// Connect subscribes on scope and calls fn with the current value.
func (b *HeadlessBinding[T]) Connect(scope *lifecycle.Scope) *HeadlessBinding[T] {
	b.connect(scope, nil, b.fn)
	return b
}

// BindHeadless runs fn for every value of data while the binder is alive.
func BindHeadless[T any](binder *Binder, data state.Readable[T], fn func(T)) *Binder {
	return binder.Add(NewHeadlessBinding(data, fn).Connect(binder.RequireScope()))
}
