package binding

import (
	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// Binder owns the bindings of one screen or one list row and disposes them
// together.
type Binder struct {
	scope    *lifecycle.Scope
	items    []lifecycle.Disposable
	disposed bool
}

// NewBinder creates a binder whose default scope is scope. scope may be nil
// when every call site passes its own.
func NewBinder(scope *lifecycle.Scope) *Binder {
	return &Binder{scope: scope}
}

// Scope returns the default scope, or nil.
func (b *Binder) Scope() *lifecycle.Scope {
	if b == nil {
		return nil
	}
	return b.scope
}

// SetScope replaces the default scope.
func (b *Binder) SetScope(scope *lifecycle.Scope) {
	if b == nil {
		return
	}
	b.scope = scope
}

// RequireScope returns the default scope or panics with ErrNoScope.
func (b *Binder) RequireScope() *lifecycle.Scope {
	if b == nil || b.scope == nil {
		panic(ErrNoScope)
	}
	return b.scope
}

// Add registers bindings and returns the binder for chaining. Items added to
// a disposed binder are disposed immediately.
func (b *Binder) Add(items ...lifecycle.Disposable) *Binder {
	for _, item := range items {
		if item == nil {
			continue
		}
		if b.disposed {
			item.Dispose()
			continue
		}
		b.items = append(b.items, item)
	}
	return b
}

// Len reports the number of registered items.
func (b *Binder) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Reset disposes every registered item and leaves the binder usable.
func (b *Binder) Reset() {
	if b == nil {
		return
	}
	items := b.items
	b.items = nil
	for i := len(items) - 1; i >= 0; i-- {
		items[i].Dispose()
	}
}

// Dispose disposes every registered item, last added first. Later calls to
// Add dispose their argument at once.
func (b *Binder) Dispose() {
	if b == nil || b.disposed {
		return
	}
	n := len(b.items)
	b.Reset()
	b.disposed = true
	glog.V(2).Infof("[binder][%s] dispose %d bindings", b.scope.Name(), n)
}

// Observe subscribes fn to data on the binder's default scope and registers
// the subscription with the binder.
func Observe[T any](b *Binder, data state.Readable[T], fn func(T)) *Binder {
	return b.Add(state.Observe(b.RequireScope(), data, fn))
}
