package binding

import (
	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/list"
	"github.com/odvcencio/furry-binder/state"
)

// InsertedFunc observes insertions: position and count of the inserted
// range, and whether the range ends the list.
type InsertedFunc func(position, count int, isLast bool)

// ItemBinder fills a row for one item. binder is the row's binder, already
// reset; bindings registered on it live until the row is rebound.
type ItemBinder[T any] func(binder *Binder, row TextDisplay, item T)

// ListAdapter translates list mutation events into the incremental update
// calls of a ListControl. The item count is always read from the live list.
type ListAdapter[T any] struct {
	list     *list.ObservableList[T]
	view     ListControl
	scope    *lifecycle.Scope
	bindItem ItemBinder[T]
	inserted InsertedFunc
	listener lifecycle.Disposable
	disposed bool
}

// NewListAdapter binds l to view for the lifetime of scope. The view is
// told to refresh immediately through the list's replay.
func NewListAdapter[T any](scope *lifecycle.Scope, l *list.ObservableList[T], view ListControl, bindItem ItemBinder[T]) *ListAdapter[T] {
	a := &ListAdapter[T]{list: l, view: view, scope: scope, bindItem: bindItem}
	view.SetSource(a)
	a.listener = l.AddListener(scope, a.onListChanged)
	return a
}

// ItemCount returns the current list length.
func (a *ListAdapter[T]) ItemCount() int {
	return a.list.Len()
}

// BindItem resets binder and binds the item at index into row.
func (a *ListAdapter[T]) BindItem(binder *Binder, row TextDisplay, index int) {
	binder.Reset()
	if binder.Scope() == nil {
		binder.SetScope(a.scope)
	}
	if a.bindItem == nil || index < 0 || index >= a.list.Len() {
		return
	}
	a.bindItem(binder, row, a.list.At(index))
}

// SetInsertedListener sets or clears the insertion observer.
func (a *ListAdapter[T]) SetInsertedListener(fn InsertedFunc) {
	a.inserted = fn
}

func (a *ListAdapter[T]) onListChanged(e list.Event[T]) {
	if a.disposed {
		return
	}
	switch e.Kind {
	case list.Insert:
		a.view.NotifyItemRangeInserted(e.Position, e.Range)
		if a.inserted != nil {
			a.inserted(e.Position, e.Range, e.Position+e.Range == a.list.Len())
		}
	case list.Remove:
		a.view.NotifyItemRangeRemoved(e.Position, e.Range)
	case list.Move:
		a.view.NotifyItemMoved(e.From, e.To)
	case list.Change:
		a.view.NotifyItemRangeChanged(e.Position, e.Range)
	default:
		a.view.NotifyDataSetChanged()
	}
}

// Dispose detaches the list listener and the view source.
func (a *ListAdapter[T]) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.listener.Dispose()
	a.view.SetSource(nil)
	glog.V(2).Infof("[adapter] dispose, %d list listeners left", a.list.Listeners())
}

// ReadOnlyAdapter feeds a ListControl from an observable slice. Every change
// is a full refresh.
type ReadOnlyAdapter[T any] struct {
	data     state.Readable[[]T]
	view     ListControl
	scope    *lifecycle.Scope
	bindItem ItemBinder[T]
	observed lifecycle.Disposable
	disposed bool
}

// NewReadOnlyAdapter binds data to view for the lifetime of scope.
func NewReadOnlyAdapter[T any](scope *lifecycle.Scope, data state.Readable[[]T], view ListControl, bindItem ItemBinder[T]) *ReadOnlyAdapter[T] {
	a := &ReadOnlyAdapter[T]{data: data, view: view, scope: scope, bindItem: bindItem}
	view.SetSource(a)
	a.observed = state.Observe(scope, data, func([]T) {
		if !a.disposed {
			a.view.NotifyDataSetChanged()
		}
	})
	view.NotifyDataSetChanged()
	return a
}

// ItemCount returns the current slice length.
func (a *ReadOnlyAdapter[T]) ItemCount() int {
	return len(a.data.Get())
}

// BindItem resets binder and binds the item at index into row.
func (a *ReadOnlyAdapter[T]) BindItem(binder *Binder, row TextDisplay, index int) {
	binder.Reset()
	if binder.Scope() == nil {
		binder.SetScope(a.scope)
	}
	items := a.data.Get()
	if a.bindItem == nil || index < 0 || index >= len(items) {
		return
	}
	a.bindItem(binder, row, items[index])
}

// Dispose stops observing the data and detaches the view source.
func (a *ReadOnlyAdapter[T]) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.observed.Dispose()
	a.view.SetSource(nil)
}
