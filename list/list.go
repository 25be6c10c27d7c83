// Package list provides an ordered, mutable collection that reports every
// structural change as a single Event so list views can update only the
// affected rows.
//
// ObservableList is not safe for concurrent use. Mutate it from the UI
// thread only; marshal writes from background goroutines through the
// runtime loop first.
package list

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/lifecycle"
)

var (
	// ErrReentrantMutation is raised when a listener mutates the list that
	// is currently notifying it.
	ErrReentrantMutation = errors.New("list mutated from its own listener")
	// ErrIndexOutOfRange is raised for positions outside the list.
	ErrIndexOutOfRange = errors.New("list index out of range")
)

// Listener receives mutation events.
type Listener[T any] func(Event[T])

type listener[T any] struct {
	id int
	fn Listener[T]
}

// ObservableList is an ordered sequence that emits one Event per mutation,
// after the backing slice has been updated, to every listener in
// registration order.
type ObservableList[T any] struct {
	items       []T
	listeners   []listener[T]
	next        int
	dispatching bool
}

// New creates an empty list.
func New[T any]() *ObservableList[T] {
	return &ObservableList[T]{}
}

// Of creates a list holding items.
func Of[T any](items ...T) *ObservableList[T] {
	return From(items)
}

// From creates a list holding a copy of items.
func From[T any](items []T) *ObservableList[T] {
	return &ObservableList[T]{items: slices.Clone(items)}
}

// Len returns the current number of elements.
func (l *ObservableList[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the element at index.
func (l *ObservableList[T]) At(index int) T {
	l.checkIndex("At", index, len(l.items))
	return l.items[index]
}

// Items returns a copy of the current contents.
func (l *ObservableList[T]) Items() []T {
	if l == nil {
		return nil
	}
	return slices.Clone(l.items)
}

// All iterates over index/element pairs of the current contents.
func (l *ObservableList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// IndexFunc returns the first index whose element satisfies match, or -1.
func (l *ObservableList[T]) IndexFunc(match func(T) bool) int {
	if l == nil || match == nil {
		return -1
	}
	return slices.IndexFunc(l.items, match)
}

// Add appends value.
func (l *ObservableList[T]) Add(value T) {
	l.Insert(len(l.items), value)
}

// Insert places value at index, shifting later elements.
func (l *ObservableList[T]) Insert(index int, value T) {
	l.InsertAll(index, value)
}

// AddAll appends values as one Insert event. Appending nothing emits nothing.
func (l *ObservableList[T]) AddAll(values ...T) {
	l.InsertAll(len(l.items), values...)
}

// InsertAll places values at index as one Insert event.
func (l *ObservableList[T]) InsertAll(index int, values ...T) {
	l.beginMutation("InsertAll")
	l.checkIndex("InsertAll", index, len(l.items)+1)
	if len(values) == 0 {
		return
	}
	l.items = slices.Insert(l.items, index, values...)
	l.emit(rangeEvent(l, Insert, index, len(values)))
}

// RemoveAt removes and returns the element at index.
func (l *ObservableList[T]) RemoveAt(index int) T {
	l.beginMutation("RemoveAt")
	l.checkIndex("RemoveAt", index, len(l.items))
	removed := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	l.emit(rangeEvent(l, Remove, index, 1))
	return removed
}

// RemoveRange removes up to count elements starting at index as one
// Remove event and returns the number removed. The count is clamped to
// the elements available from index.
func (l *ObservableList[T]) RemoveRange(index, count int) int {
	l.beginMutation("RemoveRange")
	l.checkIndex("RemoveRange", index, len(l.items)+1)
	count = min(count, len(l.items)-index)
	if count <= 0 {
		return 0
	}
	l.items = slices.Delete(l.items, index, index+count)
	l.emit(rangeEvent(l, Remove, index, count))
	return count
}

// RemoveFunc removes every element matching del and returns the number
// removed. Each contiguous run of matches is reported as one Remove event,
// last run first, so every event position is also an original index.
func (l *ObservableList[T]) RemoveFunc(del func(T) bool) int {
	l.beginMutation("RemoveFunc")
	if del == nil {
		return 0
	}
	removed := 0
	for end := len(l.items); end > 0; {
		if !del(l.items[end-1]) {
			end--
			continue
		}
		start := end - 1
		for start > 0 && del(l.items[start-1]) {
			start--
		}
		l.items = slices.Delete(l.items, start, end)
		removed += end - start
		l.emit(rangeEvent(l, Remove, start, end-start))
		end = start
	}
	return removed
}

// RetainFunc removes every element not matching keep.
func (l *ObservableList[T]) RetainFunc(keep func(T) bool) int {
	if keep == nil {
		return 0
	}
	return l.RemoveFunc(func(v T) bool { return !keep(v) })
}

// Set replaces the element at index and returns the previous one.
func (l *ObservableList[T]) Set(index int, value T) T {
	l.beginMutation("Set")
	l.checkIndex("Set", index, len(l.items))
	old := l.items[index]
	l.items[index] = value
	l.emit(rangeEvent(l, Change, index, 1))
	return old
}

// Move relocates the element at from so that it ends up at to.
// Moving an element onto itself emits nothing.
func (l *ObservableList[T]) Move(from, to int) {
	l.beginMutation("Move")
	l.checkIndex("Move", from, len(l.items))
	l.checkIndex("Move", to, len(l.items))
	if from == to {
		return
	}
	value := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, value)
	l.emit(moveEvent(l, from, to))
}

// Clear removes every element and emits Refresh.
func (l *ObservableList[T]) Clear() {
	l.beginMutation("Clear")
	l.items = nil
	l.emit(refreshEvent(l))
}

// Replace swaps in a copy of values and emits Refresh. No diff is computed.
func (l *ObservableList[T]) Replace(values []T) {
	l.beginMutation("Replace")
	l.items = slices.Clone(values)
	l.emit(refreshEvent(l))
}

// AddListener registers fn for the lifetime of scope. fn first receives a
// Refresh reflecting the current contents, then every later mutation.
// On an ended scope nothing is registered and fn never fires.
func (l *ObservableList[T]) AddListener(scope *lifecycle.Scope, fn Listener[T]) lifecycle.Disposable {
	if l == nil || fn == nil || scope.Disposed() {
		return lifecycle.Nop
	}
	handle := l.register(fn)
	release, _ := scope.Add(handle)
	return lifecycle.Func(func() {
		handle.Dispose()
		release()
	})
}

// AddListenerForever registers fn until the returned handle or the list is
// disposed. fn first receives a Refresh reflecting the current contents.
func (l *ObservableList[T]) AddListenerForever(fn Listener[T]) lifecycle.Disposable {
	if l == nil || fn == nil {
		return lifecycle.Nop
	}
	return l.register(fn)
}

// Listeners reports the number of registered listeners.
func (l *ObservableList[T]) Listeners() int {
	if l == nil {
		return 0
	}
	return len(l.listeners)
}

// Dispose drops every listener registration. The contents are kept.
func (l *ObservableList[T]) Dispose() {
	if l == nil {
		return
	}
	l.listeners = nil
}

func (l *ObservableList[T]) register(fn Listener[T]) lifecycle.Disposable {
	func() {
		prev := l.dispatching
		l.dispatching = true
		defer func() { l.dispatching = prev }()
		fn(refreshEvent(l))
	}()
	id := l.next
	l.next++
	l.listeners = append(l.listeners, listener[T]{id: id, fn: fn})
	return lifecycle.Func(func() { l.unregister(id) })
}

func (l *ObservableList[T]) unregister(id int) {
	for i, entry := range l.listeners {
		if entry.id == id {
			l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
			return
		}
	}
}

func (l *ObservableList[T]) beginMutation(op string) {
	if l.dispatching {
		err := fmt.Errorf("%w: %s", ErrReentrantMutation, op)
		glog.Errorf("[list] %v", err)
		panic(err)
	}
}

func (l *ObservableList[T]) emit(event Event[T]) {
	if len(l.listeners) == 0 {
		return
	}
	glog.V(2).Infof("[list] %v to %d listeners", event, len(l.listeners))
	listeners := l.listeners
	prev := l.dispatching
	l.dispatching = true
	defer func() { l.dispatching = prev }()
	for _, entry := range listeners {
		if l.registered(entry.id) {
			entry.fn(event)
		}
	}
}

func (l *ObservableList[T]) registered(id int) bool {
	for _, entry := range l.listeners {
		if entry.id == id {
			return true
		}
	}
	return false
}

func (l *ObservableList[T]) checkIndex(op string, index, limit int) {
	if index < 0 || index >= limit {
		panic(fmt.Errorf("%w: %s(%d) with length %d", ErrIndexOutOfRange, op, index, len(l.items)))
	}
}
