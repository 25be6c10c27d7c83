// Package lifecycle provides disposal handles and explicit teardown scopes.
//
// Every subscription in the binder returns a Disposable. A Scope collects
// the handles registered against it and releases them, last registered
// first, when the scope ends.
package lifecycle

import "sync"

// Disposable releases exactly one resource.
type Disposable interface {
	Dispose()
}

type funcDisposable struct {
	once sync.Once
	fn   func()
}

// Func adapts fn into a Disposable that runs fn at most once.
func Func(fn func()) Disposable {
	return &funcDisposable{fn: fn}
}

func (f *funcDisposable) Dispose() {
	if f == nil {
		return
	}
	f.once.Do(func() {
		if f.fn != nil {
			f.fn()
		}
	})
}

// Nop is a Disposable that does nothing.
var Nop Disposable = nopDisposable{}

type nopDisposable struct{}

func (nopDisposable) Dispose() {}

// Group disposes several handles together.
type Group struct {
	mu    sync.Mutex
	items []Disposable
}

// Add registers d with the group and returns the group.
func (g *Group) Add(items ...Disposable) *Group {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	for _, d := range items {
		if d != nil {
			g.items = append(g.items, d)
		}
	}
	g.mu.Unlock()
	return g
}

// Len reports the number of registered handles.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.items)
}

// Dispose releases every handle in reverse registration order and empties
// the group. The group can be reused afterwards.
func (g *Group) Dispose() {
	if g == nil {
		return
	}
	g.mu.Lock()
	items := g.items
	g.items = nil
	g.mu.Unlock()
	for i := len(items) - 1; i >= 0; i-- {
		items[i].Dispose()
	}
}
