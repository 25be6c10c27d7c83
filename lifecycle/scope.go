package lifecycle

import (
	"cmp"
	"slices"
	"sync"

	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"
)

// Scope is an explicit lifetime owned by a screen, a list row or any other
// caller. Handles registered with a scope are disposed when it ends.
type Scope struct {
	mu       sync.Mutex
	id       ulid.ULID
	name     string
	handles  []handle
	next     uint64
	live     int
	disposed bool
	onEnd    func()
}

// handle is a registered disposable. seq increases with registration order,
// so handles stays sorted by seq across compaction.
type handle struct {
	seq uint64
	d   Disposable
}

// NewScope creates an active scope.
func NewScope(name string) *Scope {
	return &Scope{id: ulid.Make(), name: name}
}

// ID returns the scope identifier.
func (s *Scope) ID() ulid.ULID {
	if s == nil {
		return ulid.ULID{}
	}
	return s.id
}

// Name returns the scope name given at creation.
func (s *Scope) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Disposed reports whether the scope has ended.
// A nil scope counts as ended.
func (s *Scope) Disposed() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Add registers d for disposal when the scope ends.
// If the scope already ended, d is disposed immediately and Add returns false.
// The returned release function forgets d without disposing it.
func (s *Scope) Add(d Disposable) (release func(), ok bool) {
	if d == nil {
		return func() {}, false
	}
	if s == nil {
		d.Dispose()
		return func() {}, false
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		glog.V(1).Infof("[scope][%s] add after dispose, releasing handle", s.name)
		d.Dispose()
		return func() {}, false
	}
	seq := s.next
	s.next++
	s.handles = append(s.handles, handle{seq: seq, d: d})
	s.live++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.forget(seq) })
	}, true
}

// Child creates a scope that ends no later than s.
func (s *Scope) Child(name string) *Scope {
	child := NewScope(name)
	release, ok := s.Add(child)
	if ok {
		child.onEnd = release
	}
	return child
}

// forget clears the handle registered as seq. Released slots are compacted
// away once they outnumber live handles.
func (s *Scope) forget(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, found := slices.BinarySearchFunc(s.handles, seq, func(h handle, seq uint64) int {
		return cmp.Compare(h.seq, seq)
	})
	if !found || s.handles[i].d == nil {
		return
	}
	s.handles[i].d = nil
	s.live--
	if len(s.handles)-s.live > s.live {
		s.handles = slices.DeleteFunc(s.handles, func(h handle) bool { return h.d == nil })
	}
}

// slots reports the length of the backing handle slice.
func (s *Scope) slots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Len reports the number of live handles.
func (s *Scope) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Dispose ends the scope, disposing live handles in reverse registration
// order. Calling Dispose again is a no-op.
func (s *Scope) Dispose() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	handles := s.handles
	s.handles = nil
	s.live = 0
	onEnd := s.onEnd
	s.onEnd = nil
	s.mu.Unlock()

	glog.V(2).Infof("[scope][%s] dispose %d handles", s.name, len(handles))
	for i := len(handles) - 1; i >= 0; i-- {
		if handles[i].d != nil {
			handles[i].d.Dispose()
		}
	}
	if onEnd != nil {
		onEnd()
	}
}
