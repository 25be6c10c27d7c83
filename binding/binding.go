package binding

import (
	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// Binding glues one observable value to one control for its active lifetime.
type Binding interface {
	lifecycle.Disposable
	ID() ulid.ULID
	Mode() Mode
	Disposed() bool
}

// Base carries the lifecycle shared by every binding: the data source, the
// subscription, the non-owning control reference and the disposal hooks.
// Concrete bindings embed it and supply the apply and write paths.
type Base[T any] struct {
	id        ulid.ULID
	kind      string
	mode      Mode
	data      state.Readable[T]
	writable  state.Writable[T]
	equal     state.EqualFunc[T]
	scheduler state.Scheduler

	control   any
	observed  lifecycle.Disposable
	release   func()
	disposers []func()
	connected bool
	disposed  bool
}

func newBase[T any](kind string, data state.Readable[T], mode Mode, equal state.EqualFunc[T]) Base[T] {
	writable, ok := state.AsWritable(data)
	if mode.ToData() && !ok {
		panic(wiringError(ErrModeUnsupported, "%s %s needs writable data", kind, mode))
	}
	return Base[T]{
		id:       ulid.Make(),
		kind:     kind,
		mode:     mode,
		data:     data,
		writable: writable,
		equal:    equal,
	}
}

// ID returns the binding identifier used in logs.
func (b *Base[T]) ID() ulid.ULID {
	return b.id
}

// Mode returns the direction policy.
func (b *Base[T]) Mode() Mode {
	return b.mode
}

// Disposed reports whether Dispose has run.
func (b *Base[T]) Disposed() bool {
	return b.disposed
}

// Control returns the attached control, or nil once disposed.
func (b *Base[T]) Control() any {
	return b.control
}

// Data returns the bound value.
func (b *Base[T]) Data() state.Readable[T] {
	return b.data
}

// SetScheduler dispatches data callbacks through s. Call before Connect.
func (b *Base[T]) SetScheduler(s state.Scheduler) {
	b.scheduler = s
}

// OnDispose registers fn to run when the binding is disposed. Hooks run in
// reverse registration order, before the control reference is cleared.
func (b *Base[T]) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	if b.disposed {
		fn()
		return
	}
	b.disposers = append(b.disposers, fn)
}

// connect attaches control, subscribes to the data unless the mode is
// OneWayToSource, registers the binding with scope and then applies the
// current value once. Returns false when scope already ended; the binding is
// disposed and apply never runs.
func (b *Base[T]) connect(scope *lifecycle.Scope, control any, apply func(T)) bool {
	if b.connected {
		panic(wiringError(ErrConnected, "%s %s", b.kind, b.id))
	}
	b.connected = true
	b.control = control
	if scope.Disposed() {
		glog.Warningf("[binding][%s] %s connected to ended scope %q", b.id, b.kind, scope.Name())
		b.Dispose()
		return false
	}
	if b.mode.FromData() && apply != nil {
		b.observed = state.ObserveWithScheduler(scope, b.data, b.scheduler, func(v T) {
			if !b.disposed {
				apply(v)
			}
		})
	}
	b.release, _ = scope.Add(b)
	glog.V(2).Infof("[binding][%s] connect %s %s scope=%s", b.id, b.kind, b.mode, scope.Name())
	if b.mode.FromData() && apply != nil {
		apply(b.data.Get())
	}
	return true
}

// Write pushes v into the data if the mode allows it and the value differs
// from the current one. It reports whether a write happened.
func (b *Base[T]) Write(v T) bool {
	if b.disposed || !b.mode.ToData() || b.writable == nil {
		return false
	}
	if b.equal != nil && b.equal(b.writable.Get(), v) {
		return false
	}
	return b.writable.Set(v)
}

// Dispose releases the subscription, the view listeners and the control
// reference. It is idempotent.
func (b *Base[T]) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	if b.observed != nil {
		b.observed.Dispose()
		b.observed = nil
	}
	for i := len(b.disposers) - 1; i >= 0; i-- {
		b.disposers[i]()
	}
	b.disposers = nil
	b.control = nil
	if b.release != nil {
		b.release()
		b.release = nil
	}
	glog.V(2).Infof("[binding][%s] dispose %s", b.id, b.kind)
}
