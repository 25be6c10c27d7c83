package state

import "github.com/odvcencio/furry-binder/lifecycle"

// Observe subscribes fn to r for the lifetime of scope and returns the
// disposal handle. fn receives the value current at notification time.
// If scope already ended, the subscription is released at once and fn
// never fires.
func Observe[T any](scope *lifecycle.Scope, r Readable[T], fn func(T)) lifecycle.Disposable {
	return ObserveWithScheduler(scope, r, nil, fn)
}

// ObserveWithScheduler is Observe with callbacks dispatched by scheduler.
func ObserveWithScheduler[T any](scope *lifecycle.Scope, r Readable[T], scheduler Scheduler, fn func(T)) lifecycle.Disposable {
	if r == nil || fn == nil || scope.Disposed() {
		return lifecycle.Nop
	}
	alive := true
	unsub := r.SubscribeWithScheduler(scheduler, func() {
		if alive {
			fn(r.Get())
		}
	})
	var release func()
	handle := lifecycle.Func(func() {
		alive = false
		unsub()
		if release != nil {
			release()
		}
	})
	release, _ = scope.Add(handle)
	return handle
}
