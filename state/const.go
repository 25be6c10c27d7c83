package state

// Const is a Readable whose value never changes.
type Const[T any] struct {
	value T
}

// NewConst wraps a fixed value.
func NewConst[T any](value T) *Const[T] {
	return &Const[T]{value: value}
}

// Get returns the fixed value.
func (c *Const[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	return c.value
}

// Subscribe never fires.
func (c *Const[T]) Subscribe(fn func()) func() {
	return func() {}
}

// SubscribeWithScheduler never fires.
func (c *Const[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	return func() {}
}
