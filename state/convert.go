package state

// Converted exposes a Writable[S] as a Writable[T] through a pair of
// conversion functions. Notifications come straight from the source.
type Converted[S, T any] struct {
	source Writable[S]
	to     func(S) T
	from   func(T) S
}

// NewConverted creates a two-way view over source.
func NewConverted[S, T any](source Writable[S], to func(S) T, from func(T) S) *Converted[S, T] {
	return &Converted[S, T]{source: source, to: to, from: from}
}

// Invert returns a view of a bool signal with the value negated.
func Invert(source Writable[bool]) *Converted[bool, bool] {
	not := func(v bool) bool { return !v }
	return NewConverted(source, not, not)
}

// Get returns the converted source value.
func (c *Converted[S, T]) Get() T {
	return c.to(c.source.Get())
}

// Set converts value back and writes it to the source.
func (c *Converted[S, T]) Set(value T) bool {
	return c.source.Set(c.from(value))
}

// Update applies fn to the converted value.
func (c *Converted[S, T]) Update(fn func(T) T) bool {
	if fn == nil {
		return false
	}
	return c.Set(fn(c.Get()))
}

// Subscribe registers a listener on the source.
func (c *Converted[S, T]) Subscribe(fn func()) func() {
	return c.source.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener on the source using scheduler.
func (c *Converted[S, T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	return c.source.SubscribeWithScheduler(scheduler, fn)
}

// Map exposes a read-only converted view of source.
func Map[S, T any](source Readable[S], to func(S) T) Readable[T] {
	return &mapped[S, T]{source: source, to: to}
}

type mapped[S, T any] struct {
	source Readable[S]
	to     func(S) T
}

func (m *mapped[S, T]) Get() T {
	return m.to(m.source.Get())
}

func (m *mapped[S, T]) Subscribe(fn func()) func() {
	return m.source.Subscribe(fn)
}

func (m *mapped[S, T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	return m.source.SubscribeWithScheduler(scheduler, fn)
}
