package state

import "sync"

// Scheduler dispatches subscription callbacks and deferred work.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

// Schedule dispatches fn using the wrapped function.
func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

// DirectScheduler runs callbacks immediately in the caller goroutine.
var DirectScheduler Scheduler = SchedulerFunc(func(fn func()) {
	if fn != nil {
		fn()
	}
})

// maxFlushRounds bounds how often Flush re-drains callbacks scheduled by
// the callbacks it just ran.
const maxFlushRounds = 64

// Queue batches callbacks for explicit flushing on the UI thread.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues a callback for later flushing.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len reports the number of pending callbacks.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush executes queued callbacks in FIFO order and returns the count.
// Callbacks scheduled while flushing run in the same call.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	total := 0
	for round := 0; round < maxFlushRounds; round++ {
		q.mu.Lock()
		pending := q.pending
		q.pending = nil
		q.mu.Unlock()
		if len(pending) == 0 {
			break
		}
		for _, fn := range pending {
			fn()
		}
		total += len(pending)
	}
	return total
}
