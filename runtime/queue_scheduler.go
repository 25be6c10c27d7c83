package runtime

import (
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/state"
)

// QueueScheduler enqueues callbacks and wakes the loop to flush them.
// Bindings use it to defer corrections until the current dispatch ends.
type QueueScheduler struct {
	queue   *state.Queue
	post    PostFunc
	pending atomic.Bool
}

// NewQueueScheduler wires a queue to a post function.
func NewQueueScheduler(queue *state.Queue, post PostFunc) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{
		queue: queue,
		post:  post,
	}
}

// Schedule enqueues the callback and posts one flush message per batch.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || s.queue == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	if s.post == nil {
		return
	}
	if s.pending.CompareAndSwap(false, true) {
		if !s.post(QueueFlushMsg{}) {
			glog.V(1).Infof("[runtime] flush request dropped, %d callbacks waiting", s.queue.Len())
			s.pending.Store(false)
		}
	}
}

func (s *QueueScheduler) resetPending() {
	if s == nil {
		return
	}
	s.pending.Store(false)
}
