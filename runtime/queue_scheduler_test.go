package runtime

import (
	"testing"

	"github.com/odvcencio/furry-binder/state"
)

func TestQueueScheduler_PostsFlush(t *testing.T) {
	queue := state.NewQueue()
	posted := 0
	scheduler := NewQueueScheduler(queue, func(msg Message) bool {
		if _, ok := msg.(QueueFlushMsg); ok {
			posted++
			return true
		}
		return false
	})

	scheduler.Schedule(func() {})
	if posted != 1 {
		t.Fatalf("expected 1 flush post, got %d", posted)
	}
}

func TestQueueScheduler_CoalescesPosts(t *testing.T) {
	queue := state.NewQueue()
	posted := 0
	scheduler := NewQueueScheduler(queue, func(msg Message) bool {
		if _, ok := msg.(QueueFlushMsg); ok {
			posted++
			return true
		}
		return false
	})

	scheduler.Schedule(func() {})
	scheduler.Schedule(func() {})
	if posted != 1 {
		t.Fatalf("expected 1 flush post, got %d", posted)
	}

	scheduler.resetPending()
	scheduler.Schedule(func() {})
	if posted != 2 {
		t.Fatalf("expected 2 flush posts after reset, got %d", posted)
	}
}

func TestQueueScheduler_RepostsOnFailedSend(t *testing.T) {
	queue := state.NewQueue()
	attempts := 0
	scheduler := NewQueueScheduler(queue, func(msg Message) bool {
		attempts++
		return false
	})

	scheduler.Schedule(func() {})
	scheduler.Schedule(func() {})
	if attempts != 2 {
		t.Fatalf("expected 2 post attempts, got %d", attempts)
	}
}

func TestLoop_ScheduleCoalescesSignalCallbacks(t *testing.T) {
	loop := NewLoop(LoopConfig{})
	sig := state.NewComparableSignal("")
	var seen []string
	sig.SubscribeWithScheduler(loop, func() { seen = append(seen, sig.Get()) })

	sig.Set("a")
	sig.Set("b")
	if len(seen) != 0 {
		t.Fatalf("expected callbacks deferred to the loop, got %v", seen)
	}
	if handled := loop.Flush(); handled != 1 {
		t.Fatalf("expected one flush message, got %d", handled)
	}
	if len(seen) != 2 || seen[0] != "b" {
		t.Fatalf("expected two deferred callbacks reading the latest value, got %v", seen)
	}

	sig.Set("c")
	if handled := loop.Flush(); handled != 1 || len(seen) != 3 {
		t.Fatalf("expected a new flush after the last one, got %d %v", handled, seen)
	}
}
