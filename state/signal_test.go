package state

import "testing"

func TestSignal_SetAndSubscribe(t *testing.T) {
	sig := NewSignal(1)
	calls := 0

	unsub := sig.Subscribe(func() {
		calls++
	})

	if calls != 0 {
		t.Fatalf("expected no calls before set, got %d", calls)
	}
	if !sig.Set(2) {
		t.Fatalf("expected set to report change")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call after set, got %d", calls)
	}

	unsub()
	sig.Set(3)
	if calls != 1 {
		t.Fatalf("expected no calls after unsubscribe, got %d", calls)
	}
}

func TestSignal_SetEqualFunc(t *testing.T) {
	sig := NewSignal(5)
	sig.SetEqualFunc(EqualComparable[int])

	if sig.Set(5) {
		t.Fatalf("expected set of equal value to report no change")
	}
	if !sig.Set(6) {
		t.Fatalf("expected set of new value to report change")
	}
}

func TestSignal_Update(t *testing.T) {
	sig := NewSignal(1)
	sig.SetEqualFunc(EqualComparable[int])

	if !sig.Update(func(v int) int { return v + 1 }) {
		t.Fatalf("expected update to report change")
	}
	if sig.Get() != 2 {
		t.Fatalf("expected updated value 2, got %d", sig.Get())
	}
	if sig.Update(func(v int) int { return v }) {
		t.Fatalf("expected update of equal value to report no change")
	}
	if sig.Update(nil) {
		t.Fatalf("expected nil update to report no change")
	}
}

func TestSignal_SubscribeWithScheduler(t *testing.T) {
	sig := NewSignal(1)
	queue := NewQueue()
	calls := 0

	sig.SubscribeWithScheduler(queue, func() {
		calls++
	})

	if !sig.Set(2) {
		t.Fatalf("expected set to report change")
	}
	if calls != 0 {
		t.Fatalf("expected callback to be queued, got %d", calls)
	}
	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 callback flushed, got %d", flushed)
	}
	if calls != 1 {
		t.Fatalf("expected callback after flush, got %d", calls)
	}
}

func TestSignal_RegistrationOrder(t *testing.T) {
	sig := NewComparableSignal("a")
	var order []int
	for i := 0; i < 4; i++ {
		i := i
		sig.Subscribe(func() { order = append(order, i) })
	}

	sig.Set("b")
	for i, got := range order {
		if got != i {
			t.Fatalf("expected registration order, got %v", order)
		}
	}
	if sig.Subscribers() != 4 {
		t.Fatalf("expected 4 subscribers, got %d", sig.Subscribers())
	}
}

func TestSignal_ValueStoredBeforeNotify(t *testing.T) {
	sig := NewSignal(0)
	seen := -1
	sig.Subscribe(func() { seen = sig.Get() })

	sig.Set(7)
	if seen != 7 {
		t.Fatalf("expected callback to observe stored value 7, got %d", seen)
	}
}

func TestSignal_UnsubscribeDuringDispatch(t *testing.T) {
	sig := NewSignal(0)
	var second func()
	calls := 0
	sig.Subscribe(func() { second() })
	second = sig.Subscribe(func() { calls++ })

	sig.Set(1)
	if calls != 0 {
		t.Fatalf("expected unsubscribed listener to be skipped, got %d calls", calls)
	}
	if sig.Subscribers() != 1 {
		t.Fatalf("expected 1 remaining subscriber, got %d", sig.Subscribers())
	}
}

func TestAsWritable(t *testing.T) {
	if _, ok := AsWritable[int](NewSignal(1)); !ok {
		t.Fatalf("expected signal to be writable")
	}
	if _, ok := AsWritable[int](NewConst(1)); ok {
		t.Fatalf("expected const to be read-only")
	}
	if _, ok := AsWritable[int](nil); ok {
		t.Fatalf("expected nil to be read-only")
	}
}
