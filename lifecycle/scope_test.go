package lifecycle

import "testing"

type countingDisposable struct {
	order *[]string
	name  string
	calls int
}

func (c *countingDisposable) Dispose() {
	c.calls++
	if c.order != nil {
		*c.order = append(*c.order, c.name)
	}
}

func TestScope_DisposeReverseOrder(t *testing.T) {
	var order []string
	scope := NewScope("screen")
	a := &countingDisposable{order: &order, name: "a"}
	b := &countingDisposable{order: &order, name: "b"}
	scope.Add(a)
	scope.Add(b)

	if scope.Len() != 2 {
		t.Fatalf("expected 2 live handles, got %d", scope.Len())
	}
	scope.Dispose()
	scope.Dispose()

	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Fatalf("expected dispose order [b a], got %v", order)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("expected one dispose each, got a=%d b=%d", a.calls, b.calls)
	}
	if !scope.Disposed() {
		t.Fatalf("expected scope to report disposed")
	}
}

func TestScope_AddAfterDispose(t *testing.T) {
	scope := NewScope("gone")
	scope.Dispose()

	d := &countingDisposable{}
	if _, ok := scope.Add(d); ok {
		t.Fatalf("expected add on disposed scope to report false")
	}
	if d.calls != 1 {
		t.Fatalf("expected handle disposed immediately, got %d calls", d.calls)
	}
}

func TestScope_Release(t *testing.T) {
	scope := NewScope("rows")
	d := &countingDisposable{}
	release, ok := scope.Add(d)
	if !ok {
		t.Fatalf("expected add to succeed")
	}
	release()
	release()
	if scope.Len() != 0 {
		t.Fatalf("expected no live handles after release, got %d", scope.Len())
	}
	scope.Dispose()
	if d.calls != 0 {
		t.Fatalf("expected released handle to stay alive, got %d calls", d.calls)
	}
}

func TestScope_ReleaseCompacts(t *testing.T) {
	var order []string
	scope := NewScope("screen")
	first := &countingDisposable{order: &order, name: "first"}
	scope.Add(first)
	for i := 0; i < 10000; i++ {
		release, _ := scope.Add(Nop)
		release()
	}
	if scope.Len() != 1 {
		t.Fatalf("expected 1 live handle, got %d", scope.Len())
	}
	if got := scope.slots(); got > 2 {
		t.Fatalf("expected released slots to be compacted, got %d", got)
	}

	releaseMid, _ := scope.Add(&countingDisposable{order: &order, name: "mid"})
	scope.Add(&countingDisposable{order: &order, name: "last"})
	releaseMid()
	releaseMid()
	scope.Dispose()
	if len(order) != 2 || order[0] != "last" || order[1] != "first" {
		t.Fatalf("expected [last first], got %v", order)
	}
}

func TestScope_Child(t *testing.T) {
	parent := NewScope("parent")
	child := parent.Child("child")
	d := &countingDisposable{}
	child.Add(d)

	child.Dispose()
	if parent.Len() != 0 {
		t.Fatalf("expected child to leave parent when disposed, got %d", parent.Len())
	}

	other := parent.Child("other")
	e := &countingDisposable{}
	other.Add(e)
	parent.Dispose()
	if !other.Disposed() || e.calls != 1 {
		t.Fatalf("expected parent dispose to end child, disposed=%v calls=%d", other.Disposed(), e.calls)
	}
}

func TestNilScope(t *testing.T) {
	var scope *Scope
	d := &countingDisposable{}
	if _, ok := scope.Add(d); ok {
		t.Fatalf("expected nil scope add to fail")
	}
	if d.calls != 1 {
		t.Fatalf("expected nil scope to dispose handle, got %d", d.calls)
	}
	if !scope.Disposed() {
		t.Fatalf("expected nil scope to count as disposed")
	}
	scope.Dispose()
}

func TestFuncAndGroup(t *testing.T) {
	calls := 0
	d := Func(func() { calls++ })
	d.Dispose()
	d.Dispose()
	if calls != 1 {
		t.Fatalf("expected func disposable to run once, got %d", calls)
	}

	var order []string
	g := &Group{}
	g.Add(&countingDisposable{order: &order, name: "x"}, nil, &countingDisposable{order: &order, name: "y"})
	if g.Len() != 2 {
		t.Fatalf("expected nil to be skipped, got %d", g.Len())
	}
	g.Dispose()
	if len(order) != 2 || order[0] != "y" {
		t.Fatalf("expected reverse order, got %v", order)
	}
	if g.Len() != 0 {
		t.Fatalf("expected empty group after dispose, got %d", g.Len())
	}
}
