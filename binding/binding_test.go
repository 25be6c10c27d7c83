package binding

import (
	"errors"
	"testing"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("expected panic with %v, got %v", want, r)
		}
	}()
	fn()
}

// Signals do not replay on subscribe; the initial value comes from Connect.
func TestConnect_InitialSync(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal("hello")
	view := &fakeText{}

	NewTextBinding(data).Connect(scope, view)
	if view.Text() != "hello" {
		t.Fatalf("expected initial sync to hello, got %q", view.Text())
	}

	check := &fakeCheck{}
	NewCheckBinding(state.NewSignal(true), TwoWay, Straight).Connect(scope, check)
	if !check.Checked() {
		t.Fatalf("expected checked after connect")
	}
}

func TestTwoWay_NoFeedbackLoop(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal("a")
	view := &fakeText{}
	NewEditTextBinding(data, TwoWay).Connect(scope, view)
	writes := view.writes

	notified := 0
	data.Subscribe(func() { notified++ })

	view.Type("typed")
	if data.Get() != "typed" {
		t.Fatalf("expected data typed, got %q", data.Get())
	}
	if notified != 1 {
		t.Fatalf("expected 1 data notification, got %d", notified)
	}
	if view.writes != writes {
		t.Fatalf("expected no control write on echo, got %d extra", view.writes-writes)
	}

	data.Set("program")
	if view.Text() != "program" || view.writes != writes+1 {
		t.Fatalf("expected one write for program, got text=%q writes=%d", view.Text(), view.writes-writes)
	}
}

func TestDispose_StopsBothDirections(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal("a")
	view := &fakeText{}
	b := NewEditTextBinding(data, TwoWay).Connect(scope, view)

	b.Dispose()
	b.Dispose()
	if !b.Disposed() || b.Control() != nil {
		t.Fatalf("expected disposed binding without control")
	}

	data.Set("b")
	if view.Text() != "a" {
		t.Fatalf("expected view untouched after dispose, got %q", view.Text())
	}
	view.Type("c")
	if data.Get() != "b" {
		t.Fatalf("expected data untouched after dispose, got %q", data.Get())
	}
	if data.Subscribers() != 0 {
		t.Fatalf("expected subscription released, got %d", data.Subscribers())
	}
	if scope.Len() != 0 {
		t.Fatalf("expected binding released from scope, got %d", scope.Len())
	}
}

func TestScopeEnd_DisposesBinding(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal(false)
	view := &fakeCheck{}
	b := NewEnableBinding(data, Straight).Connect(scope, view)

	scope.Dispose()
	if !b.Disposed() {
		t.Fatalf("expected binding disposed with its scope")
	}
	data.Set(true)
	if view.Enabled() {
		t.Fatalf("expected no update after scope end")
	}
}

func TestConnect_EndedScopeNeverFires(t *testing.T) {
	scope := lifecycle.NewScope("gone")
	scope.Dispose()
	data := state.NewSignal("x")
	view := &fakeText{}

	b := NewTextBinding(data).Connect(scope, view)
	data.Set("y")
	if !b.Disposed() || view.writes != 0 {
		t.Fatalf("expected dead binding, disposed=%v writes=%d", b.Disposed(), view.writes)
	}
}

func TestConnect_WrongControlType(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	expectPanic(t, ErrControlType, func() {
		NewCheckBinding(state.NewSignal(true), OneWay, Straight).Connect(scope, &fakeText{})
	})
	expectPanic(t, ErrControlType, func() {
		NewTextBinding(state.NewSignal("")).Connect(scope, nil)
	})
}

func TestConnect_Twice(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	b := NewTextBinding(state.NewSignal("")).Connect(scope, &fakeText{})
	expectPanic(t, ErrConnected, func() {
		b.Connect(scope, &fakeText{})
	})
}

func TestMode_ReadOnlyDataCannotWrite(t *testing.T) {
	expectPanic(t, ErrModeUnsupported, func() {
		NewEditTextBinding(state.NewConst("fixed"), TwoWay)
	})
}

func TestOneWayToSource_PushesViewOnce(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal("data")
	view := &fakeText{text: "view"}
	NewEditTextBinding(data, OneWayToSource).Connect(scope, view)

	if data.Get() != "view" {
		t.Fatalf("expected view value pushed, got %q", data.Get())
	}
	data.Set("other")
	if view.Text() != "view" {
		t.Fatalf("expected view not to follow data, got %q", view.Text())
	}
	view.Type("next")
	if data.Get() != "next" {
		t.Fatalf("expected next, got %q", data.Get())
	}
}

func TestCheck_Inverse(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal(true)
	view := &fakeCheck{}
	NewCheckBinding(data, TwoWay, Inverse).Connect(scope, view)

	if view.Checked() {
		t.Fatalf("expected inverse display")
	}
	view.SetChecked(true)
	if data.Get() {
		t.Fatalf("expected inverse write")
	}
}

func TestEditInt_IgnoresGarbage(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewComparableSignal(12)
	view := &fakeText{}
	NewEditTextBinding(IntText(data), TwoWay).Connect(scope, view)

	if view.Text() != "12" {
		t.Fatalf("expected 12, got %q", view.Text())
	}
	view.Type("40")
	if data.Get() != 40 {
		t.Fatalf("expected 40, got %d", data.Get())
	}
	view.Type("4x")
	if data.Get() != 40 {
		t.Fatalf("expected garbage ignored, got %d", data.Get())
	}
}

func TestMultiEnable_ConnectAll(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal(true)
	b := NewMultiEnableBinding(data, Straight)

	expectPanic(t, ErrUseConnectAll, func() {
		b.Connect(scope, &fakeCheck{})
	})

	first, second, third := &fakeCheck{}, &fakeCheck{}, &fakeCheck{}
	b.ConnectAll(scope, first, second)
	b.ConnectAll(scope, third)
	if !first.Enabled() || !second.Enabled() || !third.Enabled() {
		t.Fatalf("expected all targets enabled")
	}
	data.Set(false)
	if first.Enabled() || second.Enabled() || third.Enabled() {
		t.Fatalf("expected all targets disabled")
	}
	if b.Targets() != 3 {
		t.Fatalf("expected 3 targets, got %d", b.Targets())
	}
	b.Dispose()
	if b.Targets() != 0 {
		t.Fatalf("expected targets cleared, got %d", b.Targets())
	}
}

func TestVisibility(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal(false)
	view := &fakeCheck{visible: true}
	NewVisibilityBinding(data, Straight).Connect(scope, view)
	if view.Visible() {
		t.Fatalf("expected hidden")
	}
	data.Set(true)
	if !view.Visible() {
		t.Fatalf("expected visible")
	}
}

func TestHeadless(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal(1)
	var seen []int
	b := NewHeadlessBinding[int](data, func(v int) { seen = append(seen, v) }).Connect(scope)
	data.Set(2)
	b.Dispose()
	data.Set(3)
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("expected [1 2], got %v", seen)
	}
}

func TestScheduledBinding(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	queue := state.NewQueue()
	data := state.NewSignal("a")
	view := &fakeText{}
	b := NewTextBinding(data)
	b.SetScheduler(queue)
	b.Connect(scope, view)

	data.Set("b")
	if view.Text() != "a" {
		t.Fatalf("expected queued update, got %q", view.Text())
	}
	queue.Flush()
	if view.Text() != "b" {
		t.Fatalf("expected b after flush, got %q", view.Text())
	}
}
