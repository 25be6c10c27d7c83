package binding

import (
	"testing"

	"github.com/odvcencio/furry-binder/lifecycle"
)

func TestCommand(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	binder := NewBinder(scope)
	var calls []string
	cmd := NewCommand(func() { calls = append(calls, "forever") })
	button := &fakeClick{}

	BindCommand(binder, button, cmd, func() { calls = append(calls, "screen") })
	button.Click()
	if len(calls) != 2 || calls[0] != "forever" || calls[1] != "screen" {
		t.Fatalf("expected [forever screen], got %v", calls)
	}

	binder.Dispose()
	button.Click()
	cmd.Invoke()
	if len(calls) != 3 || calls[2] != "forever" {
		t.Fatalf("expected only forever handler after dispose, got %v", calls)
	}
}
