package binding

import (
	"testing"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

func TestPlainText(t *testing.T) {
	src := "# Title\n\nSome *bold* text\nwrapped.\n\n- one\n- `two`\n"
	want := "Title\nSome bold text wrapped.\n- one\n- two"
	if got := PlainText(src); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMarkdownBinding(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal("**hi**")
	view := &fakeText{}
	NewMarkdownBinding(data).Connect(scope, view)
	if view.Text() != "hi" {
		t.Fatalf("expected hi, got %q", view.Text())
	}
	data.Set("_bye_")
	if view.Text() != "bye" {
		t.Fatalf("expected bye, got %q", view.Text())
	}
}
