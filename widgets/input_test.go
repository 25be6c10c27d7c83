package widgets

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-binder/runtime"
)

func TestTextField_Editing(t *testing.T) {
	field := NewTextField()
	field.Focus()
	var changes []string
	field.OnTextChanged(func(text string) { changes = append(changes, text) })

	for _, r := range "hello world" {
		field.HandleMessage(char(r))
	}
	if field.Text() != "hello world" {
		t.Fatalf("expected typed text, got %q", field.Text())
	}
	field.HandleMessage(key(tcell.KeyBackspace2))
	if field.Text() != "hello worl" {
		t.Fatalf("expected backspace to delete, got %q", field.Text())
	}
	field.HandleMessage(runtime.KeyMsg{Key: tcell.KeyLeft, Mod: tcell.ModCtrl})
	if field.CursorPos() != 6 {
		t.Fatalf("expected cursor at word start 6, got %d", field.CursorPos())
	}
	field.HandleMessage(key(tcell.KeyHome))
	field.HandleMessage(key(tcell.KeyDelete))
	if field.Text() != "ello worl" {
		t.Fatalf("expected delete at home, got %q", field.Text())
	}
	field.HandleMessage(key(tcell.KeyCtrlU))
	if field.Text() != "" || len(changes) != 14 {
		t.Fatalf("expected clear after 14 changes, got %q after %d", field.Text(), len(changes))
	}
}

func TestTextField_SetTextNotifiesOnChangeOnly(t *testing.T) {
	field := NewTextField()
	calls := 0
	field.OnTextChanged(func(string) { calls++ })
	field.SetText("a")
	field.SetText("a")
	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}
	if field.CursorPos() != 1 {
		t.Fatalf("expected cursor at end, got %d", field.CursorPos())
	}
}

func TestTextField_IgnoresInputWhenUnfocused(t *testing.T) {
	field := NewTextField()
	if field.HandleMessage(char('x')).Handled {
		t.Fatalf("expected unfocused field to ignore keys")
	}
	field.Focus()
	field.SetEnabled(false)
	if field.HandleMessage(char('x')).Handled || field.CanFocus() {
		t.Fatalf("expected disabled field to ignore keys and refuse focus")
	}
}

func TestTextField_SubmitAndRender(t *testing.T) {
	field := NewTextField()
	field.SetPlaceholder("name")
	if got := line(draw(field, 10, 1), 0); got != "name" {
		t.Fatalf("expected placeholder, got %q", got)
	}
	field.Focus()
	field.Type("bob")
	submitted := ""
	field.OnSubmit(func(text string) { submitted = text })
	field.HandleMessage(key(tcell.KeyEnter))
	if submitted != "bob" {
		t.Fatalf("expected submit with text, got %q", submitted)
	}
	if got := line(draw(field, 10, 1), 0); got != "bob" {
		t.Fatalf("expected rendered text, got %q", got)
	}
}
