package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	backendtcell "github.com/odvcencio/furry-binder/backend/tcell"
	"github.com/odvcencio/furry-binder/runtime"
	"github.com/odvcencio/furry-binder/widgets"
)

type fixture struct {
	agent  *Agent
	loop   *runtime.Loop
	title  *widgets.Label
	name   *widgets.TextField
	agree  *widgets.Checkbox
	submit *widgets.Button
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		title:  widgets.NewLabel("Sign up"),
		name:   widgets.NewTextField(),
		agree:  widgets.NewCheckbox("I agree"),
		submit: widgets.NewButton("Send"),
	}
	f.name.SetPlaceholder("name")
	root := widgets.NewColumn().
		Add(f.title, 1).
		Add(f.name, 1).
		Add(f.agree, 1).
		Add(f.submit, 1)

	sim := backendtcell.NewSimulation(30, 6)
	t.Cleanup(sim.Fini)
	f.loop = runtime.NewLoop(runtime.LoopConfig{Backend: sim, Root: root, Width: 30, Height: 6})
	f.agent = New(Config{Loop: f.loop, Sim: sim})
	return f
}

func TestAgent_SnapshotDescribesWidgets(t *testing.T) {
	f := newFixture(t)
	f.agree.SetChecked(true)
	f.submit.SetEnabled(false)

	snap := f.agent.Snapshot()
	if snap.Width != 30 || snap.Height != 6 {
		t.Fatalf("expected 30x6, got %dx%d", snap.Width, snap.Height)
	}
	if len(snap.Widgets) != 1 || snap.Widgets[0].Kind != "widgets.Column" {
		t.Fatalf("expected a column root, got %+v", snap.Widgets)
	}
	if got := len(snap.Widgets[0].Children); got != 4 {
		t.Fatalf("expected 4 children, got %d", got)
	}
	if !strings.HasPrefix(snap.Text, "Sign up") {
		t.Fatalf("expected screen text to start with the title, got %q", snap.Text)
	}
	if !f.agent.IsChecked("i agree") {
		t.Fatalf("expected checkbox to be checked")
	}
	if f.agent.IsEnabled("send") {
		t.Fatalf("expected button to be disabled")
	}
	send := f.agent.FindByLabel("send")
	if len(send.Actions) != 0 {
		t.Fatalf("expected no actions on a disabled button, got %v", send.Actions)
	}
	if got := len(f.agent.FindByKind("widgets.TextField")); got != 1 {
		t.Fatalf("expected 1 text field, got %d", got)
	}
	if f.agent.FindByID(f.name.ID().String()) == nil {
		t.Fatalf("expected text field to be found by id")
	}
}

func TestAgent_TypeAndFocus(t *testing.T) {
	f := newFixture(t)
	f.loop.Focus().FocusWidget(f.name)

	f.agent.Type("ada")
	if got := f.name.Text(); got != "ada" {
		t.Fatalf("expected text %q, got %q", "ada", got)
	}
	if !f.agent.ContainsText("ada") {
		t.Fatalf("expected typed text on screen, got %q", f.agent.CaptureText())
	}
	focused := f.agent.GetFocused()
	if focused == nil || focused.Kind != "widgets.TextField" {
		t.Fatalf("expected text field focused, got %+v", focused)
	}

	if err := f.agent.Focus("i agree"); err != nil {
		t.Fatalf("focus: %v", err)
	}
	f.agent.Press(tcell.KeyTab)
	if !f.agent.IsFocused("send") {
		t.Fatalf("expected tab to move focus to the button")
	}
	if err := f.agent.Focus("sign up"); !errors.Is(err, ErrNotFocusable) {
		t.Fatalf("expected ErrNotFocusable, got %v", err)
	}
	if err := f.agent.Focus("missing"); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("expected ErrWidgetNotFound, got %v", err)
	}
}

func TestAgent_ClickText(t *testing.T) {
	f := newFixture(t)
	clicks := 0
	f.submit.OnClick(func() { clicks++ })
	f.agent.Settle()

	x, y := f.agent.FindText("Send")
	if x != 2 || y != 3 {
		t.Fatalf("expected Send at (2, 3), got (%d, %d)", x, y)
	}
	if err := f.agent.ClickText("Send"); err != nil {
		t.Fatalf("click: %v", err)
	}
	if clicks != 1 {
		t.Fatalf("expected 1 click, got %d", clicks)
	}
	if err := f.agent.ClickText("nowhere"); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("expected ErrWidgetNotFound, got %v", err)
	}
}

func TestAgent_WaitFor(t *testing.T) {
	f := newFixture(t)
	stop := f.loop.Start(context.Background())
	defer stop()

	f.loop.After(5*time.Millisecond, func() { f.title.SetText("Done") })
	if err := f.agent.WaitFor(2*time.Second, func() bool { return f.agent.ContainsText("Done") }); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if err := f.agent.WaitFor(10*time.Millisecond, func() bool { return false }); !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}
