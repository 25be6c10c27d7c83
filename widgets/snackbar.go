package widgets

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/runtime"
)

// DefaultSnackDuration is how long an undo affordance stays up.
const DefaultSnackDuration = 4 * time.Second

// Timer runs fn after delay unless the returned handle is disposed first.
// runtime.Loop implements it.
type Timer interface {
	After(delay time.Duration, fn func()) lifecycle.Disposable
}

type snack struct {
	label     string
	action    string
	undo      func()
	dismissed func()
	expiry    lifecycle.Disposable
}

// Snackbar shows one transient message with an undo action at a time.
// Showing a new one dismisses the previous. Ctrl+Z, "u" or a click on the
// action takes it.
type Snackbar struct {
	Base

	timer       Timer
	duration    time.Duration
	current     *snack
	style       backend.Style
	actionStyle backend.Style
}

// NewSnackbar creates a snackbar whose messages expire on timer.
// A non-positive duration means DefaultSnackDuration.
func NewSnackbar(timer Timer, duration time.Duration) *Snackbar {
	if duration <= 0 {
		duration = DefaultSnackDuration
	}
	return &Snackbar{
		timer:       timer,
		duration:    duration,
		style:       backend.DefaultStyle().Reverse(true),
		actionStyle: backend.DefaultStyle().Reverse(true).Bold(true),
	}
}

// ShowUndo shows label with an action. Exactly one of undo and dismissed
// is called later.
func (s *Snackbar) ShowUndo(label, action string, undo func(), dismissed func()) {
	if s.current != nil {
		s.Dismiss()
	}
	sn := &snack{label: label, action: action, undo: undo, dismissed: dismissed}
	s.current = sn
	sn.expiry = s.timer.After(s.duration, func() {
		if s.current == sn {
			glog.V(2).Infof("[snackbar] %q expired", sn.label)
			s.Dismiss()
		}
	})
	s.Invalidate()
}

// Showing returns the label on display.
func (s *Snackbar) Showing() (string, bool) {
	if s.current == nil {
		return "", false
	}
	return s.current.label, true
}

// Undo takes the action of the message on display.
func (s *Snackbar) Undo() bool {
	sn := s.take()
	if sn == nil {
		return false
	}
	if sn.undo != nil {
		sn.undo()
	}
	return true
}

// Dismiss hides the message on display without taking its action.
func (s *Snackbar) Dismiss() bool {
	sn := s.take()
	if sn == nil {
		return false
	}
	if sn.dismissed != nil {
		sn.dismissed()
	}
	return true
}

func (s *Snackbar) take() *snack {
	sn := s.current
	if sn == nil {
		return nil
	}
	s.current = nil
	sn.expiry.Dispose()
	s.Invalidate()
	return sn
}

// actionX returns the column where the action label starts.
func (s *Snackbar) actionX() int {
	return s.bounds.X + s.bounds.Width - runewidth.StringWidth(s.current.action) - 3
}

// Render draws the message with the action right-aligned.
func (s *Snackbar) Render(ctx runtime.RenderContext) {
	if !s.drawable() || s.current == nil {
		return
	}
	row := s.bounds.Row(0)
	writePadded(ctx.Buffer, row.X, row.Y, row.Width, " "+s.current.label, s.style)
	if x := s.actionX(); x > row.X {
		ctx.Buffer.SetString(x, row.Y, "["+s.current.action+"]", s.actionStyle)
	}
}

// HandleMessage takes the action on Ctrl+Z, "u" or a click on it.
func (s *Snackbar) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if s.current == nil || s.hidden {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		if m.Key == tcell.KeyCtrlZ || m.IsRune('u') {
			s.Undo()
			return runtime.Handled()
		}
	case runtime.MouseMsg:
		if m.Action == runtime.MousePress && m.Button == runtime.MouseLeft &&
			s.bounds.Contains(m.X, m.Y) && m.X >= s.actionX() {
			s.Undo()
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}
