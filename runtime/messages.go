package runtime

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Message represents an event flowing into the UI.
// Messages come from terminal input, timers, or background goroutines.
type Message interface {
	isMessage()
}

// KeyMsg represents a keyboard input event.
type KeyMsg struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

func (KeyMsg) isMessage() {}

// IsRune reports whether the key is the printable rune r.
func (k KeyMsg) IsRune(r rune) bool {
	return k.Key == tcell.KeyRune && k.Rune == r
}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// MouseMsg represents a mouse input event.
type MouseMsg struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Mod    tcell.ModMask
}

func (MouseMsg) isMessage() {}

// MouseButton identifies which mouse button was involved.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction identifies what happened with the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)

// TickMsg is sent on each frame tick for animations.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg triggers a state queue flush in the update loop.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// InvalidateMsg requests a render pass without forcing a full redraw.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

// CallMsg runs Fn on the loop goroutine.
type CallMsg struct {
	Fn func()
}

func (CallMsg) isMessage() {}

// mouseTracker turns tcell's button-state events into press, release and
// move messages.
type mouseTracker struct {
	held tcell.ButtonMask
}

func (m *mouseTracker) translate(ev *tcell.EventMouse) MouseMsg {
	x, y := ev.Position()
	buttons := ev.Buttons()
	msg := MouseMsg{X: x, Y: y, Mod: ev.Modifiers()}
	switch {
	case buttons&tcell.WheelUp != 0:
		msg.Button, msg.Action = MouseWheelUp, MousePress
		return msg
	case buttons&tcell.WheelDown != 0:
		msg.Button, msg.Action = MouseWheelDown, MousePress
		return msg
	}
	pressed := buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	switch {
	case pressed != 0 && m.held == 0:
		msg.Action = MousePress
		msg.Button = buttonOf(pressed)
	case pressed == 0 && m.held != 0:
		msg.Action = MouseRelease
		msg.Button = buttonOf(m.held)
	default:
		msg.Action = MouseMove
		msg.Button = buttonOf(pressed)
	}
	m.held = pressed
	return msg
}

func buttonOf(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return MouseLeft
	case mask&tcell.Button3 != 0:
		return MouseMiddle
	case mask&tcell.Button2 != 0:
		return MouseRight
	}
	return MouseNone
}
