package runtime

import "context"

// Command represents an action emitted by widgets.
// Commands bubble up from widgets to the loop for handling.
type Command interface {
	Command()
}

// PostFunc sends a message into the loop.
// It returns false when the message queue is full.
type PostFunc func(Message) bool

// Quit signals the loop should exit.
type Quit struct{}

func (Quit) Command() {}

// Refresh requests a full redraw.
type Refresh struct{}

func (Refresh) Command() {}

// FocusNext moves focus to the next focusable widget.
type FocusNext struct{}

func (FocusNext) Command() {}

// FocusPrev moves focus to the previous focusable widget.
type FocusPrev struct{}

func (FocusPrev) Command() {}

// Effect runs work in a background goroutine.
// Use the provided context for cancellation and PostFunc to emit messages.
type Effect struct {
	Run func(ctx context.Context, post PostFunc)
}

func (Effect) Command() {}
