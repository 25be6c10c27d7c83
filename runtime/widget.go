package runtime

// Widget is a node of the UI tree.
type Widget interface {
	Layout(bounds Rect)
	Render(ctx RenderContext)
	HandleMessage(msg Message) HandleResult
}

// ChildProvider exposes child widgets for focus traversal.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// Focusable widgets take keyboard input while focused.
type Focusable interface {
	Widget
	CanFocus() bool
	Focus()
	Blur()
	IsFocused() bool
}

// RenderContext carries the target buffer of a render pass.
type RenderContext struct {
	Buffer *Buffer
}

// HandleResult reports whether a message was consumed and which commands
// it produced.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled consumes the message.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled lets the message continue to the next receiver.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand consumes the message and emits cmds.
func WithCommand(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}
