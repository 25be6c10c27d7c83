package binding

import (
	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/lifecycle"
)

// Command fans a control activation out to handlers. Handlers are scope
// bound; controls are attached with Attach.
type Command struct {
	handlers []*commandHandler
}

type commandHandler struct {
	fn    func()
	alive bool
}

// NewCommand creates a command with an optional handler that lives as long
// as the command.
func NewCommand(fn func()) *Command {
	c := &Command{}
	if fn != nil {
		c.handlers = append(c.handlers, &commandHandler{fn: fn, alive: true})
	}
	return c
}

// Bind adds fn for the lifetime of scope.
func (c *Command) Bind(scope *lifecycle.Scope, fn func()) lifecycle.Disposable {
	if fn == nil || scope.Disposed() {
		return lifecycle.Nop
	}
	h := &commandHandler{fn: fn, alive: true}
	c.handlers = append(c.handlers, h)
	var release func()
	handle := lifecycle.Func(func() {
		h.alive = false
		c.handlers = removeHandler(c.handlers, h)
		if release != nil {
			release()
		}
	})
	release, _ = scope.Add(handle)
	return handle
}

// Invoke runs every live handler in registration order.
func (c *Command) Invoke() {
	handlers := append([]*commandHandler(nil), c.handlers...)
	glog.V(2).Infof("[command] invoke %d handlers", len(handlers))
	for _, h := range handlers {
		if h.alive {
			h.fn()
		}
	}
}

// Attach makes activations of control invoke the command until the
// returned handle is disposed.
func (c *Command) Attach(control any) lifecycle.Disposable {
	view := mustControl[ClickControl]("command", control)
	return lifecycle.Func(view.OnClick(c.Invoke))
}

func removeHandler(handlers []*commandHandler, h *commandHandler) []*commandHandler {
	for i, item := range handlers {
		if item == h {
			return append(handlers[:i:i], handlers[i+1:]...)
		}
	}
	return handlers
}

// BindCommand attaches view to cmd and registers fn on the binder's scope.
func BindCommand(binder *Binder, view ClickControl, cmd *Command, fn func()) *Binder {
	binder.Add(cmd.Attach(view))
	if fn != nil {
		binder.Add(cmd.Bind(binder.RequireScope(), fn))
	}
	return binder
}
