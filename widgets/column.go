package widgets

import "github.com/odvcencio/furry-binder/runtime"

// Flex marks a column entry that shares the rows left after fixed entries.
const Flex = 0

type columnEntry struct {
	widget runtime.Widget
	height int
}

// Column stacks children top to bottom. Each child has a fixed height or
// Flex; flex children split the remaining rows evenly.
type Column struct {
	Base
	entries []columnEntry
}

// NewColumn creates an empty column.
func NewColumn() *Column {
	return &Column{}
}

// Add appends child with the given height and returns the column.
func (c *Column) Add(child runtime.Widget, height int) *Column {
	if child != nil {
		c.entries = append(c.entries, columnEntry{widget: child, height: max(0, height)})
	}
	return c
}

// Layout assigns rows to children. Hidden children get none.
func (c *Column) Layout(bounds runtime.Rect) {
	c.Base.Layout(bounds)
	fixed, flex := 0, 0
	for _, e := range c.entries {
		if !shown(e.widget) {
			continue
		}
		if e.height == Flex {
			flex++
		} else {
			fixed += e.height
		}
	}
	spare := max(0, bounds.Height-fixed)
	rest := bounds
	for _, e := range c.entries {
		if !shown(e.widget) {
			e.widget.Layout(runtime.Rect{X: bounds.X, Y: rest.Y})
			continue
		}
		height := e.height
		if height == Flex {
			height = spare / flex
			spare -= height
			flex--
		}
		var top runtime.Rect
		top, rest = rest.SplitRows(height)
		e.widget.Layout(top)
	}
}

// Render draws all children. It lays them out again first so that
// visibility changes since the last pass take effect.
func (c *Column) Render(ctx runtime.RenderContext) {
	if c.hidden {
		return
	}
	c.Layout(c.bounds)
	for _, e := range c.entries {
		e.widget.Render(ctx)
	}
}

// HandleMessage forwards messages to children until one handles it.
func (c *Column) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if c.hidden {
		return runtime.Unhandled()
	}
	return forward(c.ChildWidgets(), msg)
}

// ChildWidgets returns the column children.
func (c *Column) ChildWidgets() []runtime.Widget {
	out := make([]runtime.Widget, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.widget)
	}
	return out
}

func shown(w runtime.Widget) bool {
	v, ok := w.(interface{ Visible() bool })
	return !ok || v.Visible()
}
