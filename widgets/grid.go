package widgets

import "github.com/odvcencio/furry-binder/runtime"

// GridChild positions a widget in the grid.
type GridChild struct {
	Widget  runtime.Widget
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Grid lays out children in equal rows and columns.
type Grid struct {
	Base
	Rows     int
	Cols     int
	Gap      int
	Children []GridChild
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Rows: max(1, rows), Cols: max(1, cols)}
}

// Add places child at the given cell and returns the grid.
func (g *Grid) Add(child runtime.Widget, row, col, rowSpan, colSpan int) *Grid {
	if child == nil {
		return g
	}
	g.Children = append(g.Children, GridChild{
		Widget:  child,
		Row:     row,
		Col:     col,
		RowSpan: max(1, rowSpan),
		ColSpan: max(1, colSpan),
	})
	return g
}

// Layout positions children within the grid.
func (g *Grid) Layout(bounds runtime.Rect) {
	g.Base.Layout(bounds)
	rows, cols := max(1, g.Rows), max(1, g.Cols)
	cellW := max(0, (bounds.Width-g.Gap*(cols-1))/cols)
	cellH := max(0, (bounds.Height-g.Gap*(rows-1))/rows)
	for _, child := range g.Children {
		x := bounds.X + child.Col*(cellW+g.Gap)
		y := bounds.Y + child.Row*(cellH+g.Gap)
		width := cellW*child.ColSpan + g.Gap*(child.ColSpan-1)
		height := cellH*child.RowSpan + g.Gap*(child.RowSpan-1)
		child.Widget.Layout(runtime.Rect{X: x, Y: y, Width: width, Height: height})
	}
}

// Render draws all children.
func (g *Grid) Render(ctx runtime.RenderContext) {
	if g.hidden {
		return
	}
	for _, child := range g.Children {
		child.Widget.Render(ctx)
	}
}

// HandleMessage forwards messages to children until one handles it.
func (g *Grid) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if g.hidden {
		return runtime.Unhandled()
	}
	return forward(g.ChildWidgets(), msg)
}

// ChildWidgets returns grid children.
func (g *Grid) ChildWidgets() []runtime.Widget {
	out := make([]runtime.Widget, 0, len(g.Children))
	for _, child := range g.Children {
		out = append(out, child.Widget)
	}
	return out
}

// forward offers msg to each child in order. Focused children already saw
// key messages from the loop and are skipped.
func forward(children []runtime.Widget, msg runtime.Message) runtime.HandleResult {
	_, isKey := msg.(runtime.KeyMsg)
	for _, child := range children {
		if f, ok := child.(runtime.Focusable); ok && isKey && f.IsFocused() {
			continue
		}
		if result := child.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return runtime.Unhandled()
}
