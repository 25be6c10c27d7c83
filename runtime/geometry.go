package runtime

// Rect is a rectangle of screen cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Row returns the one-line rectangle at row offset dy inside r.
func (r Rect) Row(dy int) Rect {
	return Rect{X: r.X, Y: r.Y + dy, Width: r.Width, Height: 1}
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// SplitRows cuts r into a top part of height rows and the rest.
func (r Rect) SplitRows(rows int) (top, rest Rect) {
	rows = max(0, min(rows, r.Height))
	top = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: rows}
	rest = Rect{X: r.X, Y: r.Y + rows, Width: r.Width, Height: r.Height - rows}
	return top, rest
}
