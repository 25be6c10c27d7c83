package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-binder/backend"
)

// Cell represents a single character cell in the buffer.
type Cell = backend.Cell

// span is the dirty column range [lo, hi) of one row.
type span struct {
	lo, hi int
}

func (s span) empty() bool {
	return s.hi <= s.lo
}

// Buffer is a 2D grid of cells for rendering widgets.
// Widgets render to the buffer, then the loop flushes the changed spans of
// each row to the backend.
type Buffer struct {
	cells  []Cell
	width  int
	height int
	dirty  []span
}

// NewBuffer creates a blank buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the buffer dimensions. Content is reset and every row is
// marked dirty.
func (b *Buffer) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if w == b.width && h == b.height && b.cells != nil {
		return
	}
	b.width, b.height = w, h
	b.cells = make([]Cell, w*h)
	for i := range b.cells {
		b.cells[i] = backend.Blank()
	}
	b.dirty = make([]span, h)
	b.MarkAllDirty()
}

// Clear fills the buffer with blanks.
func (b *Buffer) Clear() {
	b.Fill(Rect{0, 0, b.width, b.height}, ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank outside the buffer.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return backend.Blank()
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with style at (x, y). Unchanged cells stay clean.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	cell := Cell{Rune: r, Style: s}
	if b.cells[idx] == cell {
		return
	}
	b.cells[idx] = cell
	b.markDirty(x, y)
}

// SetString writes s starting at (x, y) and returns the number of columns
// used. Wide runes take two columns; the second holds a zero rune.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	px := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if px+w > b.width {
			break
		}
		b.Set(px, y, r, style)
		if w == 2 {
			b.Set(px+1, y, 0, style)
		}
		px += w
	}
	return px - x
}

// Fill fills a rectangular region with a rune and style.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	x0 := max(0, r.X)
	y0 := max(0, r.Y)
	x1 := min(b.width, r.X+r.Width)
	y1 := min(b.height, r.Y+r.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, ch, s)
		}
	}
}

// DrawBox draws a border around a rect using box-drawing characters.
func (b *Buffer) DrawBox(r Rect, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	b.Set(r.X, r.Y, '┌', s)
	b.Set(r.X+r.Width-1, r.Y, '┐', s)
	b.Set(r.X, r.Y+r.Height-1, '└', s)
	b.Set(r.X+r.Width-1, r.Y+r.Height-1, '┘', s)
	for x := r.X + 1; x < r.X+r.Width-1; x++ {
		b.Set(x, r.Y, '─', s)
		b.Set(x, r.Y+r.Height-1, '─', s)
	}
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		b.Set(r.X, y, '│', s)
		b.Set(r.X+r.Width-1, y, '│', s)
	}
}

// Line returns the runes of row y, wide-rune placeholders skipped.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, cell := range b.cells[y*b.width : (y+1)*b.width] {
		if cell.Rune != 0 {
			runes = append(runes, cell.Rune)
		}
	}
	return string(runes)
}

func (b *Buffer) markDirty(x, y int) {
	d := &b.dirty[y]
	if d.empty() {
		*d = span{lo: x, hi: x + 1}
		return
	}
	d.lo = min(d.lo, x)
	d.hi = max(d.hi, x+1)
}

// MarkAllDirty forces the next flush to write every cell.
func (b *Buffer) MarkAllDirty() {
	for y := range b.dirty {
		b.dirty[y] = span{lo: 0, hi: b.width}
	}
}

// IsDirty reports whether any cell changed since the last flush.
func (b *Buffer) IsDirty() bool {
	for _, d := range b.dirty {
		if !d.empty() {
			return true
		}
	}
	return false
}

// ForEachDirtySpan calls fn for the changed column range of each row.
func (b *Buffer) ForEachDirtySpan(fn func(y, startX, endX int)) {
	for y, d := range b.dirty {
		if !d.empty() {
			fn(y, d.lo, d.hi)
		}
	}
}

// Flush writes the dirty spans to be and clears the dirty state.
// Backends implementing backend.RowWriter receive whole spans.
func (b *Buffer) Flush(be backend.Backend) int {
	if be == nil {
		return 0
	}
	rows, hasRowWriter := be.(backend.RowWriter)
	flushed := 0
	b.ForEachDirtySpan(func(y, startX, endX int) {
		row := b.cells[y*b.width+startX : y*b.width+endX]
		if hasRowWriter {
			rows.SetRow(y, startX, row)
		} else {
			for i, cell := range row {
				if cell.Rune != 0 {
					be.SetContent(startX+i, y, cell.Rune, cell.Style)
				}
			}
		}
		flushed += endX - startX
	})
	clear(b.dirty)
	return flushed
}
