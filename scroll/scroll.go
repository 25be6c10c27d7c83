// Package scroll provides row viewport math and the auto-scroll policy used by
// list views.
package scroll

import "fmt"

// AutoScrollMode controls whether a list view follows inserted items.
type AutoScrollMode int

const (
	// AutoScrollNone never scrolls on insert.
	AutoScrollNone AutoScrollMode = iota
	// AutoScrollAll scrolls to every inserted range.
	AutoScrollAll
	// AutoScrollOnlyTail scrolls only when the inserted range ends the list.
	AutoScrollOnlyTail
)

func (m AutoScrollMode) String() string {
	switch m {
	case AutoScrollNone:
		return "none"
	case AutoScrollAll:
		return "all"
	case AutoScrollOnlyTail:
		return "only-tail"
	default:
		return fmt.Sprintf("AutoScrollMode(%d)", int(m))
	}
}

// ShouldAutoScroll reports whether an insert should move the viewport.
func ShouldAutoScroll(mode AutoScrollMode, isLast bool) bool {
	switch mode {
	case AutoScrollAll:
		return true
	case AutoScrollOnlyTail:
		return isLast
	default:
		return false
	}
}

// Target returns the row an inserted range scrolls to: its last element.
func Target(position, count int) int {
	if count < 1 {
		count = 1
	}
	return position + count - 1
}

// Controller provides scroll control for widgets.
type Controller interface {
	ScrollToPosition(index int)
	ScrollBy(rows int)
	ScrollToStart()
	ScrollToEnd()
}

// Viewport tracks the visible window of a row-based list.
type Viewport struct {
	offset   int
	count    int
	height   int
	onChange func(offset, count, height int)
}

// NewViewport creates a viewport showing height rows.
func NewViewport(height int) *Viewport {
	v := &Viewport{}
	v.SetHeight(height)
	return v
}

// SetOnChange sets a callback for offset updates.
func (v *Viewport) SetOnChange(fn func(offset, count, height int)) {
	if v == nil {
		return
	}
	v.onChange = fn
}

// SetCount updates the row count and clamps the offset.
func (v *Viewport) SetCount(count int) {
	if v == nil {
		return
	}
	if count < 0 {
		count = 0
	}
	v.count = count
	v.ScrollTo(v.offset)
}

// Count returns the row count.
func (v *Viewport) Count() int {
	if v == nil {
		return 0
	}
	return v.count
}

// SetHeight updates the visible row count and clamps the offset.
func (v *Viewport) SetHeight(height int) {
	if v == nil {
		return
	}
	if height < 0 {
		height = 0
	}
	v.height = height
	v.ScrollTo(v.offset)
}

// Height returns the number of visible rows.
func (v *Viewport) Height() int {
	if v == nil {
		return 0
	}
	return v.height
}

// Offset returns the first visible row.
func (v *Viewport) Offset() int {
	if v == nil {
		return 0
	}
	return v.offset
}

// MaxOffset returns the maximum scrollable offset.
func (v *Viewport) MaxOffset() int {
	if v == nil {
		return 0
	}
	return max(v.count-v.height, 0)
}

// ScrollTo sets the first visible row.
func (v *Viewport) ScrollTo(offset int) {
	if v == nil {
		return
	}
	next := min(max(offset, 0), v.MaxOffset())
	if next == v.offset {
		return
	}
	v.offset = next
	if v.onChange != nil {
		v.onChange(v.offset, v.count, v.height)
	}
}

// ScrollBy adjusts the offset.
func (v *Viewport) ScrollBy(rows int) {
	if v == nil {
		return
	}
	v.ScrollTo(v.offset + rows)
}

// ScrollToStart shows the first row.
func (v *Viewport) ScrollToStart() {
	v.ScrollTo(0)
}

// ScrollToEnd shows the last row.
func (v *Viewport) ScrollToEnd() {
	if v == nil {
		return
	}
	v.ScrollTo(v.MaxOffset())
}

// ScrollToPosition scrolls the minimum distance that makes index visible.
func (v *Viewport) ScrollToPosition(index int) {
	if v == nil || v.height == 0 {
		return
	}
	switch {
	case index < v.offset:
		v.ScrollTo(index)
	case index >= v.offset+v.height:
		v.ScrollTo(index - v.height + 1)
	}
}

// Visible returns the half-open range of visible rows.
func (v *Viewport) Visible() (first, end int) {
	if v == nil {
		return 0, 0
	}
	return v.offset, min(v.offset+v.height, v.count)
}

// Contains reports whether index is on screen.
func (v *Viewport) Contains(index int) bool {
	first, end := v.Visible()
	return index >= first && index < end
}

var _ Controller = (*Viewport)(nil)
