package widgets

import (
	"maps"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/binding"
	"github.com/odvcencio/furry-binder/runtime"
	"github.com/odvcencio/furry-binder/scroll"
)

// listRow is the view of one item. Each row owns a binder that the item
// source rebinds whenever the row shows a different item.
type listRow struct {
	binder *binding.Binder
	text   string
	stale  bool
}

func (r *listRow) Text() string { return r.text }

func (r *listRow) SetText(text string) { r.text = text }

// dragState is an in-progress reorder: the item at from is shown at to.
type dragState struct {
	from, to int
}

// pressState is a mouse press on a row that may become a click, a drag or
// a swipe. The first movement decides which.
type pressState struct {
	index  int
	startX int
	dx     int
	mode   pressMode
}

type pressMode int

const (
	pressUndecided pressMode = iota
	pressDrag
	pressSwipe
)

// ListView is a windowed list that shows only the rows in view and keeps
// them bound through an item source. Incremental notifications move,
// rebind or recycle just the affected rows.
//
// With gestures attached, space grabs the selected row for reordering
// (arrows move it, space or Enter drops it, Escape cancels) and Delete
// swipes it away. The mouse drags rows vertically and swipes them
// horizontally.
type ListView struct {
	FocusableBase

	source        binding.ItemSource
	viewport      *scroll.Viewport
	index         scroll.FixedHeightIndex
	rows          map[int]*listRow
	spare         []*listRow
	selected      int
	gestures      *binding.GestureRecognizer
	drag          *dragState
	press         *pressState
	binds         int
	activated     listeners[func(int)]
	style         backend.Style
	selectedStyle backend.Style
	dragStyle     backend.Style
}

// NewListView creates an empty list view.
func NewListView() *ListView {
	l := &ListView{
		viewport:      scroll.NewViewport(0),
		rows:          map[int]*listRow{},
		style:         backend.DefaultStyle(),
		selectedStyle: backend.DefaultStyle().Reverse(true),
		dragStyle:     backend.DefaultStyle().Bold(true).Underline(true),
	}
	l.index = scroll.FixedHeightIndex{Height: 1, Count: l.count}
	return l
}

// SetSource replaces the item source. Rows bound by the previous source are
// released.
func (l *ListView) SetSource(src binding.ItemSource) {
	l.recycleAll()
	l.source = src
	l.NotifyDataSetChanged()
}

// Source returns the item source.
func (l *ListView) Source() binding.ItemSource {
	return l.source
}

func (l *ListView) count() int {
	if l.source == nil {
		return 0
	}
	return l.source.ItemCount()
}

// Selected returns the selected item index, or -1 for an empty list.
func (l *ListView) Selected() int {
	if l.count() == 0 {
		return -1
	}
	return l.selected
}

// SetSelected selects index and scrolls it into view.
func (l *ListView) SetSelected(index int) {
	l.selected = l.clampIndex(index)
	l.ScrollToPosition(l.selected)
	l.Invalidate()
}

// Offset returns the first visible item.
func (l *ListView) Offset() int {
	return l.index.IndexForOffset(l.viewport.Offset())
}

// Binds returns how many times rows were bound, for tests and tracing.
func (l *ListView) Binds() int {
	return l.binds
}

// RowText returns the text of a visible row, binding it if needed.
func (l *ListView) RowText(index int) (string, bool) {
	l.syncRows()
	row, ok := l.rows[index]
	if !ok {
		return "", false
	}
	return row.text, true
}

// NotifyDataSetChanged rebinds every visible row.
func (l *ListView) NotifyDataSetChanged() {
	for _, row := range l.rows {
		row.stale = true
	}
	l.drag = nil
	l.press = nil
	l.afterCountChange()
}

// NotifyItemRangeInserted shifts rows at or after position down by count.
func (l *ListView) NotifyItemRangeInserted(position, count int) {
	l.shift(func(i int) (int, bool) {
		if i >= position {
			return i + count, true
		}
		return i, true
	})
	if l.selected >= position && l.count() > count {
		l.selected += count
	}
	l.cancelGesture()
	l.afterCountChange()
}

// NotifyItemRangeRemoved recycles the removed rows and shifts the rest up.
func (l *ListView) NotifyItemRangeRemoved(position, count int) {
	end := position + count
	l.shift(func(i int) (int, bool) {
		switch {
		case i >= end:
			return i - count, true
		case i >= position:
			return 0, false
		}
		return i, true
	})
	switch {
	case l.selected >= end:
		l.selected -= count
	case l.selected >= position:
		l.selected = position
	}
	l.cancelGesture()
	l.afterCountChange()
}

// NotifyItemMoved moves the row at from to to, shifting the rows between.
func (l *ListView) NotifyItemMoved(from, to int) {
	l.shift(func(i int) (int, bool) {
		return movedIndex(i, from, to), true
	})
	l.selected = movedIndex(l.selected, from, to)
	l.cancelGesture()
	l.Invalidate()
}

// NotifyItemRangeChanged rebinds the rows in range.
func (l *ListView) NotifyItemRangeChanged(position, count int) {
	for i := position; i < position+count; i++ {
		if row, ok := l.rows[i]; ok {
			row.stale = true
		}
	}
	l.Invalidate()
}

// movedIndex maps an index across a move of one item from from to to.
func movedIndex(i, from, to int) int {
	switch {
	case i == from:
		return to
	case from < to && i > from && i <= to:
		return i - 1
	case from > to && i >= to && i < from:
		return i + 1
	}
	return i
}

func (l *ListView) shift(remap func(int) (int, bool)) {
	next := make(map[int]*listRow, len(l.rows))
	for i, row := range l.rows {
		if j, keep := remap(i); keep {
			next[j] = row
		} else {
			l.recycle(row)
		}
	}
	l.rows = next
}

func (l *ListView) afterCountChange() {
	l.viewport.SetCount(l.index.TotalHeight())
	l.selected = l.clampIndex(l.selected)
	l.Invalidate()
}

func (l *ListView) clampIndex(i int) int {
	return min(max(i, 0), max(l.count()-1, 0))
}

// syncRows binds the rows on screen and recycles the rest.
func (l *ListView) syncRows() {
	if l.source == nil {
		return
	}
	l.viewport.SetHeight(l.bounds.Height)
	l.viewport.SetCount(l.index.TotalHeight())
	first, end := l.index.ItemsIn(l.viewport.Offset(), l.viewport.Height())
	shown := make(map[int]bool, end-first)
	for i := first; i < end; i++ {
		shown[l.displayed(i)] = true
	}
	for i, row := range l.rows {
		if !shown[i] {
			delete(l.rows, i)
			l.recycle(row)
		}
	}
	for i := first; i < end; i++ {
		item := l.displayed(i)
		row, ok := l.rows[item]
		if !ok {
			row = l.obtain()
			l.rows[item] = row
		} else if !row.stale {
			continue
		}
		row.stale = false
		l.binds++
		l.source.BindItem(row.binder, row, item)
	}
}

func (l *ListView) obtain() *listRow {
	if n := len(l.spare); n > 0 {
		row := l.spare[n-1]
		l.spare = l.spare[:n-1]
		return row
	}
	return &listRow{binder: binding.NewBinder(nil)}
}

func (l *ListView) recycle(row *listRow) {
	row.binder.Reset()
	row.text = ""
	row.stale = false
	l.spare = append(l.spare, row)
}

func (l *ListView) recycleAll() {
	for _, row := range l.rows {
		l.recycle(row)
	}
	clear(l.rows)
}

// Dispose releases every row binder.
func (l *ListView) Dispose() {
	l.recycleAll()
	for _, row := range l.spare {
		row.binder.Dispose()
	}
	l.spare = nil
}

// ScrollToPosition scrolls the minimum distance that shows item index.
func (l *ListView) ScrollToPosition(index int) {
	if l.viewport.Height() == 0 {
		l.viewport.SetHeight(l.bounds.Height)
	}
	l.viewport.SetCount(l.index.TotalHeight())
	top := l.index.OffsetForIndex(index)
	bottom := top + l.index.Height
	switch {
	case top < l.viewport.Offset():
		l.viewport.ScrollTo(top)
	case bottom > l.viewport.Offset()+l.viewport.Height():
		l.viewport.ScrollTo(bottom - l.viewport.Height())
	}
	l.Invalidate()
}

// ScrollBy scrolls by rows.
func (l *ListView) ScrollBy(rows int) {
	l.viewport.ScrollBy(rows)
	l.Invalidate()
}

// ScrollToStart shows the first item.
func (l *ListView) ScrollToStart() {
	l.viewport.ScrollToStart()
	l.Invalidate()
}

// ScrollToEnd shows the last item.
func (l *ListView) ScrollToEnd() {
	l.viewport.SetCount(l.index.TotalHeight())
	l.viewport.ScrollToEnd()
	l.Invalidate()
}

// AttachGestures installs r, replacing any previous recognizer.
func (l *ListView) AttachGestures(r *binding.GestureRecognizer) (detach func()) {
	if l.gestures != nil {
		glog.V(1).Infof("[list] replacing attached gesture recognizer")
	}
	l.gestures = r
	l.cancelGesture()
	return func() {
		if l.gestures == r {
			l.gestures = nil
			l.cancelGesture()
		}
	}
}

// Gestures returns the attached recognizer, or nil.
func (l *ListView) Gestures() *binding.GestureRecognizer {
	return l.gestures
}

// OnItemActivated registers a listener for Enter on the selected row.
func (l *ListView) OnItemActivated(fn func(index int)) (remove func()) {
	return l.activated.add(fn)
}

// Dragging reports whether a reorder is in progress.
func (l *ListView) Dragging() bool {
	return l.drag != nil
}

func (l *ListView) cancelGesture() {
	l.drag = nil
	l.press = nil
}

func (l *ListView) canDrag() bool {
	return l.gestures != nil && l.gestures.Drag && l.gestures.Settled != nil
}

func (l *ListView) canSwipe() bool {
	return l.gestures != nil && l.gestures.Swipe && l.gestures.Swiped != nil
}

func (l *ListView) settle() {
	drag := l.drag
	l.drag = nil
	if drag == nil || !l.canDrag() {
		return
	}
	// The move notification carries the selection along with the item.
	l.selected = drag.from
	l.gestures.Settled(drag.from, drag.to)
}

func (l *ListView) swipe(index int) {
	if !l.canSwipe() {
		return
	}
	l.gestures.Swiped(index)
}

// displayed returns the item shown at index while a drag is in progress.
func (l *ListView) displayed(index int) int {
	if l.drag == nil {
		return index
	}
	return movedIndex(index, l.drag.to, l.drag.from)
}

// Render draws the visible rows.
func (l *ListView) Render(ctx runtime.RenderContext) {
	if !l.drawable() {
		return
	}
	l.syncRows()
	bounds := l.bounds
	ctx.Buffer.Fill(bounds, ' ', l.style)
	first, end := l.index.ItemsIn(l.viewport.Offset(), l.viewport.Height())
	for i := first; i < end; i++ {
		row, ok := l.rows[l.displayed(i)]
		if !ok {
			continue
		}
		style := l.style
		switch {
		case l.drag != nil && i == l.drag.to:
			style = l.dragStyle
		case l.focused && i == l.selected:
			style = l.selectedStyle
		}
		y := bounds.Y + l.index.OffsetForIndex(i) - l.viewport.Offset()
		x := bounds.X
		if l.press != nil && l.press.index == i {
			x += l.press.dx
		}
		writePadded(ctx.Buffer, x, y, bounds.Width-(x-bounds.X), row.text, style)
	}
}

// HandleMessage navigates with the keyboard and recognizes gestures.
func (l *ListView) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if l.disabled || l.hidden || l.source == nil {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		if !l.focused {
			return runtime.Unhandled()
		}
		if l.handleKey(m) {
			l.Invalidate()
			return runtime.Handled()
		}
	case runtime.MouseMsg:
		if l.handleMouse(m) {
			l.Invalidate()
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (l *ListView) handleKey(key runtime.KeyMsg) bool {
	count := l.count()
	if count == 0 {
		return false
	}
	if l.drag != nil {
		switch {
		case key.Key == tcell.KeyUp:
			l.drag.to = max(l.drag.to-1, 0)
		case key.Key == tcell.KeyDown:
			l.drag.to = min(l.drag.to+1, count-1)
		case key.Key == tcell.KeyEnter || key.IsRune(' '):
			l.settle()
		case key.Key == tcell.KeyEscape:
			l.drag = nil
		default:
			return false
		}
		if l.drag != nil {
			l.ScrollToPosition(l.drag.to)
		}
		return true
	}
	page := max(l.viewport.Height(), 1)
	switch {
	case key.Key == tcell.KeyUp:
		l.SetSelected(l.selected - 1)
	case key.Key == tcell.KeyDown:
		l.SetSelected(l.selected + 1)
	case key.Key == tcell.KeyPgUp:
		l.SetSelected(l.selected - page)
	case key.Key == tcell.KeyPgDn:
		l.SetSelected(l.selected + page)
	case key.Key == tcell.KeyHome:
		l.SetSelected(0)
	case key.Key == tcell.KeyEnd:
		l.SetSelected(count - 1)
	case key.Key == tcell.KeyEnter && l.activated.len() > 0:
		index := l.selected
		l.activated.each(func(fn func(int)) { fn(index) })
	case key.IsRune(' ') && l.canDrag():
		l.drag = &dragState{from: l.selected, to: l.selected}
	case (key.Key == tcell.KeyDelete || key.Key == tcell.KeyBackspace2) && l.canSwipe():
		l.swipe(l.selected)
	default:
		return false
	}
	return true
}

// swipeDistance is how far a row must travel horizontally to be swiped.
func (l *ListView) swipeDistance() int {
	return max(4, l.bounds.Width/3)
}

func (l *ListView) handleMouse(m runtime.MouseMsg) bool {
	inside := l.bounds.Contains(m.X, m.Y)
	row := l.index.IndexForOffset(m.Y - l.bounds.Y + l.viewport.Offset())
	switch {
	case m.Button == runtime.MouseWheelUp && inside:
		l.ScrollBy(-1)
		return true
	case m.Button == runtime.MouseWheelDown && inside:
		l.ScrollBy(1)
		return true
	case m.Action == runtime.MousePress && m.Button == runtime.MouseLeft && inside:
		if row >= l.count() {
			return false
		}
		l.press = &pressState{index: row, startX: m.X}
		l.SetSelected(row)
		return true
	case m.Action == runtime.MouseMove && l.press != nil:
		p := l.press
		if p.mode == pressUndecided {
			switch {
			case row != p.index && l.canDrag():
				p.mode = pressDrag
				l.drag = &dragState{from: p.index, to: p.index}
			case m.X != p.startX && l.canSwipe():
				p.mode = pressSwipe
			}
		}
		switch {
		case p.mode == pressDrag && l.drag != nil:
			l.drag.to = l.clampIndex(row)
		case p.mode == pressSwipe:
			p.dx = m.X - p.startX
		}
		return true
	case m.Action == runtime.MouseRelease && l.press != nil:
		press := l.press
		l.press = nil
		switch {
		case press.mode == pressDrag:
			l.settle()
		case press.mode == pressSwipe && abs(press.dx) >= l.swipeDistance():
			l.swipe(press.index)
		}
		return true
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// boundRows returns the sorted indexes of the bound rows.
func (l *ListView) boundRows() []int {
	return slices.Sorted(maps.Keys(l.rows))
}

var (
	_ binding.ListControl    = (*ListView)(nil)
	_ binding.GestureSurface = (*ListView)(nil)
)
