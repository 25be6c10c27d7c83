package runtime

// FocusRing tracks the focusable widgets of a tree in traversal order.
type FocusRing struct {
	items   []Focusable
	current int
}

// NewFocusRing collects the focusable widgets under root.
// The first one receives focus.
func NewFocusRing(root Widget) *FocusRing {
	f := &FocusRing{current: -1}
	f.collect(root)
	if len(f.items) > 0 {
		f.set(0)
	}
	return f
}

func (f *FocusRing) collect(w Widget) {
	if w == nil {
		return
	}
	if fw, ok := w.(Focusable); ok && fw.CanFocus() {
		f.items = append(f.items, fw)
	}
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			f.collect(child)
		}
	}
}

// Len returns the number of focusable widgets.
func (f *FocusRing) Len() int {
	return len(f.items)
}

// Current returns the focused widget, or nil.
func (f *FocusRing) Current() Focusable {
	if f == nil || f.current < 0 || f.current >= len(f.items) {
		return nil
	}
	return f.items[f.current]
}

// Next moves focus forward, wrapping around.
func (f *FocusRing) Next() {
	f.move(1)
}

// Prev moves focus backward, wrapping around.
func (f *FocusRing) Prev() {
	f.move(-1)
}

// FocusWidget focuses w if it belongs to the ring.
func (f *FocusRing) FocusWidget(w Widget) bool {
	for i, item := range f.items {
		if Widget(item) == w {
			f.set(i)
			return true
		}
	}
	return false
}

func (f *FocusRing) move(delta int) {
	if f == nil || len(f.items) == 0 {
		return
	}
	n := len(f.items)
	next := (f.current + delta + n) % n
	for i := 0; i < n; i++ {
		if f.items[next].CanFocus() {
			f.set(next)
			return
		}
		next = (next + delta + n) % n
	}
}

func (f *FocusRing) set(index int) {
	if cur := f.Current(); cur != nil {
		cur.Blur()
	}
	f.current = index
	f.items[index].Focus()
}
