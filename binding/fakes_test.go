package binding

import (
	"fmt"
	"slices"
)

type listeners[F any] struct {
	next int
	fns  map[int]F
}

func (l *listeners[F]) add(fn F) func() {
	if l.fns == nil {
		l.fns = map[int]F{}
	}
	l.next++
	id := l.next
	l.fns[id] = fn
	return func() { delete(l.fns, id) }
}

func (l *listeners[F]) each(call func(F)) {
	ids := make([]int, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := l.fns[id]; ok {
			call(fn)
		}
	}
}

type fakeText struct {
	text    string
	writes  int
	changed listeners[func(string)]
}

func (f *fakeText) Text() string { return f.text }

func (f *fakeText) SetText(text string) {
	f.writes++
	f.text = text
	f.changed.each(func(fn func(string)) { fn(text) })
}

func (f *fakeText) OnTextChanged(fn func(string)) func() { return f.changed.add(fn) }

// Type simulates user input.
func (f *fakeText) Type(text string) {
	f.text = text
	f.changed.each(func(fn func(string)) { fn(text) })
}

type fakeCheck struct {
	checked bool
	enabled bool
	visible bool
	writes  int
	changed listeners[func(bool)]
}

func (f *fakeCheck) Checked() bool { return f.checked }

func (f *fakeCheck) SetChecked(v bool) {
	f.writes++
	f.checked = v
	f.changed.each(func(fn func(bool)) { fn(v) })
}

func (f *fakeCheck) OnCheckedChanged(fn func(bool)) func() { return f.changed.add(fn) }
func (f *fakeCheck) Enabled() bool                         { return f.enabled }
func (f *fakeCheck) SetEnabled(v bool)                     { f.writes++; f.enabled = v }
func (f *fakeCheck) Visible() bool                         { return f.visible }
func (f *fakeCheck) SetVisible(v bool)                     { f.writes++; f.visible = v }

// fakeRange rejects values outside its range or off its step grid, like
// controls that fail at draw time.
type fakeRange struct {
	value, min, max, step float64
	writes                int
	changed               listeners[func(float64)]
}

func (f *fakeRange) Value() float64                         { return f.value }
func (f *fakeRange) Range() (float64, float64)              { return f.min, f.max }
func (f *fakeRange) Step() float64                          { return f.step }
func (f *fakeRange) OnValueChanged(fn func(float64)) func() { return f.changed.add(fn) }

func (f *fakeRange) SetValue(v float64) {
	if v < f.min || v > f.max {
		panic(fmt.Sprintf("value %v outside [%v,%v]", v, f.min, f.max))
	}
	f.writes++
	f.value = v
	f.changed.each(func(fn func(float64)) { fn(v) })
}

func (f *fakeRange) SetRange(min, max float64) {
	if f.value < min || f.value > max {
		panic(fmt.Sprintf("range [%v,%v] excludes value %v", min, max, f.value))
	}
	f.min, f.max = min, max
}

// Drag simulates the user moving the thumb.
func (f *fakeRange) Drag(v float64) {
	f.value = v
	f.changed.each(func(fn func(float64)) { fn(v) })
}

type fakeGroup struct {
	single  bool
	checked []int
	changed listeners[func(int, bool)]
}

func (f *fakeGroup) CheckedIDs() []int              { return slices.Clone(f.checked) }
func (f *fakeGroup) SetSingleSelection(single bool) { f.single = single }
func (f *fakeGroup) OnButtonChecked(fn func(int, bool)) func() {
	return f.changed.add(fn)
}

func (f *fakeGroup) Check(id int) {
	if slices.Contains(f.checked, id) {
		return
	}
	if f.single {
		for _, c := range slices.Clone(f.checked) {
			f.Uncheck(c)
		}
	}
	f.checked = append(f.checked, id)
	f.changed.each(func(fn func(int, bool)) { fn(id, true) })
}

func (f *fakeGroup) Uncheck(id int) {
	i := slices.Index(f.checked, id)
	if i < 0 {
		return
	}
	f.checked = slices.Delete(f.checked, i, i+1)
	f.changed.each(func(fn func(int, bool)) { fn(id, false) })
}

func (f *fakeGroup) ClearChecked() {
	for _, c := range slices.Clone(f.checked) {
		f.Uncheck(c)
	}
}

type fakeChoice struct {
	fakeText
	options []string
	chosen  listeners[func(string)]
}

func (f *fakeChoice) SetOptions(labels []string)          { f.options = labels }
func (f *fakeChoice) OnItemChosen(fn func(string)) func() { return f.chosen.add(fn) }

func (f *fakeChoice) Choose(label string) {
	f.text = label
	f.chosen.each(func(fn func(string)) { fn(label) })
}

type fakeSelect struct {
	options  []string
	selected int
	writes   int
	changed  listeners[func(int)]
}

func (f *fakeSelect) SetOptions(labels []string)     { f.options = labels }
func (f *fakeSelect) Selected() int                  { return f.selected }
func (f *fakeSelect) OnSelected(fn func(int)) func() { return f.changed.add(fn) }

func (f *fakeSelect) Select(index int) {
	f.writes++
	f.selected = index
	f.changed.each(func(fn func(int)) { fn(index) })
}

type fakeClick struct {
	clicked listeners[func()]
}

func (f *fakeClick) OnClick(fn func()) func() { return f.clicked.add(fn) }
func (f *fakeClick) Click()                   { f.clicked.each(func(fn func()) { fn() }) }

// fakeList records every notification as a string.
type fakeList struct {
	source   ItemSource
	calls    []string
	scrolled []int
}

func (f *fakeList) SetSource(src ItemSource) { f.source = src }
func (f *fakeList) NotifyDataSetChanged()    { f.record("refresh") }
func (f *fakeList) NotifyItemRangeInserted(p, n int) {
	f.record(fmt.Sprintf("insert(%d,%d)", p, n))
}
func (f *fakeList) NotifyItemRangeRemoved(p, n int) {
	f.record(fmt.Sprintf("remove(%d,%d)", p, n))
}
func (f *fakeList) NotifyItemMoved(from, to int) {
	f.record(fmt.Sprintf("move(%d,%d)", from, to))
}
func (f *fakeList) NotifyItemRangeChanged(p, n int) {
	f.record(fmt.Sprintf("change(%d,%d)", p, n))
}
func (f *fakeList) ScrollToPosition(index int) { f.scrolled = append(f.scrolled, index) }
func (f *fakeList) ScrollBy(int)               {}
func (f *fakeList) ScrollToStart()             {}
func (f *fakeList) ScrollToEnd()               {}

func (f *fakeList) record(call string) {
	count := -1
	if f.source != nil {
		count = f.source.ItemCount()
	}
	f.calls = append(f.calls, fmt.Sprintf("%s#%d", call, count))
}

// fakeSurface tracks attached recognizers and fails on overlap.
type fakeSurface struct {
	current  *GestureRecognizer
	attaches int
	detaches int
	overlap  bool
}

func (f *fakeSurface) AttachGestures(r *GestureRecognizer) func() {
	if f.current != nil {
		f.overlap = true
	}
	f.current = r
	f.attaches++
	return func() {
		f.detaches++
		if f.current == r {
			f.current = nil
		}
	}
}

type shownUndo struct {
	label, action   string
	undo, dismissed func()
}

type fakeUndo struct {
	shown []shownUndo
}

func (f *fakeUndo) ShowUndo(label, action string, undo func(), dismissed func()) {
	f.shown = append(f.shown, shownUndo{label, action, undo, dismissed})
}
