package widgets

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/runtime"
)

// Select is an inline selector over a list of labels. -1 means no
// selection.
type Select struct {
	FocusableBase

	options    []string
	selected   int
	style      backend.Style
	focusStyle backend.Style
	changed    listeners[func(int)]
}

// NewSelect creates a select widget with nothing selected.
func NewSelect(options ...string) *Select {
	return &Select{
		options:    options,
		selected:   -1,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Reverse(true),
	}
}

// SetOptions replaces the labels. A selection past the end is cleared.
func (s *Select) SetOptions(labels []string) {
	s.options = slices.Clone(labels)
	if s.selected >= len(s.options) {
		s.Select(-1)
	}
	s.Invalidate()
}

// Options returns the labels.
func (s *Select) Options() []string {
	return s.options
}

// Selected returns the current selection index.
func (s *Select) Selected() int {
	return s.selected
}

// OnSelected registers a selection listener.
func (s *Select) OnSelected(fn func(index int)) (remove func()) {
	return s.changed.add(fn)
}

// Select updates the selected index; out-of-range indexes clear it.
func (s *Select) Select(index int) {
	if index < 0 || index >= len(s.options) {
		index = -1
	}
	if index == s.selected {
		return
	}
	s.selected = index
	s.Invalidate()
	s.changed.each(func(fn func(int)) { fn(index) })
}

// Render draws the select.
func (s *Select) Render(ctx runtime.RenderContext) {
	if !s.drawable() {
		return
	}
	label := ""
	if s.selected >= 0 {
		label = s.options[s.selected]
	}
	text := "< " + truncateString(label, s.bounds.Width-4) + " >"
	writePadded(ctx.Buffer, s.bounds.X, s.bounds.Y, s.bounds.Width, text, s.pickStyle(s.style, s.focusStyle))
}

// HandleMessage cycles the selection with the arrow keys.
func (s *Select) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !s.interactive() || len(s.options) == 0 {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}
	n := len(s.options)
	switch key.Key {
	case tcell.KeyLeft, tcell.KeyUp:
		s.Select((max(s.selected, 0) - 1 + n) % n)
	case tcell.KeyRight, tcell.KeyDown:
		s.Select((s.selected + 1) % n)
	case tcell.KeyHome:
		s.Select(0)
	case tcell.KeyEnd:
		s.Select(n - 1)
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

// Dropdown is an editable text field with a list of suggested labels.
// Up and Down browse the labels; Enter chooses the highlighted one.
type Dropdown struct {
	TextField

	full      runtime.Rect
	options   []string
	highlight int
	open      bool
	chosen    listeners[func(string)]
}

// NewDropdown creates an empty dropdown.
func NewDropdown(options ...string) *Dropdown {
	return &Dropdown{
		TextField: *NewTextField(),
		options:   options,
		highlight: -1,
	}
}

// SetOptions replaces the labels.
func (d *Dropdown) SetOptions(labels []string) {
	d.options = slices.Clone(labels)
	d.highlight = -1
	d.Invalidate()
}

// Options returns the labels.
func (d *Dropdown) Options() []string {
	return d.options
}

// OnItemChosen registers a listener for label choices.
func (d *Dropdown) OnItemChosen(fn func(label string)) (remove func()) {
	return d.chosen.add(fn)
}

// Choose sets the text to label and reports the choice.
func (d *Dropdown) Choose(label string) {
	d.open = false
	d.SetText(label)
	d.chosen.each(func(fn func(string)) { fn(label) })
}

// Layout keeps two columns for the arrow and one row per open option.
func (d *Dropdown) Layout(bounds runtime.Rect) {
	d.full = bounds
	field := bounds.Row(0)
	field.Width = max(0, field.Width-2)
	d.TextField.Layout(field)
}

// Render draws the field, the arrow and the open option list.
func (d *Dropdown) Render(ctx runtime.RenderContext) {
	if !d.drawable() {
		return
	}
	d.TextField.Render(ctx)
	style := d.pickStyle(d.style, d.focusStyle)
	ctx.Buffer.SetString(d.full.X+d.full.Width-2, d.full.Y, " v", style)
	if !d.open {
		return
	}
	for i, label := range d.options {
		if i+1 >= d.full.Height {
			break
		}
		row := d.full.Row(i + 1)
		optStyle := d.style
		if i == d.highlight {
			optStyle = d.focusStyle
		}
		writePadded(ctx.Buffer, row.X, row.Y, row.Width, " "+label, optStyle)
	}
}

// HandleMessage browses options with Up/Down and chooses with Enter; other
// keys edit the text.
func (d *Dropdown) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !d.interactive() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok || len(d.options) == 0 {
		return d.TextField.HandleMessage(msg)
	}
	n := len(d.options)
	switch key.Key {
	case tcell.KeyDown:
		d.open = true
		d.highlight = (d.highlight + 1) % n
	case tcell.KeyUp:
		d.open = true
		d.highlight = (max(d.highlight, 0) - 1 + n) % n
	case tcell.KeyEscape:
		d.open = false
	case tcell.KeyEnter:
		if !d.open || d.highlight < 0 {
			return d.TextField.HandleMessage(msg)
		}
		d.Choose(d.options[d.highlight])
	default:
		return d.TextField.HandleMessage(msg)
	}
	d.Invalidate()
	return runtime.Handled()
}
