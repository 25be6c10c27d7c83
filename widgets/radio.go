package widgets

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/runtime"
)

// GroupButton is one option of a ButtonGroup.
type GroupButton struct {
	ID    int
	Label string
}

// ButtonGroup is a vertical set of checkable buttons addressed by id.
// In single-selection mode it behaves as a radio group: checking a button
// unchecks the others and a checked button cannot be unchecked by the user.
// Otherwise every button toggles independently.
type ButtonGroup struct {
	FocusableBase

	buttons    []GroupButton
	checked    []int
	single     bool
	cursor     int
	style      backend.Style
	focusStyle backend.Style
	changed    listeners[func(int, bool)]
}

// NewRadioGroup creates a single-selection group.
func NewRadioGroup(buttons ...GroupButton) *ButtonGroup {
	return newButtonGroup(true, buttons)
}

// NewToggleGroup creates a multi-selection group.
func NewToggleGroup(buttons ...GroupButton) *ButtonGroup {
	return newButtonGroup(false, buttons)
}

func newButtonGroup(single bool, buttons []GroupButton) *ButtonGroup {
	return &ButtonGroup{
		buttons:    buttons,
		single:     single,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Reverse(true),
	}
}

// Buttons returns the options.
func (g *ButtonGroup) Buttons() []GroupButton {
	return g.buttons
}

// CheckedIDs returns the checked ids in check order.
func (g *ButtonGroup) CheckedIDs() []int {
	return slices.Clone(g.checked)
}

// SetSingleSelection switches between radio and toggle behavior.
func (g *ButtonGroup) SetSingleSelection(single bool) {
	g.single = single
}

// OnButtonChecked registers a listener called for every check state change.
func (g *ButtonGroup) OnButtonChecked(fn func(id int, checked bool)) (remove func()) {
	return g.changed.add(fn)
}

// Check checks id. In single-selection mode the other buttons are
// unchecked first.
func (g *ButtonGroup) Check(id int) {
	if slices.Contains(g.checked, id) || g.indexOf(id) < 0 {
		return
	}
	if g.single {
		for _, other := range slices.Clone(g.checked) {
			g.Uncheck(other)
		}
	}
	g.checked = append(g.checked, id)
	g.Invalidate()
	g.changed.each(func(fn func(int, bool)) { fn(id, true) })
}

// Uncheck unchecks id.
func (g *ButtonGroup) Uncheck(id int) {
	i := slices.Index(g.checked, id)
	if i < 0 {
		return
	}
	g.checked = slices.Delete(g.checked, i, i+1)
	g.Invalidate()
	g.changed.each(func(fn func(int, bool)) { fn(id, false) })
}

// ClearChecked unchecks every button.
func (g *ButtonGroup) ClearChecked() {
	for _, id := range slices.Clone(g.checked) {
		g.Uncheck(id)
	}
}

// Press acts on id as a user click would.
func (g *ButtonGroup) Press(id int) {
	if g.disabled {
		return
	}
	switch {
	case !slices.Contains(g.checked, id):
		g.Check(id)
	case !g.single:
		g.Uncheck(id)
	}
}

// Render draws one button per row.
func (g *ButtonGroup) Render(ctx runtime.RenderContext) {
	if !g.drawable() {
		return
	}
	on, off := "[x] ", "[ ] "
	if g.single {
		on, off = "(*) ", "( ) "
	}
	for i, b := range g.buttons {
		if i >= g.bounds.Height {
			break
		}
		marker := off
		if slices.Contains(g.checked, b.ID) {
			marker = on
		}
		style := g.style
		if g.focused && i == g.cursor {
			style = g.focusStyle
		}
		if g.disabled {
			style = style.Dim(true)
		}
		row := g.bounds.Row(i)
		writePadded(ctx.Buffer, row.X, row.Y, row.Width, marker+b.Label, style)
	}
}

// HandleMessage moves the cursor with the arrow keys and presses the
// button under it with space, Enter or a click.
func (g *ButtonGroup) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if g.disabled || g.hidden || len(g.buttons) == 0 {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.MouseMsg:
		if m.Button != runtime.MouseLeft || m.Action != runtime.MousePress || !g.bounds.Contains(m.X, m.Y) {
			return runtime.Unhandled()
		}
		if row := m.Y - g.bounds.Y; row < len(g.buttons) {
			g.cursor = row
			g.Press(g.buttons[row].ID)
			return runtime.Handled()
		}
	case runtime.KeyMsg:
		if !g.focused {
			return runtime.Unhandled()
		}
		switch {
		case m.Key == tcell.KeyUp:
			g.cursor = max(0, g.cursor-1)
		case m.Key == tcell.KeyDown:
			g.cursor = min(len(g.buttons)-1, g.cursor+1)
		case m.Key == tcell.KeyEnter || m.IsRune(' '):
			g.Press(g.buttons[g.cursor].ID)
		default:
			return runtime.Unhandled()
		}
		g.Invalidate()
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (g *ButtonGroup) indexOf(id int) int {
	return slices.IndexFunc(g.buttons, func(b GroupButton) bool { return b.ID == id })
}
