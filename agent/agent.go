// Package agent drives a UI loop headlessly for scripted interaction and
// tests. It renders into a tcell simulation screen and exposes the widget
// tree through the binding capability interfaces rather than raw terminal
// I/O.
package agent

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/oklog/ulid/v2"

	backendtcell "github.com/odvcencio/furry-binder/backend/tcell"
	"github.com/odvcencio/furry-binder/binding"
	"github.com/odvcencio/furry-binder/runtime"
)

// Common errors returned by Agent methods.
var (
	ErrWidgetNotFound = errors.New("widget not found")
	ErrWidgetDisabled = errors.New("widget is disabled")
	ErrNotFocusable   = errors.New("widget is not focusable")
	ErrTimeout        = errors.New("operation timed out")
	ErrNoLoop         = errors.New("no loop configured")
)

// Agent steps a runtime.Loop on the calling goroutine and reads back what
// it rendered.
type Agent struct {
	loop     *runtime.Loop
	sim      *backendtcell.Backend
	pollRate time.Duration
	widgets  map[string]runtime.Widget
}

// Config configures an Agent.
type Config struct {
	// Loop is the loop to drive. Its backend should be Sim.
	Loop *runtime.Loop

	// Sim is the simulation backend the loop renders into. Screen text
	// queries return nothing without it.
	Sim *backendtcell.Backend

	// PollRate is how often WaitFor checks its condition. Default is 5ms.
	PollRate time.Duration
}

// New creates an agent. It panics with ErrNoLoop if cfg.Loop is nil.
func New(cfg Config) *Agent {
	if cfg.Loop == nil {
		panic(ErrNoLoop)
	}
	pollRate := cfg.PollRate
	if pollRate <= 0 {
		pollRate = 5 * time.Millisecond
	}
	return &Agent{
		loop:     cfg.Loop,
		sim:      cfg.Sim,
		pollRate: pollRate,
		widgets:  map[string]runtime.Widget{},
	}
}

// Backend returns the simulation backend.
func (a *Agent) Backend() *backendtcell.Backend {
	return a.sim
}

// Settle handles every pending message and renders.
func (a *Agent) Settle() {
	a.loop.Flush()
	a.loop.Render()
}

// Send steps msg through the loop and settles.
func (a *Agent) Send(msg runtime.Message) {
	a.loop.Step(msg)
	a.Settle()
}

// Press sends a key.
func (a *Agent) Press(key tcell.Key) {
	a.Send(runtime.KeyMsg{Key: key})
}

// Type sends text one rune at a time.
func (a *Agent) Type(text string) {
	for _, r := range text {
		a.loop.Step(runtime.KeyMsg{Key: tcell.KeyRune, Rune: r})
	}
	a.Settle()
}

// Click presses and releases the left button at (x, y).
func (a *Agent) Click(x, y int) {
	a.loop.Step(runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MousePress})
	a.Send(runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MouseRelease})
}

// Drag presses at (x0, y0), moves to (x1, y1) and releases there.
func (a *Agent) Drag(x0, y0, x1, y1 int) {
	a.loop.Step(runtime.MouseMsg{X: x0, Y: y0, Button: runtime.MouseLeft, Action: runtime.MousePress})
	a.loop.Step(runtime.MouseMsg{X: x1, Y: y1, Button: runtime.MouseLeft, Action: runtime.MouseMove})
	a.Send(runtime.MouseMsg{X: x1, Y: y1, Button: runtime.MouseLeft, Action: runtime.MouseRelease})
}

// ClickText clicks the first screen cell of text.
func (a *Agent) ClickText(text string) error {
	x, y := a.FindText(text)
	if x < 0 {
		return fmt.Errorf("click %q: %w", text, ErrWidgetNotFound)
	}
	a.Click(x, y)
	return nil
}

// Focus moves focus to the first widget whose value contains label.
func (a *Agent) Focus(label string) error {
	info := a.FindByLabel(label)
	if info == nil {
		return fmt.Errorf("focus %q: %w", label, ErrWidgetNotFound)
	}
	if info.Disabled {
		return fmt.Errorf("focus %q: %w", label, ErrWidgetDisabled)
	}
	if !a.loop.Focus().FocusWidget(a.widgets[info.ID]) {
		return fmt.Errorf("focus %q: %w", label, ErrNotFocusable)
	}
	a.Settle()
	return nil
}

// WaitFor settles the loop until cond holds or timeout passes.
func (a *Agent) WaitFor(timeout time.Duration, cond func() bool) error {
	deadline := time.Now().Add(timeout)
	for {
		a.Settle()
		if cond() {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(a.pollRate)
	}
}

// Snapshot renders and returns a structured representation of the UI.
func (a *Agent) Snapshot() Snapshot {
	a.loop.Render()
	snap := Snapshot{Timestamp: time.Now()}
	snap.Width, snap.Height = a.loop.Buffer().Size()
	if a.sim != nil {
		snap.Text = a.CaptureText()
	}

	clear(a.widgets)
	if root := a.loop.Root(); root != nil {
		a.walkWidgets(root, &snap.Widgets)
	}
	if focused := a.loop.Focus().Current(); focused != nil {
		snap.FocusedID = widgetID(focused)
		snap.Focused = findByIDIn(snap.Widgets, snap.FocusedID)
	}
	return snap
}

func (a *Agent) walkWidgets(w runtime.Widget, out *[]WidgetInfo) {
	if w == nil {
		return
	}
	info := extractWidgetInfo(w)
	a.widgets[info.ID] = w
	if cp, ok := w.(runtime.ChildProvider); ok {
		for _, child := range cp.ChildWidgets() {
			a.walkWidgets(child, &info.Children)
		}
	}
	*out = append(*out, info)
}

func extractWidgetInfo(w runtime.Widget) WidgetInfo {
	info := WidgetInfo{
		ID:   widgetID(w),
		Kind: strings.TrimPrefix(fmt.Sprintf("%T", w), "*"),
	}
	if bp, ok := w.(interface{ Bounds() runtime.Rect }); ok {
		info.Bounds = bp.Bounds()
	}
	if t, ok := w.(binding.TextDisplay); ok {
		info.Value = t.Text()
	}
	if c, ok := w.(binding.CheckControl); ok {
		checked := c.Checked()
		info.Checked = &checked
	}
	if e, ok := w.(binding.EnableControl); ok {
		info.Disabled = !e.Enabled()
	}
	if v, ok := w.(binding.VisibleControl); ok {
		info.Hidden = !v.Visible()
	}
	if f, ok := w.(runtime.Focusable); ok {
		info.Focusable = f.CanFocus()
		info.Focused = f.IsFocused()
	}
	info.Actions = actionsFor(w, info)
	return info
}

// widgetID returns the widget's ulid when it has one, else its address.
func widgetID(w runtime.Widget) string {
	if id, ok := w.(interface{ ID() ulid.ULID }); ok {
		return id.ID().String()
	}
	return fmt.Sprintf("%p", w)
}

// actionsFor lists what a script can do with w.
func actionsFor(w runtime.Widget, info WidgetInfo) []string {
	if info.Disabled || info.Hidden {
		return nil
	}
	var actions []string
	switch w.(type) {
	case binding.ClickControl:
		actions = append(actions, "activate")
	case binding.CheckControl, binding.GroupControl:
		actions = append(actions, "toggle")
	case binding.TextControl:
		actions = append(actions, "type", "clear")
	case binding.ListControl:
		actions = append(actions, "select", "scroll")
	case binding.RangeControl, binding.SelectControl:
		actions = append(actions, "adjust")
	}
	if info.Focusable {
		actions = append(actions, "focus")
	}
	return actions
}

// FindByLabel finds the widget whose value equals label, ignoring case,
// or failing that the first one whose value contains it.
func (a *Agent) FindByLabel(label string) *WidgetInfo {
	snap := a.Snapshot()
	label = strings.ToLower(label)
	if found := findByLabelIn(snap.Widgets, func(v string) bool { return v == label }); found != nil {
		return found
	}
	return findByLabelIn(snap.Widgets, func(v string) bool { return strings.Contains(v, label) })
}

func findByLabelIn(widgets []WidgetInfo, match func(value string) bool) *WidgetInfo {
	for i := range widgets {
		w := &widgets[i]
		if w.Value != "" && match(strings.ToLower(w.Value)) {
			return w
		}
		if found := findByLabelIn(w.Children, match); found != nil {
			return found
		}
	}
	return nil
}

// FindByKind finds all widgets of the given type name, e.g. "widgets.Checkbox".
func (a *Agent) FindByKind(kind string) []WidgetInfo {
	snap := a.Snapshot()
	var results []WidgetInfo
	findByKindIn(snap.Widgets, kind, &results)
	return results
}

func findByKindIn(widgets []WidgetInfo, kind string, out *[]WidgetInfo) {
	for _, w := range widgets {
		if w.Kind == kind {
			*out = append(*out, w)
		}
		findByKindIn(w.Children, kind, out)
	}
}

// FindByID finds a widget by its ID.
func (a *Agent) FindByID(id string) *WidgetInfo {
	snap := a.Snapshot()
	return findByIDIn(snap.Widgets, id)
}

func findByIDIn(widgets []WidgetInfo, id string) *WidgetInfo {
	for i := range widgets {
		w := &widgets[i]
		if w.ID == id {
			return w
		}
		if found := findByIDIn(w.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// GetFocused returns the currently focused widget.
func (a *Agent) GetFocused() *WidgetInfo {
	return a.Snapshot().Focused
}

// IsFocused checks if a widget with the given label is focused.
func (a *Agent) IsFocused(label string) bool {
	w := a.FindByLabel(label)
	return w != nil && w.Focused
}

// IsEnabled checks if a widget with the given label is enabled.
func (a *Agent) IsEnabled(label string) bool {
	w := a.FindByLabel(label)
	return w != nil && !w.Disabled
}

// IsChecked checks if a check control with the given label is checked.
func (a *Agent) IsChecked(label string) bool {
	w := a.FindByLabel(label)
	return w != nil && w.Checked != nil && *w.Checked
}

// ContainsText checks if the given text appears on screen.
func (a *Agent) ContainsText(text string) bool {
	x, _ := a.FindText(text)
	return x >= 0
}

// FindText returns the position of text on screen, or (-1, -1) if not
// found. Text does not match across rows.
func (a *Agent) FindText(text string) (x, y int) {
	if a.sim == nil || text == "" {
		return -1, -1
	}
	_, height := a.sim.Size()
	for y := 0; y < height; y++ {
		row := a.sim.Row(y)
		if i := strings.Index(row, text); i >= 0 {
			return utf8.RuneCountInString(row[:i]), y
		}
	}
	return -1, -1
}

// CaptureText returns the screen rows joined by newlines, trailing blanks
// trimmed.
func (a *Agent) CaptureText() string {
	if a.sim == nil {
		return ""
	}
	_, height := a.sim.Size()
	rows := make([]string, height)
	for y := range rows {
		rows[y] = strings.TrimRight(a.sim.Row(y), " ")
	}
	return strings.Join(rows, "\n")
}
