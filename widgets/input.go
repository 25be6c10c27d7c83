package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/runtime"
)

// TextField is a single-line text input with cursor support.
// Text changes, typed or set, are reported to OnTextChanged listeners.
type TextField struct {
	FocusableBase

	text        []rune
	cursorPos   int
	style       backend.Style
	focusStyle  backend.Style
	placeholder string

	changed listeners[func(string)]
	submit  listeners[func(string)]
}

// NewTextField creates an empty text field.
func NewTextField() *TextField {
	return &TextField{
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Bold(true),
	}
}

// SetPlaceholder sets the placeholder text shown when empty.
func (i *TextField) SetPlaceholder(text string) {
	i.placeholder = text
}

// SetStyle sets the normal style.
func (i *TextField) SetStyle(style backend.Style) {
	i.style = style
}

// SetFocusStyle sets the focused style.
func (i *TextField) SetFocusStyle(style backend.Style) {
	i.focusStyle = style
}

// OnTextChanged registers a text change listener.
func (i *TextField) OnTextChanged(fn func(text string)) (remove func()) {
	return i.changed.add(fn)
}

// OnSubmit registers a listener for Enter.
func (i *TextField) OnSubmit(fn func(text string)) (remove func()) {
	return i.submit.add(fn)
}

// Text returns the current input text.
func (i *TextField) Text() string {
	return string(i.text)
}

// SetText replaces the text and moves the cursor to the end.
func (i *TextField) SetText(text string) {
	if string(i.text) == text {
		return
	}
	i.text = []rune(text)
	i.cursorPos = len(i.text)
	i.notifyChange()
}

// CursorPos returns the cursor position in runes.
func (i *TextField) CursorPos() int {
	return i.cursorPos
}

// Render draws the input field.
func (i *TextField) Render(ctx runtime.RenderContext) {
	if !i.drawable() {
		return
	}
	bounds := i.bounds
	style := i.pickStyle(i.style, i.focusStyle)
	ctx.Buffer.Fill(bounds.Row(0), ' ', style)

	if len(i.text) == 0 && !i.focused && i.placeholder != "" {
		ctx.Buffer.SetString(bounds.X, bounds.Y, truncateString(i.placeholder, bounds.Width), style.Dim(true))
		return
	}

	// Scroll so the cursor cell stays visible.
	start := 0
	for runewidth.StringWidth(string(i.text[start:i.cursorPos])) >= bounds.Width && start < i.cursorPos {
		start++
	}
	x := bounds.X
	for idx := start; idx < len(i.text); idx++ {
		r := i.text[idx]
		cellStyle := style
		if i.focused && idx == i.cursorPos {
			cellStyle = style.Reverse(true)
		}
		w := runewidth.RuneWidth(r)
		if x+w > bounds.X+bounds.Width {
			break
		}
		x += ctx.Buffer.SetString(x, bounds.Y, string(r), cellStyle)
	}
	if i.focused && i.cursorPos == len(i.text) && x < bounds.X+bounds.Width {
		ctx.Buffer.Set(x, bounds.Y, ' ', style.Reverse(true))
	}
}

// HandleMessage processes keyboard input.
func (i *TextField) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !i.interactive() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}

	switch key.Key {
	case tcell.KeyEnter:
		text := i.Text()
		i.submit.each(func(fn func(string)) { fn(text) })
		return runtime.Handled()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if i.cursorPos > 0 {
			i.text = append(i.text[:i.cursorPos-1:i.cursorPos-1], i.text[i.cursorPos:]...)
			i.cursorPos--
			i.notifyChange()
		}
		return runtime.Handled()

	case tcell.KeyDelete:
		if i.cursorPos < len(i.text) {
			i.text = append(i.text[:i.cursorPos:i.cursorPos], i.text[i.cursorPos+1:]...)
			i.notifyChange()
		}
		return runtime.Handled()

	case tcell.KeyLeft:
		if key.Mod&tcell.ModCtrl != 0 {
			i.cursorPos = i.wordBoundaryLeft()
		} else if i.cursorPos > 0 {
			i.cursorPos--
		}
		return runtime.Handled()

	case tcell.KeyRight:
		if key.Mod&tcell.ModCtrl != 0 {
			i.cursorPos = i.wordBoundaryRight()
		} else if i.cursorPos < len(i.text) {
			i.cursorPos++
		}
		return runtime.Handled()

	case tcell.KeyHome, tcell.KeyCtrlA:
		i.cursorPos = 0
		return runtime.Handled()

	case tcell.KeyEnd, tcell.KeyCtrlE:
		i.cursorPos = len(i.text)
		return runtime.Handled()

	case tcell.KeyCtrlU:
		if len(i.text) > 0 {
			i.text = nil
			i.cursorPos = 0
			i.notifyChange()
		}
		return runtime.Handled()

	case tcell.KeyRune:
		i.insertText(string(key.Rune))
		return runtime.Handled()
	}

	return runtime.Unhandled()
}

// Type inserts text at the cursor as if typed.
func (i *TextField) Type(text string) {
	i.insertText(text)
}

func (i *TextField) insertText(text string) {
	if text == "" {
		return
	}
	ins := []rune(text)
	next := make([]rune, 0, len(i.text)+len(ins))
	next = append(next, i.text[:i.cursorPos]...)
	next = append(next, ins...)
	next = append(next, i.text[i.cursorPos:]...)
	i.text = next
	i.cursorPos += len(ins)
	i.notifyChange()
}

func (i *TextField) notifyChange() {
	i.Invalidate()
	text := i.Text()
	i.changed.each(func(fn func(string)) { fn(text) })
}

func (i *TextField) wordBoundaryLeft() int {
	pos := i.cursorPos - 1
	for pos > 0 && i.text[pos] == ' ' {
		pos--
	}
	for pos > 0 && i.text[pos-1] != ' ' {
		pos--
	}
	return max(pos, 0)
}

func (i *TextField) wordBoundaryRight() int {
	pos := i.cursorPos
	for pos < len(i.text) && i.text[pos] != ' ' {
		pos++
	}
	for pos < len(i.text) && i.text[pos] == ' ' {
		pos++
	}
	return pos
}
