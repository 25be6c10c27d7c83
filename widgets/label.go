package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/runtime"
)

// Alignment controls horizontal text placement.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Label displays text. Single-line labels truncate; wrapping labels break
// lines at the right edge and honor newlines.
type Label struct {
	Base
	text      string
	style     backend.Style
	alignment Alignment
	wrap      bool
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{
		text:  text,
		style: backend.DefaultStyle(),
	}
}

// Text returns the current label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.Invalidate()
}

// SetStyle sets the label style.
func (l *Label) SetStyle(style backend.Style) {
	l.style = style
}

// SetAlignment sets text alignment.
func (l *Label) SetAlignment(align Alignment) {
	l.alignment = align
}

// SetWrap enables multi-line wrapping.
func (l *Label) SetWrap(wrap bool) {
	l.wrap = wrap
}

// Render draws the label.
func (l *Label) Render(ctx runtime.RenderContext) {
	if !l.drawable() {
		return
	}
	bounds := l.bounds
	style := l.style
	if l.disabled {
		style = style.Dim(true)
	}
	if l.wrap {
		drawText(ctx.Buffer, bounds, l.text, style)
		return
	}
	text := truncateString(l.text, bounds.Width)
	x := bounds.X
	switch l.alignment {
	case AlignCenter:
		x = bounds.X + (bounds.Width-runewidth.StringWidth(text))/2
	case AlignRight:
		x = bounds.X + bounds.Width - runewidth.StringWidth(text)
	}
	ctx.Buffer.SetString(x, bounds.Y, text, style)
}
