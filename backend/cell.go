// Package backend defines the cell model and the render surface widgets
// draw onto.
package backend

import "github.com/gdamore/tcell/v2"

// Style is the terminal text style of a cell.
type Style = tcell.Style

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return tcell.StyleDefault
}

// Cell is one character cell of the screen.
type Cell struct {
	Rune  rune
	Style Style
}

// Blank is an empty cell in the default style.
func Blank() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// Backend is a terminal the runtime renders into.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, r rune, style Style)
	HideCursor()
	Show()
	// PollEvent blocks until the next input event. It returns nil once
	// the backend has been finalized.
	PollEvent() tcell.Event
}
