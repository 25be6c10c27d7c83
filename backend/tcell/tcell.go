// Package tcell implements backend.Backend on top of a tcell screen.
package tcell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/backend"
)

// Backend wraps a tcell.Screen.
type Backend struct {
	screen tcell.Screen
}

// New creates a backend on the controlling terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return &Backend{screen: screen}, nil
}

// NewSimulation creates a backend over an in-memory screen of the given size.
func NewSimulation(width, height int) *Backend {
	screen := tcell.NewSimulationScreen("UTF-8")
	b := &Backend{screen: screen}
	if err := screen.Init(); err != nil {
		glog.Errorf("[backend] simulation init: %v", err)
	}
	screen.SetSize(width, height)
	return b
}

// Screen returns the wrapped screen.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Init initializes the screen and enables mouse reporting.
// An already initialized simulation screen is left as is.
func (b *Backend) Init() error {
	if _, ok := b.screen.(tcell.SimulationScreen); ok {
		return nil
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	b.screen.EnableMouse()
	b.screen.Clear()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the screen size in cells.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// SetContent writes one cell.
func (b *Backend) SetContent(x, y int, r rune, style backend.Style) {
	b.screen.SetContent(x, y, r, nil, style)
}

// SetRow writes a run of cells on row y. Zero runes mark the second column
// of a wide rune and are skipped.
func (b *Backend) SetRow(y int, startX int, cells []backend.Cell) {
	for i, cell := range cells {
		if cell.Rune == 0 {
			continue
		}
		b.screen.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
	}
}

// SetRect writes a row-major block of cells.
func (b *Backend) SetRect(x, y, width, height int, cells []backend.Cell) {
	if width <= 0 || height <= 0 || len(cells) < width*height {
		return
	}
	for row := 0; row < height; row++ {
		b.SetRow(y+row, x, cells[row*width:(row+1)*width])
	}
}

// HideCursor hides the text cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// Show flushes pending cells to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// PollEvent waits for the next event.
func (b *Backend) PollEvent() tcell.Event {
	return b.screen.PollEvent()
}

// Row returns the runes currently shown on row y, for tests and snapshots.
func (b *Backend) Row(y int) string {
	width, _ := b.screen.Size()
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, _, _, _ := b.screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		runes = append(runes, r)
	}
	return string(runes)
}

var (
	_ backend.Backend    = (*Backend)(nil)
	_ backend.RowWriter  = (*Backend)(nil)
	_ backend.RectWriter = (*Backend)(nil)
)
