package runtime

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-binder/backend"
)

type cellRecorder struct {
	rows map[int]string
	sets int
}

func (c *cellRecorder) Init() error            { return nil }
func (c *cellRecorder) Fini()                  {}
func (c *cellRecorder) Size() (int, int)       { return 0, 0 }
func (c *cellRecorder) HideCursor()            {}
func (c *cellRecorder) Show()                  {}
func (c *cellRecorder) PollEvent() tcell.Event { return nil }

func (c *cellRecorder) SetContent(x, y int, r rune, style backend.Style) {
	c.sets++
}

func (c *cellRecorder) SetRow(y int, startX int, cells []backend.Cell) {
	runes := make([]rune, 0, len(cells))
	for _, cell := range cells {
		runes = append(runes, cell.Rune)
	}
	c.rows[y] = string(runes)
}

func TestBuffer_FlushWritesDirtySpans(t *testing.T) {
	buf := NewBuffer(6, 2)
	rec := &cellRecorder{rows: map[int]string{}}
	buf.Flush(rec)

	rec.rows = map[int]string{}
	buf.SetString(2, 1, "ab", backend.DefaultStyle())
	if n := buf.Flush(rec); n != 2 {
		t.Fatalf("expected 2 flushed cells, got %d", n)
	}
	if len(rec.rows) != 1 || rec.rows[1] != "ab" {
		t.Fatalf("expected only row 1 span %q, got %v", "ab", rec.rows)
	}
	if buf.IsDirty() {
		t.Fatal("expected clean buffer after flush")
	}

	buf.SetString(2, 1, "ab", backend.DefaultStyle())
	if buf.IsDirty() {
		t.Fatal("expected unchanged write to stay clean")
	}
}

func TestBuffer_SetStringClipsAndWide(t *testing.T) {
	buf := NewBuffer(4, 1)
	if n := buf.SetString(0, 0, "日本語", backend.DefaultStyle()); n != 4 {
		t.Fatalf("expected 4 columns used, got %d", n)
	}
	if got := buf.Line(0); got != "日本" {
		t.Fatalf("expected %q, got %q", "日本", got)
	}
	buf.SetString(-1, 5, "zz", backend.DefaultStyle())
	if got := buf.Get(9, 9); got.Rune != ' ' {
		t.Fatalf("expected blank outside buffer, got %q", got.Rune)
	}
}

func TestBuffer_DrawBox(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.DrawBox(Rect{Width: 3, Height: 3}, backend.DefaultStyle())
	if got := buf.Line(0); got != "┌─┐" {
		t.Fatalf("expected top border, got %q", got)
	}
	if got := buf.Line(1); got != "│ │" {
		t.Fatalf("expected side borders, got %q", got)
	}
}
