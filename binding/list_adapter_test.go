package binding

import (
	"slices"
	"testing"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/list"
	"github.com/odvcencio/furry-binder/scroll"
	"github.com/odvcencio/furry-binder/state"
)

func TestListAdapter_DispatchTable(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	l := list.Of("a", "b")
	view := &fakeList{}
	NewListAdapter(scope, l, view, nil)

	l.AddAll("c", "d")
	l.RemoveRange(0, 2)
	l.Move(0, 1)
	l.Set(0, "x")
	l.Clear()

	// Each call also records the live count the view would see.
	want := []string{
		"refresh#2",
		"insert(2,2)#4",
		"remove(0,2)#2",
		"move(0,1)#2",
		"change(0,1)#2",
		"refresh#0",
	}
	if !slices.Equal(view.calls, want) {
		t.Fatalf("expected %v, got %v", want, view.calls)
	}
}

func TestListAdapter_InsertedIsLast(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	l := list.Of(1, 2, 3)
	view := &fakeList{}
	a := NewListAdapter(scope, l, view, nil)

	type insert struct {
		pos, count int
		last       bool
	}
	var got []insert
	a.SetInsertedListener(func(pos, count int, last bool) {
		got = append(got, insert{pos, count, last})
	})

	l.Insert(0, 0)
	l.AddAll(4, 5)
	want := []insert{{0, 1, false}, {4, 2, true}}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListAdapter_Dispose(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	l := list.Of(1)
	other := 0
	l.AddListenerForever(func(list.Event[int]) { other++ })
	view := &fakeList{}
	a := NewListAdapter(scope, l, view, nil)

	a.Dispose()
	l.Add(2)
	if len(view.calls) != 1 {
		t.Fatalf("expected no calls after dispose, got %v", view.calls)
	}
	if view.source != nil {
		t.Fatalf("expected source detached")
	}
	if l.Listeners() != 1 || other != 2 {
		t.Fatalf("expected other listener kept, listeners=%d calls=%d", l.Listeners(), other)
	}
}

func TestListAdapter_BindItemResetsRow(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	titles := []*state.Signal[string]{state.NewSignal("one"), state.NewSignal("two")}
	l := list.From(titles)
	view := &fakeList{}
	NewListAdapter(scope, l, view, func(b *Binder, row TextDisplay, item *state.Signal[string]) {
		BindText(b, row, item)
	})

	rowBinder := NewBinder(nil)
	row := &fakeText{}
	view.source.BindItem(rowBinder, row, 0)
	if row.Text() != "one" || rowBinder.Scope() != scope {
		t.Fatalf("expected row bound to one on adapter scope, got %q", row.Text())
	}

	view.source.BindItem(rowBinder, row, 1)
	titles[0].Set("stale")
	if row.Text() != "two" {
		t.Fatalf("expected rebound row to show two, got %q", row.Text())
	}
	if titles[0].Subscribers() != 0 {
		t.Fatalf("expected previous row binding released")
	}
}

func TestReadOnlyAdapter(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	data := state.NewSignal([]string{"a"})
	view := &fakeList{}
	a := NewReadOnlyAdapter(scope, data, view, nil)

	data.Set([]string{"a", "b", "c"})
	want := []string{"refresh#1", "refresh#3"}
	if !slices.Equal(view.calls, want) {
		t.Fatalf("expected %v, got %v", want, view.calls)
	}
	a.Dispose()
	data.Set(nil)
	if len(view.calls) != 2 {
		t.Fatalf("expected no refresh after dispose")
	}
}

func TestAutoScrollOnlyTail(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	l := list.Of("a", "b")
	view := &fakeList{}
	b := NewListBuilder[string](view).List(l).AutoScroll(scroll.AutoScrollOnlyTail).Build(scope)

	l.Insert(0, "head")
	if len(view.scrolled) != 0 {
		t.Fatalf("expected no scroll for non-tail insert, got %v", view.scrolled)
	}
	l.AddAll("y", "z")
	if !slices.Equal(view.scrolled, []int{4}) {
		t.Fatalf("expected scroll to 4, got %v", view.scrolled)
	}

	b.EnableAutoScroll(scroll.AutoScrollAll)
	l.Insert(1, "mid")
	if !slices.Equal(view.scrolled, []int{4, 1}) {
		t.Fatalf("expected scroll to 1, got %v", view.scrolled)
	}

	b.EnableAutoScroll(scroll.AutoScrollNone)
	l.Add("tail")
	if len(view.scrolled) != 2 {
		t.Fatalf("expected no scroll in none mode, got %v", view.scrolled)
	}
}

func TestAutoScrollFrom(t *testing.T) {
	scope := lifecycle.NewScope("screen")
	l := list.New[int]()
	view := &fakeList{}
	mode := state.NewSignal(scroll.AutoScrollNone)
	NewListBuilder[int](view).List(l).AutoScrollFrom(mode).Build(scope)

	l.Add(1)
	mode.Set(scroll.AutoScrollAll)
	l.Add(2)
	if !slices.Equal(view.scrolled, []int{1}) {
		t.Fatalf("expected scroll to 1, got %v", view.scrolled)
	}
}
