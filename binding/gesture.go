package binding

import (
	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/list"
)

// Deletion finalizes a swipe deletion.
type Deletion interface {
	Commit()
}

// PendingDeletion is a Deletion the user may undo while its undo affordance
// is showing. Exactly one of Commit and Rollback is called.
type PendingDeletion interface {
	Deletion
	ItemLabel() string
	UndoLabel() string
	Rollback()
}

// DeletionFunc adapts a commit function into a Deletion.
type DeletionFunc func()

// Commit calls f.
func (f DeletionFunc) Commit() {
	if f != nil {
		f()
	}
}

// NewPendingDeletion builds a PendingDeletion from callbacks. An empty
// undoLabel shows as "Undo".
func NewPendingDeletion(itemLabel, undoLabel string, commit, rollback func()) PendingDeletion {
	if undoLabel == "" {
		undoLabel = "Undo"
	}
	return &pendingDeletion{item: itemLabel, undo: undoLabel, commit: commit, rollback: rollback}
}

type pendingDeletion struct {
	item     string
	undo     string
	commit   func()
	rollback func()
}

func (p *pendingDeletion) ItemLabel() string { return p.item }
func (p *pendingDeletion) UndoLabel() string { return p.undo }

func (p *pendingDeletion) Commit() {
	if p.commit != nil {
		p.commit()
	}
}

func (p *pendingDeletion) Rollback() {
	if p.rollback != nil {
		p.rollback()
	}
}

// GestureParams configures the gestures of a list view. DeletionHandler is
// called with the swiped item while it is still in the list.
type GestureParams[T any] struct {
	DragToMove      bool
	SwipeToDelete   bool
	DeletionHandler func(item T) Deletion
}

// GestureController turns drag and swipe gestures on a surface into list
// mutations. A recognizer is attached only while at least one gesture is
// enabled, and reconfiguring always detaches the previous recognizer first.
type GestureController[T any] struct {
	list     *list.ObservableList[T]
	surface  GestureSurface
	undo     UndoPresenter
	params   GestureParams[T]
	detach   func()
	pending  int
	disposed bool
}

// NewGestureController creates a detached controller. undo may be nil, in
// which case pending deletions commit at once.
func NewGestureController[T any](l *list.ObservableList[T], surface GestureSurface, undo UndoPresenter) *GestureController[T] {
	return &GestureController[T]{list: l, surface: surface, undo: undo}
}

// Configure replaces the gesture parameters. nil disables all gestures.
func (g *GestureController[T]) Configure(params *GestureParams[T]) {
	if g.disposed {
		return
	}
	g.Detach()
	if params == nil {
		g.params = GestureParams[T]{}
		return
	}
	g.params = *params
	if !g.params.DragToMove && !g.params.SwipeToDelete {
		return
	}
	g.detach = g.surface.AttachGestures(&GestureRecognizer{
		Drag:    g.params.DragToMove,
		Swipe:   g.params.SwipeToDelete,
		Settled: g.settled,
		Swiped:  g.swiped,
	})
	glog.V(2).Infof("[gesture] attach drag=%v swipe=%v", g.params.DragToMove, g.params.SwipeToDelete)
}

// EnableDragAndDrop enables reordering only.
func (g *GestureController[T]) EnableDragAndDrop(on bool) {
	g.Configure(&GestureParams[T]{DragToMove: on})
}

// Attached reports whether a recognizer is attached.
func (g *GestureController[T]) Attached() bool {
	return g.detach != nil
}

// Pending reports the number of deletions waiting for undo or dismissal.
func (g *GestureController[T]) Pending() int {
	return g.pending
}

// Detach removes the current recognizer, if any.
func (g *GestureController[T]) Detach() {
	if g.detach == nil {
		return
	}
	detach := g.detach
	g.detach = nil
	detach()
	glog.V(2).Infof("[gesture] detach")
}

// Dispose detaches the recognizer. Undo affordances already showing still
// resolve their deletion.
func (g *GestureController[T]) Dispose() {
	if g.disposed {
		return
	}
	g.Detach()
	g.disposed = true
}

func (g *GestureController[T]) settled(from, to int) {
	if g.disposed || !g.params.DragToMove {
		glog.Warningf("[gesture] drop settle %d->%d on inactive controller", from, to)
		return
	}
	if from == to || from < 0 || to < 0 || from >= g.list.Len() || to >= g.list.Len() {
		return
	}
	g.list.Move(from, to)
}

func (g *GestureController[T]) swiped(index int) {
	if g.disposed || !g.params.SwipeToDelete {
		glog.Warningf("[gesture] drop swipe %d on inactive controller", index)
		return
	}
	if index < 0 || index >= g.list.Len() {
		return
	}
	item := g.list.At(index)
	var deletion Deletion
	if g.params.DeletionHandler != nil {
		deletion = g.params.DeletionHandler(item)
	}
	g.list.RemoveAt(index)

	pending, ok := deletion.(PendingDeletion)
	if !ok || g.undo == nil {
		if deletion != nil {
			deletion.Commit()
		}
		return
	}
	g.pending++
	settled := false
	g.undo.ShowUndo(pending.ItemLabel(), pending.UndoLabel(), func() {
		if settled {
			return
		}
		settled = true
		g.pending--
		g.list.Insert(min(index, g.list.Len()), item)
		pending.Rollback()
	}, func() {
		if settled {
			return
		}
		settled = true
		g.pending--
		pending.Commit()
	})
}
