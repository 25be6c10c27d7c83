package binding

import (
	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/list"
	"github.com/odvcencio/furry-binder/scroll"
	"github.com/odvcencio/furry-binder/state"
)

// ListBinding connects a list view to an ObservableList or a read-only
// slice and owns the view's gesture and auto-scroll configuration.
type ListBinding[T any] struct {
	id       ulid.ULID
	scope    *lifecycle.Scope
	view     ListControl
	list     *list.ObservableList[T]
	adapter  lifecycle.Disposable
	inserted func(InsertedFunc)
	gestures *GestureController[T]

	gestureFrom    lifecycle.Disposable
	dragAndDrop    lifecycle.Disposable
	autoScrollFrom lifecycle.Disposable
	release        func()
	disposed       bool
}

// ID returns the binding identifier.
func (b *ListBinding[T]) ID() ulid.ULID {
	return b.id
}

// Mode is always OneWay: the view never writes the list directly; gestures
// go through the controller.
func (b *ListBinding[T]) Mode() Mode {
	return OneWay
}

// Disposed reports whether Dispose has run.
func (b *ListBinding[T]) Disposed() bool {
	return b.disposed
}

// Gestures returns the gesture controller, or nil for read-only lists.
func (b *ListBinding[T]) Gestures() *GestureController[T] {
	return b.gestures
}

// EnableGesture applies params. nil disables gestures.
func (b *ListBinding[T]) EnableGesture(params *GestureParams[T]) {
	if b.gestures == nil || b.disposed {
		return
	}
	b.gestures.Configure(params)
}

// EnableGestureFrom makes gesture parameters follow an observable.
func (b *ListBinding[T]) EnableGestureFrom(params state.Readable[*GestureParams[T]]) {
	if b.gestures == nil || b.disposed {
		return
	}
	if b.gestureFrom != nil {
		b.gestureFrom.Dispose()
	}
	b.gestureFrom = state.Observe(b.scope, params, b.EnableGesture)
	b.EnableGesture(params.Get())
}

// EnableDragAndDrop turns drag reordering on or off, replacing any gesture
// configuration.
func (b *ListBinding[T]) EnableDragAndDrop(on bool) {
	if b.gestures == nil || b.disposed {
		return
	}
	b.gestures.EnableDragAndDrop(on)
}

// EnableDragAndDropFrom makes drag reordering follow an observable.
func (b *ListBinding[T]) EnableDragAndDropFrom(on state.Readable[bool]) {
	if b.gestures == nil || b.disposed {
		return
	}
	if b.dragAndDrop != nil {
		b.dragAndDrop.Dispose()
	}
	b.dragAndDrop = state.Observe(b.scope, on, b.EnableDragAndDrop)
	b.EnableDragAndDrop(on.Get())
}

// EnableAutoScroll sets the auto-scroll policy for inserted items.
func (b *ListBinding[T]) EnableAutoScroll(mode scroll.AutoScrollMode) {
	if b.inserted == nil || b.disposed {
		return
	}
	if mode == scroll.AutoScrollNone {
		b.inserted(nil)
		return
	}
	view := b.view
	b.inserted(func(position, count int, isLast bool) {
		if scroll.ShouldAutoScroll(mode, isLast) {
			view.ScrollToPosition(scroll.Target(position, count))
		}
	})
}

// EnableAutoScrollFrom makes the auto-scroll policy follow an observable.
func (b *ListBinding[T]) EnableAutoScrollFrom(mode state.Readable[scroll.AutoScrollMode]) {
	if b.inserted == nil || b.disposed {
		return
	}
	if b.autoScrollFrom != nil {
		b.autoScrollFrom.Dispose()
	}
	b.autoScrollFrom = state.Observe(b.scope, mode, b.EnableAutoScroll)
	b.EnableAutoScroll(mode.Get())
}

// Dispose detaches gestures, observers and the adapter. The list itself and
// its other listeners are untouched.
func (b *ListBinding[T]) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	for _, d := range []lifecycle.Disposable{b.autoScrollFrom, b.dragAndDrop, b.gestureFrom} {
		if d != nil {
			d.Dispose()
		}
	}
	if b.gestures != nil {
		b.gestures.Dispose()
	}
	b.adapter.Dispose()
	if b.release != nil {
		b.release()
	}
	glog.V(2).Infof("[binding][%s] dispose list", b.id)
}

// ListBuilder configures a ListBinding. Exactly one of List and ReadOnly
// must be set before Build.
type ListBuilder[T any] struct {
	view            ListControl
	list            *list.ObservableList[T]
	readOnly        state.Readable[[]T]
	bindItem        ItemBinder[T]
	surface         GestureSurface
	undo            UndoPresenter
	gestures        *GestureParams[T]
	gesturesFrom    state.Readable[*GestureParams[T]]
	dragAndDrop     bool
	dragAndDropFrom state.Readable[bool]
	autoScroll      scroll.AutoScrollMode
	autoScrollFrom  state.Readable[scroll.AutoScrollMode]
}

// NewListBuilder starts a builder for view. If view also implements
// GestureSurface or UndoPresenter, those are used unless overridden.
func NewListBuilder[T any](view ListControl) *ListBuilder[T] {
	b := &ListBuilder[T]{view: view}
	if surface, ok := view.(GestureSurface); ok {
		b.surface = surface
	}
	if undo, ok := view.(UndoPresenter); ok {
		b.undo = undo
	}
	return b
}

// List uses an observable list as the source.
func (b *ListBuilder[T]) List(l *list.ObservableList[T]) *ListBuilder[T] {
	b.list = l
	return b
}

// ReadOnly uses an observable slice as the source. Every change refreshes the view.
func (b *ListBuilder[T]) ReadOnly(data state.Readable[[]T]) *ListBuilder[T] {
	b.readOnly = data
	return b
}

// Items uses a fixed slice as a read-only source.
func (b *ListBuilder[T]) Items(items ...T) *ListBuilder[T] {
	return b.ReadOnly(state.NewConst(items))
}

// BindItem sets how each row is bound to its item.
func (b *ListBuilder[T]) BindItem(fn ItemBinder[T]) *ListBuilder[T] {
	b.bindItem = fn
	return b
}

// Surface sets where gestures are recognized.
func (b *ListBuilder[T]) Surface(s GestureSurface) *ListBuilder[T] {
	b.surface = s
	return b
}

// Undo sets the presenter for pending deletions.
func (b *ListBuilder[T]) Undo(p UndoPresenter) *ListBuilder[T] {
	b.undo = p
	return b
}

// Gestures enables drag and swipe gestures with fixed params.
func (b *ListBuilder[T]) Gestures(params GestureParams[T]) *ListBuilder[T] {
	b.gestures = &params
	return b
}

// GesturesFrom reconfigures gestures whenever params changes.
func (b *ListBuilder[T]) GesturesFrom(params state.Readable[*GestureParams[T]]) *ListBuilder[T] {
	b.gesturesFrom = params
	return b
}

// DragAndDrop toggles drag reordering.
func (b *ListBuilder[T]) DragAndDrop(on bool) *ListBuilder[T] {
	b.dragAndDrop = on
	return b
}

// DragAndDropFrom toggles drag reordering from an observable.
func (b *ListBuilder[T]) DragAndDropFrom(on state.Readable[bool]) *ListBuilder[T] {
	b.dragAndDropFrom = on
	return b
}

// AutoScroll sets when inserts scroll the view.
func (b *ListBuilder[T]) AutoScroll(mode scroll.AutoScrollMode) *ListBuilder[T] {
	b.autoScroll = mode
	return b
}

// AutoScrollFrom follows an observable auto scroll mode.
func (b *ListBuilder[T]) AutoScrollFrom(mode state.Readable[scroll.AutoScrollMode]) *ListBuilder[T] {
	b.autoScrollFrom = mode
	return b
}

func (b *ListBuilder[T]) wantsGestures() bool {
	return b.gestures != nil || b.gesturesFrom != nil || b.dragAndDrop || b.dragAndDropFrom != nil
}

// Build connects the view on scope. It panics with ErrNoListSource,
// ErrTwoListSources or ErrReadOnlyGestures on a miswired builder.
func (b *ListBuilder[T]) Build(scope *lifecycle.Scope) *ListBinding[T] {
	switch {
	case b.view == nil:
		panic(wiringError(ErrControlType, "list binding needs a ListControl"))
	case b.list == nil && b.readOnly == nil:
		panic(ErrNoListSource)
	case b.list != nil && b.readOnly != nil:
		panic(ErrTwoListSources)
	case b.readOnly != nil && b.wantsGestures():
		panic(ErrReadOnlyGestures)
	}

	lb := &ListBinding[T]{id: ulid.Make(), scope: scope, view: b.view, list: b.list}
	if b.readOnly != nil {
		lb.adapter = NewReadOnlyAdapter(scope, b.readOnly, b.view, b.bindItem)
	} else {
		adapter := NewListAdapter(scope, b.list, b.view, b.bindItem)
		lb.adapter = adapter
		lb.inserted = adapter.SetInsertedListener
		if b.surface != nil {
			lb.gestures = NewGestureController(b.list, b.surface, b.undo)
		} else if b.wantsGestures() {
			glog.Warningf("[binding][%s] gestures requested but view has no gesture surface", lb.id)
		}
	}
	lb.release, _ = scope.Add(lb)
	if lb.disposed {
		return lb
	}

	switch {
	case b.gesturesFrom != nil:
		lb.EnableGestureFrom(b.gesturesFrom)
	case b.gestures != nil:
		lb.EnableGesture(b.gestures)
	case b.dragAndDropFrom != nil:
		lb.EnableDragAndDropFrom(b.dragAndDropFrom)
	case b.dragAndDrop:
		lb.EnableDragAndDrop(true)
	}
	if b.autoScrollFrom != nil {
		lb.EnableAutoScrollFrom(b.autoScrollFrom)
	} else {
		lb.EnableAutoScroll(b.autoScroll)
	}
	glog.V(2).Infof("[binding][%s] connect list scope=%s", lb.id, scope.Name())
	return lb
}

// BuildInto builds on the binder's default scope and registers the result.
func (b *ListBuilder[T]) BuildInto(binder *Binder) *Binder {
	return binder.Add(b.Build(binder.RequireScope()))
}
