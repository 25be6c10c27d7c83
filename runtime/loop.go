// Package runtime runs the single-threaded UI loop. Every widget callback,
// binding update and deferred correction executes on the loop goroutine;
// other goroutines hand work over with Post, Call or Schedule.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/odvcencio/furry-binder/backend"
	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

// ErrNoBackend is returned by Run when the loop has no backend.
var ErrNoBackend = errors.New("runtime: backend is required")

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(loop *Loop, msg Message) bool

// CommandHandler handles commands the loop does not know.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// LoopConfig configures a Loop.
type LoopConfig struct {
	Backend        backend.Backend
	Root           Widget
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
	StateQueue     *state.Queue
	FlushPolicy    QueueFlushPolicy
	// Width and Height size the buffer before Run queries the backend.
	Width, Height int
}

// Loop runs a widget tree against a terminal backend.
type Loop struct {
	backend        backend.Backend
	root           Widget
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	invalidator    *Invalidator
	buffer         *Buffer
	focus          *FocusRing
	mouse          mouseTracker

	taskMu         sync.Mutex
	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingEffects []Effect

	running bool
	dirty   bool
}

// NewLoop creates a loop from config.
func NewLoop(cfg LoopConfig) *Loop {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	l := &Loop{
		backend:        cfg.Backend,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
		stateQueue:     queue,
		flushPolicy:    cfg.FlushPolicy,
		buffer:         NewBuffer(cfg.Width, cfg.Height),
	}
	if l.update == nil {
		l.update = DefaultUpdate
	}
	l.queueScheduler = NewQueueScheduler(queue, l.Post)
	l.invalidator = NewInvalidator(l.Post)
	l.SetRoot(cfg.Root)
	return l
}

// Schedule defers fn to the next queue flush on the loop goroutine.
// Loop satisfies state.Scheduler.
func (l *Loop) Schedule(fn func()) {
	l.queueScheduler.Schedule(fn)
}

// StateQueue returns the loop's state queue.
func (l *Loop) StateQueue() *state.Queue {
	return l.stateQueue
}

// InvalidateScheduler returns a scheduler that runs callbacks inline and
// requests a render pass.
func (l *Loop) InvalidateScheduler() state.Scheduler {
	return l.invalidator
}

// Invalidate requests a render pass.
func (l *Loop) Invalidate() {
	l.invalidator.Invalidate()
}

// Buffer returns the render buffer.
func (l *Loop) Buffer() *Buffer {
	return l.buffer
}

// Focus returns the focus ring of the current root.
func (l *Loop) Focus() *FocusRing {
	return l.focus
}

// Root returns the root widget.
func (l *Loop) Root() Widget {
	return l.root
}

// SetRoot swaps the root widget and rebuilds the focus ring.
func (l *Loop) SetRoot(root Widget) {
	l.root = root
	l.focus = NewFocusRing(root)
	if root != nil {
		w, h := l.buffer.Size()
		root.Layout(Rect{Width: w, Height: h})
	}
	l.dirty = true
}

// Post sends a message to the loop without blocking. Safe from any
// goroutine. It returns false when the message buffer is full.
func (l *Loop) Post(msg Message) bool {
	if l == nil || msg == nil {
		return false
	}
	select {
	case l.messages <- msg:
		return true
	default:
		glog.Warningf("[runtime] message buffer full, dropping %T", msg)
		return false
	}
}

// Call runs fn on the loop goroutine.
func (l *Loop) Call(fn func()) bool {
	if fn == nil {
		return false
	}
	return l.Post(CallMsg{Fn: fn})
}

// Spawn starts an effect using the loop task context.
// If the loop has not started, the effect waits until Start.
func (l *Loop) Spawn(effect Effect) {
	if effect.Run == nil {
		return
	}
	l.taskMu.Lock()
	ctx := l.taskCtx
	if ctx == nil {
		l.pendingEffects = append(l.pendingEffects, effect)
		l.taskMu.Unlock()
		return
	}
	l.taskMu.Unlock()
	go effect.Run(ctx, l.Post)
}

// After runs fn on the loop goroutine once delay has passed. Disposing the
// returned handle before then cancels the call.
func (l *Loop) After(delay time.Duration, fn func()) lifecycle.Disposable {
	if fn == nil {
		return lifecycle.Nop
	}
	handle, cancel := context.WithCancel(context.Background())
	var cancelled atomic.Bool
	call := CallMsg{Fn: func() {
		if !cancelled.Load() {
			fn()
		}
	}}
	l.Spawn(Effect{Run: func(taskCtx context.Context, post PostFunc) {
		ctx, stop := context.WithCancel(taskCtx)
		defer stop()
		unregister := context.AfterFunc(handle, stop)
		defer unregister()
		After(delay, call).Run(ctx, post)
	}})
	return lifecycle.Func(func() {
		cancelled.Store(true)
		cancel()
	})
}

// Every posts the messages fn returns on a fixed interval until the loop
// stops.
func (l *Loop) Every(interval time.Duration, fn func(time.Time) Message) {
	l.Spawn(Every(interval, fn))
}

// Start opens the task context and releases effects spawned before it.
// Run calls Start; tests that drive the loop with Flush call it directly.
// The returned function cancels every running effect.
func (l *Loop) Start(ctx context.Context) (stop func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, cancel := context.WithCancel(ctx)
	l.taskMu.Lock()
	l.taskCtx = taskCtx
	l.taskCancel = cancel
	pending := l.pendingEffects
	l.pendingEffects = nil
	l.taskMu.Unlock()
	for _, effect := range pending {
		go effect.Run(taskCtx, l.Post)
	}
	return l.cancelTasks
}

func (l *Loop) cancelTasks() {
	l.taskMu.Lock()
	cancel := l.taskCancel
	l.taskCtx = nil
	l.taskCancel = nil
	l.taskMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Run starts the event loop until quit or context cancellation.
func (l *Loop) Run(ctx context.Context) error {
	if l.backend == nil {
		return ErrNoBackend
	}
	if ctx == nil {
		ctx = context.Background()
	}
	stop := l.Start(ctx)
	defer stop()
	if err := l.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer l.backend.Fini()

	l.backend.HideCursor()
	l.resize(l.backend.Size())
	go l.pollEvents()

	var ticks <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(l.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	l.running = true
	l.Render()
	for l.running {
		select {
		case <-ctx.Done():
			l.running = false
		case msg := <-l.messages:
			l.Step(msg)
		case now := <-ticks:
			l.Step(TickMsg{Time: now})
		}
		if l.running && l.dirty {
			l.Render()
		}
	}
	return ctx.Err()
}

// Step handles one message on the calling goroutine: update, queue flush
// per policy and invalidation bookkeeping. It reports whether a render is
// needed.
func (l *Loop) Step(msg Message) bool {
	dirty := l.update(l, msg)
	if shouldFlushQueue(l.flushPolicy, msg) {
		l.queueScheduler.resetPending()
		if l.stateQueue.Flush() > 0 {
			dirty = true
		}
	}
	if _, ok := msg.(InvalidateMsg); ok {
		l.invalidator.resetPending()
	}
	if dirty {
		l.dirty = true
	}
	return dirty
}

// Flush handles every message already posted, and those they post in
// turn, on the calling goroutine. It returns the number handled.
func (l *Loop) Flush() int {
	handled := 0
	for {
		select {
		case msg := <-l.messages:
			l.Step(msg)
			handled++
		default:
			if l.stateQueue.Len() == 0 {
				return handled
			}
			l.Step(QueueFlushMsg{})
			handled++
		}
	}
}

// Dirty reports whether a render is pending.
func (l *Loop) Dirty() bool {
	return l.dirty
}

// Render draws the root into the buffer and flushes changed cells to the
// backend.
func (l *Loop) Render() {
	l.dirty = false
	if l.root == nil {
		return
	}
	l.buffer.Clear()
	l.root.Render(RenderContext{Buffer: l.buffer})
	if l.backend == nil {
		return
	}
	l.buffer.Flush(l.backend)
	l.backend.Show()
}

func (l *Loop) resize(w, h int) {
	l.buffer.Resize(w, h)
	if l.root != nil {
		l.root.Layout(Rect{Width: w, Height: h})
	}
	l.dirty = true
}

// DefaultUpdate routes input to the focused widget and then the root.
func DefaultUpdate(l *Loop, msg Message) bool {
	switch m := msg.(type) {
	case ResizeMsg:
		l.resize(m.Width, m.Height)
		return true
	case CallMsg:
		if m.Fn != nil {
			m.Fn()
		}
		return true
	case KeyMsg:
		switch m.Key {
		case tcell.KeyTab:
			l.focus.Next()
			return true
		case tcell.KeyBacktab:
			l.focus.Prev()
			return true
		}
		if focused := l.focus.Current(); focused != nil {
			if l.handleResult(focused.HandleMessage(msg)) {
				return true
			}
		}
		return l.dispatch(msg)
	case QueueFlushMsg:
		return false
	case InvalidateMsg:
		return true
	default:
		return l.dispatch(msg)
	}
}

func (l *Loop) dispatch(msg Message) bool {
	if l.root == nil {
		return false
	}
	return l.handleResult(l.root.HandleMessage(msg))
}

func (l *Loop) handleResult(result HandleResult) bool {
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if l.handleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

func (l *Loop) handleCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		l.running = false
		l.cancelTasks()
		return false
	case Refresh:
		l.buffer.MarkAllDirty()
		return true
	case FocusNext:
		l.focus.Next()
		return true
	case FocusPrev:
		l.focus.Prev()
		return true
	case Effect:
		l.Spawn(c)
		return false
	default:
		if l.commandHandler != nil {
			return l.commandHandler(cmd)
		}
		return false
	}
}

// Running reports whether Run is active and no Quit has been handled.
func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) pollEvents() {
	for {
		ev := l.backend.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			l.Post(KeyMsg{Key: e.Key(), Rune: e.Rune(), Mod: e.Modifiers()})
		case *tcell.EventResize:
			w, h := e.Size()
			l.Post(ResizeMsg{Width: w, Height: h})
		case *tcell.EventMouse:
			l.Post(l.mouse.translate(e))
		}
	}
}

var _ state.Scheduler = (*Loop)(nil)
