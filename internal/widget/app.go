package widget

import "log/slog"

// maxSettlePasses bounds the settle loop. Command chains and data
// propagation normally converge within a handful of passes; hitting the
// bound means two nodes are feeding each other conflicting updates.
const maxSettlePasses = 128

// App drives a widget tree: it owns the root data value, the command
// queue, and the dispatch/settle cycle. All calls must come from a single
// goroutine; handlers run to completion before the next event.
type App[T Value[T]] struct {
	root     *Pod[T]
	data     T
	lastData T
	queue    CommandQueue
	flags    passFlags
	logger   *slog.Logger
	width    int
	height   int
	started  bool
}

// NewApp wraps root around the initial data value. A nil logger falls back
// to slog.Default().
func NewApp[T Value[T]](root Widget[T], data T, logger *slog.Logger) *App[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &App[T]{
		root:     NewPod(root),
		data:     data.Clone(),
		lastData: data.Clone(),
		logger:   logger,
	}
}

// Start attaches the tree and settles any commands raised during attach.
func (a *App[T]) Start() {
	if a.started {
		return
	}
	a.started = true
	a.runAttach()
	a.settle()
}

// Resize sets the surface size used for layout and painting.
func (a *App[T]) Resize(width, height int) {
	a.width = width
	a.height = height
}

// Data returns a clone of the current shared data value.
func (a *App[T]) Data() T {
	return a.data.Clone()
}

// Dispatch delivers one input event, then drains commands, attach scans
// and update passes until the tree is quiescent.
func (a *App[T]) Dispatch(ev Event) {
	if !a.started {
		return
	}
	a.runEvent(ev)
	a.settle()
}

// Submit queues a command from outside any dispatch pass and settles. This
// is the external handle used by tests and by code that creates windows
// without going through an event handler.
func (a *App[T]) Submit(cmd Command) {
	a.queue.Push(cmd)
	if a.started {
		a.settle()
	}
}

// Render lays the tree out for the current surface size and paints it.
func (a *App[T]) Render() string {
	if !a.started || a.width <= 0 || a.height <= 0 {
		return ""
	}
	lctx := &LayoutCtx{pass: a.pass()}
	size := Tight(Size{Width: a.width, Height: a.height})
	a.root.Layout(lctx, size, a.data)
	a.root.SetOrigin(Point{})

	canvas := NewCanvas(a.width, a.height)
	pctx := &PaintCtx{canvas: canvas, size: Size{Width: a.width, Height: a.height}}
	a.root.Paint(pctx, a.data)
	return canvas.String()
}

func (a *App[T]) pass() *passState {
	return &passState{queue: &a.queue, flags: &a.flags, logger: a.logger}
}

func (a *App[T]) runEvent(ev Event) {
	handled := false
	ctx := &EventCtx{pass: a.pass(), handled: &handled}
	a.root.Event(ctx, ev, &a.data)
	a.dropUnhandled(ctx)
}

func (a *App[T]) runCommand(cmd Command) {
	a.runEvent(CommandEvent{Command: cmd})
}

func (a *App[T]) runAttach() {
	ctx := &LifecycleCtx{pass: a.pass()}
	a.root.Lifecycle(ctx, LifecycleAdded, a.data)
}

func (a *App[T]) runUpdate() {
	ctx := &UpdateCtx{pass: a.pass()}
	a.root.Update(ctx, a.data)
}

// settle processes structural changes, pending commands and update passes
// in that priority order until nothing is outstanding.
func (a *App[T]) settle() {
	for pass := 0; pass < maxSettlePasses; pass++ {
		switch {
		case a.flags.childrenChanged:
			a.flags.childrenChanged = false
			a.runAttach()
		case !a.queue.Empty():
			cmd, _ := a.queue.Pop()
			a.runCommand(cmd)
		case a.flags.updateRequested || !a.lastData.Same(a.data):
			a.flags.updateRequested = false
			a.lastData = a.data.Clone()
			a.runUpdate()
		default:
			return
		}
	}
	a.logger.Warn("dispatch did not settle", "passes", maxSettlePasses)
}

// dropUnhandled logs notifications that bubbled past the root.
func (a *App[T]) dropUnhandled(ctx *EventCtx) {
	for _, n := range append(ctx.childNotifications, ctx.notifications...) {
		a.logger.Debug("notification reached root unhandled", "selector", string(n.Selector))
	}
	ctx.childNotifications = nil
	ctx.notifications = nil
}
