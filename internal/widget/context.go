package widget

import "log/slog"

// CommandSubmitter is the part of every context that can put commands on
// the bus. The App itself also implements it, so code outside a dispatch
// pass (tests, external handles) can submit too.
type CommandSubmitter interface {
	Submit(cmd Command)
}

// passFlags collects requests raised during a pass for the driver to act
// on once the pass completes.
type passFlags struct {
	childrenChanged bool
	updateRequested bool
	layoutRequested bool
}

// passState is shared by every context of one dispatch pass.
type passState struct {
	queue  *CommandQueue
	flags  *passFlags
	logger *slog.Logger
}

// podState is the per-node state a Pod shares with the contexts handed to
// its child.
type podState struct {
	origin    Point
	size      Size
	active    bool
	hasActive bool
}

// EventCtx is handed to Widget.Event.
type EventCtx struct {
	pass    *passState
	pod     *podState
	parent  *EventCtx
	origin  Point
	handled *bool

	// notifications bubble past the current widget toward its ancestors.
	// childNotifications were raised strictly below and have not been
	// delivered to the current widget yet; its pod does that as the pass
	// unwinds.
	notifications      []Command
	childNotifications []Command
}

// Submit queues a command for delivery after the current pass.
func (c *EventCtx) Submit(cmd Command) {
	c.pass.queue.Push(cmd)
}

// SubmitNotification sends a command upward from the current widget. It is
// delivered to each ancestor in turn, nearest first, until one marks it
// handled.
func (c *EventCtx) SubmitNotification(cmd Command) {
	cmd.Target = TargetAuto()
	c.notifications = append(c.notifications, cmd)
}

// SetHandled stops the current event from reaching further widgets.
func (c *EventCtx) SetHandled() {
	*c.handled = true
}

// Handled reports whether the current event has been claimed.
func (c *EventCtx) Handled() bool {
	return *c.handled
}

// SetActive grabs (or releases) the pointer for the current widget. While
// active, the widget receives mouse events regardless of hit testing.
func (c *EventCtx) SetActive(active bool) {
	if c.pod != nil {
		c.pod.active = active
	}
	for a := c.parent; a != nil; a = a.parent {
		if a.pod != nil {
			a.pod.hasActive = active
		}
	}
}

// Origin returns the current widget's origin in surface coordinates.
func (c *EventCtx) Origin() Point {
	return c.origin
}

// Size returns the current widget's laid-out size.
func (c *EventCtx) Size() Size {
	if c.pod == nil {
		return Size{}
	}
	return c.pod.size
}

// RequestUpdate asks the driver for another update pass even if the root
// data did not change; used when a node's private data copy was replaced.
func (c *EventCtx) RequestUpdate() {
	c.pass.flags.updateRequested = true
}

// RequestLayout marks layout state dirty. Layout runs on every render, so
// this is advisory.
func (c *EventCtx) RequestLayout() {
	c.pass.flags.layoutRequested = true
}

// ChildrenChanged tells the driver the tree structure changed and new
// subtrees need an attach scan.
func (c *EventCtx) ChildrenChanged() {
	c.pass.flags.childrenChanged = true
}

// Logger returns the pass logger.
func (c *EventCtx) Logger() *slog.Logger {
	return c.pass.logger
}

// Lifecycle derives a LifecycleCtx sharing this pass, for widgets that
// detach subtrees while handling an event.
func (c *EventCtx) Lifecycle() *LifecycleCtx {
	return &LifecycleCtx{pass: c.pass}
}

// child derives the context for a pod's inner widget.
func (c *EventCtx) child(state *podState) *EventCtx {
	return &EventCtx{
		pass:    c.pass,
		pod:     state,
		parent:  c,
		origin:  c.origin.Add(state.origin),
		handled: c.handled,
	}
}

// LifecycleCtx is handed to Widget.Lifecycle.
type LifecycleCtx struct {
	pass *passState
}

// Submit queues a command; teardown handlers use this to release owned
// windows.
func (c *LifecycleCtx) Submit(cmd Command) {
	c.pass.queue.Push(cmd)
}

// ChildrenChanged requests an attach scan for freshly created subtrees.
func (c *LifecycleCtx) ChildrenChanged() {
	c.pass.flags.childrenChanged = true
}

// Logger returns the pass logger.
func (c *LifecycleCtx) Logger() *slog.Logger {
	return c.pass.logger
}

// UpdateCtx is handed to Widget.Update.
type UpdateCtx struct {
	pass *passState
}

// Submit queues a command; data bridges push their per-cycle updates here.
func (c *UpdateCtx) Submit(cmd Command) {
	c.pass.queue.Push(cmd)
}

// RequestLayout marks layout state dirty.
func (c *UpdateCtx) RequestLayout() {
	c.pass.flags.layoutRequested = true
}

// Logger returns the pass logger.
func (c *UpdateCtx) Logger() *slog.Logger {
	return c.pass.logger
}

// LayoutCtx is handed to Widget.Layout.
type LayoutCtx struct {
	pass *passState
}

// Logger returns the pass logger.
func (c *LayoutCtx) Logger() *slog.Logger {
	return c.pass.logger
}
