package widget

// Event is anything delivered through the tree during an event pass.
type Event interface {
	isEvent()
}

// MouseDownEvent is a primary-button press. Pos is local to the receiving
// widget; WindowPos is in surface coordinates and never translated.
type MouseDownEvent struct {
	Pos       Point
	WindowPos Point
}

// MouseUpEvent is a primary-button release.
type MouseUpEvent struct {
	Pos       Point
	WindowPos Point
}

// MouseMoveEvent is pointer motion, with or without a held button.
type MouseMoveEvent struct {
	Pos       Point
	WindowPos Point
}

// KeyEvent is a key press, delivered through the tree until handled.
type KeyEvent struct {
	Key string
}

// CommandEvent delivers a queued command. Widgets that match the selector
// and target act on it; everything else forwards it unchanged.
type CommandEvent struct {
	Command Command
}

// NotificationEvent delivers a bubbled command to an ancestor of its
// origin. Notifications only travel upward; pods never forward them to
// descendants.
type NotificationEvent struct {
	Command Command
}

func (MouseDownEvent) isEvent()    {}
func (MouseUpEvent) isEvent()      {}
func (MouseMoveEvent) isEvent()    {}
func (KeyEvent) isEvent()          {}
func (CommandEvent) isEvent()      {}
func (NotificationEvent) isEvent() {}

// MousePos extracts the local position from a mouse event.
func MousePos(ev Event) (Point, bool) {
	switch e := ev.(type) {
	case MouseDownEvent:
		return e.Pos, true
	case MouseUpEvent:
		return e.Pos, true
	case MouseMoveEvent:
		return e.Pos, true
	}
	return Point{}, false
}

// translateMouse returns ev with its local position shifted into the space
// of a child at origin. WindowPos is left untouched.
func translateMouse(ev Event, origin Point) Event {
	switch e := ev.(type) {
	case MouseDownEvent:
		e.Pos = e.Pos.Sub(origin)
		return e
	case MouseUpEvent:
		e.Pos = e.Pos.Sub(origin)
		return e
	case MouseMoveEvent:
		e.Pos = e.Pos.Sub(origin)
		return e
	}
	return ev
}

// LifecycleEvent marks structural transitions delivered outside the normal
// event flow.
type LifecycleEvent int

const (
	// LifecycleAdded fires exactly once per node, when its subtree is
	// first attached to the running tree.
	LifecycleAdded LifecycleEvent = iota
	// LifecycleRemoved fires when a subtree is detached for good. Handlers
	// may still submit commands during teardown.
	LifecycleRemoved
	// lifecycleAttachScan walks already-attached subtrees looking for new,
	// unattached pods after a structural change.
	lifecycleAttachScan
)
