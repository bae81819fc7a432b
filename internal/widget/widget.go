package widget

// Value is the contract every shared data type must satisfy: value
// equality and cheap deep cloning. All propagation across the tree is by
// clone, so no two nodes ever share mutable state.
type Value[T any] interface {
	Same(other T) bool
	Clone() T
}

// Unit is the empty data type for widgets that carry no shared data of
// their own, e.g. the entries of the window stack.
type Unit struct{}

// Same always holds for Unit.
func (Unit) Same(Unit) bool { return true }

// Clone returns the empty value.
func (Unit) Clone() Unit { return Unit{} }

// Widget is a node in the retained tree, generic over the shared data type
// flowing through its subtree.
//
// Event receives input, command, and notification events and may mutate
// the shared data in place. Lifecycle receives structural transitions.
// Update runs after the driver detects a data change and lets widgets
// refresh derived state. Layout must return a size within the constraints.
// Paint draws into the widget's region of the canvas.
type Widget[T Value[T]] interface {
	ID() NodeID
	Event(ctx *EventCtx, ev Event, data *T)
	Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data T)
	Update(ctx *UpdateCtx, old, data T)
	Layout(ctx *LayoutCtx, cs Constraints, data T) Size
	Paint(ctx *PaintCtx, data T)
}
