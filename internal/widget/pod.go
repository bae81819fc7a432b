package widget

// Pod wraps one child widget and owns the tree-side state the child never
// sees: origin and size, pointer-grab flags, attach tracking, and the
// previous data value used for old/new update calls. Parents interact with
// children only through pods.
type Pod[T Value[T]] struct {
	child    Widget[T]
	state    podState
	attached bool
	hasLast  bool
	lastData T
}

// NewPod wraps child.
func NewPod[T Value[T]](child Widget[T]) *Pod[T] {
	return &Pod[T]{child: child}
}

// ChildID returns the wrapped widget's node id.
func (p *Pod[T]) ChildID() NodeID {
	return p.child.ID()
}

// SetOrigin places the child in its parent's coordinate space. Parents
// call this during layout.
func (p *Pod[T]) SetOrigin(origin Point) {
	p.state.origin = origin
}

// Origin returns the child's placement in its parent's coordinate space.
func (p *Pod[T]) Origin() Point {
	return p.state.origin
}

// Size returns the child's laid-out size.
func (p *Pod[T]) Size() Size {
	return p.state.size
}

// Contains reports whether a parent-local point falls inside the child.
func (p *Pod[T]) Contains(pt Point) bool {
	o := p.state.origin
	s := p.state.size
	return pt.X >= o.X && pt.Y >= o.Y && pt.X < o.X+s.Width && pt.Y < o.Y+s.Height
}

// HasActive reports whether the child or any of its descendants holds the
// pointer grab.
func (p *Pod[T]) HasActive() bool {
	return p.state.active || p.state.hasActive
}

// Event routes an event to the child. Mouse events are hit-tested against
// the child's bounds (unless it holds the grab) and translated into its
// local space. Notifications never travel downward. After the child
// returns, notifications raised within its subtree are delivered to it,
// nearest-origin first, and anything it leaves unhandled keeps bubbling.
func (p *Pod[T]) Event(ctx *EventCtx, ev Event, data *T) {
	if !p.attached {
		return
	}
	if _, ok := ev.(NotificationEvent); ok {
		return
	}
	if pos, ok := MousePos(ev); ok {
		if !p.Contains(pos) && !p.HasActive() {
			return
		}
		ev = translateMouse(ev, p.state.origin)
	}

	childCtx := ctx.child(&p.state)
	p.child.Event(childCtx, ev, data)
	p.bubble(ctx, childCtx, data)
}

// bubble delivers notifications raised below the child to the child, then
// hoists whatever remains unhandled to the parent context.
func (p *Pod[T]) bubble(ctx, childCtx *EventCtx, data *T) {
	for len(childCtx.childNotifications) > 0 {
		pending := childCtx.childNotifications
		childCtx.childNotifications = nil
		for _, n := range pending {
			handled := false
			nctx := &EventCtx{
				pass:    childCtx.pass,
				pod:     &p.state,
				parent:  ctx,
				origin:  childCtx.origin,
				handled: &handled,
			}
			p.child.Event(nctx, NotificationEvent{Command: n}, data)
			childCtx.notifications = append(childCtx.notifications, nctx.notifications...)
			childCtx.childNotifications = append(childCtx.childNotifications, nctx.childNotifications...)
			if !handled {
				childCtx.notifications = append(childCtx.notifications, n)
			}
		}
	}
	ctx.childNotifications = append(ctx.childNotifications, childCtx.notifications...)
	childCtx.notifications = nil
}

// Lifecycle forwards structural events. Attach scans turn into a real
// LifecycleAdded exactly once per pod.
func (p *Pod[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data T) {
	switch ev {
	case LifecycleAdded, lifecycleAttachScan:
		if !p.attached {
			p.attached = true
			p.child.Lifecycle(ctx, LifecycleAdded, data)
			return
		}
		p.child.Lifecycle(ctx, lifecycleAttachScan, data)
	case LifecycleRemoved:
		if !p.attached {
			return
		}
		p.child.Lifecycle(ctx, LifecycleRemoved, data)
	}
}

// Update runs the child's update with the previous data value this pod
// observed, then records the new one.
func (p *Pod[T]) Update(ctx *UpdateCtx, data T) {
	if !p.attached {
		return
	}
	old := data
	if p.hasLast {
		old = p.lastData
	}
	p.child.Update(ctx, old, data)
	p.lastData = data.Clone()
	p.hasLast = true
}

// Layout sizes the child and records the result. The parent still needs to
// place it with SetOrigin.
func (p *Pod[T]) Layout(ctx *LayoutCtx, cs Constraints, data T) Size {
	size := p.child.Layout(ctx, cs, data)
	p.state.size = size
	return size
}

// Paint draws the child into its region.
func (p *Pod[T]) Paint(ctx *PaintCtx, data T) {
	if !p.attached || p.state.size.IsZero() {
		return
	}
	p.child.Paint(ctx.child(p.state.origin, p.state.size), data)
}
