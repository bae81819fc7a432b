package swm

import (
	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/widget"
)

// ManagerID is the address windows, proxies and dialogs use to reach
// their manager. Handed out at construction; holders never see the
// manager itself.
type ManagerID struct {
	id widget.NodeID
}

// NodeID returns the manager's node id for command targeting.
func (m ManagerID) NodeID() widget.NodeID {
	return m.id
}

// Manager owns the window stack and is the single authority for z-order
// and stack mutation. It wraps the main content in a host of its own, so
// the root gets the same data bridging as any sub-window, with the
// manager acting as that host's proxy.
type Manager[T widget.Value[T]] struct {
	id         widget.NodeID
	theme      *theme.Theme
	stack      stack
	rootHostID widget.NodeID
}

// NewManager builds a manager whose root content comes from build, which
// receives the ManagerID so the content can construct launchers and
// dialogs addressing this manager.
func NewManager[T widget.Value[T]](th *theme.Theme, data T, build func(ManagerID) widget.Widget[T]) *Manager[T] {
	m := &Manager[T]{
		id:         widget.NewNodeID(),
		theme:      th,
		rootHostID: widget.NewNodeID(),
	}
	root := NewHost[T](m.id, m.rootHostID, m.id, build(ManagerID{id: m.id}), data)
	m.stack.add(&stackEntry{
		id:   m.rootHostID,
		pod:  widget.NewPod[widget.Unit](root),
		root: true,
	})
	return m
}

// ManagerID returns the manager's address.
func (m *Manager[T]) ManagerID() ManagerID {
	return ManagerID{id: m.id}
}

// Windows returns the stack's window ids back to front, the root entry
// first. Mainly for tests and introspection.
func (m *Manager[T]) Windows() []widget.NodeID {
	return m.stack.windowIDs()
}

// WindowOrigin returns a window's current stack-local origin.
func (m *Manager[T]) WindowOrigin(id widget.NodeID) (widget.Point, bool) {
	e := m.stack.find(id)
	if e == nil {
		return widget.Point{}, false
	}
	return e.pod.Origin(), true
}

// ID implements Widget.
func (m *Manager[T]) ID() widget.NodeID {
	return m.id
}

// Event implements Widget. Stack-mutation commands addressed to this
// manager are consumed here; everything else flows to the stack for
// ordinary traversal.
func (m *Manager[T]) Event(ctx *widget.EventCtx, ev widget.Event, data *T) {
	if e, ok := ev.(widget.CommandEvent); ok && m.handleCommand(ctx, e.Command, data) {
		ctx.SetHandled()
		return
	}
	m.stack.event(ctx, ev)
}

// handleCommand reports whether the command was consumed.
func (m *Manager[T]) handleCommand(ctx *widget.EventCtx, cmd widget.Command, data *T) bool {
	switch {
	case cmd.IsFor(SelectorAddWindow, m.id):
		payload, ok := cmd.Payload.(*widget.SingleUse[WindowSpec])
		if !ok {
			return true
		}
		spec, taken := payload.Take()
		if !taken {
			return true
		}
		m.stack.add(&stackEntry{
			id:    spec.ID,
			pod:   widget.NewPod[widget.Unit](spec.Root),
			pos:   spec.Position,
			modal: spec.Modal,
		})
		ctx.ChildrenChanged()
		return true

	case cmd.IsFor(SelectorDragWindow, m.id):
		payload, ok := cmd.Payload.(*widget.SingleUse[DragTarget])
		if !ok {
			return true
		}
		drag, taken := payload.Take()
		if !taken {
			return true
		}
		local := drag.To.Sub(ctx.Origin())
		if !m.stack.move(drag.Window, local) {
			ctx.Logger().Debug("drag for unknown window ignored", "window", string(drag.Window))
		}
		ctx.RequestLayout()
		return true

	case cmd.IsFor(SelectorCloseWindow, m.id):
		payload, ok := cmd.Payload.(*widget.SingleUse[widget.NodeID])
		if !ok {
			return true
		}
		id, taken := payload.Take()
		if !taken || id.IsZero() {
			return true
		}
		if id == m.rootHostID {
			ctx.Logger().Debug("close for root entry ignored")
			return true
		}
		if m.stack.remove(ctx.Lifecycle(), id) {
			ctx.ChildrenChanged()
		} else {
			ctx.Logger().Debug("close for unknown window ignored", "window", string(id))
		}
		return true

	case cmd.IsFor(SelectorWindowToTop, m.id):
		id, ok := cmd.Payload.(widget.NodeID)
		if !ok {
			return true
		}
		if id == m.rootHostID {
			ctx.Logger().Debug("raise for root entry ignored")
			return true
		}
		if !m.stack.toFront(id) {
			ctx.Logger().Debug("raise for unknown window ignored", "window", string(id))
		}
		return true

	case cmd.IsFor(SelectorHostToProxy, m.id):
		// The self-hosted root reporting a mutation; install it as the
		// new shared value to propagate.
		value, ok := cmd.Payload.(T)
		if !ok {
			ctx.Logger().Warn("manager received data of unexpected type")
			return true
		}
		*data = value.Clone()
		return true

	case cmd.IsFor(SelectorConnectHost, m.id), cmd.IsFor(SelectorDisconnectHost, m.id):
		// The root host announcing itself to its proxy, which is us.
		// Membership of the root entry is fixed, nothing to record.
		return true
	}
	return false
}

// Lifecycle implements Widget.
func (m *Manager[T]) Lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent, _ T) {
	m.stack.lifecycle(ctx, ev)
}

// Update implements Widget. A changed shared value is pushed to the root
// host; window hosts are reached by their owning proxies, not by the
// manager.
func (m *Manager[T]) Update(ctx *widget.UpdateCtx, old, data T) {
	if !old.Same(data) {
		SubmitHostUpdate(ctx, m.rootHostID, data.Clone())
	}
	m.stack.update(ctx)
}

// Layout implements Widget.
func (m *Manager[T]) Layout(ctx *widget.LayoutCtx, cs widget.Constraints, _ T) widget.Size {
	area := cs.Max
	m.stack.layout(ctx, area)
	return area
}

// Paint implements Widget.
func (m *Manager[T]) Paint(ctx *widget.PaintCtx, _ T) {
	ctx.Fill(&m.theme.Root)
	m.stack.paint(ctx)
}
