package swm

import "github.com/jmylchreest/subwin/internal/widget"

// Host wraps one window's content subtree together with a private copy of
// the shared data, bridging changes in both directions over the bus. The
// host's node id is the window id.
//
// The stack carries no application data, so a Host is a Unit widget no
// matter what data its content uses.
type Host[U widget.Value[U]] struct {
	managerID widget.NodeID
	windowID  widget.NodeID
	proxyID   widget.NodeID
	content   *widget.Pod[U]
	data      U
}

// NewHost wraps content and its initial data snapshot. proxyID is the
// node the host reports data changes and lifecycle transitions to.
func NewHost[U widget.Value[U]](managerID, windowID, proxyID widget.NodeID, content widget.Widget[U], data U) *Host[U] {
	return &Host[U]{
		managerID: managerID,
		windowID:  windowID,
		proxyID:   proxyID,
		content:   widget.NewPod(content),
		data:      data.Clone(),
	}
}

// Data returns a clone of the host's private data copy.
func (h *Host[U]) Data() U {
	return h.data.Clone()
}

// ID implements Widget.
func (h *Host[U]) ID() widget.NodeID {
	return h.windowID
}

// Event implements Widget.
//
// Protocol traffic addressed to this host is consumed here. Everything
// else is dispatched to the content with the private data; if the
// dispatch mutated the data, a clone travels to the owning proxy. That
// emission happens strictly after the subtree finished handling the
// event, so the proxy always observes a settled value.
func (h *Host[U]) Event(ctx *widget.EventCtx, ev widget.Event, _ *widget.Unit) {
	switch e := ev.(type) {
	case widget.CommandEvent:
		if e.Command.IsFor(SelectorProxyToHost, h.windowID) {
			h.applyUpdate(ctx, e.Command.Payload)
			ctx.SetHandled()
			return
		}
	case widget.NotificationEvent:
		if e.Command.Selector == SelectorCloseWindow {
			payload, ok := e.Command.Payload.(*widget.SingleUse[widget.NodeID])
			if !ok {
				return
			}
			id, taken := payload.Take()
			if !taken {
				return
			}
			if !id.IsZero() {
				// Already resolved further down; not ours to claim.
				return
			}
			// Content below wants to close the window it lives in,
			// which is this one.
			ctx.Submit(widget.Command{
				Selector: SelectorCloseWindow,
				Target:   widget.TargetNode(h.managerID),
				Payload:  widget.NewSingleUse(h.windowID),
			})
			ctx.Submit(widget.Command{
				Selector: SelectorDisconnectHost,
				Target:   widget.TargetNode(h.proxyID),
				Payload:  h.windowID,
			})
			ctx.SetHandled()
			return
		}
		return
	}

	before := h.data.Clone()
	h.content.Event(ctx, ev, &h.data)
	if !before.Same(h.data) {
		ctx.Submit(widget.Command{
			Selector: SelectorHostToProxy,
			Target:   widget.TargetNode(h.proxyID),
			Payload:  h.data.Clone(),
		})
	}
}

// applyUpdate installs a pushed data value. A payload of the wrong type
// degrades to "this update was not for me": logged and dropped, the host
// keeps its prior data.
func (h *Host[U]) applyUpdate(ctx *widget.EventCtx, payload any) {
	upd, ok := payload.(HostUpdate)
	if !ok {
		ctx.Logger().Warn("host received malformed update payload", "window", string(h.windowID))
		return
	}
	// Env is reserved; accepted but not applied.
	if upd.Data == nil {
		return
	}
	value, ok := upd.Data.(U)
	if !ok {
		ctx.Logger().Warn("host received data of unexpected type", "window", string(h.windowID))
		return
	}
	h.data = value.Clone()
	ctx.RequestUpdate()
}

// Lifecycle implements Widget. On attach the host announces itself to its
// owning proxy; on removal it withdraws, which keeps the proxy's
// connected set correct for every close path.
func (h *Host[U]) Lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent, _ widget.Unit) {
	switch ev {
	case widget.LifecycleAdded:
		ctx.Submit(widget.Command{
			Selector: SelectorConnectHost,
			Target:   widget.TargetNode(h.proxyID),
			Payload:  h.windowID,
		})
	case widget.LifecycleRemoved:
		ctx.Submit(widget.Command{
			Selector: SelectorDisconnectHost,
			Target:   widget.TargetNode(h.proxyID),
			Payload:  h.windowID,
		})
	}
	h.content.Lifecycle(ctx, ev, h.data)
}

// Update implements Widget. The stack's Unit data never changes; this
// runs when the host's own data was replaced and the subtree needs to see
// it.
func (h *Host[U]) Update(ctx *widget.UpdateCtx, _, _ widget.Unit) {
	h.content.Update(ctx, h.data)
}

// Layout implements Widget.
func (h *Host[U]) Layout(ctx *widget.LayoutCtx, cs widget.Constraints, _ widget.Unit) widget.Size {
	size := h.content.Layout(ctx, cs, h.data)
	h.content.SetOrigin(widget.Point{})
	return size
}

// Paint implements Widget.
func (h *Host[U]) Paint(ctx *widget.PaintCtx, _ widget.Unit) {
	h.content.Paint(ctx, h.data)
}
