package swm

import "github.com/jmylchreest/subwin/internal/widget"

// Bus selectors of the sub-window protocol. Stack-mutating selectors
// (add, drag, close) carry single-use payloads: a command bubbled toward
// an unknown ancestor, or observed by a node it was not meant for, finds
// the payload already taken and ignores it.
const (
	// SelectorAddWindow creates a window. Payload:
	// *widget.SingleUse[WindowSpec], addressed to a manager.
	SelectorAddWindow widget.Selector = "swm.add-window"

	// SelectorDragWindow repositions a window. Payload:
	// *widget.SingleUse[DragTarget] with the target point in surface
	// coordinates, addressed to a manager.
	SelectorDragWindow widget.Selector = "swm.drag-window"

	// SelectorCloseWindow closes a window. Payload:
	// *widget.SingleUse[widget.NodeID]; the zero NodeID means "whatever
	// window encloses the sender" and is resolved by the nearest host on
	// the bubble path. Addressed to a manager once resolved.
	SelectorCloseWindow widget.Selector = "swm.close-window"

	// SelectorWindowToTop raises a window to the front of the z-order.
	// Payload: widget.NodeID, addressed to a manager. Idempotent.
	SelectorWindowToTop widget.Selector = "swm.window-to-top"

	// SelectorHostToProxy pushes a host's locally-mutated data value to
	// its owning proxy. Payload: an opaque clone of the shared data,
	// type-checked by the receiver.
	SelectorHostToProxy widget.Selector = "swm.host-to-proxy"

	// SelectorProxyToHost pushes a proxy's data value down to one of its
	// hosts. Payload: HostUpdate.
	SelectorProxyToHost widget.Selector = "swm.proxy-to-host"

	// SelectorConnectHost is a host announcing itself to its owning proxy
	// after attach. Payload: widget.NodeID of the window.
	SelectorConnectHost widget.Selector = "swm.connect-host"

	// SelectorDisconnectHost is a host telling its owning proxy the
	// window is going away. Payload: widget.NodeID of the window.
	SelectorDisconnectHost widget.Selector = "swm.disconnect-host"
)

// WindowSpec is the create-window payload: a fully built host-wrapped
// subtree plus the immutable placement config.
type WindowSpec struct {
	ID       widget.NodeID
	Root     widget.Widget[widget.Unit]
	Position Position
	Modal    bool
}

// DragTarget is the move-window payload. To is the desired window origin
// in surface coordinates; the manager converts it into its own space.
type DragTarget struct {
	Window widget.NodeID
	To     widget.Point
}

// HostUpdate is the proxy-to-host payload. Data is an opaque clone of the
// shared value, or nil when only the environment changed. Env is reserved
// for theme/environment propagation and is currently accepted but not
// applied.
type HostUpdate struct {
	Data any
	Env  any
}

// SubmitHostUpdate queues a data push to the given window's host.
func SubmitHostUpdate(sub widget.CommandSubmitter, window widget.NodeID, data any) {
	sub.Submit(widget.Command{
		Selector: SelectorProxyToHost,
		Target:   widget.TargetNode(window),
		Payload:  HostUpdate{Data: data},
	})
}

// closeNotification builds the bubbled close request used by content that
// cannot know its own window id.
func closeNotification() widget.Command {
	return widget.Command{
		Selector: SelectorCloseWindow,
		Payload:  widget.NewSingleUse(widget.NodeID("")),
	}
}

// CloseEnclosingWindow requests closing whatever window the calling
// widget lives in. The nearest host above the caller resolves the window
// id; outside any window the request fizzles at the root.
func CloseEnclosingWindow(ctx *widget.EventCtx) {
	ctx.SubmitNotification(closeNotification())
}
