package swm

import (
	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/widget"
)

// Dialog is a degenerate proxy tied to exactly one window: it opens the
// window when the dialog node joins the tree and guarantees the window is
// gone when the dialog node is. It occupies no space of its own.
type Dialog[T widget.Value[T]] struct {
	id      widget.NodeID
	manager ManagerID
	theme   *theme.Theme
	build   func() widget.Widget[T]
	cfg     Config

	windowID widget.NodeID
}

// NewDialog returns a dialog that opens build's content in a window
// configured by cfg.
func NewDialog[T widget.Value[T]](manager ManagerID, th *theme.Theme, cfg Config, build func() widget.Widget[T]) *Dialog[T] {
	return &Dialog[T]{
		id:      widget.NewNodeID(),
		manager: manager,
		theme:   th,
		build:   build,
		cfg:     cfg,
	}
}

// WindowID returns the id of the dialog's window, zero once the window
// closed on its own.
func (d *Dialog[T]) WindowID() widget.NodeID {
	return d.windowID
}

// ID implements Widget.
func (d *Dialog[T]) ID() widget.NodeID {
	return d.id
}

// Event implements Widget.
func (d *Dialog[T]) Event(ctx *widget.EventCtx, ev widget.Event, data *T) {
	e, ok := ev.(widget.CommandEvent)
	if !ok {
		return
	}
	switch {
	case e.Command.IsFor(SelectorConnectHost, d.id):
		ctx.SetHandled()
	case e.Command.IsFor(SelectorDisconnectHost, d.id):
		// The window closed on its own, e.g. via its close button.
		// Nothing left to tear down later.
		d.windowID = ""
		ctx.SetHandled()
	case e.Command.IsFor(SelectorHostToProxy, d.id):
		value, ok := e.Command.Payload.(T)
		if !ok {
			ctx.Logger().Warn("dialog received data of unexpected type", "dialog", string(d.id))
			ctx.SetHandled()
			return
		}
		*data = value.Clone()
		ctx.SetHandled()
	}
}

// Lifecycle implements Widget. Attach opens the window; removal while the
// window is still live closes it unconditionally, so the window's
// lifetime can never exceed the dialog's.
func (d *Dialog[T]) Lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent, data T) {
	switch ev {
	case widget.LifecycleAdded:
		d.windowID = addWindow[T](ctx, d.manager, d.id, d.theme, d.build(), data, d.cfg)
	case widget.LifecycleRemoved:
		if d.windowID.IsZero() {
			return
		}
		ctx.Submit(widget.Command{
			Selector: SelectorCloseWindow,
			Target:   widget.TargetNode(d.manager.NodeID()),
			Payload:  widget.NewSingleUse(d.windowID),
		})
		d.windowID = ""
	}
}

// Update implements Widget.
func (d *Dialog[T]) Update(ctx *widget.UpdateCtx, old, data T) {
	if !d.windowID.IsZero() && !old.Same(data) {
		SubmitHostUpdate(ctx, d.windowID, data.Clone())
	}
}

// Layout implements Widget.
func (d *Dialog[T]) Layout(_ *widget.LayoutCtx, cs widget.Constraints, _ T) widget.Size {
	return cs.Constrain(widget.Size{})
}

// Paint implements Widget.
func (d *Dialog[T]) Paint(*widget.PaintCtx, T) {}
