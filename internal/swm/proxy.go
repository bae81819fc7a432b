package swm

import (
	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/widget"
)

// Launcher is the cloneable handle user code calls to open and close
// windows. It carries ids only; the window subtree is built at call time
// and handed to the manager over the bus.
type Launcher[T widget.Value[T]] struct {
	manager ManagerID
	proxyID widget.NodeID
	theme   *theme.Theme
}

// AddWindow builds a decorated, host-wrapped window around content and
// asks the manager to open it. data seeds the window's private copy.
// Returns the new window's id.
func (l Launcher[T]) AddWindow(sub widget.CommandSubmitter, content widget.Widget[T], data T, cfg Config) widget.NodeID {
	return addWindow[T](sub, l.manager, l.proxyID, l.theme, content, data, cfg)
}

// CloseWindow requests closing whatever window the calling content lives
// in. The caller cannot know its own window id, so this bubbles an
// unresolved close that the nearest enclosing host claims.
func (l Launcher[T]) CloseWindow(ctx *widget.EventCtx) {
	CloseEnclosingWindow(ctx)
}

// addWindow assembles chrome and host for one new window and submits the
// create command. The window id doubles as the host's node id.
func addWindow[U widget.Value[U]](sub widget.CommandSubmitter, manager ManagerID, proxyID widget.NodeID, th *theme.Theme, content widget.Widget[U], data U, cfg Config) widget.NodeID {
	windowID := widget.NewNodeID()
	chrome := NewWindow[U](th, manager.NodeID(), windowID, cfg, content)
	host := NewHost[U](manager.NodeID(), windowID, proxyID, chrome, data)
	sub.Submit(widget.Command{
		Selector: SelectorAddWindow,
		Target:   widget.TargetNode(manager.NodeID()),
		Payload: widget.NewSingleUse(WindowSpec{
			ID:       windowID,
			Root:     host,
			Position: cfg.position,
			Modal:    cfg.modal,
		}),
	})
	return windowID
}

// Proxy anchors window ownership somewhere in the main tree. It tracks
// the windows its launcher opened and keeps all of them fed with the
// shared data stream; hosts report local mutations back to it.
type Proxy[T widget.Value[T]] struct {
	id        widget.NodeID
	manager   ManagerID
	content   *widget.Pod[T]
	connected map[widget.NodeID]struct{}
}

// NewProxy builds a proxy whose content comes from build, which receives
// the launcher handle to embed in its widgets.
func NewProxy[T widget.Value[T]](manager ManagerID, th *theme.Theme, build func(Launcher[T]) widget.Widget[T]) *Proxy[T] {
	id := widget.NewNodeID()
	launcher := Launcher[T]{manager: manager, proxyID: id, theme: th}
	return &Proxy[T]{
		id:        id,
		manager:   manager,
		content:   widget.NewPod(build(launcher)),
		connected: make(map[widget.NodeID]struct{}),
	}
}

// Connected returns the ids of the proxy's currently open windows.
func (p *Proxy[T]) Connected() []widget.NodeID {
	ids := make([]widget.NodeID, 0, len(p.connected))
	for id := range p.connected {
		ids = append(ids, id)
	}
	return ids
}

// ID implements Widget.
func (p *Proxy[T]) ID() widget.NodeID {
	return p.id
}

// Event implements Widget.
func (p *Proxy[T]) Event(ctx *widget.EventCtx, ev widget.Event, data *T) {
	if e, ok := ev.(widget.CommandEvent); ok {
		switch {
		case e.Command.IsFor(SelectorConnectHost, p.id):
			if id, ok := e.Command.Payload.(widget.NodeID); ok {
				p.connected[id] = struct{}{}
			}
			ctx.SetHandled()
			return
		case e.Command.IsFor(SelectorDisconnectHost, p.id):
			if id, ok := e.Command.Payload.(widget.NodeID); ok {
				delete(p.connected, id)
			}
			ctx.SetHandled()
			return
		case e.Command.IsFor(SelectorHostToProxy, p.id):
			value, ok := e.Command.Payload.(T)
			if !ok {
				ctx.Logger().Warn("proxy received data of unexpected type", "proxy", string(p.id))
				ctx.SetHandled()
				return
			}
			*data = value.Clone()
			ctx.SetHandled()
			return
		}
	}
	p.content.Event(ctx, ev, data)
}

// Lifecycle implements Widget.
func (p *Proxy[T]) Lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent, data T) {
	p.content.Lifecycle(ctx, ev, data)
}

// Update implements Widget. Every data change fans out to all connected
// windows, so a proxy with several open windows keeps them converged on
// one value.
func (p *Proxy[T]) Update(ctx *widget.UpdateCtx, old, data T) {
	if !old.Same(data) {
		for id := range p.connected {
			SubmitHostUpdate(ctx, id, data.Clone())
		}
	}
	p.content.Update(ctx, data)
}

// Layout implements Widget.
func (p *Proxy[T]) Layout(ctx *widget.LayoutCtx, cs widget.Constraints, data T) widget.Size {
	size := p.content.Layout(ctx, cs, data)
	p.content.SetOrigin(widget.Point{})
	return size
}

// Paint implements Widget.
func (p *Proxy[T]) Paint(ctx *widget.PaintCtx, data T) {
	p.content.Paint(ctx, data)
}
