package swm

import "github.com/jmylchreest/subwin/internal/widget"

// stackEntry is one live window. Sequence order in the stack is the
// z-order: the last entry is frontmost.
type stackEntry struct {
	id    widget.NodeID
	pod   *widget.Pod[widget.Unit]
	pos   Position
	modal bool
	root  bool
}

// stack owns the ordered window sequence. It paints back-to-front so
// later entries occlude earlier ones, and hit-tests front-to-back so the
// occluding window wins.
type stack struct {
	entries []*stackEntry
}

func (s *stack) add(e *stackEntry) {
	s.entries = append(s.entries, e)
}

func (s *stack) find(id widget.NodeID) *stackEntry {
	for _, e := range s.entries {
		if e.id == id {
			return e
		}
	}
	return nil
}

// move pins the entry at a new fixed stack-local origin. Dragging turns
// any placement into a plain left/top position.
func (s *stack) move(id widget.NodeID, to widget.Point) bool {
	e := s.find(id)
	if e == nil {
		return false
	}
	e.pos = At(to.X, to.Y)
	return true
}

// toFront raises the entry to the end of the sequence. Relative order of
// the others is preserved.
func (s *stack) toFront(id widget.NodeID) bool {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(append(s.entries[:i:i], s.entries[i+1:]...), e)
			return true
		}
	}
	return false
}

// remove detaches the entry's subtree and drops it. Teardown handlers run
// before the entry disappears, so scoped cleanup inside the closing
// window still emits its commands.
func (s *stack) remove(ctx *widget.LifecycleCtx, id widget.NodeID) bool {
	for i, e := range s.entries {
		if e.id == id {
			e.pod.Lifecycle(ctx, widget.LifecycleRemoved, widget.Unit{})
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// windowIDs returns the z-order as ids, back to front.
func (s *stack) windowIDs() []widget.NodeID {
	ids := make([]widget.NodeID, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids
}

// event routes an input or command event through the stack.
//
// Mouse events go to the grab holder if any window's subtree holds one,
// otherwise front-to-back to the first window under the pointer; a modal
// window that does not contain the pointer blocks everything behind it.
// All other events are offered front-to-back until handled.
func (s *stack) event(ctx *widget.EventCtx, ev widget.Event) {
	data := widget.Unit{}

	if _, isMouse := widget.MousePos(ev); isMouse {
		for i := len(s.entries) - 1; i >= 0; i-- {
			if s.entries[i].pod.HasActive() {
				s.entries[i].pod.Event(ctx, ev, &data)
				return
			}
		}
		pos, _ := widget.MousePos(ev)
		for i := len(s.entries) - 1; i >= 0; i-- {
			e := s.entries[i]
			if e.pod.Contains(pos) {
				e.pod.Event(ctx, ev, &data)
				return
			}
			if e.modal {
				return
			}
		}
		return
	}

	for i := len(s.entries) - 1; i >= 0; i-- {
		s.entries[i].pod.Event(ctx, ev, &data)
		if ctx.Handled() {
			return
		}
	}
}

func (s *stack) lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent) {
	for _, e := range s.entries {
		e.pod.Lifecycle(ctx, ev, widget.Unit{})
	}
}

func (s *stack) update(ctx *widget.UpdateCtx) {
	for _, e := range s.entries {
		e.pod.Update(ctx, widget.Unit{})
	}
}

// layout sizes and places every entry within the stack area. The root
// entry and fit-positioned windows fill the whole area; fixed windows get
// their intrinsic size and are pinned by their edge offsets, centering on
// any axis with no offset.
func (s *stack) layout(ctx *widget.LayoutCtx, area widget.Size) {
	for _, e := range s.entries {
		if e.root || e.pos.Fit {
			e.pod.Layout(ctx, widget.Tight(area), widget.Unit{})
			e.pod.SetOrigin(widget.Point{})
			continue
		}
		size := e.pod.Layout(ctx, widget.Loose(area), widget.Unit{})
		e.pod.SetOrigin(resolveOrigin(e.pos, size, area))
	}
}

func resolveOrigin(pos Position, size, area widget.Size) widget.Point {
	var p widget.Point
	switch {
	case pos.Left != nil:
		p.X = *pos.Left
	case pos.Right != nil:
		p.X = area.Width - size.Width - *pos.Right
	default:
		p.X = (area.Width - size.Width) / 2
	}
	switch {
	case pos.Top != nil:
		p.Y = *pos.Top
	case pos.Bottom != nil:
		p.Y = area.Height - size.Height - *pos.Bottom
	default:
		p.Y = (area.Height - size.Height) / 2
	}
	return p
}

func (s *stack) paint(ctx *widget.PaintCtx) {
	for _, e := range s.entries {
		e.pod.Paint(ctx, widget.Unit{})
	}
}
