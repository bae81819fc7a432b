package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testData struct {
	N int
}

func (d testData) Same(other testData) bool { return d == other }
func (d testData) Clone() testData          { return d }

// probe is a test widget that records everything it sees and optionally
// wraps one child.
type probe struct {
	id    NodeID
	size  Size
	child *Pod[testData]

	events  []Event
	updates []testData
	added   int
	removed int

	onEvent func(ctx *EventCtx, ev Event, data *testData)
}

func newProbe(w, h int) *probe {
	return &probe{size: Size{Width: w, Height: h}}
}

func (p *probe) ID() NodeID { return p.id }

func (p *probe) Event(ctx *EventCtx, ev Event, data *testData) {
	p.events = append(p.events, ev)
	if p.onEvent != nil {
		p.onEvent(ctx, ev, data)
	}
	if p.child != nil && !ctx.Handled() {
		p.child.Event(ctx, ev, data)
	}
}

func (p *probe) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data testData) {
	switch ev {
	case LifecycleAdded:
		p.added++
	case LifecycleRemoved:
		p.removed++
	}
	if p.child != nil {
		p.child.Lifecycle(ctx, ev, data)
	}
}

func (p *probe) Update(ctx *UpdateCtx, _, data testData) {
	p.updates = append(p.updates, data)
	if p.child != nil {
		p.child.Update(ctx, data)
	}
}

func (p *probe) Layout(ctx *LayoutCtx, cs Constraints, data testData) Size {
	if p.child != nil {
		p.child.Layout(ctx, cs.Loosen(), data)
		p.child.SetOrigin(Point{})
	}
	return cs.Constrain(p.size)
}

func (p *probe) Paint(ctx *PaintCtx, data testData) {
	if p.child != nil {
		p.child.Paint(ctx, data)
	}
}

func (p *probe) mouseEvents() []Event {
	var out []Event
	for _, ev := range p.events {
		if _, ok := MousePos(ev); ok {
			out = append(out, ev)
		}
	}
	return out
}

func newTestApp(t *testing.T, root Widget[testData]) *App[testData] {
	t.Helper()
	app := NewApp[testData](root, testData{}, nil)
	app.Resize(40, 12)
	app.Start()
	return app
}

func TestApp_MouseHitTestAndTranslation(t *testing.T) {
	top := newProbe(10, 2)
	bottom := newProbe(10, 2)
	root := NewColumn[testData]().WithChild(top).WithChild(bottom)

	app := newTestApp(t, root)
	app.Render()

	app.Dispatch(MouseDownEvent{Pos: Point{X: 3, Y: 3}, WindowPos: Point{X: 3, Y: 3}})

	assert.Empty(t, top.mouseEvents())
	require.Len(t, bottom.mouseEvents(), 1)

	ev := bottom.mouseEvents()[0].(MouseDownEvent)
	assert.Equal(t, Point{X: 3, Y: 1}, ev.Pos, "position must be child-local")
	assert.Equal(t, Point{X: 3, Y: 3}, ev.WindowPos, "window position must stay absolute")
}

func TestApp_CommandTargeting(t *testing.T) {
	target := newProbe(5, 1)
	target.id = NewNodeID()
	other := newProbe(5, 1)
	other.id = NewNodeID()

	var got []Command
	target.onEvent = func(ctx *EventCtx, ev Event, _ *testData) {
		if e, ok := ev.(CommandEvent); ok && e.Command.IsFor("test.cmd", target.id) {
			got = append(got, e.Command)
			ctx.SetHandled()
		}
	}

	root := NewColumn[testData]().WithChild(other).WithChild(target)
	app := newTestApp(t, root)

	app.Submit(Command{Selector: "test.cmd", Target: TargetNode(target.id), Payload: "hi"})

	require.Len(t, got, 1)
	assert.Equal(t, "hi", got[0].Payload)
}

func TestApp_NotificationNearestAncestorWins(t *testing.T) {
	emitter := newProbe(5, 1)
	emitter.onEvent = func(ctx *EventCtx, ev Event, _ *testData) {
		if _, ok := ev.(KeyEvent); ok {
			ctx.SubmitNotification(Command{Selector: "test.note"})
		}
	}

	inner := newProbe(5, 1)
	inner.child = NewPod[testData](emitter)
	var innerSaw int
	inner.onEvent = func(ctx *EventCtx, ev Event, _ *testData) {
		if e, ok := ev.(NotificationEvent); ok && e.Command.Selector == "test.note" {
			innerSaw++
			ctx.SetHandled()
		}
	}

	outer := newProbe(5, 1)
	outer.child = NewPod[testData](inner)
	var outerSaw int
	outer.onEvent = func(_ *EventCtx, ev Event, _ *testData) {
		if e, ok := ev.(NotificationEvent); ok && e.Command.Selector == "test.note" {
			outerSaw++
		}
	}

	app := newTestApp(t, outer)
	app.Dispatch(KeyEvent{Key: "enter"})

	assert.Equal(t, 1, innerSaw, "nearest ancestor claims the notification")
	assert.Zero(t, outerSaw, "handled notifications stop bubbling")
}

func TestApp_NotificationKeepsBubblingWhenUnhandled(t *testing.T) {
	emitter := newProbe(5, 1)
	emitter.onEvent = func(ctx *EventCtx, ev Event, _ *testData) {
		if _, ok := ev.(KeyEvent); ok {
			ctx.SubmitNotification(Command{Selector: "test.note"})
		}
	}

	inner := newProbe(5, 1)
	inner.child = NewPod[testData](emitter)

	outer := newProbe(5, 1)
	outer.child = NewPod[testData](inner)
	var outerSaw int
	outer.onEvent = func(ctx *EventCtx, ev Event, _ *testData) {
		if e, ok := ev.(NotificationEvent); ok && e.Command.Selector == "test.note" {
			outerSaw++
			ctx.SetHandled()
		}
	}

	app := newTestApp(t, outer)
	app.Dispatch(KeyEvent{Key: "enter"})

	assert.Equal(t, 1, outerSaw)
}

func TestApp_ActiveGrabReceivesOutsideMoves(t *testing.T) {
	grabber := newProbe(5, 1)
	grabber.onEvent = func(ctx *EventCtx, ev Event, _ *testData) {
		switch ev.(type) {
		case MouseDownEvent:
			ctx.SetActive(true)
			ctx.SetHandled()
		case MouseUpEvent:
			ctx.SetActive(false)
			ctx.SetHandled()
		}
	}
	sibling := newProbe(5, 1)

	root := NewColumn[testData]().WithChild(grabber).WithChild(sibling)
	app := newTestApp(t, root)
	app.Render()

	app.Dispatch(MouseDownEvent{Pos: Point{X: 1, Y: 0}, WindowPos: Point{X: 1, Y: 0}})
	app.Dispatch(MouseMoveEvent{Pos: Point{X: 30, Y: 8}, WindowPos: Point{X: 30, Y: 8}})
	app.Dispatch(MouseUpEvent{Pos: Point{X: 30, Y: 8}, WindowPos: Point{X: 30, Y: 8}})

	require.Len(t, grabber.mouseEvents(), 3, "grab routes all mouse events to the grabber")
	assert.Empty(t, sibling.mouseEvents())

	// Grab released: moves outside no longer arrive.
	app.Dispatch(MouseMoveEvent{Pos: Point{X: 30, Y: 8}, WindowPos: Point{X: 30, Y: 8}})
	assert.Len(t, grabber.mouseEvents(), 3)
}

func TestApp_UpdateRunsAfterDataMutation(t *testing.T) {
	mutator := newProbe(5, 1)
	mutator.onEvent = func(_ *EventCtx, ev Event, data *testData) {
		if _, ok := ev.(KeyEvent); ok {
			data.N++
		}
	}

	app := newTestApp(t, mutator)
	app.Dispatch(KeyEvent{Key: "x"})

	require.NotEmpty(t, mutator.updates)
	assert.Equal(t, testData{N: 1}, mutator.updates[len(mutator.updates)-1])
	assert.Equal(t, testData{N: 1}, app.Data())
}

func TestApp_LifecycleAddedFiresOncePerNode(t *testing.T) {
	leaf := newProbe(5, 1)
	root := newProbe(5, 1)
	root.child = NewPod[testData](leaf)

	app := newTestApp(t, root)
	app.Dispatch(KeyEvent{Key: "x"})
	app.Render()

	assert.Equal(t, 1, root.added)
	assert.Equal(t, 1, leaf.added)
}

func TestApp_AttachScanPicksUpNewSubtrees(t *testing.T) {
	late := newProbe(5, 1)
	parent := newProbe(5, 1)
	parent.onEvent = func(ctx *EventCtx, ev Event, _ *testData) {
		if _, ok := ev.(KeyEvent); ok && parent.child == nil {
			parent.child = NewPod[testData](late)
			ctx.ChildrenChanged()
		}
	}

	app := newTestApp(t, parent)
	assert.Zero(t, late.added)

	app.Dispatch(KeyEvent{Key: "x"})
	assert.Equal(t, 1, late.added)
}
