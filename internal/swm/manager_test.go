package swm

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/widget"
)

type syncState struct {
	Text  string
	Count int
}

func (s syncState) Same(other syncState) bool { return s == other }
func (s syncState) Clone() syncState          { return s }

// stub is a fixed-size test widget recording the events and update values
// it sees.
type stub struct {
	id      widget.NodeID
	size    widget.Size
	events  []widget.Event
	updates []syncState
	removed int
	onEvent func(ctx *widget.EventCtx, ev widget.Event, data *syncState)
}

func newStub(w, h int) *stub {
	return &stub{size: widget.Size{Width: w, Height: h}}
}

func (s *stub) ID() widget.NodeID { return s.id }

func (s *stub) Event(ctx *widget.EventCtx, ev widget.Event, data *syncState) {
	s.events = append(s.events, ev)
	if s.onEvent != nil {
		s.onEvent(ctx, ev, data)
	}
}

func (s *stub) Lifecycle(_ *widget.LifecycleCtx, ev widget.LifecycleEvent, _ syncState) {
	if ev == widget.LifecycleRemoved {
		s.removed++
	}
}

func (s *stub) Update(_ *widget.UpdateCtx, _, data syncState) {
	s.updates = append(s.updates, data)
}

func (s *stub) Layout(_ *widget.LayoutCtx, cs widget.Constraints, _ syncState) widget.Size {
	return cs.Constrain(s.size)
}

func (s *stub) Paint(*widget.PaintCtx, syncState) {}

func (s *stub) lastUpdate() (syncState, bool) {
	if len(s.updates) == 0 {
		return syncState{}, false
	}
	return s.updates[len(s.updates)-1], true
}

func (s *stub) mouseEvents() []widget.Event {
	var out []widget.Event
	for _, ev := range s.events {
		if _, ok := widget.MousePos(ev); ok {
			out = append(out, ev)
		}
	}
	return out
}

// fixture wires a manager, a root proxy with toolbar content, and a
// driving app over an 80x24 surface.
type fixture struct {
	app      *widget.App[syncState]
	manager  *Manager[syncState]
	proxy    *Proxy[syncState]
	launcher Launcher[syncState]
	toolbar  *stub
	th       *theme.Theme
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{th: &theme.Theme{}, toolbar: newStub(10, 1)}
	f.manager = NewManager[syncState](f.th, syncState{}, func(mid ManagerID) widget.Widget[syncState] {
		f.proxy = NewProxy[syncState](mid, f.th, func(l Launcher[syncState]) widget.Widget[syncState] {
			f.launcher = l
			return f.toolbar
		})
		return f.proxy
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.app = widget.NewApp[syncState](f.manager, syncState{}, logger)
	f.app.Resize(80, 24)
	f.app.Start()
	f.app.Render()
	return f
}

func (f *fixture) open(content widget.Widget[syncState], cfg Config) widget.NodeID {
	id := f.launcher.AddWindow(f.app, content, f.app.Data(), cfg)
	f.app.Render()
	return id
}

func (f *fixture) close(id widget.NodeID) {
	f.app.Submit(widget.Command{
		Selector: SelectorCloseWindow,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  widget.NewSingleUse(id),
	})
	f.app.Render()
}

func TestManager_RootIsSelfHosted(t *testing.T) {
	f := newFixture(t)

	ids := f.manager.Windows()
	require.Len(t, ids, 1)
	assert.False(t, ids[0].IsZero())
}

func TestManager_WindowIDsUnique(t *testing.T) {
	f := newFixture(t)

	seen := make(map[widget.NodeID]bool)
	for _, id := range f.manager.Windows() {
		seen[id] = true
	}
	for i := 0; i < 5; i++ {
		id := f.open(newStub(8, 2), NewConfig().WithPosition(At(i*3, i)))
		require.False(t, id.IsZero())
		require.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, f.manager.Windows(), 6)
}

func TestManager_ZOrderCreateThenRaise(t *testing.T) {
	f := newFixture(t)
	root := f.manager.Windows()[0]

	a := f.open(newStub(8, 2), NewConfig().WithPosition(At(1, 1)))
	b := f.open(newStub(8, 2), NewConfig().WithPosition(At(2, 2)))
	c := f.open(newStub(8, 2), NewConfig().WithPosition(At(3, 3)))

	assert.Equal(t, []widget.NodeID{root, a, b, c}, f.manager.Windows())

	f.app.Submit(widget.Command{
		Selector: SelectorWindowToTop,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  a,
	})
	assert.Equal(t, []widget.NodeID{root, b, c, a}, f.manager.Windows())

	// Raising the frontmost window again changes nothing.
	f.app.Submit(widget.Command{
		Selector: SelectorWindowToTop,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  a,
	})
	assert.Equal(t, []widget.NodeID{root, b, c, a}, f.manager.Windows())
}

func TestManager_CloseIsIdempotent(t *testing.T) {
	f := newFixture(t)
	content := newStub(8, 2)
	id := f.open(content, NewConfig().WithPosition(At(4, 4)))
	require.Len(t, f.manager.Windows(), 2)

	f.close(id)
	assert.Len(t, f.manager.Windows(), 1)
	assert.Equal(t, 1, content.removed, "teardown runs once")

	f.close(id)
	assert.Len(t, f.manager.Windows(), 1)
	assert.Equal(t, 1, content.removed)
}

func TestManager_MissingTargetsIgnored(t *testing.T) {
	f := newFixture(t)
	f.open(newStub(8, 2), NewConfig().WithPosition(At(4, 4)))
	before := f.manager.Windows()

	ghost := widget.NewNodeID()
	f.app.Submit(widget.Command{
		Selector: SelectorWindowToTop,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  ghost,
	})
	f.app.Submit(widget.Command{
		Selector: SelectorDragWindow,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  widget.NewSingleUse(DragTarget{Window: ghost, To: widget.Point{X: 1, Y: 1}}),
	})
	f.app.Submit(widget.Command{
		Selector: SelectorCloseWindow,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  widget.NewSingleUse(ghost),
	})

	assert.Equal(t, before, f.manager.Windows())
}

func TestManager_RaiseForRootIgnored(t *testing.T) {
	f := newFixture(t)
	root := f.manager.Windows()[0]
	a := f.open(newStub(8, 2), NewConfig().WithPosition(At(1, 1)))

	// The full-surface root entry must never occlude the windows.
	f.app.Submit(widget.Command{
		Selector: SelectorWindowToTop,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  root,
	})
	assert.Equal(t, []widget.NodeID{root, a}, f.manager.Windows())
}

func TestManager_CloseForRootIgnored(t *testing.T) {
	f := newFixture(t)
	root := f.manager.Windows()[0]

	f.close(root)
	assert.Len(t, f.manager.Windows(), 1)
}

func TestManager_SingleUsePayloadMutatesOnce(t *testing.T) {
	f := newFixture(t)
	a := f.open(newStub(8, 2), NewConfig().WithPosition(At(1, 1)))
	b := f.open(newStub(8, 2), NewConfig().WithPosition(At(2, 2)))

	// The same payload delivered twice removes exactly one window.
	payload := widget.NewSingleUse(a)
	cmd := widget.Command{
		Selector: SelectorCloseWindow,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  payload,
	}
	f.app.Submit(cmd)
	f.app.Submit(cmd)

	require.Len(t, f.manager.Windows(), 2)
	assert.Contains(t, f.manager.Windows(), b)
	assert.NotContains(t, f.manager.Windows(), a)
}

func TestManager_DragConvertsSurfaceToLocal(t *testing.T) {
	f := newFixture(t)
	id := f.open(newStub(8, 2), NewConfig().WithPosition(At(10, 5)))

	origin, ok := f.manager.WindowOrigin(id)
	require.True(t, ok)
	require.Equal(t, widget.Point{X: 10, Y: 5}, origin)

	f.app.Submit(widget.Command{
		Selector: SelectorDragWindow,
		Target:   widget.TargetNode(f.manager.ID()),
		Payload:  widget.NewSingleUse(DragTarget{Window: id, To: widget.Point{X: 20, Y: 0}}),
	})
	f.app.Render()

	origin, ok = f.manager.WindowOrigin(id)
	require.True(t, ok)
	assert.Equal(t, widget.Point{X: 20, Y: 0}, origin)
	assert.Equal(t, id, f.manager.Windows()[1], "moving does not reorder")
}

func TestManager_FitWindowFillsArea(t *testing.T) {
	f := newFixture(t)
	content := newStub(3, 1)
	id := f.open(content, NewConfig().WithPosition(Fitted()))

	origin, ok := f.manager.WindowOrigin(id)
	require.True(t, ok)
	assert.Equal(t, widget.Point{}, origin)
}

func TestManager_UntitledDefaultsCentered(t *testing.T) {
	f := newFixture(t)
	id := f.open(newStub(8, 2), NewConfig())

	origin, ok := f.manager.WindowOrigin(id)
	require.True(t, ok)
	// Window is content 8x2 plus a one-cell border on an 80x24 surface.
	assert.Equal(t, widget.Point{X: 35, Y: 10}, origin)
}
