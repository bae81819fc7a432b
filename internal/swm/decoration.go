package swm

import (
	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/widget"
)

const borderWidth = 1

// Window is the chrome around one sub-window's content: a border, an
// optional titlebar with a drag handle and close button, and raise-on-
// click. It owns no cross-window state; every interaction turns into a
// command to the manager.
type Window[U widget.Value[U]] struct {
	theme     *theme.Theme
	managerID widget.NodeID
	windowID  widget.NodeID
	titled    bool

	titlebar *widget.Pod[U]
	content  *widget.Pod[U]

	// The layout pass offers no way to measure without placing, so the
	// titlebar minimum comes from laying out a disposable duplicate of
	// its content once, under unconstrained space. Title text is fixed
	// after construction, so the cached result stays valid.
	proto    *widget.Pod[U]
	minTitle widget.Size
	measured bool
}

// NewWindow wraps content in window chrome for the given manager and
// window ids.
func NewWindow[U widget.Value[U]](th *theme.Theme, managerID, windowID widget.NodeID, cfg Config, content widget.Widget[U]) *Window[U] {
	w := &Window[U]{
		theme:     th,
		managerID: managerID,
		windowID:  windowID,
		titled:    cfg.titled,
		content:   widget.NewPod(content),
	}
	if cfg.titled {
		w.titlebar = widget.NewPod[U](newTitlebar[U](th, managerID, windowID, cfg.title, widget.Point{X: borderWidth, Y: borderWidth}))
		w.proto = widget.NewPod[U](titlebarRow[U](th, cfg.title, false))
	}
	return w
}

// ID implements Widget.
func (w *Window[U]) ID() widget.NodeID { return "" }

// Event implements Widget. Any press inside the chrome raises the window
// before the press is routed further.
func (w *Window[U]) Event(ctx *widget.EventCtx, ev widget.Event, data *U) {
	if _, ok := ev.(widget.MouseDownEvent); ok {
		ctx.Submit(widget.Command{
			Selector: SelectorWindowToTop,
			Target:   widget.TargetNode(w.managerID),
			Payload:  w.windowID,
		})
	}
	if w.titlebar != nil {
		w.titlebar.Event(ctx, ev, data)
		if ctx.Handled() {
			return
		}
	}
	w.content.Event(ctx, ev, data)
}

// Lifecycle implements Widget.
func (w *Window[U]) Lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent, data U) {
	if w.titlebar != nil {
		w.titlebar.Lifecycle(ctx, ev, data)
	}
	w.content.Lifecycle(ctx, ev, data)
}

// Update implements Widget.
func (w *Window[U]) Update(ctx *widget.UpdateCtx, _, data U) {
	if w.titlebar != nil {
		w.titlebar.Update(ctx, data)
	}
	w.content.Update(ctx, data)
}

// Layout implements Widget.
func (w *Window[U]) Layout(ctx *widget.LayoutCtx, cs widget.Constraints, data U) widget.Size {
	titlebarH := 0
	if w.titled {
		titlebarH = 1
	}
	chromeW := 2 * borderWidth
	chromeH := 2*borderWidth + titlebarH

	inner := widget.Constraints{
		Min: widget.Size{Width: floorZero(cs.Min.Width - chromeW), Height: floorZero(cs.Min.Height - chromeH)},
		Max: widget.Size{Width: floorZero(cs.Max.Width - chromeW), Height: floorZero(cs.Max.Height - chromeH)},
	}
	contentSize := w.content.Layout(ctx, inner, data)

	innerW := contentSize.Width
	if w.titled {
		if !w.measured {
			w.minTitle = w.proto.Layout(ctx, widget.Unbounded(), data)
			w.measured = true
		}
		if w.minTitle.Width > innerW {
			innerW = w.minTitle.Width
		}
		if innerW > inner.Max.Width {
			innerW = inner.Max.Width
		}
		w.titlebar.Layout(ctx, widget.Tight(widget.Size{Width: innerW, Height: 1}), data)
		w.titlebar.SetOrigin(widget.Point{X: borderWidth, Y: borderWidth})
	}
	w.content.SetOrigin(widget.Point{X: borderWidth, Y: borderWidth + titlebarH})

	return cs.Constrain(widget.Size{
		Width:  innerW + chromeW,
		Height: contentSize.Height + chromeH,
	})
}

// Paint implements Widget.
func (w *Window[U]) Paint(ctx *widget.PaintCtx, data U) {
	ctx.Fill(&w.theme.Window)
	w.paintBorder(ctx)
	if w.titlebar != nil {
		w.titlebar.Paint(ctx, data)
	}
	w.content.Paint(ctx, data)
}

func (w *Window[U]) paintBorder(ctx *widget.PaintCtx) {
	size := ctx.Size()
	right := size.Width - 1
	bottom := size.Height - 1
	style := &w.theme.Border

	for x := 1; x < right; x++ {
		ctx.SetCell(widget.Point{X: x, Y: 0}, '─', style)
		ctx.SetCell(widget.Point{X: x, Y: bottom}, '─', style)
	}
	for y := 1; y < bottom; y++ {
		ctx.SetCell(widget.Point{X: 0, Y: y}, '│', style)
		ctx.SetCell(widget.Point{X: right, Y: y}, '│', style)
	}
	ctx.SetCell(widget.Point{X: 0, Y: 0}, '┌', style)
	ctx.SetCell(widget.Point{X: right, Y: 0}, '┐', style)
	ctx.SetCell(widget.Point{X: 0, Y: bottom}, '└', style)
	ctx.SetCell(widget.Point{X: right, Y: bottom}, '┘', style)
}

// titlebar is the drag controller wrapped around the title row. A press
// on the row's close button wins over dragging because the row sees the
// event first.
type titlebar[U widget.Value[U]] struct {
	theme     *theme.Theme
	managerID widget.NodeID
	windowID  widget.NodeID

	// inset is the titlebar's origin in window coordinates. Grab offsets
	// are kept window-relative so a drag moves the window by exactly the
	// pointer delta.
	inset widget.Point

	row *widget.Pod[U]

	dragging   bool
	grabOffset widget.Point
}

func newTitlebar[U widget.Value[U]](th *theme.Theme, managerID, windowID widget.NodeID, title string, inset widget.Point) *titlebar[U] {
	return &titlebar[U]{
		theme:     th,
		managerID: managerID,
		windowID:  windowID,
		inset:     inset,
		row:       widget.NewPod[U](titlebarRow[U](th, title, true)),
	}
}

// titlebarRow builds the visible titlebar content. The flexible variant
// pushes the close button to the right edge; the rigid variant is the
// prototype used for intrinsic measurement.
func titlebarRow[U widget.Value[U]](th *theme.Theme, title string, flexible bool) *widget.Flex[U] {
	label := widget.NewLabel[U](title).WithStyle(th.TitlebarText)
	closeBtn := widget.NewButton[U]("x", func(ctx *widget.EventCtx, _ *U) {
		ctx.SubmitNotification(closeNotification())
	}).WithStyles(th.Button, th.ButtonActive)

	row := widget.NewRow[U]().WithChild(label)
	if flexible {
		return row.WithFlexSpacer(1).WithChild(closeBtn)
	}
	return row.WithSpacer(1).WithChild(closeBtn)
}

// ID implements Widget.
func (t *titlebar[U]) ID() widget.NodeID { return "" }

// Event implements Widget.
func (t *titlebar[U]) Event(ctx *widget.EventCtx, ev widget.Event, data *U) {
	t.row.Event(ctx, ev, data)
	if ctx.Handled() {
		return
	}

	switch e := ev.(type) {
	case widget.MouseDownEvent:
		t.dragging = true
		t.grabOffset = e.Pos.Add(t.inset)
		ctx.SetActive(true)
		ctx.SetHandled()
	case widget.MouseMoveEvent:
		if !t.dragging {
			return
		}
		ctx.Submit(widget.Command{
			Selector: SelectorDragWindow,
			Target:   widget.TargetNode(t.managerID),
			Payload: widget.NewSingleUse(DragTarget{
				Window: t.windowID,
				To:     e.WindowPos.Sub(t.grabOffset),
			}),
		})
		ctx.SetHandled()
	case widget.MouseUpEvent:
		if !t.dragging {
			return
		}
		t.dragging = false
		ctx.SetActive(false)
		ctx.SetHandled()
	}
}

// Lifecycle implements Widget.
func (t *titlebar[U]) Lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent, data U) {
	t.row.Lifecycle(ctx, ev, data)
}

// Update implements Widget.
func (t *titlebar[U]) Update(ctx *widget.UpdateCtx, _, data U) {
	t.row.Update(ctx, data)
}

// Layout implements Widget.
func (t *titlebar[U]) Layout(ctx *widget.LayoutCtx, cs widget.Constraints, data U) widget.Size {
	size := t.row.Layout(ctx, cs, data)
	t.row.SetOrigin(widget.Point{})
	return size
}

// Paint implements Widget.
func (t *titlebar[U]) Paint(ctx *widget.PaintCtx, data U) {
	ctx.Fill(&t.theme.Titlebar)
	t.row.Paint(ctx, data)
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
