package widget

// Insets holds per-edge padding in cells.
type Insets struct {
	Top, Right, Bottom, Left int
}

// UniformInsets returns insets with the same value on every edge.
func UniformInsets(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

func (in Insets) horizontal() int { return in.Left + in.Right }
func (in Insets) vertical() int   { return in.Top + in.Bottom }

// Padding surrounds a single child with empty space.
type Padding[T Value[T]] struct {
	insets Insets
	child  *Pod[T]
}

// NewPadding wraps w with the given insets.
func NewPadding[T Value[T]](insets Insets, w Widget[T]) *Padding[T] {
	return &Padding[T]{insets: insets, child: NewPod(w)}
}

// ID implements Widget.
func (p *Padding[T]) ID() NodeID { return "" }

// Event implements Widget.
func (p *Padding[T]) Event(ctx *EventCtx, ev Event, data *T) {
	p.child.Event(ctx, ev, data)
}

// Lifecycle implements Widget.
func (p *Padding[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data T) {
	p.child.Lifecycle(ctx, ev, data)
}

// Update implements Widget.
func (p *Padding[T]) Update(ctx *UpdateCtx, _, data T) {
	p.child.Update(ctx, data)
}

// Layout implements Widget.
func (p *Padding[T]) Layout(ctx *LayoutCtx, cs Constraints, data T) Size {
	inner := cs.Shrink(p.insets.horizontal(), p.insets.vertical())
	size := p.child.Layout(ctx, inner, data)
	p.child.SetOrigin(Point{X: p.insets.Left, Y: p.insets.Top})
	return cs.Constrain(Size{
		Width:  size.Width + p.insets.horizontal(),
		Height: size.Height + p.insets.vertical(),
	})
}

// Paint implements Widget.
func (p *Padding[T]) Paint(ctx *PaintCtx, data T) {
	p.child.Paint(ctx, data)
}
