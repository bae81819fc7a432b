package widget

// Axis selects a Flex direction.
type Axis int

const (
	// Vertical stacks children top to bottom.
	Vertical Axis = iota
	// Horizontal lays children left to right.
	Horizontal
)

type flexChild[T Value[T]] struct {
	pod      *Pod[T]
	flex     int
	fixedGap int
	flexGap  int
	mainSize int
}

// Flex lays out children along one axis. Fixed children take their
// intrinsic size; flex children and flex spacers share the leftover main
// extent proportionally to their factors.
type Flex[T Value[T]] struct {
	axis     Axis
	children []*flexChild[T]
	fill     bool
}

// NewRow returns a horizontal Flex.
func NewRow[T Value[T]]() *Flex[T] {
	return &Flex[T]{axis: Horizontal}
}

// NewColumn returns a vertical Flex.
func NewColumn[T Value[T]]() *Flex[T] {
	return &Flex[T]{axis: Vertical}
}

// WithChild appends a fixed-size child.
func (f *Flex[T]) WithChild(w Widget[T]) *Flex[T] {
	f.children = append(f.children, &flexChild[T]{pod: NewPod(w)})
	return f
}

// WithFlexChild appends a child that absorbs leftover space with the given
// factor.
func (f *Flex[T]) WithFlexChild(w Widget[T], flex int) *Flex[T] {
	if flex < 1 {
		flex = 1
	}
	f.children = append(f.children, &flexChild[T]{pod: NewPod(w), flex: flex})
	return f
}

// WithSpacer appends a fixed gap of n cells.
func (f *Flex[T]) WithSpacer(n int) *Flex[T] {
	f.children = append(f.children, &flexChild[T]{fixedGap: n})
	return f
}

// WithFlexSpacer appends an empty gap that absorbs leftover space.
func (f *Flex[T]) WithFlexSpacer(flex int) *Flex[T] {
	if flex < 1 {
		flex = 1
	}
	f.children = append(f.children, &flexChild[T]{flexGap: flex})
	return f
}

// MustFill makes the flex occupy the full main extent of its constraints
// even without flex children.
func (f *Flex[T]) MustFill() *Flex[T] {
	f.fill = true
	return f
}

// ID implements Widget.
func (f *Flex[T]) ID() NodeID { return "" }

// Event implements Widget.
func (f *Flex[T]) Event(ctx *EventCtx, ev Event, data *T) {
	for _, c := range f.children {
		if c.pod == nil {
			continue
		}
		c.pod.Event(ctx, ev, data)
		if ctx.Handled() {
			return
		}
	}
}

// Lifecycle implements Widget.
func (f *Flex[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data T) {
	for _, c := range f.children {
		if c.pod != nil {
			c.pod.Lifecycle(ctx, ev, data)
		}
	}
}

// Update implements Widget.
func (f *Flex[T]) Update(ctx *UpdateCtx, _, data T) {
	for _, c := range f.children {
		if c.pod != nil {
			c.pod.Update(ctx, data)
		}
	}
}

// Layout implements Widget.
func (f *Flex[T]) Layout(ctx *LayoutCtx, cs Constraints, data T) Size {
	mainMax := f.main(cs.Max)
	crossMax := f.cross(cs.Max)

	used := 0
	totalFlex := 0
	maxCross := 0
	for _, c := range f.children {
		switch {
		case c.pod != nil && c.flex == 0:
			childCS := Loose(f.pack(mainMax-used, crossMax))
			size := c.pod.Layout(ctx, childCS, data)
			c.mainSize = f.main(size)
			used += c.mainSize
			if cr := f.cross(size); cr > maxCross {
				maxCross = cr
			}
		case c.pod != nil:
			totalFlex += c.flex
		case c.flexGap > 0:
			totalFlex += c.flexGap
		default:
			c.mainSize = c.fixedGap
			used += c.fixedGap
		}
	}

	remaining := mainMax - used
	if remaining < 0 {
		remaining = 0
	}
	if totalFlex > 0 {
		left := remaining
		for _, c := range f.children {
			factor := c.flex
			if c.pod == nil {
				factor = c.flexGap
			}
			if factor == 0 {
				continue
			}
			share := remaining * factor / totalFlex
			if share > left {
				share = left
			}
			left -= share
			c.mainSize = share
			if c.pod != nil {
				childCS := Tight(f.pack(share, crossMax))
				size := c.pod.Layout(ctx, childCS, data)
				if cr := f.cross(size); cr > maxCross {
					maxCross = cr
				}
			}
		}
	}

	offset := 0
	for _, c := range f.children {
		if c.pod != nil {
			c.pod.SetOrigin(f.origin(offset))
		}
		offset += c.mainSize
	}

	mainSize := offset
	if (totalFlex > 0 || f.fill) && mainMax < Unconstrained {
		mainSize = mainMax
	}
	return cs.Constrain(f.pack(mainSize, maxCross))
}

// Paint implements Widget.
func (f *Flex[T]) Paint(ctx *PaintCtx, data T) {
	for _, c := range f.children {
		if c.pod != nil {
			c.pod.Paint(ctx, data)
		}
	}
}

func (f *Flex[T]) main(s Size) int {
	if f.axis == Horizontal {
		return s.Width
	}
	return s.Height
}

func (f *Flex[T]) cross(s Size) int {
	if f.axis == Horizontal {
		return s.Height
	}
	return s.Width
}

func (f *Flex[T]) pack(main, cross int) Size {
	if f.axis == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (f *Flex[T]) origin(offset int) Point {
	if f.axis == Horizontal {
		return Point{X: offset}
	}
	return Point{Y: offset}
}
