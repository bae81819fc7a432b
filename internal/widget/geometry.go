package widget

// Unconstrained is the axis limit used when a widget is measured without a
// bounded box, e.g. the titlebar prototype pass.
const Unconstrained = 1 << 24

// Point is a position in cells. Depending on context it is either local to
// a widget or in window (whole surface) coordinates.
type Point struct {
	X int
	Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a widget extent in cells.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Constraints is the box-constraint pair handed down during layout.
// A widget must return a size within [Min, Max].
type Constraints struct {
	Min Size
	Max Size
}

// Tight returns constraints that admit exactly s.
func Tight(s Size) Constraints {
	return Constraints{Min: s, Max: s}
}

// Loose returns constraints with no lower bound and an upper bound of s.
func Loose(s Size) Constraints {
	return Constraints{Max: s}
}

// Unbounded returns constraints with no usable upper bound. Used for
// measuring intrinsic sizes.
func Unbounded() Constraints {
	return Constraints{Max: Size{Width: Unconstrained, Height: Unconstrained}}
}

// Constrain clamps s into the constraint box.
func (c Constraints) Constrain(s Size) Size {
	if s.Width < c.Min.Width {
		s.Width = c.Min.Width
	}
	if s.Height < c.Min.Height {
		s.Height = c.Min.Height
	}
	if s.Width > c.Max.Width {
		s.Width = c.Max.Width
	}
	if s.Height > c.Max.Height {
		s.Height = c.Max.Height
	}
	return s
}

// Shrink reduces both bounds by the given cell amounts, flooring at zero.
// The result is loose: the minimum is dropped so children can report their
// intrinsic size.
func (c Constraints) Shrink(w, h int) Constraints {
	maxW := c.Max.Width - w
	if maxW < 0 {
		maxW = 0
	}
	maxH := c.Max.Height - h
	if maxH < 0 {
		maxH = 0
	}
	return Constraints{Max: Size{Width: maxW, Height: maxH}}
}

// Loosen drops the minimum bound.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}
