package widget

import "github.com/charmbracelet/lipgloss"

// Label is a single line of static or data-derived text.
type Label[T Value[T]] struct {
	text    func(T) string
	current string
	fixed   bool
	style   *lipgloss.Style
}

// NewLabel returns a label with fixed text.
func NewLabel[T Value[T]](text string) *Label[T] {
	return &Label[T]{
		text:    func(T) string { return text },
		current: text,
		fixed:   true,
	}
}

// NewDynamicLabel returns a label whose text is recomputed from the shared
// data on every update cycle.
func NewDynamicLabel[T Value[T]](text func(T) string) *Label[T] {
	return &Label[T]{text: text}
}

// WithStyle sets the label style and returns the label for chaining.
func (l *Label[T]) WithStyle(style lipgloss.Style) *Label[T] {
	l.style = &style
	return l
}

// Text returns the currently displayed text.
func (l *Label[T]) Text() string {
	return l.current
}

// ID implements Widget.
func (l *Label[T]) ID() NodeID { return "" }

// Event implements Widget.
func (l *Label[T]) Event(*EventCtx, Event, *T) {}

// Lifecycle implements Widget.
func (l *Label[T]) Lifecycle(_ *LifecycleCtx, ev LifecycleEvent, data T) {
	if ev == LifecycleAdded && !l.fixed {
		l.current = l.text(data)
	}
}

// Update implements Widget.
func (l *Label[T]) Update(ctx *UpdateCtx, _, data T) {
	if l.fixed {
		return
	}
	next := l.text(data)
	if next != l.current {
		l.current = next
		ctx.RequestLayout()
	}
}

// Layout implements Widget.
func (l *Label[T]) Layout(_ *LayoutCtx, cs Constraints, _ T) Size {
	return cs.Constrain(Size{Width: lipgloss.Width(l.current), Height: 1})
}

// Paint implements Widget.
func (l *Label[T]) Paint(ctx *PaintCtx, _ T) {
	ctx.DrawText(Point{}, l.current, l.style)
}
