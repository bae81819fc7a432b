package widget

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Button is a clickable label. The click fires on release inside the
// button after a press that started inside it.
type Button[T Value[T]] struct {
	label        string
	onClick      func(ctx *EventCtx, data *T)
	style        *lipgloss.Style
	pressedStyle *lipgloss.Style
	pressed      bool
}

// NewButton returns a button invoking onClick when activated.
func NewButton[T Value[T]](label string, onClick func(ctx *EventCtx, data *T)) *Button[T] {
	return &Button[T]{label: label, onClick: onClick}
}

// WithStyles sets the idle and pressed styles and returns the button.
func (b *Button[T]) WithStyles(idle, pressed lipgloss.Style) *Button[T] {
	b.style = &idle
	b.pressedStyle = &pressed
	return b
}

// ID implements Widget.
func (b *Button[T]) ID() NodeID { return "" }

// Event implements Widget.
func (b *Button[T]) Event(ctx *EventCtx, ev Event, data *T) {
	switch e := ev.(type) {
	case MouseDownEvent:
		b.pressed = true
		ctx.SetActive(true)
		ctx.SetHandled()
	case MouseUpEvent:
		if !b.pressed {
			return
		}
		b.pressed = false
		ctx.SetActive(false)
		ctx.SetHandled()
		size := ctx.Size()
		inside := e.Pos.X >= 0 && e.Pos.Y >= 0 && e.Pos.X < size.Width && e.Pos.Y < size.Height
		if inside && b.onClick != nil {
			b.onClick(ctx, data)
		}
	}
}

// Lifecycle implements Widget.
func (b *Button[T]) Lifecycle(*LifecycleCtx, LifecycleEvent, T) {}

// Update implements Widget.
func (b *Button[T]) Update(*UpdateCtx, T, T) {}

// Layout implements Widget.
func (b *Button[T]) Layout(_ *LayoutCtx, cs Constraints, _ T) Size {
	return cs.Constrain(Size{Width: lipgloss.Width(b.label) + 2, Height: 1})
}

// Paint implements Widget.
func (b *Button[T]) Paint(ctx *PaintCtx, _ T) {
	style := b.style
	if b.pressed && b.pressedStyle != nil {
		style = b.pressedStyle
	}
	ctx.DrawText(Point{}, fmt.Sprintf("[%s]", b.label), style)
}
