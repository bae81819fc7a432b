package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is the cell buffer one frame is composited into. Later draws
// overwrite earlier ones, which is how z-order occlusion works: the stack
// paints back-to-front.
type Canvas struct {
	width  int
	height int
	runes  [][]rune
	styles [][]*lipgloss.Style
}

// NewCanvas returns a blank canvas of the given size, filled with spaces.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height}
	c.runes = make([][]rune, height)
	c.styles = make([][]*lipgloss.Style, height)
	for y := 0; y < height; y++ {
		c.runes[y] = make([]rune, width)
		c.styles[y] = make([]*lipgloss.Style, width)
		for x := 0; x < width; x++ {
			c.runes[y][x] = ' '
		}
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// SetCell writes one cell, ignoring out-of-bounds coordinates.
func (c *Canvas) SetCell(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = style
}

// CellRune returns the rune at the given cell, or space when out of bounds.
func (c *Canvas) CellRune(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ' '
	}
	return c.runes[y][x]
}

// String renders the canvas to a terminal string, grouping runs of cells
// that share a style so each run is styled once.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		x := 0
		for x < c.width {
			style := c.styles[y][x]
			end := x
			for end < c.width && c.styles[y][end] == style {
				end++
			}
			run := string(c.runes[y][x:end])
			if style != nil {
				b.WriteString(style.Render(run))
			} else {
				b.WriteString(run)
			}
			x = end
		}
		if y < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PaintCtx is handed to Widget.Paint. All drawing is clipped to the
// widget's own region and to the canvas bounds.
type PaintCtx struct {
	canvas *Canvas
	origin Point
	size   Size
}

// Size returns the widget's laid-out size.
func (c *PaintCtx) Size() Size {
	return c.size
}

// SetCell writes one cell in widget-local coordinates.
func (c *PaintCtx) SetCell(p Point, r rune, style *lipgloss.Style) {
	if p.X < 0 || p.Y < 0 || p.X >= c.size.Width || p.Y >= c.size.Height {
		return
	}
	c.canvas.SetCell(c.origin.X+p.X, c.origin.Y+p.Y, r, style)
}

// DrawText writes a single line of text starting at p, clipped to the
// widget's region. One rune occupies one cell.
func (c *PaintCtx) DrawText(p Point, text string, style *lipgloss.Style) {
	x := p.X
	for _, r := range text {
		c.SetCell(Point{X: x, Y: p.Y}, r, style)
		x++
	}
}

// Fill floods the widget's region with spaces in the given style.
func (c *PaintCtx) Fill(style *lipgloss.Style) {
	for y := 0; y < c.size.Height; y++ {
		for x := 0; x < c.size.Width; x++ {
			c.SetCell(Point{X: x, Y: y}, ' ', style)
		}
	}
}

// child derives a paint context for a child region.
func (c *PaintCtx) child(origin Point, size Size) *PaintCtx {
	return &PaintCtx{
		canvas: c.canvas,
		origin: c.origin.Add(origin),
		size:   size,
	}
}
