// Package canvas is the persistent cell grid everything is drawn onto.
// Strokes are rasterized straight into it; there is no vector layer.
package canvas

import (
	"github.com/bethropolis/sketch/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DefaultBrush is the rune painted by strokes.
const DefaultBrush = '█'

// Cell is one grid position. A zero Rune means the cell is blank.
type Cell struct {
	Rune      rune
	Combining []rune
	Color     tcell.Color
}

// Canvas is a width x height grid of cells, row-major.
type Canvas struct {
	width  int
	height int
	cells  []Cell
	brush  rune
}

// New creates a blank canvas. Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	c := &Canvas{brush: DefaultBrush}
	c.Resize(width, height)
	return c
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// SetBrush changes the stroke rune. The zero rune restores the default.
func (c *Canvas) SetBrush(r rune) {
	if r == 0 {
		r = DefaultBrush
	}
	c.brush = r
}

// Brush returns the stroke rune.
func (c *Canvas) Brush() rune { return c.brush }

// Resize changes the grid size, keeping the overlapping region.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == c.width && height == c.height && c.cells != nil {
		return
	}
	cells := make([]Cell, width*height)
	for y := 0; y < height && y < c.height; y++ {
		for x := 0; x < width && x < c.width; x++ {
			cells[y*width+x] = c.cells[y*c.width+x]
		}
	}
	c.width, c.height, c.cells = width, height, cells
}

// Clear blanks every cell, strokes included.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// SetCell paints one cell. Out-of-range positions are ignored.
func (c *Canvas) SetCell(x, y int, r rune, combining []rune, color tcell.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Combining: combining, Color: color}
}

// Cell returns the cell at (x, y); out-of-range positions read as blank.
func (c *Canvas) Cell(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// DrawText writes text starting at p, one grapheme cluster per cell. Wide
// clusters also claim their continuation cells. Text is clipped to the grid.
func (c *Canvas) DrawText(p types.Point, text string, color tcell.Color) {
	x := p.X
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if width == 0 {
			continue
		}
		c.SetCell(x, p.Y, runes[0], runes[1:], color)
		for cw := 1; cw < width; cw++ {
			c.SetCell(x+cw, p.Y, ' ', nil, color)
		}
		x += width
		if x >= c.width {
			break
		}
	}
}

// DrawLine rasterizes the segment a-b with the brush, endpoints included.
func (c *Canvas) DrawLine(a, b types.Point, color tcell.Color) {
	// Bresenham
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		c.SetCell(x, y, c.brush, nil, color)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Blit copies the grid onto screen at the origin. Blank cells get the base
// style; painted cells use base with their own foreground.
func (c *Canvas) Blit(screen tcell.Screen, base tcell.Style) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.Rune == 0 {
				screen.SetContent(x, y, ' ', nil, base)
				continue
			}
			screen.SetContent(x, y, cell.Rune, cell.Combining, base.Foreground(cell.Color))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
