package tint

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Canvas is a fixed-size grid of cells for absolute-coordinate placement.
// Unlike Place, which clamps fractional positions, Canvas rejects any block
// that would not fit at the requested coordinates.
type Canvas struct {
	width, height int
	cells         []Cell
}

// NewCanvas creates a canvas filled with empty cells.
func NewCanvas(width, height int) (*Canvas, error) {
	if err := CheckRange("canvas width", width, 1, 0); err != nil {
		return nil, err
	}
	if err := CheckRange("canvas height", height, 1, 0); err != nil {
		return nil, err
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return &Canvas{width: width, height: height, cells: cells}, nil
}

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) index(x, y int) int {
	return y*c.width + x
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at (x, y), or EmptyCell if out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.inBounds(x, y) {
		return EmptyCell
	}
	return c.cells[c.index(x, y)]
}

// set writes a cell, blanking the other half of any wide glyph it cuts.
func (c *Canvas) set(x, y int, cell Cell) {
	if !c.inBounds(x, y) {
		return
	}
	i := c.index(x, y)
	if c.cells[i].Char == "" && x > 0 {
		c.cells[i-1] = EmptyCell
	}
	if c.cells[i].Char != "" && x+1 < c.width && c.cells[i+1].Char == "" {
		c.cells[i+1] = EmptyCell
	}
	c.cells[i] = cell
}

// Draw writes block with its top-left corner at (x, y). The whole block must
// fit inside the canvas; otherwise a *CoordinateError is returned and the
// canvas is left untouched. Styling embedded in the block is preserved.
// Cells past the end of a short line keep their previous content.
func (c *Canvas) Draw(x, y int, block string) error {
	return c.DrawStyled(x, y, block, EmptyStyle)
}

// DrawStyled is Draw with a base style underneath the block's own styling.
// Attributes embedded in the block take precedence over base.
func (c *Canvas) DrawStyled(x, y int, block string, base Style) error {
	w, h := Size(block)
	if x < 0 || y < 0 || x+w > c.width || y+h > c.height {
		return &CoordinateError{X: x, Y: y, Width: w, Height: h, CanvasWidth: c.width, CanvasHeight: c.height}
	}

	for row, line := range Lines(block) {
		col := x
		for _, seg := range ParseAnsiLine(line, EmptyStyle) {
			style := base.Merge(seg.Style)
			gs := graphemes.FromString(seg.Text)
			for gs.Next() {
				g := gs.Value()
				gw := widthCondition.StringWidth(g)
				if gw == 0 {
					continue
				}
				c.set(col, y+row, Cell{Char: g, Style: style})
				for k := 1; k < gw; k++ {
					c.set(col+k, y+row, continuationCell)
				}
				col += gw
			}
		}
	}
	return nil
}

// Lines returns the canvas rows encoded with SGR sequences.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y := range c.height {
		var sb strings.Builder
		row := c.cells[c.index(0, y):c.index(0, y+1)]
		RunToAnsi(CellRun{X: 0, Y: y, Cells: row}, &sb)
		lines[y] = sb.String()
	}
	return lines
}

// String returns the canvas as a block.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
