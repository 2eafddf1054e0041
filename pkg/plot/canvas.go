package plot

import (
	"math"
	"strings"

	"src.graphcalc.dev/pkg/fn"
)

// Glyphs drawn on a Canvas.
const (
	Blank    = ' '
	HAxis    = '-'
	VAxis    = '|'
	Crossing = '+'
	Curve    = '*'
)

// Epsilon is the distance from zero, in window units, within which a sample is
// drawn on the horizontal axis itself.
const Epsilon = 0.01

// Canvas is a grid of glyphs built by one call to Rasterize.
type Canvas struct {
	cells [][]byte
}

func newCanvas(width, height int) *Canvas {
	cells := make([][]byte, height)
	for i := range cells {
		cells[i] = []byte(strings.Repeat(string(Blank), width))
	}
	return &Canvas{cells}
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	if len(c.cells) == 0 {
		return 0
	}
	return len(c.cells[0])
}

// Height returns the number of rows.
func (c *Canvas) Height() int { return len(c.cells) }

// At returns the glyph at the given cell.
func (c *Canvas) At(row, col int) byte { return c.cells[row][col] }

// Row returns one row of the canvas as a string.
func (c *Canvas) Row(row int) string { return string(c.cells[row]) }

// Col returns one column of the canvas as a string, top to bottom.
func (c *Canvas) Col(col int) string {
	b := make([]byte, len(c.cells))
	for i, row := range c.cells {
		b[i] = row[col]
	}
	return string(b)
}

// String returns all rows joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}

// Rasterize draws the axes and one sample of f per column onto a new Canvas.
//
// Samples outside [YMin, YMax] are skipped. A sample within Epsilon of zero
// is placed on the axis row; any other sample that lands on the axis row is
// moved one row away from it, towards the sign of y. A sample that lands on an
// axis glyph, or on the axis intersection, is drawn as a crossing.
func (p *Plotter) Rasterize(f fn.Function) *Canvas {
	c := newCanvas(p.width, p.height)

	axisRow := p.YToScreen(0)
	axisCol := p.XToScreen(0)
	if p.inRows(axisRow) {
		for j := range c.cells[axisRow] {
			c.cells[axisRow][j] = HAxis
		}
	}
	if p.inCols(axisCol) {
		for i := range c.cells {
			c.cells[i][axisCol] = VAxis
		}
	}
	if p.inRows(axisRow) && p.inCols(axisCol) {
		c.cells[axisRow][axisCol] = Crossing
	}

	ylo, yhi := math.Min(p.w.YMin, p.w.YMax), math.Max(p.w.YMin, p.w.YMax)
	for col := 0; col < p.width; col++ {
		y := f.Eval(p.ScreenToX(col))
		if !(y >= ylo && y <= yhi) {
			continue
		}
		row := p.YToScreen(y)
		if math.Abs(y) < Epsilon {
			row = axisRow
		} else if row == axisRow {
			if y > 0 {
				row--
			} else {
				row++
			}
		}
		if !p.inRows(row) {
			continue
		}
		switch c.cells[row][col] {
		case HAxis, VAxis, Crossing:
			c.cells[row][col] = Crossing
		default:
			c.cells[row][col] = Curve
		}
	}
	return c
}
