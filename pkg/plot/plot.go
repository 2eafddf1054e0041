// Package plot draws functions as ASCII art.
//
// A Plotter holds the size of the character grid and the visible window of
// logical coordinates. Each call to Rasterize or Plot builds a fresh Canvas;
// nothing is retained between calls.
package plot

import (
	"errors"
	"math"
)

// Default grid size and window.
const (
	DefaultWidth  = 61
	DefaultHeight = 21
)

// DefaultWindow is the window of a newly created Plotter.
var DefaultWindow = Window{XMin: -10, XMax: 10, YMin: -10, YMax: 10}

var (
	// ErrGridTooSmall is returned by New when either dimension is below 2.
	ErrGridTooSmall = errors.New("plot grid must be at least 2x2")
	// ErrDegenerateWindow is returned by SetRange for windows with an empty
	// or non-finite extent.
	ErrDegenerateWindow = errors.New("degenerate plot window")
)

// Window is a rectangle of logical coordinates.
type Window struct {
	XMin, XMax, YMin, YMax float64
}

// Validate returns ErrDegenerateWindow if either extent is empty or any bound
// is not finite. Inverted windows (min > max) are valid.
func (w Window) Validate() error {
	for _, v := range [...]float64{w.XMin, w.XMax, w.YMin, w.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrDegenerateWindow
		}
	}
	if w.XMin == w.XMax || w.YMin == w.YMax {
		return ErrDegenerateWindow
	}
	return nil
}

// Plotter maps logical coordinates onto a character grid.
type Plotter struct {
	width, height int
	w             Window
}

// New returns a Plotter with the given grid size and DefaultWindow.
func New(width, height int) (*Plotter, error) {
	if width < 2 || height < 2 {
		return nil, ErrGridTooSmall
	}
	return &Plotter{width, height, DefaultWindow}, nil
}

// Size returns the width and height of the grid.
func (p *Plotter) Size() (width, height int) { return p.width, p.height }

// Window returns the current window.
func (p *Plotter) Window() Window { return p.w }

// SetRange sets the window. A window that fails Validate is rejected and the
// current window is kept.
func (p *Plotter) SetRange(w Window) error {
	if err := w.Validate(); err != nil {
		return err
	}
	p.w = w
	return nil
}

// SetXRange sets only the horizontal bounds of the window.
func (p *Plotter) SetXRange(xmin, xmax float64) error {
	w := p.w
	w.XMin, w.XMax = xmin, xmax
	return p.SetRange(w)
}

// XToScreen returns the grid column of the logical x coordinate. The result
// may lie outside the grid.
func (p *Plotter) XToScreen(x float64) int {
	return toIndex((x - p.w.XMin) / (p.w.XMax - p.w.XMin) * float64(p.width-1))
}

// YToScreen returns the grid row of the logical y coordinate. Row 0 is YMax.
// The result may lie outside the grid.
func (p *Plotter) YToScreen(y float64) int {
	return toIndex((p.w.YMax - y) / (p.w.YMax - p.w.YMin) * float64(p.height-1))
}

// ScreenToX returns the logical x coordinate of a grid column.
func (p *Plotter) ScreenToX(col int) float64 {
	return p.w.XMin + float64(col)*(p.w.XMax-p.w.XMin)/float64(p.width-1)
}

// ScreenToY returns the logical y coordinate of a grid row.
func (p *Plotter) ScreenToY(row int) float64 {
	return p.w.YMax - float64(row)*(p.w.YMax-p.w.YMin)/float64(p.height-1)
}

func (p *Plotter) inRows(row int) bool { return row >= 0 && row < p.height }
func (p *Plotter) inCols(col int) bool { return col >= 0 && col < p.width }

// Truncates toward zero. Values that have no int representation map to -1,
// which is off every grid.
func toIndex(v float64) int {
	if math.IsNaN(v) || v <= math.MinInt32 || v >= math.MaxInt32 {
		return -1
	}
	return int(v)
}
