package plot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"src.graphcalc.dev/pkg/fn"
)

// NumXLabels is the number of tick labels under the x axis.
const NumXLabels = 11

// Plot rasterizes f and writes it to w, framed by a header with the function
// and the window, y labels on the left, and a ruler with x tick labels below.
func (p *Plotter) Plot(w io.Writer, f fn.Function) error {
	c := p.Rasterize(f)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", f)
	fmt.Fprintf(&sb, "Range: X[%s to %s], Y[%s to %s]\n\n",
		num(p.w.XMin), num(p.w.XMax), num(p.w.YMin), num(p.w.YMax))

	for i := 0; i < p.height; i++ {
		fmt.Fprintf(&sb, "%6.1f |%s\n", p.ScreenToY(i), c.Row(i))
	}

	sb.WriteString("       +" + strings.Repeat("-", p.width-1) + "\n")
	sb.WriteString("        " + p.xLabels() + "\n")
	sb.WriteString("        " + strings.Repeat(" ", max(p.width/2-5, 0)) + "X-axis\n\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// The first label is flush left; the rest are right-aligned in fields of
// (width-1)/(NumXLabels-1) columns.
func (p *Plotter) xLabels() string {
	var sb strings.Builder
	spacing := (p.width - 1) / (NumXLabels - 1)
	for i := 0; i < NumXLabels; i++ {
		x := p.w.XMin + float64(i)*(p.w.XMax-p.w.XMin)/(NumXLabels-1)
		if i == 0 {
			fmt.Fprintf(&sb, "%.0f", x)
		} else {
			fmt.Fprintf(&sb, "%*.0f", spacing, x)
		}
	}
	return sb.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
