package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"src.graphcalc.dev/pkg/fn"
)

// ErrBadSampleCount is returned by WriteSampleTable for a sample count below 1.
var ErrBadSampleCount = errors.New("sample count must be at least 1")

// WriteSampleTable samples f at samples+1 evenly spaced points from xmin to
// xmax, and writes them as a table to the named file, replacing its content.
func WriteSampleTable(path string, f fn.Function, xmin, xmax float64, samples int) error {
	if samples < 1 {
		return ErrBadSampleCount
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "Function: %s\nX\t\tY\n=============================\n", f.Expr())
	step := (xmax - xmin) / float64(samples)
	for i := 0; i <= samples; i++ {
		x := xmin + float64(i)*step
		fmt.Fprintf(w, "%.4f\t\t%.4f\n", x, f.Eval(x))
	}
	err = w.Flush()
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}
