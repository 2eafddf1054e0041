// Graphcalc is an interactive terminal calculator that plots linear,
// quadratic and exponential functions as ASCII graphs, keeps a history of the
// functions plotted in a session, and saves function definitions and sampled
// data tables to files.
package main

import (
	"os"

	"src.graphcalc.dev/pkg/buildinfo"
	"src.graphcalc.dev/pkg/calc"
	"src.graphcalc.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &calc.Program{})))
}
