// Package progtest provides a framework for testing subprograms.
//
// A test is made up of cases, each describing the command-line arguments and
// stdin of one invocation of the program, and the expected exit status and
// output:
//
//	Test(t, someProgram,
//		ThatGraphcalc("-version").WritesStdout("0.3.0\n"),
//		ThatGraphcalc().WithStdin("0\n").WritesStdoutContaining("Goodbye!"),
//	)
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"src.graphcalc.dev/pkg/must"
	"src.graphcalc.dev/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	out, err   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("%q", o.content)
}

// ThatGraphcalc returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "graphcalc -bad-flag" exits with 2
// reads like:
//
//	ThatGraphcalc("-bad-flag").ExitsWith(2)
func ThatGraphcalc(args ...string) Case {
	return Case{args: append([]string{"graphcalc"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	ThatGraphcalc("-log", "log.txt").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(t, p, c.args, c.stdin)
			if r.exitStatus != c.want.exitStatus {
				t.Errorf("got exit status %v, want %v", r.exitStatus, c.want.exitStatus)
			}
			if !matchOutput(r.out.content, c.want.out) {
				t.Errorf("got stdout %v, want %v", r.out, c.want.out)
			}
			if !matchOutput(r.err.content, c.want.err) {
				t.Errorf("got stderr %v, want %v", r.err, c.want.err)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin. It returns the
// Program's exit status and its stdout and stderr contents.
func Run(t *testing.T, p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	t.Helper()
	r := run(t, p, append([]string{"graphcalc"}, args...), stdin)
	return r.exitStatus, r.out.content, r.err.content
}

func run(t *testing.T, p prog.Program, args []string, stdin string) result {
	t.Helper()
	// Stdin is a regular file rather than a pipe, so that programs reading it
	// see EOF once the scripted input runs out.
	in := must.OK1(os.CreateTemp(t.TempDir(), "stdin"))
	defer in.Close()
	must.OK1(in.WriteString(stdin))
	must.OK1(in.Seek(0, io.SeekStart))

	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Drain stdout and stderr concurrently, so that a program writing more
	// than a pipe can buffer doesn't block.
	outCh := make(chan string, 1)
	errCh := make(chan string, 1)
	go func() { outCh <- string(must.ReadAllAndClose(r1)) }()
	go func() { errCh <- string(must.ReadAllAndClose(r2)) }()

	exit := prog.Run([3]*os.File{in, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	return result{exit, output{content: <-outCh}, output{content: <-errCh}}
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
