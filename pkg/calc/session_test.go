package calc

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"src.graphcalc.dev/pkg/config"
	"src.graphcalc.dev/pkg/fn"
	"src.graphcalc.dev/pkg/plot"
	"src.graphcalc.dev/pkg/store"
	"src.graphcalc.dev/pkg/testutil"
	"src.graphcalc.dev/pkg/tt"
)

func newSession(t *testing.T, input string) (*session, *strings.Builder) {
	testutil.InTempDir(t)
	p, err := plot.New(plot.DefaultWidth, plot.DefaultHeight)
	require.NoError(t, err)
	out := &strings.Builder{}
	cfg := config.Default()
	return &session{
		in:      bufio.NewReader(strings.NewReader(input)),
		out:     out,
		cfg:     cfg,
		plotter: p,
		store:   store.NewFileStore(cfg.Files.Functions),
	}, out
}

func TestSession_Pause(t *testing.T) {
	s, out := newSession(t, "6\n\n9\nanything\n0\n")
	s.pause = true
	require.NoError(t, s.run())
	assert.Equal(t, 2, strings.Count(out.String(), "\nPress Enter to continue..."))
	// No pause after exit.
	assert.True(t, strings.HasSuffix(out.String(), "Enter your choice: Thank you!\n"))
}

func TestSession_PauseConsumesOneLine(t *testing.T) {
	s, out := newSession(t, "6\n4\n")
	s.pause = true
	require.NoError(t, s.run())
	// "4" is consumed by the pause, so history is never shown.
	assert.NotContains(t, out.String(), "No history available.")
}

func TestSession_NoPauseAfterInvalidInput(t *testing.T) {
	s, out := newSession(t, "x\n0\n")
	s.pause = true
	require.NoError(t, s.run())
	assert.NotContains(t, out.String(), "Press Enter")
}

func TestSession_Window(t *testing.T) {
	s, _ := newSession(t, "")
	tt.Test(t, tt.Fn("window", s.window), tt.Table{
		tt.Args(fn.NewLinear(1, 0)).Rets(plot.Window{XMin: -10, XMax: 10, YMin: -10, YMax: 10}),
		tt.Args(fn.NewLinear(1, 7.5)).Rets(plot.Window{XMin: -10, XMax: 10, YMin: -15, YMax: 15}),
		tt.Args(fn.NewQuadratic(1, 0, 100)).Rets(plot.Window{XMin: -10, XMax: 10, YMin: -20, YMax: 50}),
		tt.Args(fn.NewExponential(1, 1)).Rets(plot.Window{XMin: -3, XMax: 3, YMin: -5, YMax: 30}),
	})

	s.override = &plot.Window{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	assert.Equal(t, *s.override, s.window(fn.NewLinear(1, 100)))
}

func TestSession_Window_AsymmetricLinear(t *testing.T) {
	s, _ := newSession(t, "")
	s.cfg.Windows[fn.LinearType] = config.Window{XMin: -10, XMax: 10, YMin: 0, YMax: 100}
	tt.Test(t, tt.Fn("window", s.window), tt.Table{
		// The intercept is already in view.
		tt.Args(fn.NewLinear(1, 0)).Rets(plot.Window{XMin: -10, XMax: 10, YMin: 0, YMax: 100}),
		tt.Args(fn.NewLinear(1, 50)).Rets(plot.Window{XMin: -10, XMax: 10, YMin: 0, YMax: 100}),
		tt.Args(fn.NewLinear(1, -60)).Rets(plot.Window{XMin: -10, XMax: 10, YMin: -120, YMax: 120}),
	})

	s.cfg.Windows[fn.LinearType] = config.Window{XMin: -10, XMax: 10, YMin: -10, YMax: 0}
	assert.Equal(t, plot.Window{XMin: -10, XMax: 10, YMin: -10, YMax: 0},
		s.window(fn.NewLinear(1, 0)))
}

func TestSession_PlotsInAsymmetricLinearWindow(t *testing.T) {
	s, out := newSession(t, "1\n1\n0\nn\n4\n0\n")
	s.cfg.Windows[fn.LinearType] = config.Window{XMin: -10, XMax: 10, YMin: -10, YMax: 0}
	require.NoError(t, s.run())
	assert.Contains(t, out.String(), "Range: X[-10 to 10], Y[-10 to 0]\n")
	assert.Contains(t, out.String(), "1. Linear Function: y = 1x + 0\n")
}

func TestSession_UnplottableFunctionIsKeptInHistory(t *testing.T) {
	// 2|c| overflows, so the stretched window is not finite.
	s, out := newSession(t, "1\n1\n1e308\n4\n0\n")
	require.NoError(t, s.run())
	assert.Contains(t, out.String(), "Cannot plot y = 1x + 1e+308: degenerate plot window\n")
	assert.NotContains(t, out.String(), "Save this function?")
	assert.Contains(t, out.String(), "1. Linear Function: y = 1x + 1e+308\n")
}

var errWrite = errors.New("cannot write")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestSession_ReturnsOutputError(t *testing.T) {
	for _, input := range []string{"4\n6\n0\n", "5\n", ""} {
		s, _ := newSession(t, input)
		s.out = failingWriter{}
		assert.ErrorIs(t, s.run(), errWrite, "input %q", input)
	}
}

func TestFitWidth(t *testing.T) {
	tt.Test(t, tt.Fn("fitWidth", fitWidth), tt.Table{
		tt.Args(61, 0).Rets(61),
		tt.Args(61, -1).Rets(61),
		tt.Args(61, 200).Rets(61),
		tt.Args(61, 40).Rets(32),
		tt.Args(61, 9).Rets(2),
	})
}
