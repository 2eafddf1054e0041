// Package calc implements the interactive graphing calculator, the default
// subprogram of graphcalc.
package calc

import (
	"bufio"
	"fmt"
	"os"

	"src.graphcalc.dev/pkg/config"
	"src.graphcalc.dev/pkg/errutil"
	"src.graphcalc.dev/pkg/logutil"
	"src.graphcalc.dev/pkg/plot"
	"src.graphcalc.dev/pkg/prog"
	"src.graphcalc.dev/pkg/store"
	. "src.graphcalc.dev/pkg/store/storedefs"
	"src.graphcalc.dev/pkg/sys"
)

var logger = logutil.GetLogger("[calc] ")

// Width of the y labels in front of each plot row, "%6.1f |".
const labelWidth = 8

// Program is the calculator subprogram. It accepts any flags, so it should be
// the last subprogram in a prog.Composite.
type Program struct{}

// Run runs an interactive session, reading from fds[0] and writing to fds[1].
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	if cfg.Plot.FitTerminal && sys.IsATTY(fds[1]) {
		_, cols := sys.WinSize(fds[1])
		cfg.Plot.Width = fitWidth(cfg.Plot.Width, cols)
		logger.Printf("fitted plot width to %d for %d columns", cfg.Plot.Width, cols)
	}
	p, err := plot.New(cfg.Plot.Width, cfg.Plot.Height)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	s := &session{
		in:      bufio.NewReader(fds[0]),
		out:     fds[1],
		pause:   sys.IsATTY(fds[0]),
		cfg:     cfg,
		plotter: p,
		store:   st,
	}
	err = s.run()
	return errutil.Multi(err, st.Close())
}

// Returns the configuration from the file chosen by the flags, with the
// flags applied on top.
func loadConfig(f *prog.Flags) (*config.Config, error) {
	cfg := config.Default()
	if !f.NoConfig {
		var err error
		cfg, err = config.Load(f.Config)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if f.Width > 0 {
		cfg.Plot.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Plot.Height = f.Height
	}
	if f.Functions != "" {
		cfg.Files.Functions = f.Functions
	}
	if f.Data != "" {
		cfg.Files.Data = f.Data
	}
	if f.DB != "" {
		cfg.Files.DB = f.DB
	}
	if err := cfg.Validate(); err != nil {
		return nil, prog.BadUsage(err.Error())
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (Store, error) {
	if cfg.Files.DB != "" {
		st, err := store.NewDBStore(cfg.Files.DB)
		if err != nil {
			return nil, fmt.Errorf("open database %s: %w", cfg.Files.DB, err)
		}
		return st, nil
	}
	return store.NewFileStore(cfg.Files.Functions), nil
}

// Returns the plot width that fits in a terminal with the given number of
// columns, never wider than width and never narrower than 2. A non-positive
// column count means the terminal size is unknown.
func fitWidth(width, cols int) int {
	if cols <= 0 {
		return width
	}
	return max(min(width, cols-labelWidth), 2)
}
