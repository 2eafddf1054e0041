// Package config loads the settings of graphcalc from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"src.graphcalc.dev/pkg/fn"
	"src.graphcalc.dev/pkg/plot"
)

// Config keeps all settings.
type Config struct {
	Plot    Plot               `yaml:"plot"`
	Files   Files              `yaml:"files"`
	Samples int                `yaml:"samples"`
	// Replaced per function type, not merged field by field.
	Windows map[fn.Type]Window `yaml:"windows"`
}

// Plot keeps settings of the plot grid.
type Plot struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	// Shrink the width to fit the terminal.
	FitTerminal bool `yaml:"fit-terminal"`
}

// Files keeps the paths of the files written by graphcalc.
type Files struct {
	Functions string `yaml:"functions"`
	Data      string `yaml:"data"`
	// When non-empty, saved functions go to a database at this path instead
	// of Functions.
	DB        string `yaml:"db"`
}

// Window is the YAML form of plot.Window.
type Window struct {
	XMin float64 `yaml:"x-min"`
	XMax float64 `yaml:"x-max"`
	YMin float64 `yaml:"y-min"`
	YMax float64 `yaml:"y-max"`
}

// PlotWindow converts w to a plot.Window.
func (w Window) PlotWindow() plot.Window {
	return plot.Window{XMin: w.XMin, XMax: w.XMax, YMin: w.YMin, YMax: w.YMax}
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Plot: Plot{Width: plot.DefaultWidth, Height: plot.DefaultHeight},
		Files: Files{
			Functions: "functions.txt",
			Data:      "graph_data.txt",
		},
		Samples: 100,
		Windows: map[fn.Type]Window{
			fn.LinearType:      {-10, 10, -10, 10},
			fn.QuadraticType:   {-10, 10, -20, 50},
			fn.ExponentialType: {-3, 3, -5, 30},
		},
	}
}

// Window returns the plot window for a function type.
func (c *Config) Window(t fn.Type) plot.Window {
	return c.Windows[t].PlotWindow()
}

// Decode reads YAML from r and merges it into c. Settings absent from the
// input keep their values; unknown settings are an error.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(c)
	if errors.Is(err, io.EOF) {
		// Empty document.
		return nil
	}
	return err
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Plot.Width < 2 || c.Plot.Height < 2 {
		return fmt.Errorf("plot size %dx%d: %w", c.Plot.Width, c.Plot.Height, plot.ErrGridTooSmall)
	}
	if c.Samples < 1 {
		return fmt.Errorf("samples: must be at least 1, got %d", c.Samples)
	}
	for _, t := range fn.Types() {
		w, ok := c.Windows[t]
		if !ok {
			return fmt.Errorf("windows: missing window for %s", t)
		}
		if err := w.PlotWindow().Validate(); err != nil {
			return fmt.Errorf("windows: %s: %w", t, err)
		}
	}
	for t := range c.Windows {
		if !t.Valid() {
			return fmt.Errorf("windows: unknown function type %q", t)
		}
	}
	return nil
}

// Load returns the default settings merged with the YAML file at path. If
// path is empty, the default path is used, and it is not an error for that
// file to not exist.
func Load(path string) (*Config, error) {
	c := Default()
	optional := false
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return c, nil
		}
		path, optional = p, true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	if err := c.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/graphcalc/config.yaml, falling back
// to the user's configuration directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "graphcalc", "config.yaml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "graphcalc", "config.yaml"), nil
}
