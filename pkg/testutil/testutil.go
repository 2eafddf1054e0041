// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"path/filepath"

	"src.graphcalc.dev/pkg/must"
)

// Cleanuper wraps the Cleanup method. It is a subset of testing.TB.
type Cleanuper interface {
	Cleanup(func())
}

// TempDir creates a temporary directory that is removed when the test
// finishes. Symlinks in the returned path are resolved.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "graphcalc-test"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// Chdir changes into dir and changes back when the test finishes.
func Chdir(c Cleanuper, dir string) {
	old := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(old)) })
}

// InTempDir combines TempDir and Chdir, and returns the directory.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Setenv sets an environment variable for the duration of a test, and returns
// the value.
func Setenv(c Cleanuper, name, value string) string {
	old, existed := os.LookupEnv(name)
	if existed {
		c.Cleanup(func() { os.Setenv(name, old) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
	os.Setenv(name, value)
	return value
}
