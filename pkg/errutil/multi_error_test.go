package errutil

import (
	"errors"
	"testing"

	"src.graphcalc.dev/pkg/tt"
)

var (
	err1 = errors.New("error 1")
	err2 = errors.New("error 2")
	err3 = errors.New("error 3")
)

func TestMulti(t *testing.T) {
	tt.Test(t, tt.Fn("Multi", Multi), tt.Table{
		tt.Args().Rets(nil),
		tt.Args(nil, nil).Rets(nil),
		tt.Args(err1).Rets(err1),
		tt.Args(nil, err2).Rets(err2),
	})

	err := Multi(err1, nil, err2)
	if got, want := err.Error(), "multiple errors: error 1; error 2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	flat := Multi(Multi(err1, err2), err3)
	if got, want := flat.Error(), "multiple errors: error 1; error 2; error 3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, e := range []error{err1, err2, err3} {
		if !errors.Is(flat, e) {
			t.Errorf("errors.Is(%v, %v) = false", flat, e)
		}
	}
}
