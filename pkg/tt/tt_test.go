package tt

import (
	"fmt"
	"strings"
	"testing"
)

// recorder implements T and records the error messages.
type recorder []string

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	*r = append(*r, fmt.Sprintf(format, args...))
}

func add(x, y int) int { return x + y }

func divmod(x, y int) (int, int) { return x / y, x % y }

func TestTest_Pass(t *testing.T) {
	var r recorder
	Test(&r, Fn("divmod", divmod), Table{
		Args(7, 2).Rets(3, 1),
		Args(9, 3).Rets(3, Any),
	})
	if len(r) > 0 {
		t.Errorf("got errors %v, want none", r)
	}
}

func TestTest_FailDefaultFormat(t *testing.T) {
	var r recorder
	Test(&r, Fn("add", add), Table{Args(1, 10).Rets(12)})
	assertOneError(t, r, "add(1, 10) returns (-want +got):\n")
}

func TestTest_FailCustomFormat(t *testing.T) {
	var r recorder
	Test(&r,
		Fn("divmod", divmod).ArgsFmt("x = %d, y = %d").RetsFmt("(q = %d, r = %d)"),
		Table{Args(7, 2).Rets(3, 0)})
	assertOneError(t, r, "divmod(x = 7, y = 2) returns (q = 3, r = 1), want (q = 3, r = 0)")
}

func TestTest_MultipleRets(t *testing.T) {
	var r recorder
	Test(&r, Fn("add", add), Table{Args(1, 1).Rets(2).Rets(3)})
	assertOneError(t, r, "add(1, 1) returns")
}

func assertOneError(t *testing.T, r recorder, wantPrefix string) {
	t.Helper()
	switch {
	case len(r) != 1:
		t.Errorf("got %d errors, want 1: %v", len(r), r)
	case !strings.HasPrefix(r[0], wantPrefix):
		t.Errorf("got error %q, want prefix %q", r[0], wantPrefix)
	}
}
