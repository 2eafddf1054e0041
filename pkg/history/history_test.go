package history

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/theothertomelliott/acyclic"

	"src.graphcalc.dev/pkg/fn"
)

var (
	f1 = fn.NewLinear(2, 1)
	f2 = fn.NewQuadratic(1, 0, -4)
	f3 = fn.NewExponential(1, 0.5)
)

var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

func TestHistory_NewestFirst(t *testing.T) {
	var h History
	h.Add(f1)
	h.Add(f2)
	h.Add(f3)

	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	want := []fn.Function{f3, f2, f1}
	if diff := cmp.Diff(want, h.Entries(), allowUnexported); diff != "" {
		t.Errorf("Entries() (-want +got):\n%s", diff)
	}
	if err := acyclic.Check(h.Entries()); err != nil {
		t.Errorf("Entries() contains a cycle: %v", err)
	}
}

func TestHistory_EntriesIsACopy(t *testing.T) {
	var h History
	h.Add(f1)
	entries := h.Entries()
	entries[0] = f2
	if got := h.Entries()[0]; got != fn.Function(f1) {
		t.Errorf("Entries()[0] = %v after modifying a copy, want %v", got, f1)
	}
}

func TestHistory_Show(t *testing.T) {
	var h History
	h.Add(f1)
	h.Add(f2)
	h.Add(f3)

	var sb strings.Builder
	if err := h.Show(&sb); err != nil {
		t.Fatal(err)
	}
	want := `
========== FUNCTION HISTORY ==========
1. Exponential Function: y = 1*e^(0.5x)
2. Quadratic Function: y = 1x^2 + 0x - 4
3. Linear Function: y = 2x + 1
======================================
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Show() (-want +got):\n%s", diff)
	}
}

func TestHistory_ShowEmpty(t *testing.T) {
	var h History
	var sb strings.Builder
	if err := h.Show(&sb); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), "No history available.\n"; got != want {
		t.Errorf("Show() wrote %q, want %q", got, want)
	}
}

func TestHistory_Clear(t *testing.T) {
	var h History
	h.Add(f1)
	h.Add(f2)
	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", h.Len())
	}
	if len(h.Entries()) != 0 {
		t.Errorf("Entries() = %v after Clear, want empty", h.Entries())
	}
	var sb strings.Builder
	h.Show(&sb)
	if !strings.Contains(sb.String(), "No history available.") {
		t.Errorf("Show() after Clear wrote %q", sb.String())
	}

	// Idempotent.
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %d after second Clear, want 0", h.Len())
	}

	h.Add(f3)
	if h.Len() != 1 {
		t.Errorf("Len() = %d after Clear and Add, want 1", h.Len())
	}
}
