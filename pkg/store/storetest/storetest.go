// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.graphcalc.dev/pkg/fn"
	. "src.graphcalc.dev/pkg/store/storedefs"
)

// Records added by TestRecords, in order.
var records = []Record{
	RecordOf(fn.NewLinear(2, 1)),
	RecordOf(fn.NewQuadratic(1, 0, -4)),
	RecordOf(fn.NewExponential(1, 0.5)),
	RecordOf(fn.NewLinear(2, 1)),
}

// TestRecords tests the record functionality of a Store. The store must be
// empty.
func TestRecords(t *testing.T, s Store) {
	t.Helper()

	if _, err := s.Records(); !errors.Is(err, ErrNoRecords) {
		t.Errorf("Records() on empty store -> error %v, want ErrNoRecords", err)
	}

	for _, r := range records {
		if err := s.AddRecord(r); err != nil {
			t.Errorf("AddRecord(%v) -> error %v", r, err)
		}
	}

	got, err := s.Records()
	if err != nil {
		t.Fatalf("Records() -> error %v", err)
	}
	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("Records() (-want +got):\n%s", diff)
	}
}
