// Package store implements the storage backends for saved functions, and
// writes sampled data tables.
package store

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"src.graphcalc.dev/pkg/logutil"
	. "src.graphcalc.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// ShowRecords writes all records in s to w, numbered from 1. If there are no
// records or they cannot be read, it writes a notice instead; read errors are
// logged, not returned. The returned error is from writing to w.
func ShowRecords(w io.Writer, s Store) error {
	records, err := s.Records()
	if err != nil {
		if !errors.Is(err, ErrNoRecords) {
			logger.Printf("reading records from %s: %v", s.Name(), err)
		}
		_, err := io.WriteString(w, "No saved functions found.\n")
		return err
	}
	var sb strings.Builder
	sb.WriteString("\n========== SAVED FUNCTIONS ==========\n")
	for i, r := range records {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, r)
	}
	sb.WriteString("====================================\n")
	_, err = io.WriteString(w, sb.String())
	return err
}
