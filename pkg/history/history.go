// Package history keeps the functions defined during a session, most recent
// first.
package history

import (
	"fmt"
	"io"
	"strings"

	"src.graphcalc.dev/pkg/fn"
)

// History is an ordered collection of functions. The zero value is an empty
// History ready to use.
type History struct {
	// Oldest first; read back to front.
	fns []fn.Function
}

// Add puts f at the front of the history.
func (h *History) Add(f fn.Function) {
	h.fns = append(h.fns, f)
}

// Len returns the number of functions added since the last Clear.
func (h *History) Len() int { return len(h.fns) }

// Entries returns the functions, most recent first.
func (h *History) Entries() []fn.Function {
	entries := make([]fn.Function, len(h.fns))
	for i, f := range h.fns {
		entries[len(h.fns)-1-i] = f
	}
	return entries
}

// Clear removes all functions. Clearing an empty History does nothing.
func (h *History) Clear() {
	clear(h.fns)
	h.fns = nil
}

// Show writes the functions to w, numbered from 1, most recent first.
func (h *History) Show(w io.Writer) error {
	if len(h.fns) == 0 {
		_, err := io.WriteString(w, "No history available.\n")
		return err
	}
	var sb strings.Builder
	sb.WriteString("\n========== FUNCTION HISTORY ==========\n")
	for i, f := range h.Entries() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, f)
	}
	sb.WriteString("======================================\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
