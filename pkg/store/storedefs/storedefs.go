// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementations.
package storedefs

import (
	"errors"
	"fmt"
	"strings"

	"src.graphcalc.dev/pkg/fn"
)

// ErrNoRecords is returned by Store.Records when nothing has been saved yet.
var ErrNoRecords = errors.New("no saved functions")

// Separator separates the fields of a saved record.
const Separator = "|"

// Record is a saved function definition.
type Record struct {
	Type fn.Type
	Expr string
}

// RecordOf returns the Record for a function.
func RecordOf(f fn.Function) Record {
	return Record{f.Type(), f.Expr()}
}

// String returns the record as a line of the append log, without the
// newline. A record without a Type is an unparsed line and is returned as is.
func (r Record) String() string {
	if r.Type == "" {
		return r.Expr
	}
	return string(r.Type) + Separator + r.Expr
}

// ParseRecord parses a line of the append log.
func ParseRecord(line string) (Record, error) {
	typ, expr, ok := strings.Cut(line, Separator)
	if !ok {
		return Record{}, fmt.Errorf("malformed record %q: no %q", line, Separator)
	}
	if !fn.Type(typ).Valid() {
		return Record{}, fmt.Errorf("malformed record %q: unknown type %q", line, typ)
	}
	return Record{fn.Type(typ), expr}, nil
}

// Store is an interface satisfied by the storage backends for saved function
// records.
type Store interface {
	// AddRecord saves a record after all existing ones.
	AddRecord(r Record) error
	// Records returns all saved records in the order they were added.
	Records() ([]Record, error)
	// Name describes where the records are kept.
	Name() string
	Close() error
}
