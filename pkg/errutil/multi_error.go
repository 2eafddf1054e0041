// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines multiple errors into one. Nil errors are dropped; if nothing
// is left Multi returns nil, and if one error is left it is returned as is.
// Errors returned by Multi are flattened into the result.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			nonNil = append(nonNil, err...)
		default:
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	}
	return multiError(nonNil)
}

type multiError []error

func (me multiError) Error() string {
	msgs := make([]string, len(me))
	for i, err := range me {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Unwrap makes errors.Is and errors.As look into every combined error.
func (me multiError) Unwrap() []error { return me }
