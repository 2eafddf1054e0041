// Package tt supports table-driven tests with little boilerplate.
//
// A test is a function under test plus a Table of cases:
//
//	tt.Test(t, tt.Fn("XToScreen", p.XToScreen), tt.Table{
//		tt.Args(-10.0).Rets(0),
//		tt.Args(10.0).Rets(60),
//	})
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table is a list of test cases.
type Table []*Case

// Case is one test case, built with Args and optionally Rets.
type Case struct {
	args []any
	rets [][]any
}

// Args starts a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets adds a set of expected return values and returns the receiver. A value
// that implements Matcher is matched by calling its Match method; other values
// are compared with cmp.Equal.
func (c *Case) Rets(rets ...any) *Case {
	c.rets = append(c.rets, rets)
	return c
}

// FnToTest describes a function under test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn makes a FnToTest from a name used in error messages and a function value.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the format for arguments in error messages.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the format for return values in error messages.
func (fn *FnToTest) RetsFmt(s string) *FnToTest {
	fn.retsFmt = s
	return fn
}

// T is the subset of testing.TB used by Test.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test calls fn with the arguments of every case and checks the results.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		for _, want := range test.rets {
			if match(want, rets) {
				continue
			}
			args := format(fn.argsFmt, test.args)
			if fn.retsFmt != "" {
				t.Errorf("%s(%s) returns %s, want %s", fn.name, args,
					fmt.Sprintf(fn.retsFmt, rets...), fmt.Sprintf(fn.retsFmt, want...))
			} else {
				t.Errorf("%s(%s) returns (-want +got):\n%s", fn.name, args,
					cmp.Diff(want, rets, cmpOpts))
			}
		}
	}
}

// Matcher is implemented by expected values that need custom matching.
type Matcher interface {
	Match(got RetValue) bool
}

// RetValue is the type of the argument to Matcher.Match. It exists so that
// Matcher cannot be implemented by accident.
type RetValue any

// Any matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

func match(want, got []any) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if m, ok := want[i].(Matcher); ok {
			if !m.Match(got[i]) {
				return false
			}
		} else if !cmp.Equal(want[i], got[i], cmpOpts) {
			return false
		}
	}
	return true
}

// Return values are often structs with unexported fields.
var cmpOpts = cmp.Exporter(func(reflect.Type) bool { return true })

func format(f string, args []any) string {
	if f != "" {
		return fmt.Sprintf(f, args...)
	}
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(argType(fnType, i))
		} else {
			in[i] = reflect.ValueOf(arg)
		}
	}
	out := fnValue.Call(in)
	rets := make([]any, len(out))
	for i, v := range out {
		rets[i] = v.Interface()
	}
	return rets
}

func argType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}
