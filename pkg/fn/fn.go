// Package fn implements the family of one-variable functions that can be
// plotted: linear, quadratic and exponential.
//
// Values of the family are immutable. Their textual form is computed once, by
// the constructor, and never changes afterwards.
package fn

import (
	"math"
	"strconv"
	"strings"
)

// Type identifies a member of the function family. Its string value is used
// both for display and as the first field of saved records.
type Type string

// Members of the function family, in menu order.
const (
	LinearType      Type = "Linear"
	QuadraticType   Type = "Quadratic"
	ExponentialType Type = "Exponential"
)

// Types returns all members of the family in menu order.
func Types() []Type {
	return []Type{LinearType, QuadraticType, ExponentialType}
}

// Valid reports whether t names a member of the family.
func (t Type) Valid() bool {
	switch t {
	case LinearType, QuadraticType, ExponentialType:
		return true
	}
	return false
}

// Function is a function of a single real variable. The set of
// implementations is closed; only this package can add to it.
type Function interface {
	// Eval evaluates the function at x. It never fails; overflow yields ±Inf.
	Eval(x float64) float64
	// Expr returns the textual form, such as "y = 2x + 1".
	Expr() string
	// Type returns the family member.
	Type() Type
	// String returns the display form, such as "Linear Function: y = 2x + 1".
	String() string

	sealed()
}

// Linear is y = mx + c.
type Linear struct {
	m, c float64
	expr string
}

// NewLinear returns the function y = mx + c.
func NewLinear(m, c float64) Linear {
	var sb strings.Builder
	sb.WriteString("y = " + formatNum(m) + "x")
	writeTerm(&sb, c, "")
	return Linear{m, c, sb.String()}
}

func (f Linear) Eval(x float64) float64 { return f.m*x + f.c }
func (f Linear) Expr() string { return f.expr }
func (Linear) Type() Type { return LinearType }
func (f Linear) String() string { return display(f) }
func (Linear) sealed() {}

// Params returns the slope and the intercept.
func (f Linear) Params() (m, c float64) { return f.m, f.c }

// Quadratic is y = ax^2 + bx + c.
type Quadratic struct {
	a, b, c float64
	expr    string
}

// NewQuadratic returns the function y = ax^2 + bx + c.
func NewQuadratic(a, b, c float64) Quadratic {
	var sb strings.Builder
	sb.WriteString("y = " + formatNum(a) + "x^2")
	writeTerm(&sb, b, "x")
	writeTerm(&sb, c, "")
	return Quadratic{a, b, c, sb.String()}
}

func (f Quadratic) Eval(x float64) float64 { return f.a*x*x + f.b*x + f.c }
func (f Quadratic) Expr() string { return f.expr }
func (Quadratic) Type() Type { return QuadraticType }
func (f Quadratic) String() string { return display(f) }
func (Quadratic) sealed() {}

// Params returns the three coefficients.
func (f Quadratic) Params() (a, b, c float64) { return f.a, f.b, f.c }

// Exponential is y = A*e^(Bx).
type Exponential struct {
	a, b float64
	expr string
}

// NewExponential returns the function y = A*e^(Bx).
func NewExponential(a, b float64) Exponential {
	expr := "y = " + formatNum(a) + "*e^(" + formatNum(b) + "x)"
	return Exponential{a, b, expr}
}

func (f Exponential) Eval(x float64) float64 { return f.a * math.Exp(f.b*x) }
func (f Exponential) Expr() string { return f.expr }
func (Exponential) Type() Type { return ExponentialType }
func (f Exponential) String() string { return display(f) }
func (Exponential) sealed() {}

// Params returns the coefficient and the exponent coefficient.
func (f Exponential) Params() (a, b float64) { return f.a, f.b }

func display(f Function) string {
	return string(f.Type()) + " Function: " + f.Expr()
}

// Writes " + v<suffix>" or " - |v|<suffix>".
func writeTerm(sb *strings.Builder, v float64, suffix string) {
	if v >= 0 || math.IsNaN(v) {
		sb.WriteString(" + ")
	} else {
		sb.WriteString(" - ")
	}
	sb.WriteString(formatNum(math.Abs(v)) + suffix)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
