package fn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"src.graphcalc.dev/pkg/tt"
)

var sampleXs = []float64{-10, -3.5, -1, -0.01, 0, 0.01, 1, 2.25, 7, 10, 1e6}

func TestLinear_Eval(t *testing.T) {
	for _, p := range [][2]float64{{2, 1}, {-0.5, 3}, {0, 0}, {100, 0}} {
		f := NewLinear(p[0], p[1])
		for _, x := range sampleXs {
			assert.Equal(t, p[0]*x+p[1], f.Eval(x), "%v at %v", f, x)
		}
	}
}

func TestQuadratic_Eval(t *testing.T) {
	for _, p := range [][3]float64{{1, 0, 0}, {-2, 3, -4}, {0.5, -1, 0}} {
		f := NewQuadratic(p[0], p[1], p[2])
		for _, x := range sampleXs {
			assert.Equal(t, p[0]*x*x+p[1]*x+p[2], f.Eval(x), "%v at %v", f, x)
		}
	}
}

func TestExponential_Eval(t *testing.T) {
	f := NewExponential(2, 0.5)
	for _, x := range sampleXs[:len(sampleXs)-1] {
		assert.Equal(t, 2*math.Exp(0.5*x), f.Eval(x), "at %v", x)
	}
}

func TestExponential_EvalExtremes(t *testing.T) {
	assert.True(t, math.IsInf(NewExponential(1, 1).Eval(1e6), 1))
	assert.True(t, math.IsInf(NewExponential(-1, 1).Eval(1e6), -1))
	assert.Equal(t, 0.0, NewExponential(1, 1).Eval(-1e6))
}

func TestEval_IsDeterministic(t *testing.T) {
	for _, f := range []Function{
		NewLinear(1.1, -2.2), NewQuadratic(0.3, 0.7, 1.9), NewExponential(3, 0.1)} {
		first := f.Eval(1.2345)
		for i := 0; i < 10; i++ {
			assert.Equal(t, math.Float64bits(first), math.Float64bits(f.Eval(1.2345)))
		}
	}
}

func TestExpr(t *testing.T) {
	tt.Test(t, tt.Fn("Expr", Function.Expr), tt.Table{
		tt.Args(NewLinear(2, 1)).Rets("y = 2x + 1"),
		tt.Args(NewLinear(2, -1)).Rets("y = 2x - 1"),
		tt.Args(NewLinear(-0.5, 0)).Rets("y = -0.5x + 0"),
		tt.Args(NewLinear(1, math.Copysign(0, -1))).Rets("y = 1x + 0"),
		tt.Args(NewQuadratic(1, 0, 0)).Rets("y = 1x^2 + 0x + 0"),
		tt.Args(NewQuadratic(-2, -3, 4.5)).Rets("y = -2x^2 - 3x + 4.5"),
		tt.Args(NewQuadratic(1, 2, -3)).Rets("y = 1x^2 + 2x - 3"),
		tt.Args(NewExponential(1, 1)).Rets("y = 1*e^(1x)"),
		tt.Args(NewExponential(-2, -0.5)).Rets("y = -2*e^(-0.5x)"),
	})
}

func TestStringAndType(t *testing.T) {
	tt.Test(t, tt.Fn("String", Function.String), tt.Table{
		tt.Args(NewLinear(3, 2)).Rets("Linear Function: y = 3x + 2"),
		tt.Args(NewQuadratic(1, -1, 0)).Rets("Quadratic Function: y = 1x^2 - 1x + 0"),
		tt.Args(NewExponential(5, 2)).Rets("Exponential Function: y = 5*e^(2x)"),
	})
	tt.Test(t, tt.Fn("Type", Function.Type), tt.Table{
		tt.Args(NewLinear(3, 2)).Rets(LinearType),
		tt.Args(NewQuadratic(1, -1, 0)).Rets(QuadraticType),
		tt.Args(NewExponential(5, 2)).Rets(ExponentialType),
	})
}

func TestParams(t *testing.T) {
	m, c := NewLinear(4, -1).Params()
	assert.Equal(t, []float64{4, -1}, []float64{m, c})
	a, b, c := NewQuadratic(1, 2, 3).Params()
	assert.Equal(t, []float64{1, 2, 3}, []float64{a, b, c})
	a, b = NewExponential(6, 7).Params()
	assert.Equal(t, []float64{6, 7}, []float64{a, b})
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []Type{LinearType, QuadraticType, ExponentialType}, Types())
	for _, typ := range Types() {
		assert.True(t, typ.Valid(), "%s", typ)
	}
	assert.False(t, Type("Cubic").Valid())
	assert.False(t, Type("").Valid())
}
