// SPDX-License-Identifier: MIT

package expr_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/expr"
)

const derivTol = 1e-9

// TestDerivativeClosedForms compares symbolic derivatives with hand-written
// closed forms at several points inside each function's domain.
func TestDerivativeClosedForms(t *testing.T) {
	cases := []struct {
		src  string
		want func(x float64) float64
		xs   []float64
	}{
		{"x^3 - x - 2", func(x float64) float64 { return 3*x*x - 1 }, []float64{-2, 0, 1.5}},
		{"x^2 - 2", func(x float64) float64 { return 2 * x }, []float64{-1, 0, 1}},
		{"-x^3", func(x float64) float64 { return -3 * x * x }, []float64{-1, 2}},
		{"sin(x)*x", func(x float64) float64 { return math.Cos(x)*x + math.Sin(x) }, []float64{0, 1, 2}},
		{"exp(2*x)", func(x float64) float64 { return 2 * math.Exp(2*x) }, []float64{-1, 0, 1}},
		{"math.exp(-x) - x", func(x float64) float64 { return -math.Exp(-x) - 1 }, []float64{0, 0.5}},
		{"x^x", func(x float64) float64 { return math.Pow(x, x) * (math.Log(x) + 1) }, []float64{0.5, 1, 2}},
		{"log(x)/x", func(x float64) float64 { return (1 - math.Log(x)) / (x * x) }, []float64{0.5, 2}},
		{"sqrt(x^2 + 1)", func(x float64) float64 { return x / math.Sqrt(x*x+1) }, []float64{-1, 0, 3}},
		{"atan(x)", func(x float64) float64 { return 1 / (1 + x*x) }, []float64{-1, 0, 2}},
		{"tan(x)", func(x float64) float64 { return 1 / (math.Cos(x) * math.Cos(x)) }, []float64{-0.5, 0, 1}},
		{"asin(x)", func(x float64) float64 { return 1 / math.Sqrt(1-x*x) }, []float64{-0.5, 0, 0.5}},
		{"acos(x)", func(x float64) float64 { return -1 / math.Sqrt(1-x*x) }, []float64{-0.5, 0.5}},
		{"2^x", func(x float64) float64 { return math.Pow(2, x) * math.Ln2 }, []float64{-1, 0, 3}},
		{"log(x, 2)", func(x float64) float64 { return 1 / (x * math.Ln2) }, []float64{0.5, 4}},
		{"log10(x)", func(x float64) float64 { return 1 / (x * math.Ln10) }, []float64{1, 10}},
		{"log2(x)", func(x float64) float64 { return 1 / (x * math.Ln2) }, []float64{1, 8}},
		{"cbrt(x)", func(x float64) float64 { return 1 / (3 * math.Cbrt(x) * math.Cbrt(x)) }, []float64{1, 8}},
		{"abs(x)", func(x float64) float64 { return math.Copysign(1, x) }, []float64{-2, 2}},
		{"cosh(x)", math.Sinh, []float64{-1, 0, 1}},
		{"sinh(x)", math.Cosh, []float64{-1, 0, 1}},
		{"tanh(x)", func(x float64) float64 { return 1 - math.Tanh(x)*math.Tanh(x) }, []float64{-1, 0, 1}},
		{"(x - 1)/(x + 1)", func(x float64) float64 { return 2 / ((x + 1) * (x + 1)) }, []float64{0, 1, 3}},
		{"cos(x^2)", func(x float64) float64 { return -math.Sin(x*x) * 2 * x }, []float64{0, 1, 2}},
		{"x > 1", func(float64) float64 { return 0 }, []float64{0, 2}},
		{"pi * 3", func(float64) float64 { return 0 }, []float64{0, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			d, err := expr.Differentiate(tc.src)
			require.NoError(t, err)
			for _, x := range tc.xs {
				assert.InDelta(t, tc.want(x), d(x), derivTol, "x=%g", x)
			}
		})
	}
}

// TestDerivativeForms pins the simplified rendering of common derivatives.
func TestDerivativeForms(t *testing.T) {
	cases := map[string]string{
		"x^2":         "2 * x",
		"x^3 - x - 2": "3 * x^2 - 1",
		"sin(x)":      "cos(x)",
		"cos(x)":      "-sin(x)",
		"exp(x)":      "exp(x)",
		"5":           "0",
		"x":           "1",
		"3*x + 1":     "3",
	}
	for src, want := range cases {
		assert.Equal(t, want, expr.MustParse(src).Derivative().String(), src)
	}
}

// TestDerivativeReparses checks that the derivative's source is valid input.
func TestDerivativeReparses(t *testing.T) {
	for _, src := range []string{"x^x", "log(x)/x", "tan(x) * exp(-x^2)", "asin(x/2)"} {
		d := expr.MustParse(src).Derivative()
		back, err := expr.Parse(d.Source())
		require.NoError(t, err, d.Source())
		assert.InDelta(t, d.Eval(0.7), back.Eval(0.7), evalTol, src)
	}
}

// TestSecondDerivative differentiates twice.
func TestSecondDerivative(t *testing.T) {
	d2 := expr.MustParse("x^4").Derivative().Derivative()
	assert.InDelta(t, 12*4.0, d2.Eval(2), derivTol)
}

// TestDerivativeProperties checks linearity on random affine and quadratic
// formulas: d/dx(a*x^2 + b*x + c) = 2a*x + b everywhere.
func TestDerivativeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	coef := gen.Float64Range(-50, 50)

	properties.Property("quadratic derivative is affine", prop.ForAll(
		func(a, b, c, x float64) bool {
			src := formatQuadratic(a, b, c)
			e, err := expr.Parse(src)
			if err != nil {
				return false
			}
			got := e.Derivative().Eval(x)
			want := 2*a*x + b
			return math.Abs(got-want) <= 1e-9*(1+math.Abs(want))
		},
		coef, coef, coef, gen.Float64Range(-10, 10),
	))

	properties.Property("canonical form evaluates the same", prop.ForAll(
		func(a, b, c, x float64) bool {
			e, err := expr.Parse(formatQuadratic(a, b, c))
			if err != nil {
				return false
			}
			back, err := expr.Parse(e.String())
			if err != nil {
				return false
			}
			return math.Abs(e.Eval(x)-back.Eval(x)) <= 1e-9*(1+math.Abs(e.Eval(x)))
		},
		coef, coef, coef, gen.Float64Range(-10, 10),
	))

	properties.TestingRun(t)
}
