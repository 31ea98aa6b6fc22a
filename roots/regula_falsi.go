// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/numlab/convergence"
)

// RegulaFalsi (false position) intersects the chord through (a, f(a)) and
// (b, f(b)) with the x-axis and keeps the sub-interval that still changes
// sign.
//
// Stop test: f(x) == 0, or |x - x_prev| < Tol where x_prev starts at a.
// The first row therefore carries a step but no relative error.
//
// Errors: ErrPreconditionFailed (with a StatusPreconditionFailed Result),
// ErrDivisionByZero when f(a) == f(b), ErrNonFinite.
// Complexity: O(MaxIter) evaluations of f.
func RegulaFalsi(f Func, a, b float64, c convergence.Criteria) (*Result, error) {
	const m = MethodRegulaFalsi
	if err := prepare(m, f, c, a, b); err != nil {
		return nil, err
	}
	fa, err := eval(m, 0, f, a, "f(a)")
	if err != nil {
		return nil, err
	}
	fb, err := eval(m, 0, f, b, "f(b)")
	if err != nil {
		return nil, err
	}
	if !opposite(fa, fb) {
		return finish(m, math.NaN(), StatusPreconditionFailed, nil),
			iterErr(m, 0, a, ErrPreconditionFailed, Value{"f(a)", fa}, Value{"f(b)", fb})
	}

	// relative error only once a previous estimate exists
	rel := convergence.NewTracker(c)
	prev := a
	trace := newTrace(c)
	var (
		x, fx, step float64
		i           int
	)
	for i = 1; i <= c.MaxIter; i++ {
		if fb == fa {
			return nil, iterErr(m, i, a, ErrDivisionByZero, Value{"f(a)", fa}, Value{"f(b)", fb})
		}
		x = (a*fb - b*fa) / (fb - fa)
		if !isFinite(x) {
			return nil, iterErr(m, i, a, ErrNonFinite, Value{"x", x})
		}
		if fx, err = eval(m, i, f, x, "f(x)"); err != nil {
			return nil, err
		}
		step = math.Abs(x - prev)
		ms := rel.Observe(x)
		trace = append(trace, Step{
			Iteration: i,
			X:         x,
			FX:        fx,
			Next:      x,
			Bracket:   &Bracket{A: a, B: b, FA: fa, FB: fb},
			Error:     step,
			RelErrPct: ms.RelPct,
		})

		if fx == 0 || step < c.Tol {
			return finish(m, x, StatusConverged, trace), nil
		}

		if opposite(fa, fx) {
			b, fb = x, fx
		} else {
			a, fa = x, fx
		}
		prev = x
	}

	return finish(m, x, StatusBudgetExhausted, trace), nil
}
