// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/numlab/convergence"
)

// Secant iterates x2 = x1 - f(x1)(x1 - x0)/(f(x1) - f(x0)) from two start
// points. No derivative is evaluated. f(x1) == f(x0) is fatal
// (ErrDivisionByZero). Stop test: |x2 - x1| < Tol.
// Complexity: O(MaxIter) evaluations of f (one per iteration after the first).
func Secant(f Func, x0, x1 float64, c convergence.Criteria) (*Result, error) {
	const m = MethodSecant
	if err := prepare(m, f, c, x0, x1); err != nil {
		return nil, err
	}
	f0, err := eval(m, 0, f, x0, "f(x0)")
	if err != nil {
		return nil, err
	}

	tr := convergence.NewTracker(c)
	tr.Seed(x1)
	trace := newTrace(c)
	var (
		f1, x2 float64
		i      int
	)
	for i = 1; i <= c.MaxIter; i++ {
		if f1, err = eval(m, i, f, x1, "f(x1)"); err != nil {
			return nil, err
		}
		if f1 == f0 {
			return nil, iterErr(m, i, x1, ErrDivisionByZero, Value{"f(x0)", f0}, Value{"f(x1)", f1})
		}
		x2 = x1 - f1*(x1-x0)/(f1-f0)
		if !isFinite(x2) {
			return nil, iterErr(m, i, x1, ErrNonFinite, Value{"f(x0)", f0}, Value{"f(x1)", f1})
		}
		ms := tr.Observe(x2)
		trace = append(trace, Step{
			Iteration: i,
			X:         x1,
			FX:        f1,
			Next:      x2,
			Error:     math.Abs(x2 - x1),
			RelErrPct: ms.RelPct,
		})
		if ms.Converged {
			return finish(m, x2, StatusConverged, trace), nil
		}
		x0, f0, x1 = x1, f1, x2
	}

	return finish(m, x2, StatusBudgetExhausted, trace), nil
}
