// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/numlab/convergence"
)

// Newton runs Newton-Raphson from x0 using the derivative df.
//
// Each iteration evaluates f and df at the current point; df == 0 is fatal
// (ErrSingularDerivative) and no fallback is attempted. Stop test:
// |x1 - x0| < Tol. Root is the last update x1.
// Complexity: O(MaxIter) evaluations of f and df.
func Newton(f, df Func, x0 float64, c convergence.Criteria) (*Result, error) {
	const m = MethodNewton
	if err := prepare(m, f, c, x0); err != nil {
		return nil, err
	}
	if df == nil {
		return nil, iterErr(m, 0, x0, ErrNilFunc)
	}

	tr := convergence.NewTracker(c)
	tr.Seed(x0)
	trace := newTrace(c)
	var (
		fx, dfx, x1 float64
		err         error
		i           int
	)
	for i = 1; i <= c.MaxIter; i++ {
		if fx, err = eval(m, i, f, x0, "f(x)"); err != nil {
			return nil, err
		}
		if dfx, err = eval(m, i, df, x0, "f'(x)"); err != nil {
			return nil, err
		}
		if dfx == 0 {
			return nil, iterErr(m, i, x0, ErrSingularDerivative, Value{"f(x)", fx}, Value{"f'(x)", dfx})
		}
		x1 = x0 - fx/dfx
		if !isFinite(x1) {
			return nil, iterErr(m, i, x0, ErrNonFinite, Value{"f(x)", fx}, Value{"f'(x)", dfx})
		}
		ms := tr.Observe(x1)
		trace = append(trace, Step{
			Iteration: i,
			X:         x0,
			FX:        fx,
			Next:      x1,
			DFX:       ptr(dfx),
			Error:     math.Abs(x1 - x0),
			RelErrPct: ms.RelPct,
		})
		if ms.Converged {
			return finish(m, x1, StatusConverged, trace), nil
		}
		x0 = x1
	}

	return finish(m, x1, StatusBudgetExhausted, trace), nil
}
