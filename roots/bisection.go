// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/numlab/convergence"
)

// Bisection halves the bracket [a, b] until |f(c)| < Tol or |b - a| < Tol.
//
// Implementation:
//   - Stage 1: validate criteria and inputs; require a strict sign change.
//   - Stage 2: c = (a+b)/2; record the row; stop test; keep the half whose
//     endpoints still change sign.
//
// The bracket never loses its sign change: when f(c) is not a root its sign
// matches exactly one endpoint, and that endpoint is replaced.
//
// Returns a Result with StatusPreconditionFailed together with an error
// wrapping ErrPreconditionFailed when f(a)·f(b) >= 0.
// Complexity: O(MaxIter) evaluations of f.
func Bisection(f Func, a, b float64, c convergence.Criteria) (*Result, error) {
	const m = MethodBisection
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

	tr := convergence.NewTracker(c)
	trace := newTrace(c)
	var (
		mid, fm float64
		width   float64
		i       int
	)
	for i = 1; i <= c.MaxIter; i++ {
		mid = (a + b) / 2
		if fm, err = eval(m, i, f, mid, "f(c)"); err != nil {
			return nil, err
		}
		width = math.Abs(b - a)
		ms := tr.Observe(mid)
		trace = append(trace, Step{
			Iteration: i,
			X:         mid,
			FX:        fm,
			Next:      mid,
			Bracket:   &Bracket{A: a, B: b, FA: fa, FB: fb},
			Error:     width,
			RelErrPct: ms.RelPct,
		})

		if math.Abs(fm) < c.Tol || width < c.Tol {
			return finish(m, mid, StatusConverged, trace), nil
		}

		if opposite(fa, fm) {
			b, fb = mid, fm
		} else {
			a, fa = mid, fm
		}
	}

	return finish(m, mid, StatusBudgetExhausted, trace), nil
}
