// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/numlab/convergence"
)

// Method names a root-finding algorithm.
type Method string

// Supported methods.
const (
	MethodBisection   Method = "bisection"
	MethodRegulaFalsi Method = "regula-falsi"
	MethodNewton      Method = "newton"
	MethodSecant      Method = "secant"
)

// Status is the terminal state of a run.
type Status string

// Terminal states.
const (
	StatusConverged          Status = "converged"
	StatusBudgetExhausted    Status = "budget_exhausted"
	StatusPreconditionFailed Status = "precondition_failed"
)

// Bracket is the interval a bracketing method worked on during one step,
// with the function values at its endpoints.
type Bracket struct {
	A  float64 `json:"a"`
	B  float64 `json:"b"`
	FA float64 `json:"fa"`
	FB float64 `json:"fb"`
}

// Step is one trace row.
//
// X is the point evaluated in this iteration and FX = f(X). Next is the
// estimate this iteration produced: X itself for the bracketing methods,
// the updated iterate for Newton and the secant. Error is the absolute
// quantity compared against Tol (the bracket width for bisection, the step
// length otherwise). RelErrPct is nil when no previous estimate exists.
type Step struct {
	Iteration int      `json:"iteration"`
	X         float64  `json:"x"`
	FX        float64  `json:"fx"`
	Next      float64  `json:"next"`
	DFX       *float64 `json:"dfx,omitempty"`
	Bracket   *Bracket `json:"bracket,omitempty"`
	Error     float64  `json:"error"`
	RelErrPct *float64 `json:"rel_err_pct"`
}

// Result is the outcome of a run that did not fail fatally.
type Result struct {
	Method     Method  `json:"method"`
	Root       float64 `json:"root"`
	Iterations int     `json:"iterations"`
	Status     Status  `json:"status"`
	Trace      []Step  `json:"trace"`
}

// Func is a real function of one variable.
type Func = func(x float64) float64

// ---------- shared helpers ----------

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// opposite reports a strict sign change: neither value is zero and the signs
// differ. The product is never formed, so huge values cannot overflow it.
func opposite(fa, fb float64) bool {
	if fa == 0 || fb == 0 {
		return false
	}

	return (fa < 0) != (fb < 0)
}

// eval computes f(x) and rejects non-finite results.
func eval(m Method, it int, f Func, x float64, name string) (float64, error) {
	v := f(x)
	if !isFinite(v) {
		return 0, iterErr(m, it, x, ErrNonFinite, Value{Name: name, V: v})
	}

	return v, nil
}

// prepare validates the criteria, the function and the start points.
func prepare(m Method, f Func, c convergence.Criteria, points ...float64) error {
	if f == nil {
		return iterErr(m, 0, math.NaN(), ErrNilFunc)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	var i int
	for i = 0; i < len(points); i++ {
		if !isFinite(points[i]) {
			return iterErr(m, 0, points[i], ErrNonFinite)
		}
	}

	return nil
}

// finish assembles a Result from the trace.
func finish(m Method, root float64, st Status, trace []Step) *Result {
	return &Result{Method: m, Root: root, Iterations: len(trace), Status: st, Trace: trace}
}

func ptr(v float64) *float64 { return &v }

// newTrace preallocates a trace without trusting a huge MaxIter.
func newTrace(c convergence.Criteria) []Step {
	const maxPrealloc = 64

	return make([]Step, 0, min(c.MaxIter, maxPrealloc))
}
