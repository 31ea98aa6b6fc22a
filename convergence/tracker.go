// SPDX-License-Identifier: MIT

package convergence

import "math"

// Measure is what a Tracker reports for one observation.
type Measure struct {
	// Abs is |x - previous|; +Inf when there is no previous value.
	Abs float64

	// RelPct is the relative-percent error, nil when not applicable.
	RelPct *float64

	// Converged is Abs < Tol.
	Converged bool
}

// Tracker follows a scalar iterate. Not safe for concurrent use; every
// solver run owns its own.
type Tracker struct {
	tol    float64
	prev   float64
	seeded bool
}

// NewTracker returns an unseeded tracker using c.Tol.
func NewTracker(c Criteria) *Tracker { return &Tracker{tol: c.Tol} }

// Seed sets the previous value without producing a measure (Newton's x0,
// the secant's x1, regula-falsi's left endpoint).
func (t *Tracker) Seed(x float64) {
	t.prev = x
	t.seeded = true
}

// Observe records x and measures its distance from the previous value.
func (t *Tracker) Observe(x float64) Measure {
	if !t.seeded {
		t.Seed(x)

		return Measure{Abs: math.Inf(1)}
	}

	rel := RelativePercent(t.prev, x)
	m := Measure{Abs: math.Abs(x - t.prev), RelPct: &rel}
	m.Converged = m.Abs < t.tol
	t.prev = x

	return m
}

// VecMeasure is what a VecTracker reports for one sweep.
type VecMeasure struct {
	// MaxAbs is max_i |x[i] - previous[i]|.
	MaxAbs float64

	// RelPct holds the per-component relative-percent errors.
	RelPct []float64

	// Converged is MaxAbs < Tol.
	Converged bool
}

// VecTracker follows a vector iterate, always seeded with the initial guess.
type VecTracker struct {
	tol  float64
	prev []float64
}

// NewVecTracker copies x0 as the previous iterate.
func NewVecTracker(c Criteria, x0 []float64) *VecTracker {
	prev := make([]float64, len(x0))
	copy(prev, x0)

	return &VecTracker{tol: c.Tol, prev: prev}
}

// Observe records a copy of x and measures the sweep.
// Panics if len(x) differs from the seed length.
func (t *VecTracker) Observe(x []float64) VecMeasure {
	m := VecMeasure{
		MaxAbs: MaxAbsDiff(t.prev, x),
		RelPct: RelativePercentVec(t.prev, x),
	}
	m.Converged = m.MaxAbs < t.tol
	copy(t.prev, x)

	return m
}
