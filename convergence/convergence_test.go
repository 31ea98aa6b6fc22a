// SPDX-License-Identifier: MIT

package convergence_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/convergence"
)

func TestRelativePercent(t *testing.T) {
	assert.InDelta(t, 50.0, convergence.RelativePercent(1, 2), 1e-12)
	assert.InDelta(t, 100.0, convergence.RelativePercent(-1, -0.5), 1e-12)
	assert.InDelta(t, 0.0, convergence.RelativePercent(3, 3), 0)

	// next == 0 falls back to the absolute step scaled to percent
	assert.InDelta(t, 25.0, convergence.RelativePercent(0.25, 0), 1e-12)
}

func TestRelativePercentVec(t *testing.T) {
	got := convergence.RelativePercentVec([]float64{1, 0.5, 2}, []float64{2, 0, 2})
	want := []float64{50, 50, 0}
	require.Empty(t, cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)))

	assert.Panics(t, func() { convergence.RelativePercentVec([]float64{1}, nil) })
}

func TestMaxAbsDiff(t *testing.T) {
	assert.InDelta(t, 3.0, convergence.MaxAbsDiff([]float64{1, 5, -1}, []float64{2, 2, -1}), 1e-15)
	assert.Equal(t, 0.0, convergence.MaxAbsDiff(nil, nil))
	assert.Panics(t, func() { convergence.MaxAbsDiff([]float64{1}, []float64{1, 2}) })
}

func TestCriteriaValidate(t *testing.T) {
	cases := []struct {
		name string
		c    convergence.Criteria
		want error
	}{
		{"ok", convergence.Criteria{Tol: 1e-6, MaxIter: 10}, nil},
		{"zero tol", convergence.Criteria{Tol: 0, MaxIter: 10}, convergence.ErrNonPositiveTolerance},
		{"negative tol", convergence.Criteria{Tol: -1, MaxIter: 10}, convergence.ErrNonPositiveTolerance},
		{"nan tol", convergence.Criteria{Tol: math.NaN(), MaxIter: 10}, convergence.ErrNonFiniteTolerance},
		{"inf tol", convergence.Criteria{Tol: math.Inf(1), MaxIter: 10}, convergence.ErrNonFiniteTolerance},
		{"zero budget", convergence.Criteria{Tol: 1, MaxIter: 0}, convergence.ErrNonPositiveBudget},
		{"negative budget", convergence.Criteria{Tol: 1, MaxIter: -3}, convergence.ErrNonPositiveBudget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.want == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCriteriaDefaults(t *testing.T) {
	assert.Equal(t, convergence.Default(), convergence.Criteria{}.WithDefaults())

	kept := convergence.Criteria{Tol: -1, MaxIter: 7}.WithDefaults()
	assert.Equal(t, -1.0, kept.Tol, "negative values are rejected by Validate, not replaced")
	assert.Equal(t, 7, kept.MaxIter)

	c := convergence.Criteria{Tol: 1, MaxIter: 3}
	assert.False(t, c.Exhausted(2))
	assert.True(t, c.Exhausted(3))
}

func TestTrackerUnseeded(t *testing.T) {
	tr := convergence.NewTracker(convergence.Criteria{Tol: 0.1, MaxIter: 10})

	first := tr.Observe(1.5)
	assert.Nil(t, first.RelPct, "first observation has no previous value")
	assert.True(t, math.IsInf(first.Abs, 1))
	assert.False(t, first.Converged)

	second := tr.Observe(1.25)
	require.NotNil(t, second.RelPct)
	assert.InDelta(t, 0.25, second.Abs, 1e-15)
	assert.InDelta(t, 20.0, *second.RelPct, 1e-12)
	assert.False(t, second.Converged)

	third := tr.Observe(1.2)
	assert.True(t, third.Converged)
}

func TestTrackerSeeded(t *testing.T) {
	tr := convergence.NewTracker(convergence.Criteria{Tol: 1e-3, MaxIter: 10})
	tr.Seed(1)

	m := tr.Observe(1.5)
	require.NotNil(t, m.RelPct)
	assert.InDelta(t, 0.5, m.Abs, 1e-15)
}

func TestVecTracker(t *testing.T) {
	x0 := []float64{0, 0}
	tr := convergence.NewVecTracker(convergence.Criteria{Tol: 0.01, MaxIter: 10}, x0)

	x := []float64{0.25, 0.5}
	m := tr.Observe(x)
	assert.InDelta(t, 0.5, m.MaxAbs, 1e-15)
	assert.Equal(t, []float64{100, 100}, m.RelPct)
	assert.False(t, m.Converged)

	// caller buffers may be reused without corrupting the tracker
	x[0], x[1] = 0.255, 0.505
	m = tr.Observe(x)
	assert.InDelta(t, 0.005, m.MaxAbs, 1e-12)
	assert.True(t, m.Converged)
	assert.Equal(t, []float64{0, 0}, x0, "seed must be copied")
}

// TestMaxAbsDiffProperties checks metric axioms on random vectors.
func TestMaxAbsDiffProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	vec := gen.SliceOfN(4, gen.Float64Range(-1e3, 1e3))

	properties.Property("symmetric and non-negative", prop.ForAll(
		func(a, b []float64) bool {
			d := convergence.MaxAbsDiff(a, b)
			return d >= 0 && d == convergence.MaxAbsDiff(b, a)
		},
		vec, vec,
	))

	properties.Property("bounds every component step", prop.ForAll(
		func(a, b []float64) bool {
			d := convergence.MaxAbsDiff(a, b)
			for i := range a {
				if math.Abs(a[i]-b[i]) > d {
					return false
				}
			}
			return true
		},
		vec, vec,
	))

	properties.Property("zero on identical input", prop.ForAll(
		func(a []float64) bool { return convergence.MaxAbsDiff(a, a) == 0 },
		vec,
	))

	properties.TestingRun(t)
}
