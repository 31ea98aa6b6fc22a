// SPDX-License-Identifier: MIT

package convergence

import (
	"fmt"
	"math"
)

// Defaults applied by callers that accept a zero Tol or MaxIter.
const (
	DefaultTol     = 1e-6
	DefaultMaxIter = 100
)

// Criteria is the stop configuration shared by every iterative solver.
type Criteria struct {
	// Tol is the absolute threshold the stop quantity must fall below.
	Tol float64

	// MaxIter caps the number of iterations (the budget).
	MaxIter int
}

// Default returns Criteria{DefaultTol, DefaultMaxIter}.
func Default() Criteria { return Criteria{Tol: DefaultTol, MaxIter: DefaultMaxIter} }

// Validate checks Tol and MaxIter, in that order.
// Errors: ErrNonFiniteTolerance, ErrNonPositiveTolerance, ErrNonPositiveBudget.
func (c Criteria) Validate() error {
	if math.IsNaN(c.Tol) || math.IsInf(c.Tol, 0) {
		return fmt.Errorf("tol=%v: %w", c.Tol, ErrNonFiniteTolerance)
	}
	if c.Tol <= 0 {
		return fmt.Errorf("tol=%g: %w", c.Tol, ErrNonPositiveTolerance)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("max_iter=%d: %w", c.MaxIter, ErrNonPositiveBudget)
	}

	return nil
}

// WithDefaults replaces a zero Tol or MaxIter with the package defaults.
// Negative or non-finite values are left for Validate to reject.
func (c Criteria) WithDefaults() Criteria {
	if c.Tol == 0 {
		c.Tol = DefaultTol
	}
	if c.MaxIter == 0 {
		c.MaxIter = DefaultMaxIter
	}

	return c
}

// Exhausted reports whether iteration (1-based) has consumed the budget.
func (c Criteria) Exhausted(iteration int) bool { return iteration >= c.MaxIter }
