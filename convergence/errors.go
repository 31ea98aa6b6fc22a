// SPDX-License-Identifier: MIT

package convergence

import "errors"

// Sentinel configuration errors returned by Criteria.Validate.
var (
	// ErrNonPositiveTolerance indicates Tol <= 0.
	ErrNonPositiveTolerance = errors.New("convergence: tolerance must be > 0")

	// ErrNonFiniteTolerance indicates Tol is NaN or ±Inf.
	ErrNonFiniteTolerance = errors.New("convergence: tolerance must be finite")

	// ErrNonPositiveBudget indicates MaxIter <= 0.
	ErrNonPositiveBudget = errors.New("convergence: max iterations must be > 0")
)
