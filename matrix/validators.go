// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels and solvers minimal by delegating shape/nil/finiteness checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap uniformly and callers can still use errors.Is.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite ensures every entry of x is finite.
// Time: O(n). Space: O(1).
func ValidateFinite(x []float64) error {
	var i int
	for i = 0; i < len(x); i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateSystem is the composite guard used by every linear solver:
// A square, b non-nil with len(b) == n, b finite.
// Dense entries are already finite (enforced by Set).
func ValidateSystem(a Matrix, b []float64) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateFinite(b); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}
