// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrZeroPivot indicates A[i][i] == 0 for an iterative method.
	ErrZeroPivot = errors.New("linsys: zero diagonal entry")

	// ErrSingularMatrix indicates Gauss-Jordan found no usable pivot.
	ErrSingularMatrix = errors.New("linsys: matrix is singular")

	// ErrDiverged indicates an iterate grew past the float64 range.
	ErrDiverged = errors.New("linsys: iterate is not finite")
)

// PivotError locates a pivot failure.
type PivotError struct {
	Method Method
	Row    int
	Err    error
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.Method, e.Row, e.Err)
}

// Unwrap exposes the sentinel.
func (e *PivotError) Unwrap() error { return e.Err }

// DivergenceError reports the sweep whose iterate stopped being finite.
type DivergenceError struct {
	Method    Method
	Iteration int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("%s: iteration %d: %v", e.Method, e.Iteration, ErrDiverged)
}

// Unwrap exposes ErrDiverged.
func (e *DivergenceError) Unwrap() error { return ErrDiverged }

// linsysErrorf wraps err with the method tag, preserving it via %w.
func linsysErrorf(m Method, err error) error {
	return fmt.Errorf("%s: %w", m, err)
}
