// SPDX-License-Identifier: MIT
// Package matrix provides the small set of linear-algebra kernels the solvers
// share: matrix-vector product, augmentation [A | b], residual norm and
// column extraction. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and wrap via matrixErrorf.
//   - Inputs are never mutated; results are freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec   = "MatVec"
	opAugment  = "Augment"
	opResidual = "Residual"
	opColumn   = "Column"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Cols().
//   - Stage 2: fast path on *Dense (flat row-major dot products), else At().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Augment builds the n×(n+1) augmented matrix [A | b].
//
// Implementation:
//   - Stage 1: ValidateSystem(a, b).
//   - Stage 2: copy A row by row, append b[i] as the last column.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf.
// Complexity: Time O(n²), Space O(n²).
func Augment(a Matrix, b []float64) (*Dense, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	n := a.Rows()
	aug, err := NewDense(n, n+1)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, err)
			}
			aug.data[i*aug.c+j] = v
		}
		aug.data[i*aug.c+n] = b[i]
	}

	return aug, nil
}

// Residual returns max_i |(A·x)_i − b_i|, the L∞ norm of the residual.
// A solution of a well-posed system has a residual near machine precision.
//
// Errors: propagated from MatVec and ValidateVecLen.
// Complexity: Time O(n²), Space O(n).
func Residual(a Matrix, x, b []float64) (float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}

	worst := ZeroSum
	var i int
	for i = 0; i < len(ax); i++ {
		worst = math.Max(worst, math.Abs(ax[i]-b[i]))
	}

	return worst, nil
}

// Column returns a copy of column j.
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opColumn, fmt.Errorf("column %d: %w", j, ErrIndexOutOfBounds))
	}

	out := make([]float64, m.Rows())
	var i int
	var err error
	for i = 0; i < m.Rows(); i++ {
		if out[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opColumn, err)
		}
	}

	return out, nil
}
