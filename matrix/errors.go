// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. When context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the nearest detection site; callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/ragged -> dimension mismatch -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set/Row/SwapRows) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(b) != A.Rows() when augmenting, or len(x) != A.Cols() in MatVec.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged signals that row slices passed to NewFromRows differ in length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix or vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
