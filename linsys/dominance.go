// SPDX-License-Identifier: MIT

package linsys

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// DominanceReport returns, for each row, |A[i][i]| against Σ_{j≠i}|A[i][j]|.
// A row is dominant when the diagonal strictly exceeds the off-diagonal sum.
//
// Errors: ErrNilMatrix, ErrNonSquare (from matrix validators).
// Complexity: O(n²).
func DominanceReport(a matrix.Matrix) ([]RowDominance, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}
	n := a.Rows()
	out := make([]RowDominance, n)

	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		out[i].Row = i
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			if i == j {
				out[i].Diagonal = math.Abs(v)
				continue
			}
			out[i].OffDiagonal += math.Abs(v)
		}
		out[i].Dominant = out[i].Diagonal > out[i].OffDiagonal
	}

	return out, nil
}

// IsDiagonallyDominant reports strict row dominance for every row.
// Invalid matrices are reported as not dominant.
func IsDiagonallyDominant(a matrix.Matrix) bool {
	rows, err := DominanceReport(a)
	if err != nil {
		return false
	}
	for _, r := range rows {
		if !r.Dominant {
			return false
		}
	}

	return true
}
