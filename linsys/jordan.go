// SPDX-License-Identifier: MIT

package linsys

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/numlab/matrix"
)

// pivotEps scales the largest |A[r][j]| of each original row into the
// threshold below which a pivot candidate from that row counts as zero.
const pivotEps = 1e-12

// Jordan solves A·x = b by Gauss-Jordan elimination on [A | b].
//
// Implementation:
//   - Stage 1: Augment validates and copies the system; every row records
//     its own scale max_j |A[r][j]|.
//   - Stage 2: for each column k, take A[k][k] as pivot; when it is
//     numerically zero relative to its row scale, swap row k (and its
//     scale) with the first later row whose entry in column k is not, or
//     fail with ErrSingularMatrix.
//   - Stage 3: scale the pivot row to 1 and clear column k in every other row.
//   - Stage 4: the last column of the reduced matrix is the solution.
//
// No tolerance or budget applies. Complexity: O(n³) time, O(n²) space.
func Jordan(a matrix.Matrix, b []float64) (*JordanResult, error) {
	aug, err := matrix.Augment(a, b)
	if err != nil {
		return nil, linsysErrorf(MethodJordan, err)
	}
	n := aug.Rows()

	scale := make([]float64, n)
	var i, j, k int
	var v float64
	var row []float64
	for i = 0; i < n; i++ {
		if row, err = aug.Row(i); err != nil {
			return nil, linsysErrorf(MethodJordan, err)
		}
		scale[i] = floats.Norm(row[:n], math.Inf(1))
	}
	negligible := func(v float64, row int) bool { return math.Abs(v) <= pivotEps*scale[row] }

	trace := make([]Elimination, 0, n)
	var p, f, pk float64
	var r int
	for k = 0; k < n; k++ {
		el := Elimination{Column: k, PivotRow: k, SwappedWith: -1}
		if p, err = aug.At(k, k); err != nil {
			return nil, linsysErrorf(MethodJordan, err)
		}
		if negligible(p, k) {
			for r = k + 1; r < n; r++ {
				if v, err = aug.At(r, k); err != nil {
					return nil, linsysErrorf(MethodJordan, err)
				}
				if !negligible(v, r) {
					break
				}
			}
			if r == n {
				return nil, &PivotError{Method: MethodJordan, Row: k, Err: ErrSingularMatrix}
			}
			if err = aug.SwapRows(k, r); err != nil {
				return nil, linsysErrorf(MethodJordan, err)
			}
			scale[k], scale[r] = scale[r], scale[k]
			el.PivotRow, el.SwappedWith, p = r, r, v
		}
		el.Pivot = p

		// scale the pivot row so the pivot becomes 1
		for j = 0; j <= n; j++ {
			if v, err = aug.At(k, j); err != nil {
				return nil, linsysErrorf(MethodJordan, err)
			}
			if err = aug.Set(k, j, v/p); err != nil {
				return nil, linsysErrorf(MethodJordan, err)
			}
		}

		// clear column k everywhere else
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			if f, err = aug.At(i, k); err != nil {
				return nil, linsysErrorf(MethodJordan, err)
			}
			if f == 0 {
				continue
			}
			for j = 0; j <= n; j++ {
				if pk, err = aug.At(k, j); err != nil {
					return nil, linsysErrorf(MethodJordan, err)
				}
				if v, err = aug.At(i, j); err != nil {
					return nil, linsysErrorf(MethodJordan, err)
				}
				if err = aug.Set(i, j, v-f*pk); err != nil {
					return nil, linsysErrorf(MethodJordan, err)
				}
			}
		}
		trace = append(trace, el)
	}

	x, err := matrix.Column(aug, n)
	if err != nil {
		return nil, linsysErrorf(MethodJordan, err)
	}

	return &JordanResult{
		Method:   MethodJordan,
		Solution: x,
		Status:   StatusSolved,
		Reduced:  aug,
		Trace:    trace,
	}, nil
}
