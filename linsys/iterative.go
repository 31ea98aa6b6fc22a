// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/numlab/convergence"
	"github.com/katalvlaran/numlab/matrix"
)

// sweepFunc computes one new iterate into next from prev.
type sweepFunc func(rows [][]float64, b, prev, next []float64)

// Jacobi solves A·x = b by simultaneous displacement:
//
//	x_new[i] = (b[i] − Σ_{j≠i} A[i][j]·x_old[j]) / A[i][i]
//
// Errors: matrix validation errors, convergence.Criteria errors,
// *PivotError wrapping ErrZeroPivot, ErrDiverged.
// Complexity: O(n²) per sweep.
func Jacobi(a matrix.Matrix, b []float64, c convergence.Criteria, opts ...Option) (*Result, error) {
	return iterate(MethodJacobi, a, b, c, opts, jacobiSweep)
}

// Seidel solves A·x = b by successive displacement:
//
//	x_new[i] = (b[i] − Σ_{j<i} A[i][j]·x_new[j] − Σ_{j>i} A[i][j]·x_old[j]) / A[i][i]
//
// Errors and complexity as Jacobi.
func Seidel(a matrix.Matrix, b []float64, c convergence.Criteria, opts ...Option) (*Result, error) {
	return iterate(MethodSeidel, a, b, c, opts, seidelSweep)
}

func jacobiSweep(rows [][]float64, b, prev, next []float64) {
	var i, j int
	var sum float64
	for i = 0; i < len(b); i++ {
		sum = matrix.ZeroSum
		for j = 0; j < len(b); j++ {
			if j != i {
				sum += rows[i][j] * prev[j]
			}
		}
		next[i] = (b[i] - sum) / rows[i][i]
	}
}

func seidelSweep(rows [][]float64, b, prev, next []float64) {
	copy(next, prev)
	var i, j int
	var sum float64
	for i = 0; i < len(b); i++ {
		sum = matrix.ZeroSum
		for j = 0; j < len(b); j++ {
			if j != i {
				sum += rows[i][j] * next[j] // next[j] is already updated for j < i
			}
		}
		next[i] = (b[i] - sum) / rows[i][i]
	}
}

// iterate is the shared driver.
//
// Implementation:
//   - Stage 1: validate the system, the criteria and the initial guess.
//   - Stage 2: copy A, reject zero diagonals, check dominance (warning only).
//   - Stage 3: sweep until max-abs change < Tol or the budget runs out.
func iterate(m Method, a matrix.Matrix, b []float64, c convergence.Criteria, opts []Option, sweep sweepFunc) (*Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, linsysErrorf(m, err)
	}
	if err := c.Validate(); err != nil {
		return nil, linsysErrorf(m, err)
	}
	n := a.Rows()
	o := buildOptions(opts)
	x := make([]float64, n)
	if o.x0 != nil {
		if err := matrix.ValidateVecLen(o.x0, n); err != nil {
			return nil, linsysErrorf(m, err)
		}
		if err := matrix.ValidateFinite(o.x0); err != nil {
			return nil, linsysErrorf(m, err)
		}
		copy(x, o.x0)
	}

	rows, err := rowsOf(a)
	if err != nil {
		return nil, linsysErrorf(m, err)
	}
	var i int
	for i = 0; i < n; i++ {
		if rows[i][i] == 0 {
			return nil, &PivotError{Method: m, Row: i, Err: ErrZeroPivot}
		}
	}

	res := &Result{Method: m, Status: StatusBudgetExhausted}
	report, err := DominanceReport(a)
	if err != nil {
		return nil, linsysErrorf(m, err)
	}
	res.DiagonallyDominant = true
	var weak []int
	for _, r := range report {
		if !r.Dominant {
			res.DiagonallyDominant = false
			weak = append(weak, r.Row)
		}
	}
	if !res.DiagonallyDominant {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("matrix is not diagonally dominant (rows %v); convergence is not guaranteed", weak))
	}

	tr := convergence.NewVecTracker(c, x)
	next := make([]float64, n)
	var it int
	for it = 1; it <= c.MaxIter; it++ {
		sweep(rows, b, x, next)
		if err = matrix.ValidateFinite(next); err != nil {
			return nil, &DivergenceError{Method: m, Iteration: it}
		}
		ms := tr.Observe(next)
		res.Trace = append(res.Trace, Step{
			Iteration: it,
			X:         append([]float64(nil), next...),
			Error:     ms.MaxAbs,
			RelErrPct: ms.RelPct,
		})
		x, next = next, x
		if ms.Converged {
			res.Status = StatusConverged
			break
		}
	}
	res.Solution = append([]float64(nil), x...)
	res.Iterations = len(res.Trace)

	return res, nil
}

// rowsOf copies a into fresh row slices.
func rowsOf(a matrix.Matrix) ([][]float64, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.RowsCopy(), nil
	}
	out := make([][]float64, a.Rows())
	var i, j int
	var err error
	for i = 0; i < a.Rows(); i++ {
		out[i] = make([]float64, a.Cols())
		for j = 0; j < a.Cols(); j++ {
			if out[i][j], err = a.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
