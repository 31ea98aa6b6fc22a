// SPDX-License-Identifier: MIT

package linsys

import "github.com/katalvlaran/numlab/matrix"

// Method names a linear solver.
type Method string

// Supported methods.
const (
	MethodJacobi Method = "gauss-jacobi"
	MethodSeidel Method = "gauss-seidel"
	MethodJordan Method = "gauss-jordan"
)

// Status is the terminal state of a run.
type Status string

// Terminal states. StatusSolved belongs to the direct method.
const (
	StatusConverged       Status = "converged"
	StatusBudgetExhausted Status = "budget_exhausted"
	StatusSolved          Status = "solved"
)

// Step is one sweep of an iterative method.
type Step struct {
	Iteration int       `json:"iteration"`
	X         []float64 `json:"x"`
	Error     float64   `json:"error"`
	RelErrPct []float64 `json:"rel_err_pct"`
}

// Result is the outcome of Jacobi or Seidel.
type Result struct {
	Method             Method    `json:"method"`
	Solution           []float64 `json:"solution"`
	Iterations         int       `json:"iterations"`
	Status             Status    `json:"status"`
	Trace              []Step    `json:"trace"`
	DiagonallyDominant bool      `json:"diagonally_dominant"`
	Warnings           []string  `json:"warnings,omitempty"`
}

// Elimination records the pivot chosen for one column of Gauss-Jordan.
// SwappedWith is -1 when the diagonal entry was used as is.
type Elimination struct {
	Column      int     `json:"column"`
	PivotRow    int     `json:"pivot_row"`
	SwappedWith int     `json:"swapped_with"`
	Pivot       float64 `json:"pivot"`
}

// JordanResult is the outcome of Jordan. Reduced is the final [I | x].
type JordanResult struct {
	Method   Method        `json:"method"`
	Solution []float64     `json:"solution"`
	Status   Status        `json:"status"`
	Reduced  *matrix.Dense `json:"-"`
	Trace    []Elimination `json:"trace"`
}

// RowDominance describes one row of a dominance check.
type RowDominance struct {
	Row         int     `json:"row"`
	Diagonal    float64 `json:"diagonal"`
	OffDiagonal float64 `json:"off_diagonal"`
	Dominant    bool    `json:"dominant"`
}
