// SPDX-License-Identifier: MIT

// Package linsys solves square linear systems A·x = b.
//
// Iterative methods:
//
//   - Jacobi: every component of the new iterate is computed from the
//     previous full iterate only.
//   - Seidel: components computed earlier in the same sweep are used at once.
//
// Both stop when max_i |x_new[i] - x_old[i]| < Tol (the max-absolute
// convention of package convergence) or when MaxIter sweeps are consumed,
// which yields StatusBudgetExhausted with the last iterate. A zero diagonal
// entry is fatal (ErrZeroPivot): no row reordering is attempted. A matrix
// that is not diagonally dominant only produces a warning.
//
// Direct method:
//
//   - Jordan: Gauss-Jordan reduction of [A | b] to [I | x]. A zero pivot is
//     swapped with the first later row holding a non-zero entry in the same
//     column; if none exists the system is singular (ErrSingularMatrix).
//
// Inputs are copied before use and never mutated. Every call owns its own
// buffers, so concurrent calls on distinct or shared read-only inputs are
// safe.
package linsys
