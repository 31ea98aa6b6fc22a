// SPDX-License-Identifier: MIT

// Package convergence measures how far successive iterates moved and decides
// when an iterative solver may stop.
//
// Two conventions coexist and are kept apart on purpose:
//
//   - Scalar root-finders report relative-percent error,
//     |new - old| / |new| * 100, falling back to |new - old| * 100 when the
//     new iterate is exactly zero. Their stop test is on the absolute step
//     |new - old| < Tol.
//   - Vector (linear-system) solvers compare the max-absolute difference
//     max_i |new[i] - old[i]| directly against Tol. Per-component percent
//     errors are still reported for display.
//
// The first observation of an unseeded Tracker has no previous value; its
// relative error is "not applicable" (a nil pointer), never a number.
//
// Criteria carries Tol and MaxIter and validates them once so that solvers
// can assume a positive finite tolerance and a positive budget.
package convergence
