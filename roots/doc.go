// SPDX-License-Identifier: MIT

// Package roots finds a root of a real function of one variable.
//
// Four methods are provided:
//
//   - Bisection: halves a sign-changing bracket [a, b] until |f(c)| < Tol or
//     the bracket width |b - a| < Tol.
//   - RegulaFalsi: replaces the midpoint with the secant through the bracket
//     endpoints; stops on the absolute step between successive estimates.
//   - Newton: x1 = x0 - f(x0)/f'(x0); stops on |x1 - x0| < Tol. A zero
//     derivative is fatal.
//   - Secant: Newton with the derivative replaced by a finite slope through
//     the last two iterates; never evaluates a derivative.
//
// Every run follows Init → Iterate → {Converged | BudgetExhausted |
// PreconditionFailed}. Running out of budget is a normal outcome: the last
// estimate is returned with StatusBudgetExhausted and a nil error.
// Degenerate algebra (zero derivative, zero slope, non-finite values) is
// fatal and surfaces as *IterationError carrying the iteration index and the
// offending values.
//
// Trace rows report the absolute stop quantity (Error) and, when a previous
// estimate exists, the relative-percent error (RelErrPct). See package
// convergence for the conventions.
//
// Functions are pure and synchronous; each call owns its own buffers.
package roots
