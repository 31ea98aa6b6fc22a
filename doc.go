// SPDX-License-Identifier: MIT

// Package numlab is a small numerical-methods workbench: root finding for
// single-variable formulas typed as text, and iterative or direct solvers
// for small dense linear systems.
//
// What is in the box?
//
//	expr/         safe formula parser, evaluator and symbolic derivative
//	convergence/  tolerance/budget criteria and percent-error tracking
//	roots/        Bisection, Regula-Falsi, Newton-Raphson, Secant
//	matrix/       dense row-major storage, [A | b] augmentation, validators
//	linsys/       Gauss-Jacobi, Gauss-Seidel, Gauss-Jordan, dominance checks
//	engine/       text-in / JSON-out facade with structured failures
//	cmd/numlab    command line front end
//
// Every solver returns the full iteration trace next to the answer, so the
// convergence path can be inspected or plotted by the caller. Solvers are
// pure: they never log, never share state between runs and never mutate
// their inputs. The engine adds run IDs, logging (zap) and metrics
// (Prometheus) around them.
//
// Quick example:
//
//	numlab root --method newton --expr "x^2 - 2" --x0 1
//	numlab linear --method seidel --file system.yaml
//
// Formulas only ever see the variable x, a fixed set of math functions and
// the constants pi and e; anything else is rejected before evaluation.
//
//	go get github.com/katalvlaran/numlab
package numlab
