// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
)

// Func is a compiled real function of one variable.
type Func func(x float64) float64

// Expression is a parsed formula. The zero value is not usable; obtain one
// through Parse. An Expression is immutable and safe for concurrent use.
type Expression struct {
	src  string
	root Node
}

// Parse validates src against the restricted grammar and allow-list.
//
// Implementation:
//   - Stage 1: reject empty or oversized text.
//   - Stage 2: lex and parse in one left-to-right pass; the first problem in
//     reading order is returned.
//
// Errors: *ParseError, *UnsafeExpressionError.
func Parse(src string) (*Expression, error) {
	root, err := parse(src)
	if err != nil {
		return nil, err
	}

	return &Expression{src: src, root: root}, nil
}

// Compile parses src and returns its evaluator.
func Compile(src string) (Func, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return e.Func(), nil
}

// Differentiate parses src and returns the evaluator of its symbolic
// derivative.
func Differentiate(src string) (Func, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return e.Derivative().Func(), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level formulas known at compile time.
func MustParse(src string) *Expression {
	e, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("expr.MustParse(%q): %v", src, err))
	}

	return e
}

// Eval evaluates the expression at x. Domain errors surface as NaN or ±Inf
// exactly as the underlying math functions produce them.
func (e *Expression) Eval(x float64) float64 { return e.root.Eval(x) }

// Func returns Eval as a standalone function value.
func (e *Expression) Func() Func { return e.root.Eval }

// Derivative returns d/dx of the expression as a new Expression. Its source
// is the canonical rendering of the derivative tree, so it can be parsed
// back.
func (e *Expression) Derivative() *Expression {
	d := e.root.deriv()

	return &Expression{src: d.String(), root: d}
}

// String renders the canonical form of the tree.
func (e *Expression) String() string { return e.root.String() }

// Source returns the text the expression was parsed from.
func (e *Expression) Source() string { return e.src }

// Functions lists the allow-listed functions the expression calls, in order
// of first use. Rewritten forms are reported by their evaluated name
// (pow becomes ^, log(u, b) becomes log).
func (e *Expression) Functions() []string { return names(e.root) }

// DependsOnX reports whether x occurs in the expression at all.
func (e *Expression) DependsOnX() bool { return dependsOnX(e.root) }

// IsFinite reports whether v is neither NaN nor ±Inf. Callers use it to
// classify an evaluation result.
func IsFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
