// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Match with errors.Is; *IterationError wraps them.
var (
	// ErrPreconditionFailed indicates f(a) and f(b) do not have strictly
	// opposite signs.
	ErrPreconditionFailed = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrDivisionByZero indicates a zero denominator in a secant-type update.
	ErrDivisionByZero = errors.New("roots: division by zero")

	// ErrSingularDerivative indicates f'(x) == 0 during Newton iteration.
	ErrSingularDerivative = errors.New("roots: derivative is zero")

	// ErrNonFinite indicates a NaN or ±Inf input or function value.
	ErrNonFinite = errors.New("roots: non-finite value")

	// ErrNilFunc indicates a nil function or derivative.
	ErrNilFunc = errors.New("roots: nil function")
)

// Value is one named diagnostic quantity attached to an IterationError.
type Value struct {
	Name string
	V    float64
}

// IterationError describes a fatal condition met while running Method.
// Iteration is 0 when the problem was detected before the first iteration.
type IterationError struct {
	Method    Method
	Iteration int
	X         float64
	Values    []Value
	Err       error
}

func (e *IterationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: iteration %d at x=%g", e.Method, e.Iteration, e.X)
	var i int
	for i = 0; i < len(e.Values); i++ {
		if i == 0 {
			sb.WriteString(" (")
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%g", e.Values[i].Name, e.Values[i].V)
	}
	if len(e.Values) > 0 {
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())

	return sb.String()
}

// Unwrap exposes the sentinel.
func (e *IterationError) Unwrap() error { return e.Err }

func iterErr(m Method, it int, x float64, err error, vals ...Value) error {
	return &IterationError{Method: m, Iteration: it, X: x, Values: vals, Err: err}
}
