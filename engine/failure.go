// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/convergence"
	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/roots"
)

// Kind classifies a Failure for the transport layer.
type Kind string

// Failure kinds.
const (
	KindParse              Kind = "ParseError"
	KindUnsafeExpression   Kind = "UnsafeExpressionError"
	KindPreconditionFailed Kind = "PreconditionFailedError"
	KindSingularDerivative Kind = "SingularDerivativeError"
	KindDivisionByZero     Kind = "DivisionByZeroError"
	KindNonFiniteValue     Kind = "NonFiniteValueError"
	KindZeroPivot          Kind = "ZeroPivotError"
	KindSingularMatrix     Kind = "SingularMatrixError"
	KindConfiguration      Kind = "ConfigurationError"
	KindValidation         Kind = "ValidationError"
	KindCanceled           Kind = "CanceledError"
	KindInternal           Kind = "InternalError"
)

// Failure is the structured error every Engine method returns.
type Failure struct {
	Kind      Kind   `json:"kind"`
	Message   string `json:"message"`
	Iteration int    `json:"iteration,omitempty"`
	RunID     string `json:"run_id"`
	Err       error  `json:"-"`
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap exposes the underlying solver error.
func (f *Failure) Unwrap() error { return f.Err }

// kindRule maps a sentinel to a Kind. Order matters: the first match wins.
type kindRule struct {
	target error
	kind   Kind
}

var kindRules = []kindRule{
	{expr.ErrParse, KindParse},
	{expr.ErrUnsafe, KindUnsafeExpression},
	{roots.ErrPreconditionFailed, KindPreconditionFailed},
	{roots.ErrSingularDerivative, KindSingularDerivative},
	{roots.ErrDivisionByZero, KindDivisionByZero},
	{roots.ErrNonFinite, KindNonFiniteValue},
	{linsys.ErrDiverged, KindNonFiniteValue},
	{linsys.ErrZeroPivot, KindZeroPivot},
	{linsys.ErrSingularMatrix, KindSingularMatrix},
	{convergence.ErrNonPositiveTolerance, KindConfiguration},
	{convergence.ErrNonFiniteTolerance, KindConfiguration},
	{convergence.ErrNonPositiveBudget, KindConfiguration},
	{roots.ErrNilFunc, KindConfiguration},
	{matrix.ErrNaNInf, KindValidation},
	{matrix.ErrNonSquare, KindValidation},
	{matrix.ErrDimensionMismatch, KindValidation},
	{matrix.ErrRagged, KindValidation},
	{matrix.ErrInvalidDimensions, KindValidation},
	{matrix.ErrNilMatrix, KindValidation},
	{context.Canceled, KindCanceled},
	{context.DeadlineExceeded, KindCanceled},
}

// classify picks the Kind and, when known, the iteration of err.
func classify(err error) (Kind, int) {
	var it int
	var ie *roots.IterationError
	var de *linsys.DivergenceError
	switch {
	case errors.As(err, &ie):
		it = ie.Iteration
	case errors.As(err, &de):
		it = de.Iteration
	}

	var ve ValidationErrors
	if errors.As(err, &ve) {
		return KindValidation, it
	}
	for _, r := range kindRules {
		if errors.Is(err, r.target) {
			return r.kind, it
		}
	}

	return KindInternal, it
}

// newFailure wraps err unless it already is a *Failure.
func newFailure(runID string, err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	kind, it := classify(err)

	return &Failure{Kind: kind, Message: err.Error(), Iteration: it, RunID: runID, Err: err}
}
