// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/roots"
)

// RootRequest asks for a root of a single-variable formula in x.
// Bisection and regula-falsi need A and B, Newton needs X0, secant needs
// X0 and X1.
type RootRequest struct {
	Method     string   `json:"method" yaml:"method" validate:"required,oneof=bisection regula-falsi newton secant"`
	Expression string   `json:"expression" yaml:"expression" validate:"required,max=4096"`
	A          *float64 `json:"a,omitempty" yaml:"a"`
	B          *float64 `json:"b,omitempty" yaml:"b"`
	X0         *float64 `json:"x0,omitempty" yaml:"x0"`
	X1         *float64 `json:"x1,omitempty" yaml:"x1"`
	Tol        float64  `json:"tol,omitempty" yaml:"tol" validate:"gt=0"`
	MaxIter    int      `json:"max_iter,omitempty" yaml:"max_iter" validate:"gt=0,lte=1000000"`
}

// RootResponse is a finished root run. Derivative is set for Newton only;
// Root is nil when the bracket precondition failed.
type RootResponse struct {
	RunID      string       `json:"run_id"`
	Method     string       `json:"method"`
	Expression string       `json:"expression"`
	Derivative string       `json:"derivative,omitempty"`
	Root       *float64     `json:"root"`
	Iterations int          `json:"iterations"`
	Status     string       `json:"status"`
	Trace      []roots.Step `json:"trace"`
}

// LinearRequest asks for the solution of A·x = b. The short names jacobi,
// seidel and jordan are accepted next to the full ones. Tol, MaxIter and
// X0 are ignored by Gauss-Jordan.
type LinearRequest struct {
	Method  string      `json:"method" yaml:"method" validate:"required,oneof=jacobi seidel jordan gauss-jacobi gauss-seidel gauss-jordan"`
	A       [][]float64 `json:"a" yaml:"a" validate:"required,min=1"`
	B       []float64   `json:"b" yaml:"b" validate:"required,min=1"`
	X0      []float64   `json:"x0,omitempty" yaml:"x0"`
	Tol     float64     `json:"tol,omitempty" yaml:"tol" validate:"gt=0"`
	MaxIter int         `json:"max_iter,omitempty" yaml:"max_iter" validate:"gt=0,lte=1000000"`
}

// LinearResponse is a finished linear run. Trace holds sweeps for the
// iterative methods; Eliminations and Reduced belong to Gauss-Jordan.
type LinearResponse struct {
	RunID              string               `json:"run_id"`
	Method             string               `json:"method"`
	Solution           []float64            `json:"solution"`
	Iterations         int                  `json:"iterations"`
	Status             string               `json:"status"`
	Trace              []linsys.Step        `json:"trace,omitempty"`
	Eliminations       []linsys.Elimination `json:"eliminations,omitempty"`
	Reduced            [][]float64          `json:"reduced,omitempty"`
	DiagonallyDominant bool                 `json:"diagonally_dominant"`
	Warnings           []string             `json:"warnings,omitempty"`
}

// linearMethods resolves short method names.
var linearMethods = map[string]linsys.Method{
	"jacobi":       linsys.MethodJacobi,
	"seidel":       linsys.MethodSeidel,
	"jordan":       linsys.MethodJordan,
	"gauss-jacobi": linsys.MethodJacobi,
	"gauss-seidel": linsys.MethodSeidel,
	"gauss-jordan": linsys.MethodJordan,
}

// checkPoints reports the starting points the chosen method is missing.
func (r RootRequest) checkPoints() ValidationErrors {
	var missing []string
	switch roots.Method(r.Method) {
	case roots.MethodBisection, roots.MethodRegulaFalsi:
		if r.A == nil {
			missing = append(missing, "a")
		}
		if r.B == nil {
			missing = append(missing, "b")
		}
	case roots.MethodNewton:
		if r.X0 == nil {
			missing = append(missing, "x0")
		}
	case roots.MethodSecant:
		if r.X0 == nil {
			missing = append(missing, "x0")
		}
		if r.X1 == nil {
			missing = append(missing, "x1")
		}
	}
	var errs ValidationErrors
	for _, f := range missing {
		errs = append(errs, FieldError{Field: f, Message: "is required for " + r.Method})
	}

	return errs
}
