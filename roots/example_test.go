// SPDX-License-Identifier: MIT

package roots_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/convergence"
	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/roots"
)

// ExampleNewton solves x^2 - 2 = 0 with a symbolic derivative.
func ExampleNewton() {
	e := expr.MustParse("x^2 - 2")
	res, err := roots.Newton(e.Func(), e.Derivative().Func(), 1, convergence.Criteria{Tol: 1e-6, MaxIter: 100})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.7f %d %s\n", res.Root, res.Iterations, res.Status)
	// Output:
	// 1.4142136 5 converged
}

// ExampleBisection shows the bracketing trace.
func ExampleBisection() {
	res, _ := roots.Bisection(func(x float64) float64 { return x*x*x - x - 2 }, 1, 2,
		convergence.Criteria{Tol: 1e-2, MaxIter: 100})
	for _, s := range res.Trace[:3] {
		fmt.Printf("%d [%g, %g] c=%g\n", s.Iteration, s.Bracket.A, s.Bracket.B, s.X)
	}
	// Output:
	// 1 [1, 2] c=1.5
	// 2 [1.5, 2] c=1.75
	// 3 [1.5, 1.75] c=1.625
}
