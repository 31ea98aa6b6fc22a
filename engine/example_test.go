// SPDX-License-Identifier: MIT

package engine_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/engine"
)

// ExampleEngine_FindRoot runs Newton's method on a text formula.
func ExampleEngine_FindRoot() {
	eng := engine.New(nil, nil)
	x0 := 1.0
	resp, err := eng.FindRoot(context.Background(), engine.RootRequest{
		Method:     "newton",
		Expression: "x^2 - 2",
		X0:         &x0,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s | %s | %.6f after %d (%s)\n", resp.Expression, resp.Derivative, *resp.Root, resp.Iterations, resp.Status)
	// Output:
	// x^2 - 2 | 2 * x | 1.414214 after 5 (converged)
}

// ExampleEngine_SolveLinear shows a singular system surfacing as a Failure.
func ExampleEngine_SolveLinear() {
	eng := engine.New(nil, nil)
	resp, err := eng.SolveLinear(context.Background(), engine.LinearRequest{
		Method: "jordan",
		A:      [][]float64{{4, 1}, {2, 3}},
		B:      []float64{1, 2},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f %s\n", resp.Solution, resp.Status)

	_, err = eng.SolveLinear(context.Background(), engine.LinearRequest{
		Method: "jordan",
		A:      [][]float64{{1, 2}, {2, 4}},
		B:      []float64{1, 2},
	})
	var f *engine.Failure
	if errors.As(err, &f) {
		fmt.Println(f.Kind)
	}
	// Output:
	// [0.1000 0.6000] solved
	// SingularMatrixError
}
