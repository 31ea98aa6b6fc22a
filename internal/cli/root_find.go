// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/engine"
)

func newRootFindCmd(a *app) *cobra.Command {
	var req engine.RootRequest
	var x struct{ a, b, x0, x1 float64 }

	cmd := &cobra.Command{
		Use:   "root",
		Short: "Find a root of f(x)",
		Long: `Find a root of a formula in x.

Bracketing methods (bisection, regula-falsi) need --a and --b with f(a) and
f(b) of opposite signs. Newton needs --x0 and differentiates the formula
symbolically. Secant needs --x0 and --x1.

Examples:
  numlab root --method bisection --expr "x^3 - x - 2" --a 1 --b 2
  numlab root --method newton --expr "cos(x) - x" --x0 1 --tol 1e-10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("a") {
				req.A = &x.a
			}
			if flags.Changed("b") {
				req.B = &x.b
			}
			if flags.Changed("x0") {
				req.X0 = &x.x0
			}
			if flags.Changed("x1") {
				req.X1 = &x.x1
			}
			resp, err := a.eng.FindRoot(cmd.Context(), req)

			return a.finish(cmd, report(cmd.OutOrStdout(), resp, err))
		},
	}

	cmd.Flags().StringVar(&req.Method, "method", "", "bisection, regula-falsi, newton or secant")
	cmd.Flags().StringVar(&req.Expression, "expr", "", "Formula in x, e.g. \"x^3 - x - 2\"")
	cmd.Flags().Float64Var(&x.a, "a", 0, "Left end of the bracket")
	cmd.Flags().Float64Var(&x.b, "b", 0, "Right end of the bracket")
	cmd.Flags().Float64Var(&x.x0, "x0", 0, "Starting point")
	cmd.Flags().Float64Var(&x.x1, "x1", 0, "Second starting point (secant)")
	cmd.Flags().Float64Var(&req.Tol, "tol", 0, "Absolute step tolerance (default from config)")
	cmd.Flags().IntVar(&req.MaxIter, "max-iter", 0, "Iteration budget (default from config)")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("expr")

	return cmd
}
