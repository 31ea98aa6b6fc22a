// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/engine"
)

func newLinearCmd(a *app) *cobra.Command {
	var (
		file, method string
		tol          float64
		maxIter      int
	)

	cmd := &cobra.Command{
		Use:   "linear",
		Short: "Solve A·x = b",
		Long: `Solve a dense linear system read from a YAML or JSON file:

  a: [[4, 1], [2, 3]]
  b: [1, 2]
  x0: [0, 0]   # optional, iterative methods only

Flags override the method, tol and max_iter the file may carry.

Example:
  numlab linear --method seidel --file system.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req engine.LinearRequest
			if err := decodeFile(file, &req); err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("method") || req.Method == "" {
				req.Method = method
			}
			if flags.Changed("tol") {
				req.Tol = tol
			}
			if flags.Changed("max-iter") {
				req.MaxIter = maxIter
			}
			resp, err := a.eng.SolveLinear(cmd.Context(), req)

			return a.finish(cmd, report(cmd.OutOrStdout(), resp, err))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "System file with a, b and optional x0")
	cmd.Flags().StringVar(&method, "method", "", "jacobi, seidel or jordan (gauss- prefix optional)")
	cmd.Flags().Float64Var(&tol, "tol", 0, "Max-abs change tolerance (default from config)")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "Sweep budget (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
