// SPDX-License-Identifier: MIT

package linsys_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
	"gonum.org/v1/gonum/floats"
)

const propN = 3

// dominant builds a strictly diagonally dominant n×n matrix from n*n draws.
func dominant(vals []float64) *matrix.Dense {
	m, _ := matrix.NewDense(propN, propN)
	var i, j int
	var off float64
	for i = 0; i < propN; i++ {
		off = 0
		for j = 0; j < propN; j++ {
			if i != j {
				_ = m.Set(i, j, vals[i*propN+j])
				off += math.Abs(vals[i*propN+j])
			}
		}
		_ = m.Set(i, i, off+1+math.Abs(vals[i*propN+i]))
	}

	return m
}

func TestSolverProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	entries := gen.SliceOfN(propN*propN, gen.Float64Range(-10, 10))
	rhs := gen.SliceOfN(propN, gen.Float64Range(-100, 100))

	properties.Property("Gauss-Jordan reproduces b", prop.ForAll(
		func(vals, b []float64) bool {
			a := dominant(vals)
			res, err := linsys.Jordan(a, b)
			if err != nil {
				return false
			}
			r, err := matrix.Residual(a, res.Solution, b)
			return err == nil && r < 1e-9
		},
		entries, rhs,
	))

	properties.Property("Seidel converges to the direct solution", prop.ForAll(
		func(vals, b []float64) bool {
			a := dominant(vals)
			direct, err := linsys.Jordan(a, b)
			if err != nil {
				return false
			}
			it, err := linsys.Seidel(a, b, crit(1e-10, 1000))
			if err != nil || it.Status != linsys.StatusConverged {
				return false
			}
			return floats.EqualApprox(direct.Solution, it.Solution, 1e-6)
		},
		entries, rhs,
	))

	properties.TestingRun(t)
}
