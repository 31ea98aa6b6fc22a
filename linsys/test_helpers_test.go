// SPDX-License-Identifier: MIT

package linsys_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/convergence"
	"github.com/katalvlaran/numlab/matrix"
)

// MustDense builds a Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func crit(tol float64, maxIter int) convergence.Criteria {
	return convergence.Criteria{Tol: tol, MaxIter: maxIter}
}

// approx compares float slices with an absolute tolerance.
func approx(tol float64) cmp.Option { return cmpopts.EquateApprox(0, tol) }
