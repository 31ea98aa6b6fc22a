// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m := MustDense(t, rows, cols)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                               // negative row index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.At(0, 2)                                 // column index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(2, 0, 1.23)                             // row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(0, -1, 4.56)                            // negative column index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds
}

// TestSetRejectsNaNInf ensures the numeric policy is enforced on Set.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0), "rejected writes must not land")
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	MustSet(t, m, 1, 2, 7.89)
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	MustSet(t, m, 0, 0, 1.0)
	MustSet(t, m, 1, 1, 2.0)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0)) // modify the clone, but not the original

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))     // original remains unchanged
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0)) // clone reflects new value
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestNewFromRows covers the happy path, ragged input, empty input and NaN ingestion.
func TestNewFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// the caller's slices are not aliased
	src[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestRowAndSwapRows exercises the row helpers used by Gauss-Jordan pivoting.
func TestRowAndSwapRows(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.SwapRows(0, 2))
	row0, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, row0)
	row2, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, row2)

	// self-swap is a no-op
	require.NoError(t, m.SwapRows(1, 1))
	require.Equal(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m.RowsCopy())

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrIndexOutOfBounds)
	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	// Row returns a copy
	row0[0] = 42
	require.Equal(t, 5.0, MustAt(t, m, 0, 0))
}
