// Package matrix_test contains unit tests for the Dense grid.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/matrix"
)

// TestNewDenseDimensions accepts 0×0 and rejects negative sizes.
func TestNewDenseDimensions(t *testing.T) {
	m, err := matrix.NewDense(0, 0) // empty graph snapshot
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFilled(2, -2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrIndexOutOfBounds)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	var nilM *matrix.Dense
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSetGetRow checks Set/At round trips and that Row returns a copy.
func TestSetGetRow(t *testing.T) {
	m, err := matrix.NewFilled(2, 3, math.Inf(1))
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, -7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, -7.5, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{math.Inf(1), math.Inf(1), -7.5}, row)

	row[0] = 0
	v, _ = m.At(1, 0)
	require.True(t, math.IsInf(v, 1), "mutating a returned row must not leak into the matrix")
}

// TestFillCloneString covers bulk fill, deep copy and the ∞ rendering.
func TestFillCloneString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Fill([]float64{1, 2, 3}), matrix.ErrDimensionMismatch)
	require.NoError(t, m.Fill([]float64{0, 1, math.Inf(1), 0}))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))
	v, _ := m.At(0, 1)
	require.Equal(t, 1.0, v)

	require.Equal(t, "[0 1]\n[∞ 0]\n", m.String())
}
