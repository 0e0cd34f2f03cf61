package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

func TestView_SnapshotIgnoresLaterMutation(t *testing.T) {
	g := core.NewGraph()
	mustVertices(t, g, "A", "B")
	require.NoError(t, g.AddEdge(0, 1, 1, false))

	v := g.Snapshot()
	mustVertices(t, g, "C")
	require.NoError(t, g.AddEdge(1, 2, 1, false))

	assert.Equal(t, 2, v.Order())
	assert.Equal(t, 1, v.Size())
	assert.Equal(t, []string{"A", "B"}, v.Names())
	assert.Empty(t, v.Neighbors(1))
	assert.Nil(t, v.Neighbors(5))
}

func TestView_NewViewValidates(t *testing.T) {
	_, err := core.NewView(2, []core.Edge{{From: 0, To: 2, Weight: 1}})
	require.ErrorIs(t, err, core.ErrUnknownVertex)

	_, err = core.NewView(2, []core.Edge{{From: 0, To: 1, Weight: math.NaN()}})
	require.ErrorIs(t, err, core.ErrInvalidWeight)

	_, err = core.NewView(-1, nil)
	require.ErrorIs(t, err, core.ErrUnknownVertex)

	v, err := core.NewView(3, []core.Edge{{From: 2, To: 0, Weight: 4}})
	require.NoError(t, err)
	assert.Equal(t, "#2", v.Name(2))
	assert.Nil(t, v.Names())
}

func TestView_MinWeightAndReweight(t *testing.T) {
	v, err := core.NewView(2, []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 0, To: 1, Weight: 3},
		{From: 1, To: 0, Weight: -1},
	})
	require.NoError(t, err)

	w, ok := v.MinWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 3.0, w)
	_, ok = v.MinWeight(1, 1)
	assert.False(t, ok)
	assert.True(t, v.HasNegativeWeight())

	shifted := v.Reweight(func(e core.Edge) float64 { return e.Weight + 1 })
	assert.False(t, shifted.HasNegativeWeight())
	assert.Equal(t, []core.Arc{{To: 1, Weight: 6}, {To: 1, Weight: 4}}, shifted.Neighbors(0))
	assert.Equal(t, -1.0, v.Edges()[2].Weight, "original view is unchanged")
}

func TestView_DenseMatrix(t *testing.T) {
	g := core.NewGraph()
	mustVertices(t, g, "A", "B", "C")
	require.NoError(t, g.AddEdge(0, 1, 7, false))
	require.NoError(t, g.AddEdge(0, 1, 2, false))
	require.NoError(t, g.AddEdge(1, 1, 5, false))
	require.NoError(t, g.AddEdge(2, 2, -4, false))

	m := g.DenseMatrix()
	require.Equal(t, 3, m.Rows())
	inf := math.Inf(1)
	want := [][]float64{
		{0, 2, inf},
		{inf, 0, inf},
		{inf, inf, -4},
	}
	for i := range want {
		row, err := m.Row(i)
		require.NoError(t, err)
		assert.Equal(t, want[i], row, "row %d", i)
	}
}
