package bellmanford_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/paths"
)

func view(t *testing.T, n int, edges ...core.Edge) *core.View {
	t.Helper()
	v, err := core.NewView(n, edges)
	require.NoError(t, err)

	return v
}

func e(from, to int, w float64) core.Edge { return core.Edge{From: from, To: to, Weight: w} }

func TestBellmanFord_InvalidInput(t *testing.T) {
	_, err := bellmanford.BellmanFord(nil, 0)
	require.ErrorIs(t, err, bellmanford.ErrNilGraph)

	_, err = bellmanford.BellmanFord(view(t, 2), 2)
	require.ErrorIs(t, err, bellmanford.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestBellmanFord_NegativeEdgesNoCycle(t *testing.T) {
	// 0→1(4), 0→2(5), 2→1(-3), 1→3(2)
	g := view(t, 4, e(0, 1, 4), e(0, 2, 5), e(2, 1, -3), e(1, 3, 2))
	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []core.Distance{0, 2, 5, 4}, res.Dist)
	assert.False(t, res.HasNegativeCycle())

	p, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, p)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	// A→B(1), B→C(-3), C→A(1), plus D hanging off C and an isolated E.
	g := view(t, 5, e(0, 1, 1), e(1, 2, -3), e(2, 0, 1), e(2, 3, 2))
	res, err := bellmanford.BellmanFord(g, 0)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	require.NotNil(t, res)

	assert.Equal(t, []bool{true, true, true, true, false}, res.NegativeCycle)
	assert.True(t, res.HasNegativeCycle())

	_, err = res.PathTo(3)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)

	_, err = res.PathTo(4)
	require.ErrorIs(t, err, paths.ErrUnreachable)
}

func TestBellmanFord_UnreachableCycleIsIgnored(t *testing.T) {
	// The cycle 1⇄2 is negative but not reachable from 0.
	g := view(t, 3, e(1, 2, -1), e(2, 1, -1))
	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Distance{0, core.Unreachable, core.Unreachable}, res.Dist)
}

func TestBellmanFord_NegativeSelfLoop(t *testing.T) {
	res, err := bellmanford.BellmanFord(view(t, 1, e(0, 0, -1)), 0)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	assert.Equal(t, []bool{true}, res.NegativeCycle)
}

func TestBellmanFord_EarlyConvergence(t *testing.T) {
	// A star converges after one pass plus one confirming pass.
	g := view(t, 6, e(0, 1, 1), e(0, 2, 1), e(0, 3, 1), e(0, 4, 1), e(0, 5, 1))
	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Passes)
}

func TestBellmanFord_AgreesWithDijkstraOnNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(12)
		var edges []core.Edge
		for k := 0; k < n*3; k++ {
			edges = append(edges, e(rng.Intn(n), rng.Intn(n), float64(rng.Intn(20))))
		}
		g := view(t, n, edges...)

		for s := 0; s < n; s++ {
			bf, err := bellmanford.BellmanFord(g, s)
			require.NoError(t, err)
			dj, err := dijkstra.Dijkstra(g, dijkstra.Source(s))
			require.NoError(t, err)
			require.Equal(t, dj.Dist, bf.Dist, "trial %d source %d", trial, s)
		}
	}
}
