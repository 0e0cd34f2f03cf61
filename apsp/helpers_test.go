package apsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

func e(from, to int, w float64) core.Edge { return core.Edge{From: from, To: to, Weight: w} }

func view(t testing.TB, n int, edges ...core.Edge) *core.View {
	t.Helper()
	v, err := core.NewView(n, edges)
	require.NoError(t, err)

	return v
}

// randomNonNegative returns a directed graph with integer weights in [0, 20),
// including parallel edges and self-loops.
func randomNonNegative(t testing.TB, rng *rand.Rand, n, m int) *core.View {
	t.Helper()
	edges := make([]core.Edge, 0, m)
	for k := 0; k < m; k++ {
		edges = append(edges, e(rng.Intn(n), rng.Intn(n), float64(rng.Intn(20))))
	}

	return view(t, n, edges...)
}

// randomShifted returns a graph with negative edges but no negative cycle:
// every weight of a positive graph is shifted by p[u] − p[v], which leaves
// cycle sums unchanged (and therefore positive).
func randomShifted(t testing.TB, rng *rand.Rand, n, m int) *core.View {
	t.Helper()
	edges := make([]core.Edge, 0, m)
	for k := 0; k < m; k++ {
		edges = append(edges, e(rng.Intn(n), rng.Intn(n), float64(1+rng.Intn(19))))
	}
	base := view(t, n, edges...)
	p := make([]float64, n)
	for i := range p {
		p[i] = float64(rng.Intn(30) - 15)
	}

	return base.Reweight(func(x core.Edge) float64 { return x.Weight + p[x.From] - p[x.To] })
}

// negativeTriangle is A→B(1), B→C(-3), C→A(1) with a tail C→D(2).
func negativeTriangle(t testing.TB) *core.View {
	return view(t, 4, e(0, 1, 1), e(1, 2, -3), e(2, 0, 1), e(2, 3, 2))
}
