package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/paths"
)

var (
	// ErrNilGraph indicates that a nil *core.View was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source is not a vertex of the graph.
	ErrVertexNotFound = fmt.Errorf("bellmanford: %w", core.ErrUnknownVertex)

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")
)

// Result is the output of one Bellman-Ford solve.
//
// NegativeCycle[v] is true when v is reachable through a negative cycle; the
// Dist and Prev entries of such vertices are not meaningful.
type Result struct {
	Source        int
	Dist          []core.Distance
	Prev          []int
	NegativeCycle []bool
	Passes        int // relaxation passes performed before convergence
}

// HasNegativeCycle reports whether any vertex was flagged.
func (r *Result) HasNegativeCycle() bool {
	for _, f := range r.NegativeCycle {
		if f {
			return true
		}
	}

	return false
}

// PathTo reconstructs Source→…→dest from Prev.
// Vertices affected by a negative cycle fail with ErrNegativeCycle.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest >= 0 && dest < len(r.NegativeCycle) && r.NegativeCycle[dest] {
		return nil, fmt.Errorf("%w: vertex %d", ErrNegativeCycle, dest)
	}

	return paths.FromPredecessors(r.Prev, r.Source, dest)
}

// BellmanFord computes shortest distances from source over signed weights.
//
// Errors:
//   - ErrNilGraph, ErrVertexNotFound: no result.
//   - ErrNegativeCycle: the Result is still returned with affected vertices flagged.
func BellmanFord(g *core.View, source int) (*Result, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	// 2) Initialize
	n := g.Order()
	res := &Result{
		Source:        source,
		Dist:          make([]core.Distance, n),
		Prev:          make([]int, n),
		NegativeCycle: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		res.Dist[v] = core.Unreachable
		res.Prev[v] = core.NoVertex
	}
	res.Dist[source] = 0

	// 3) V−1 relaxation passes, stopping early once stable.
	edges := g.Edges()
	for pass := 0; pass < n-1; pass++ {
		res.Passes++
		if !relaxPass(edges, res.Dist, res.Prev) {
			break
		}
	}

	// 4) Verification pass: any edge still relaxable sits on or behind a
	//    negative cycle reachable from source.
	var seeds []int
	for _, e := range edges {
		if !res.Dist[e.From].Reachable() {
			continue
		}
		if res.Dist[e.From].Add(e.Weight).Less(res.Dist[e.To]) {
			seeds = append(seeds, e.To)
		}
	}
	if len(seeds) == 0 {
		return res, nil
	}

	affected := markReachable(g, seeds, res.NegativeCycle)

	return res, fmt.Errorf("%w: %d vertices affected from source %d", ErrNegativeCycle, affected, source)
}

// relaxPass relaxes every edge once and reports whether anything changed.
func relaxPass(edges []core.Edge, dist []core.Distance, prev []int) bool {
	changed := false
	for _, e := range edges {
		if !dist[e.From].Reachable() {
			continue
		}
		nd := dist[e.From].Add(e.Weight)
		if nd.Less(dist[e.To]) {
			dist[e.To] = nd
			prev[e.To] = e.From
			changed = true
		}
	}

	return changed
}

// markReachable flags every vertex reachable from seeds and returns the count.
func markReachable(g *core.View, seeds []int, flag []bool) int {
	count := 0
	stack := append([]int(nil), seeds...)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if flag[u] {
			continue
		}
		flag[u] = true
		count++
		for _, a := range g.Neighbors(u) {
			if !flag[a.To] {
				stack = append(stack, a.To)
			}
		}
	}

	return count
}
