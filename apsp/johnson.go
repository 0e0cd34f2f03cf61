package apsp

import (
	"fmt"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// Johnson computes all-pairs shortest paths on graphs with signed weights.
//
// Steps:
//  1. Potentials: Bellman-Ford from a virtual vertex with 0-weight edges to
//     every real vertex gives h. A negative cycle halts here (ErrNegativeCycle).
//  2. Reweight every edge to w + h[u] − h[v], which is ≥ 0 for a feasible h.
//  3. Dijkstra from every vertex on the reweighted graph (WithWorkers runs the
//     sources concurrently; each writes only its own row).
//  4. Convert back: Dist[u][v] = d'(u,v) + h[v] − h[u].
//
// Complexity: Time O(V·E + V·(V+E) log V), Space O(V² + E).
func Johnson(g *core.View, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 1) Feasible potential or bust.
	h, err := Potentials(g)
	if err != nil {
		return nil, err
	}

	// 2) Reweight. A feasible h makes every weight ≥ 0 up to float round-off;
	//    the clamp removes that round-off so Dijkstra's precondition holds.
	rw := g.Reweight(func(e core.Edge) float64 {
		w := e.Weight + h[e.From] - h[e.To]
		if w < 0 {
			w = 0
		}
		return w
	})

	// 3) + 4) Per-source Dijkstra, converted back to original weights.
	n := g.Order()
	res := newResult(n)
	res.Prev = make([][]int, n)
	res.Potentials = h
	err = forEachSource(cfg, n, func(s int) error {
		dr, derr := dijkstra.Dijkstra(rw, dijkstra.Source(s))
		if derr != nil {
			return fmt.Errorf("apsp: johnson source %d: %w", s, derr)
		}
		row := res.Dist[s]
		for v, d := range dr.Dist {
			if d.Reachable() {
				row[v] = d.Add(h[v] - h[s])
			}
		}
		row[s] = 0
		res.Prev[s] = dr.Prev
		res.Next[s] = nextHopRow(dr.Prev, s)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Potentials returns Johnson's h vector for g: h[v] is the shortest distance to
// v from a virtual vertex joined to every vertex by a 0-weight edge, so h ≤ 0.
//
// Errors wrap bellmanford.ErrNegativeCycle when g contains a negative cycle.
//
// Complexity: O(V·E).
func Potentials(g *core.View) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	edges := make([]core.Edge, 0, g.Size()+n)
	edges = append(edges, g.Edges()...)
	for v := 0; v < n; v++ {
		edges = append(edges, core.Edge{From: n, To: v, Weight: 0})
	}
	aug, err := core.NewView(n+1, edges)
	if err != nil {
		return nil, fmt.Errorf("apsp: augment graph: %w", err)
	}

	bf, err := bellmanford.BellmanFord(aug, n)
	if err != nil {
		return nil, fmt.Errorf("apsp: johnson potentials: %w", err)
	}

	h := make([]float64, n)
	for v := 0; v < n; v++ {
		h[v] = bf.Dist[v].Float()
	}

	return h, nil
}
