package apsp

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// RepeatedDijkstra runs Dijkstra once per source vertex. It is the baseline
// that FloydWarshall and Johnson are checked against, and shares Dijkstra's
// precondition: weights must be non-negative (not validated).
//
// Complexity: Time O(V·(V+E) log V), Space O(V² + E).
func RepeatedDijkstra(g *core.View, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := g.Order()
	res := newResult(n)
	res.Prev = make([][]int, n)
	err = forEachSource(cfg, n, func(s int) error {
		dr, derr := dijkstra.Dijkstra(g, dijkstra.Source(s))
		if derr != nil {
			return fmt.Errorf("apsp: repeated dijkstra source %d: %w", s, derr)
		}
		res.Dist[s] = dr.Dist
		res.Prev[s] = dr.Prev
		res.Next[s] = nextHopRow(dr.Prev, s)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
