package apsp

import (
	"fmt"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
)

// RepeatedBellmanFord runs Bellman-Ford once per source. Signed weights are
// allowed; any negative cycle fails the whole table with ErrNegativeCycle, as
// Johnson does. Mostly useful as an O(V²·E) cross-check for Johnson.
func RepeatedBellmanFord(g *core.View, opts ...Option) (*Result, error) {
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
		bf, berr := bellmanford.BellmanFord(g, s)
		if berr != nil {
			return fmt.Errorf("apsp: bellman-ford source %d: %w", s, berr)
		}
		res.Dist[s] = bf.Dist
		res.Prev[s] = bf.Prev
		res.Next[s] = nextHopRow(bf.Prev, s)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
