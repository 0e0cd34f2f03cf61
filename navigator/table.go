package navigator

import (
	"context"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/shortpath/apsp"
	"github.com/katalvlaran/shortpath/core"
)

// Table is an all-pairs solution addressed by location name.
type Table struct {
	Algorithm Algorithm         `json:"algorithm"`
	Names     []string          `json:"names"`
	Dist      [][]core.Distance `json:"distances"`

	// NegativeCycle lists locations whose self-distance is negative
	// (Floyd-Warshall only; other solvers fail instead).
	NegativeCycle []string `json:"negativeCycle,omitempty"`

	index  map[string]int
	result *apsp.Result
}

// AllPairs solves every pair with alg. Dijkstra is served by repeated
// Dijkstra and Bellman-Ford by one run per source.
func (nw *Network) AllPairs(ctx context.Context, alg Algorithm) (*Table, error) {
	if _, ok := displayNames[alg]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	start := time.Now()
	view := nw.graph.Snapshot()
	res, err := nw.solveAll(ctx, view, alg)
	if err != nil {
		klog.V(2).InfoS("All-pairs solve failed", "algorithm", alg, "vertices", view.Order(), "err", err)
		return nil, err
	}
	klog.V(4).InfoS("Solved all pairs", "algorithm", alg, "vertices", view.Order(),
		"edges", view.Size(), "workers", nw.workers, "elapsed", time.Since(start))

	t := &Table{
		Algorithm: alg,
		Names:     view.Names(),
		Dist:      res.Dist,
		index:     make(map[string]int, view.Order()),
		result:    res,
	}
	for id, name := range t.Names {
		t.index[name] = id
	}
	for _, k := range res.CycleVertices() {
		t.NegativeCycle = append(t.NegativeCycle, t.Names[k])
	}

	return t, nil
}

func (t *Table) id(name string) (int, error) {
	id, ok := t.index[name]
	if !ok {
		return core.NoVertex, fmt.Errorf("%w: name %q", core.ErrUnknownVertex, name)
	}

	return id, nil
}

// Distance returns the src→dst distance.
func (t *Table) Distance(src, dst string) (core.Distance, error) {
	s, err := t.id(src)
	if err != nil {
		return core.Unreachable, err
	}
	d, err := t.id(dst)
	if err != nil {
		return core.Unreachable, err
	}

	return t.Dist[s][d], nil
}

// Route reconstructs the src→dst route from the table.
func (t *Table) Route(src, dst string) (*Route, error) {
	s, err := t.id(src)
	if err != nil {
		return nil, err
	}
	d, err := t.id(dst)
	if err != nil {
		return nil, err
	}
	if k := cycleBetween(t.result, s, d); k != core.NoVertex {
		return nil, fmt.Errorf("%w: vertex %s lies on a negative cycle between the endpoints", ErrNegativeCycle, t.Names[k])
	}
	ids, err := t.result.Path(s, d)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = t.Names[id]
	}

	return &Route{Path: names, Distance: t.Dist[s][d], Algorithm: t.Algorithm, Vertices: ids}, nil
}
