package navigator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/shortpath/apsp"
	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// ErrNegativeCycle is returned when a negative cycle makes the requested
// route ill-defined. It matches bellmanford.ErrNegativeCycle and apsp.ErrNegativeCycle.
var ErrNegativeCycle = bellmanford.ErrNegativeCycle

// Route is the answer handed to rendering collaborators.
type Route struct {
	Path      []string      `json:"path"`
	Distance  core.Distance `json:"distance"`
	Algorithm Algorithm     `json:"algorithm"`

	// Vertices is Path as vertex ids.
	Vertices []int `json:"-"`
}

// Legs returns consecutive (from, to) name pairs along the route, the unit a
// map renderer requests turn-by-turn geometry for.
func (r *Route) Legs() [][2]string {
	if len(r.Path) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(r.Path)-1)
	for i := 0; i+1 < len(r.Path); i++ {
		out = append(out, [2]string{r.Path[i], r.Path[i+1]})
	}

	return out
}

// ShortestPath solves src→dst with the selected algorithm.
//
// Errors:
//   - core.ErrUnknownVertex: src or dst not registered.
//   - ErrUnsupportedAlgorithm: alg is not a known selector.
//   - ErrNegativeCycle: a negative cycle affects the pair.
//   - paths.ErrUnreachable: dst cannot be reached from src.
func (nw *Network) ShortestPath(ctx context.Context, src, dst string, alg Algorithm) (*Route, error) {
	if _, ok := displayNames[alg]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	s, err := nw.graph.ID(src)
	if err != nil {
		return nil, err
	}
	d, err := nw.graph.ID(dst)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	view := nw.graph.Snapshot()
	ids, dist, err := nw.solvePair(ctx, view, s, d, alg)
	if err != nil {
		klog.V(2).InfoS("Route solve failed", "algorithm", alg, "from", src, "to", dst, "err", err)
		return nil, err
	}

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = view.Name(id)
	}
	klog.V(4).InfoS("Solved route", "algorithm", alg, "from", src, "to", dst,
		"hops", len(ids)-1, "distance", dist, "vertices", view.Order(), "elapsed", time.Since(start))

	return &Route{Path: names, Distance: dist, Algorithm: alg, Vertices: ids}, nil
}

func (nw *Network) solvePair(ctx context.Context, view *core.View, s, d int, alg Algorithm) ([]int, core.Distance, error) {
	switch alg {
	case Dijkstra:
		res, err := dijkstra.Dijkstra(view, dijkstra.Source(s), dijkstra.WithTarget(d))
		if err != nil {
			return nil, core.Unreachable, err
		}
		p, err := res.PathTo(d)

		return p, res.Dist[d], err

	case BellmanFord:
		res, err := bellmanford.BellmanFord(view, s)
		if err != nil && !errors.Is(err, bellmanford.ErrNegativeCycle) {
			return nil, core.Unreachable, err
		}
		if res.NegativeCycle[d] {
			return nil, core.Unreachable, err
		}
		p, perr := res.PathTo(d)

		return p, res.Dist[d], perr

	default:
		res, err := nw.solveAll(ctx, view, alg)
		if err != nil {
			return nil, core.Unreachable, err
		}
		if cyc := cycleBetween(res, s, d); cyc != core.NoVertex {
			return nil, core.Unreachable, fmt.Errorf("%w: vertex %s lies on a negative cycle between the endpoints", ErrNegativeCycle, view.Name(cyc))
		}
		p, err := res.Path(s, d)

		return p, res.Dist[s][d], err
	}
}

// cycleBetween returns a vertex k with Dist[k][k] < 0 that lies on some
// s→k→d walk, or core.NoVertex.
func cycleBetween(res *apsp.Result, s, d int) int {
	for _, k := range res.CycleVertices() {
		if res.Dist[s][k].Reachable() && res.Dist[k][d].Reachable() {
			return k
		}
	}

	return core.NoVertex
}

// solveAll runs an all-pairs solve for alg on view.
// Dijkstra maps to RepeatedDijkstra; BellmanFord runs once per source.
func (nw *Network) solveAll(ctx context.Context, view *core.View, alg Algorithm) (*apsp.Result, error) {
	opts := []apsp.Option{apsp.WithContext(ctx), apsp.WithWorkers(nw.workers)}
	switch alg {
	case FloydWarshall:
		return apsp.FloydWarshall(view, opts...)
	case Johnsons:
		return apsp.Johnson(view, opts...)
	case RepeatedDijkstra, Dijkstra:
		return apsp.RepeatedDijkstra(view, opts...)
	case BellmanFord:
		return apsp.RepeatedBellmanFord(view, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}
