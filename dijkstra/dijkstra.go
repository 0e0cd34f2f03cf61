// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries whose stored distance no longer matches the best known.
//   - Ties in the heap are broken by vertex id so repeated solves are identical.
//   - Negative weights are not checked unless WithValidation is given.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be set (ErrNoSource) and exist (ErrVertexNotFound).
//  3. Target, if set, must exist (ErrVertexNotFound).
//  4. With WithValidation, no edge may be negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.View, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == core.NoVertex {
		return nil, ErrNoSource
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != core.NoVertex && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}
	if cfg.Validate {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 3) Run
	r := newRunner(g, cfg)
	r.process()

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev, Settled: r.settled}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.View
	target  int
	dist    []core.Distance
	prev    []int
	settled []bool
	pq      nodePQ
}

// newRunner sets dist = +∞, prev = none for every vertex, and pushes Source at 0.
func newRunner(g *core.View, cfg Options) *runner {
	n := g.Order()
	r := &runner{
		g:       g,
		target:  cfg.Target,
		dist:    make([]core.Distance, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Unreachable
		r.prev[v] = core.NoVertex
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process pops the closest vertex until the heap empties or the target settles.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Stale entry: a better distance was recorded after this push,
		// or u was already finalized.
		if r.settled[u] || item.dist > r.dist[u] {
			continue
		}
		r.settled[u] = true

		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax improves every neighbor reachable through an outgoing arc of u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, a := range r.g.Neighbors(u) {
		if r.settled[a.To] {
			continue
		}
		nd := du.Add(a.Weight)
		if !nd.Less(r.dist[a.To]) {
			continue
		}
		r.dist[a.To] = nd
		r.prev[a.To] = u
		heap.Push(&r.pq, nodeItem{id: a.To, dist: nd})
	}
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist core.Distance
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
