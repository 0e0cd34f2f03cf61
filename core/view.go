// File: view.go
// Role: Immutable, read-only snapshots of a Graph handed to solvers.
//
// A View is never mutated after construction, so one View may be shared by
// any number of concurrent solves without locking. Neighbors returns the
// View's internal slice; callers must treat it as read-only.

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/matrix"
)

// View is a frozen adjacency list plus edge list over ids 0..Order()-1.
type View struct {
	names []string // optional; nil for synthetic views
	adj   [][]Arc
	edges []Edge
}

// Snapshot freezes the current topology into a View.
// Later mutations of g are not visible through the returned View.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := &View{
		names: g.names.Names(),
		adj:   make([][]Arc, len(g.adj)),
		edges: make([]Edge, len(g.edges)),
	}
	for u, arcs := range g.adj {
		v.adj[u] = append([]Arc(nil), arcs...)
	}
	copy(v.edges, g.edges)

	return v
}

// NewView builds a View over order vertices from a raw edge list.
// It is used to construct synthetic graphs (e.g. with an added virtual source).
//
// Errors:
//   - ErrUnknownVertex if an endpoint is outside [0, order).
//   - ErrInvalidWeight if a weight is NaN or ±Inf.
//
// Complexity: O(V + E).
func NewView(order int, edges []Edge) (*View, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: negative order %d", ErrUnknownVertex, order)
	}
	v := &View{adj: make([][]Arc, order), edges: make([]Edge, 0, len(edges))}
	for _, e := range edges {
		if e.From < 0 || e.From >= order || e.To < 0 || e.To >= order {
			return nil, fmt.Errorf("%w: edge %d→%d outside [0,%d)", ErrUnknownVertex, e.From, e.To, order)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: %v on %d→%d", ErrInvalidWeight, e.Weight, e.From, e.To)
		}
		v.adj[e.From] = append(v.adj[e.From], Arc{To: e.To, Weight: e.Weight})
		v.edges = append(v.edges, e)
	}

	return v, nil
}

// Order returns the number of vertices V.
func (v *View) Order() int { return len(v.adj) }

// Size returns the number of directed edges E.
func (v *View) Size() int { return len(v.edges) }

// HasVertex reports whether id is in [0, Order()).
func (v *View) HasVertex(id int) bool { return id >= 0 && id < len(v.adj) }

// Neighbors returns u's outgoing arcs (read-only, shared). Out-of-range u yields nil.
func (v *View) Neighbors(u int) []Arc {
	if !v.HasVertex(u) {
		return nil
	}

	return v.adj[u]
}

// Edges returns the edge list (read-only, shared) in insertion order.
func (v *View) Edges() []Edge { return v.edges }

// Name returns the bound name of id, or "#id" for synthetic views.
func (v *View) Name(id int) string {
	if id >= 0 && id < len(v.names) {
		return v.names[id]
	}

	return fmt.Sprintf("#%d", id)
}

// Names returns a copy of the vertex names, or nil for synthetic views.
func (v *View) Names() []string {
	if v.names == nil {
		return nil
	}

	return append([]string(nil), v.names...)
}

// MinWeight returns the smallest weight among parallel edges u→v.
// ok is false when no such edge exists.
// Complexity: O(deg(u)).
func (v *View) MinWeight(u, w int) (weight float64, ok bool) {
	weight = math.Inf(1)
	for _, a := range v.Neighbors(u) {
		if a.To == w && a.Weight < weight {
			weight, ok = a.Weight, true
		}
	}

	return weight, ok
}

// HasNegativeWeight reports whether any edge weight is < 0.
func (v *View) HasNegativeWeight() bool {
	for _, e := range v.edges {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}

// Reweight returns a View with identical topology whose edge weights are fn(e).
// Names are carried over. Complexity: O(V + E).
func (v *View) Reweight(fn func(e Edge) float64) *View {
	out := &View{
		names: v.names,
		adj:   make([][]Arc, len(v.adj)),
		edges: make([]Edge, len(v.edges)),
	}
	for i, e := range v.edges {
		e.Weight = fn(e)
		out.edges[i] = e
		out.adj[e.From] = append(out.adj[e.From], Arc{To: e.To, Weight: e.Weight})
	}

	return out
}

// DenseMatrix returns a fresh V×V distance grid:
//
//	diag = 0, or the weight of the lightest self-loop when that is negative;
//	(i,j) = lightest i→j edge weight; +Inf where no edge exists.
//
// Positive self-loops never replace the 0 diagonal.
// Complexity: O(V² + E).
func (v *View) DenseMatrix() *matrix.Dense {
	n := len(v.adj)
	m, _ := matrix.NewFilled(n, n, math.Inf(1)) // n >= 0 always
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 0)
	}
	for _, e := range v.edges {
		cur, _ := m.At(e.From, e.To)
		if e.Weight < cur {
			_ = m.Set(e.From, e.To, e.Weight)
		}
	}

	return m
}

// DenseMatrix snapshots g and returns its dense distance grid.
func (g *Graph) DenseMatrix() *matrix.Dense { return g.Snapshot().DenseMatrix() }
