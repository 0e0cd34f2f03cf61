// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Determinism:
//   - Edges() and Neighbors() return insertion order.
//   - A bidirectional insert appends u→v first, then v→u.
//
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the directed edge u→v with the given weight. When
// bidirectional is true it also inserts v→u with the same weight.
//
// Steps:
//  1. Validate weight (finite) and both endpoints (bound ids).
//  2. Apply the loop policy.
//  3. Append arcs and edges; nothing is written before validation passes.
//
// Errors:
//   - ErrInvalidWeight: weight is NaN or ±Inf.
//   - ErrUnknownVertex: u or v is not a bound id.
//   - ErrLoopNotAllowed: u == v under WithoutLoops.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64, bidirectional bool) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v on %d→%d", ErrInvalidWeight, weight, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(u) {
		return fmt.Errorf("%w: id %d", ErrUnknownVertex, u)
	}
	if !g.hasVertexLocked(v) {
		return fmt.Errorf("%w: id %d", ErrUnknownVertex, v)
	}
	if u == v && g.rejectLoops {
		return ErrLoopNotAllowed
	}

	g.insertLocked(u, v, weight)
	if bidirectional && u != v {
		g.insertLocked(v, u, weight)
	}

	return nil
}

// AddEdgeByName resolves both names and delegates to AddEdge.
func (g *Graph) AddEdgeByName(from, to string, weight float64, bidirectional bool) error {
	u, err := g.ID(from)
	if err != nil {
		return err
	}
	v, err := g.ID(to)
	if err != nil {
		return err
	}

	return g.AddEdge(u, v, weight, bidirectional)
}

func (g *Graph) insertLocked(u, v int, w float64) {
	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})
}

// Neighbors returns a copy of u's outgoing arcs.
// Errors wrap ErrUnknownVertex.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(u) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownVertex, u)
	}
	out := make([]Arc, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Edges returns a copy of every directed edge in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of directed edges (a bidirectional insert counts twice).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasNegativeWeight reports whether any edge weight is < 0.
// Complexity: O(E).
func (g *Graph) HasNegativeWeight() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}
