// SPDX-License-Identifier: MIT

// File: api.go
// Role: Read-only introspection of a Graph for diagnostics and solver selection.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int  // V
	EdgeCount     int  // directed edges, a bidirectional insert counts twice
	NegativeEdges int  // edges with weight < 0
	SelfLoops     int  // edges with From == To
	AllowsLoops   bool // false under WithoutLoops
}

// Stats scans the edge list once and returns a summary.
//
// Callers use NegativeEdges to decide whether a non-negative solver
// (Dijkstra, repeated Dijkstra) is applicable.
//
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adj),
		EdgeCount:   len(g.edges),
		AllowsLoops: !g.rejectLoops,
	}
	for _, e := range g.edges {
		if e.Weight < 0 {
			stats.NegativeEdges++
		}
		if e.From == e.To {
			stats.SelfLoops++
		}
	}

	return &stats
}
