// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves ids, names and edge insertion order exactly.
// Concurrency:
//   - Clone holds the read lock of the source; Clear holds the write lock.

package core

// Clone returns a deep copy of the Graph: loop policy, name binding, arcs and edges.
// Mutating either graph afterwards never affects the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		rejectLoops: g.rejectLoops,
		names:       newNameIndex(len(g.adj)),
		adj:         make([][]Arc, len(g.adj)),
		edges:       make([]Edge, len(g.edges)),
	}
	for _, name := range g.names.names {
		_, _ = clone.names.Bind(name) // names are already unique
	}
	for u, arcs := range g.adj {
		clone.adj[u] = append([]Arc(nil), arcs...)
	}
	copy(clone.edges, g.edges)

	return clone
}

// Clear removes every vertex and edge while keeping the loop policy.
// Ids are reassigned from 0 on the next AddVertex.
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.names = newNameIndex(0)
	g.adj = nil
	g.edges = nil
}
