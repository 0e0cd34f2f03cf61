// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - ids are assigned in AddVertex call order; Names() is ordered by id.
//
// Concurrency:
//   - All methods take Graph.mu (write lock for AddVertex, read lock otherwise).

package core

// AddVertex binds name to the next free id and allocates its adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexName: name == "".
//   - ErrDuplicateVertex: name already bound. The graph is not modified.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := g.names.Bind(name)
	if err != nil {
		return NoVertex, err
	}
	g.adj = append(g.adj, nil)

	return id, nil
}

// HasVertex reports whether id is a bound vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(id)
}

func (g *Graph) hasVertexLocked(id int) bool { return id >= 0 && id < len(g.adj) }

// ID resolves a vertex name. Errors wrap ErrUnknownVertex.
func (g *Graph) ID(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.names.ID(name)
}

// Name resolves a vertex id. Errors wrap ErrUnknownVertex.
func (g *Graph) Name(id int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.names.Name(id)
}

// Names returns every vertex name ordered by id.
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.names.Names()
}

// VertexCount returns V.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}
