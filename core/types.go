// File: types.go
// Role: Sentinel errors, Edge/Arc, GraphOption and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexName  - vertex name is the empty string.
//	ErrDuplicateVertex  - a name is already bound to a vertex id.
//	ErrUnknownVertex    - an id or name is not bound.
//	ErrInvalidWeight    - edge weight is NaN or ±Inf.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates that an empty name was passed to AddVertex.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates that a name is already bound to a vertex.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownVertex indicates an operation referenced an unbound vertex id or name.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NoVertex marks "no vertex" in predecessor and next-hop tables.
const NoVertex = -1

// Edge is one directed, weighted connection From→To.
type Edge struct {
	From   int     // source vertex id
	To     int     // destination vertex id
	Weight float64 // may be negative
}

// Arc is the adjacency-list form of an Edge seen from its source vertex.
type Arc struct {
	To     int
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops rejects self-loops with ErrLoopNotAllowed.
// Loops are permitted by default; they never shorten a path.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.rejectLoops = true }
}

// WithCapacity preallocates storage for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adj = make([][]Arc, 0, n)
			g.names = newNameIndex(n)
		}
	}
}

// Graph is a weighted directed graph over dense integer vertex ids.
//
// Vertices are added by name and receive ids 0,1,2,… in insertion order.
// Edges are kept as a multiset: parallel edges of differing weight are all
// retained. mu guards every field; solvers never read a Graph directly but a
// View obtained from Snapshot.
type Graph struct {
	mu sync.RWMutex

	rejectLoops bool

	names *NameIndex // name ↔ id binding
	adj   [][]Arc    // adj[u] = outgoing arcs of u, insertion order
	edges []Edge     // every directed edge, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{names: newNameIndex(0)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
