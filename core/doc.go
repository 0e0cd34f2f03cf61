// Package core provides the weighted directed graph consumed by every solver
// in this module, together with the name↔id binding and the Distance type.
//
// Model:
//
//   - Vertices are added by unique name and receive dense ids 0..V-1 in
//     insertion order (NameIndex). Solvers work on ids only; names are
//     resolved at the boundary.
//   - Edges are directed and weighted (float64, may be negative). An
//     undirected connection is sugar for two opposite directed edges of equal
//     weight (AddEdge(u, v, w, true)).
//   - Parallel edges are kept as a multiset. Self-loops are permitted unless
//     the graph was built WithoutLoops(); a non-negative loop never shortens a path.
//
// Representations:
//
//	Graph.Neighbors(u)   adjacency list, O(deg(u)) copy
//	Graph.Snapshot()     immutable View shared read-only by solvers
//	View.DenseMatrix()   fresh V×V grid: 0 diagonal, lightest edge weight, +Inf elsewhere
//
// Distances:
//
//	Distance is a float64 newtype with Unreachable (+Inf) as the sentinel.
//	Unreachable absorbs addition and orders after every finite value.
//
// Errors:
//
//	ErrEmptyVertexName  AddVertex("")
//	ErrDuplicateVertex  AddVertex with a bound name
//	ErrUnknownVertex    unbound id or name
//	ErrInvalidWeight    NaN / ±Inf weight
//	ErrLoopNotAllowed   self-loop under WithoutLoops()
//
// Structural errors abort the operation before any mutation.
//
// Thread safety:
//
//	Graph methods are guarded by a sync.RWMutex. A View is immutable and may be
//	shared by concurrent solves without synchronization.
package core
