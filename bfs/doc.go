// Package bfs provides breadth-first search over an immutable core.View,
// returning hop counts, parent links and visit order.
//
// BFS ignores edge weights: it answers "how many connections away" and
// "what is reachable", which the weighted solvers do not report directly.
//
// Options:
//
//	WithContext(ctx)          cancellation, checked once per dequeue
//	WithMaxDepth(d)           stop expanding beyond d hops (0 = unlimited)
//	WithFilterNeighbor(fn)    skip arcs for which fn(u, arc) is false
//	WithOnVisit(fn)           hook per visited vertex; an error aborts the search
//
// Determinism:
//
//	Neighbors are expanded in adjacency (insertion) order, so Order and
//	Parent are stable for a given view.
//
// Complexity:
//
//	O(V + E) time, O(V) memory.
//
// Errors:
//
//	ErrGraphNil             nil view.
//	ErrStartVertexNotFound  source outside [0, V).
//	ErrOptionViolation      negative MaxDepth.
//	context errors          search canceled.
package bfs
