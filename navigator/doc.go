// Package navigator is the named-location facade over the shortest-path solvers.
//
// A Network binds location names (with coordinates) to vertex ids, records
// weighted connections, and answers route queries by name:
//
//	nw := navigator.NewNetwork()
//	_, _ = nw.AddLocation("Library", 12.8411, 80.1540)
//	_, _ = nw.AddLocation("AB1", 12.8437, 80.1534)
//	_ = nw.AddConnection("Library", "AB1", 310, true)
//	route, err := nw.ShortestPath(ctx, "Library", "AB1", navigator.Dijkstra)
//
// Every solve works on a fresh immutable snapshot of the graph, so concurrent
// queries and concurrent edits do not interfere.
//
// Algorithm selectors: dijkstra, floyd-warshall, bellman-ford, johnsons,
// repeated-dijkstra. Anything else fails with ErrUnsupportedAlgorithm.
//
// Route is the contract with rendering collaborators: ordered location names,
// the distance (null in JSON when unreachable) and the algorithm used.
//
// Solve timings are logged through klog at verbosity 4; failures at 2.
package navigator
