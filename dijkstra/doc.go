// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over a core.View with non-negative edge weights.
//
// Overview:
//
//   - Distances start at core.Unreachable except the source (0).
//   - A min-heap keyed by tentative distance always expands the closest
//     unsettled vertex; its distance is then final.
//   - Decrease-key is emulated lazily: an improved distance is pushed as a new
//     entry and superseded entries are discarded when popped.
//   - WithTarget(dst) stops as soon as dst is popped. Because a popped vertex is
//     final, Dist[dst] and its predecessor chain are exact at that point.
//
// Negative weights:
//
//	By default edges are not checked. A negative weight makes the result
//	undefined (the run still terminates). Use WithValidation() to fail fast with
//	ErrNegativeWeight, or use package bellmanford for signed weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold up to E stale entries.
//
// API reference:
//
//	func Dijkstra(g *core.View, opts ...Option) (*Result, error)
//
//	  - Source(id)       required starting vertex.
//	  - WithTarget(id)   optional early exit.
//	  - WithValidation() optional negative-weight pre-scan.
//
//	Result.Dist[v]  shortest distance, core.Unreachable if none.
//	Result.Prev[v]  predecessor on that path, core.NoVertex for source/unreached.
//	Result.PathTo(v) rebuilds the vertex sequence (paths.ErrUnreachable if none).
//
// Thread safety:
//
//	A View is immutable, so any number of Dijkstra calls may share one.
package dijkstra
