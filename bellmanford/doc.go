// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm for graphs with signed edge weights.
//
// Algorithm:
//
//  1. dist[source] = 0, every other vertex core.Unreachable.
//  2. Up to V−1 passes relax every edge in insertion order; a pass that changes
//     nothing ends the loop early.
//  3. A verification pass checks whether any edge still admits improvement.
//     If so a negative-weight cycle is reachable from the source: every vertex
//     reachable from such an edge is flagged in Result.NegativeCycle and the call
//     returns the populated Result together with ErrNegativeCycle.
//
// The verification pass always runs. Johnson's algorithm relies on it as its
// feasibility check before reweighting.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
package bellmanford
