// Package paths rebuilds explicit vertex sequences from solver output.
//
// Two table shapes are supported:
//
//   - Predecessor tables (single-source): prev[v] is the vertex preceding v on
//     a shortest path from the solved source, or core.NoVertex.
//     FromPredecessors walks backward from the destination and reverses.
//   - Next-hop tables (all-pairs): next[i][j] is the vertex following i on a
//     shortest i→j path, or core.NoVertex. FromNextHop walks forward.
//
// A destination that cannot be reached yields ErrUnreachable. A table that
// loops without reaching its target (possible only when a negative cycle
// corrupted it) yields ErrBrokenChain after at most V steps.
//
// Weight sums a reconstructed path against a core.View and is the check used
// to confirm that a path's edge weights add up to the reported distance.
package paths
