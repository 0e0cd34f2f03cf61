// Package apsp provides all-pairs shortest-path solvers over a core.View.
//
// Solvers:
//
//	FloydWarshall        dense O(V³) dynamic programming; signed weights; negative
//	                     cycles reported through a negative diagonal, not an error.
//	Johnson              Bellman-Ford potentials + per-source Dijkstra on the
//	                     reweighted graph; signed weights; fails with
//	                     ErrNegativeCycle. Better than FloydWarshall on sparse graphs.
//	RepeatedDijkstra     per-source Dijkstra baseline; non-negative weights only.
//	RepeatedBellmanFord  per-source Bellman-Ford; signed weights; O(V²·E) cross-check.
//
// Every solver returns a *Result with a full V×V distance table (core.Unreachable
// for unreachable pairs) and a next-hop table for O(path) reconstruction.
// Johnson, RepeatedDijkstra and RepeatedBellmanFord also keep the per-source predecessor trees.
//
// Concurrency:
//
//	WithWorkers(n) runs independent work on up to n goroutines: per-source rows
//	for the repeated solvers and Johnson, and row ranges within one intermediate-vertex
//	pass for FloydWarshall (pass k+1 starts only after pass k completes). The
//	graph View and Johnson's potential vector are read-only while workers run.
//	WithContext(ctx) cancels between rows or passes.
//
// Example:
//
//	res, err := apsp.Johnson(g.Snapshot(), apsp.WithWorkers(apsp.DefaultWorkers()))
//	if err != nil {
//	    return err
//	}
//	p, err := res.Path(src, dst)
package apsp
