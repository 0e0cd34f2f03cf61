// Package shortpath is a shortest-path engine for weighted networks of named
// locations: single-source solvers, all-pairs solvers and a navigation facade
// that answers routes by name.
//
// What is inside?
//
//	A thread-safe graph core with immutable solve snapshots, plus:
//		• Single source: Dijkstra (non-negative), Bellman-Ford (signed, cycle flags)
//		• All pairs: Floyd-Warshall, Johnson's, repeated Dijkstra / Bellman-Ford
//		• Hop counts: breadth-first reachability
//		• Inputs: YAML/JSON network files, plain edge lists, Neo4j
//		• A CLI: route, table, reach, algorithms, generate
//
// Layout:
//
//	core/        Graph, NameIndex, View snapshots, Distance (+Inf aware)
//	matrix/      dense row-major matrix backing the Floyd-Warshall table
//	paths/       path reconstruction from predecessor and next-hop tables
//	dijkstra/    lazy binary-heap Dijkstra with optional early exit
//	bellmanford/ V-1 relaxation rounds plus negative-cycle propagation
//	apsp/        all-pairs solvers sharing one Result and worker pool
//	bfs/         breadth-first search for hop counts and reachability
//	navigator/   Network of named locations; Route and Table answers
//	source/      network loaders and the Spec document
//	builder/     synthetic topologies for tests, benchmarks and generate
//	cmd/         the shortpath command
//
// Quick ASCII example:
//
//	    A──4──B
//	    │     │
//	    1     -2
//	    │     │
//	    C──5──D
//
//	with one-way arcs A→B, A→C, B→D, C→D: the negative arc needs a signed
//	solver; Bellman-Ford and Johnson's answer A→B→D = 2.
//
//	go install github.com/katalvlaran/shortpath/cmd/shortpath@latest
package shortpath
