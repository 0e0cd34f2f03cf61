// Package builder generates synthetic location graphs for tests, benchmarks
// and the "generate" CLI command.
//
// A Constructor adds vertices and edges to a *core.Graph; BuildGraph runs one
// or more constructors over a fresh graph with shared options:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeightFn(1, 20))},
//	    builder.Grid(10, 10),
//	)
//
// Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse.
//
// Determinism:
//
//	Vertex order, edge-trial order and weights are fixed for a given seed,
//	so generated graphs are reproducible across runs and worker counts.
//
// Errors:
//
//	ErrTooFewVertices      size parameter below the constructor's minimum.
//	ErrInvalidProbability  RandomSparse p outside [0, 1].
//	ErrNeedRandSource      stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed     nil graph or nil constructor.
package builder
