// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:         id of the starting vertex (required).
//	– WithTarget:     stop as soon as this vertex is settled.
//	– WithValidation: pre-scan edges and reject negative weights.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided view pointer is nil.
//	– ErrNoSource        if no Source option was given.
//	– ErrVertexNotFound  if Source or Target is not a vertex of the view.
//	– ErrNegativeWeight  if WithValidation is set and a negative edge exists.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/paths"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.View was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that the Source option was not supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrVertexNotFound indicates that Source or Target is not in the graph.
	// It wraps core.ErrUnknownVertex so callers may match either.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrUnknownVertex)

	// ErrNegativeWeight indicates that validation found a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source   int  // id of the source vertex
	Target   int  // optional early-exit target; core.NoVertex disables
	Validate bool // pre-scan for negative weights
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id.
func Source(id int) Option {
	return func(o *Options) { o.Source = id }
}

// WithTarget stops the search once id is popped from the queue. The distance
// and predecessor chain of id are final at that point; entries for vertices
// not yet settled are upper bounds only.
func WithTarget(id int) Option {
	return func(o *Options) { o.Target = id }
}

// WithValidation enables an O(E) pre-scan that fails with ErrNegativeWeight.
// Without it, negative weights produce undefined (but terminating) results.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}

// DefaultOptions returns Options with no source, no target and no validation.
func DefaultOptions() Options {
	return Options{Source: core.NoVertex, Target: core.NoVertex}
}

// Result is the output of one Dijkstra solve.
//
// Dist[v] is the shortest distance Source→v (core.Unreachable if none).
// Prev[v] is v's predecessor on that path, core.NoVertex for Source and for
// unreached vertices. Settled[v] is true once v's distance is final.
type Result struct {
	Source  int
	Dist    []core.Distance
	Prev    []int
	Settled []bool
}

// PathTo reconstructs Source→…→dest from Prev.
// Fails with paths.ErrUnreachable when dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	return paths.FromPredecessors(r.Prev, r.Source, dest)
}
