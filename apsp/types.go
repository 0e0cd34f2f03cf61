package apsp

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/paths"
)

// Sentinel errors for all-pairs solvers.
var (
	// ErrNilGraph indicates that a nil *core.View was passed.
	ErrNilGraph = errors.New("apsp: graph is nil")

	// ErrNegativeCycle is returned by Johnson when the potential computation
	// finds a negative cycle. It is the bellmanford sentinel, so errors.Is
	// matches either name.
	ErrNegativeCycle = bellmanford.ErrNegativeCycle

	// ErrBadWorkers indicates WithWorkers received a value < 1.
	ErrBadWorkers = errors.New("apsp: workers must be >= 1")
)

// Options configures the all-pairs solvers.
type Options struct {
	// Ctx is checked between per-source runs (Johnson, RepeatedDijkstra) and
	// between passes (FloydWarshall). Defaults to context.Background().
	Ctx context.Context

	// Workers bounds the number of goroutines used for independent rows.
	// 1 runs everything on the calling goroutine.
	Workers int
}

// Option represents a functional option for the all-pairs solvers.
type Option func(*Options)

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithWorkers sets the worker count. Values < 1 cause ErrBadWorkers at solve time.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// DefaultOptions runs serially under context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 1}
}

// DefaultWorkers is a reasonable WithWorkers value for CPU-bound solves.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}
	if cfg.Workers < 1 {
		return cfg, fmt.Errorf("%w: got %d", ErrBadWorkers, cfg.Workers)
	}

	return cfg, nil
}

// Result is a full V×V all-pairs solution.
//
// Dist[i][j] is the shortest i→j distance (core.Unreachable if none).
// Next[i][j] is the vertex following i on that path, core.NoVertex if j is
// unreachable from i, and i itself when i == j.
// Prev[i] is the predecessor tree of the per-source Dijkstra run rooted at i
// (Johnson, RepeatedDijkstra); nil for FloydWarshall.
// Potentials is Johnson's h vector; nil for the other solvers.
type Result struct {
	Dist       [][]core.Distance
	Next       [][]int
	Prev       [][]int
	Potentials []float64
}

// Order returns V.
func (r *Result) Order() int { return len(r.Dist) }

// Distance returns Dist[i][j], or core.Unreachable when i or j is out of range.
func (r *Result) Distance(i, j int) core.Distance {
	if i < 0 || i >= len(r.Dist) || j < 0 || j >= len(r.Dist) {
		return core.Unreachable
	}

	return r.Dist[i][j]
}

// Path reconstructs i→…→j. Per-source predecessor trees are preferred when
// present because a tree walk cannot cycle even across zero-weight cycles;
// otherwise the next-hop table is walked.
func (r *Result) Path(i, j int) ([]int, error) {
	if r.Prev != nil && i >= 0 && i < len(r.Prev) {
		return paths.FromPredecessors(r.Prev[i], i, j)
	}

	return paths.FromNextHop(r.Next, i, j)
}

// NegativeCycle reports whether any diagonal entry is negative.
// Only FloydWarshall can produce such a Result; Johnson fails instead.
func (r *Result) NegativeCycle() bool {
	for i := range r.Dist {
		if r.Dist[i][i] < 0 {
			return true
		}
	}

	return false
}

// CycleVertices lists every i with Dist[i][i] < 0, ascending.
func (r *Result) CycleVertices() []int {
	var out []int
	for i := range r.Dist {
		if r.Dist[i][i] < 0 {
			out = append(out, i)
		}
	}

	return out
}

// newResult allocates V×V tables filled with Unreachable / NoVertex.
func newResult(n int) *Result {
	r := &Result{Dist: make([][]core.Distance, n), Next: make([][]int, n)}
	for i := 0; i < n; i++ {
		r.Dist[i] = make([]core.Distance, n)
		r.Next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			r.Dist[i][j] = core.Unreachable
			r.Next[i][j] = core.NoVertex
		}
	}

	return r
}
