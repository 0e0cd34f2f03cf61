package options

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
)

// Topologies accepted by generate --topology.
const (
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyComplete = "complete"
	TopologyGrid     = "grid"
	TopologyRandom   = "random"
)

// GenerateOptions configures the synthetic network generator.
type GenerateOptions struct {
	Topology    string
	Vertices    int
	Rows        int
	Cols        int
	Probability float64
	Seed        int64
	MinWeight   int
	MaxWeight   int
	Directed    bool
	Prefix      string
	Format      string
}

// NewGenerateOptions returns GenerateOptions with defaults applied.
func NewGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		Topology:    TopologyRandom,
		Vertices:    10,
		Rows:        3,
		Cols:        3,
		Probability: 0.3,
		Seed:        1,
		MinWeight:   1,
		MaxWeight:   10,
		Format:      OutputYAML,
	}
}

// AddFlags registers the generator flags on fs.
func (o *GenerateOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Topology, "topology", o.Topology, "One of path, cycle, star, complete, grid or random.")
	fs.IntVarP(&o.Vertices, "vertices", "n", o.Vertices, "Vertex count for every topology except grid.")
	fs.IntVar(&o.Rows, "rows", o.Rows, "Grid rows.")
	fs.IntVar(&o.Cols, "cols", o.Cols, "Grid columns.")
	fs.Float64VarP(&o.Probability, "probability", "p", o.Probability, "Edge probability for the random topology.")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "Random seed for weights and edges.")
	fs.IntVar(&o.MinWeight, "min-weight", o.MinWeight, "Smallest integer edge weight; may be negative.")
	fs.IntVar(&o.MaxWeight, "max-weight", o.MaxWeight, "Largest integer edge weight.")
	fs.BoolVar(&o.Directed, "directed", o.Directed, "Emit one-way connections (grid stays two-way).")
	fs.StringVar(&o.Prefix, "prefix", o.Prefix, "Prefix for generated location names.")
	fs.StringVar(&o.Format, "format", o.Format, "Output format: yaml or json.")
}

// Validate checks the generator flags.
func (o *GenerateOptions) Validate() []error {
	var errs []error
	if _, err := o.Constructor(); err != nil {
		errs = append(errs, err)
	}
	if o.MaxWeight < o.MinWeight {
		errs = append(errs, fmt.Errorf("--max-weight %d is below --min-weight %d", o.MaxWeight, o.MinWeight))
	}
	if o.Format != OutputYAML && o.Format != OutputJSON {
		errs = append(errs, fmt.Errorf("unsupported --format %q, want yaml or json", o.Format))
	}

	return errs
}

// Constructor maps --topology to a builder constructor. Size checks happen
// when the constructor runs.
func (o *GenerateOptions) Constructor() (builder.Constructor, error) {
	switch o.Topology {
	case TopologyPath:
		return builder.Path(o.Vertices), nil
	case TopologyCycle:
		return builder.Cycle(o.Vertices), nil
	case TopologyStar:
		return builder.Star(o.Vertices), nil
	case TopologyComplete:
		return builder.Complete(o.Vertices), nil
	case TopologyGrid:
		return builder.Grid(o.Rows, o.Cols), nil
	case TopologyRandom:
		return builder.RandomSparse(o.Vertices, o.Probability), nil
	default:
		return nil, fmt.Errorf("unknown --topology %q", o.Topology)
	}
}

// Graph runs the selected constructor.
func (o *GenerateOptions) Graph() (*core.Graph, error) {
	cons, err := o.Constructor()
	if err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(o.Seed),
		builder.WithWeightFn(builder.IntWeightFn(o.MinWeight, o.MaxWeight)),
	}
	if o.Prefix != "" {
		bopts = append(bopts, builder.WithIDFn(builder.PrefixIDFn(o.Prefix)))
	}
	if o.Directed {
		bopts = append(bopts, builder.WithDirected())
	}

	return builder.BuildGraph(nil, bopts, cons)
}
