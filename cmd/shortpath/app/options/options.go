// Package options holds the command-line configuration of shortpath.
package options

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/shortpath/navigator"
	"github.com/katalvlaran/shortpath/source"
)

// Output formats accepted by --output.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// Neo4jPasswordEnv supplies the default for --neo4j-password.
const Neo4jPasswordEnv = "SHORTPATH_NEO4J_PASSWORD"

// Options is the full flag surface shared by every subcommand.
type Options struct {
	// NetworkFile is a YAML or JSON network description.
	NetworkFile string
	// EdgeList is a plain "V / u v w / done" edge list; "-" reads stdin.
	EdgeList string
	// Neo4j is used when Neo4j.URI is set.
	Neo4j source.Neo4jConfig

	Algorithm string
	Workers   int
	Output    string
	Timeout   time.Duration
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		Algorithm: string(navigator.Dijkstra),
		Workers:   1,
		Output:    OutputTable,
		Timeout:   time.Minute,
		Neo4j: source.Neo4jConfig{
			Database: "neo4j",
			Username: "neo4j",
			Password: os.Getenv(Neo4jPasswordEnv),
		},
	}
}

// AddFlags registers the options on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.NetworkFile, "network", o.NetworkFile, "Path to a YAML or JSON network file.")
	fs.StringVar(&o.EdgeList, "edges", o.EdgeList, `Path to an edge list ("V", then "u v w" lines, then "done"). Use "-" for stdin.`)
	fs.StringVar(&o.Neo4j.URI, "neo4j-uri", o.Neo4j.URI, "Bolt URI of a Neo4j database holding (:Location)-[:ROAD]->(:Location).")
	fs.StringVar(&o.Neo4j.Database, "neo4j-database", o.Neo4j.Database, "Neo4j database name.")
	fs.StringVar(&o.Neo4j.Username, "neo4j-user", o.Neo4j.Username, "Neo4j user name.")
	fs.StringVar(&o.Neo4j.Password, "neo4j-password", o.Neo4j.Password, "Neo4j password. Defaults to $"+Neo4jPasswordEnv+".")
	fs.IntVar(&o.Neo4j.MaxConnections, "neo4j-max-connections", o.Neo4j.MaxConnections, "Neo4j connection pool size; 0 keeps the driver default.")
	fs.StringVarP(&o.Algorithm, "algorithm", "a", o.Algorithm,
		fmt.Sprintf("Solver to use, one of: %s.", strings.Join(algorithmList(), ", ")))
	fs.IntVar(&o.Workers, "workers", o.Workers, "Maximum goroutines for all-pairs solves.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Output format: json, yaml or table.")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Abort the solve after this long; 0 disables.")
}

func algorithmList() []string {
	all := navigator.Algorithms()
	out := make([]string, len(all))
	for i, a := range all {
		out[i] = a.String()
	}

	return out
}

// Validate checks the options and returns every problem found.
func (o *Options) Validate() []error {
	var errs []error

	sources := 0
	for _, set := range []bool{o.NetworkFile != "", o.EdgeList != "", o.Neo4j.URI != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		errs = append(errs, fmt.Errorf("exactly one of --network, --edges or --neo4j-uri is required, got %d", sources))
	}
	if _, err := navigator.ParseAlgorithm(o.Algorithm); err != nil {
		errs = append(errs, err)
	}
	if o.Workers < 1 {
		errs = append(errs, fmt.Errorf("--workers must be at least 1, got %d", o.Workers))
	}
	switch o.Output {
	case OutputJSON, OutputYAML, OutputTable:
	default:
		errs = append(errs, fmt.Errorf("--output must be json, yaml or table, got %q", o.Output))
	}
	if o.Timeout < 0 {
		errs = append(errs, fmt.Errorf("--timeout must not be negative, got %s", o.Timeout))
	}

	return errs
}

// SelectedAlgorithm returns the parsed --algorithm value. Call Validate first.
func (o *Options) SelectedAlgorithm() navigator.Algorithm {
	a, _ := navigator.ParseAlgorithm(o.Algorithm)
	return a
}

// LoadSpec reads the network description from whichever input is configured.
func (o *Options) LoadSpec(ctx context.Context) (*source.Spec, error) {
	switch {
	case o.NetworkFile != "":
		klog.V(2).InfoS("Loading network file", "path", o.NetworkFile)
		return source.LoadFile(o.NetworkFile)

	case o.EdgeList == "-":
		klog.V(2).InfoS("Reading edge list from stdin")
		return source.ParseEdgeList(os.Stdin)

	case o.EdgeList != "":
		klog.V(2).InfoS("Loading edge list", "path", o.EdgeList)
		f, err := os.Open(o.EdgeList)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return source.ParseEdgeList(f)

	case o.Neo4j.URI != "":
		klog.V(2).InfoS("Loading network from neo4j", "uri", o.Neo4j.URI, "database", o.Neo4j.Database)
		runner, err := source.NewNeo4jRunner(ctx, o.Neo4j)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := runner.Close(ctx); err != nil {
				klog.ErrorS(err, "Closing neo4j driver failed")
			}
		}()

		return source.NewNeo4jLoader(runner).Load(ctx)

	default:
		return nil, fmt.Errorf("no network input configured")
	}
}

// Network loads the configured input and builds it.
func (o *Options) Network(ctx context.Context) (*navigator.Network, error) {
	spec, err := o.LoadSpec(ctx)
	if err != nil {
		return nil, err
	}
	nw, err := spec.Build(navigator.WithWorkers(o.Workers))
	if err != nil {
		return nil, err
	}
	klog.V(2).InfoS("Built network", "locations", len(spec.Locations), "connections", len(spec.Connections))

	return nw, nil
}
