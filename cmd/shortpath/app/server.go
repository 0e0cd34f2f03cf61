// Package app wires the shortpath command tree.
package app

import (
	"context"
	goflag "flag"
	"fmt"

	"github.com/spf13/cobra"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/shortpath/cmd/shortpath/app/options"
	"github.com/katalvlaran/shortpath/navigator"
	"github.com/katalvlaran/shortpath/source"
)

const ComponentName = "shortpath"

// NewShortpathCmd returns the root command with its route, table, reach,
// algorithms and generate subcommands.
func NewShortpathCmd() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   ComponentName,
		Short: "Shortest paths over a named location network",
		Long: `shortpath loads a weighted location network from a file, an edge list or a
Neo4j database, and answers single-pair routes or all-pairs distance tables
with Dijkstra, Bellman-Ford, Floyd-Warshall, Johnson's or repeated Dijkstra.`,
		SilenceUsage: true,
	}

	opts.AddFlags(cmd.PersistentFlags())
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	cmd.MarkPersistentFlagFilename("network", "yaml", "yml", "json")

	cmd.AddCommand(
		newRouteCmd(opts),
		newTableCmd(opts),
		newAlgorithmsCmd(),
		newReachCmd(opts),
		newGenerateCmd(),
	)

	return cmd
}

func newRouteCmd(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, opts, args[0], args[1])
		},
	}
}

func newTableCmd(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the all-pairs distance table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTable(cmd, opts)
		},
	}
}

func newReachCmd(opts *options.Options) *cobra.Command {
	var maxHops int
	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "List locations reachable from FROM with hop counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReach(cmd, opts, args[0], maxHops)
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "Stop after this many connections; 0 means unbounded.")

	return cmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, a := range navigator.Algorithms() {
				neg := "non-negative weights"
				if a.SupportsNegativeWeights() {
					neg = "signed weights"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %-18s %s\n", a, a.DisplayName(), neg)
			}
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	gen := options.NewGenerateOptions()
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a synthetic network file",
		Long: `generate builds a reproducible network (path, cycle, star, complete, grid or
random) with integer weights and prints it in the --network file format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, gen)
		},
	}
	gen.AddFlags(cmd.Flags())

	return cmd
}

// prepare validates opts and loads the network under the configured timeout.
func prepare(cmd *cobra.Command, opts *options.Options) (context.Context, context.CancelFunc, *navigator.Network, error) {
	if errs := opts.Validate(); len(errs) > 0 {
		return nil, nil, nil, utilerrors.NewAggregate(errs)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cancel := context.CancelFunc(func() {})
	if opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
	}

	nw, err := opts.Network(ctx)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return ctx, cancel, nw, nil
}

func runRoute(cmd *cobra.Command, opts *options.Options, from, to string) error {
	ctx, cancel, nw, err := prepare(cmd, opts)
	if err != nil {
		return err
	}
	defer cancel()

	alg := opts.SelectedAlgorithm()
	klog.V(2).InfoS("Solving route", "algorithm", alg.DisplayName(), "from", from, "to", to)
	route, err := nw.ShortestPath(ctx, from, to, alg)
	if err != nil {
		return err
	}

	return writeRoute(cmd.OutOrStdout(), opts.Output, route)
}

func runTable(cmd *cobra.Command, opts *options.Options) error {
	ctx, cancel, nw, err := prepare(cmd, opts)
	if err != nil {
		return err
	}
	defer cancel()

	alg := opts.SelectedAlgorithm()
	klog.V(2).InfoS("Solving all pairs", "algorithm", alg.DisplayName(), "workers", opts.Workers)
	table, err := nw.AllPairs(ctx, alg)
	if err != nil {
		return err
	}
	if len(table.NegativeCycle) > 0 {
		klog.InfoS("Negative cycle detected", "locations", table.NegativeCycle)
	}

	return writeTable(cmd.OutOrStdout(), opts.Output, table)
}

func runReach(cmd *cobra.Command, opts *options.Options, from string, maxHops int) error {
	ctx, cancel, nw, err := prepare(cmd, opts)
	if err != nil {
		return err
	}
	defer cancel()

	reached, err := nw.Reachable(ctx, from, maxHops)
	if err != nil {
		return err
	}

	return writeReach(cmd.OutOrStdout(), opts.Output, reached)
}

func runGenerate(cmd *cobra.Command, gen *options.GenerateOptions) error {
	if errs := gen.Validate(); len(errs) > 0 {
		return utilerrors.NewAggregate(errs)
	}
	g, err := gen.Graph()
	if err != nil {
		return err
	}
	stats := g.Stats()
	klog.V(2).InfoS("Generated network", "topology", gen.Topology, "locations", stats.VertexCount, "edges", stats.EdgeCount)

	spec := source.FromGraph(g)
	if gen.Format == options.OutputJSON {
		return writeJSON(cmd.OutOrStdout(), spec)
	}

	return writeYAML(cmd.OutOrStdout(), spec)
}
