package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/converters"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dfs"
)

// notFound is printed in place of a path when a query finds none.
const notFound = "None"

// app holds flag values and the logger for one command invocation.
type app struct {
	graphFile string
	from      string
	to        string
	maxDepth  int
	timeout   time.Duration
	verbose   bool

	logger *zap.Logger
}

// newRootCmd builds the pathdemo command with fresh flag state.
func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "pathdemo",
		Short: "Find paths between two vertices of a directed graph",
		Long: `pathdemo runs three depth-first path queries between --from and --to:
the first path found, every simple path, and the shortest path.

The graph is read from a YAML adjacency document (--graph) or defaults to
the built-in demonstration graph.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&a.graphFile, "graph", "", "YAML adjacency document (default: built-in demonstration graph)")
	cmd.Flags().StringVar(&a.from, "from", "A", "Start vertex")
	cmd.Flags().StringVar(&a.to, "to", "D", "End vertex")
	cmd.Flags().IntVar(&a.maxDepth, "max-depth", -1, "Maximum number of edges per path (-1: unlimited)")
	cmd.Flags().DurationVar(&a.timeout, "timeout", 30*time.Second, "Query timeout")
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

// loadGraph returns the graph named by --graph, or the demonstration graph.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.graphFile == "" {
		a.logger.Debug("Using demonstration graph")
		return builder.BuildGraph(nil, builder.Sample())
	}
	a.logger.Debug("Loading graph", zap.String("path", a.graphFile))

	return converters.LoadFile(a.graphFile)
}

// run executes the three queries and prints the results to out.
func (a *app) run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	g, err := a.loadGraph()
	if err != nil {
		a.logger.Error("Failed to load graph", zap.Error(err))
		return err
	}
	a.logger.Info("Graph loaded",
		zap.Int("vertices", g.Order()),
		zap.Int("edges", g.Size()))

	doc, err := converters.ToYAML(g)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Input graph-")
	fmt.Fprint(out, string(doc))

	opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithMaxDepth(a.maxDepth)}

	path, err := dfs.FindPath(g, a.from, a.to, opts...)
	if err = a.check("FindPath", err); err != nil {
		return err
	}
	fmt.Fprintf(out, "Get path from start to end nodes: %s\n", formatPath(path))

	all, err := dfs.FindAllPaths(g, a.from, a.to, opts...)
	if err = a.check("FindAllPaths", err); err != nil {
		return err
	}
	fmt.Fprintf(out, "All paths from start to end node: %v\n", all)

	shortest, err := dfs.FindShortestPath(g, a.from, a.to, opts...)
	if err = a.check("FindShortestPath", err); err != nil {
		return err
	}
	fmt.Fprintf(out, "Get Shortest paths from start to end node: %s\n", formatPath(shortest))

	return nil
}

// check logs a query outcome and swallows ErrPathNotFound, which is a
// result rather than a failure.
func (a *app) check(query string, err error) error {
	switch {
	case err == nil:
		a.logger.Debug("Query finished", zap.String("query", query), zap.String("from", a.from), zap.String("to", a.to))
		return nil
	case errors.Is(err, dfs.ErrPathNotFound):
		a.logger.Debug("No path", zap.String("query", query), zap.String("from", a.from), zap.String("to", a.to))
		return nil
	default:
		a.logger.Error("Query failed", zap.String("query", query), zap.Error(err))
		return fmt.Errorf("%s: %w", query, err)
	}
}

// formatPath renders a path like fmt's %v, or notFound for a nil path.
func formatPath(p []string) string {
	if p == nil {
		return notFound
	}

	return fmt.Sprint(p)
}
