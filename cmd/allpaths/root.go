package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/allpaths/internal/config"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

type rootFlags struct {
	configPath  string
	input       string
	start       int
	end         int
	jsonOutput  bool
	maxPaths    int
	logLevel    string
	watch       bool
	metricsAddr string
}

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "allpaths [flags] [FILE]",
		Short: "Print every shortest path between two nodes of a directed graph",
		Long: `Reads an adjacency matrix, one parenthesized row per line:

  (0, 1, 1, 0)
  (1, 0, 0, 0)
  (1, 0, 0, 1)
  (0, 0, 1, 0)

and prints every path from --start to --end that uses the fewest edges.
Nodes are numbered from 0 in row order. Self-edges are ignored.

Examples:
  allpaths -s 0 -e 3 graph.txt
  allpaths -s 0 -e 3 --json graph.txt
  allpaths --config allpaths.yaml --watch --metrics-addr :9090`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.AddCommand(newGenCmd())

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file; flags override its values")
	fl.StringVarP(&f.input, "input", "i", "", "adjacency matrix file (or pass FILE)")
	fl.IntVarP(&f.start, "start", "s", 0, "start node index")
	fl.IntVarP(&f.end, "end", "e", 0, "end node index")
	fl.BoolVar(&f.jsonOutput, "json", false, "print the result as JSON")
	fl.IntVar(&f.maxPaths, "max-paths", 0, "stop after this many paths (0 = all)")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (default info)")
	fl.BoolVarP(&f.watch, "watch", "w", false, "recompute whenever FILE changes")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (watch mode only)")

	return cmd
}

// resolveConfig layers defaults, the optional config file, explicitly set
// flags and the positional FILE, then validates the result.
func resolveConfig(cmd *cobra.Command, f *rootFlags, args []string) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Input = f.input
	}
	if len(args) == 1 {
		if fl.Changed("input") && args[0] != f.input {
			return nil, fmt.Errorf("both --input %q and FILE %q given", f.input, args[0])
		}
		cfg.Input = args[0]
	}
	if fl.Changed("start") {
		cfg.Start = &f.start
	}
	if fl.Changed("end") {
		cfg.End = &f.end
	}
	if fl.Changed("json") {
		cfg.Format = config.FormatText
		if f.jsonOutput {
			cfg.Format = config.FormatJSON
		}
	}
	if fl.Changed("max-paths") {
		cfg.MaxPaths = f.maxPaths
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("watch") {
		cfg.Watch = f.watch
	}
	if fl.Changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
