package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/allpaths/builder"
)

type genFlags struct {
	seed          int64
	bidirectional bool
}

// newGenCmd prints a generated matrix in the input file format.
func newGenCmd() *cobra.Command {
	f := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen TOPOLOGY ARGS...",
		Short: "Generate an adjacency matrix file for a standard topology",
		Long: `Prints a directed adjacency matrix in the format allpaths reads.

Topologies:
  path N          0→1→…→N-1
  cycle N         path plus N-1→0
  complete N      every arc i→j, i≠j
  star N          hub 0 with arcs to 1..N-1
  grid R C        R×C lattice, arcs right and down, row-major numbering
  layered L W     source, L fully connected layers of W nodes, sink
  random N P      each arc with probability P (see --seed)

Examples:
  allpaths gen grid 3 3 > grid.txt
  allpaths gen random 8 0.3 --seed 42 --bidirectional`,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := parseTopology(args)
			if err != nil {
				return err
			}
			opts := []builder.Option{builder.WithSeed(f.seed)}
			if f.bidirectional {
				opts = append(opts, builder.WithBidirectional())
			}
			adj, err := builder.Build(con, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), adj)
			return err
		},
	}
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "RNG seed for random")
	cmd.Flags().BoolVar(&f.bidirectional, "bidirectional", false, "mirror every arc")
	return cmd
}

// parseTopology maps "NAME ints..." onto a builder.Constructor.
func parseTopology(args []string) (builder.Constructor, error) {
	name, rest := args[0], args[1:]
	ints := func(want int) ([]int, error) {
		if len(rest) != want {
			return nil, fmt.Errorf("%s takes %d argument(s), got %d", name, want, len(rest))
		}
		out := make([]int, want)
		for i, s := range rest {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%s: argument %q is not an integer", name, s)
			}
			out[i] = v
		}
		return out, nil
	}

	switch name {
	case "path", "cycle", "complete", "star":
		v, err := ints(1)
		if err != nil {
			return nil, err
		}
		return map[string]func(int) builder.Constructor{
			"path":     builder.Path,
			"cycle":    builder.Cycle,
			"complete": builder.Complete,
			"star":     builder.Star,
		}[name](v[0]), nil
	case "grid", "layered":
		v, err := ints(2)
		if err != nil {
			return nil, err
		}
		if name == "grid" {
			return builder.Grid(v[0], v[1]), nil
		}
		return builder.Layered(v[0], v[1]), nil
	case "random":
		if len(rest) != 2 {
			return nil, fmt.Errorf("random takes 2 arguments, got %d", len(rest))
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, fmt.Errorf("random: argument %q is not an integer", rest[0])
		}
		p, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return nil, fmt.Errorf("random: argument %q is not a number", rest[1])
		}
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", name)
	}
}
