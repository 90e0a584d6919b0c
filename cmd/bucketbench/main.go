// Command bucketbench compares the sequential and parallel bucket sort
// engines over generated datasets.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/azargarov/bucketsort/bench"
)

type runFlags struct {
	config        string
	sizes         []int
	worstSizes    []int
	distributions []string
	seed          uint64
	workers       int
	pin           bool
	format        string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "bucketbench",
		Short:        "Benchmark sequential against parallel bucket sort",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a benchmark sweep and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			rep, err := reporter(f.format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			r, err := bench.NewRunner(cfg, rep)
			if err != nil {
				return err
			}
			_, err = r.Run(cmd.Context())
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML sweep description")
	fl.IntSliceVar(&f.sizes, "sizes", nil, "dataset sizes for random and uniform inputs")
	fl.IntSliceVar(&f.worstSizes, "worst-sizes", nil, "dataset sizes for the worst case input")
	fl.StringSliceVarP(&f.distributions, "distributions", "d", nil, "random, uniform, worst-case")
	fl.Uint64Var(&f.seed, "seed", 0, "generator seed, 0 picks one from the clock")
	fl.IntVarP(&f.workers, "workers", "w", 0, "parallel engine pool size, 0 means one per CPU")
	fl.BoolVar(&f.pin, "pin", false, "pin pool workers to CPUs")
	fl.StringVar(&f.format, "format", "text", "report format: text or json")
	return cmd
}

// resolve loads the config file, if any, and lets explicitly set flags
// override it.
func (f *runFlags) resolve(cmd *cobra.Command) (bench.Config, error) {
	var cfg bench.Config
	if f.config != "" {
		c, err := bench.LoadConfig(f.config)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}

	fl := cmd.Flags()
	if fl.Changed("sizes") {
		cfg.Sizes = f.sizes
	}
	if fl.Changed("worst-sizes") {
		cfg.WorstCaseSizes = f.worstSizes
	}
	if fl.Changed("distributions") {
		cfg.Distributions = f.distributions
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("pin") {
		cfg.PinWorkers = f.pin
	}
	cfg.FillDefaults()
	return cfg, cfg.Validate()
}

func reporter(format string, w io.Writer) (bench.Reporter, error) {
	switch format {
	case "text", "":
		return bench.NewTextReporter(w), nil
	case "json":
		return bench.NewJSONReporter(w), nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
