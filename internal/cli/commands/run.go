// Package commands implements the integ subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/integ/functions"
	"github.com/katalvlaran/integ/internal/bench"
	"github.com/katalvlaran/integ/internal/cli/config"
	"github.com/katalvlaran/integ/internal/metrics"
	"github.com/katalvlaran/integ/internal/problem"
	"github.com/katalvlaran/integ/internal/report"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a problem suite with the selected solvers",
		Long: `Solve every 1D problem of a suite with each selected solver and every 2D
problem with each nested pair, then print one row per solve.

Without --suite the builtin demo suite is used. Solvers are trapezoid,
simpson, gauss-legendre, monte-carlo and adaptive; pairs are written
outer:inner.`,
		Example: `  # Builtin suite, default solvers
  integ run

  # Only Gauss-Legendre of order 8 and adaptive, as CSV
  integ run --solvers gauss-legendre,adaptive --order 8 -o csv

  # Custom suite with a nested Gauss-Legendre/Simpson pair
  integ run --suite suites/tails.yaml --pairs gauss-legendre:simpson`,
		RunE: runRun,
	}

	f := cmd.Flags()
	f.String("suite", "", "YAML problem suite (default: builtin)")
	f.StringSlice("solvers", nil, "1D solvers to run")
	f.StringSlice("pairs", nil, "nested outer:inner pairs for 2D problems")
	f.Int("subdivisions", 0, "composite panels / adaptive panel cap")
	f.Int("samples", 0, "Monte Carlo samples")
	f.Uint64("seed", 0, "Monte Carlo seed")
	f.Bool("unseeded", false, "draw a fresh Monte Carlo seed per solve")
	f.Float64("tolerance", 0, "adaptive absolute tolerance")
	f.Float64("rel-tolerance", 0, "adaptive relative tolerance")
	f.Int("order", 0, "Gauss-Legendre order")
	f.Int("parallelism", 0, "concurrent solves")
	f.String("metrics-file", "", "write Prometheus metrics to this file")

	_ = cmd.RegisterFlagCompletionFunc("solvers", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return bench.SolverNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	suite := problem.BuiltinSuite()
	if cfg.Suite != "" {
		var err error
		if suite, err = problem.Load(cfg.Suite, functions.NewRegistry()); err != nil {
			return err
		}
	}
	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	rec := metrics.New()
	runner, err := bench.NewRunner(cfg.Solvers, cfg.Pairs, cfg.Params(),
		bench.WithLogger(logger),
		bench.WithMetrics(rec),
		bench.WithParallelism(cfg.Parallelism),
	)
	if err != nil {
		return err
	}

	rep, err := runner.Run(ctx, suite)
	if err != nil {
		return err
	}
	if err := report.Render(cmd.OutOrStdout(), rep, format); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", cfg.MetricsFile)
	}

	return nil
}
