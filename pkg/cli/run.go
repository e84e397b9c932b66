package cli

import (
	"github.com/spf13/cobra"

	"algobench/pkg/bench"
	"algobench/pkg/report"
)

func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	ov := &RunOverrides{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark for each configured size",
		Long: `Run the benchmark once per dataset size and print every result.

Example:
  algobench run
  algobench run --size 1000 --size 20000 --seed 7
  algobench run --format json --sqlite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmarks(rootOpts, ov, cmd)
		},
	}
	addRunFlags(cmd, ov)
	return cmd
}

func runBenchmarks(opts *RootOptions, ov *RunOverrides, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts, ov, cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)
	runner := newRunner(cfg, logger)

	results := make([]*bench.Result, 0, len(cfg.Benchmark.Sizes))
	for _, n := range cfg.Benchmark.Sizes {
		logger.Info("starting run", "n", n, "seed", cfg.Benchmark.Seed)
		res, err := runner.Run(n, cfg.Benchmark.Seed)
		if err != nil {
			return WrapExitError(ExitCommandError, "benchmark failed", err)
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return report.WriteJSON(out, report.Envelope{Status: "ok", Data: results, TraceID: newTraceID()})
	}
	return report.WriteText(out, results...)
}
