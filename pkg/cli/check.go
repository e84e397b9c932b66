package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"algobench/pkg/report"
)

// CheckReport is the payload of the check command.
type CheckReport struct {
	Runs   int      `json:"runs"`
	Failed []string `json:"failed"`
}

func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	ov := &RunOverrides{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the correctness sentinels for each configured size",
		Long: `Run the benchmark and verify its self-checks: the De Morgan identity
over the whole dataset, gcd(1071, 462) = 21, agreement of every lookup
strategy on the target id, and ascending id order of the tree walks.
Exits 1 if any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(rootOpts, ov, cmd)
		},
	}
	addRunFlags(cmd, ov)
	return cmd
}

func runChecks(opts *RootOptions, ov *RunOverrides, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts, ov, cmd)
	if err != nil {
		return err
	}
	runner := newRunner(cfg, newLogger(cfg.Log))

	rep := CheckReport{Failed: []string{}}
	for _, n := range cfg.Benchmark.Sizes {
		res, err := runner.Run(n, cfg.Benchmark.Seed)
		if err != nil {
			return WrapExitError(ExitCommandError, "benchmark failed", err)
		}
		rep.Runs++
		rep.Failed = append(rep.Failed, res.Sentinels()...)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		status := "ok"
		if len(rep.Failed) > 0 {
			status = "error"
		}
		if err := report.WriteJSON(out, report.Envelope{Status: status, Data: rep, TraceID: newTraceID()}); err != nil {
			return err
		}
	} else {
		for _, f := range rep.Failed {
			fmt.Fprintf(out, "FAIL %s\n", f)
		}
		if len(rep.Failed) == 0 {
			fmt.Fprintf(out, "ok: %d runs, all sentinels passed\n", rep.Runs)
		}
	}

	if len(rep.Failed) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d sentinel checks failed", len(rep.Failed)))
	}
	return nil
}
