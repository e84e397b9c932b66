// Package cli wires the benchmark harness into the algobench command.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"algobench/pkg/bench"
	"algobench/pkg/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "algobench",
		Short: "Time textbook search, sort and tree algorithms over synthetic records",
		Long: `algobench generates a seeded dataset of synthetic people, checks
boolean identities over it, and times insertion sort, linear and binary
search, an unbalanced BST and reference indexes against each other.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config (default: configs/bench.yaml or bench.yaml if present)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// RunOverrides are per-command flags layered on top of the config file.
type RunOverrides struct {
	Sizes  []int
	Seed   int64
	SQLite bool
}

// loadConfig reads the config and applies flag overrides. Flags only win
// when they were set explicitly.
func loadConfig(opts *RootOptions, ov *RunOverrides, cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if cmd.Flags().Changed("size") {
		for _, n := range ov.Sizes {
			if n <= 0 {
				return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid size %d: must be positive", n))
			}
		}
		cfg.Benchmark.Sizes = ov.Sizes
	}
	if cmd.Flags().Changed("seed") {
		cfg.Benchmark.Seed = ov.Seed
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.Benchmark.SQLite = ov.SQLite
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}

func newRunner(cfg *config.Config, logger *slog.Logger) *bench.Runner {
	return bench.NewRunner(
		bench.WithLogger(logger),
		bench.WithInsertionSortMax(cfg.Benchmark.InsertionSortMax),
		bench.WithBTreeDegree(cfg.Benchmark.BTreeDegree),
		bench.WithLearnedFanout(cfg.Benchmark.LearnedFanout),
		bench.WithSQLite(cfg.Benchmark.SQLite),
	)
}

func addRunFlags(cmd *cobra.Command, ov *RunOverrides) {
	cmd.Flags().IntSliceVarP(&ov.Sizes, "size", "n", nil, "dataset size; repeat or comma-separate for several runs")
	cmd.Flags().Int64Var(&ov.Seed, "seed", 42, "generator seed")
	cmd.Flags().BoolVar(&ov.SQLite, "sqlite", false, "also time an in-memory SQLite primary-key lookup")
}
