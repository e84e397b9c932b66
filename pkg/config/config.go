package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Log       LogConfig       `yaml:"log"`
}

type BenchmarkConfig struct {
	Sizes            []int `yaml:"sizes"`              // dataset sizes, run in order
	Seed             int64 `yaml:"seed"`               // generator seed shared by every size
	InsertionSortMax int   `yaml:"insertion_sort_max"` // insertion sort is timed only when n <= this
	BTreeDegree      int   `yaml:"btree_degree"`
	LearnedFanout    int   `yaml:"learned_fanout"`
	SQLite           bool  `yaml:"sqlite"` // also time an in-memory SQLite primary-key lookup
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// SearchPaths are tried in order when Load is given an empty path.
var SearchPaths = []string{"configs/bench.yaml", "bench.yaml"}

func Default() *Config {
	return &Config{
		Benchmark: BenchmarkConfig{
			Sizes:            []int{1000, 10000, 50000},
			Seed:             42,
			InsertionSortMax: 5000,
			BTreeDegree:      32,
			LearnedFanout:    1000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range SearchPaths {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, fmt.Errorf("parse %s: %w", p, err)
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", configPath, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()

	sizes := cfg.Benchmark.Sizes[:0:0]
	for _, n := range cfg.Benchmark.Sizes {
		if n > 0 {
			sizes = append(sizes, n)
		}
	}
	if len(sizes) == 0 {
		sizes = def.Benchmark.Sizes
	}
	cfg.Benchmark.Sizes = sizes

	if cfg.Benchmark.InsertionSortMax < 0 {
		cfg.Benchmark.InsertionSortMax = def.Benchmark.InsertionSortMax
	}
	if cfg.Benchmark.BTreeDegree < 2 {
		cfg.Benchmark.BTreeDegree = def.Benchmark.BTreeDegree
	}
	if cfg.Benchmark.LearnedFanout <= 0 {
		cfg.Benchmark.LearnedFanout = def.Benchmark.LearnedFanout
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format != "json" {
		cfg.Log.Format = "text"
	}
}
