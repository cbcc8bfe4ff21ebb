package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Staircase/internal/bench"
	"github.com/MikeSquared-Agency/Staircase/internal/complexity"
	"github.com/MikeSquared-Agency/Staircase/internal/pointgen"
	"github.com/MikeSquared-Agency/Staircase/internal/report"
)

type Config struct {
	Bench       BenchConfig          `yaml:"bench"`
	Experiments ExperimentsConfig    `yaml:"experiments"`
	Constants   complexity.Constants `yaml:"constants"`
	Output      OutputConfig         `yaml:"output"`
	Logging     LoggingConfig        `yaml:"logging"`
}

type BenchConfig struct {
	Runs         int            `yaml:"runs"`
	Seed         uint64         `yaml:"seed"`
	Range        pointgen.Range `yaml:"range"`
	VerifySorted bool           `yaml:"verify_sorted"`
}

type ExperimentsConfig struct {
	Quadratic    ExperimentConfig `yaml:"quadratic"`
	Linearithmic ExperimentConfig `yaml:"linearithmic"`
	Linear       ExperimentConfig `yaml:"linear"`
}

type ExperimentConfig struct {
	Enabled bool  `yaml:"enabled"`
	Sizes   []int `yaml:"sizes"`
}

type OutputConfig struct {
	Format      string `yaml:"format"`
	DumpMetrics bool   `yaml:"dump_metrics"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// For returns the experiment settings for class c.
func (e *ExperimentsConfig) For(c complexity.Class) *ExperimentConfig {
	switch c {
	case complexity.Quadratic:
		return &e.Quadratic
	case complexity.Linearithmic:
		return &e.Linearithmic
	case complexity.Linear:
		return &e.Linear
	default:
		return nil
	}
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Bench: BenchConfig{
			Runs:  bench.DefaultRuns,
			Range: pointgen.DefaultRange(),
		},
		Experiments: ExperimentsConfig{
			Quadratic: ExperimentConfig{
				Enabled: true,
				Sizes:   bench.DefaultSizes(complexity.Quadratic),
			},
			Linearithmic: ExperimentConfig{
				Enabled: true,
				Sizes:   bench.DefaultSizes(complexity.Linearithmic),
			},
			Linear: ExperimentConfig{
				Enabled: true,
				Sizes:   bench.DefaultSizes(complexity.Linear),
			},
		},
		Constants: complexity.DefaultConstants(),
		Output: OutputConfig{
			Format: report.FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STAIRCASE_RUNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Bench.Runs = n
		}
	}
	if v := os.Getenv("STAIRCASE_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Bench.Seed = n
		}
	}
	if v := os.Getenv("STAIRCASE_VERIFY_SORTED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Bench.VerifySorted = b
		}
	}
	if v := os.Getenv("STAIRCASE_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("STAIRCASE_DUMP_METRICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Output.DumpMetrics = b
		}
	}
	if v := os.Getenv("STAIRCASE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("STAIRCASE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate reports every problem with cfg at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Bench.Runs < 1 {
		errs = append(errs, fmt.Errorf("bench.runs must be at least 1, got %d", c.Bench.Runs))
	}
	if err := c.Bench.Range.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("bench.range: %w", err))
	}
	for _, cl := range complexity.Classes() {
		for _, n := range c.Experiments.For(cl).Sizes {
			if n <= 0 {
				errs = append(errs, fmt.Errorf("experiments.%s: size must be positive, got %d", cl.Key(), n))
			}
		}
	}
	if err := c.Constants.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("constants: %w", err))
	}
	switch c.Output.Format {
	case report.FormatTable, report.FormatJSONL:
	default:
		errs = append(errs, fmt.Errorf("output.format: %w: %q", report.ErrUnknownFormat, c.Output.Format))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format))
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
