package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MikeSquared-Agency/Staircase/internal/bench"
	"github.com/MikeSquared-Agency/Staircase/internal/complexity"
	"github.com/MikeSquared-Agency/Staircase/internal/config"
	"github.com/MikeSquared-Agency/Staircase/internal/metrics"
	"github.com/MikeSquared-Agency/Staircase/internal/pointgen"
	"github.com/MikeSquared-Agency/Staircase/internal/report"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	only := flag.String("only", "", "comma-separated classes to run (quadratic, linearithmic, linear)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logging.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *only, os.Stdout, logger); err != nil {
		logger.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, only string, out io.Writer, logger *slog.Logger) error {
	plan, err := buildPlan(cfg, only)
	if err != nil {
		return err
	}

	gen, err := pointgen.New(cfg.Bench.Seed, cfg.Bench.Range)
	if err != nil {
		return fmt.Errorf("point generator: %w", err)
	}

	w, err := report.New(cfg.Output.Format, out)
	if err != nil {
		return err
	}

	recorder := metrics.NewPrometheus()
	h := bench.New(gen, bench.Options{
		Runs:         cfg.Bench.Runs,
		VerifySorted: cfg.Bench.VerifySorted,
		Constants:    cfg.Constants,
		Recorder:     recorder,
		Logger:       logger,
	})
	logger.Info("running staircase benchmarks",
		"run_id", h.RunID().String(),
		"experiments", len(plan),
		"runs", cfg.Bench.Runs,
		"seed", cfg.Bench.Seed,
	)

	if err := w.WriteConstants(cfg.Constants); err != nil {
		return fmt.Errorf("write constants: %w", err)
	}
	if err := h.RunAll(ctx, plan, w.WriteExperiment); err != nil {
		return err
	}

	if cfg.Output.DumpMetrics {
		if err := recorder.WriteText(out); err != nil && !report.IsBrokenPipe(err) {
			return fmt.Errorf("dump metrics: %w", err)
		}
	}
	return nil
}

// buildPlan turns the enabled experiments into a plan, optionally narrowed
// to the classes named in only.
func buildPlan(cfg *config.Config, only string) ([]bench.Experiment, error) {
	selected := map[complexity.Class]bool{}
	if only != "" {
		for _, name := range strings.Split(only, ",") {
			c, err := complexity.ParseClass(name)
			if err != nil {
				return nil, err
			}
			selected[c] = true
		}
	}

	var plan []bench.Experiment
	for _, c := range complexity.Classes() {
		ec := cfg.Experiments.For(c)
		if !ec.Enabled || len(ec.Sizes) == 0 {
			continue
		}
		if len(selected) > 0 && !selected[c] {
			continue
		}
		exp, err := bench.NewExperiment(c, ec.Sizes)
		if err != nil {
			return nil, err
		}
		plan = append(plan, exp)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("no experiments enabled")
	}
	return plan, nil
}
