package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Staircase/internal/complexity"
	"github.com/MikeSquared-Agency/Staircase/internal/metrics"
	"github.com/MikeSquared-Agency/Staircase/internal/staircase"
)

// ErrUnsortedInput is returned when sorted-input verification is enabled and
// an algorithm that requires sorted input would receive unsorted points.
var ErrUnsortedInput = errors.New("input is not sorted by the ordering key")

// Source produces input points.
type Source interface {
	Generate(n int) []staircase.Point
}

// Result is the averaged timing for one input size.
type Result struct {
	RunID        string  `json:"run_id"`
	Algorithm    string  `json:"algorithm"`
	Class        string  `json:"class"`
	N            int     `json:"n"`
	Runs         int     `json:"runs"`
	AvgMs        float64 `json:"avg_ms"`
	Raw          float64 `json:"raw"`
	ScaledMs     float64 `json:"scaled_ms"`
	FrontierSize int     `json:"frontier_size"`
}

// Options configure a Harness. Zero values fall back to defaults.
type Options struct {
	Runs         int
	VerifySorted bool
	Constants    complexity.Constants
	Recorder     metrics.Recorder
	Logger       *slog.Logger
}

// Harness drives staircase algorithms with generated input and measures them.
// The algorithms never see the harness; all timing happens around the call.
type Harness struct {
	source       Source
	runs         int
	verifySorted bool
	constants    complexity.Constants
	recorder     metrics.Recorder
	logger       *slog.Logger
	runID        uuid.UUID
}

// DefaultRuns is the number of timed calls averaged per input size.
const DefaultRuns = 5

func New(source Source, opts Options) *Harness {
	h := &Harness{
		source:       source,
		runs:         opts.Runs,
		verifySorted: opts.VerifySorted,
		constants:    opts.Constants,
		recorder:     opts.Recorder,
		logger:       opts.Logger,
		runID:        uuid.New(),
	}
	if h.runs <= 0 {
		h.runs = DefaultRuns
	}
	if h.constants == (complexity.Constants{}) {
		h.constants = complexity.DefaultConstants()
	}
	if h.recorder == nil {
		h.recorder = metrics.Nop{}
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	h.logger = h.logger.With("run_id", h.runID.String())
	return h
}

// RunID identifies this harness session in logs and results.
func (h *Harness) RunID() uuid.UUID {
	return h.runID
}

// Run times exp at every size. The context is checked between sizes; a
// single algorithm call is never interrupted.
func (h *Harness) Run(ctx context.Context, exp Experiment) ([]Result, error) {
	results := make([]Result, 0, len(exp.Sizes))
	h.logger.Info("experiment starting",
		"algorithm", exp.Name(),
		"class", exp.Class.String(),
		"sizes", len(exp.Sizes),
		"runs", h.runs,
	)

	for _, n := range exp.Sizes {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("%s at n=%d: %w", exp.Name(), n, err)
		}

		res, err := h.measure(exp, n)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		h.logger.Debug("size measured",
			"algorithm", exp.Name(),
			"n", n,
			"avg_ms", res.AvgMs,
			"frontier_size", res.FrontierSize,
		)
	}

	h.logger.Info("experiment finished", "algorithm", exp.Name(), "results", len(results))
	return results, nil
}

func (h *Harness) measure(exp Experiment, n int) (Result, error) {
	input := h.source.Generate(n)
	if exp.PreSort {
		input = staircase.Sorted(input)
	}
	if h.verifySorted && exp.Variant.NeedsSortedInput && !staircase.IsSorted(input) {
		return Result{}, fmt.Errorf("%s at n=%d: %w", exp.Name(), n, ErrUnsortedInput)
	}

	var total time.Duration
	var frontier []staircase.Point
	for r := 0; r < h.runs; r++ {
		start := time.Now()
		frontier = exp.Variant.Compute(input)
		elapsed := time.Since(start)
		total += elapsed
		h.recorder.ObserveRun(exp.Name(), n, elapsed, len(frontier))
	}

	avgMs := float64(total) / float64(h.runs) / float64(time.Millisecond)
	return Result{
		RunID:        h.runID.String(),
		Algorithm:    exp.Name(),
		Class:        exp.Class.String(),
		N:            n,
		Runs:         h.runs,
		AvgMs:        avgMs,
		Raw:          complexity.Raw(exp.Class, n),
		ScaledMs:     complexity.Scaled(exp.Class, n, h.constants),
		FrontierSize: len(frontier),
	}, nil
}

// RunAll runs every experiment in order, handing each experiment's results to
// each as soon as they are ready. It stops at the first error.
func (h *Harness) RunAll(ctx context.Context, plan []Experiment, each func(Experiment, []Result) error) error {
	for _, exp := range plan {
		results, err := h.Run(ctx, exp)
		if err != nil {
			return err
		}
		if each != nil {
			if err := each(exp, results); err != nil {
				return fmt.Errorf("report %s: %w", exp.Name(), err)
			}
		}
	}
	return nil
}
