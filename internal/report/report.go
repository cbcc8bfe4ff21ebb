package report

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/MikeSquared-Agency/Staircase/internal/bench"
	"github.com/MikeSquared-Agency/Staircase/internal/complexity"
)

// ErrUnknownFormat is returned by New for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatTable = "table"
	FormatJSONL = "jsonl"
)

// Writer renders benchmark output.
type Writer interface {
	WriteConstants(k complexity.Constants) error
	WriteExperiment(exp bench.Experiment, results []bench.Result) error
}

// New returns the Writer for format.
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case FormatTable:
		return &TableWriter{w: w}, nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// IsBrokenPipe reports whether err is a broken or closed pipe, which happens
// when the reader (e.g. `head`) exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

func ignoreBrokenPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
