package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MikeSquared-Agency/Staircase/internal/bench"
	"github.com/MikeSquared-Agency/Staircase/internal/complexity"
)

const bannerWidth = 65

// TableWriter prints fixed-width tables, one per experiment.
type TableWriter struct {
	w io.Writer
}

func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

func (t *TableWriter) WriteConstants(k complexity.Constants) error {
	bw := bufio.NewWriter(t.w)
	fmt.Fprintln(bw, "--- Derived Scaling Constants (C) ---")
	for _, c := range complexity.Classes() {
		fmt.Fprintf(bw, "C(%s): %e\n", strings.TrimSuffix(strings.TrimPrefix(c.String(), "O("), ")"), k.For(c))
	}
	fmt.Fprintln(bw, "-----------------------------------")
	return ignoreBrokenPipe(bw.Flush())
}

func (t *TableWriter) WriteExperiment(exp bench.Experiment, results []bench.Result) error {
	bw := bufio.NewWriter(t.w)

	rule := strings.Repeat("#", bannerWidth)
	title := fmt.Sprintf("### %s Experiment Data (%s, %s)", exp.Class, exp.Name(), sizeSpan(exp.Sizes))
	if pad := bannerWidth - len(title) - 3; pad > 0 {
		title += strings.Repeat(" ", pad)
	}
	fmt.Fprintf(bw, "\n%s\n%s###\n%s\n", rule, title, rule)
	fmt.Fprintf(bw, "%-10s | %-8s | %-8s | %-8s\n", "N Value", "Exp(ms)", "Raw", "Scaled(ms)")
	fmt.Fprintln(bw, strings.Repeat("-", 42))

	for _, r := range results {
		fmt.Fprintf(bw, "%-10d | %-8.4f | %-8g | %-8.4f\n", r.N, r.AvgMs, r.Raw, r.ScaledMs)
	}
	return ignoreBrokenPipe(bw.Flush())
}

func sizeSpan(sizes []int) string {
	if len(sizes) == 0 {
		return "no sizes"
	}
	lo, hi := sizes[0], sizes[0]
	for _, n := range sizes[1:] {
		lo = min(lo, n)
		hi = max(hi, n)
	}
	return fmt.Sprintf("N %d to %d", lo, hi)
}
