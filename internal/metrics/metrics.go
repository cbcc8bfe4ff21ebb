package metrics

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder receives one observation per timed algorithm call.
type Recorder interface {
	ObserveRun(algorithm string, n int, elapsed time.Duration, frontierSize int)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveRun(string, int, time.Duration, int) {}

// Prometheus records observations into a private registry. Nothing is
// served over HTTP; the registry is dumped with WriteText.
type Prometheus struct {
	registry     *prometheus.Registry
	runDuration  *prometheus.HistogramVec
	frontierSize *prometheus.GaugeVec
	runs         *prometheus.CounterVec
}

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "staircase",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a single staircase computation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"algorithm"}),
		frontierSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "staircase",
			Name:      "frontier_size",
			Help:      "Number of points on the last computed staircase for an input size.",
		}, []string{"algorithm", "n"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "staircase",
			Name:      "runs_total",
			Help:      "Timed staircase computations.",
		}, []string{"algorithm"}),
	}
	p.registry.MustRegister(p.runDuration, p.frontierSize, p.runs)
	return p
}

func (p *Prometheus) ObserveRun(algorithm string, n int, elapsed time.Duration, frontierSize int) {
	p.runDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	p.frontierSize.WithLabelValues(algorithm, strconv.Itoa(n)).Set(float64(frontierSize))
	p.runs.WithLabelValues(algorithm).Inc()
}

// WriteText dumps every collected metric family in the Prometheus text format.
func (p *Prometheus) WriteText(w io.Writer) error {
	families, err := p.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
