package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRun(t *testing.T) {
	p := NewPrometheus()

	p.ObserveRun("sort-scan", 1000, 2*time.Millisecond, 7)
	p.ObserveRun("sort-scan", 1000, 3*time.Millisecond, 9)
	p.ObserveRun("linear-scan", 500, time.Millisecond, 4)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.runs.WithLabelValues("sort-scan")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.runs.WithLabelValues("linear-scan")))
	assert.Equal(t, 9.0, testutil.ToFloat64(p.frontierSize.WithLabelValues("sort-scan", "1000")))
	assert.Equal(t, 2, testutil.CollectAndCount(p.runDuration))
}

func TestWriteText(t *testing.T) {
	p := NewPrometheus()
	p.ObserveRun("brute-force", 20, time.Microsecond, 3)

	var buf bytes.Buffer
	require.NoError(t, p.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "staircase_runs_total{algorithm=\"brute-force\"} 1")
	assert.Contains(t, out, "staircase_frontier_size{algorithm=\"brute-force\",n=\"20\"} 3")
	assert.Contains(t, out, "# TYPE staircase_run_duration_seconds histogram")
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.ObserveRun("x", 1, time.Second, 1)
}
