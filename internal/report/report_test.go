package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Staircase/internal/bench"
	"github.com/MikeSquared-Agency/Staircase/internal/complexity"
)

func sampleExperiment(t *testing.T) (bench.Experiment, []bench.Result) {
	t.Helper()
	exp, err := bench.NewExperiment(complexity.Quadratic, []int{20, 20000})
	require.NoError(t, err)
	results := []bench.Result{
		{RunID: "r1", Algorithm: exp.Name(), Class: exp.Class.String(), N: 20, Runs: 5, AvgMs: 0.0123, Raw: 400, ScaledMs: 9.213e-7, FrontierSize: 4},
		{RunID: "r1", Algorithm: exp.Name(), Class: exp.Class.String(), N: 20000, Runs: 5, AvgMs: 1.5, Raw: 4e8, ScaledMs: 0.9213, FrontierSize: 11},
	}
	return exp, results
}

func TestTableWriterConstants(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableWriter(&buf).WriteConstants(complexity.DefaultConstants()))

	out := buf.String()
	assert.Contains(t, out, "C(n^2): 2.303250e-09\n")
	assert.Contains(t, out, "C(n log n): 6.570500e-06\n")
	assert.Contains(t, out, "C(n): 3.760700e-06\n")
}

func TestTableWriterRows(t *testing.T) {
	exp, results := sampleExperiment(t)
	var buf bytes.Buffer
	require.NoError(t, NewTableWriter(&buf).WriteExperiment(exp, results))

	out := buf.String()
	assert.Contains(t, out, "### O(n^2) Experiment Data (brute-force, N 20 to 20000)")
	assert.Contains(t, out, "N Value    | Exp(ms)  | Raw      | Scaled(ms)\n")
	assert.Contains(t, out, fmt.Sprintf("%-10d | %-8.4f | %-8g | %-8.4f\n", 20000, 1.5, 4e8, 0.9213))

	var rows int
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		if strings.Contains(sc.Text(), " | ") && !strings.HasPrefix(sc.Text(), "N Value") {
			rows++
		}
	}
	assert.Equal(t, 2, rows)
}

func TestJSONLWriter(t *testing.T) {
	exp, results := sampleExperiment(t)
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)
	require.NoError(t, w.WriteConstants(complexity.DefaultConstants()))
	require.NoError(t, w.WriteExperiment(exp, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "constants", first["type"])

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &last))
	assert.Equal(t, "result", last["type"])
	assert.Equal(t, "brute-force", last["algorithm"])
	assert.Equal(t, float64(20000), last["n"])
	assert.Equal(t, float64(11), last["frontier_size"])
}

func TestNew(t *testing.T) {
	w, err := New(FormatTable, io.Discard)
	require.NoError(t, err)
	assert.IsType(t, &TableWriter{}, w)

	w, err = New(FormatJSONL, io.Discard)
	require.NoError(t, err)
	assert.IsType(t, &JSONLWriter{}, w)

	for _, format := range []string{"xml", ""} {
		_, err = New(format, io.Discard)
		assert.ErrorIs(t, err, ErrUnknownFormat, "format %q", format)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestBrokenPipeIsIgnored(t *testing.T) {
	exp, results := sampleExperiment(t)

	pipe := failingWriter{err: fmt.Errorf("write stdout: %w", syscall.EPIPE)}
	assert.NoError(t, NewTableWriter(pipe).WriteExperiment(exp, results))
	assert.NoError(t, NewJSONLWriter(pipe).WriteExperiment(exp, results))

	other := failingWriter{err: errors.New("disk full")}
	assert.Error(t, NewTableWriter(other).WriteExperiment(exp, results))
	assert.Error(t, NewJSONLWriter(other).WriteExperiment(exp, results))
}
