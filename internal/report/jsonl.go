package report

import (
	"encoding/json"
	"io"

	"github.com/MikeSquared-Agency/Staircase/internal/bench"
	"github.com/MikeSquared-Agency/Staircase/internal/complexity"
)

// JSONLWriter streams each result as one JSON line.
type JSONLWriter struct {
	enc *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(w)}
}

type constantsLine struct {
	Type      string               `json:"type"`
	Constants complexity.Constants `json:"constants"`
}

type resultLine struct {
	Type string `json:"type"`
	bench.Result
}

func (j *JSONLWriter) WriteConstants(k complexity.Constants) error {
	return ignoreBrokenPipe(j.enc.Encode(constantsLine{Type: "constants", Constants: k}))
}

func (j *JSONLWriter) WriteExperiment(_ bench.Experiment, results []bench.Result) error {
	for _, r := range results {
		if err := j.enc.Encode(resultLine{Type: "result", Result: r}); err != nil {
			return ignoreBrokenPipe(err)
		}
	}
	return nil
}
