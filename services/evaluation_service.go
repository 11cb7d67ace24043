package services

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// EvaluationSample is one (candidates, match results) pair handed to the
// offline quality-measurement harness. The pipeline never depends on what
// the harness does with it.
type EvaluationSample struct {
	Timestamp  time.Time       `json:"timestamp"`
	Candidates []FoodCandidate `json:"candidates"`
	Matches    []MatchResult   `json:"match_results"`
}

// EvaluationSink receives samples for offline scoring.
type EvaluationSink interface {
	Record(sample EvaluationSample) error
}

// NoOpEvaluationSink discards every sample. Default when no sample path is
// configured.
type NoOpEvaluationSink struct{}

func (NoOpEvaluationSink) Record(EvaluationSample) error { return nil }

// JSONLinesEvaluationSink appends one JSON object per sample to a writer,
// typically a log file the evaluation harness tails.
type JSONLinesEvaluationSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewJSONLinesEvaluationSink(w io.Writer) *JSONLinesEvaluationSink {
	return &JSONLinesEvaluationSink{w: w}
}

func (s *JSONLinesEvaluationSink) Record(sample EvaluationSample) error {
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(sample)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}
