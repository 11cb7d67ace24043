package services

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLinesEvaluationSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONLinesEvaluationSink(&buf)

	sample := EvaluationSample{
		Candidates: []FoodCandidate{{Name: "tofu", Confidence: 7}},
		Matches:    []MatchResult{{Candidate: FoodCandidate{Name: "tofu", Confidence: 7}, Score: 1}},
	}
	require.NoError(t, sink.Record(sample))
	require.NoError(t, sink.Record(sample))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var decoded EvaluationSample
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	require.Len(t, decoded.Candidates, 1)
	assert.Equal(t, "tofu", decoded.Candidates[0].Name)
	assert.False(t, decoded.Timestamp.IsZero(), "a missing timestamp is filled in")
}

func TestJSONLinesEvaluationSink_KeepsGivenTimestamp(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONLinesEvaluationSink(&buf)

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, sink.Record(EvaluationSample{Timestamp: ts}))

	var decoded EvaluationSample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, decoded.Timestamp.Equal(ts))
}

func TestNoOpEvaluationSink(t *testing.T) {
	assert.NoError(t, NoOpEvaluationSink{}.Record(EvaluationSample{}))
}
