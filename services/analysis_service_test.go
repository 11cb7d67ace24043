package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pmarsh41/my-agent/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockIdentifier plays the external identification capability in tests.
type mockIdentifier struct {
	candidates []FoodCandidate
	err        error
	calls      int
}

func (m *mockIdentifier) Identify(ctx context.Context, imageBase64, mimeType string) ([]FoodCandidate, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.candidates, nil
}

// captureSink records every evaluation sample handed to it.
type captureSink struct {
	samples []EvaluationSample
}

func (s *captureSink) Record(sample EvaluationSample) error {
	s.samples = append(s.samples, sample)
	return nil
}

func newTestAnalysisService(t *testing.T, identifier FoodIdentifier, sink EvaluationSink) *AnalysisService {
	t.Helper()
	catalog, err := NewCatalog()
	require.NoError(t, err)
	cfg := config.DefaultPipeline()
	return NewAnalysisService(
		catalog,
		NewMatcherService(catalog, cfg),
		NewPortionService(),
		NewConfidenceService(cfg),
		identifier,
		sink,
	)
}

func TestAnalyze_HappyPath(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{
			Name:          "grilled chicken breast",
			Confidence:    9,
			VisualCues:    "white meat, grill marks visible, lean appearance",
			EstimatedSize: "medium",
			Preparation:   "grilled",
		},
	}}
	svc := newTestAnalysisService(t, identifier, nil)

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, 1, identifier.calls)

	assert.True(t, result.Success)
	require.Len(t, result.PortionSuggestions, 1)
	sg := result.PortionSuggestions[0]
	assert.Equal(t, "chicken_breast", sg.FoodID)
	assert.Equal(t, "medium", sg.SelectedPortionName)
	assert.Equal(t, 150.0, sg.Grams)
	assert.Equal(t, 46.5, sg.ProteinGrams)

	assert.Equal(t, 46.5, result.TotalProteinGrams)
	assert.Empty(t, result.UnmatchedFoods)
	assert.Equal(t, ConfidenceHigh, result.ConfidenceLevel)
	assert.False(t, result.RequiresUserInput)
	assert.Contains(t, result.ConversationText, "Chicken Breast")
	assert.Contains(t, result.ConversationText, "46.5")
}

func TestAnalyze_UnknownFoodDegradesNotFails(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{Name: "grilled chicken breast", Confidence: 9, EstimatedSize: "medium", Preparation: "grilled"},
		{Name: "xyz-unknown-food", Confidence: 9, EstimatedSize: "medium"},
	}}
	svc := newTestAnalysisService(t, identifier, nil)

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, result.PortionSuggestions, 1)
	assert.Equal(t, "chicken_breast", result.PortionSuggestions[0].FoodID)
	assert.Equal(t, []string{"xyz-unknown-food"}, result.UnmatchedFoods)
	assert.Equal(t, ConfidenceUncertain, result.ConfidenceLevel)
	assert.True(t, result.RequiresUserInput)
	assert.Contains(t, result.ConversationText, "xyz-unknown-food")
}

func TestAnalyze_AllUnmatchedStillWellFormed(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{Name: "mystery stew", Confidence: 3, EstimatedSize: "large"},
	}}
	svc := newTestAnalysisService(t, identifier, nil)

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.PortionSuggestions)
	assert.Equal(t, 0.0, result.TotalProteinGrams)
	assert.True(t, result.RequiresUserInput)
	assert.Equal(t, ConfidenceUncertain, result.ConfidenceLevel)
	assert.NotEmpty(t, result.ConversationText)
}

func TestAnalyze_NoCandidates(t *testing.T) {
	svc := newTestAnalysisService(t, &mockIdentifier{}, nil)

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.PortionSuggestions)
	assert.Empty(t, result.UnmatchedFoods)
	assert.True(t, result.RequiresUserInput)
	assert.Contains(t, result.ConversationText, "trouble identifying")
}

func TestAnalyze_IdentificationFailure(t *testing.T) {
	identifier := &mockIdentifier{err: errors.New("model timed out")}
	svc := newTestAnalysisService(t, identifier, nil)

	_, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	assert.ErrorIs(t, err, ErrIdentificationUnavailable)
}

func TestAnalyze_LowConfidenceForcesUserInput(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{Name: "tofu", Confidence: 4, EstimatedSize: "medium"},
	}}
	svc := newTestAnalysisService(t, identifier, nil)

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)

	require.Len(t, result.PortionSuggestions, 1, "low confidence still produces a suggestion")
	assert.True(t, result.RequiresUserInput)
	assert.Equal(t, ConfidenceUncertain, result.ConfidenceLevel)
}

func TestAnalyze_PortionFallbackCapsConfidence(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{Name: "grilled chicken breast", Confidence: 9, EstimatedSize: "mega", Preparation: "grilled"},
	}}
	svc := newTestAnalysisService(t, identifier, nil)

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)

	require.Len(t, result.PortionSuggestions, 1)
	assert.True(t, result.PortionSuggestions[0].PortionFallback)
	assert.Equal(t, ConfidenceFair, result.ConfidenceLevel, "fallback blocks the very-confident verdict")
	assert.False(t, result.RequiresUserInput)
}

func TestAnalyze_TotalEqualsSumOfSuggestions(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{Name: "grilled chicken breast", Confidence: 9, EstimatedSize: "medium", Preparation: "grilled"},
		{Name: "steamed white rice", Confidence: 8, EstimatedSize: "large", Preparation: "steamed"},
		{Name: "broccoli", Confidence: 8, EstimatedSize: "medium", Preparation: "steamed"},
	}}
	svc := newTestAnalysisService(t, identifier, nil)

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)
	require.Len(t, result.PortionSuggestions, 3)

	sum := 0.0
	for _, sg := range result.PortionSuggestions {
		sum += sg.ProteinGrams
	}
	assert.Equal(t, round1(sum), result.TotalProteinGrams)
}

func TestAnalyze_RecordsEvaluationSample(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{Name: "tofu", Confidence: 8, EstimatedSize: "medium"},
		{Name: "xyz-unknown-food", Confidence: 8, EstimatedSize: "small"},
	}}
	sink := &captureSink{}
	svc := newTestAnalysisService(t, identifier, sink)

	_, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)

	require.Len(t, sink.samples, 1)
	sample := sink.samples[0]
	assert.Len(t, sample.Candidates, 2)
	require.Len(t, sample.Matches, 2)
	assert.True(t, sample.Matches[0].Matched())
	assert.False(t, sample.Matches[1].Matched())
}

func TestReselectPortion(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{Name: "grilled chicken breast", Confidence: 9, EstimatedSize: "medium", Preparation: "grilled"},
		{Name: "steamed white rice", Confidence: 9, EstimatedSize: "medium", Preparation: "steamed"},
	}}
	svc := newTestAnalysisService(t, identifier, nil)

	original, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)
	require.Len(t, original.PortionSuggestions, 2)
	require.Equal(t, 46.5, original.PortionSuggestions[0].ProteinGrams)

	updated, err := svc.ReselectPortion(*original, "chicken_breast", "large")
	require.NoError(t, err)
	assert.Equal(t, 1, identifier.calls, "reselection must not re-run identification")

	// 31 * 180 / 100 = 55.8 for the catalog's large portion
	sg := updated.PortionSuggestions[0]
	assert.Equal(t, "chicken_breast", sg.FoodID)
	assert.Equal(t, "large", sg.SelectedPortionName)
	assert.Equal(t, 180.0, sg.Grams)
	assert.Equal(t, 55.8, sg.ProteinGrams)

	// untouched item and identity fields stay as they were
	assert.Equal(t, original.PortionSuggestions[1], updated.PortionSuggestions[1])
	assert.Equal(t, original.IdentifiedFoods, updated.IdentifiedFoods)

	// the total is recomputed from the suggestions
	sum := 0.0
	for _, s := range updated.PortionSuggestions {
		sum += s.ProteinGrams
	}
	assert.Equal(t, round1(sum), updated.TotalProteinGrams)

	// the input result is left untouched
	assert.Equal(t, 46.5, original.PortionSuggestions[0].ProteinGrams)
	assert.Equal(t, "medium", original.PortionSuggestions[0].SelectedPortionName)

	// the conversation reflects the new numbers
	assert.Contains(t, updated.ConversationText, "55.8")
	assert.False(t, strings.Contains(updated.ConversationText, "46.5"))
}

func TestReselectPortion_Errors(t *testing.T) {
	identifier := &mockIdentifier{candidates: []FoodCandidate{
		{Name: "grilled chicken breast", Confidence: 9, EstimatedSize: "medium", Preparation: "grilled"},
	}}
	svc := newTestAnalysisService(t, identifier, nil)

	result, err := svc.Analyze(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)

	_, err = svc.ReselectPortion(*result, "beef_steak", "large")
	assert.ErrorIs(t, err, ErrUnknownFoodID, "matched foods only")

	_, err = svc.ReselectPortion(*result, "chicken_breast", "colossal")
	assert.ErrorIs(t, err, ErrUnknownPortionName)
}
