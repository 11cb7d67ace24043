package services

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// FoodIdentifier is the external identification capability: it turns a meal
// photo into labeled candidates with confidence and visual reasoning. It is
// the only blocking dependency of the pipeline.
type FoodIdentifier interface {
	Identify(ctx context.Context, imageBase64, mimeType string) ([]FoodCandidate, error)
}

// AnalysisService runs the meal-image pipeline: identification, catalog
// matching, portion resolution, protein math and the aggregate verdict. A
// single synchronous pass; every stage after identification degrades
// per-item instead of failing the request.
type AnalysisService struct {
	catalog    *Catalog
	matcher    *MatcherService
	portions   *PortionService
	confidence *ConfidenceService
	identifier FoodIdentifier
	eval       EvaluationSink
}

func NewAnalysisService(
	catalog *Catalog,
	matcher *MatcherService,
	portions *PortionService,
	confidence *ConfidenceService,
	identifier FoodIdentifier,
	eval EvaluationSink,
) *AnalysisService {
	if eval == nil {
		eval = NoOpEvaluationSink{}
	}
	return &AnalysisService{
		catalog:    catalog,
		matcher:    matcher,
		portions:   portions,
		confidence: confidence,
		identifier: identifier,
		eval:       eval,
	}
}

// Analyze converts one meal photo into a structured, recomputable protein
// estimate. It fails only when identification itself is unavailable; any
// per-item trouble is folded into unmatched_foods and the verdict.
func (s *AnalysisService) Analyze(ctx context.Context, imageBase64, mimeType string) (*AnalysisResult, error) {
	candidates, err := s.identifier.Identify(ctx, imageBase64, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentificationUnavailable, err)
	}

	matches := make([]MatchResult, 0, len(candidates))
	suggestions := make([]PortionSuggestion, 0, len(candidates))
	unmatched := make([]string, 0)
	fallbacks := 0

	for _, candidate := range candidates {
		m := s.matcher.Match(candidate)
		matches = append(matches, m)
		if !m.Matched() {
			unmatched = append(unmatched, candidate.Name)
			continue
		}
		suggestion := s.portions.Suggest(m.Entry, candidate)
		if suggestion.PortionFallback {
			fallbacks++
		}
		suggestions = append(suggestions, suggestion)
	}

	if err := s.eval.Record(EvaluationSample{Candidates: candidates, Matches: matches}); err != nil {
		log.Printf("evaluation sink: %v", err)
	}

	verdict := s.confidence.Aggregate(candidates, len(unmatched), fallbacks)
	result := &AnalysisResult{
		Success:            true,
		IdentifiedFoods:    candidates,
		PortionSuggestions: suggestions,
		UnmatchedFoods:     unmatched,
		TotalProteinGrams:  totalProtein(suggestions),
		ConfidenceLevel:    verdict.Level,
		RequiresUserInput:  verdict.RequiresUserInput,
	}
	result.ConversationText = buildConversation(result)
	return result, nil
}

// ReselectPortion returns a copy of the result with one suggestion moved to
// another named portion. Identification and matching are not re-run; protein
// is recomputed from the catalog so repeated reselections cannot drift.
func (s *AnalysisService) ReselectPortion(result AnalysisResult, foodID, newPortionName string) (AnalysisResult, error) {
	idx := -1
	for i, sg := range result.PortionSuggestions {
		if sg.FoodID == foodID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return AnalysisResult{}, fmt.Errorf("%w: %q", ErrUnknownFoodID, foodID)
	}

	entry, err := s.catalog.Lookup(foodID)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("%w: %q", ErrUnknownFoodID, foodID)
	}
	updated, err := s.portions.Reselect(entry, result.PortionSuggestions[idx], newPortionName)
	if err != nil {
		return AnalysisResult{}, err
	}

	out := result
	out.PortionSuggestions = make([]PortionSuggestion, len(result.PortionSuggestions))
	copy(out.PortionSuggestions, result.PortionSuggestions)
	out.PortionSuggestions[idx] = updated
	out.TotalProteinGrams = totalProtein(out.PortionSuggestions)
	out.ConversationText = buildConversation(&out)
	return out, nil
}

func totalProtein(suggestions []PortionSuggestion) float64 {
	total := 0.0
	for _, sg := range suggestions {
		total += sg.ProteinGrams
	}
	return round1(total)
}

func buildConversation(result *AnalysisResult) string {
	if len(result.PortionSuggestions) == 0 && len(result.UnmatchedFoods) == 0 {
		return "I'm having trouble identifying foods in this image. Could you help me out by telling me what you're eating?"
	}

	var b strings.Builder
	b.WriteString("Here's what I can see in your meal:\n\n")
	for i, sg := range result.PortionSuggestions {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, sg.FoodName, sg.PortionDescription)
		fmt.Fprintf(&b, "   Estimated protein: %.1fg\n", sg.ProteinGrams)
		switch {
		case sg.Confidence >= 8:
			b.WriteString("   Very confident about this one\n")
		case sg.Confidence >= 6:
			b.WriteString("   Pretty sure about this\n")
		default:
			b.WriteString("   Less certain - please double-check\n")
		}
		fmt.Fprintf(&b, "   %s\n\n", sg.Explanation)
	}

	if len(result.UnmatchedFoods) > 0 {
		b.WriteString("I also see some foods I'm not sure about:\n")
		for _, name := range result.UnmatchedFoods {
			fmt.Fprintf(&b, "- %s - could you help me identify this?\n", name)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total estimated protein: %.1fg\n\n", result.TotalProteinGrams)
	b.WriteString(result.ConfidenceLevel.Summary())
	b.WriteString(" You can adjust any portions that seem off!")
	return b.String()
}
