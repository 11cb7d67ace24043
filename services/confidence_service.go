package services

import "github.com/pmarsh41/my-agent/config"

// ConfidenceLevel is the categorical reliability verdict for a whole
// analysis. The closed set keeps the policy auditable; the summary text
// comes verbatim from the phrase table below, never from generation.
type ConfidenceLevel string

const (
	ConfidenceUncertain ConfidenceLevel = "uncertain"
	ConfidenceFair      ConfidenceLevel = "fairly confident"
	ConfidenceHigh      ConfidenceLevel = "very confident"
)

var confidenceSummaries = map[ConfidenceLevel]string{
	ConfidenceUncertain: "I'm uncertain about some of these foods - please double-check before logging.",
	ConfidenceFair:      "I'm fairly confident about most of these foods.",
	ConfidenceHigh:      "I'm very confident about these identifications.",
}

// Summary returns the fixed phrase rendered into the conversational reply.
func (l ConfidenceLevel) Summary() string {
	if s, ok := confidenceSummaries[l]; ok {
		return s
	}
	return confidenceSummaries[ConfidenceUncertain]
}

// ConfidenceService reduces per-item identification confidences into one
// verdict and decides whether the user has to confirm the result.
type ConfidenceService struct {
	floor    int
	highMean float64
}

func NewConfidenceService(cfg config.Pipeline) *ConfidenceService {
	return &ConfidenceService{floor: cfg.ConfidenceFloor, highMean: cfg.HighConfidenceMean}
}

// Verdict is the aggregate reliability outcome.
type Verdict struct {
	Level             ConfidenceLevel
	RequiresUserInput bool
}

// Aggregate applies the decision table in order, first match wins:
//  1. any confidence below the floor, or any unmatched food → uncertain,
//     user input required
//  2. mean confidence at or above the high bar and no portion fallback →
//     very confident
//  3. otherwise → fairly confident
//
// An empty candidate list is treated as rule 1: there is nothing to trust.
func (s *ConfidenceService) Aggregate(candidates []FoodCandidate, unmatchedCount, portionFallbacks int) Verdict {
	if len(candidates) == 0 || unmatchedCount > 0 {
		return Verdict{Level: ConfidenceUncertain, RequiresUserInput: true}
	}
	sum := 0
	for _, c := range candidates {
		if c.Confidence < s.floor {
			return Verdict{Level: ConfidenceUncertain, RequiresUserInput: true}
		}
		sum += c.Confidence
	}
	mean := float64(sum) / float64(len(candidates))
	if mean >= s.highMean && portionFallbacks == 0 {
		return Verdict{Level: ConfidenceHigh}
	}
	return Verdict{Level: ConfidenceFair}
}
