package services

import "errors"

// Sentinel errors surfaced by the analysis pipeline. Everything else is
// absorbed into the result (unmatched foods, requires_user_input).
var (
	ErrIdentificationUnavailable = errors.New("food identification unavailable")
	ErrUnknownFoodID             = errors.New("food id not present in analysis")
	ErrUnknownPortionName        = errors.New("portion name not defined for this food")
)

// FoodCandidate is one food item as reported by the identification model,
// before any catalog matching.
type FoodCandidate struct {
	Name          string `json:"name"`
	Confidence    int    `json:"confidence"`     // 1–10
	VisualCues    string `json:"visual_cues"`    // evidence behind the identification
	EstimatedSize string `json:"estimated_size"` // small|medium|large|extra_large
	Preparation   string `json:"preparation"`
	Notes         string `json:"notes,omitempty"`
}

// AlternativeMatch is a runner-up catalog match kept so the client can offer
// manual disambiguation for low-scoring names.
type AlternativeMatch struct {
	FoodID string  `json:"food_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
}

// MatchResult is the outcome of fuzzy-matching one candidate against the
// catalog. Entry is nil iff the best score fell below the acceptance
// threshold; the candidate is then carried forward as unmatched.
type MatchResult struct {
	Candidate    FoodCandidate      `json:"candidate"`
	Entry        *CatalogEntry      `json:"matched_entry,omitempty"`
	Score        float64            `json:"match_score"`
	Alternatives []AlternativeMatch `json:"alternative_entries,omitempty"`
}

// Matched reports whether the candidate resolved to a catalog entry.
func (m MatchResult) Matched() bool { return m.Entry != nil }

// PortionSuggestion is the per-item record in the final result: a matched
// food with a concrete portion and its protein estimate.
type PortionSuggestion struct {
	FoodName            string         `json:"food_name"`
	FoodID              string         `json:"food_id"`
	SelectedPortionName string         `json:"selected_portion"`
	Grams               float64        `json:"grams"`
	PortionDescription  string         `json:"portion_description"`
	ProteinGrams        float64        `json:"protein_grams"`
	AlternativePortions []NamedPortion `json:"alternative_portions"`
	Confidence          int            `json:"confidence"`
	Explanation         string         `json:"explanation"`
	VisualReasoning     string         `json:"visual_reasoning"`
	Preparation         string         `json:"preparation,omitempty"`
	PortionFallback     bool           `json:"portion_fallback,omitempty"`
}

// AnalysisResult is the pipeline's terminal artifact for one meal image.
// After construction it changes only through ReselectPortion, which swaps a
// single suggestion's portion and recomputes the total.
type AnalysisResult struct {
	Success            bool                `json:"success"`
	ConversationText   string              `json:"conversation_response"`
	IdentifiedFoods    []FoodCandidate     `json:"identified_foods"`
	PortionSuggestions []PortionSuggestion `json:"portion_suggestions"`
	UnmatchedFoods     []string            `json:"unmatched_foods"`
	TotalProteinGrams  float64             `json:"total_protein_grams"`
	ConfidenceLevel    ConfidenceLevel     `json:"confidence_level"`
	RequiresUserInput  bool                `json:"requires_user_input"`
}
