package services

import (
	"fmt"
	"math"
	"strings"
)

// PortionService turns a matched catalog entry plus the model's qualitative
// size estimate into a concrete gram weight and protein figure. Everything
// here is a pure function of its inputs so repeated reselection can never
// accumulate rounding drift.
type PortionService struct{}

func NewPortionService() *PortionService {
	return &PortionService{}
}

// ResolvedPortion is the outcome of mapping a size hint onto an entry's
// named portions. Fallback is set when no semantic match existed and the
// entry's first-defined portion was used instead.
type ResolvedPortion struct {
	Name        string
	Grams       float64
	Description string
	Fallback    bool
}

// Resolve picks a portion for the entry. Explicit grams win outright and get
// a synthetic description; otherwise the size hint is mapped onto the
// entry's named portions, falling back to the first-defined portion.
func (s *PortionService) Resolve(entry *CatalogEntry, sizeHint string, explicitGrams float64) ResolvedPortion {
	if explicitGrams > 0 {
		return ResolvedPortion{
			Name:        "custom",
			Grams:       explicitGrams,
			Description: fmt.Sprintf("%g g", explicitGrams),
		}
	}
	if name, ok := mapSizeHint(entry, sizeHint); ok {
		p, _ := entry.Portion(name)
		return ResolvedPortion{Name: p.Name, Grams: p.Grams, Description: p.Description}
	}
	first := entry.Portions[0]
	return ResolvedPortion{
		Name:        first.Name,
		Grams:       first.Grams,
		Description: first.Description,
		Fallback:    true,
	}
}

// ProteinGrams applies the catalog conversion: protein per 100g scaled to
// the portion weight, adjusted by the preparation modifier, rounded to one
// decimal place.
func (s *PortionService) ProteinGrams(entry *CatalogEntry, grams float64, preparation string) float64 {
	return round1(entry.ProteinPer100g * grams / 100 * entry.PrepModifier(preparation))
}

// Suggest builds the full per-item record for a matched candidate.
func (s *PortionService) Suggest(entry *CatalogEntry, candidate FoodCandidate) PortionSuggestion {
	resolved := s.Resolve(entry, candidate.EstimatedSize, 0)
	return PortionSuggestion{
		FoodName:            entry.Name,
		FoodID:              entry.ID,
		SelectedPortionName: resolved.Name,
		Grams:               resolved.Grams,
		PortionDescription:  resolved.Description,
		ProteinGrams:        s.ProteinGrams(entry, resolved.Grams, candidate.Preparation),
		AlternativePortions: alternativesTo(entry, resolved.Name),
		Confidence:          candidate.Confidence,
		Explanation:         buildExplanation(resolved, candidate),
		VisualReasoning:     candidate.VisualCues,
		Preparation:         candidate.Preparation,
		PortionFallback:     resolved.Fallback,
	}
}

// Reselect swaps the suggestion onto another of the entry's named portions
// and recomputes protein from scratch with the same formula. Identity fields
// never change.
func (s *PortionService) Reselect(entry *CatalogEntry, current PortionSuggestion, newPortionName string) (PortionSuggestion, error) {
	p, ok := entry.Portion(newPortionName)
	if !ok {
		return PortionSuggestion{}, fmt.Errorf("%w: %q for %s", ErrUnknownPortionName, newPortionName, entry.ID)
	}
	updated := current
	updated.SelectedPortionName = p.Name
	updated.Grams = p.Grams
	updated.PortionDescription = p.Description
	updated.ProteinGrams = s.ProteinGrams(entry, p.Grams, current.Preparation)
	updated.AlternativePortions = alternativesTo(entry, p.Name)
	updated.PortionFallback = false // the user picked it
	return updated, nil
}

// mapSizeHint maps the model's qualitative size onto a named portion.
// Count-based entries (eggs) translate sizes into counts; otherwise sizes
// map to the same-named portion, with extra_large stepping down to large
// when the entry tops out there.
func mapSizeHint(entry *CatalogEntry, sizeHint string) (string, bool) {
	hint := strings.ToLower(strings.TrimSpace(sizeHint))
	if hint == "" {
		hint = "medium"
	}
	if _, countBased := entry.Portion("one_egg"); countBased {
		counts := map[string]string{
			"small":       "one_egg",
			"medium":      "one_egg",
			"large":       "two_eggs",
			"extra_large": "three_eggs",
		}
		if name, ok := counts[hint]; ok {
			if _, defined := entry.Portion(name); defined {
				return name, true
			}
		}
		return "", false
	}
	for _, name := range sizeHintChain(hint) {
		if _, ok := entry.Portion(name); ok {
			return name, true
		}
	}
	return "", false
}

func sizeHintChain(hint string) []string {
	if hint == "extra_large" {
		return []string{"extra_large", "large"}
	}
	return []string{hint}
}

func alternativesTo(entry *CatalogEntry, selected string) []NamedPortion {
	alts := make([]NamedPortion, 0, len(entry.Portions))
	for _, p := range entry.Portions {
		if p.Name != selected {
			alts = append(alts, p)
		}
	}
	return alts
}

func buildExplanation(resolved ResolvedPortion, candidate FoodCandidate) string {
	var b strings.Builder
	if resolved.Fallback {
		fmt.Fprintf(&b, "I couldn't map the size estimate, so I assumed %s (%gg). ",
			resolved.Description, resolved.Grams)
	} else {
		fmt.Fprintf(&b, "Based on the visual size, this looks like %s (%gg). ",
			resolved.Description, resolved.Grams)
	}
	if candidate.VisualCues != "" {
		fmt.Fprintf(&b, "I can see: %s. ", candidate.VisualCues)
	}
	fmt.Fprintf(&b, "I'm %s about this identification.", confidencePhrase(candidate.Confidence))
	return b.String()
}

func confidencePhrase(confidence int) string {
	switch {
	case confidence >= 8:
		return "very confident"
	case confidence >= 6:
		return "fairly confident"
	default:
		return "somewhat uncertain"
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
