package services

import (
	"sort"
	"strings"

	"github.com/pmarsh41/my-agent/config"
)

// MatcherService resolves free-text food names from the identification model
// to catalog entries. Matching is deterministic: a fixed catalog and the same
// input always produce the same result.
type MatcherService struct {
	catalog *Catalog
	accept  float64
	suggest float64
}

func NewMatcherService(catalog *Catalog, cfg config.Pipeline) *MatcherService {
	return &MatcherService{
		catalog: catalog,
		accept:  cfg.MatchAcceptThreshold,
		suggest: cfg.MatchSuggestThreshold,
	}
}

// Weights for blending token overlap with whole-string edit similarity.
// Token overlap dominates so that "grilled chicken breast" still lands on
// "chicken breast" despite the extra qualifier.
const (
	tokenWeight = 0.7
	editWeight  = 0.3
)

const maxAlternatives = 3

// Match scores the candidate's name against every entry's display name and
// keywords and accepts the best entry only when it clears the acceptance
// threshold. Below it the candidate stays unmatched and up to three
// runner-ups above the suggestion threshold are kept for manual picking.
func (s *MatcherService) Match(candidate FoodCandidate) MatchResult {
	type scored struct {
		entry *CatalogEntry
		score float64
	}

	queryTokens := tokenize(candidate.Name)
	query := strings.Join(queryTokens, " ")

	ranked := make([]scored, 0, s.catalog.Len())
	for _, entry := range s.catalog.All() {
		best := 0.0
		for _, name := range entryNames(entry) {
			if sc := nameScore(queryTokens, query, name); sc > best {
				best = sc
			}
		}
		ranked = append(ranked, scored{entry: entry, score: best})
	}

	// Score descending; ties break by shorter display name, then lexically,
	// so results are reproducible run to run.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if len(ranked[i].entry.Name) != len(ranked[j].entry.Name) {
			return len(ranked[i].entry.Name) < len(ranked[j].entry.Name)
		}
		return ranked[i].entry.Name < ranked[j].entry.Name
	})

	result := MatchResult{Candidate: candidate}
	rest := ranked
	if len(ranked) > 0 && ranked[0].score >= s.accept {
		result.Entry = ranked[0].entry
		result.Score = ranked[0].score
		rest = ranked[1:]
	}
	for _, r := range rest {
		if len(result.Alternatives) == maxAlternatives {
			break
		}
		if r.score < s.suggest {
			break
		}
		result.Alternatives = append(result.Alternatives, AlternativeMatch{
			FoodID: r.entry.ID,
			Name:   r.entry.Name,
			Score:  r.score,
		})
	}
	return result
}

// MatchName is a convenience for callers that only have a raw name, such as
// the catalog search endpoint.
func (s *MatcherService) MatchName(name string) MatchResult {
	return s.Match(FoodCandidate{Name: name})
}

func entryNames(e *CatalogEntry) []string {
	names := make([]string, 0, len(e.Keywords)+1)
	names = append(names, e.Name)
	names = append(names, e.Keywords...)
	return names
}

func nameScore(queryTokens []string, query, name string) float64 {
	nameTokens := tokenize(name)
	if len(queryTokens) == 0 || len(nameTokens) == 0 {
		return 0
	}
	overlap := diceOverlap(queryTokens, nameTokens)
	edit := editSimilarity(query, strings.Join(nameTokens, " "))
	return tokenWeight*overlap + editWeight*edit
}

// tokenize lowercases, strips punctuation and singularizes simple plurals.
func tokenize(s string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	fields := strings.Fields(b.String())
	out := fields[:0]
	for _, f := range fields {
		out = append(out, singularize(f))
	}
	return out
}

func singularize(tok string) string {
	switch {
	case len(tok) > 3 && strings.HasSuffix(tok, "ies"):
		return tok[:len(tok)-3] + "y"
	case len(tok) > 3 && strings.HasSuffix(tok, "es") && !strings.HasSuffix(tok, "ses"):
		return tok[:len(tok)-2]
	case len(tok) > 2 && strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss"):
		return tok[:len(tok)-1]
	}
	return tok
}

// diceOverlap is the Sørensen–Dice coefficient over token sets: it rewards
// covering the catalog name while discounting unmatched extra words.
func diceOverlap(a, b []string) float64 {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	shared := 0
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		if set[t] && !seen[t] {
			shared++
			seen[t] = true
		}
	}
	if shared == 0 {
		return 0
	}
	return 2 * float64(shared) / float64(len(uniq(a))+len(uniq(b)))
}

func uniq(toks []string) []string {
	seen := make(map[string]bool, len(toks))
	out := toks[:0:0]
	for _, t := range toks {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// editSimilarity is 1 - levenshtein/maxlen, clamped to [0,1].
func editSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
