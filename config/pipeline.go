package config

import (
	"os"
	"strconv"
)

// Pipeline holds the empirically tuned knobs of the analysis pipeline. The
// defaults come from manual calibration; every value can be overridden
// through the environment so recalibration needs no rebuild.
type Pipeline struct {
	// MatchAcceptThreshold is the minimum fuzzy-match score (0–1) for a
	// candidate to be bound to a catalog entry.
	MatchAcceptThreshold float64
	// MatchSuggestThreshold is the minimum score for an entry to be offered
	// as a manual-disambiguation alternative.
	MatchSuggestThreshold float64
	// ConfidenceFloor is the per-item identification confidence (1–10) below
	// which the whole result is marked uncertain.
	ConfidenceFloor int
	// HighConfidenceMean is the mean identification confidence at or above
	// which a fallback-free result counts as very confident.
	HighConfidenceMean float64
}

func DefaultPipeline() Pipeline {
	return Pipeline{
		MatchAcceptThreshold:  0.6,
		MatchSuggestThreshold: 0.35,
		ConfidenceFloor:       5,
		HighConfidenceMean:    8.0,
	}
}

// LoadPipeline reads overrides from the environment on top of the defaults.
func LoadPipeline() Pipeline {
	p := DefaultPipeline()
	p.MatchAcceptThreshold = envFloat("MATCH_ACCEPT_THRESHOLD", p.MatchAcceptThreshold)
	p.MatchSuggestThreshold = envFloat("MATCH_SUGGEST_THRESHOLD", p.MatchSuggestThreshold)
	p.ConfidenceFloor = envInt("CONFIDENCE_FLOOR", p.ConfidenceFloor)
	p.HighConfidenceMean = envFloat("CONFIDENCE_HIGH_MEAN", p.HighConfidenceMean)
	return p
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
