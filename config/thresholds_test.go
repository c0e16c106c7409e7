package config

import (
	"testing"

	"briefbot/clustering"
)

func TestThresholdsForKnownCategory(t *testing.T) {
	cfg := ThresholdsFor("tech")
	if cfg.SimilarityThreshold <= ThresholdsFor("general").SimilarityThreshold {
		t.Error("tech threshold should be stricter than general")
	}
	if cfg.SimilarityThreshold < cfg.MinPairSimilarity {
		t.Error("merge threshold must be >= min-pair threshold")
	}
}

func TestThresholdsForUnknownCategoryDefaults(t *testing.T) {
	cfg := ThresholdsFor("no-such-category")
	if cfg.SimilarityThreshold != clustering.DefaultSimilarityThreshold {
		t.Errorf("unknown category similarity = %v, want default %v",
			cfg.SimilarityThreshold, clustering.DefaultSimilarityThreshold)
	}
	if cfg.MinPairSimilarity != clustering.DefaultMinPairSimilarity {
		t.Errorf("unknown category min-pair = %v, want default %v",
			cfg.MinPairSimilarity, clustering.DefaultMinPairSimilarity)
	}
}

func TestAllCategoryThresholdsWellFormed(t *testing.T) {
	for _, cat := range Categories() {
		cfg := ThresholdsFor(cat)
		if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold >= 1 {
			t.Errorf("%s: merge threshold %v out of (0,1)", cat, cfg.SimilarityThreshold)
		}
		if cfg.MinPairSimilarity <= 0 || cfg.MinPairSimilarity >= 1 {
			t.Errorf("%s: min-pair threshold %v out of (0,1)", cat, cfg.MinPairSimilarity)
		}
		if cfg.SimilarityThreshold < cfg.MinPairSimilarity {
			t.Errorf("%s: merge threshold %v below min-pair %v", cat, cfg.SimilarityThreshold, cfg.MinPairSimilarity)
		}
	}
}
