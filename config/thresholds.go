package config

import (
	"os"

	"briefbot/clustering"
)

// categoryThresholds maps a content category to its clustering tunables.
// Different categories have different baseline lexical overlap: tech
// headlines reuse far more boilerplate vocabulary than general news, so the
// tech thresholds sit higher. Categories not listed here get the clustering
// package defaults (0.18 merge / 0.08 min-pair).
var categoryThresholds = map[string]clustering.Config{
	"general": {SimilarityThreshold: 0.18, MinPairSimilarity: 0.08},
	"world":   {SimilarityThreshold: 0.18, MinPairSimilarity: 0.08},
	"tech":    {SimilarityThreshold: 0.25, MinPairSimilarity: 0.12},
	"science": {SimilarityThreshold: 0.22, MinPairSimilarity: 0.10},
	"health":  {SimilarityThreshold: 0.20, MinPairSimilarity: 0.09},
}

// ThresholdsFor returns the clustering tunables for a category. Unknown
// categories fall back to the documented defaults rather than failing, so a
// new feed category never breaks a run.
func ThresholdsFor(category string) clustering.Config {
	if cfg, ok := categoryThresholds[category]; ok {
		return cfg
	}
	return clustering.Config{
		SimilarityThreshold: clustering.DefaultSimilarityThreshold,
		MinPairSimilarity:   clustering.DefaultMinPairSimilarity,
	}
}

// Categories lists the categories with explicit threshold entries.
func Categories() []string {
	out := make([]string, 0, len(categoryThresholds))
	for c := range categoryThresholds {
		out = append(out, c)
	}
	return out
}

// GetEnvOrDefault returns the environment variable value or fallback when unset.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
