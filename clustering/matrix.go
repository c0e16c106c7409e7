package clustering

import (
	"briefbot/textsim"
	"briefbot/types"
)

// PairKey identifies an unordered pair of item ids. NewPairKey canonicalizes
// the order so lookups are order-independent.
type PairKey struct {
	A string
	B string
}

// NewPairKey returns the canonical key for the pair (a, b), with the
// lexicographically smaller id first.
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// SimilarityMatrix holds the Jaccard similarity of every unordered item pair
// from one clustering pass. It is built once and then only read.
type SimilarityMatrix map[PairKey]float64

// Lookup returns the recorded similarity for the pair, or 0 when the pair was
// never scored.
func (m SimilarityMatrix) Lookup(a, b string) float64 {
	return m[NewPairKey(a, b)]
}

// BuildSimilarityMatrix computes pairwise similarity for ALL item pairs.
// Every score is recorded regardless of threshold because the validator needs
// sub-threshold scores too. O(n^2) in the number of items; per-run item counts
// are in the hundreds, so this stays cheap.
func BuildSimilarityMatrix(items []*types.NewsItem, fingerprints map[string]map[string]struct{}) SimilarityMatrix {
	matrix := make(SimilarityMatrix, len(items)*(len(items)-1)/2)
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i].URL, items[j].URL
			matrix[NewPairKey(a, b)] = textsim.Jaccard(fingerprints[a], fingerprints[b])
		}
	}
	return matrix
}
