package clustering

import (
	"testing"

	"briefbot/types"
)

func TestValidatorRejectsChainedGroup(t *testing.T) {
	a := &types.NewsItem{URL: "a"}
	b := &types.NewsItem{URL: "b"}
	c := &types.NewsItem{URL: "c"}

	// Union-find would merge {a,b,c} at threshold 0.18 because sim(a,b) and
	// sim(b,c) both clear it, but sim(a,c) = 0.05 is below the 0.08 min-pair
	// bar, so the whole group must dissolve into singletons.
	matrix := SimilarityMatrix{
		NewPairKey("a", "b"): 0.20,
		NewPairKey("b", "c"): 0.20,
		NewPairKey("a", "c"): 0.05,
	}

	groups := validateGroups([][]*types.NewsItem{{a, b, c}}, matrix, 0.08)

	if len(groups) != 3 {
		t.Fatalf("chained group must split into 3 singletons, got %d groups", len(groups))
	}
	for i, g := range groups {
		if len(g) != 1 {
			t.Errorf("group %d has %d members, want 1", i, len(g))
		}
	}
}

func TestValidatorAcceptsCoherentGroup(t *testing.T) {
	a := &types.NewsItem{URL: "a"}
	b := &types.NewsItem{URL: "b"}
	c := &types.NewsItem{URL: "c"}

	matrix := SimilarityMatrix{
		NewPairKey("a", "b"): 0.30,
		NewPairKey("b", "c"): 0.25,
		NewPairKey("a", "c"): 0.10,
	}

	groups := validateGroups([][]*types.NewsItem{{a, b, c}}, matrix, 0.08)
	if len(groups) != 1 || len(groups[0]) != 3 {
		t.Fatalf("coherent group must survive intact, got %v", groups)
	}
}

func TestValidatorSingletonAlwaysValid(t *testing.T) {
	a := &types.NewsItem{URL: "a"}
	groups := validateGroups([][]*types.NewsItem{{a}}, SimilarityMatrix{}, 0.99)
	if len(groups) != 1 || len(groups[0]) != 1 {
		t.Fatalf("singleton group must always be valid, got %v", groups)
	}
}
