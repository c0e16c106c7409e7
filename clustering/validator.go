package clustering

import "briefbot/types"

// validateGroups rejects transitively-chained false positives. Union-find
// merges A with B and B with C even when sim(A, C) is far below threshold,
// the classic single-link artifact. A group survives only if EVERY pairwise
// similarity among its members, looked up from the matrix built during the
// merge pass, is at least minPair. A failing group is not split and
// re-clustered: all of its members become singleton groups. Under-clustering
// beats showing unrelated stories as one.
func validateGroups(groups [][]*types.NewsItem, matrix SimilarityMatrix, minPair float64) [][]*types.NewsItem {
	out := make([][]*types.NewsItem, 0, len(groups))
	for _, group := range groups {
		if groupIsValid(group, matrix, minPair) {
			out = append(out, group)
			continue
		}
		for _, item := range group {
			out = append(out, []*types.NewsItem{item})
		}
	}
	return out
}

// groupIsValid reports whether every pair in the group clears minPair.
// Singleton groups are trivially valid.
func groupIsValid(group []*types.NewsItem, matrix SimilarityMatrix, minPair float64) bool {
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			if matrix.Lookup(group[i].URL, group[j].URL) < minPair {
				return false
			}
		}
	}
	return true
}
