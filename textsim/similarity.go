package textsim

// Jaccard returns |intersection| / |union| of the two token sets.
// Two empty sets are vacuously identical (similarity 1); if exactly one set
// is empty the similarity is 0. The result is symmetric and bounded in [0,1].
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
