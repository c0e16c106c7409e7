package dedup

import (
	"briefbot/textsim"
	"briefbot/types"
)

// DefaultTitleSimilarityThreshold is the shingle similarity above which two
// titles from the same journal count as the same article.
const DefaultTitleSimilarityThreshold = 0.85

// Config holds configuration for the deduper
type Config struct {
	// TitleSimilarityThreshold overrides DefaultTitleSimilarityThreshold when non-zero.
	TitleSimilarityThreshold float64
}

// Deduper detects the same research article announced more than once. Unlike
// the news clusterer, which keeps every member attached to a story, duplicate
// groups collapse to a single surviving record.
type Deduper struct {
	titleThreshold float64
}

// NewDeduper creates a new deduper instance
func NewDeduper(cfg Config) *Deduper {
	if cfg.TitleSimilarityThreshold == 0 {
		cfg.TitleSimilarityThreshold = DefaultTitleSimilarityThreshold
	}
	return &Deduper{titleThreshold: cfg.TitleSimilarityThreshold}
}

// GroupKey returns the canonical content hash for an article, derived from
// its normalized title and journal. Announcements of the same article hash to
// the same key; the same title in a different journal does not.
func GroupKey(article *types.MedArticle) string {
	return types.GenerateID(textsim.Normalize(article.Title) + "|" + textsim.Normalize(article.Journal))
}

// AreTitlesSimilar reports whether two titles overlap enough to be the same
// article. Threshold <= 0 falls back to the default.
func AreTitlesSimilar(a, b string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultTitleSimilarityThreshold
	}
	return textsim.Jaccard(textsim.Fingerprint(a), textsim.Fingerprint(b)) >= threshold
}

// AreDuplicates reports whether two announcements describe the same article.
// Cross-journal matches are never duplicates: unrelated articles can carry
// the same title in different venues. Within one journal, identical
// normalized titles or a shingle similarity above the threshold both count.
func (d *Deduper) AreDuplicates(a, b *types.MedArticle) bool {
	if textsim.Normalize(a.Journal) != textsim.Normalize(b.Journal) {
		return false
	}

	normA := textsim.Normalize(a.Title)
	normB := textsim.Normalize(b.Title)
	// An empty title carries no evidence to match on. Two untitled
	// announcements would score a vacuous 1.0, so keep them apart.
	if normA == "" || normB == "" {
		return false
	}
	if normA == normB {
		return true
	}
	return AreTitlesSimilar(a.Title, b.Title, d.titleThreshold)
}

// FindDuplicateGroups maps each group key to the IDs of the announcements in
// that group, in input order. Groups of size 1 are omitted; they are not
// duplicates of anything.
func (d *Deduper) FindDuplicateGroups(articles []*types.MedArticle) map[string][]string {
	groups := make(map[string][]string)
	assigned := make([]bool, len(articles))

	for i, rep := range articles {
		if assigned[i] || rep == nil {
			continue
		}
		assigned[i] = true
		ids := []string{rep.ID}

		for j := i + 1; j < len(articles); j++ {
			if assigned[j] || articles[j] == nil {
				continue
			}
			if d.AreDuplicates(rep, articles[j]) {
				ids = append(ids, articles[j].ID)
				assigned[j] = true
			}
		}

		if len(ids) > 1 {
			groups[GroupKey(rep)] = ids
		}
	}

	return groups
}

// Collapse reduces the input to one surviving record per duplicate group,
// preserving input order. The survivor is the member with the longest
// abstract; ties keep the first seen.
func (d *Deduper) Collapse(articles []*types.MedArticle) []*types.MedArticle {
	assigned := make([]bool, len(articles))
	survivors := make([]*types.MedArticle, 0, len(articles))

	for i, rep := range articles {
		if assigned[i] || rep == nil {
			continue
		}
		assigned[i] = true
		best := rep

		for j := i + 1; j < len(articles); j++ {
			if assigned[j] || articles[j] == nil {
				continue
			}
			if d.AreDuplicates(rep, articles[j]) {
				assigned[j] = true
				if len(articles[j].Abstract) > len(best.Abstract) {
					best = articles[j]
				}
			}
		}

		survivors = append(survivors, best)
	}

	return survivors
}
