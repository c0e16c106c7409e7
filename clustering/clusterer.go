package clustering

import (
	"sort"
	"strings"

	"briefbot/textsim"
	"briefbot/types"
)

// Default thresholds for general news. Categories with more boilerplate
// vocabulary (tech headlines especially) should pass stricter values.
const (
	DefaultSimilarityThreshold = 0.18
	DefaultMinPairSimilarity   = 0.08
)

// Config carries the two tunables of one clustering call. SimilarityThreshold
// is the minimum pairwise similarity that merges two items; MinPairSimilarity
// is the lower bar every pair inside a finished group must still clear.
// SimilarityThreshold is expected to be >= MinPairSimilarity.
type Config struct {
	SimilarityThreshold float64
	MinPairSimilarity   float64
}

func applyConfigDefaults(cfg Config) Config {
	if cfg.SimilarityThreshold == 0 {
		cfg.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if cfg.MinPairSimilarity == 0 {
		cfg.MinPairSimilarity = DefaultMinPairSimilarity
	}
	return cfg
}

// HeadlineSelector picks a neutral headline for a cluster given its member
// items, newest first. Implementations may simply echo the representative
// title or call out to an external summarization service; either way they
// must resolve synchronously and fall back internally, returning "" only when
// they have nothing to offer.
type HeadlineSelector interface {
	SelectBestHeadline(items []*types.NewsItem) string
}

// ClusterNewsItems partitions items into clusters of near-duplicate stories.
// The input list is treated as read-only; every call reclusters from scratch
// and returns an independent result, so concurrent calls for different
// categories need no locking.
func ClusterNewsItems(items []*types.NewsItem, cfg Config, selector HeadlineSelector) []types.Cluster {
	cfg = applyConfigDefaults(cfg)

	unique := dedupeByURL(items)
	if len(unique) == 0 {
		return []types.Cluster{}
	}

	fingerprints := make(map[string]map[string]struct{}, len(unique))
	for _, item := range unique {
		fingerprints[item.URL] = textsim.Fingerprint(fingerprintText(item))
	}

	matrix := BuildSimilarityMatrix(unique, fingerprints)

	ids := make([]string, len(unique))
	for i, item := range unique {
		ids[i] = item.URL
	}
	uf := NewUnionFind(ids)
	for i := 0; i < len(unique); i++ {
		// Items with nothing to fingerprint stay singletons: their only
		// possible match is another empty item, at a vacuous similarity of 1.
		if len(fingerprints[unique[i].URL]) == 0 {
			continue
		}
		for j := i + 1; j < len(unique); j++ {
			if len(fingerprints[unique[j].URL]) == 0 {
				continue
			}
			if matrix.Lookup(unique[i].URL, unique[j].URL) >= cfg.SimilarityThreshold {
				uf.Union(unique[i].URL, unique[j].URL)
			}
		}
	}

	groups := materializeGroups(unique, uf)
	groups = validateGroups(groups, matrix, cfg.MinPairSimilarity)

	clusters := make([]types.Cluster, 0, len(groups))
	for _, group := range groups {
		clusters = append(clusters, buildCluster(group, selector))
	}

	// Rank by coverage, then freshness. The sort is stable so equal clusters
	// keep their insertion order and output stays deterministic.
	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].Coverage != clusters[j].Coverage {
			return clusters[i].Coverage > clusters[j].Coverage
		}
		return clusters[i].LatestAt.After(clusters[j].LatestAt)
	})

	return clusters
}

// fingerprintText is the text an item is fingerprinted on: the title plus the
// standfirst where present.
func fingerprintText(item *types.NewsItem) string {
	if item.Standfirst == "" {
		return item.Title
	}
	return item.Title + " " + item.Standfirst
}

// dedupeByURL removes exact duplicates (same canonical URL) before
// fingerprinting, keeping the copy with the longer body content; ties keep
// the first seen. A missing image or standfirst on the kept copy is
// backfilled from the discarded one so nothing the feed delivered is lost.
func dedupeByURL(items []*types.NewsItem) []*types.NewsItem {
	kept := make(map[string]int, len(items))
	unique := make([]*types.NewsItem, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}
		idx, seen := kept[item.URL]
		if !seen {
			kept[item.URL] = len(unique)
			unique = append(unique, item)
			continue
		}

		winner, loser := unique[idx], item
		if len(item.Content) > len(winner.Content) {
			winner, loser = item, unique[idx]
		}
		if winner.ImageURL == "" && loser.ImageURL != "" ||
			winner.Standfirst == "" && loser.Standfirst != "" {
			copied := *winner
			if copied.ImageURL == "" {
				copied.ImageURL = loser.ImageURL
			}
			if copied.Standfirst == "" {
				copied.Standfirst = loser.Standfirst
			}
			winner = &copied
		}
		unique[idx] = winner
	}

	return unique
}

// materializeGroups collects items per union-find root, ordered by the first
// appearance of each root in the input.
func materializeGroups(items []*types.NewsItem, uf *UnionFind) [][]*types.NewsItem {
	byRoot := make(map[string][]*types.NewsItem, len(items))
	var rootOrder []string

	for _, item := range items {
		root := uf.Find(item.URL)
		if _, ok := byRoot[root]; !ok {
			rootOrder = append(rootOrder, root)
		}
		byRoot[root] = append(byRoot[root], item)
	}

	groups := make([][]*types.NewsItem, 0, len(rootOrder))
	for _, root := range rootOrder {
		groups = append(groups, byRoot[root])
	}
	return groups
}

// buildCluster picks the representative fields for one validated group.
func buildCluster(members []*types.NewsItem, selector HeadlineSelector) types.Cluster {
	sorted := make([]*types.NewsItem, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})

	title := sorted[0].Title

	headline := ""
	if selector != nil {
		headline = strings.TrimSpace(selector.SelectBestHeadline(sorted))
	}
	if headline == "" {
		headline = title
	}

	sources := make(map[string]struct{}, len(sorted))
	for _, item := range sorted {
		sources[item.Source] = struct{}{}
	}

	imageURL := ""
	for _, item := range sorted {
		if item.ImageURL != "" {
			imageURL = item.ImageURL
			break
		}
	}

	return types.Cluster{
		Headline: headline,
		Title:    title,
		Items:    sorted,
		Coverage: len(sources),
		LatestAt: sorted[0].PublishedAt,
		ImageURL: imageURL,
	}
}
