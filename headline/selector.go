package headline

import (
	"log"
	"math"

	"briefbot/types"
)

// Passthrough echoes the representative title: the first member item, which
// the clustering engine hands over newest-first.
type Passthrough struct{}

func (Passthrough) SelectBestHeadline(items []*types.NewsItem) string {
	if len(items) == 0 {
		return ""
	}
	return items[0].Title
}

// Embedder abstracts a text->embedding generator
// Implementations should return one embedding vector per input text.
type Embedder interface {
	EmbedTexts(texts []string) ([][]float32, error)
	ModelName() string
}

// Selector picks the member title closest to the embedding centroid of all
// member titles: the phrasing most representative of how the story is being
// reported, rather than any one outlet's slant.
type Selector struct {
	embedder Embedder
}

// NewSelector creates a selector backed by the given embedder.
func NewSelector(embedder Embedder) *Selector {
	return &Selector{embedder: embedder}
}

// SelectBestHeadline returns the most central member title. Any failure is
// logged and reported as "", which tells the clustering engine to fall back
// to the representative title on its own.
func (s *Selector) SelectBestHeadline(items []*types.NewsItem) string {
	titles := distinctTitles(items)
	if len(titles) == 0 {
		return ""
	}
	if len(titles) == 1 {
		return titles[0]
	}

	vectors, err := s.embedder.EmbedTexts(titles)
	if err != nil {
		log.Printf("Warning: headline embedding failed: %v", err)
		return ""
	}
	if len(vectors) != len(titles) {
		log.Printf("Warning: headline embedding count mismatch: %d vectors for %d titles", len(vectors), len(titles))
		return ""
	}

	centroid := meanVector(vectors)
	bestIdx := 0
	bestSim := math.Inf(-1)
	for i, vec := range vectors {
		if sim := cosineSimilarity(vec, centroid); sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}
	return titles[bestIdx]
}

func distinctTitles(items []*types.NewsItem) []string {
	seen := make(map[string]struct{}, len(items))
	titles := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil || item.Title == "" {
			continue
		}
		if _, ok := seen[item.Title]; ok {
			continue
		}
		seen[item.Title] = struct{}{}
		titles = append(titles, item.Title)
	}
	return titles
}

func meanVector(vectors [][]float32) []float64 {
	if len(vectors) == 0 {
		return nil
	}
	mean := make([]float64, len(vectors[0]))
	for _, vec := range vectors {
		for i, v := range vec {
			if i < len(mean) {
				mean[i] += float64(v)
			}
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}
	return mean
}

func cosineSimilarity(a []float32, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		av := float64(a[i])
		dot += av * b[i]
		normA += av * av
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
