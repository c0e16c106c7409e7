package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// NewsItem represents a single ingested item from a feed. Items are immutable
// once ingested; identity for deduplication is derived from content, not from
// an externally supplied ID.
type NewsItem struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Standfirst  string    `json:"standfirst,omitempty"`
	Content     string    `json:"content,omitempty"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// Cluster is the output unit of the clustering engine: a set of items believed
// to represent the same story.
type Cluster struct {
	Headline    string      `json:"headline"`
	Title       string      `json:"title"`
	Items       []*NewsItem `json:"items"`
	Coverage    int         `json:"coverage"`
	LatestAt    time.Time   `json:"latest_at"`
	ImageURL    string      `json:"image_url,omitempty"`
}

// FeedResult is the top-level wrapper for one fetched feed
type FeedResult struct {
	FeedURL   string      `json:"feed_url"`
	Source    string      `json:"source"`
	Category  string      `json:"category"`
	FetchedAt time.Time   `json:"fetched_at"`
	ItemCount int         `json:"item_count"`
	Items     []*NewsItem `json:"items"`
}

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
