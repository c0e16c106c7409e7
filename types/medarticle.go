package types

import "time"

// MedArticle represents one research-alert article announcement. The same
// underlying article is often re-announced by several alert services, so the
// deduplicator collapses announcements down to a single surviving record.
type MedArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Journal     string    `json:"journal"`
	Abstract    string    `json:"abstract,omitempty"`
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
