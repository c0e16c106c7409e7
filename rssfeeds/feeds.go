package rssfeeds

// FeedConfig represents the configuration for a single RSS feed
type FeedConfig struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// FeedPresets maps friendly keys to RSS feed configurations. The category
// determines which clustering thresholds apply to the feed's items.
var FeedPresets = map[string]FeedConfig{
	"cna": {
		Name:     "Channel News Asia",
		URL:      "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
		Category: "world",
	},
	"st": {
		Name:     "Straits Times",
		URL:      "https://www.straitstimes.com/news/singapore/rss.xml",
		Category: "general",
	},
	"bbc": {
		Name:     "BBC News",
		URL:      "https://feeds.bbci.co.uk/news/world/rss.xml",
		Category: "world",
	},
	"hn": {
		Name:     "Hacker News",
		URL:      "https://hnrss.org/newest",
		Category: "tech",
	},
	"tr": {
		Name:     "Technology Review",
		URL:      "https://www.technologyreview.com/feed/",
		Category: "tech",
	},
	"nature": {
		Name:     "Nature News",
		URL:      "https://www.nature.com/nature.rss",
		Category: "science",
	},
	"bmj": {
		Name:     "BMJ Latest",
		URL:      "https://www.bmj.com/rss/recent.xml",
		Category: "health",
	},
}

// ResolveFeed resolves a feed identifier to its configuration. Preset names
// map to their entry; anything else is treated as a direct URL with an
// unknown source and the default category.
func ResolveFeed(feedInput string) FeedConfig {
	if cfg, exists := FeedPresets[feedInput]; exists {
		return cfg
	}
	return FeedConfig{Name: feedInput, URL: feedInput, Category: "general"}
}

// PresetsByCategory groups the configured presets per category.
func PresetsByCategory() map[string][]FeedConfig {
	out := make(map[string][]FeedConfig)
	for _, cfg := range FeedPresets {
		out[cfg.Category] = append(out[cfg.Category], cfg)
	}
	return out
}
