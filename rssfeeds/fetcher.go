package rssfeeds

import (
	"fmt"
	"time"

	"briefbot/types"

	"github.com/mmcdole/gofeed"
)

// FetchFeed retrieves and parses an RSS/Atom feed, returning items in the
// order the feed lists them. The source name is attached to every item for
// coverage counting downstream.
func FetchFeed(feedURL, source string, maxCount int) ([]*types.NewsItem, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	return itemsFromFeed(feed, source, maxCount), nil
}

// itemsFromFeed maps parsed feed entries onto NewsItems. Missing fields
// degrade to empty values; the clustering core tolerates them.
func itemsFromFeed(feed *gofeed.Feed, source string, maxCount int) []*types.NewsItem {
	count := min(len(feed.Items), maxCount)
	items := make([]*types.NewsItem, 0, count)

	for i := 0; i < count; i++ {
		entry := feed.Items[i]
		if entry.Link == "" {
			continue
		}

		var publishedAt time.Time
		if entry.PublishedParsed != nil {
			publishedAt = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			publishedAt = *entry.UpdatedParsed
		}

		item := &types.NewsItem{
			URL:         entry.Link,
			Title:       entry.Title,
			Standfirst:  entry.Description,
			Content:     entry.Content,
			Source:      source,
			PublishedAt: publishedAt,
		}

		if entry.Image != nil {
			item.ImageURL = entry.Image.URL
		}

		items = append(items, item)
	}

	return items
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
