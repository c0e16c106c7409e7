package rssfeeds

import (
	"fmt"
	"log"
	"sync"
	"time"

	"briefbot/types"

	readability "github.com/go-shiori/go-readability"
)

const (
	WorkerCount      = 5
	extractorTimeout = 30 * time.Second
)

// ExtractAllContent fetches and extracts full body text for all items using a
// worker pool. Extraction failures are logged and leave the item's content
// empty; the clustering core degrades gracefully on weak fingerprints.
func ExtractAllContent(items []*types.NewsItem) {
	var wg sync.WaitGroup
	itemChan := make(chan *types.NewsItem, len(items))

	for i := 0; i < WorkerCount; i++ {
		go func(workerID int) {
			for item := range itemChan {
				if err := extractContent(item); err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, item.URL, err)
				}
				wg.Done()
			}
		}(i)
	}

	for _, item := range items {
		wg.Add(1)
		itemChan <- item
	}

	wg.Wait()
	close(itemChan)
}

// extractContent fetches and extracts body text for a single item
func extractContent(item *types.NewsItem) error {
	if item.URL == "" {
		return fmt.Errorf("item URL is empty")
	}

	extracted, err := readability.FromURL(item.URL, extractorTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	item.Content = extracted.TextContent

	// Use extracted metadata only where the feed gave us nothing
	if item.ImageURL == "" {
		item.ImageURL = extracted.Image
	}
	if item.Standfirst == "" {
		item.Standfirst = extracted.Excerpt
	}

	log.Printf("✓ Extracted: %s", item.Title)
	return nil
}
