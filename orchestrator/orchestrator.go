package orchestrator

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"briefbot/clustering"
	"briefbot/config"
	"briefbot/dedup"
	"briefbot/headline"
	"briefbot/kafka"
	"briefbot/rssfeeds"
	"briefbot/storage"
	"briefbot/types"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// MaxItemsPerFeed caps how many entries a single feed contributes per run.
const MaxItemsPerFeed = 25

// RunOnce executes a single end-to-end cycle: fetch every configured feed,
// extract full content, drop already-seen items, cluster each category,
// select headlines, then upload the digest and publish clusters if the
// corresponding sinks are configured.
func RunOnce(ctx context.Context) error {
	// Initialize logging
	log.SetOutput(os.Stderr)
	log.Println("=== BriefBot Orchestrator ===")

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	runID := uuid.NewString()
	log.Printf("Run ID: %s", runID)

	// Step 1: Fetch all feeds, grouped by category
	itemsByCategory := fetchAllFeeds()
	total := 0
	for category, items := range itemsByCategory {
		log.Printf("Fetched %d items for category %q", len(items), category)
		total += len(items)
	}
	if total == 0 {
		log.Println("No items fetched from any feed; nothing to do")
		return nil
	}

	// Step 2: Extract full article content
	for category, items := range itemsByCategory {
		log.Printf("Extracting content for category %q (%d items, %d workers)...",
			category, len(items), rssfeeds.WorkerCount)
		rssfeeds.ExtractAllContent(items)
	}

	// Step 3: Drop items already processed in a previous run (optional)
	seenFilter := initializeSeenFilter()
	if seenFilter != nil {
		defer seenFilter.Close()
		itemsByCategory = filterSeenItems(itemsByCategory, seenFilter)
	}

	// Step 4: Cluster each category with its own thresholds
	selector := initializeHeadlineSelector()
	clustersByCategory := make(map[string][]types.Cluster, len(itemsByCategory))
	for category, items := range itemsByCategory {
		cfg := config.ThresholdsFor(category)
		clusters := clustering.ClusterNewsItems(items, cfg, selector)
		clustersByCategory[category] = clusters
		log.Printf("Category %q: %d item(s) -> %d cluster(s) (merge >= %.2f, validate >= %.2f)",
			category, len(items), len(clusters), cfg.SimilarityThreshold, cfg.MinPairSimilarity)
	}

	// Step 5: Mark surviving items as seen for the next run
	if seenFilter != nil {
		markClusteredItems(clustersByCategory, seenFilter)
	}

	// Step 6: Upload digest to S3 if configured
	digest := &storage.Digest{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Categories:  clustersByCategory,
	}
	if writer := initializeDigestWriter(); writer != nil {
		uctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := writer.Write(uctx, digest)
		cancel()
		if err != nil {
			log.Printf("Warning: digest upload failed: %v", err)
		} else {
			log.Println("Digest uploaded to S3")
		}
	} else {
		log.Println("S3 not configured; skipping digest upload")
	}

	// Step 7: Publish clusters to Kafka if configured
	if publisher := initializePublisher(); publisher != nil {
		defer publisher.Close()
		published := 0
		for category, clusters := range clustersByCategory {
			if err := publisher.PublishClusters(runID, category, clusters); err != nil {
				log.Printf("Warning: failed to publish category %q: %v", category, err)
				continue
			}
			published += len(clusters)
		}
		log.Printf("Published %d cluster(s) to Kafka", published)
	} else {
		log.Println("Kafka not configured; skipping publish")
	}

	displaySummary(clustersByCategory)

	log.Println("=== Orchestrator Run Complete ===")
	return nil
}

// fetchAllFeeds fetches every preset feed concurrently and groups the results
// by category. A failing feed is logged and skipped; it never aborts the run.
func fetchAllFeeds() map[string][]*types.NewsItem {
	type fetchResult struct {
		category string
		items    []*types.NewsItem
	}

	presets := rssfeeds.PresetsByCategory()
	results := make(chan fetchResult)

	var wg sync.WaitGroup
	for category, feeds := range presets {
		for _, feed := range feeds {
			wg.Add(1)
			go func(category string, feed rssfeeds.FeedConfig) {
				defer wg.Done()
				items, err := rssfeeds.FetchFeed(feed.URL, feed.Name, MaxItemsPerFeed)
				if err != nil {
					log.Printf("Warning: failed to fetch feed %s: %v", feed.Name, err)
					return
				}
				results <- fetchResult{category: category, items: items}
			}(category, feed)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	itemsByCategory := make(map[string][]*types.NewsItem)
	for r := range results {
		itemsByCategory[r.category] = append(itemsByCategory[r.category], r.items...)
	}
	return itemsByCategory
}

// filterSeenItems removes items the bloom filter has recorded from a previous
// run. Filter errors fail open: an item we cannot check is kept.
func filterSeenItems(itemsByCategory map[string][]*types.NewsItem, filter *dedup.SeenFilter) map[string][]*types.NewsItem {
	filtered := make(map[string][]*types.NewsItem, len(itemsByCategory))
	skipped := 0
	for category, items := range itemsByCategory {
		kept := make([]*types.NewsItem, 0, len(items))
		for _, item := range items {
			seen, err := filter.Seen(item)
			if err != nil {
				log.Printf("Warning: seen check failed for %s: %v", item.URL, err)
				kept = append(kept, item)
				continue
			}
			if seen {
				skipped++
				continue
			}
			kept = append(kept, item)
		}
		if len(kept) > 0 {
			filtered[category] = kept
		}
	}
	log.Printf("Seen filter skipped %d previously processed item(s)", skipped)
	return filtered
}

// markClusteredItems records every clustered item so later runs skip it.
func markClusteredItems(clustersByCategory map[string][]types.Cluster, filter *dedup.SeenFilter) {
	marked := 0
	for _, clusters := range clustersByCategory {
		for _, cluster := range clusters {
			for _, item := range cluster.Items {
				if err := filter.Mark(item); err != nil {
					log.Printf("Warning: failed to mark item %s as seen: %v", item.URL, err)
					continue
				}
				marked++
			}
		}
	}
	log.Printf("Marked %d item(s) as seen", marked)
}

// initializeSeenFilter connects to Redis if REDIS_ADDR is set. The filter is
// optional: without it every run reprocesses all fetched items.
func initializeSeenFilter() *dedup.SeenFilter {
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) == "" {
		log.Println("Redis not configured; seen filter disabled")
		return nil
	}
	filter, err := dedup.NewSeenFilterFromEnv()
	if err != nil {
		log.Printf("Warning: failed to init seen filter: %v (filter disabled)", err)
		return nil
	}
	return filter
}

// initializeHeadlineSelector returns the embedding-backed selector when a
// Cohere key is present, otherwise the passthrough that defers to the newest
// member's title.
func initializeHeadlineSelector() clustering.HeadlineSelector {
	embedder := headline.NewCohereEmbedderFromEnv()
	if embedder == nil {
		log.Println("COHERE_API_KEY not set; using newest-item headlines")
		return headline.Passthrough{}
	}
	log.Printf("Headline selection via embeddings (model %s)", embedder.ModelName())
	return headline.NewSelector(embedder)
}

// initializeDigestWriter returns a writer if S3 is configured via env.
// Required: S3_BUCKET. Optional: S3_REGION, S3_PROFILE, S3_PREFIX, S3_USE_PATH_STYLE=true
func initializeDigestWriter() *storage.DigestWriter {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	cfg := storage.S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}
	client, err := storage.NewS3(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (uploads disabled)", err)
		return nil
	}

	prefix := strings.TrimSpace(os.Getenv("S3_PREFIX"))
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return storage.NewDigestWriter(client, bucket, prefix)
}

// initializePublisher returns a Kafka publisher if KAFKA_BROKERS is set.
func initializePublisher() *kafka.Publisher {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil
	}

	topic := config.GetEnvOrDefault("KAFKA_TOPIC", "briefbot.clusters")
	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers: strings.Split(brokers, ","),
		Topic:   topic,
	})
	if err != nil {
		log.Printf("Warning: failed to init Kafka publisher: %v (publishing disabled)", err)
		return nil
	}
	return publisher
}

func displaySummary(clustersByCategory map[string][]types.Cluster) {
	totalClusters := 0
	totalItems := 0
	multiSource := 0
	for _, clusters := range clustersByCategory {
		for _, cluster := range clusters {
			totalClusters++
			totalItems += len(cluster.Items)
			if cluster.Coverage > 1 {
				multiSource++
			}
		}
	}

	// Print summary to stderr
	log.Println("\n=== Clustering Summary ===")
	log.Printf("Categories:            %d", len(clustersByCategory))
	log.Printf("Total Clusters:        %d", totalClusters)
	log.Printf("Total Items:           %d", totalItems)
	log.Printf("Multi-source Clusters: %d", multiSource)
	log.Println("==========================")
}
