package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"briefbot/textsim"
	"briefbot/types"

	"github.com/redis/go-redis/v9"
)

// SeenFilterConfig configures the Redis-backed seen filter
type SeenFilterConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	Key      string // redis key for the bloom filter
	TTL      time.Duration
	// Capacity sets the initial BF.RESERVE capacity (number of items)
	Capacity int
	// ErrorRate sets the desired false positive probability (e.g. 0.001)
	ErrorRate float64
}

// SeenFilter is a probabilistic record of items already published in earlier
// runs, backed by RedisBloom. It is a fetch-layer fast path only: clustering
// itself holds no cross-run state and reclusters from scratch each pass.
type SeenFilter struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewSeenFilterFromEnv creates a SeenFilter using environment variables
// REDIS_ADDR, REDIS_PASS, SEEN_KEY (optional), SEEN_TTL_SECONDS (optional)
func NewSeenFilterFromEnv() (*SeenFilter, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	key := os.Getenv("SEEN_KEY")
	if key == "" {
		key = "briefbot:items:seen"
	}
	ttl := 24 * time.Hour
	if t := os.Getenv("SEEN_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	cfg := SeenFilterConfig{
		Addr:      addr,
		Password:  os.Getenv("REDIS_PASS"),
		Key:       key,
		TTL:       ttl,
		Capacity:  100000,
		ErrorRate: 0.001,
	}
	return NewSeenFilter(cfg)
}

// NewSeenFilter creates a SeenFilter and verifies connectivity
func NewSeenFilter(cfg SeenFilterConfig) (*SeenFilter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	sf := &SeenFilter{client: client, key: cfg.Key, ttl: cfg.TTL}

	// Reserve the filter when the key does not exist yet. BF.RESERVE failure
	// is non-fatal: BF.ADD may auto-create depending on RedisBloom settings.
	exists, err := client.Exists(ctx, cfg.Key).Result()
	if err == nil && exists == 0 {
		_ = client.Do(ctx, "BF.RESERVE", cfg.Key, fmt.Sprintf("%f", cfg.ErrorRate), cfg.Capacity).Err()
	}

	return sf, nil
}

// Close closes the underlying Redis client
func (s *SeenFilter) Close() error {
	return s.client.Close()
}

// Seen checks whether the item was marked in a previous run, within the TTL
// window. False positives are possible at the configured error rate; false
// negatives are not.
func (s *SeenFilter) Seen(item *types.NewsItem) (bool, error) {
	hash, err := itemHash(item)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := s.client.Do(ctx, "BF.EXISTS", s.key, hash).Result()
	if err != nil {
		return false, err
	}

	switch v := res.(type) {
	case int64:
		return v == 1, nil
	case string:
		return v == "1", nil
	default:
		return false, fmt.Errorf("unexpected BF.EXISTS response type %T: %v", res, res)
	}
}

// Mark records the item and refreshes the key's TTL so the filter stays
// alive for the window after the most recent insertion.
func (s *SeenFilter) Mark(item *types.NewsItem) error {
	hash, err := itemHash(item)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Do(ctx, "BF.ADD", s.key, hash).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, s.key, s.ttl).Err()
}

// itemHash returns sha256(normalizedURL + "|" + normalizedTitle). The title
// goes through the same normalizer the fingerprints use, so spelling-variant
// re-announcements of one URL hash identically.
func itemHash(item *types.NewsItem) (string, error) {
	if item == nil {
		return "", fmt.Errorf("nil item")
	}

	combined := normalizeURL(item.URL) + "|" + textsim.Normalize(item.Title)
	h := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(h[:]), nil
}

// normalizeURL strips the fragment and common tracking query parameters,
// lowercases scheme and host, and trims a trailing slash.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "fbclid" || lk == "gclid" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	out := u.String()
	return strings.TrimRight(out, "/")
}
