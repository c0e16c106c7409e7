package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"briefbot/types"
)

// Digest is one run's complete output: the ranked clusters per category plus
// any duplicate groups found among research-alert articles. It fully replaces
// the previous run's digest; clusters are never persisted as mutable entities.
type Digest struct {
	RunID           string                     `json:"run_id"`
	GeneratedAt     time.Time                  `json:"generated_at"`
	Categories      map[string][]types.Cluster `json:"categories"`
	DuplicateGroups map[string][]string        `json:"duplicate_groups,omitempty"`
}

// DigestWriter serializes digests to JSON and uploads them to S3.
type DigestWriter struct {
	s3     *S3
	bucket string
	prefix string
}

// NewDigestWriter creates a writer targeting the given bucket/prefix.
func NewDigestWriter(s3c *S3, bucket, prefix string) *DigestWriter {
	return &DigestWriter{s3: s3c, bucket: bucket, prefix: prefix}
}

// Write uploads the digest under both a per-run key and a "latest" key that
// downstream readers poll.
func (w *DigestWriter) Write(ctx context.Context, digest *Digest) error {
	payload, err := EncodeDigest(digest)
	if err != nil {
		return err
	}

	runKey := w.prefix + "digests/" + digest.RunID + ".json"
	if err := w.s3.Put(ctx, w.bucket, runKey, bytes.NewReader(payload), "application/json", ""); err != nil {
		return fmt.Errorf("failed to upload digest %s: %w", runKey, err)
	}

	latestKey := w.prefix + "digests/latest.json"
	if err := w.s3.Put(ctx, w.bucket, latestKey, bytes.NewReader(payload), "application/json", "public, max-age=300"); err != nil {
		return fmt.Errorf("failed to upload latest digest: %w", err)
	}
	return nil
}

// EncodeDigest renders the digest as indented JSON.
func EncodeDigest(digest *Digest) ([]byte, error) {
	if digest == nil {
		return nil, fmt.Errorf("nil digest")
	}
	payload, err := json.MarshalIndent(digest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode digest: %w", err)
	}
	return payload, nil
}
