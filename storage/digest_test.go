package storage

import (
	"encoding/json"
	"testing"
	"time"

	"briefbot/types"
)

func TestEncodeDigestRoundTrip(t *testing.T) {
	digest := &Digest{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 8, 30, 7, 0, 0, 0, time.UTC),
		Categories: map[string][]types.Cluster{
			"general": {
				{
					Headline: "Rates held steady",
					Title:    "Central bank holds interest rates steady",
					Coverage: 2,
					Items: []*types.NewsItem{
						{URL: "https://a.example/1", Title: "Central bank holds interest rates steady", Source: "A"},
						{URL: "https://b.example/1", Title: "Central bank keeps rates on hold", Source: "B"},
					},
				},
			},
		},
		DuplicateGroups: map[string][]string{"abc123": {"a1", "a2"}},
	}

	payload, err := EncodeDigest(digest)
	if err != nil {
		t.Fatalf("EncodeDigest error: %v", err)
	}

	var decoded Digest
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("digest payload is not valid JSON: %v", err)
	}
	if decoded.RunID != digest.RunID {
		t.Errorf("run_id = %q, want %q", decoded.RunID, digest.RunID)
	}
	if len(decoded.Categories["general"]) != 1 {
		t.Errorf("expected one general cluster in payload, got %d", len(decoded.Categories["general"]))
	}
	if got := decoded.DuplicateGroups["abc123"]; len(got) != 2 {
		t.Errorf("duplicate group = %v, want 2 members", got)
	}
}

func TestEncodeDigestNil(t *testing.T) {
	if _, err := EncodeDigest(nil); err == nil {
		t.Error("expected error for nil digest")
	}
}
