package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"briefbot/types"
)

func TestEncodeClusterMessage(t *testing.T) {
	msg := &ClusterMessage{
		RunID:       "run-42",
		Category:    "general",
		PublishedAt: time.Date(2026, 8, 30, 7, 0, 0, 0, time.UTC),
		Cluster: types.Cluster{
			Headline: "Rates held steady",
			Title:    "Central bank holds interest rates steady",
			Coverage: 2,
		},
	}

	payload, err := EncodeClusterMessage(msg)
	if err != nil {
		t.Fatalf("EncodeClusterMessage error: %v", err)
	}

	var decoded ClusterMessage
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded.RunID != msg.RunID || decoded.Category != msg.Category {
		t.Errorf("round trip lost fields: %+v", decoded)
	}
	if decoded.Cluster.Coverage != 2 {
		t.Errorf("cluster coverage = %d, want 2", decoded.Cluster.Coverage)
	}
}

func TestEncodeClusterMessageNil(t *testing.T) {
	if _, err := EncodeClusterMessage(nil); err == nil {
		t.Error("expected error for nil message")
	}
}
