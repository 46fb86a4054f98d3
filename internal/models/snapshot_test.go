package models

import (
	"encoding/json"
	"testing"
)

func TestNewSnapshot(t *testing.T) {
	snapshot := NewSnapshot("test-snapshot-id", 42)

	if snapshot.SchemaVersion != "vitals.snapshot.v1" {
		t.Errorf("expected schema version 'vitals.snapshot.v1', got %s", snapshot.SchemaVersion)
	}
	if snapshot.SnapshotID != "test-snapshot-id" {
		t.Errorf("expected snapshot ID 'test-snapshot-id', got %s", snapshot.SnapshotID)
	}
	if snapshot.Meta.Sequence != 42 {
		t.Errorf("expected sequence 42, got %d", snapshot.Meta.Sequence)
	}
	if snapshot.GeneratedAt == "" {
		t.Error("expected generated_at to be set")
	}
}

func TestSnapshotJSONMarshaling(t *testing.T) {
	p := 0.02
	snapshot := NewSnapshot("snap-1", 1)
	snapshot.Muscles = map[string]float64{"chest": 100, "quads": 40.5}
	snapshot.Correlations = []PairCorrelationResult{
		{
			MetricX:     "caffeine",
			MetricY:     "sleep",
			SampleSize:  14,
			Correlation: -0.62,
			PValue:      &p,
		},
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
	}

	var parsed Snapshot
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to unmarshal snapshot: %v", err)
	}

	if parsed.Muscles["chest"] != 100 {
		t.Errorf("expected chest score 100, got %v", parsed.Muscles["chest"])
	}
	if len(parsed.Correlations) != 1 {
		t.Fatalf("expected 1 correlation, got %d", len(parsed.Correlations))
	}
	if parsed.Correlations[0].PValue == nil || *parsed.Correlations[0].PValue != 0.02 {
		t.Errorf("p-value did not survive round trip: %v", parsed.Correlations[0].PValue)
	}
}
