package models

import "time"

// SnapshotSchema is the schema identifier for broadcast snapshots
const SnapshotSchema = "vitals.snapshot.v1"

// Snapshot is a full derived-statistics result computed from the journal.
// Score maps are 0-100 normalized; a missing map means the corresponding
// input data was empty.
type Snapshot struct {
	SchemaVersion string                  `json:"schema_version"`
	SnapshotID    string                  `json:"snapshot_id"`
	GeneratedAt   string                  `json:"generated_at"`
	Muscles       map[string]float64      `json:"muscles"`
	Skeletal      map[string]float64      `json:"skeletal"`
	Organs        map[string]float64      `json:"organs"`
	Correlations  []PairCorrelationResult `json:"correlations"`
	Notes         []string                `json:"notes,omitempty"`
	Meta          Meta                    `json:"meta"`
}

// Meta contains additional snapshot metadata
type Meta struct {
	Sequence int64 `json:"sequence"`
}

// NewSnapshot creates a Snapshot envelope with the current timestamp
func NewSnapshot(snapshotID string, sequence int64) Snapshot {
	return Snapshot{
		SchemaVersion: SnapshotSchema,
		SnapshotID:    snapshotID,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339Nano),
		Meta: Meta{
			Sequence: sequence,
		},
	}
}
