package encoding

import (
	"encoding/json"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vitalslab/vitals-cli/internal/models"
)

func testSnapshot() models.Snapshot {
	snapshot := models.NewSnapshot("snap-test", 7)
	snapshot.Muscles = map[string]float64{"chest": 100, "quads": 33.3}
	snapshot.Organs = map[string]float64{"heart": 80}
	return snapshot
}

func TestJSONEncoder(t *testing.T) {
	encoder := NewJSONEncoder()

	data, err := encoder.Encode(testSnapshot())
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	var parsed models.Snapshot
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.SnapshotID != "snap-test" {
		t.Errorf("expected snapshot id 'snap-test', got %s", parsed.SnapshotID)
	}

	if encoder.ContentType() != "application/json" {
		t.Errorf("wrong content type: %s", encoder.ContentType())
	}
}

func TestProtobufEncoder(t *testing.T) {
	encoder := NewProtobufEncoder()

	data, err := encoder.Encode(testSnapshot())
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty protobuf payload")
	}

	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		t.Fatalf("payload is not a valid Struct: %v", err)
	}

	fields := pb.GetFields()
	if fields["snapshot_id"].GetStringValue() != "snap-test" {
		t.Errorf("expected snapshot_id 'snap-test', got %v", fields["snapshot_id"])
	}
	muscles := fields["muscles"].GetStructValue().GetFields()
	if muscles["chest"].GetNumberValue() != 100 {
		t.Errorf("expected chest 100, got %v", muscles["chest"])
	}

	if encoder.ContentType() != "application/x-protobuf" {
		t.Errorf("wrong content type: %s", encoder.ContentType())
	}
}

func TestNewEncoder(t *testing.T) {
	if _, ok := NewEncoder(FormatProtobuf).(*ProtobufEncoder); !ok {
		t.Error("expected protobuf encoder")
	}
	if _, ok := NewEncoder(FormatJSON).(*JSONEncoder); !ok {
		t.Error("expected JSON encoder")
	}
	if _, ok := NewEncoder("unknown").(*JSONEncoder); !ok {
		t.Error("expected JSON fallback for unknown format")
	}
}
