package encoding

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vitalslab/vitals-cli/internal/models"
)

// ProtobufEncoder encodes snapshots as protocol buffers using the
// well-known Struct type, so consumers need no generated schema.
type ProtobufEncoder struct{}

func NewProtobufEncoder() *ProtobufEncoder {
	return &ProtobufEncoder{}
}

func (e *ProtobufEncoder) Encode(snapshot models.Snapshot) ([]byte, error) {
	pb, err := snapshotToStruct(snapshot)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(pb)
}

func (e *ProtobufEncoder) ContentType() string {
	return "application/x-protobuf"
}

// snapshotToStruct converts a snapshot into a structpb.Struct via its
// JSON form, which keeps wire field names aligned with the JSON encoding.
func snapshotToStruct(snapshot models.Snapshot) (*structpb.Struct, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to rebuild snapshot fields: %w", err)
	}

	pb, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build struct: %w", err)
	}
	return pb, nil
}
