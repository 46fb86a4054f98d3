package encoding

import (
	"encoding/json"

	"github.com/vitalslab/vitals-cli/internal/models"
)

// Format represents the encoding format
type Format string

const (
	FormatJSON     Format = "json"
	FormatProtobuf Format = "protobuf"
)

// Encoder encodes snapshots to bytes
type Encoder interface {
	Encode(snapshot models.Snapshot) ([]byte, error)
	ContentType() string
}

// JSONEncoder encodes snapshots as JSON
type JSONEncoder struct{}

func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

func (e *JSONEncoder) Encode(snapshot models.Snapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}

func (e *JSONEncoder) ContentType() string {
	return "application/json"
}

// NewEncoder creates an encoder for the given format
func NewEncoder(format Format) Encoder {
	switch format {
	case FormatProtobuf:
		return NewProtobufEncoder()
	default:
		return NewJSONEncoder()
	}
}
