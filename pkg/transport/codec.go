package transport

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// codecName is the content subtype advertised for the gob codec.
const codecName = "gob"

// gobCodec serializes replication messages with encoding/gob. The service
// descriptor is registered by hand (see inbound.go), so no generated
// bindings are required; every message crossing this transport is a plain
// exported struct.
type gobCodec struct{}

func (gobCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("gob marshal: %w", err)
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(data []byte, v any) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("gob unmarshal: %w", err)
	}
	return nil
}

func (gobCodec) Name() string {
	return codecName
}
