package service

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec lets Connect carry plain Go structs as JSON. It replaces the
// default protobuf-JSON codec registered under the same name.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// Codec returns the option that installs the JSON codec on a handler or client.
func Codec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
