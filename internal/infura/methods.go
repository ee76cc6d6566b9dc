package infura

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Methods is the response of GetClientMethods: the JSON-RPC methods callable
// through GetClientMethod and through PostClientMethod.
type Methods struct {
	Get  []string `json:"get"`
	Post []string `json:"post"`
}

// SupportsGet reports whether method can be called with GetClientMethod.
func (m Methods) SupportsGet(method string) bool {
	return slices.Contains(m.Get, method)
}

// SupportsPost reports whether method can be called with PostClientMethod.
func (m Methods) SupportsPost(method string) bool {
	return slices.Contains(m.Post, method)
}

// DecodeMethods decodes a GetClientMethods body.
func DecodeMethods(body json.RawMessage) (Methods, error) {
	var m Methods
	if err := json.Unmarshal(body, &m); err != nil {
		return Methods{}, fmt.Errorf("decoding methods: %w", err)
	}
	return m, nil
}
