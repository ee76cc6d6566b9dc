// Package jsonrpc defines the JSON-RPC 2.0 envelopes exchanged with Infura's
// REST proxy. Requests always carry id 1, and responses can be unwrapped into
// their raw result or a provider error.
package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultVersion is the protocol version sent when none is configured.
const DefaultVersion = "2.0"

// requestID is the identifier sent with every request.
const requestID = 1

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// Request is the JSON-RPC envelope posted to the server.
type Request struct {
	ID      int    `json:"id"`      // Always 1
	JSONRPC string `json:"jsonrpc"` // Protocol version, "2.0" unless overridden
	Method  string `json:"method"`  // Remote procedure name
	Params  []any  `json:"params"`  // Positional parameters, never null on the wire
}

// NewRequest builds an envelope for method. A nil params slice is sent as an
// empty array; the order of params is preserved.
func NewRequest(version, method string, params []any) Request {
	if params == nil {
		params = []any{}
	}

	return Request{
		ID:      requestID,
		JSONRPC: version,
		Method:  method,
		Params:  params,
	}
}

// ErrorObject is the error member of a JSON-RPC response.
type ErrorObject struct {
	Code    int             `json:"code"`           // Error code defined by the JSON-RPC spec or custom server logic
	Message string          `json:"message"`        // Human-readable error message
	Data    json.RawMessage `json:"data,omitempty"` // Optional server supplied detail
}

// Response represents a standard JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Error   *ErrorObject    `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r Response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// DecodeResponse parses body as a JSON-RPC response and returns its raw result,
// or the provider error when the response carries one.
func DecodeResponse(body []byte) (json.RawMessage, error) {
	var res Response
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}

	if err := res.Err(); err != nil {
		return nil, err
	}

	return res.Result, nil
}
