// Package protocol defines the JSON wire format spoken between the MCP
// relay and the Cadwork bridge: one request object and one response
// envelope per TCP connection.
package protocol

import (
	"encoding/json"
	"fmt"
	"io"
)

// Status values carried in every response envelope.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Request is a single bridge command.
type Request struct {
	Command string         `json:"command"`
	Params  map[string]any `json:"params,omitempty"`
}

// Response is the uniform result envelope. Data is present on ok
// responses; Message carries the error text (or an informational note).
type Response struct {
	Status  string         `json:"status"`
	Data    map[string]any `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}

// OK builds an ok envelope around the given payload.
func OK(data map[string]any) Response {
	return Response{Status: StatusOK, Data: data}
}

// Errorf builds an error envelope with a formatted message.
func Errorf(format string, args ...any) Response {
	return Response{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// IsOK reports whether the envelope carries an ok status.
func (r Response) IsOK() bool {
	return r.Status == StatusOK
}

// Err returns the envelope's error as a Go error, or nil for ok responses.
func (r Response) Err() error {
	if r.IsOK() {
		return nil
	}
	if r.Message == "" {
		return fmt.Errorf("bridge returned status %q", r.Status)
	}
	return fmt.Errorf("%s", r.Message)
}

// ReadRequest decodes a single request object from r. The bridge accepts
// exactly one JSON value per connection, so trailing bytes are ignored.
func ReadRequest(r io.Reader) (Request, error) {
	var req Request
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	if req.Command == "" {
		return Request{}, fmt.Errorf("request has no command")
	}
	return req, nil
}

// WriteRequest encodes a single request object to w.
func WriteRequest(w io.Writer, req Request) error {
	if err := json.NewEncoder(w).Encode(req); err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return nil
}

// ReadResponse decodes a single response envelope from r.
func ReadResponse(r io.Reader) (Response, error) {
	var resp Response
	dec := json.NewDecoder(r)
	if err := dec.Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("decode response: %w", err)
	}
	return resp, nil
}

// WriteResponse encodes a single response envelope to w.
func WriteResponse(w io.Writer, resp Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
