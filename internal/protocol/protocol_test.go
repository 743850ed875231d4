package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestRequestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	req := Request{
		Command: "create_beam",
		Params: map[string]any{
			"width": 120.0,
			"p1":    []any{0.0, 0.0, 0.0},
		},
	}
	if err := WriteRequest(&buf, req); err != nil {
		t.Fatalf("WriteRequest: %v", err)
	}
	got, err := ReadRequest(&buf)
	if err != nil {
		t.Fatalf("ReadRequest: %v", err)
	}
	if got.Command != "create_beam" {
		t.Fatalf("command = %q, want create_beam", got.Command)
	}
	if got.Params["width"] != 120.0 {
		t.Fatalf("width = %v, want 120", got.Params["width"])
	}
}

func TestReadRequestRejectsEmptyCommand(t *testing.T) {
	_, err := ReadRequest(strings.NewReader(`{"params":{}}`))
	if err == nil {
		t.Fatal("expected error for missing command")
	}
}

func TestReadRequestRejectsGarbage(t *testing.T) {
	_, err := ReadRequest(strings.NewReader("not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestResponseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResponse(&buf, OK(map[string]any{"id": 7.0})); err != nil {
		t.Fatalf("WriteResponse: %v", err)
	}
	got, err := ReadResponse(&buf)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if !got.IsOK() {
		t.Fatalf("status = %q, want ok", got.Status)
	}
	if got.Err() != nil {
		t.Fatalf("Err() = %v, want nil", got.Err())
	}
	if got.Data["id"] != 7.0 {
		t.Fatalf("id = %v, want 7", got.Data["id"])
	}
}

func TestErrorEnvelope(t *testing.T) {
	resp := Errorf("unknown command: %s", "bogus")
	if resp.IsOK() {
		t.Fatal("error response reported ok")
	}
	err := resp.Err()
	if err == nil || !strings.Contains(err.Error(), "unknown command: bogus") {
		t.Fatalf("Err() = %v", err)
	}
}
