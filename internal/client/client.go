// Package client dials the bridge listener and exchanges one
// request/response pair per connection.
package client

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/framehaus/cadbridge/internal/protocol"
)

// Client sends commands to a running bridge. Each call opens a fresh
// connection, the bridge serves connections one at a time.
type Client struct {
	addr    string
	timeout time.Duration
}

func New(addr string, timeout time.Duration) *Client {
	return &Client{addr: addr, timeout: timeout}
}

// Addr returns the bridge address this client dials.
func (c *Client) Addr() string {
	return c.addr
}

// Call sends a command with its parameters and waits for the response
// envelope. A returned error means the bridge could not be reached or
// spoke garbage; command failures come back inside the envelope with
// status "error".
func (c *Client) Call(ctx context.Context, command string, params map[string]any) (protocol.Response, error) {
	var resp protocol.Response

	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return resp, fmt.Errorf("connect to bridge at %s: %w", c.addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return resp, fmt.Errorf("set deadline: %w", err)
	}

	req := protocol.Request{Command: command, Params: params}
	if err := protocol.WriteRequest(conn, req); err != nil {
		return resp, fmt.Errorf("send %s: %w", command, err)
	}
	resp, err = protocol.ReadResponse(conn)
	if err != nil {
		return resp, fmt.Errorf("read %s response: %w", command, err)
	}
	return resp, nil
}

// Ping checks that the bridge answers.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Call(ctx, "ping", nil)
	if err != nil {
		return err
	}
	return resp.Err()
}
