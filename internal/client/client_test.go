package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/framehaus/cadbridge/internal/protocol"
)

// echoBridge accepts one connection at a time and answers every request
// with an ok envelope echoing the command name.
func echoBridge(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			req, err := protocol.ReadRequest(conn)
			if err == nil {
				_ = protocol.WriteResponse(conn, protocol.OK(map[string]any{"command": req.Command}))
			}
			conn.Close()
		}
	}()
	return ln.Addr().String()
}

func TestCallRoundTrip(t *testing.T) {
	addr := echoBridge(t)
	c := New(addr, 2*time.Second)
	require.Equal(t, addr, c.Addr())

	resp, err := c.Call(context.Background(), "ping", map[string]any{"x": 1})
	require.NoError(t, err)
	require.True(t, resp.IsOK())
	require.Equal(t, "ping", resp.Data["command"])
}

func TestCallConnectionRefused(t *testing.T) {
	// Grab a free port and close it again so nothing listens there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := New(addr, 500*time.Millisecond)
	_, err = c.Call(context.Background(), "ping", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "connect to bridge")
}

func TestPingSurfacesErrorEnvelope(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		_, _ = protocol.ReadRequest(conn)
		_ = protocol.WriteResponse(conn, protocol.Errorf("native API unavailable"))
		conn.Close()
	}()

	c := New(ln.Addr().String(), 2*time.Second)
	err = c.Ping(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "native API unavailable")
}
