package bridge

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/framehaus/cadbridge/internal/client"
	"github.com/framehaus/cadbridge/internal/sim"
)

// startServer binds a server on a free port and serves until the test ends.
func startServer(t *testing.T) *client.Client {
	t.Helper()

	model := sim.NewModel()
	srv := NewServer(New(model.API(), nil), 5*time.Second, nil)
	require.NoError(t, srv.Listen("127.0.0.1:0"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return client.New(srv.Addr().String(), 5*time.Second)
}

func TestServerPing(t *testing.T) {
	c := startServer(t)
	require.NoError(t, c.Ping(context.Background()))
}

func TestServerCreateAndQuery(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	resp, err := c.Call(ctx, "create_beam", map[string]any{
		"p1":     []any{0.0, 0.0, 0.0},
		"p2":     []any{2500.0, 0.0, 0.0},
		"width":  100.0,
		"height": 200.0,
	})
	require.NoError(t, err)
	require.True(t, resp.IsOK(), resp.Message)

	// JSON numbers decode as float64 on the wire.
	id, ok := resp.Data["id"].(float64)
	require.True(t, ok)

	resp, err = c.Call(ctx, "get_element_length", map[string]any{"element_id": id})
	require.NoError(t, err)
	require.True(t, resp.IsOK(), resp.Message)
	require.InDelta(t, 2500.0, resp.Data["length"], 1e-9)
}

func TestServerVersionInfoStateless(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	first, err := c.Call(ctx, "get_cadwork_version_info", nil)
	require.NoError(t, err)
	require.True(t, first.IsOK())

	second, err := c.Call(ctx, "get_cadwork_version_info", nil)
	require.NoError(t, err)
	require.Equal(t, first.Data, second.Data)
}

func TestServerUnknownCommandEnvelope(t *testing.T) {
	c := startServer(t)

	resp, err := c.Call(context.Background(), "bogus_command", nil)
	require.NoError(t, err, "transport must survive unknown commands")
	require.False(t, resp.IsOK())
	require.Contains(t, resp.Message, "unknown command")
}

func TestServerRejectsMalformedJSON(t *testing.T) {
	c := startServer(t)

	conn, err := net.DialTimeout("tcp", c.Addr(), 2*time.Second)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetDeadline(time.Now().Add(2*time.Second)))

	_, err = conn.Write([]byte("this is not json"))
	require.NoError(t, err)

	buf := make([]byte, 4096)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	require.Contains(t, string(buf[:n]), "invalid request")
}

func TestServerHandlesSequentialConnections(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Ping(ctx))
	}
}
