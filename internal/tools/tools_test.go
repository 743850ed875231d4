package tools

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/framehaus/cadbridge/internal/bridge"
	"github.com/framehaus/cadbridge/internal/client"
	"github.com/framehaus/cadbridge/internal/sim"
)

func allTools(c *client.Client) []server.ServerTool {
	var all []server.ServerTool
	for _, group := range [][]server.ServerTool{
		elementTools(c),
		geometryTools(c),
		attributeTools(c),
		utilityTools(c),
		visualizationTools(c),
		exportTools(c),
		importTools(c),
		listTools(c),
		optimizationTools(c),
		roofTools(c),
		shopDrawingTools(c),
		machineTools(c),
	} {
		all = append(all, group...)
	}
	return all
}

// Every tool must map onto a registered bridge command of the same name.
func TestToolNamesMatchBridgeCommands(t *testing.T) {
	c := client.New("127.0.0.1:1", time.Second)
	model := sim.NewModel()
	d := bridge.New(model.API(), nil)

	registered := make(map[string]bool)
	for _, name := range d.Commands() {
		registered[name] = true
	}

	seen := make(map[string]bool)
	for _, tool := range allTools(c) {
		name := tool.Tool.Name
		require.Falsef(t, seen[name], "duplicate tool %s", name)
		seen[name] = true
		require.Truef(t, registered[name], "tool %s has no bridge command", name)
	}
	require.Greater(t, len(seen), 80)
}

func startBridge(t *testing.T) *client.Client {
	t.Helper()
	model := sim.NewModel()
	srv := bridge.NewServer(bridge.New(model.API(), nil), 5*time.Second, nil)
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

func callTool(t *testing.T, st server.ServerTool, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      st.Tool.Name,
			Arguments: args,
		},
	}
	result, err := st.Handler(context.Background(), req)
	require.NoError(t, err)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func findTool(t *testing.T, tools []server.ServerTool, name string) server.ServerTool {
	t.Helper()
	for _, st := range tools {
		if st.Tool.Name == name {
			return st
		}
	}
	t.Fatalf("tool %s not found", name)
	return server.ServerTool{}
}

func TestRelaySuccess(t *testing.T) {
	c := startBridge(t)
	ping := findTool(t, utilityTools(c), "ping")

	result := callTool(t, ping, nil)
	require.False(t, result.IsError)
	require.Contains(t, resultText(t, result), "pong")
}

func TestRelayBridgeError(t *testing.T) {
	c := startBridge(t)
	length := findTool(t, geometryTools(c), "get_element_length")

	result := callTool(t, length, map[string]any{"element_id": 999.0})
	require.True(t, result.IsError)
}

func TestRelayUnreachableBridge(t *testing.T) {
	c := client.New("127.0.0.1:1", 200*time.Millisecond)
	ping := findTool(t, utilityTools(c), "ping")

	result := callTool(t, ping, nil)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "unreachable")
}
