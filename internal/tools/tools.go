// Package tools exposes the bridge command set as MCP tools. Every
// tool relays its arguments unchanged to the bridge command of the
// same name and returns the command's data payload as JSON.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

// RegisterAll registers the full tool surface on the MCP server.
func RegisterAll(s *server.MCPServer, c *client.Client) {
	groups := [][]server.ServerTool{
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
	}
	for _, group := range groups {
		s.AddTools(group...)
	}
}

// relay builds a ServerTool whose handler forwards the raw tool
// arguments to the bridge command named after the tool.
func relay(c *client.Client, tool mcp.Tool) server.ServerTool {
	command := tool.Name
	return server.ServerTool{
		Tool: tool,
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			resp, err := c.Call(ctx, command, req.GetArguments())
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("bridge at %s unreachable: %v", c.Addr(), err)), nil
			}
			if !resp.IsOK() {
				return mcp.NewToolResultError(resp.Message), nil
			}
			return jsonResult(resp.Data)
		},
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal tool response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(encoded)), nil
}
