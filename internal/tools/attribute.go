package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

func attributeTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("get_standard_attributes",
			mcp.WithDescription("Return name, group, subgroup, comment and material for each element."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("get_user_attributes",
			mcp.WithDescription("Return user-defined attribute values for each element."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
			mcp.WithArray("attribute_numbers", mcp.Description("User attribute slot numbers, starting at 1"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("list_defined_user_attributes",
			mcp.WithDescription("List the user attribute slots that carry a name."),
		)),
	}
}
