package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

func visualizationTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("set_color",
			mcp.WithDescription("Set the color of elements using a Cadwork color id from 1 to 255."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
			mcp.WithNumber("color_id", mcp.Description("Color id between 1 and 255"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("get_color",
			mcp.WithDescription("Return the color id and name of one element."),
			mcp.WithNumber("element_id", mcp.Description("Element id"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("set_visibility",
			mcp.WithDescription("Show or hide elements."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
			mcp.WithBoolean("visible", mcp.Description("True to show, false to hide"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("set_transparency",
			mcp.WithDescription("Set element transparency between 0 (opaque) and 100 (invisible)."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
			mcp.WithNumber("transparency", mcp.Description("Transparency from 0 to 100"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("get_transparency",
			mcp.WithDescription("Return the transparency value of one element."),
			mcp.WithNumber("element_id", mcp.Description("Element id"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("show_all_elements",
			mcp.WithDescription("Make every element in the model visible."),
		)),
		relay(c, mcp.NewTool("hide_all_elements",
			mcp.WithDescription("Hide every element in the model."),
		)),
		relay(c, mcp.NewTool("refresh_display",
			mcp.WithDescription("Force a display refresh."),
		)),
		relay(c, mcp.NewTool("get_visible_element_count",
			mcp.WithDescription("Return how many elements are currently visible."),
		)),
	}
}
