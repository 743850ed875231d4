package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

func roofTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("get_roof_surfaces",
			mcp.WithDescription("Analyze elements as roof surfaces and report their reference areas."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("calculate_roof_area",
			mcp.WithDescription("Sum the sloped roof area of elements in mm2 and m2."),
			mcp.WithArray("roof_element_ids", mcp.Description("Roof element ids"), mcp.Required()),
		)),
	}
}

func shopDrawingTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("add_wall_section_x",
			mcp.WithDescription("Add a wall section view in the X direction to the shop drawing."),
			mcp.WithNumber("wall_id", mcp.Description("Wall element id"), mcp.Required()),
			mcp.WithObject("section_params", mcp.Description("Section overrides such as position, depth and dimension display")),
		)),
		relay(c, mcp.NewTool("add_wall_section_y",
			mcp.WithDescription("Add a wall section view in the Y direction to the shop drawing."),
			mcp.WithNumber("wall_id", mcp.Description("Wall element id"), mcp.Required()),
			mcp.WithObject("section_params", mcp.Description("Section overrides such as position, depth and dimension display")),
		)),
	}
}

func machineTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("check_production_list_discrepancies",
			mcp.WithDescription("Check a production list for dimensional, material and CNC issues."),
			mcp.WithNumber("production_list_id", mcp.Description("Production list id"), mcp.Required()),
		)),
	}
}
