package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

func listTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("create_element_list",
			mcp.WithDescription("Build a sortable inventory of elements with their properties and dimensions."),
			mcp.WithArray("element_ids", mcp.Description("Element ids, defaults to every element")),
			mcp.WithBoolean("include_properties", mcp.Description("Include type and name, default true")),
			mcp.WithBoolean("include_materials", mcp.Description("Include material, default true")),
			mcp.WithBoolean("include_dimensions", mcp.Description("Include width, height, length and volume, default true")),
			mcp.WithString("group_by", mcp.Description("Grouping key, default type")),
			mcp.WithString("sort_by", mcp.Description("name, type, material or id, default name")),
		)),
		relay(c, mcp.NewTool("generate_material_list",
			mcp.WithDescription("Aggregate elements into a material list grouped by cross section, with waste totals."),
			mcp.WithArray("element_ids", mcp.Description("Element ids, defaults to every element")),
			mcp.WithBoolean("include_waste", mcp.Description("Add waste-adjusted totals, default true")),
			mcp.WithNumber("waste_factor", mcp.Description("Waste fraction between 0 and 1, default 0.1")),
			mcp.WithBoolean("group_by_material", mcp.Description("Group by material and cross section, default true")),
			mcp.WithString("optimization_mode", mcp.Description("length, area, volume, count, weight or cost, default length")),
		)),
	}
}

func optimizationTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("optimize_cutting_list",
			mcp.WithDescription("Pack element cut lengths onto stock pieces and report waste per material group."),
			mcp.WithArray("element_ids", mcp.Description("Element ids, defaults to every element")),
			mcp.WithArray("stock_lengths", mcp.Description("Available stock lengths in mm, default [2000,2500,3000,4000,5000,6000]")),
			mcp.WithString("optimization_algorithm", mcp.Description("bin_packing, first_fit, best_fit, greedy, genetic or advanced, default bin_packing")),
			mcp.WithNumber("kerf_width", mcp.Description("Saw kerf in mm, default 3.0")),
			mcp.WithNumber("min_offcut_length", mcp.Description("Minimum reusable offcut in mm, default 100")),
			mcp.WithNumber("max_waste_percentage", mcp.Description("Waste target between 0 and 100, default 5")),
			mcp.WithString("priority_mode", mcp.Description("Optimization priority, default waste_minimization")),
		)),
	}
}
