package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

func elementTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("create_beam",
			mcp.WithDescription("Create a rectangular beam from an axis and cross section. Coordinates are millimetres."),
			mcp.WithArray("p1", mcp.Description("Axis start point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p2", mcp.Description("Axis end point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p3", mcp.Description("Optional orientation point [x,y,z]")),
			mcp.WithNumber("width", mcp.Description("Cross section width in mm"), mcp.Required()),
			mcp.WithNumber("height", mcp.Description("Cross section height in mm"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("create_panel",
			mcp.WithDescription("Create a rectangular panel from an axis, width and thickness."),
			mcp.WithArray("p1", mcp.Description("Axis start point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p2", mcp.Description("Axis end point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p3", mcp.Description("Optional orientation point [x,y,z]")),
			mcp.WithNumber("width", mcp.Description("Panel width in mm"), mcp.Required()),
			mcp.WithNumber("thickness", mcp.Description("Panel thickness in mm"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("create_circular_beam_points",
			mcp.WithDescription("Create a circular beam between two axis points."),
			mcp.WithNumber("diameter", mcp.Description("Beam diameter in mm"), mcp.Required()),
			mcp.WithArray("p1", mcp.Description("Axis start point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p2", mcp.Description("Axis end point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p3", mcp.Description("Optional orientation point [x,y,z]")),
		)),
		relay(c, mcp.NewTool("create_square_beam_points",
			mcp.WithDescription("Create a square beam between two axis points."),
			mcp.WithNumber("width", mcp.Description("Side length in mm"), mcp.Required()),
			mcp.WithArray("p1", mcp.Description("Axis start point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p2", mcp.Description("Axis end point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p3", mcp.Description("Optional orientation point [x,y,z]")),
		)),
		relay(c, mcp.NewTool("create_standard_beam_points",
			mcp.WithDescription("Create a beam from a named standard element."),
			mcp.WithString("standard_element_name", mcp.Description("Standard element name from the library"), mcp.Required()),
			mcp.WithArray("p1", mcp.Description("Axis start point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p2", mcp.Description("Axis end point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p3", mcp.Description("Optional orientation point [x,y,z]")),
		)),
		relay(c, mcp.NewTool("create_standard_panel_points",
			mcp.WithDescription("Create a panel from a named standard element."),
			mcp.WithString("standard_element_name", mcp.Description("Standard element name from the library"), mcp.Required()),
			mcp.WithArray("p1", mcp.Description("Axis start point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p2", mcp.Description("Axis end point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p3", mcp.Description("Optional orientation point [x,y,z]")),
		)),
		relay(c, mcp.NewTool("create_drilling_points",
			mcp.WithDescription("Create a drilling between two axis points."),
			mcp.WithNumber("diameter", mcp.Description("Drilling diameter in mm"), mcp.Required()),
			mcp.WithArray("p1", mcp.Description("Axis start point [x,y,z]"), mcp.Required()),
			mcp.WithArray("p2", mcp.Description("Axis end point [x,y,z]"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("create_polygon_beam",
			mcp.WithDescription("Create a beam by extruding a polygon cross section."),
			mcp.WithArray("polygon_vertices", mcp.Description("At least three [x,y,z] vertices"), mcp.Required()),
			mcp.WithNumber("thickness", mcp.Description("Extrusion thickness in mm"), mcp.Required()),
			mcp.WithArray("xl", mcp.Description("Length axis vector [x,y,z]"), mcp.Required()),
			mcp.WithArray("zl", mcp.Description("Height axis vector [x,y,z]"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("get_active_element_ids",
			mcp.WithDescription("List ids of the elements in the current user selection."),
		)),
		relay(c, mcp.NewTool("get_all_element_ids",
			mcp.WithDescription("List ids of every element in the model."),
		)),
		relay(c, mcp.NewTool("get_visible_element_ids",
			mcp.WithDescription("List ids of all currently visible elements."),
		)),
		relay(c, mcp.NewTool("get_user_element_ids",
			mcp.WithDescription("Ask the user to select elements, optionally limited to a count."),
			mcp.WithNumber("count", mcp.Description("Exact number of elements to select")),
		)),
		relay(c, mcp.NewTool("get_element_info",
			mcp.WithDescription("Return geometry and attribute details for one element."),
			mcp.WithNumber("element_id", mcp.Description("Element id"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("delete_elements",
			mcp.WithDescription("Delete the given elements from the model."),
			mcp.WithArray("element_ids", mcp.Description("Ids of the elements to delete"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("copy_elements",
			mcp.WithDescription("Copy elements displaced by a vector."),
			mcp.WithArray("element_ids", mcp.Description("Ids of the elements to copy"), mcp.Required()),
			mcp.WithArray("copy_vector", mcp.Description("Displacement vector [x,y,z] in mm"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("move_element",
			mcp.WithDescription("Move elements by a vector."),
			mcp.WithArray("element_ids", mcp.Description("Ids of the elements to move"), mcp.Required()),
			mcp.WithArray("move_vector", mcp.Description("Displacement vector [x,y,z] in mm"), mcp.Required()),
		)),
	}
}
