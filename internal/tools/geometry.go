package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

// elementQuery declares a tool taking a single element_id argument.
func elementQuery(c *client.Client, name, what string) server.ServerTool {
	return relay(c, mcp.NewTool(name,
		mcp.WithDescription(fmt.Sprintf("Return %s of one element.", what)),
		mcp.WithNumber("element_id", mcp.Description("Element id"), mcp.Required()),
	))
}

func geometryTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		elementQuery(c, "get_element_width", "the cross section width in mm"),
		elementQuery(c, "get_element_height", "the cross section height in mm"),
		elementQuery(c, "get_element_length", "the axis length in mm"),
		elementQuery(c, "get_element_volume", "the volume in mm3"),
		elementQuery(c, "get_element_weight", "the weight in kg"),
		elementQuery(c, "get_element_xl", "the length axis direction vector"),
		elementQuery(c, "get_element_yl", "the width axis direction vector"),
		elementQuery(c, "get_element_zl", "the height axis direction vector"),
		elementQuery(c, "get_element_p1", "the axis start point"),
		elementQuery(c, "get_element_p2", "the axis end point"),
		elementQuery(c, "get_element_p3", "the orientation point"),
		elementQuery(c, "get_center_of_gravity", "the geometric center of gravity"),
		elementQuery(c, "get_element_vertices", "the corner vertices"),
		elementQuery(c, "get_element_facets", "the boundary facets as vertex loops"),
		elementQuery(c, "get_element_reference_face_area", "the reference face area in mm2"),
		elementQuery(c, "get_total_area_of_all_faces", "the summed area of all faces in mm2"),
		elementQuery(c, "get_element_type", "the element type name"),
		relay(c, mcp.NewTool("get_center_of_gravity_for_list",
			mcp.WithDescription("Return the combined volume-weighted center of gravity of several elements."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("get_minimum_distance_between_elements",
			mcp.WithDescription("Return the minimum distance between two element axes in mm."),
			mcp.WithNumber("first_element_id", mcp.Description("First element id"), mcp.Required()),
			mcp.WithNumber("second_element_id", mcp.Description("Second element id"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("rotate_elements",
			mcp.WithDescription("Rotate elements around an axis through an origin point."),
			mcp.WithArray("element_ids", mcp.Description("Ids of the elements to rotate"), mcp.Required()),
			mcp.WithArray("origin", mcp.Description("Rotation origin [x,y,z]"), mcp.Required()),
			mcp.WithArray("rotation_axis", mcp.Description("Rotation axis vector [x,y,z]"), mcp.Required()),
			mcp.WithNumber("rotation_angle", mcp.Description("Angle in degrees"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("apply_global_scale",
			mcp.WithDescription("Scale elements uniformly about an origin point."),
			mcp.WithArray("element_ids", mcp.Description("Ids of the elements to scale"), mcp.Required()),
			mcp.WithNumber("scale", mcp.Description("Scale factor, must be positive"), mcp.Required()),
			mcp.WithArray("origin", mcp.Description("Scaling origin [x,y,z]"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("invert_model",
			mcp.WithDescription("Swap the axis direction of elements."),
			mcp.WithArray("element_ids", mcp.Description("Ids of the elements to invert"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("rotate_height_axis_90",
			mcp.WithDescription("Rotate elements 90 degrees around their height axis."),
			mcp.WithArray("element_ids", mcp.Description("Ids of the elements to rotate"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("rotate_length_axis_90",
			mcp.WithDescription("Rotate elements 90 degrees around their length axis."),
			mcp.WithArray("element_ids", mcp.Description("Ids of the elements to rotate"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("calculate_total_volume",
			mcp.WithDescription("Sum the volume of several elements, reported in mm3, cm3, dm3 and m3."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("calculate_total_weight",
			mcp.WithDescription("Sum the weight of several elements, reported in g, kg and t."),
			mcp.WithArray("element_ids", mcp.Description("Element ids"), mcp.Required()),
		)),
	}
}
