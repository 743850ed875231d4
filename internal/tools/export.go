package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

// exportArgs are the options every export tool shares.
func exportArgs(extra ...mcp.ToolOption) []mcp.ToolOption {
	opts := []mcp.ToolOption{
		mcp.WithArray("element_ids", mcp.Description("Element ids to export, defaults to all visible elements")),
		mcp.WithString("file_path", mcp.Description("Target file path"), mcp.Required()),
		mcp.WithBoolean("export_all_visible", mcp.Description("Export all visible elements regardless of element_ids")),
	}
	return append(opts, extra...)
}

func exportTool(c *client.Client, name, format string, extra ...mcp.ToolOption) server.ServerTool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("Export elements to a %s file.", format)),
	}, exportArgs(extra...)...)
	return relay(c, mcp.NewTool(name, opts...))
}

func exportTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		exportTool(c, "export_to_step", "STEP",
			mcp.WithString("step_version", mcp.Description("AP203, AP214 or AP242, default AP214")),
			mcp.WithString("units", mcp.Description("mm, cm, m, inch or ft, default mm")),
			mcp.WithNumber("precision", mcp.Description("Geometric precision, default 0.01")),
		),
		exportTool(c, "export_to_3dm", "Rhino 3DM",
			mcp.WithString("rhino_version", mcp.Description("Rhino file version, default 7")),
			mcp.WithBoolean("include_materials", mcp.Description("Write material definitions, default true")),
			mcp.WithBoolean("include_layers", mcp.Description("Write layer structure, default true")),
			mcp.WithString("mesh_quality", mcp.Description("low, medium or high, default medium")),
		),
		exportTool(c, "export_to_obj", "Wavefront OBJ",
			mcp.WithBoolean("include_materials", mcp.Description("Write an MTL file, default true")),
			mcp.WithBoolean("include_normals", mcp.Description("Write vertex normals, default true")),
			mcp.WithBoolean("include_textures", mcp.Description("Write texture coordinates, default false")),
			mcp.WithString("mesh_resolution", mcp.Description("low, medium or high, default medium")),
		),
		exportTool(c, "export_to_ply", "PLY",
			mcp.WithString("ply_format", mcp.Description("binary or ascii, default binary")),
			mcp.WithBoolean("include_colors", mcp.Description("Write vertex colors, default true")),
			mcp.WithBoolean("include_normals", mcp.Description("Write vertex normals, default true")),
			mcp.WithNumber("coordinate_precision", mcp.Description("Decimal places for ascii output, default 6")),
		),
		exportTool(c, "export_to_stl", "STL",
			mcp.WithString("stl_format", mcp.Description("binary or ascii, default binary")),
			mcp.WithString("mesh_quality", mcp.Description("low, medium or high, default medium")),
			mcp.WithString("units", mcp.Description("Output units, default mm")),
			mcp.WithBoolean("merge_elements", mcp.Description("Merge all elements into one solid, default true")),
		),
		exportTool(c, "export_to_gltf", "glTF",
			mcp.WithString("gltf_format", mcp.Description("glb or gltf, default glb")),
			mcp.WithBoolean("include_materials", mcp.Description("Write materials, default true")),
			mcp.WithBoolean("include_animations", mcp.Description("Write animations, default false")),
			mcp.WithNumber("texture_resolution", mcp.Description("Texture edge length in pixels, default 1024")),
			mcp.WithString("compression_level", mcp.Description("low, medium or high, default medium")),
		),
		exportTool(c, "export_to_x3d", "X3D",
			mcp.WithString("x3d_version", mcp.Description("X3D version, default 4.0")),
			mcp.WithString("encoding", mcp.Description("xml or binary, default xml")),
			mcp.WithBoolean("include_materials", mcp.Description("Write materials, default true")),
			mcp.WithBoolean("include_lighting", mcp.Description("Write light nodes, default true")),
			mcp.WithBoolean("include_navigation", mcp.Description("Write navigation info, default true")),
			mcp.WithBoolean("compression", mcp.Description("Compress the output, default false")),
		),
		exportTool(c, "export_production_data", "production data",
			mcp.WithString("data_format", mcp.Description("json, csv or xml, default json")),
			mcp.WithBoolean("include_cutting_list", mcp.Description("Include the cutting list, default true")),
			mcp.WithBoolean("include_assembly_instructions", mcp.Description("Include assembly instructions, default true")),
			mcp.WithBoolean("include_hardware_list", mcp.Description("Include the hardware list, default true")),
			mcp.WithBoolean("include_processing_data", mcp.Description("Include CNC processing data, default true")),
			mcp.WithBoolean("group_by_production_step", mcp.Description("Group output by production step, default true")),
		),
		exportTool(c, "export_to_fbx", "FBX",
			mcp.WithNumber("fbx_format", mcp.Description("FBX format variant, default 1")),
			mcp.WithString("fbx_version", mcp.Description("FBX file version, default 2020")),
			mcp.WithBoolean("include_materials", mcp.Description("Write materials, default true")),
			mcp.WithBoolean("include_textures", mcp.Description("Write textures, default true")),
		),
		exportTool(c, "export_to_webgl", "WebGL viewer",
			mcp.WithString("web_quality", mcp.Description("low, medium or high, default medium")),
			mcp.WithBoolean("compression", mcp.Description("Compress geometry, default true")),
			mcp.WithBoolean("embed_viewer", mcp.Description("Embed a standalone HTML viewer, default true")),
		),
		exportTool(c, "export_to_sat", "SAT",
			mcp.WithNumber("scale_factor", mcp.Description("Geometry scale factor, default 1.0")),
			mcp.WithBoolean("binary_format", mcp.Description("Write binary SAB instead of text, default true")),
			mcp.WithNumber("sat_version", mcp.Description("ACIS version number, default 25000")),
		),
		exportTool(c, "export_to_dstv", "DSTV NC",
			mcp.WithString("dstv_version", mcp.Description("DSTV dialect, default NC1")),
			mcp.WithString("units", mcp.Description("Output units, default mm")),
			mcp.WithString("steel_grade", mcp.Description("Steel grade marker, default S355")),
		),
		exportTool(c, "export_step_with_drillings", "STEP including drilling solids",
			mcp.WithString("drilling_mode", mcp.Description("extrude, cut or none, default extrude")),
			mcp.WithNumber("scale_factor", mcp.Description("Geometry scale factor, default 1.0")),
			mcp.WithNumber("step_version", mcp.Description("203, 214 or 242, default 214")),
			mcp.WithBoolean("text_mode", mcp.Description("Write text STEP instead of binary, default false")),
		),
		relay(c, mcp.NewTool("export_btl_for_nesting",
			mcp.WithDescription("Export the model as a BTL file prepared for nesting."),
			mcp.WithString("file_path", mcp.Description("Target file path"), mcp.Required()),
			mcp.WithString("optimization_method", mcp.Description("Nesting optimization method, default area")),
			mcp.WithBoolean("material_efficiency", mcp.Description("Optimize for material efficiency, default true")),
			mcp.WithNumber("kerf_width", mcp.Description("Saw kerf in mm, default 3.0")),
		)),
	}
}
