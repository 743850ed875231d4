package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

func importTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("import_from_step",
			mcp.WithDescription("Import elements from a STEP file."),
			mcp.WithString("file_path", mcp.Description("STEP file path"), mcp.Required()),
			mcp.WithNumber("scale_factor", mcp.Description("Geometry scale factor, default 1.0")),
			mcp.WithBoolean("hide_messages", mcp.Description("Suppress application dialogs, default false")),
			mcp.WithBoolean("merge_with_existing", mcp.Description("Keep existing elements, default true")),
		)),
		relay(c, mcp.NewTool("import_from_sat",
			mcp.WithDescription("Import elements from a SAT file."),
			mcp.WithString("file_path", mcp.Description("SAT file path"), mcp.Required()),
			mcp.WithNumber("scale_factor", mcp.Description("Geometry scale factor, default 1.0")),
			mcp.WithBoolean("binary_format", mcp.Description("File is binary SAB, default true")),
			mcp.WithBoolean("silent_mode", mcp.Description("Suppress application dialogs, default false")),
		)),
		relay(c, mcp.NewTool("import_from_rhino",
			mcp.WithDescription("Import elements from a Rhino 3DM file."),
			mcp.WithString("file_path", mcp.Description("3DM file path"), mcp.Required()),
			mcp.WithBoolean("without_dialog", mcp.Description("Skip the import dialog, default false")),
			mcp.WithBoolean("import_layers", mcp.Description("Import layer structure, default true")),
			mcp.WithBoolean("import_materials", mcp.Description("Import materials, default true")),
		)),
		relay(c, mcp.NewTool("import_from_btl",
			mcp.WithDescription("Import a BTL file, either as standard processing or nesting data."),
			mcp.WithString("file_path", mcp.Description("BTL file path"), mcp.Required()),
			mcp.WithString("import_mode", mcp.Description("standard or nesting, default standard")),
			mcp.WithBoolean("merge_duplicates", mcp.Description("Merge duplicate elements, default true")),
			mcp.WithBoolean("validate_geometry", mcp.Description("Validate imported geometry, default true")),
		)),
	}
}
