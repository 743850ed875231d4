package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
)

func utilityTools(c *client.Client) []server.ServerTool {
	return []server.ServerTool{
		relay(c, mcp.NewTool("ping",
			mcp.WithDescription("Check that the bridge answers."),
		)),
		relay(c, mcp.NewTool("get_cadwork_version_info",
			mcp.WithDescription("Return version, build and API version of the running application."),
		)),
		relay(c, mcp.NewTool("get_model_name",
			mcp.WithDescription("Return the name of the open model file."),
		)),
		relay(c, mcp.NewTool("get_3d_file_path",
			mcp.WithDescription("Return the full path of the open 3d file."),
		)),
		relay(c, mcp.NewTool("get_project_data",
			mcp.WithDescription("Return the project metadata fields."),
		)),
		relay(c, mcp.NewTool("print_error",
			mcp.WithDescription("Show an error message to the user inside the application."),
			mcp.WithString("message", mcp.Description("Message text"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("print_warning",
			mcp.WithDescription("Show a warning message to the user inside the application."),
			mcp.WithString("message", mcp.Description("Message text"), mcp.Required()),
		)),
		relay(c, mcp.NewTool("disable_auto_display_refresh",
			mcp.WithDescription("Turn off automatic display refresh, useful before bulk operations."),
		)),
		relay(c, mcp.NewTool("enable_auto_display_refresh",
			mcp.WithDescription("Turn automatic display refresh back on."),
		)),
	}
}
