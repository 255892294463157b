package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ppw/internal/application"
	"ppw/internal/application/commands"
)

// RegisterWriteTools adds the tools that run the compiler or modify files.
func RegisterWriteTools(s *server.MCPServer, pipeline *commands.Pipeline) {
	s.AddTool(preprocessTool(), preprocessHandler(pipeline))
	s.AddTool(prependTool(), prependHandler(pipeline))
}

// --- preprocess ---

func preprocessTool() mcp.Tool {
	return mcp.NewTool("preprocess",
		mcp.WithDescription("Compile a script with the Closure Compiler and prepend the global slot declarations it needs."),
		mcp.WithString("input",
			mcp.Description("Path to the input .js file"),
			mcp.Required(),
		),
		mcp.WithString("output_dir",
			mcp.Description("Output directory. Omit to use <source dir>/ppw/."),
		),
		mcp.WithBoolean("two_pass",
			mcp.Description("Use the legacy two-pass flow"),
		),
	)
}

func preprocessHandler(p *commands.Pipeline) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := req.GetString("input", "")
		if input == "" {
			return toolError(fmt.Errorf("input is required"))
		}

		flow := application.ParseFlow(req.GetBool("two_pass", false))
		result, err := commands.NewPreprocessCommand(p, input, req.GetString("output_dir", ""), flow).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		msg := result.Message
		if result.Published != "" {
			msg += "\npublished to " + result.Published
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- prepend ---

func prependTool() mcp.Tool {
	return mcp.NewTool("prepend",
		mcp.WithDescription("Prepend the header built from a dependency log to an existing file."),
		mcp.WithString("target",
			mcp.Description("File to modify"),
			mcp.Required(),
		),
		mcp.WithString("dep_log",
			mcp.Description("Path to the dependency log"),
			mcp.Required(),
		),
		mcp.WithBoolean("requires",
			mcp.Description("Also prepend one require statement per recorded path"),
		),
	)
}

func prependHandler(p *commands.Pipeline) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAugmentCommand(p.Reader, p.Workspace,
			req.GetString("target", ""), req.GetString("dep_log", ""), req.GetBool("requires", false))

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
