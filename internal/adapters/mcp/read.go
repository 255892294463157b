package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ppw/internal/application/commands"
	"ppw/internal/domain"
	"ppw/internal/ports"
)

// RegisterReadTools adds the tools that never modify the filesystem.
func RegisterReadTools(s *server.MCPServer, reader ports.DependencyLogReader) {
	s.AddTool(resolveArtifactsTool(), resolveArtifactsHandler())
	s.AddTool(synthesizeHeaderTool(), synthesizeHeaderHandler(reader))
}

// --- resolve_artifacts ---

func resolveArtifactsTool() mcp.Tool {
	return mcp.NewTool("resolve_artifacts",
		mcp.WithDescription("Compute every file path the preprocessor reads or writes for an input script. Pure; nothing is created."),
		mcp.WithString("input",
			mcp.Description("Path to the input .js file"),
			mcp.Required(),
		),
		mcp.WithString("output_dir",
			mcp.Description("Output directory. Omit to use <source dir>/ppw/."),
		),
	)
}

func resolveArtifactsHandler() server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := req.GetString("input", "")
		if input == "" {
			return toolError(fmt.Errorf("input is required"))
		}

		set := domain.ResolveArtifacts(input, req.GetString("output_dir", ""))
		return mcp.NewToolResultText(formatArtifacts(set)), nil
	}
}

// --- synthesize_header ---

func synthesizeHeaderTool() mcp.Tool {
	return mcp.NewTool("synthesize_header",
		mcp.WithDescription("Build the global slot declarations, and optionally the require block, for a dependency log without writing anything."),
		mcp.WithString("dep_log",
			mcp.Description("Path to a dependency log written by the compiler"),
			mcp.Required(),
		),
		mcp.WithBoolean("requires",
			mcp.Description("Also emit one require statement per recorded path"),
		),
	)
}

func synthesizeHeaderHandler(reader ports.DependencyLogReader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		depLog := req.GetString("dep_log", "")
		if depLog == "" {
			return toolError(fmt.Errorf("dep_log is required"))
		}

		result, err := commands.NewHeaderCommand(reader, depLog, req.GetBool("requires", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Header == "" {
			return mcp.NewToolResultText("(empty header: no slots)"), nil
		}
		return mcp.NewToolResultText(result.Header), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatArtifacts(set domain.ArtifactSet) string {
	var sb strings.Builder
	for _, role := range domain.Roles {
		p, _ := set.Path(role)
		fmt.Fprintf(&sb, "%-8s %s\n", role, p)
	}
	if set.DefaultedOutputDir {
		sb.WriteString("(output directory defaulted)\n")
	}
	return sb.String()
}
