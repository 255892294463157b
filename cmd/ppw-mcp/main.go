package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"ppw/internal/adapters/closure"
	"ppw/internal/adapters/filesystem"
	mcpadapter "ppw/internal/adapters/mcp"
	"ppw/internal/adapters/s3"
	"ppw/internal/adapters/sqlite"
	"ppw/internal/application/commands"
	"ppw/internal/config"
	"ppw/internal/logging"
)

func main() {
	configFlag := flag.String("config", config.DefaultConfigPath, "path to the YAML config file")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "ppw-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// stdout carries the MCP protocol
	logger := logging.New(logging.Options{Verbose: cfg.Logging.Verbose, Output: os.Stderr})
	defer logger.Sync()

	pipeline, closeFn, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	mcpServer := server.NewMCPServer(
		"ppw-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, pipeline.Reader)
	mcpadapter.RegisterWriteTools(mcpServer, pipeline)

	return server.ServeStdio(mcpServer)
}

// newPipeline builds the pipeline the write tools drive. The returned func
// closes the run history when one was opened.
func newPipeline(cfg *config.Config, logger *zap.Logger) (*commands.Pipeline, func() error, error) {
	pipeline := &commands.Pipeline{
		Compiler: closure.NewCompiler(
			closure.WithRuntime(cfg.Compiler.Runtime),
			closure.WithJar(filesystem.ExpandHome(cfg.Compiler.Jar)),
			closure.WithBuiltinSource(filesystem.ExpandHome(cfg.Compiler.BuiltinSource)),
			closure.WithResolveBuiltins(cfg.Compiler.ResolveBuiltins),
			closure.WithLanguageOut(cfg.Compiler.LanguageOut),
			closure.WithTimeout(cfg.Compiler.Timeout),
		),
		Reader:    filesystem.NewDependencyLogReader(),
		Workspace: filesystem.NewWorkspace(),
		Logger:    logger,
	}

	if cfg.Publish.Enabled() {
		pub, err := s3.NewPublisher(s3.Config{
			Endpoint:  cfg.Publish.Endpoint,
			Region:    cfg.Publish.Region,
			AccessKey: cfg.Publish.AccessKey,
			SecretKey: cfg.Publish.SecretKey,
			Bucket:    cfg.Publish.Bucket,
			UseSSL:    cfg.Publish.UseSSL,
		})
		if err != nil {
			return nil, nil, err
		}
		pipeline.Publisher = pub
	}

	closeFn := func() error { return nil }
	if cfg.History.Path != "" {
		h, err := sqlite.OpenHistory(cfg.History.Path)
		if err != nil {
			return nil, nil, err
		}
		pipeline.History = h
		closeFn = h.Close
	}

	return pipeline, closeFn, nil
}
