package main

import (
	"context"
	"flag"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "linksync/internal/adapters/mcp"
	"linksync/internal/adapters/workspace"
	"linksync/internal/config"
	"linksync/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default "+config.DefaultFilePath()+")")
	docFlag := flag.String("doc", "", "design document file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("linksync-mcp: %v", err)
	}
	if *docFlag != "" {
		cfg.DocumentPath = *docFlag
	}
	// stdout carries the protocol, so console logs are dropped; the log
	// file still receives them
	logging.Setup(cfg.LogVerbosity, io.Discard)

	// Every tool call reads the document fresh so edits made elsewhere are seen
	open := func() (*workspace.Workspace, error) {
		return workspace.Open(cfg)
	}

	mcpServer := server.NewMCPServer(
		"linksync-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, open)
	mcpadapter.RegisterWriteTools(mcpServer, open)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("linksync-mcp: %v", err)
	}
}
