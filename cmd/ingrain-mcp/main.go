package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ingrain/internal/adapters/memory"
	mcpadapter "ingrain/internal/adapters/mcp"
	"ingrain/internal/adapters/sqlite"
	"ingrain/internal/ports"
)

func main() {
	dbFlag := flag.String("db", "", "sqlite database path; empty runs with a session-scoped in-memory store")
	flag.Parse()

	var repo ports.ProcedureRepository
	if *dbFlag != "" {
		store, err := sqlite.Open(*dbFlag)
		if err != nil {
			log.Fatalf("ingrain-mcp: %v", err)
		}
		defer store.Close()
		repo = store
	} else {
		repo = memory.NewRepository()
	}

	mcpServer := server.NewMCPServer(
		"ingrain-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo)
	mcpadapter.RegisterWriteTools(mcpServer, repo)
	mcpadapter.RegisterResources(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("ingrain-mcp: %v", err)
	}
}
