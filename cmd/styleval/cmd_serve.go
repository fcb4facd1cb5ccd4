package main

import (
	"context"

	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"styleval/internal/evalmcp"
	"styleval/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio for editor integration",
	Long: `Starts an MCP server over stdin/stdout exposing the alignment and
classification tools (align_pair, align_triple, classify, evaluate_case).

The server monitors for parent process death. When the spawning editor
disconnects, the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := evalmcp.NewServer(version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	evalmcp.WatchParent(ctx, cancel)

	logging.New("cli").Info("starting styleval MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
