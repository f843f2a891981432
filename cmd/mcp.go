package cmd

import (
	"context"
	"log"
	"time"

	"github.com/jcdickinson/kolbendoc/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the API reference over MCP (stdio)",
	Long: `Load the descriptor export and answer member, page-name and page lookups
over the Model Context Protocol on stdin/stdout. Nothing is written to disk.`,
	Run: runMCP,
}

func init() {
	addSiteFlags(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) {
	g, _, err := loadGenerator(cmd)
	if err != nil {
		log.Fatalf("failed to load descriptors: %v", err)
	}

	server := mcp.NewServer(g, version)

	errCh := make(chan error)
	go func() { errCh <- server.Run() }()

	if err := waitForSignal(errCh); err != nil {
		log.Fatalf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}
