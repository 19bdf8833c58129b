package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/freeatlas/resourcefinder/internal/config"
	"github.com/freeatlas/resourcefinder/internal/evaluator"
	"github.com/freeatlas/resourcefinder/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This lets AI assistants like Claude Desktop rank resources and browse
the catalog on a user's behalf.

Add to Claude Desktop config (~/Library/Application Support/Claude/claude_desktop_config.json):

{
  "mcpServers": {
    "resourcefinder": {
      "command": "/path/to/resourcefinder",
      "args": ["mcp"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config")
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	eval := evaluator.New(cat, cfg.ScorerConfig(), cfg.EvaluatorConfig())
	server := mcp.New(cat, eval)

	// Handle interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	return server.Start(ctx)
}
