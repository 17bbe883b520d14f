package main

import (
	"github.com/spf13/cobra"

	codamcp "github.com/hyperengineering/coda/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for coding agent integration",
	Long: `Start a Model Context Protocol (MCP) server over stdio.

This exposes the Coda API as tools for agents like Claude Code.

Configuration in Claude Code (~/.claude/claude_desktop_config.json):

  {
    "mcpServers": {
      "coda": {
        "command": "coda",
        "args": ["mcp"],
        "env": {
          "CODA_API_KEY": "<your token>"
        }
      }
    }
  }

Environment variables:
  CODA_API_KEY    Coda API token (required)
  CODA_BASE_URL   API endpoint override (optional)
  CODA_DEBUG      Log every request to stderr (optional)`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	// Serve over stdio; stdout is the protocol stream
	server := codamcp.NewServer(client)
	return server.Run()
}
