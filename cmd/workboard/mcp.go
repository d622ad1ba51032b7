// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/workboard/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running workboard as an MCP server, exposing the board filter, sort and options to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing workboard's tools:
  - filter_rows:   Filter work items by search text, owner, stage and assignment
  - sort_rows:     Sort work items by replaying column header clicks
  - board_options: List the owners and stages offered by the filters
  - render_board:  Render the board as markdown, json, html or a table

All tools are read-only. Sources are local row files or beads backlogs,
optionally read at a git revision.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcpserver.Run(cmd.Context(), Version, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
