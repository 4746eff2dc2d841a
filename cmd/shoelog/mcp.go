// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/shoelog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants like Claude read and update your shoe mileage through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "shoelog": {
        "command": "shoelog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_shoe        Add a new shoe
  list_shoes      Shoes in display order with totals
  retire_shoe     Retire a shoe
  delete_shoe     Delete a shoe (blocked while it has workouts)
  log_workout     Log miles on a shoe
  list_workouts   List workouts, optionally by shoe
  update_workout  Edit a workout
  delete_workout  Delete a workout
  total_miles     Total miles on a shoe
  set_order       Replace the display order

AVAILABLE RESOURCES:

  shoelog://shoes   Shoe dashboard with totals and workout counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(st)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
