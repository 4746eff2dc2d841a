// ABOUTME: Root Cobra command for shoelog CLI.
// ABOUTME: Opens and closes the domain store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/shoelog/internal/config"
	"github.com/harperreed/shoelog/internal/store"
)

var st *store.Store

var rootCmd = &cobra.Command{
	Use:   "shoelog",
	Short: "Per-shoe cardio mileage tracker",
	Long: `Shoelog tracks how many miles you have run on each pair of shoes.

QUICK START:

  $ shoelog shoe add "Nike Pegasus 40"      # Track a new pair
  $ shoelog log peg 6.2                     # Log today's miles (id or name prefix)
  $ shoelog log peg 13.1 2024-04-07         # Log miles for a specific date
  $ shoelog shoe list                       # Shoes in your display order, with totals

SHOES:

  $ shoelog shoe show abc123                # Details plus every logged workout
  $ shoelog shoe retire abc123              # Retire a worn-out pair (keeps history)
  $ shoelog shoe delete abc123              # Only works once its workouts are gone

WORKOUTS:

  $ shoelog list                            # All workouts
  $ shoelog list --shoe abc123              # Workouts on one shoe
  $ shoelog edit def456 --miles 7.5         # Fix a logged workout
  $ shoelog delete def456                   # Remove a workout

ORDERING:

  $ shoelog order show                      # Current display order
  $ shoelog order move abc123 1             # Move a shoe to the top
  $ shoelog order set abc123 def456 ...     # Replace the order outright

Logging the same shoe, date, and miles twice prints a warning but records
both entries; sometimes you really do run the same loop twice in a day.

DATA STORAGE:

  Data lives in ~/.local/share/shoelog (Badger by default; set
  "backend": "sqlite" in ~/.config/shoelog/config.json or
  SHOELOG_BACKEND=sqlite for a single-file database).

MCP INTEGRATION:

  Run 'shoelog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		backend, err := cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		st = store.New(backend)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}
