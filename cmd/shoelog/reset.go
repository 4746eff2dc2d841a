// ABOUTME: CLI command for wiping all shoelog data.
// ABOUTME: Requires --force; erases shoes, workouts, and the display order.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all data",
	Long: `Erase every shoe, workout, and the display order.

This cannot be undone. You must pass --force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to erase data without --force")
		}

		if err := st.ClearAll(); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
		color.Yellow("✗ All data erased")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm erasing all data")
	rootCmd.AddCommand(resetCmd)
}
