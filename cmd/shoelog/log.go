// ABOUTME: CLI command for logging a workout against a shoe.
// ABOUTME: Warns (but never blocks) on identical shoe/date/miles entries.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/shoelog/internal/models"
)

var logCmd = &cobra.Command{
	Use:   "log <shoe> <miles> [date]",
	Short: "Log a workout",
	Long: `Log miles on a shoe. The shoe can be an ID prefix or a name prefix;
the date defaults to today and must be YYYY-MM-DD.

Examples:
  shoelog log peg 6.2
  shoelog log abc123 13.1 2024-04-07
  shoelog log "Hoka" 0              # count a race-day walkover, why not`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		shoe, err := resolveShoe(args[0])
		if err != nil {
			return err
		}

		miles, err := parseMiles(args[1])
		if err != nil {
			return err
		}

		date := models.Today()
		if len(args) == 3 {
			date = args[2]
		}

		w, isDup, err := st.AddWorkout(shoe.ID, miles, date)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Logged %.2f mi on %s", w.Miles, shoe.Name)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(w.ID.String()[:8]), w.Date)
		if isDup {
			color.Yellow("⚠ An identical workout (same shoe, date, and miles) was already logged; both are kept")
		}

		total, err := st.TotalMiles(shoe.ID)
		if err != nil {
			return fmt.Errorf("failed to total miles: %w", err)
		}
		fmt.Printf("  Total on %s: %.2f mi\n", shoe.Name, total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
