// ABOUTME: CLI commands for listing, editing, and deleting workouts.
// ABOUTME: Edits overwrite shoe, miles, and date; deletes are unconditional.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/shoelog/internal/models"
)

var (
	listShoe  string
	listLimit int

	editShoe  string
	editMiles string
	editDate  string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workouts",
	Long: `List logged workouts.

Each line shows: ID  DATE  SHOE  MILES. The ID is an 8-character prefix you
can use with edit and delete.

Examples:
  shoelog list                 # All workouts
  shoelog list --shoe peg      # Workouts on one shoe
  shoelog list -n 10           # Only the last 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var workouts []models.Workout
		var err error

		if listShoe != "" {
			shoe, rerr := resolveShoe(listShoe)
			if rerr != nil {
				return rerr
			}
			workouts, err = st.ListWorkoutsForShoe(shoe.ID)
		} else {
			workouts, err = st.ListWorkouts()
		}
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		if listLimit > 0 && len(workouts) > listLimit {
			workouts = workouts[len(workouts)-listLimit:]
		}

		shoes, err := st.ListShoes()
		if err != nil {
			return fmt.Errorf("failed to list shoes: %w", err)
		}
		shoeNames := make(map[string]string, len(shoes))
		for _, s := range shoes {
			shoeNames[s.ID.String()] = s.Name
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			name := shoeNames[w.ShoeID.String()]
			if name == "" {
				name = w.ShoeID.String()[:8]
			}
			edited := ""
			if w.UpdatedAt != nil {
				edited = faint.Sprint(" (edited)")
			}
			fmt.Printf("%s %s %s %6.2f mi%s\n",
				faint.Sprint(w.ID.String()[:8]),
				w.Date,
				padRight(truncate(name, 24), 24),
				w.Miles,
				edited)
		}
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a workout",
	Long: `Edit a workout's shoe, miles, or date. Unset flags keep the current value.

Examples:
  shoelog edit abc123 --miles 7.5
  shoelog edit abc123 --date 2024-04-08 --shoe peg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := resolveWorkout(args[0])
		if err != nil {
			return err
		}

		shoeID := w.ShoeID
		if editShoe != "" {
			shoe, err := resolveShoe(editShoe)
			if err != nil {
				return err
			}
			shoeID = shoe.ID
		}

		miles := w.Miles
		if editMiles != "" {
			miles, err = parseMiles(editMiles)
			if err != nil {
				return err
			}
		}

		date := w.Date
		if editDate != "" {
			date = editDate
		}

		if err := st.UpdateWorkout(w.ID, shoeID, miles, date); err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}

		color.Green("✓ Updated workout")
		fmt.Printf("  %s %s %.2f mi\n",
			color.New(color.Faint).Sprint(w.ID.String()[:8]), date, miles)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Long: `Delete a workout by its ID or ID prefix.

This permanently deletes the workout. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := resolveWorkout(args[0])
		if err != nil {
			return err
		}

		if err := st.DeleteWorkout(w.ID); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted workout")
		fmt.Printf("  %s %s %.2f mi\n",
			color.New(color.Faint).Sprint(w.ID.String()[:8]), w.Date, w.Miles)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listShoe, "shoe", "s", "", "filter by shoe (id or name prefix)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "max results (0 = all)")

	editCmd.Flags().StringVar(&editShoe, "shoe", "", "move the workout to another shoe")
	editCmd.Flags().StringVar(&editMiles, "miles", "", "new mileage value")
	editCmd.Flags().StringVar(&editDate, "date", "", "new date (YYYY-MM-DD)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}
