// ABOUTME: CLI commands for managing shoes.
// ABOUTME: Supports add, list, show, retire, and delete subcommands.
package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/shoelog/internal/store"
)

var shoeImagePath string

var shoeCmd = &cobra.Command{
	Use:     "shoe",
	Aliases: []string{"s"},
	Short:   "Manage shoes",
	Long: `Manage the shoes you track mileage against.

COMMANDS:

  add      Track a new pair of shoes
  list     Shoes in display order with total miles
  show     Shoe details plus every logged workout
  retire   Retire a pair (one-way; history is kept)
  delete   Remove a pair (blocked while workouts reference it)

Shoe names are unique ignoring case, retired pairs included, so "Pegasus"
and "pegasus" are the same shoe as far as shoelog is concerned.`,
}

var shoeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Track a new pair of shoes",
	Long: `Track a new pair of shoes.

Examples:
  shoelog shoe add "Nike Pegasus 40"
  shoelog shoe add "Hoka Clifton 9" --image clifton.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var img *string
		if shoeImagePath != "" {
			raw, err := os.ReadFile(shoeImagePath)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}
			encoded := base64.StdEncoding.EncodeToString(raw)
			img = &encoded
		}

		shoe, err := st.AddShoe(args[0], img)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateName) {
				return fmt.Errorf("%w; pick another name", err)
			}
			return fmt.Errorf("failed to add shoe: %w", err)
		}

		color.Green("✓ Added %s", shoe.Name)
		fmt.Printf("  ID: %s\n", shoe.ID.String()[:8])
		return nil
	},
}

var shoeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List shoes in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		shoes, err := st.ListShoesOrdered()
		if err != nil {
			return fmt.Errorf("failed to list shoes: %w", err)
		}

		if len(shoes) == 0 {
			fmt.Println("No shoes yet. Add one with 'shoelog shoe add <name>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range shoes {
			total, err := st.TotalMiles(s.ID)
			if err != nil {
				return fmt.Errorf("failed to total miles: %w", err)
			}
			retired := ""
			if s.Retired {
				retired = faint.Sprint(" (retired)")
			}
			fmt.Printf("%s %s %8.2f mi%s\n",
				faint.Sprint(s.ID.String()[:8]),
				padRight(truncate(s.Name, 28), 28),
				total,
				retired)
		}
		return nil
	},
}

var shoeShowCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show shoe details and workouts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shoe, err := resolveShoe(args[0])
		if err != nil {
			return err
		}

		total, err := st.TotalMiles(shoe.ID)
		if err != nil {
			return fmt.Errorf("failed to total miles: %w", err)
		}
		workouts, err := st.ListWorkoutsForShoe(shoe.ID)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		fmt.Printf("Shoe: %s\n", shoe.Name)
		fmt.Printf("ID: %s\n", shoe.ID.String()[:8])
		fmt.Printf("Added: %s\n", shoe.CreatedAt.Format("2006-01-02"))
		if shoe.Retired {
			fmt.Println("Status: retired")
		}
		if shoe.ImageData != nil {
			fmt.Println("Image: attached")
		}
		fmt.Printf("Total: %.2f mi over %d workouts\n", total, len(workouts))

		if len(workouts) > 0 {
			fmt.Println("\nWorkouts:")
			faint := color.New(color.Faint)
			for _, w := range workouts {
				fmt.Printf("  %s %s %6.2f mi\n",
					faint.Sprint(w.ID.String()[:8]), w.Date, w.Miles)
			}
		}
		return nil
	},
}

var shoeRetireCmd = &cobra.Command{
	Use:   "retire <id-or-name>",
	Short: "Retire a pair of shoes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shoe, err := resolveShoe(args[0])
		if err != nil {
			return err
		}

		if err := st.RetireShoe(shoe.ID); err != nil {
			return fmt.Errorf("failed to retire shoe: %w", err)
		}
		color.Yellow("✓ Retired %s", shoe.Name)
		return nil
	},
}

var shoeDeleteCmd = &cobra.Command{
	Use:     "delete <id-or-name>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a pair of shoes",
	Long: `Delete a pair of shoes and its display-order entry.

Deletion is blocked while any workout still references the shoe; retire the
pair instead, or delete its workouts first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shoe, err := resolveShoe(args[0])
		if err != nil {
			return err
		}

		deleted, err := st.DeleteShoe(shoe.ID)
		if err != nil {
			return fmt.Errorf("failed to delete shoe: %w", err)
		}
		if !deleted {
			color.Red("✗ %s has logged workouts; retire it instead", shoe.Name)
			return nil
		}
		color.Yellow("✗ Deleted %s", shoe.Name)
		return nil
	},
}

func init() {
	shoeAddCmd.Flags().StringVar(&shoeImagePath, "image", "", "path to an image of the shoe")

	shoeCmd.AddCommand(shoeAddCmd)
	shoeCmd.AddCommand(shoeListCmd)
	shoeCmd.AddCommand(shoeShowCmd)
	shoeCmd.AddCommand(shoeRetireCmd)
	shoeCmd.AddCommand(shoeDeleteCmd)
	rootCmd.AddCommand(shoeCmd)
}
