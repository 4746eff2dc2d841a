// ABOUTME: CLI commands for managing the shoe display order.
// ABOUTME: Supports show, set (full permutation), and move (single shoe).
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage the shoe display order",
	Long: `Control the order shoes appear in 'shoelog shoe list'.

The order heals itself on read: deleted shoes vanish from it and new shoes
are appended, so a stale or partial order never breaks anything.`,
}

var orderShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		shoes, err := st.ListShoesOrdered()
		if err != nil {
			return fmt.Errorf("failed to list shoes: %w", err)
		}
		if len(shoes) == 0 {
			fmt.Println("No shoes yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for i, s := range shoes {
			fmt.Printf("%2d. %s %s\n", i+1, faint.Sprint(s.ID.String()[:8]), s.Name)
		}
		return nil
	},
}

var orderSetCmd = &cobra.Command{
	Use:   "set <shoe> [shoe...]",
	Short: "Replace the display order",
	Long: `Replace the display order with the given shoes, first to last.
Shoes you leave out are appended after the ones you name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]uuid.UUID, 0, len(args))
		for _, arg := range args {
			shoe, err := resolveShoe(arg)
			if err != nil {
				return err
			}
			ids = append(ids, shoe.ID)
		}

		if err := st.SetOrder(ids); err != nil {
			return fmt.Errorf("failed to set order: %w", err)
		}
		color.Green("✓ Display order updated")
		return nil
	},
}

var orderMoveCmd = &cobra.Command{
	Use:   "move <shoe> <position>",
	Short: "Move one shoe to a position (1 = top)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shoe, err := resolveShoe(args[0])
		if err != nil {
			return err
		}

		pos, err := strconv.Atoi(args[1])
		if err != nil || pos < 1 {
			return fmt.Errorf("invalid position: %s", args[1])
		}

		order, err := st.Order()
		if err != nil {
			return fmt.Errorf("failed to read order: %w", err)
		}

		rest := make([]uuid.UUID, 0, len(order))
		for _, id := range order {
			if id != shoe.ID {
				rest = append(rest, id)
			}
		}
		if pos > len(rest)+1 {
			pos = len(rest) + 1
		}

		moved := make([]uuid.UUID, 0, len(rest)+1)
		moved = append(moved, rest[:pos-1]...)
		moved = append(moved, shoe.ID)
		moved = append(moved, rest[pos-1:]...)

		if err := st.SetOrder(moved); err != nil {
			return fmt.Errorf("failed to set order: %w", err)
		}
		color.Green("✓ Moved %s to position %d", shoe.Name, pos)
		return nil
	},
}

func init() {
	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderSetCmd)
	orderCmd.AddCommand(orderMoveCmd)
	rootCmd.AddCommand(orderCmd)
}
