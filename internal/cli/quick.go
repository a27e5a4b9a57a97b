package cli

import (
	"context"
	"fmt"

	"habitgrid/internal/habit"
)

type QuickCmd struct {
	Name string `arg:"" optional:"" help:"Habit to mark done for today. Omit to show the checklist."`
}

func (c *QuickCmd) Run(ctx *Context) error {
	if c.Name != "" {
		if err := ctx.Client.Toggle(context.Background(), c.Name, habit.Today()); err != nil {
			return fmt.Errorf("failed to toggle: %w", err)
		}
		fmt.Printf("Toggled %q for today\n", c.Name)
		return nil
	}

	col, err := ctx.Client.FetchAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch habits: %w", err)
	}
	if len(col) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	today := habit.Today()
	pending := 0
	fmt.Printf("Today (%s):\n", today)
	for _, name := range col.Names() {
		if col[name].DoneOn(today) {
			fmt.Printf("  ✓ %s\n", name)
		} else {
			fmt.Printf("  · %s\n", name)
			pending++
		}
	}
	if pending == 0 {
		fmt.Println("\nAll done for today!")
	}
	return nil
}
