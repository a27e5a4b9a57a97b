package cli

import (
	"context"
	"fmt"

	"habitgrid/internal/habit"
)

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	col, err := ctx.Client.FetchAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch habits: %w", err)
	}
	printHabits(col)
	return nil
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Name of the habit to create."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Client.Create(context.Background(), c.Name); err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	fmt.Printf("Added habit %q\n", c.Name)
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Name of the habit."`
	Date string `help:"Day to toggle (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = habit.Today()
	}
	if _, err := habit.ParseDay(day); err != nil {
		return err
	}
	if err := ctx.Client.Toggle(context.Background(), c.Name, day); err != nil {
		return fmt.Errorf("failed to toggle: %w", err)
	}
	fmt.Printf("Toggled %q on %s\n", c.Name, day)
	return nil
}

type HabitRenameCmd struct {
	Old string `arg:"" help:"Current habit name."`
	New string `arg:"" help:"New habit name."`
}

func (c *HabitRenameCmd) Run(ctx *Context) error {
	if err := ctx.Client.Rename(context.Background(), c.Old, c.New); err != nil {
		return fmt.Errorf("failed to rename: %w", err)
	}
	fmt.Printf("Renamed %q to %q\n", c.Old, c.New)
	return nil
}

type HabitColorCmd struct {
	Name  string `arg:"" help:"Name of the habit."`
	Color string `arg:"" help:"Hex color, e.g. #39d353."`
}

func (c *HabitColorCmd) Run(ctx *Context) error {
	if err := ctx.Client.Recolor(context.Background(), c.Name, c.Color); err != nil {
		return fmt.Errorf("failed to set color: %w", err)
	}
	fmt.Printf("Set color of %q to %s\n", c.Name, c.Color)
	return nil
}

type HabitDeleteCmd struct {
	Name  string `arg:"" help:"Name of the habit to delete."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if !c.Force {
		fmt.Printf("Delete %q and all of its history? [y/N] ", c.Name)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}
	if err := ctx.Client.Delete(context.Background(), c.Name); err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}
	fmt.Printf("Deleted %q\n", c.Name)
	return nil
}
