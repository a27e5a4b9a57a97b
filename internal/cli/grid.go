package cli

import (
	"context"
	"fmt"
	"time"

	"habitgrid/internal/grid"
)

type GridCmd struct {
	Habit string `arg:"" optional:"" help:"Habit to show. Defaults to every habit."`
	Year  int    `help:"Year to render. Defaults to the current year."`
}

func (c *GridCmd) Run(ctx *Context) error {
	col, err := ctx.Client.FetchAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch habits: %w", err)
	}

	year := c.Year
	if year == 0 {
		year = time.Now().Year()
	}
	layout := grid.New(year)

	names := col.Names()
	if c.Habit != "" {
		if _, ok := col[c.Habit]; !ok {
			return fmt.Errorf("no habit named %q", c.Habit)
		}
		names = []string{c.Habit}
	}
	if len(names) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	for _, name := range names {
		h := col[name]
		fmt.Printf("%s (%d, %d done)\n\n", name, year, h.DoneCount())
		fmt.Println(grid.Render(layout.Project(h.Dates), grid.RenderConfig{
			Color: h.DisplayColor(),
		}))
		fmt.Println()
	}
	return nil
}
