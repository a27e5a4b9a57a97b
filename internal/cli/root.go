package cli

import (
	"fmt"

	"habitgrid/internal/client"
	"habitgrid/internal/habit"
)

type Context struct {
	Client    *client.Client
	ServerURL string
	DBPath    string
	Debug     bool
}

func printHabits(col habit.Collection) {
	if len(col) == 0 {
		fmt.Println("No habits found")
		return
	}

	today := habit.Today()
	fmt.Println("Habits:")
	for _, name := range col.Names() {
		h := col[name]
		status := " "
		if h.DoneOn(today) {
			status = "✓"
		}
		fmt.Printf("  [%s] %s - %d done (%s)\n", status, name, h.DoneCount(), h.DisplayColor())
	}
}
