package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"habitgrid/internal/habit"
)

func newAddHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newRenameForm(fm *RenameFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newColorForm(fm *ColorFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Color").
				Description("Hex color, e.g. #39d353").
				Value(&fm.Color).
				Validate(func(s string) error {
					if !habit.ValidColor(s) {
						return fmt.Errorf("not a valid hex color")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
