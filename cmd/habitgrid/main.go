package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"habitgrid/internal/cli"
	"habitgrid/internal/client"
	"habitgrid/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Habit server URL." default:"http://localhost:5000"`
	DB      string `help:"Database path." type:"path" default:"~/.config/habitgrid/habits.db"`
	Debug   bool   `help:"Enable debug logging."`

	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive grid." default:"1"`
	Serve      cli.ServeCmd      `cmd:"" help:"Run the habit server."`
	Grid       cli.GridCmd       `cmd:"" help:"Print a habit's year grid."`
	Quick      cli.QuickCmd      `cmd:"" help:"Show today's checklist."`
	Chat       cli.ChatCmd       `cmd:"" help:"Talk to the assistant."`
	Motivation cli.MotivationCmd `cmd:"" help:"Print a motivational message."`
	Doctor     cli.DoctorCmd     `cmd:"" help:"Run health checks."`
	Habit      struct {
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
		Add    cli.HabitAddCmd    `cmd:"" help:"Create a habit."`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a habit on a day."`
		Rename cli.HabitRenameCmd `cmd:"" help:"Rename a habit."`
		Color  cli.HabitColorCmd  `cmd:"" help:"Change a habit's color."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitgrid"),
		kong.Description("Year-at-a-glance habit tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.DB),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Client:    client.New(CLI.Server, logger.Get()),
		ServerURL: CLI.Server,
		DBPath:    CLI.DB,
		Debug:     CLI.Debug,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
