package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"habitgrid/internal/database"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: database reachable
	if err := checkDatabase(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
	}

	// Check 2: server responding (warning only; the CLI can still serve)
	if err := checkServer(ctx); err != nil {
		fmt.Printf("⚠ Server responding: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Server responding: OK\n")
	}

	// Check 3: duplicate habitgrid processes
	if err := checkDuplicateProcesses(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDatabase(ctx *Context) error {
	db, err := database.Open(ctx.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkServer(ctx *Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := ctx.Client.Health(reqCtx); err != nil {
		return fmt.Errorf("no server at %s - start one with 'habitgrid serve'", ctx.ServerURL)
	}
	return nil
}

func checkDuplicateProcesses() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	count := 0
	for _, p := range procs {
		if strings.HasPrefix(p.Executable(), "habitgrid") {
			count++
		}
	}
	// This process counts as one.
	if count > 1 {
		return fmt.Errorf("found %d habitgrid processes running", count)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
