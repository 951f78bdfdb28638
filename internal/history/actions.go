// Package history implements the run-history commands.
package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/ssort/pkg/db"
)

// ListAction prints a table of recent tracked runs.
func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-10s %-10s %-30s %s\n",
		"ID", "Created", "Lines", "Output", "Time(ms)", "Inputs", "Flags")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-10d %-10d %-10d %-30s %s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.LineCount,
			r.OutputCount,
			r.DurationMS,
			r.Inputs,
			r.Flags,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'ssort history show <id>' to see details\n")

	return nil
}

// ShowAction shows details for one run, the latest when no ID is given.
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var runID int64
	if c.Args().Len() > 0 {
		runID, err = strconv.ParseInt(c.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID: %s", c.Args().First())
		}
	} else {
		runID, err = database.LatestRunID()
		if err != nil {
			return err
		}
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:      %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Inputs:       %s\n", run.Inputs)
	flags := run.Flags
	if flags == "" {
		flags = "(defaults)"
	}
	fmt.Printf("Flags:        %s\n", flags)
	fmt.Printf("Input lines:  %d\n", run.LineCount)
	fmt.Printf("Output lines: %d\n", run.OutputCount)
	fmt.Printf("Duration:     %dms\n", run.DurationMS)

	return nil
}
