// Package history implements the history command: recent report runs from
// the local SQLite database.
package history

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"nbtabs/pkg/db"
)

func Action(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No report runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-10s %-8s %s\n",
		"ID", "Created", "Layout", "Notebooks", "Failed", "Report")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-8s %-10d %-8d %s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Layout,
			r.NotebookCount,
			r.FailedCount,
			r.ReportPath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
