package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linktidy/linktidy/internal/config"
	"github.com/linktidy/linktidy/internal/database"
	"github.com/linktidy/linktidy/internal/report"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [file]",
		Short: "List past tidy runs from the history database",
		Long: `History lists the statistics recorded by previous tidy runs, newest
first. With a file argument only that document's runs are shown.

Examples:
  # Show recent runs across all documents
  linktidy history

  # Show recent runs for one document
  linktidy history LINKS.md

  # Show the full stored statistics of the latest run
  linktidy history --latest LINKS.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to list")
	cmd.Flags().Bool("latest", false,
		"Render the latest stored run's full statistics report instead of a listing")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	latest, err := cmd.Flags().GetBool("latest")
	if err != nil {
		return err
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	// The history command never creates the database: no runs were
	// recorded yet, so there is nothing to list.
	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("no run history available: %w", err)
	}
	defer db.Close()

	if latest {
		return showLatestRun(cmd, db, filePath)
	}

	return listRuns(cmd, db, filePath, limit)
}

// listRuns prints a compact table of recent runs.
func listRuns(cmd *cobra.Command, db *database.HistoryDB, filePath string, limit int) error {
	runs, err := db.ListRuns(cmd.Context(), filePath, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(out, "%-20s %-30s %7s %7s %6s %7s\n",
		"TIDIED AT", "DOCUMENT", "TOTAL", "UNIQUE", "DUPES", "BROKEN")
	fmt.Fprintln(out, strings.Repeat("-", 82))

	for _, r := range runs {
		fmt.Fprintf(out, "%-20s %-30s %7d %7d %6d %7d\n",
			r.TidiedAt.Local().Format("2006-01-02 15:04:05"),
			truncatePath(r.FilePath, 30),
			r.TotalLinks,
			r.UniqueLinks,
			r.Duplicates,
			r.BrokenLinks,
		)
	}

	return nil
}

// showLatestRun renders the latest stored summary through the text
// report writer, so stored and live statistics look identical.
func showLatestRun(cmd *cobra.Command, db *database.HistoryDB, filePath string) error {
	run, err := db.LatestRun(cmd.Context(), filePath)
	if err != nil {
		return err
	}
	if run == nil || run.Summary == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	writer := report.NewTextWriter(cmd.OutOrStdout())
	_, err = writer.WriteSummary(run.Summary)
	return err
}

// truncatePath shortens a path for table display, keeping the tail,
// which is the interesting part of a long path.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
