package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nerdash/nerdash/internal/payload"
	"github.com/nerdash/nerdash/internal/record"
)

// Refresh command flags.
var refreshDashboard string

// refreshCmd replaces the embedded records of an existing dashboard.
var refreshCmd = &cobra.Command{
	Use:   "refresh [input]",
	Short: "Replace the records embedded in an existing dashboard",
	Long: `Replace the records embedded in an existing dashboard file. Only the
payload region changes; every other byte of the file is kept, so
hand edits to the page survive.

The dashboard is rewritten atomically. If the payload region cannot be
found exactly once, the file is left untouched and nerdash exits with
status 3.

Defaults come from refresh.input and refresh.dashboard in .nerdash.yaml,
falling back to output/output.json and vis/dashboard.html.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().StringVarP(&refreshDashboard, "dashboard", "d", "", "dashboard file to update (default \"vis/dashboard.html\")")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	input := argOr(args, 0, cfg.Refresh.Input)
	dashboard := stringFlag(cmd, "dashboard", cfg.Refresh.Dashboard)

	info, err := cmdFS.Stat(dashboard)
	if err != nil {
		if isNotExist(err) {
			return exitError(ExitInvalidArgs, "nerdash: dashboard not found: %s", dashboard)
		}
		return exitError(ExitInvalidArgs, "nerdash: cannot access dashboard %s: %v", dashboard, err)
	}

	res, err := loadInput(input, strictMode(cfg))
	if err != nil {
		return err
	}

	doc, err := cmdFS.ReadFile(dashboard)
	if err != nil {
		return exitError(ExitInvalidArgs, "nerdash: cannot read dashboard %s: %v", dashboard, err)
	}
	escaped := payload.Escape(res.Raw)
	updated, region, err := payload.Splice(doc, escaped)
	if err != nil {
		if errors.Is(err, payload.ErrNoRegion) {
			return exitError(ExitSpliceFailure,
				"nerdash: %s: no RAW_JSON payload region; regenerate it with 'nerdash generate'", dashboard)
		}
		return exitError(ExitSpliceFailure, "nerdash: %s: %v", dashboard, err)
	}
	if region.Legacy {
		slog.Info("dashboard uses the legacy payload anchor", "dashboard", dashboard)
	}

	if err := writeAtomic(dashboard, updated, info.Mode().Perm()); err != nil {
		return exitError(ExitSpliceFailure, "nerdash: write dashboard: %v", err)
	}
	slog.Debug("dashboard refreshed", "path", dashboard, "payload_bytes", len(escaped))

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Dashboard refreshed with %d records\n", len(res.Records))
	_, _ = fmt.Fprintf(w, "  Algorithms: %s\n", summarize(res.Records, func(r record.Record) string { return r.Algorithm }))
	_, _ = fmt.Fprintf(w, "  Test cases: %s\n", summarize(res.Records, func(r record.Record) string { return r.TestCase }))
	_, _ = fmt.Fprintf(w, "  Output: %s\n", dashboard)
	return nil
}
