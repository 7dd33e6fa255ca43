package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nerdash/nerdash/internal/output"
)

// Export command flags.
var (
	exportTestCase string
	exportOutput   string
)

// exportCmd writes one test case as CSV, like the page's Export button.
var exportCmd = &cobra.Command{
	Use:   "export [input]",
	Short: "Export a test case as CSV",
	Long: `Export every record of one test case as CSV, in the same layout as the
dashboard's Export CSV button. N/A records are included.

Without -o the file is named <test case>_entities.csv and written to
export.dir from .nerdash.yaml, or the working directory. Use -o - to
write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportTestCase, "test-case", "t", "", "test case to export (default: the first one)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, or - for stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	input := argOr(args, 0, cfg.Generate.Input)

	d, err := loadDashboard(input, strictMode(cfg))
	if err != nil {
		return err
	}
	tc, err := pickTestCase(d, exportTestCase)
	if err != nil {
		return err
	}

	if exportOutput == "-" {
		return output.WriteCSV(tc, cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := output.WriteCSV(tc, &buf); err != nil {
		return err
	}
	path := exportOutput
	if path == "" {
		path = filepath.Join(cfg.Export.Dir, output.CSVFileName(tc.Name))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := cmdFS.MkdirAll(dir, 0o750); err != nil {
			return exitError(ExitInvalidArgs, "nerdash: create export directory: %v", err)
		}
	}
	if err := writeAtomic(path, buf.Bytes(), existingMode(path, 0o644)); err != nil {
		return exitError(ExitSpliceFailure, "nerdash: write export: %v", err)
	}

	rows := 0
	for _, p := range tc.Phrases {
		rows += len(p.Entities)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows from %s to %s\n", rows, tc.Name, path)
	return nil
}
