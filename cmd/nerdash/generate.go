package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nerdash/nerdash/internal/output"
)

// Generate command flags.
var generateTitle string

// generateCmd builds a new dashboard from a JSON Lines file.
var generateCmd = &cobra.Command{
	Use:   "generate [input] [output]",
	Short: "Build a dashboard from a JSON Lines file",
	Long: `Build a self-contained HTML dashboard from a JSON Lines file of entity
records. The input text is embedded verbatim, malformed lines included;
the page decodes it when it loads.

Defaults come from generate.input and generate.output in .nerdash.yaml,
falling back to output.json and ner_dashboard.html.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "page title (default \""+output.DefaultTitle+"\")")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	input := argOr(args, 0, cfg.Generate.Input)
	outPath := argOr(args, 1, cfg.Generate.Output)
	title := stringFlag(cmd, "title", cfg.Title)

	res, err := loadInput(input, strictMode(cfg))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Loaded %d entity records\n", len(res.Records))

	var buf bytes.Buffer
	if err := output.NewHTMLRenderer(title).Render(res, &buf); err != nil {
		return exitError(ExitSpliceFailure, "nerdash: render dashboard: %v", err)
	}

	absOut, err := cmdFS.Abs(outPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "nerdash: cannot resolve path %s: %v", outPath, err)
	}
	if err := cmdFS.MkdirAll(filepath.Dir(absOut), 0o750); err != nil {
		return exitError(ExitSpliceFailure, "nerdash: create output directory: %v", err)
	}
	if err := writeAtomic(absOut, buf.Bytes(), existingMode(absOut, 0o644)); err != nil {
		return exitError(ExitSpliceFailure, "nerdash: write dashboard: %v", err)
	}
	slog.Debug("dashboard written", "path", absOut, "bytes", buf.Len())

	_, _ = fmt.Fprintf(w, "Dashboard generated: %s\n", absOut)
	_, _ = fmt.Fprintf(w, "Open in browser: file://%s\n", filepath.ToSlash(absOut))
	return nil
}
