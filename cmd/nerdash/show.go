package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nerdash/nerdash/internal/report"
	"github.com/nerdash/nerdash/internal/view"
)

// Show command flags.
var (
	showTestCase  string
	showType      string
	showQuery     string
	showAlgorithm string
)

// showCmd renders one test case in the terminal the way the page does.
var showCmd = &cobra.Command{
	Use:   "show [input]",
	Short: "Show a test case's phrases with entities highlighted",
	Long: `Show the phrase cards of one test case in the terminal. Entities are
marked inline as [text]GROUP, and the search, type and algorithm filters
behave like the dashboard's.

Type filters: ` + typeFilterList() + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showTestCase, "test-case", "t", "", "test case to show (default: the first one)")
	showCmd.Flags().StringVar(&showType, "type", "all", "entity type filter")
	showCmd.Flags().StringVar(&showQuery, "query", "", "case-insensitive search over phrases, words and groups")
	showCmd.Flags().StringVar(&showAlgorithm, "algorithm", "", "only records from this algorithm")
}

func typeFilterList() string {
	var names []string
	for _, f := range view.TypeFilters() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	input := argOr(args, 0, cfg.Generate.Input)

	typ, err := view.ParseTypeFilter(showType)
	if err != nil {
		return exitError(ExitInvalidArgs, "nerdash: %v (valid: %s)", err, typeFilterList())
	}

	d, err := loadDashboard(input, strictMode(cfg))
	if err != nil {
		return err
	}
	tc, err := pickTestCase(d, showTestCase)
	if err != nil {
		return err
	}

	f := view.Filter{Query: showQuery, Type: typ, Algorithm: showAlgorithm}
	return renderTestCase(cmd.OutOrStdout(), tc, f)
}

func renderTestCase(w io.Writer, tc *view.TestCase, f view.Filter) error {
	s := tc.Stats()
	_, _ = fmt.Fprintf(w, "%s\n", report.SectionTitle(tc.Name))
	_, _ = fmt.Fprintf(w, "  %d phrases, %d entities, avg %s, %d low confidence\n\n",
		s.Phrases, s.Entities, report.ColorScore(s.MeanScore.String()), s.LowConfidence)

	rows := f.Apply(tc)
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "  No phrases match the current filter criteria.")
		return nil
	}

	for _, row := range rows {
		mean := row.Mean()
		_, _ = fmt.Fprintf(w, "Phrase #%s  (%d entities, avg %s)\n",
			row.Phrase.ID, countEntities(row), report.ColorScore(mean.String()))
		_, _ = fmt.Fprintf(w, "  %s\n", view.Highlight(row.Phrase.Text, row.Entities, report.TerminalMarker{}))

		if len(row.Entities) == 0 {
			_, _ = fmt.Fprintln(w, "  No entities detected")
			_, _ = fmt.Fprintln(w)
			continue
		}
		tbl := report.NewTable(
			report.Column{Header: "Entity"},
			report.Column{Header: "Type", Color: report.ColorGroup},
			report.Column{Header: "Confidence", Align: report.AlignRight, Color: report.ColorScore},
			report.Column{Header: "Position", Align: report.AlignRight},
		)
		for _, e := range row.Entities {
			tbl.AddRow(e.Word, string(e.Group), e.Score.Raw, strconv.Itoa(e.Start)+"-"+strconv.Itoa(e.End))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w)
	}
	return nil
}

func countEntities(row view.Row) int {
	n := 0
	for _, e := range row.Records {
		if e.IsEntity() {
			n++
		}
	}
	return n
}
