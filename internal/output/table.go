package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nerdash/nerdash/internal/record"
	"github.com/nerdash/nerdash/internal/report"
	"github.com/nerdash/nerdash/internal/view"
)

func init() {
	RegisterFormatter(NewTableFormatter())
}

// TableFormatter writes dashboard statistics as aligned terminal tables.
type TableFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TableFormatter)(nil)

// NewTableFormatter returns a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Name returns the format name.
func (f *TableFormatter) Name() string {
	return "table"
}

// Format writes one row per test case followed by the overall statistics.
func (f *TableFormatter) Format(d *view.Dashboard, w io.Writer) error {
	cols := []report.Column{
		{Header: "Test Case"},
		{Header: "Phrases", Align: report.AlignRight},
		{Header: "Entities", Align: report.AlignRight},
	}
	for _, g := range record.Groups {
		cols = append(cols, report.Column{Header: string(g), Align: report.AlignRight})
	}
	cols = append(cols,
		report.Column{Header: "Avg", Align: report.AlignRight, Color: report.ColorScore},
		report.Column{Header: "Low", Align: report.AlignRight, Color: report.ColorLowCount},
	)

	tbl := report.NewTable(cols...)
	for _, tc := range d.TestCases {
		s := tc.Stats()
		row := []string{tc.Name, strconv.Itoa(s.Phrases), strconv.Itoa(s.Entities)}
		for _, g := range record.Groups {
			row = append(row, strconv.Itoa(s.ByGroup[g]))
		}
		row = append(row, s.MeanScore.String(), strconv.Itoa(s.LowConfidence))
		tbl.AddRow(row...)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	o := d.Overall()
	algorithms := "none"
	if len(d.Algorithms) > 0 {
		algorithms = strings.Join(d.Algorithms, ", ")
	}
	_, err := fmt.Fprintf(w, "\n%s\n  Test cases: %d\n  Phrases:    %d\n  Entities:   %d\n  Avg score:  %s\n  Algorithms: %s\n",
		report.SectionTitle("Overall"), o.TestCases, o.Phrases, o.Entities,
		report.ColorScore(o.MeanScore.String()), algorithms)
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
