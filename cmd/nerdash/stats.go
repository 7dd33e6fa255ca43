package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nerdash/nerdash/internal/output"
	"github.com/nerdash/nerdash/internal/record"
	"github.com/nerdash/nerdash/internal/view"
)

// Stats command flags.
var (
	statsFormat   string
	statsTestCase string
)

// statsCmd prints the dashboard's summary statistics without a browser.
var statsCmd = &cobra.Command{
	Use:   "stats [input]",
	Short: "Print per-test-case statistics",
	Long: `Print the statistics the dashboard shows: phrases, entities per group,
average confidence and low-confidence counts for every test case, plus
the overall panel. N/A records never count.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "", "output format: "+strings.Join(output.FormatNames(), ", ")+" (default \"table\")")
	statsCmd.Flags().StringVarP(&statsTestCase, "test-case", "t", "", "only report this test case")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	input := argOr(args, 0, cfg.Generate.Input)

	formatter, err := output.GetFormatter(stringFlag(cmd, "format", cfg.Stats.Format))
	if err != nil {
		return exitError(ExitInvalidArgs, "nerdash: %v", err)
	}

	res, err := loadInput(input, strictMode(cfg))
	if err != nil {
		return err
	}
	d := view.Build(res.Records)
	if statsTestCase != "" {
		if _, err := pickTestCase(d, statsTestCase); err != nil {
			return err
		}
		var only []record.Record
		for _, r := range res.Records {
			if r.TestCase == statsTestCase {
				only = append(only, r)
			}
		}
		d = view.Build(only)
	}

	return formatter.Format(d, cmd.OutOrStdout())
}
