package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	nerdashlog "github.com/nerdash/nerdash/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
	strict  bool
)

// rootCmd is the base command for nerdash.
var rootCmd = &cobra.Command{
	Use:   "nerdash",
	Short: "Build and refresh self-contained NER dashboards",
	Long: `Nerdash turns JSON Lines output from named entity recognition runs into a
single self-contained HTML dashboard. The page carries the raw records and
renders them in the browser, so a dashboard can be refreshed in place with
new results without touching its layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		nerdashlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail when the input has invalid lines or record issues")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
