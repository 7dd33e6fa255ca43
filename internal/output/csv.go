package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nerdash/nerdash/internal/view"
)

// CSVHeader is the first line of every export.
const CSVHeader = "Phrase_ID,Phrase,Entity,Type,Score,Start,End"

// CSVFileName is the download name the page uses for a test case export.
// Path separators in the name become underscores, so the result is always a
// single path element.
func CSVFileName(testCase string) string {
	return fileNameReplacer.Replace(testCase) + "_entities.csv"
}

var fileNameReplacer = strings.NewReplacer("/", "_", `\`, "_")

// WriteCSV writes every record of tc, N/A included, in the page's export
// layout. Phrase and Entity are always quoted; the other fields never are.
// Scores are written as displayed: numbers the way the page prints them,
// strings verbatim.
func WriteCSV(tc *view.TestCase, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(CSVHeader + "\n"); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, p := range tc.Phrases {
		for _, e := range p.Entities {
			fields := []string{
				string(p.ID),
				quoteCSV(p.Text),
				quoteCSV(e.Word),
				string(e.Group),
				e.Score.Raw,
				strconv.Itoa(e.Start),
				strconv.Itoa(e.End),
			}
			if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
