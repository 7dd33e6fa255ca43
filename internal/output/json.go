package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nerdash/nerdash/internal/record"
	"github.com/nerdash/nerdash/internal/view"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps per-test-case statistics with metadata for the JSON
// output format.
type JSONEnvelope struct {
	TestCases []JSONTestCase `json:"test_cases"`
	Overall   JSONOverall    `json:"overall"`
	Metadata  JSONMetadata   `json:"metadata"`
}

// JSONTestCase holds the summary cards of one test case.
type JSONTestCase struct {
	Name          string         `json:"name"`
	Phrases       int            `json:"phrases"`
	Entities      int            `json:"entities"`
	ByGroup       map[string]int `json:"by_group"`
	MeanScore     *float64       `json:"mean_score"`
	LowConfidence int            `json:"low_confidence"`
}

// JSONOverall holds the dashboard-wide statistics.
type JSONOverall struct {
	TestCases int      `json:"test_cases"`
	Phrases   int      `json:"phrases"`
	Entities  int      `json:"entities"`
	MeanScore *float64 `json:"mean_score"`
}

// JSONMetadata describes the data the statistics were computed from.
type JSONMetadata struct {
	Algorithms  []string `json:"algorithms"`
	GeneratedAt string   `json:"generated_at"`
}

// JSONFormatter writes dashboard statistics as a JSON document.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the statistics of d to w. An undefined mean is written as null.
func (f *JSONFormatter) Format(d *view.Dashboard, w io.Writer) error {
	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	env := JSONEnvelope{
		TestCases: make([]JSONTestCase, 0, len(d.TestCases)),
		Metadata: JSONMetadata{
			Algorithms:  d.Algorithms,
			GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}
	if env.Metadata.Algorithms == nil {
		env.Metadata.Algorithms = []string{}
	}
	for _, tc := range d.TestCases {
		s := tc.Stats()
		byGroup := make(map[string]int, len(record.Groups))
		for _, g := range record.Groups {
			byGroup[string(g)] = s.ByGroup[g]
		}
		env.TestCases = append(env.TestCases, JSONTestCase{
			Name:          tc.Name,
			Phrases:       s.Phrases,
			Entities:      s.Entities,
			ByGroup:       byGroup,
			MeanScore:     meanPtr(s.MeanScore),
			LowConfidence: s.LowConfidence,
		})
	}
	o := d.Overall()
	env.Overall = JSONOverall{
		TestCases: o.TestCases,
		Phrases:   o.Phrases,
		Entities:  o.Entities,
		MeanScore: meanPtr(o.MeanScore),
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(env)
	} else {
		data, err = json.MarshalIndent(env, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}
	return false
}

func meanPtr(m view.Mean) *float64 {
	if !m.OK {
		return nil
	}
	v := m.Value
	return &v
}
