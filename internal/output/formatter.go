// Package output renders entity dashboards: the self-contained HTML page,
// statistics in several formats, and CSV exports.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/nerdash/nerdash/internal/view"
)

// Formatter writes dashboard statistics to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "table", "json").
	Name() string

	// Format writes the statistics of d to w.
	Format(d *view.Dashboard, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// FormatNames returns the registered format names, sorted.
func FormatNames() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

// formatNames returns a comma-separated sorted list of registered format names.
// Callers must hold fmtMu.
func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
