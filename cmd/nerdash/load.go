package main

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/nerdash/nerdash/internal/record"
	"github.com/nerdash/nerdash/internal/view"
)

// loadInput reads and parses a JSON Lines file. Undecodable lines and record
// issues are logged as warnings; in strict mode either one fails the run.
func loadInput(path string, strict bool) (*record.Result, error) {
	data, err := cmdFS.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return nil, exitError(ExitInvalidArgs, "nerdash: input file not found: %s", path)
		}
		return nil, exitError(ExitInvalidArgs, "nerdash: cannot read input %s: %v", path, err)
	}

	res := record.Parse(data)
	for _, w := range res.Warnings {
		slog.Warn("invalid JSON", "file", path, "line", w.Line, "error", w.Err)
	}
	issues := record.Check(res)
	for _, is := range issues {
		slog.Warn("record issue", "file", path, "line", is.Line, "field", is.Field, "error", is.Message)
	}
	slog.Debug("parsed input", "file", path,
		"records", len(res.Records), "invalid_lines", len(res.Warnings), "issues", len(issues))

	if strict && (len(res.Warnings) > 0 || len(issues) > 0) {
		return nil, exitError(ExitValidation,
			"nerdash: %s: %d invalid lines and %d record issues (strict mode)",
			path, len(res.Warnings), len(issues))
	}
	return res, nil
}

// loadDashboard parses path and groups its records.
func loadDashboard(path string, strict bool) (*view.Dashboard, error) {
	res, err := loadInput(path, strict)
	if err != nil {
		return nil, err
	}
	return view.Build(res.Records), nil
}

// pickTestCase resolves a --test-case value. An empty name selects the first
// test case, the one the page opens on.
func pickTestCase(d *view.Dashboard, name string) (*view.TestCase, error) {
	if len(d.TestCases) == 0 {
		return nil, exitError(ExitInvalidArgs, "nerdash: no records to show")
	}
	if name == "" {
		return d.TestCases[0], nil
	}
	tc := d.TestCase(name)
	if tc == nil {
		return nil, exitError(ExitInvalidArgs, "nerdash: unknown test case %q (available: %s)",
			name, strings.Join(d.Names(), ", "))
	}
	return tc, nil
}

// summarize lists the distinct values of field across records, sorted, with
// empty values shown as "?".
func summarize(records []record.Record, field func(record.Record) string) string {
	seen := make(map[string]bool)
	for _, r := range records {
		v := field(r)
		if v == "" {
			v = "?"
		}
		seen[v] = true
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
