// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

// Package report renders terminal output: aligned tables, score colors and
// inline entity markers.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc // optional per-cell color function
}

// Table renders aligned text tables to an io.Writer. Widths are measured in
// terminal cells, so wide scripts in test case names line up.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are silently ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = runewidth.StringWidth(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = pad(bold.Sprint(col.Header), col.Header, widths[i], col.Align)
	}
	if err := writeLine(w, header); err != nil {
		return err
	}

	sep := make([]string, len(t.columns))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			display := row[i]
			if col.Color != nil {
				display = col.Color(row[i])
			}
			parts[i] = pad(display, row[i], widths[i], col.Align)
		}
		if err := writeLine(w, parts); err != nil {
			return err
		}
	}
	return nil
}

// pad justifies display to width. Padding is based on the raw value, not the
// ANSI-colored display string.
func pad(display, raw string, width int, align Alignment) string {
	n := width - runewidth.StringWidth(raw)
	if n < 0 {
		n = 0
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + display
	}
	return display + strings.Repeat(" ", n)
}

func writeLine(w io.Writer, parts []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
