// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_BasicRender(t *testing.T) {
	tbl := NewTable(
		Column{Header: "Name"},
		Column{Header: "Count", Align: AlignRight},
	)
	tbl.AddRow("cities", "10")
	tbl.AddRow("organisations", "5")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Count")
	assert.Contains(t, out, "-------------")
	assert.Contains(t, out, "cities")
	assert.Contains(t, out, "organisations")
}

func TestTable_ColumnAlignment(t *testing.T) {
	tbl := NewTable(
		Column{Header: "Left"},
		Column{Header: "Right", Align: AlignRight},
	)
	tbl.AddRow("a", "1")
	tbl.AddRow("bb", "22")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := splitLines(buf.String())
	require.Len(t, lines, 4)
	assert.Equal(t, "  a         1", lines[2])
	assert.Equal(t, "  bb       22", lines[3])
}

func TestTable_WideCharacters(t *testing.T) {
	tbl := NewTable(Column{Header: "Name"}, Column{Header: "N", Align: AlignRight})
	tbl.AddRow("東京", "1")
	tbl.AddRow("abcde", "2")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := splitLines(buf.String())
	require.Len(t, lines, 4)
	assert.Equal(t, "  -----  -", lines[1])
	assert.Equal(t, "  東京   1", lines[2], "two wide runes occupy four cells")
	assert.Equal(t, "  abcde  2", lines[3])
}

func TestTable_ColorDoesNotAffectWidth(t *testing.T) {
	tbl := NewTable(Column{Header: "Score", Color: func(v string) string { return "<" + v + ">" }}, Column{Header: "X"})
	tbl.AddRow("0.9", "x")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := splitLines(buf.String())
	require.Len(t, lines, 3)
	assert.Equal(t, "  <0.9>    x", lines[2])
}

func TestTable_MissingValues(t *testing.T) {
	tbl := NewTable(
		Column{Header: "A"},
		Column{Header: "B"},
		Column{Header: "C"},
	)
	tbl.AddRow("only-one")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "only-one")
}

func TestTable_ExtraValues(t *testing.T) {
	tbl := NewTable(
		Column{Header: "A"},
	)
	tbl.AddRow("one", "extra-ignored")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "one")
	assert.NotContains(t, buf.String(), "extra-ignored")
}

func TestTable_EmptyTable(t *testing.T) {
	tbl := NewTable(Column{Header: "X"})

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "X")
	assert.Contains(t, buf.String(), "-")
}

func TestTable_NoColumns(t *testing.T) {
	tbl := NewTable()

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Empty(t, buf.String())
}

func TestTable_WidthComputation(t *testing.T) {
	tbl := NewTable(
		Column{Header: "ID"},
		Column{Header: "Value"},
	)
	tbl.AddRow("short", "x")
	tbl.AddRow("much-longer-value", "y")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := splitLines(buf.String())
	// All lines should have the same effective width (2-space indent + padded columns).
	require.True(t, len(lines) >= 4)
	// Header separator dashes should be at least as wide as "much-longer-value".
	assert.Contains(t, lines[1], "-----------------")
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range bytes.Split([]byte(s), []byte("\n")) {
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}
