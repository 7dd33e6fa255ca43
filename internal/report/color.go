// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/nerdash/nerdash/internal/record"
	"github.com/nerdash/nerdash/internal/view"
)

// Shared color printers for terminal output.
var (
	colorRed     = color.New(color.FgRed)
	colorYellow  = color.New(color.FgYellow)
	colorGreen   = color.New(color.FgGreen)
	colorBlue    = color.New(color.FgBlue)
	colorMagenta = color.New(color.FgMagenta)
	colorBold    = color.New(color.Bold)
	colorFaint   = color.New(color.Faint)
)

// groupColors mirrors the page legend.
var groupColors = map[record.Group]*color.Color{
	record.GroupLOC:  colorGreen,
	record.GroupORG:  colorBlue,
	record.GroupPER:  colorRed,
	record.GroupMISC: colorMagenta,
}

// ColorScore colors a score string by confidence class.
func ColorScore(val string) string {
	switch view.ScoreClass(record.ParseScore(val)) {
	case "high":
		return colorGreen.Sprint(val)
	case "medium":
		return colorYellow.Sprint(val)
	case "low":
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// ColorGroup colors an entity group label with its legend color.
func ColorGroup(val string) string {
	if c, ok := groupColors[record.Group(val)]; ok {
		return c.Sprint(val)
	}
	return val
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// colorCount colors a low-confidence count: 0 is green, >0 is yellow.
func colorCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorYellow.Sprint(s)
}

// ColorLowCount is colorCount for string cells.
func ColorLowCount(val string) string {
	var n int
	if _, err := fmt.Sscanf(val, "%d", &n); err != nil {
		return val
	}
	return colorCount(n)
}
