// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/nerdash/nerdash/internal/record"
	"github.com/nerdash/nerdash/internal/view"
)

// TerminalMarker highlights entities with bracketed, colored labels:
// [Paris]LOC.
type TerminalMarker struct{}

// Compile-time interface check.
var _ view.Marker = TerminalMarker{}

// Text returns s unchanged.
func (TerminalMarker) Text(s string) string { return s }

// Open starts an entity span.
func (TerminalMarker) Open(record.Record) string {
	return colorFaint.Sprint("[")
}

// Close ends an entity span with its group label.
func (TerminalMarker) Close(e record.Record) string {
	return colorFaint.Sprint("]") + ColorGroup(string(e.Group))
}
