// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package view

import (
	"sort"
	"strings"

	"github.com/nerdash/nerdash/internal/record"
)

// Marker renders the pieces of a highlighted phrase.
type Marker interface {
	// Text renders a run of plain phrase text.
	Text(s string) string
	// Open renders the markup placed before an entity span.
	Open(e record.Record) string
	// Close renders the markup placed after an entity span.
	Close(e record.Record) string
}

// Highlight splices entity markup into text. Offsets are code points into
// the original phrase. Spans are placed in descending Start order (shortest
// first on ties), and every insertion is keyed by its original offset, so
// placing one span never shifts another. Nested spans nest; a span crossing
// an already placed one is dropped, as are empty, inverted or out-of-range
// spans and N/A records. The result does not depend on the order of
// entities.
func Highlight(text string, entities []record.Record, m Marker) string {
	runes := []rune(text)

	spans := make([]record.Record, 0, len(entities))
	for _, e := range entities {
		if e.IsEntity() && e.Start >= 0 && e.Start < e.End && e.End <= len(runes) {
			spans = append(spans, e)
		}
	}
	sort.SliceStable(spans, func(i, j int) bool {
		a, b := spans[i], spans[j]
		if a.Start != b.Start {
			return a.Start > b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if a.Word != b.Word {
			return a.Word < b.Word
		}
		return a.Score.Raw < b.Score.Raw
	})

	opens := make(map[int][]string)
	closes := make(map[int][]string)
	var placed []record.Record
	for _, e := range spans {
		if crossesAny(e, placed) {
			continue
		}
		placed = append(placed, e)
		opens[e.Start] = append([]string{m.Open(e)}, opens[e.Start]...)
		closes[e.End] = append(closes[e.End], m.Close(e))
	}

	var b strings.Builder
	seg := 0
	for i := 0; i <= len(runes); i++ {
		closing, opening := closes[i], opens[i]
		if len(closing) == 0 && len(opening) == 0 {
			continue
		}
		if seg < i {
			b.WriteString(m.Text(string(runes[seg:i])))
		}
		seg = i
		for _, c := range closing {
			b.WriteString(c)
		}
		for _, o := range opening {
			b.WriteString(o)
		}
	}
	if seg < len(runes) {
		b.WriteString(m.Text(string(runes[seg:])))
	}
	return b.String()
}

func crossesAny(e record.Record, placed []record.Record) bool {
	for _, p := range placed {
		if (e.Start < p.Start && p.Start < e.End && e.End < p.End) ||
			(p.Start < e.Start && e.Start < p.End && p.End < e.End) {
			return true
		}
	}
	return false
}
