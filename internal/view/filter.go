// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"strings"

	"github.com/nerdash/nerdash/internal/record"
)

// TypeFilter selects which entities a phrase card displays.
type TypeFilter string

// Type filters besides the individual entity groups.
const (
	TypeAll           TypeFilter = "all"
	TypeLowConfidence TypeFilter = "low-confidence"
)

// TypeFilters lists every accepted type filter in button order.
func TypeFilters() []TypeFilter {
	out := []TypeFilter{TypeAll}
	for _, g := range record.Groups {
		out = append(out, TypeFilter(g))
	}
	return append(out, TypeLowConfidence)
}

// ParseTypeFilter validates s. The empty string means TypeAll.
func ParseTypeFilter(s string) (TypeFilter, error) {
	if s == "" {
		return TypeAll, nil
	}
	for _, f := range TypeFilters() {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown type filter %q", s)
}

// Filter is the view state that narrows a test case. Filters combine
// conjunctively.
type Filter struct {
	// Query matches phrase text, entity words and entity groups,
	// case-insensitively.
	Query string

	Type TypeFilter

	// Algorithm restricts records to one producing algorithm. Empty means all.
	Algorithm string
}

// Row is a visible phrase card. Records holds the phrase's records after
// algorithm narrowing; Entities is the subset the card displays.
type Row struct {
	Phrase   *Phrase
	Records  []record.Record
	Entities []record.Record
}

// Apply returns the phrase cards of tc that remain visible under f. A phrase
// whose display set is empty is hidden unless the type filter is "all".
func (f Filter) Apply(tc *TestCase) []Row {
	if tc == nil {
		return nil
	}
	query := strings.ToLower(f.Query)
	typ := f.Type
	if typ == "" {
		typ = TypeAll
	}

	var rows []Row
	for _, p := range tc.Phrases {
		recs := p.Entities
		if f.Algorithm != "" {
			recs = byAlgorithm(recs, f.Algorithm)
			if len(recs) == 0 {
				continue
			}
		}
		if query != "" && !matches(p.Text, recs, query) {
			continue
		}

		display := make([]record.Record, 0, len(recs))
		for _, e := range recs {
			if e.IsEntity() && typ.keep(e) {
				display = append(display, e)
			}
		}
		if typ != TypeAll && len(display) == 0 {
			continue
		}
		rows = append(rows, Row{Phrase: p, Records: recs, Entities: display})
	}
	return rows
}

func (t TypeFilter) keep(e record.Record) bool {
	switch t {
	case TypeAll:
		return true
	case TypeLowConfidence:
		return IsLowConfidence(e)
	}
	return e.Group == record.Group(t)
}

func matches(text string, recs []record.Record, query string) bool {
	if strings.Contains(strings.ToLower(text), query) {
		return true
	}
	for _, e := range recs {
		if strings.Contains(strings.ToLower(e.Word), query) ||
			strings.Contains(strings.ToLower(string(e.Group)), query) {
			return true
		}
	}
	return false
}

func byAlgorithm(recs []record.Record, algorithm string) []record.Record {
	var out []record.Record
	for _, e := range recs {
		if e.Algorithm == algorithm {
			out = append(out, e)
		}
	}
	return out
}
