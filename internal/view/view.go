// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

// Package view models the dashboard the way the embedded page renders it:
// records grouped by test case and phrase, per-test-case statistics, the
// search and type filters, and entity highlighting.
package view

import (
	"sort"
	"strconv"

	"github.com/nerdash/nerdash/internal/record"
)

// LowConfidence is the score below which an entity is flagged for review.
const LowConfidence = 0.7

// Phrase is one phrase of a test case with every record that refers to it.
type Phrase struct {
	ID       record.PhraseID
	Text     string
	Entities []record.Record
}

// TestCase groups the phrases of one named scenario.
type TestCase struct {
	Name    string
	Phrases []*Phrase
}

// Dashboard is the grouped form of a record set.
type Dashboard struct {
	TestCases  []*TestCase
	Algorithms []string

	byName map[string]*TestCase
}

// Build groups records by Test_Case and then Phrase_ID. The first record
// seen for a phrase supplies its text. Ordering follows the page, which keys
// plain objects: integer-like keys first in ascending order, then the rest in
// insertion order.
func Build(records []record.Record) *Dashboard {
	d := &Dashboard{byName: make(map[string]*TestCase)}
	phrases := make(map[string]map[record.PhraseID]*Phrase)
	algorithms := make(map[string]bool)

	for _, r := range records {
		tc, ok := d.byName[r.TestCase]
		if !ok {
			tc = &TestCase{Name: r.TestCase}
			d.byName[r.TestCase] = tc
			d.TestCases = append(d.TestCases, tc)
			phrases[r.TestCase] = make(map[record.PhraseID]*Phrase)
		}
		p, ok := phrases[r.TestCase][r.PhraseID]
		if !ok {
			p = &Phrase{ID: r.PhraseID, Text: r.Phrase}
			phrases[r.TestCase][r.PhraseID] = p
			tc.Phrases = append(tc.Phrases, p)
		}
		p.Entities = append(p.Entities, r)
		if r.Algorithm != "" {
			algorithms[r.Algorithm] = true
		}
	}

	sortKeys(d.TestCases, func(tc *TestCase) string { return tc.Name })
	for _, tc := range d.TestCases {
		sortKeys(tc.Phrases, func(p *Phrase) string { return string(p.ID) })
	}

	for a := range algorithms {
		d.Algorithms = append(d.Algorithms, a)
	}
	sort.Strings(d.Algorithms)
	return d
}

// TestCase returns the named test case, or nil.
func (d *Dashboard) TestCase(name string) *TestCase {
	return d.byName[name]
}

// Names returns the test case names in display order.
func (d *Dashboard) Names() []string {
	names := make([]string, len(d.TestCases))
	for i, tc := range d.TestCases {
		names[i] = tc.Name
	}
	return names
}

// sortKeys reorders items the way a JavaScript object orders its own keys.
func sortKeys[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ai, aok := arrayIndex(key(items[i]))
		bi, bok := arrayIndex(key(items[j]))
		switch {
		case aok && bok:
			return ai < bi
		case aok:
			return true
		}
		return false
	})
}

// arrayIndex reports whether s is a canonical array index ("0", "17", but
// not "007" or "-1").
func arrayIndex(s string) (uint64, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return n, true
}
