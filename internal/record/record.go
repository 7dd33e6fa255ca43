// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

// Package record defines the NER entity record and the JSON Lines reader
// that produces it.
package record

import (
	"math"
	"strconv"
	"strings"
)

// Group is the semantic label assigned to a recognized span.
type Group string

// Known entity groups. GroupNone marks a phrase in which nothing was detected.
const (
	GroupLOC  Group = "LOC"
	GroupORG  Group = "ORG"
	GroupPER  Group = "PER"
	GroupMISC Group = "MISC"
	GroupNone Group = "N/A"
)

// Groups lists the highlightable groups in display order.
var Groups = []Group{GroupLOC, GroupORG, GroupPER, GroupMISC}

// IsEntity reports whether the record carries a detected entity. Anything
// other than the N/A sentinel counts, including labels outside the known set.
func (g Group) IsEntity() bool {
	return g != GroupNone
}

// PhraseID identifies a phrase within a test case. Upstream tools emit it as
// either a string or a number. Numbers are rendered the way the page keys
// them, so 7, 7.0 and "7" land on the same phrase.
type PhraseID string

// Score is an opaque confidence value. Raw is the display text: string
// scores verbatim, number scores as the page prints them (0.90 reads 0.9).
type Score struct {
	Raw   string
	Value float64
	Valid bool
}

// ParseScore interprets s as a confidence score. "N/A" and non-numeric text
// yield an invalid score that still keeps its raw form.
func ParseScore(s string) Score {
	sc := Score{Raw: s}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return sc
	}
	sc.Value = v
	sc.Valid = true
	return sc
}

// String returns the raw score text.
func (s Score) String() string {
	return s.Raw
}

// Record is one line of NER output.
type Record struct {
	TestCase  string
	PhraseID  PhraseID
	Phrase    string
	Word      string
	Group     Group
	Score     Score
	Start     int
	End       int
	Algorithm string

	// Line is the 1-based input line the record came from (0 if synthetic).
	Line int
}

// IsEntity reports whether the record describes a detected entity.
func (r Record) IsEntity() bool {
	return r.Group.IsEntity()
}
