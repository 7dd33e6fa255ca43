// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/nerdash/nerdash/internal/record"
)

// Mean is an average that may be undefined.
type Mean struct {
	Value float64
	OK    bool
}

// String formats the mean to four decimals, or "N/A" when undefined.
func (m Mean) String() string {
	if !m.OK {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", m.Value)
}

type meanAcc struct {
	sum float64
	n   int
}

func (a *meanAcc) add(s record.Score) {
	if s.Valid {
		a.sum += s.Value
		a.n++
	}
}

func (a meanAcc) mean() Mean {
	if a.n == 0 {
		return Mean{}
	}
	return Mean{Value: a.sum / float64(a.n), OK: true}
}

// Stats summarises one test case. N/A records never contribute.
type Stats struct {
	Phrases       int
	Entities      int
	ByGroup       map[record.Group]int
	MeanScore     Mean
	LowConfidence int
}

// Stats computes the summary cards for tc.
func (tc *TestCase) Stats() Stats {
	s := Stats{
		Phrases: len(tc.Phrases),
		ByGroup: make(map[record.Group]int, len(record.Groups)),
	}
	var acc meanAcc
	for _, p := range tc.Phrases {
		for _, e := range p.Entities {
			if !e.IsEntity() {
				continue
			}
			s.Entities++
			s.ByGroup[e.Group]++
			acc.add(e.Score)
			if IsLowConfidence(e) {
				s.LowConfidence++
			}
		}
	}
	s.MeanScore = acc.mean()
	return s
}

// Overall summarises the whole dashboard.
type Overall struct {
	TestCases int
	Phrases   int
	Entities  int
	MeanScore Mean
}

// Overall computes the sidebar statistics panel.
func (d *Dashboard) Overall() Overall {
	o := Overall{TestCases: len(d.TestCases)}
	var acc meanAcc
	for _, tc := range d.TestCases {
		o.Phrases += len(tc.Phrases)
		for _, p := range tc.Phrases {
			for _, e := range p.Entities {
				if e.IsEntity() {
					o.Entities++
					acc.add(e.Score)
				}
			}
		}
	}
	o.MeanScore = acc.mean()
	return o
}

// Mean is the average score shown on a phrase card.
func (r Row) Mean() Mean {
	var acc meanAcc
	for _, e := range r.Records {
		if e.IsEntity() {
			acc.add(e.Score)
		}
	}
	return acc.mean()
}

// IsLowConfidence reports whether e is an entity scored below LowConfidence.
func IsLowConfidence(e record.Record) bool {
	return e.IsEntity() && e.Score.Valid && e.Score.Value < LowConfidence
}

// ScoreClass buckets a score for colouring: high at 0.85 and above, medium
// at LowConfidence and above, low below that, and "" when not numeric.
func ScoreClass(s record.Score) string {
	switch {
	case !s.Valid:
		return ""
	case s.Value >= 0.85:
		return "high"
	case s.Value >= LowConfidence:
		return "medium"
	}
	return "low"
}
