// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package record

import (
	"fmt"
	"unicode/utf8"
)

// Issue is an advisory finding about a decoded record. Issues never remove
// records from a Result.
type Issue struct {
	Line    int
	Field   string
	Message string
}

// Error implements the error interface.
func (i Issue) Error() string {
	return fmt.Sprintf("line %d: %s: %s", i.Line, i.Field, i.Message)
}

type phraseKey struct {
	testCase string
	phraseID PhraseID
}

type phraseSeen struct {
	text string
	line int
}

// Check validates every record in res against the record schema and the
// cross-record invariants, returning issues in line order.
func Check(res *Result) []Issue {
	var issues []Issue
	phrases := make(map[phraseKey]phraseSeen)

	for i, r := range res.Records {
		if i < len(res.docs) {
			issues = append(issues, validateDoc(res.docs[i], r.Line)...)
		}
		issues = append(issues, checkRecord(r)...)

		key := phraseKey{testCase: r.TestCase, phraseID: r.PhraseID}
		seen, ok := phrases[key]
		if !ok {
			phrases[key] = phraseSeen{text: r.Phrase, line: r.Line}
			continue
		}
		if seen.text != r.Phrase {
			issues = append(issues, Issue{
				Line:  r.Line,
				Field: "Phrase",
				Message: fmt.Sprintf("differs from the phrase on line %d for test case %q, phrase %s",
					seen.line, r.TestCase, r.PhraseID),
			})
		}
	}
	return issues
}

// checkRecord applies the per-record invariants. N/A records carry no span
// or score worth checking.
func checkRecord(r Record) []Issue {
	if !r.IsEntity() {
		return nil
	}

	var issues []Issue
	n := utf8.RuneCountInString(r.Phrase)
	if r.Start < 0 || r.Start > r.End || r.End > n {
		issues = append(issues, Issue{
			Line:    r.Line,
			Field:   "Start/End",
			Message: fmt.Sprintf("span [%d,%d) outside phrase of length %d", r.Start, r.End, n),
		})
	}

	switch {
	case !r.Score.Valid:
		issues = append(issues, Issue{
			Line:    r.Line,
			Field:   "Score",
			Message: fmt.Sprintf("%q is not a number", r.Score.Raw),
		})
	case r.Score.Value < 0 || r.Score.Value > 1:
		issues = append(issues, Issue{
			Line:    r.Line,
			Field:   "Score",
			Message: fmt.Sprintf("must be between 0.0 and 1.0, got %s", r.Score.Raw),
		})
	}
	return issues
}
