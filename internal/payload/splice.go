// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package payload

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
)

// Sentinels bracketing the payload template literal. The begin sentinel ends
// in an unescaped backtick, which Escape never produces, so it cannot occur
// inside a payload.
const (
	BeginSentinel = "/* nerdash:payload */`"
	EndSentinel   = "`/* /nerdash:payload */"
)

// Placeholder is the empty payload assignment shipped in the dashboard shell.
const Placeholder = "const RAW_JSON = " + BeginSentinel + EndSentinel + ";\nlet DATA;"

var (
	// ErrNoRegion means the document has no payload region.
	ErrNoRegion = errors.New("payload region not found")

	// ErrAmbiguousRegion means the document has more than one payload region.
	ErrAmbiguousRegion = errors.New("payload region found more than once")
)

// legacyPattern matches dashboards written before the sentinels existed.
var legacyPattern = regexp.MustCompile("(?s)(const RAW_JSON = `).*?(`;\\s*\\nlet DATA;)")

// Region is the byte range of the payload text inside a document.
type Region struct {
	Start, End int

	// Legacy is set when the region was found through the old
	// variable-declaration anchor instead of the sentinels.
	Legacy bool
}

// Locate finds the single payload region in doc.
func Locate(doc []byte) (Region, error) {
	switch n := bytes.Count(doc, []byte(BeginSentinel)); {
	case n > 1:
		return Region{}, fmt.Errorf("%w: %d begin sentinels", ErrAmbiguousRegion, n)
	case n == 1:
		return locateSentinel(doc)
	}
	return locateLegacy(doc)
}

func locateSentinel(doc []byte) (Region, error) {
	start := bytes.Index(doc, []byte(BeginSentinel)) + len(BeginSentinel)
	for i := start; i < len(doc); i++ {
		switch doc[i] {
		case '\\':
			i++
		case '`':
			if !bytes.HasPrefix(doc[i:], []byte(EndSentinel)) {
				return Region{}, fmt.Errorf("%w: template literal at byte %d is not closed by %q",
					ErrNoRegion, i, EndSentinel)
			}
			return Region{Start: start, End: i}, nil
		}
	}
	return Region{}, fmt.Errorf("%w: unterminated template literal", ErrNoRegion)
}

func locateLegacy(doc []byte) (Region, error) {
	matches := legacyPattern.FindAllSubmatchIndex(doc, -1)
	switch len(matches) {
	case 0:
		return Region{}, ErrNoRegion
	case 1:
		m := matches[0]
		return Region{Start: m[3], End: m[4], Legacy: true}, nil
	default:
		return Region{}, fmt.Errorf("%w: %d RAW_JSON assignments", ErrAmbiguousRegion, len(matches))
	}
}

// Splice returns a copy of doc with the payload region replaced by escaped.
// Every byte outside the region is preserved.
func Splice(doc []byte, escaped string) ([]byte, Region, error) {
	r, err := Locate(doc)
	if err != nil {
		return nil, Region{}, err
	}
	out := make([]byte, 0, len(doc)-(r.End-r.Start)+len(escaped))
	out = append(out, doc[:r.Start]...)
	out = append(out, escaped...)
	out = append(out, doc[r.End:]...)
	return out, r, nil
}

// Extract returns the unescaped payload embedded in doc.
func Extract(doc []byte) (string, error) {
	r, err := Locate(doc)
	if err != nil {
		return "", err
	}
	return Unescape(string(doc[r.Start:r.End])), nil
}
