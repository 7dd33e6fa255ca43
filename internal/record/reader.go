// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	// errNotObject is returned for lines that are valid JSON but not an object.
	errNotObject = errors.New("not a JSON object")

	// errBlankLine is returned for empty or whitespace-only lines between
	// records.
	errBlankLine = errors.New("blank line")
)

// Warning describes an input line that could not be decoded. The line is
// left out of Result.Records but stays in Result.Raw.
type Warning struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (w Warning) Error() string {
	return fmt.Sprintf("Invalid JSON on line %d: %v", w.Line, w.Err)
}

// Unwrap returns the decode error.
func (w Warning) Unwrap() error { return w.Err }

// Result is the outcome of reading a JSON Lines document.
type Result struct {
	// Raw is the whole input with surrounding whitespace trimmed. It is the
	// text that gets embedded, malformed lines included.
	Raw string

	// Records holds every line that decoded to a JSON object, in input order.
	Records []Record

	// Warnings lists lines that failed to decode.
	Warnings []Warning

	// docs holds the generic decoded form of each record for schema checks.
	docs []any
}

// Parse splits raw into lines and decodes each one independently. Decoding
// failures never abort the read; they are collected as warnings.
func Parse(raw []byte) *Result {
	text := strings.TrimSpace(string(raw))
	res := &Result{Raw: text}
	if text == "" {
		return res
	}

	for i, line := range strings.Split(text, "\n") {
		lineNum := i + 1
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			res.Warnings = append(res.Warnings, Warning{Line: lineNum, Err: errBlankLine})
			continue
		}

		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(line))
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Line: lineNum, Err: err})
			continue
		}
		obj, ok := doc.(map[string]any)
		if !ok {
			res.Warnings = append(res.Warnings, Warning{Line: lineNum, Err: errNotObject})
			continue
		}

		res.Records = append(res.Records, fromObject(obj, lineNum))
		res.docs = append(res.docs, doc)
	}
	return res
}

// fromObject maps a decoded JSON object onto a Record. Fields of the wrong
// type are left at their zero value; Check reports them.
func fromObject(obj map[string]any, line int) Record {
	r := Record{
		TestCase:  stringField(obj["Test_Case"]),
		PhraseID:  PhraseID(scalarField(obj["Phrase_ID"])),
		Phrase:    stringField(obj["Phrase"]),
		Word:      stringField(obj["Word"]),
		Group:     Group(stringField(obj["Entity_Group"])),
		Start:     intField(obj["Start"]),
		End:       intField(obj["End"]),
		Algorithm: stringField(obj["Algorithm"]),
		Line:      line,
	}
	if v, ok := obj["Score"]; ok && v != nil {
		r.Score = ParseScore(scalarField(v))
	}
	return r
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

// scalarField renders strings and numbers as text. Numbers take the form a
// browser gives them, so 1, 1.0 and 1e0 all read "1".
func scalarField(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return jsNumber(x)
	case float64:
		return fmt.Sprint(x)
	}
	return ""
}

// jsNumber formats n like JavaScript's Number.prototype.toString: the
// shortest round-trip digits, in exponent form below 1e-6 and from 1e21 up.
func jsNumber(n json.Number) string {
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return n.String()
	}
	if v == 0 {
		return "0"
	}
	if a := math.Abs(v); a >= 1e21 || a < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intField(v any) int {
	n, ok := v.(json.Number)
	if !ok {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0
	}
	return int(f)
}
