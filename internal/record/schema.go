// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// recordSchemaJSON describes the shape of one input line. Cross-field rules
// (span bounds, phrase consistency, score range) live in Check.
const recordSchemaJSON = `{
  "type": "object",
  "required": ["Test_Case", "Phrase_ID", "Phrase", "Word", "Entity_Group", "Score", "Start", "End"],
  "properties": {
    "Test_Case":    {"type": "string", "minLength": 1},
    "Phrase_ID":    {"type": ["string", "integer"]},
    "Phrase":       {"type": "string"},
    "Word":         {"type": "string"},
    "Entity_Group": {"enum": ["LOC", "ORG", "PER", "MISC", "N/A"]},
    "Score":        {"type": ["number", "string"]},
    "Start":        {"type": "integer", "minimum": 0},
    "End":          {"type": "integer", "minimum": 0},
    "Algorithm":    {"type": "string"}
  }
}`

const recordSchemaName = "record.schema.json"

// schemaPrinter formats validation messages.
var schemaPrinter = message.NewPrinter(language.English)

var recordSchema = mustCompileSchema(recordSchemaJSON, recordSchemaName)

func mustCompileSchema(raw, name string) *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// validateDoc checks one decoded line against the record schema.
func validateDoc(doc any, line int) []Issue {
	err := recordSchema.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Issue{{Line: line, Field: "/", Message: err.Error()}}
	}
	var issues []Issue
	collectSchemaIssues(ve, line, &issues)
	return issues
}

func collectSchemaIssues(ve *jsonschema.ValidationError, line int, issues *[]Issue) {
	if len(ve.Causes) == 0 {
		field := "/"
		if len(ve.InstanceLocation) > 0 {
			field = strings.Join(ve.InstanceLocation, "/")
		}
		*issues = append(*issues, Issue{
			Line:    line,
			Field:   field,
			Message: ve.ErrorKind.LocalizedString(schemaPrinter),
		})
		return
	}
	for _, c := range ve.Causes {
		collectSchemaIssues(c, line, issues)
	}
}
