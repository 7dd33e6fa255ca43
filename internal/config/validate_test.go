package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Title:    "Nightly",
		Strict:   boolPtr(true),
		Generate: GenerateConfig{Input: "a.jsonl", Output: "a.html"},
		Refresh:  RefreshConfig{Input: "a.jsonl", Dashboard: "vis/a.HTM"},
		Stats:    StatsConfig{Format: "json"},
	}
	require.NoError(t, Validate(cfg))
}

func TestValidate_EmptyConfig(t *testing.T) {
	require.NoError(t, Validate(&Config{}))
}

func TestValidate_UnknownFormat(t *testing.T) {
	err := Validate(&Config{Stats: StatsConfig{Format: "xml"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats.format")
	assert.Contains(t, err.Error(), "xml")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Title:    "two\nlines",
		Generate: GenerateConfig{Input: "same.html", Output: "same.html"},
		Refresh:  RefreshConfig{Dashboard: "dash.txt"},
	}
	err := Validate(cfg)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "config validation failed:")
	assert.Contains(t, msg, "title: must be a single line")
	assert.Contains(t, msg, "generate.output: must differ from generate.input")
	assert.Contains(t, msg, `refresh.dashboard: must name an .html file, got "dash.txt"`)
}
