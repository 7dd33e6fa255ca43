package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_LaterLayersWin(t *testing.T) {
	global := &Config{
		Title:    "Global",
		Strict:   boolPtr(true),
		Generate: GenerateConfig{Input: "global.jsonl", Output: "global.html"},
	}
	project := &Config{
		Title:    "Project",
		Strict:   boolPtr(false),
		Generate: GenerateConfig{Output: "project.html"},
	}

	got := Merge(Defaults(), global, project)
	assert.Equal(t, "Project", got.Title)
	require.NotNil(t, got.Strict)
	assert.False(t, *got.Strict, "an explicit false overrides an earlier true")
	assert.Equal(t, "global.jsonl", got.Generate.Input)
	assert.Equal(t, "project.html", got.Generate.Output)
	assert.Equal(t, DefaultRefreshDashboard, got.Refresh.Dashboard)
	assert.Equal(t, DefaultStatsFormat, got.Stats.Format)
}

func TestMerge_ZeroValuesFallThrough(t *testing.T) {
	got := Merge(&Config{Export: ExportConfig{Dir: "exports"}}, &Config{})
	assert.Equal(t, "exports", got.Export.Dir)
	assert.Nil(t, got.Strict)
}

func TestMerge_NilLayers(t *testing.T) {
	got := Merge(nil, &Config{Title: "x"}, nil)
	assert.Equal(t, "x", got.Title)
	assert.Equal(t, &Config{}, Merge())
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	in := &Config{Strict: boolPtr(true)}
	got := Merge(in)
	*got.Strict = false
	assert.True(t, *in.Strict)
}
