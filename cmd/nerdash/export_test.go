package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdash/nerdash/internal/testable"
)

const citiesCSV = `Phrase_ID,Phrase,Entity,Type,Score,Start,End
1,"Paris is in France","Paris",LOC,0.99,0,5
1,"Paris is in France","France",LOC,0.65,12,18
`

func TestExport_Stdout(t *testing.T) {
	dir := setup(t)
	in := writeInput(t, dir, "in.jsonl", sampleLines...)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"export", "-o", "-", in})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, citiesCSV, stdout.String())
}

func TestExport_DefaultFileName(t *testing.T) {
	dir := setup(t)
	in := writeInput(t, dir, "in.jsonl", sampleLines...)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"export", "--test-case", "people", in})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Exported 1 rows from people to people_entities.csv\n", stdout.String())
	got := readFile(t, filepath.Join(dir, "people_entities.csv"))
	assert.Equal(t, "Phrase_ID,Phrase,Entity,Type,Score,Start,End\n7,\"Ada met Bob\",\"Ada\",PER,0.9,0,3\n", string(got))
}

func TestExport_ConfigDir(t *testing.T) {
	dir := setup(t)
	writeInput(t, dir, "output.json", sampleLines...)
	writeTestFile(t, dir, ".nerdash.yaml", "export:\n  dir: exports\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"export"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, citiesCSV, string(readFile(t, filepath.Join(dir, "exports", "cities_entities.csv"))))
}

func TestExport_IncludesNARecords(t *testing.T) {
	dir := setup(t)
	in := writeInput(t, dir, "in.jsonl",
		`{"Test_Case":"quiet","Phrase_ID":3,"Phrase":"Say \"hi\"","Word":"","Entity_Group":"N/A","Score":"N/A","Start":0,"End":0,"Algorithm":"bert"}`)
	out := filepath.Join(dir, "q.csv")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"export", "-o", out, in})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "Exported 1 rows from quiet to "+out)
	assert.Equal(t, "Phrase_ID,Phrase,Entity,Type,Score,Start,End\n3,\"Say \"\"hi\"\"\",\"\",N/A,N/A,0,0\n",
		string(readFile(t, out)))
}

func TestExport_NoRecords(t *testing.T) {
	dir := setup(t)
	in := writeTestFile(t, dir, "in.jsonl", "")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"export", in})
	err := cmd.Execute()

	requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, err.Error(), "no records to show")
}

func TestExport_WriteFailure(t *testing.T) {
	dir := setup(t)
	in := writeInput(t, dir, "in.jsonl", sampleLines...)

	withMockFS(t, &testable.MockFileSystem{
		CreateTempFn: func(_, _ string) (*os.File, error) { return nil, os.ErrPermission },
	})

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"export", "-o", filepath.Join(dir, "out.csv"), in})
	err := cmd.Execute()

	requireExitCode(t, err, ExitSpliceFailure)
	assert.NoFileExists(t, filepath.Join(dir, "out.csv"))
}

func TestExport_TestCaseNameStaysInExportDir(t *testing.T) {
	dir := setup(t)
	in := writeInput(t, dir, "in.jsonl",
		`{"Test_Case":"../escape","Phrase_ID":1,"Phrase":"Oslo","Word":"Oslo","Entity_Group":"LOC","Score":0.90,"Start":0,"End":4,"Algorithm":"bert"}`)
	writeTestFile(t, dir, ".nerdash.yaml", "export:\n  dir: exports\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"export", in})
	require.NoError(t, cmd.Execute())

	want := filepath.Join("exports", ".._escape_entities.csv")
	assert.Equal(t, "Exported 1 rows from ../escape to "+want+"\n", stdout.String())
	assert.Equal(t, "Phrase_ID,Phrase,Entity,Type,Score,Start,End\n1,\"Oslo\",\"Oslo\",LOC,0.9,0,4\n",
		string(readFile(t, filepath.Join(dir, want))))
	assert.NoFileExists(t, filepath.Join(dir, "escape_entities.csv"))
}
