package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdash/nerdash/internal/testable"
)

var sampleLines = []string{
	`{"Test_Case":"cities","Phrase_ID":1,"Phrase":"Paris is in France","Word":"Paris","Entity_Group":"LOC","Score":0.99,"Start":0,"End":5,"Algorithm":"bert"}`,
	`{"Test_Case":"cities","Phrase_ID":1,"Phrase":"Paris is in France","Word":"France","Entity_Group":"LOC","Score":0.65,"Start":12,"End":18,"Algorithm":"spacy"}`,
	`{"Test_Case":"people","Phrase_ID":7,"Phrase":"Ada met Bob","Word":"Ada","Entity_Group":"PER","Score":0.9,"Start":0,"End":3,"Algorithm":"bert"}`,
}

// newTestCmd redirects the root command's output and returns it with the
// stdout and stderr buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores every flag on every command to its default.
func resetFlags() {
	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				f.Changed = false
				_ = f.Value.Set(f.DefValue)
			})
		}
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)
}

// withMockFS swaps cmdFS with the given mock and restores it on test cleanup.
func withMockFS(t *testing.T, mock *testable.MockFileSystem) {
	t.Helper()
	orig := cmdFS
	cmdFS = mock
	t.Cleanup(func() { cmdFS = orig })
}

// setup resets flags and runs the test inside a fresh working directory with
// an empty global config. It returns the directory.
func setup(t *testing.T) string {
	t.Helper()
	resetFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeInput(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	return writeTestFile(t, dir, name, strings.Join(lines, "\n")+"\n")
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	return data
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, code, ece.ExitCode(), "message: %s", ece.Error())
}
