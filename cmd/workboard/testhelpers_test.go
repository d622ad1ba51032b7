package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const rowsYAML = `rows:
  - id: w-1
    name: Fix login bug
    owner: alice
    workspace: core
    stage: in_progress
    priority: 1
  - id: w-2
    name: Write release notes
    owner: Unassigned
    workspace: docs
    stage: open
  - id: w-3
    name: Audit deps
    owner: bob
    workspace: core
    stage: done
    priority: 3
  - id: w-4
    name: Plan Q3
    owner: alice
    workspace: docs
    stage: open
`

// newTestCmd redirects rootCmd's output and resets every flag so tests do
// not see each other's values.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	resetFlags()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

func resetFlags() {
	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range []*cobra.Command{renderCmd, applyCmd, optionsCmd} {
		c.Flags().VisitAll(reset)
	}
	resetConfigFlags()

	// Clear slices after VisitAll; setting a string array to its "[]"
	// default appends a literal entry.
	applyToggleGroups = nil
	applyExpand = nil
	renderSort.clicks = nil
	applySort.clicks = nil
}

// workDir creates an isolated working directory with no global config and
// makes it current for the test.
func workDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".xdg"))
	t.Chdir(dir)
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
