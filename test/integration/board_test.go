// Package integration contains end-to-end tests for workboard.
//
// These tests build the workboard binary and run it against row files in a
// temporary directory, following a board from render through apply.
package integration

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/workboard/internal/dom"
	"github.com/davetashner/workboard/internal/output"
)

const backlog = `[[rows]]
id = "w-1"
name = "Fix login bug"
owner = "alice"
workspace = "core"
stage = "in_progress"
priority = 1

[[rows]]
id = "w-2"
name = "Write release notes"
workspace = "docs"
stage = "open"

[[rows]]
id = "w-3"
name = "Audit deps"
owner = "bob"
workspace = "core"
stage = "done"
priority = 3
`

// repoRoot returns the workboard repository root directory.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	// test/integration/board_test.go -> repo root
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

// buildBinary compiles workboard into a temp directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "workboard-test")
	cmd := exec.Command("go", "build", "-o", binary, "./cmd/workboard") //nolint:gosec // test helper
	cmd.Dir = repoRoot(t)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "go build failed:\n%s", out)
	return binary
}

// workspace returns a directory holding backlog.toml and no config.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backlog.toml"), []byte(backlog), 0o600))
	return dir
}

func run(t *testing.T, binary, dir string, args ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command(binary, args...) //nolint:gosec // test helper
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+filepath.Join(dir, ".xdg"))
	return cmd
}

func parseDashboard(t *testing.T, path string) *dom.Document {
	t.Helper()
	f, err := os.Open(path) //nolint:gosec // test fixture
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test cleanup
	doc, err := dom.Parse(f)
	require.NoError(t, err)
	return doc
}

func TestRenderThenApply(t *testing.T) {
	binary := buildBinary(t)
	dir := workspace(t)

	out, err := run(t, binary, dir, "render", "backlog.toml", "-o", "board.html", "--owner", "alice", "--quiet").CombinedOutput()
	require.NoError(t, err, "render failed:\n%s", out)

	doc := parseDashboard(t, filepath.Join(dir, "board.html"))
	assert.Len(t, doc.ReadRows(), 3)
	assert.Len(t, doc.VisibleRows(), 1)
	assert.Equal(t, "1", doc.Text(dom.VisibleCountID))
	assert.True(t, doc.HasElement(output.OwnersListID))

	out, err = run(t, binary, dir, "apply", "board.html", "--owner", "", "--hide-unassigned", "--in-place", "--quiet").CombinedOutput()
	require.NoError(t, err, "apply failed:\n%s", out)

	doc = parseDashboard(t, filepath.Join(dir, "board.html"))
	assert.Equal(t, "2", doc.Text(dom.VisibleCountID))
	state := doc.ReadFilterState()
	assert.Empty(t, state.Owner)
	assert.True(t, state.HideUnassigned)
}

func TestRender_Idempotent(t *testing.T) {
	binary := buildBinary(t)
	dir := workspace(t)

	first, err := run(t, binary, dir, "render", "backlog.toml", "-f", "markdown", "--quiet").Output()
	require.NoError(t, err)
	second, err := run(t, binary, dir, "render", "backlog.toml", "-f", "markdown", "--quiet").Output()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRender_JSONValidity(t *testing.T) {
	binary := buildBinary(t)
	dir := workspace(t)

	stdout, err := run(t, binary, dir, "render", "backlog.toml", "-f", "json", "--sort", "5", "--quiet").Output()
	require.NoError(t, err)

	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal(stdout, &env))
	assert.Equal(t, 3, env.Metadata.TotalCount)
	require.Len(t, env.Rows, 3)
	// Rows without a priority have an empty cell and sort first.
	assert.Equal(t, "w-2", env.Rows[0].ID)
	assert.False(t, env.Rows[0].HasOwner)
	assert.Equal(t, "w-1", env.Rows[1].ID)
}

func TestErrorMessages(t *testing.T) {
	binary := buildBinary(t)

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"nonexistent source", []string{"render", "/no/such/backlog.yaml"}, 1, "/no/such/backlog.yaml"},
		{"unknown format", []string{"render", "-f", "sarif"}, 1, "unknown format"},
		{"bad group-by", []string{"render", "--group-by", "team"}, 1, "--group-by"},
		{"unwritable output", []string{"render", "backlog.toml", "-o", "/no/such/dir/board.html"}, 2, "cannot create output file"},
		{"apply missing dashboard", []string{"apply", "missing.html"}, 1, "missing.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := workspace(t)
			out, err := run(t, binary, dir, tt.args...).CombinedOutput()
			var exitErr *exec.ExitError
			require.True(t, errors.As(err, &exitErr), "expected non-zero exit")
			assert.Equal(t, tt.wantCode, exitErr.ExitCode())
			assert.True(t, strings.Contains(string(out), tt.wantStderr), "stderr: %s", out)
		})
	}
}
