package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/workboard/internal/board"
)

const rowsJSON = `{"rows": [
  {"id": "w-1", "name": "Fix login bug", "owner": "alice", "workspace": "core", "stage": "in_progress", "priority": 1},
  {"id": "w-2", "name": "Write release notes", "owner": "Unassigned", "workspace": "docs", "stage": "open"},
  {"id": "w-3", "name": "Audit deps", "owner": "bob", "workspace": "core", "stage": "done", "priority": 10},
  {"id": "w-4", "name": "Plan Q3", "owner": "alice", "workspace": "docs", "stage": "open", "priority": 2}
]}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func rowsFile(t *testing.T) string {
	t.Helper()
	return writeTestFile(t, t.TempDir(), "rows.json", rowsJSON)
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	return result.Content[0].(*mcp.TextContent).Text
}

func decodeResult[T any](t *testing.T, result *mcp.CallToolResult) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	return out
}

func names(rows []board.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestHandleFilter(t *testing.T) {
	path := rowsFile(t)

	tests := []struct {
		name  string
		input FilterInput
		want  []string
	}{
		{"no filter", FilterInput{}, []string{"Fix login bug", "Write release notes", "Audit deps", "Plan Q3"}},
		{"query", FilterInput{Query: "DOCS"}, []string{"Write release notes", "Plan Q3"}},
		{"owner", FilterInput{Owner: "alice"}, []string{"Fix login bug", "Plan Q3"}},
		{"stage", FilterInput{Stage: "open"}, []string{"Write release notes", "Plan Q3"}},
		{"hide unassigned", FilterInput{Stage: "open", HideUnassigned: true}, []string{"Plan Q3"}},
		{"nothing", FilterInput{Query: "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Paths = []string{path}
			result, _, err := handleFilter(context.Background(), nil, tt.input)
			require.NoError(t, err)

			out := decodeResult[FilterOutput](t, result)
			assert.Equal(t, tt.want, names(out.Rows))
			assert.Equal(t, len(tt.want), out.VisibleCount)
			assert.Equal(t, 4, out.TotalCount)
		})
	}
}

func TestHandleFilter_MissingPath(t *testing.T) {
	_, _, err := handleFilter(context.Background(), nil, FilterInput{Paths: []string{"/nonexistent/rows.json"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestHandleSort(t *testing.T) {
	path := rowsFile(t)

	result, _, err := handleSort(context.Background(), nil, SortInput{
		Paths:  []string{path},
		Clicks: []int{board.ColumnPriority},
	})
	require.NoError(t, err)
	out := decodeResult[SortOutput](t, result)
	// P1 < P2 < P10 numerically; the blank priority sorts by text.
	assert.Equal(t, []string{"Write release notes", "Fix login bug", "Plan Q3", "Audit deps"}, names(out.Rows))
	require.NotNil(t, out.Sort)
	assert.Equal(t, board.Ascending, out.Sort.Direction)

	result, _, err = handleSort(context.Background(), nil, SortInput{
		Paths:  []string{path},
		Clicks: []int{board.ColumnName, board.ColumnName},
	})
	require.NoError(t, err)
	out = decodeResult[SortOutput](t, result)
	assert.Equal(t, []string{"Write release notes", "Plan Q3", "Fix login bug", "Audit deps"}, names(out.Rows))
	assert.Equal(t, board.SortState{Column: board.ColumnName, Direction: board.Descending}, *out.Sort)
}

func TestHandleSort_NoClicks(t *testing.T) {
	result, _, err := handleSort(context.Background(), nil, SortInput{Paths: []string{rowsFile(t)}})
	require.NoError(t, err)
	out := decodeResult[SortOutput](t, result)
	assert.Equal(t, "Fix login bug", out.Rows[0].Name)
	assert.Nil(t, out.Sort)
}

func TestHandleSort_ColumnOutOfRange(t *testing.T) {
	_, _, err := handleSort(context.Background(), nil, SortInput{Paths: []string{rowsFile(t)}, Clicks: []int{9}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestHandleOptions(t *testing.T) {
	result, _, err := handleOptions(context.Background(), nil, OptionsInput{Paths: []string{rowsFile(t)}})
	require.NoError(t, err)
	out := decodeResult[OptionsOutput](t, result)
	assert.Equal(t, []string{"alice", "bob"}, out.Owners)
	assert.Equal(t, []board.StageOption{
		{Value: "done", Label: "Done"},
		{Value: "in_progress", Label: "In Progress"},
		{Value: "open", Label: "Open"},
	}, out.Stages)
}

func TestHandleRender(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := rowsFile(t)

	result, _, err := handleRender(context.Background(), nil, RenderInput{
		Paths: []string{path},
		Owner: "bob",
	})
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "# Workboard")
	assert.Contains(t, text, "**Visible:** 1 of 4")
	assert.Contains(t, text, "## core (1)")

	result, _, err = handleRender(context.Background(), nil, RenderInput{Paths: []string{path}, Format: "json"})
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(resultText(t, result))))
}

func TestHandleRender_TitleAndConfigOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeTestFile(t, dir, "rows.json", rowsJSON)
	writeTestFile(t, dir, ".workboard.yaml", "title: From config\nfilter:\n  hide_unassigned: true\n")
	t.Chdir(dir)

	result, _, err := handleRender(context.Background(), nil, RenderInput{Paths: []string{"rows.json"}})
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "# From config\n")
	assert.Contains(t, text, "**Visible:** 3 of 4")

	result, _, err = handleRender(context.Background(), nil, RenderInput{
		Paths:          []string{"rows.json"},
		Title:          "Sprint 7",
		HideUnassigned: boolPtr(false),
	})
	require.NoError(t, err)
	text = resultText(t, result)
	assert.Contains(t, text, "# Sprint 7\n")
	assert.Contains(t, text, "**Visible:** 4 of 4")
}

func TestHandleRender_BadInput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, _, err := handleRender(context.Background(), nil, RenderInput{Format: "sarif"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	_, _, err = handleRender(context.Background(), nil, RenderInput{GroupBy: "team"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestHandleFilter_AtRevision(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeTestFile(t, dir, "rows.json", rowsJSON)

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&git.AddOptions{All: true}))
	_, err = wt.Commit("add rows", &git.CommitOptions{
		Author: &object.Signature{Name: "Alice", Email: "alice@test.com", When: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	// The working tree moves on; the revision still has four rows.
	writeTestFile(t, dir, "rows.json", `{"rows": []}`)
	t.Chdir(dir)

	result, _, err := handleFilter(context.Background(), nil, FilterInput{
		Paths: []string{"rows.json"},
		Rev:   "HEAD",
		Owner: "alice",
	})
	require.NoError(t, err)
	out := decodeResult[FilterOutput](t, result)
	assert.Equal(t, 4, out.TotalCount)
	assert.Equal(t, []string{"Fix login bug", "Plan Q3"}, names(out.Rows))
}
