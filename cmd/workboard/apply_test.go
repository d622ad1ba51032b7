package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/workboard/internal/board"
	"github.com/davetashner/workboard/internal/dom"
)

const dashboardHTML = `<!DOCTYPE html>
<html><body>
<input id="board-search" value="">
<select id="board-owner">
  <option value="">All owners</option>
  <option value="alice">alice</option>
  <option value="bob">bob</option>
</select>
<select id="board-stage">
  <option value="">All stages</option>
  <option value="open">Open</option>
  <option value="done">Done</option>
</select>
<input type="checkbox" id="board-hide-unassigned">
<span id="board-visible-count">3</span>
<div id="group-core">
<table id="table-core">
  <thead><tr><th>Name</th><th>Owner</th></tr></thead>
  <tbody>
    <tr class="board-row" data-name="Fix login" data-owner="alice" data-workspace="core" data-stage="open" data-has-owner="true"><td>Fix login</td><td>alice</td></tr>
    <tr class="board-row" data-name="Write docs" data-owner="Unassigned" data-workspace="core" data-stage="open" data-has-owner="false"><td>Write docs</td><td>Unassigned</td></tr>
    <tr class="board-row" data-name="Audit" data-owner="bob" data-workspace="core" data-stage="done" data-has-owner="true"><td>Audit</td><td>bob</td></tr>
  </tbody>
</table>
</div>
<ul id="owners-list"><li>alice</li><li>bob</li><li>carol</li></ul>
<button id="owners-toggle" data-expanded="false">Show all (3)</button>
</body></html>`

func applyFixture(t *testing.T) string {
	t.Helper()
	dir := workDir(t)
	return writeTestFile(t, dir, "board.html", dashboardHTML)
}

func parseFile(t *testing.T, path string) *dom.Document {
	t.Helper()
	f, err := os.Open(path) //nolint:gosec // test fixture
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test cleanup
	doc, err := dom.Parse(f)
	require.NoError(t, err)
	return doc
}

func parseString(t *testing.T, s string) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestApplyCmd_Filter(t *testing.T) {
	path := applyFixture(t)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"apply", path, "--hide-unassigned", "-q"})
	require.NoError(t, cmd.Execute())

	doc := parseString(t, stdout.String())
	assert.Equal(t, []string{"Fix login", "Audit"}, rowNames(doc.VisibleRows()))
	assert.Equal(t, "2", doc.Text(dom.VisibleCountID))
	assert.True(t, doc.ReadFilterState().HideUnassigned)
}

func TestApplyCmd_KeepsDocumentControls(t *testing.T) {
	path := applyFixture(t)

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"apply", path, "--owner", "alice", "--in-place", "-q"})
	require.NoError(t, cmd.Execute())

	// The owner persists in the file; a second run only adds the stage.
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"apply", path, "--stage", "done", "-q"})
	require.NoError(t, cmd.Execute())

	doc := parseString(t, stdout.String())
	assert.Equal(t, board.FilterState{Owner: "alice", Stage: "done"}, doc.ReadFilterState())
	assert.Empty(t, doc.VisibleRows())
	assert.Equal(t, "0", doc.Text(dom.VisibleCountID))
}

func TestApplyCmd_SortAndToggles(t *testing.T) {
	path := applyFixture(t)
	out := filepath.Join(filepath.Dir(path), "out.html")

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"apply", path,
		"--sort", "table-core:0",
		"--toggle-group", "group-core",
		"--expand", "owners-list:owners-toggle:3:1",
		"--toggle-group", "group-missing",
		"-o", out, "-q"})
	require.NoError(t, cmd.Execute())

	doc := parseFile(t, out)
	assert.Equal(t, []string{"Audit", "Fix login", "Write docs"}, rowNames(doc.ReadRows()))
	assert.Equal(t, &board.SortState{Column: 0, Direction: board.Ascending}, doc.TableSortState("table-core"))
	assert.True(t, doc.IsHidden("group-core"))
	assert.Equal(t, "Show less", doc.Text("owners-toggle"))

	// The input is untouched.
	assert.Nil(t, parseFile(t, path).TableSortState("table-core"))
}

func TestApplyCmd_SortTwiceDescends(t *testing.T) {
	path := applyFixture(t)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"apply", path, "--sort", "table-core:0", "--sort", "table-core:0", "-q"})
	require.NoError(t, cmd.Execute())

	doc := parseString(t, stdout.String())
	assert.Equal(t, []string{"Write docs", "Fix login", "Audit"}, rowNames(doc.ReadRows()))
}

func TestApplyCmd_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"in-place with output", []string{"--in-place", "-o", "x.html"}, "mutually exclusive"},
		{"bad expand", []string{"--expand", "owners-list:owners-toggle:3"}, "--expand"},
		{"negative limit", []string{"--expand", "a:b:3:-1"}, "invalid limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := applyFixture(t)
			cmd, _, _ := newTestCmd(t)
			cmd.SetArgs(append([]string{"apply", path, "-q"}, tt.args...))
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var ece *exitCodeError
			require.True(t, errors.As(err, &ece))
			assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
		})
	}
}

func TestApplyCmd_MissingFile(t *testing.T) {
	workDir(t)
	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"apply", "nope.html", "-q"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.html")
}
