package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/workboard/internal/board"
)

func renderMarkdown(t *testing.T, b Board) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(b, &buf))
	return buf.String()
}

func TestMarkdownFormatter_Name(t *testing.T) {
	assert.Equal(t, "markdown", NewMarkdownFormatter().Name())
}

func TestMarkdownFormatter_Empty(t *testing.T) {
	assert.Equal(t, "# Workboard\n\n"+EmptyMessage+"\n", renderMarkdown(t, Board{}))
}

func TestMarkdownFormatter_Groups(t *testing.T) {
	out := renderMarkdown(t, sampleBoard())

	assert.Contains(t, out, "# Team Board\n")
	assert.Contains(t, out, "**Visible:** 4 of 4\n")
	assert.Contains(t, out, "## core (2)\n")
	assert.Contains(t, out, "## docs (2)\n")
	assert.Contains(t, out, "| ID | Name | Owner | Workspace | Stage | Priority |\n|---|---|---|---|---|---|\n")
	assert.Contains(t, out, "| w-1 | Fix login bug | alice | core | In Progress | P1 |\n")
	assert.Contains(t, out, "| w-2 | Write release notes | Unassigned | docs | Open |  |\n")
	assert.Less(t, strings.Index(out, "## core"), strings.Index(out, "## docs"))
}

func TestMarkdownFormatter_FilterSummary(t *testing.T) {
	b := sampleBoard()
	b.Filter = board.FilterState{Query: "q3", Stage: "open", HideUnassigned: true}
	out := renderMarkdown(t, b)

	assert.Contains(t, out, "**Visible:** 1 of 4 | **Filter:** query `q3`, stage Open, assigned only\n")
	assert.Contains(t, out, "## docs (1)")
	assert.NotContains(t, out, "## core")
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, `a \| b`, escapeCell("a | b"))
	assert.Equal(t, "line one line two", escapeCell("line one\nline two"))
}
