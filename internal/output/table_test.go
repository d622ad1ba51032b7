package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/workboard/internal/board"
)

func renderTable(t *testing.T, b Board) string {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().Format(b, &buf))
	return buf.String()
}

func TestTableFormatter_Empty(t *testing.T) {
	assert.Equal(t, EmptyMessage+"\n", renderTable(t, Board{}))
}

func TestTableFormatter_Groups(t *testing.T) {
	out := renderTable(t, sampleBoard())
	assert.True(t, strings.HasPrefix(out, "core (2)\n"))
	assert.Contains(t, out, "\ndocs (2)\n")
	assert.Contains(t, out, "In Progress")
	assert.True(t, strings.HasSuffix(out, "\n4 of 4 visible\n"))
}

func TestTableFormatter_Filtered(t *testing.T) {
	b := sampleBoard()
	b.Filter = board.FilterState{Owner: "bob"}
	out := renderTable(t, b)
	assert.Contains(t, out, "Audit deps")
	assert.NotContains(t, out, "Plan Q3")
	assert.NotContains(t, out, "docs (")
	assert.True(t, strings.HasSuffix(out, "\n1 of 4 visible\n"))
}
