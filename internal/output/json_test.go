package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/workboard/internal/board"
)

func fixedJSON() *JSONFormatter {
	return &JSONFormatter{
		nowFunc: func() time.Time { return time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC) },
	}
}

func decodeEnvelope(t *testing.T, data []byte) JSONEnvelope {
	t.Helper()
	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestJSONFormatter_Name(t *testing.T) {
	assert.Equal(t, "json", NewJSONFormatter().Name())
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixedJSON().Format(Board{}, &buf))

	assert.Contains(t, buf.String(), `"rows": []`)
	env := decodeEnvelope(t, buf.Bytes())
	assert.Equal(t, 0, env.Metadata.TotalCount)
	assert.Equal(t, "2026-02-12T10:00:00Z", env.Metadata.GeneratedAt)
	assert.Nil(t, env.Metadata.Sort)
	assert.Nil(t, env.Metadata.Filter)
}

func TestJSONFormatter_FilteredAndSorted(t *testing.T) {
	b := sampleBoard()
	b.Filter = board.FilterState{Owner: "alice"}
	b.Sort = []int{board.ColumnName, board.ColumnName}

	var buf bytes.Buffer
	require.NoError(t, fixedJSON().Format(b, &buf))
	env := decodeEnvelope(t, buf.Bytes())

	assert.Equal(t, []string{"Plan Q3", "Fix login bug"}, rowNames(env.Rows))
	assert.Equal(t, 4, env.Metadata.TotalCount)
	assert.Equal(t, 2, env.Metadata.VisibleCount)
	assert.Equal(t, []string{"alice", "bob"}, env.Metadata.Owners)
	assert.Equal(t, []string{"done", "in_progress", "open"}, env.Metadata.Stages)
	require.NotNil(t, env.Metadata.Sort)
	assert.Equal(t, board.SortState{Column: board.ColumnName, Direction: board.Descending}, *env.Metadata.Sort)
	require.NotNil(t, env.Metadata.Filter)
	assert.Equal(t, "alice", env.Metadata.Filter.Owner)
}

func TestJSONFormatter_PriorityZeroKept(t *testing.T) {
	b := Board{Rows: []board.Row{{Name: "urgent", Priority: board.Prio(0)}}}
	var buf bytes.Buffer
	require.NoError(t, fixedJSON().Format(b, &buf))
	assert.Contains(t, buf.String(), `"priority": 0`)
}

func TestJSONFormatter_Compact(t *testing.T) {
	f := fixedJSON()
	f.Compact = true
	var buf bytes.Buffer
	require.NoError(t, f.Format(sampleBoard(), &buf))
	out := strings.TrimSuffix(buf.String(), "\n")
	assert.NotContains(t, out, "\n")
}

func TestJSONFormatter_FileIsCompact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, fixedJSON().Format(sampleBoard(), file))
	require.NoError(t, file.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}
