// Package output defines the Formatter interface for rendering a board in
// various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/davetashner/workboard/internal/board"
)

// EmptyMessage is written by every formatter when the board has no rows.
const EmptyMessage = "No work items found."

// Board is the view handed to a formatter: the full row set plus the
// filter, sort clicks and grouping to apply while rendering.
type Board struct {
	Title     string
	Rows      []board.Row
	Filter    board.FilterState
	Sort      []int
	GroupBy   string
	ListLimit int
}

// Sorted returns every row in the order the sort clicks produce, together
// with the resulting table state (nil when no clicks were given).
func (b Board) Sorted() ([]board.Row, *board.SortState) {
	return board.SortClicks(b.Rows, b.Sort, nil, board.Row.Cell)
}

// Visible returns the sorted rows that pass the filter.
func (b Board) Visible() []board.Row {
	rows, _ := b.Sorted()
	return board.VisibleRows(rows, b.Filter)
}

// Formatter writes a board to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "html", "json", "markdown").
	Name() string

	// Format writes the board to w.
	Format(b Board, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// FormatNames returns the sorted names of all registered formatters.
func FormatNames() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
