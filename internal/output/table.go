// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/davetashner/workboard/internal/board"
	"github.com/davetashner/workboard/internal/report"
)

func init() {
	RegisterFormatter(NewTableFormatter())
}

// TableFormatter writes the visible rows as aligned terminal tables, one
// per board group.
type TableFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TableFormatter)(nil)

// NewTableFormatter returns a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Name returns the format name.
func (f *TableFormatter) Name() string {
	return "table"
}

// Format writes the board to w.
func (f *TableFormatter) Format(b Board, w io.Writer) error {
	if len(b.Rows) == 0 {
		if _, err := fmt.Fprintln(w, EmptyMessage); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		return nil
	}

	visible := b.Visible()
	for i, g := range board.GroupRows(visible, b.GroupBy) {
		sep := "\n"
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s (%d)\n", sep, report.SectionTitle(g.Name), len(g.Rows)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		if err := report.RowsTable(g.Rows).Render(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n%d of %d visible\n", len(visible), len(b.Rows)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
