// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/workboard/internal/board"
)

// RowsTable builds the terminal table for a set of board rows, using the
// same column layout and cell text the dashboard tables sort on.
func RowsTable(rows []board.Row) *Table {
	cols := make([]Column, len(board.Columns))
	for i, h := range board.Columns {
		cols[i] = Column{Header: h}
	}
	cols[board.ColumnID].OmitEmpty = true
	cols[board.ColumnOwner].Color = ColorOwner
	cols[board.ColumnStage].Color = ColorStage
	cols[board.ColumnPriority].Color = ColorPriority
	cols[board.ColumnPriority].OmitEmpty = true

	tbl := NewTable(cols...)
	for _, r := range rows {
		cells := make([]string, len(board.Columns))
		for i := range cells {
			cells[i] = r.Cell(i)
		}
		tbl.AddRow(cells...)
	}
	return tbl
}

// WriteOptions writes the owner and stage filter options as two titled
// tables.
func WriteOptions(w io.Writer, opts board.Options) error {
	if _, err := fmt.Fprintf(w, "%s (%d)\n", SectionTitle("Owners"), len(opts.Owners)); err != nil {
		return fmt.Errorf("write options: %w", err)
	}
	owners := NewTable(Column{Header: "Owner"})
	for _, o := range opts.Owners {
		owners.AddRow(o)
	}
	if err := owners.Render(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s (%d)\n", SectionTitle("Stages"), len(opts.Stages)); err != nil {
		return fmt.Errorf("write options: %w", err)
	}
	stages := NewTable(Column{Header: "Stage"}, Column{Header: "Label", Color: ColorStage})
	for _, s := range opts.StageOptions() {
		stages.AddRow(s.Value, s.Label)
	}
	return stages.Render(w)
}
