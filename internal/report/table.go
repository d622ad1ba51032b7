// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

// Package report renders board rows and filter options as aligned terminal
// tables.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
	// OmitEmpty drops the column when every cell is empty.
	OmitEmpty bool
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w. Widths are measured in runes so humanized
// labels and glyphs line up.
func (t *Table) Render(w io.Writer) error {
	cols := t.visibleColumns()
	if len(cols) == 0 {
		return nil
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = utf8.RuneCountInString(t.columns[c].Header)
		for _, row := range t.rows {
			widths[i] = max(widths[i], utf8.RuneCountInString(row[c]))
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(cols))
	sep := make([]string, len(cols))
	for i, c := range cols {
		header[i] = bold.Sprint(pad(t.columns[c].Header, widths[i], t.columns[c].Align))
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		parts := make([]string, len(cols))
		for i, c := range cols {
			col := t.columns[c]
			display := pad(row[c], widths[i], col.Align)
			if col.Color != nil && row[c] != "" {
				// Padding is computed on the raw value, not the ANSI-colored one.
				display = strings.Replace(display, row[c], col.Color(row[c]), 1)
			}
			parts[i] = display
		}
		if err := writeLine(w, parts); err != nil {
			return err
		}
	}
	return nil
}

// visibleColumns returns the indexes of the columns that will be rendered.
func (t *Table) visibleColumns() []int {
	var out []int
	for i, col := range t.columns {
		if col.OmitEmpty && t.columnEmpty(i) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (t *Table) columnEmpty(i int) bool {
	for _, row := range t.rows {
		if row[i] != "" {
			return false
		}
	}
	return true
}

func pad(s string, width int, align Alignment) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

func writeLine(w io.Writer, parts []string) error {
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
