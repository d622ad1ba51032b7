// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package board

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the order of a sorted column.
type Direction string

const (
	// Ascending sorts smallest first.
	Ascending Direction = "asc"
	// Descending sorts largest first.
	Descending Direction = "desc"
)

// SortState is the sort currently applied to one table.
type SortState struct {
	Column    int       `json:"column" yaml:"column"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// String renders the state as "<column>:<direction>".
func (s SortState) String() string {
	return fmt.Sprintf("%d:%s", s.Column, s.Direction)
}

// NextDirection returns the direction a click on column produces. Only a
// repeated click on an ascending column flips to descending; everything
// else sorts ascending.
func NextDirection(prev *SortState, column int) Direction {
	if prev != nil && prev.Column == column && prev.Direction == Ascending {
		return Descending
	}
	return Ascending
}

// CellFunc extracts the text of one column from a row.
type CellFunc[T any] func(row T, column int) string

// Sort orders rows by the text of column and returns the reordered copy
// together with the new table state. The input slice is not modified and
// rows that compare equal keep their relative order.
func Sort[T any](rows []T, column int, prev *SortState, cell CellFunc[T]) ([]T, SortState) {
	state := SortState{Column: column, Direction: NextDirection(prev, column)}
	out := slices.Clone(rows)
	c := newComparer()
	slices.SortStableFunc(out, func(a, b T) int {
		return c.compare(cell(a, column), cell(b, column), state.Direction)
	})
	return out, state
}

// SortClicks replays a sequence of header clicks, one per column index,
// starting from prev. It returns the final order and state; with no clicks
// the rows come back unchanged and the state is prev.
func SortClicks[T any](rows []T, clicks []int, prev *SortState, cell CellFunc[T]) ([]T, *SortState) {
	out := rows
	state := prev
	for _, col := range clicks {
		var next SortState
		out, next = Sort(out, col, state, cell)
		state = &next
	}
	return out, state
}

// SortRows sorts board rows by one of their table columns.
func SortRows(rows []Row, column int, prev *SortState) ([]Row, SortState) {
	return Sort(rows, column, prev, Row.Cell)
}

// Compare orders two cell texts ascending: numerically when both look like
// numbers, otherwise by locale collation of the trimmed text.
func Compare(a, b string) int {
	return newComparer().compare(a, b, Ascending)
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// parseNumber strips everything but digits, '.' and '-' and parses the rest.
func parseNumber(s string) (float64, bool) {
	stripped := nonNumeric.ReplaceAllString(s, "")
	if stripped == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// comparer is not safe for concurrent use; the collator keeps scratch buffers.
type comparer struct {
	col *collate.Collator
}

func newComparer() *comparer {
	return &comparer{col: collate.New(language.Und)}
}

func (c *comparer) compare(a, b string, dir Direction) int {
	var r int
	an, aok := parseNumber(a)
	bn, bok := parseNumber(b)
	if aok && bok {
		r = cmp.Compare(an, bn)
	} else {
		r = c.col.CompareString(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	if dir == Descending {
		return -r
	}
	return r
}
