// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/davetashner/workboard/internal/board"
)

// Arrow glyphs appended to the sorted column header.
const (
	ArrowUp   = " ▲"
	ArrowDown = " ▼"
)

// TableSortState reads the sort state persisted on the table, or nil when
// the table is missing or has not been sorted.
func (d *Document) TableSortState(tableID string) *board.SortState {
	table := d.elementByID(tableID)
	if table == nil {
		return nil
	}
	return sortStateOf(table)
}

func sortStateOf(table *html.Node) *board.SortState {
	col, err := strconv.Atoi(attrOr(table, SortColumnAttr, ""))
	if err != nil {
		return nil
	}
	return &board.SortState{
		Column:    col,
		Direction: board.Direction(attrOr(table, SortDirectionAttr, "")),
	}
}

// cellText returns the trimmed text of the column-th cell of a row, or ""
// when the row has fewer cells.
func cellText(tr *html.Node, column int) string {
	cells := findCells(tr)
	if column < 0 || column >= len(cells) {
		return ""
	}
	return strings.TrimSpace(textContent(cells[column]))
}

func findCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

// SortTable reorders the body rows of the table with tableID by column,
// toggling direction against the state persisted on the table, and stores
// the new state back on it. It reports false when the table or its body is
// missing.
func (d *Document) SortTable(tableID string, column int) (board.SortState, bool) {
	table := d.elementByID(tableID)
	if table == nil {
		return board.SortState{}, false
	}
	bodies := childElements(table, "tbody")
	if len(bodies) == 0 {
		return board.SortState{}, false
	}
	tbody := bodies[0]

	rows := childElements(tbody, "tr")
	sorted, state := board.Sort(rows, column, sortStateOf(table), cellText)
	for _, tr := range rows {
		tbody.RemoveChild(tr)
	}
	for _, tr := range sorted {
		tbody.AppendChild(tr)
	}

	setAttr(table, SortColumnAttr, strconv.Itoa(state.Column))
	setAttr(table, SortDirectionAttr, string(state.Direction))
	markHeader(table, state)
	return state, true
}

// markHeader moves the sort arrow to the header of the sorted column.
func markHeader(table *html.Node, state board.SortState) {
	for _, arrow := range findAll(table, func(n *html.Node) bool {
		return n.Data == "span" && hasClass(n, ArrowClass)
	}) {
		arrow.Parent.RemoveChild(arrow)
	}

	heads := childElements(table, "thead")
	if len(heads) == 0 {
		return
	}
	headRows := childElements(heads[0], "tr")
	if len(headRows) == 0 {
		return
	}
	cells := findCells(headRows[0])
	if state.Column < 0 || state.Column >= len(cells) {
		return
	}

	glyph := ArrowUp
	if state.Direction == board.Descending {
		glyph = ArrowDown
	}
	span := &html.Node{
		Type: html.ElementNode,
		Data: "span",
		Attr: []html.Attribute{{Key: "class", Val: ArrowClass}},
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: glyph})
	cells[state.Column].AppendChild(span)
}
