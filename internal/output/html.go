// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"cmp"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/workboard/internal/board"
	"github.com/davetashner/workboard/internal/dom"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// groupNamespace seeds the name-based UUIDs used as group element ids, so a
// group keeps its id across renders.
var groupNamespace = uuid.MustParse("6f1c2a8e-3d4b-5e6f-8a9b-0c1d2e3f4a5b")

// Summary list element ids.
const (
	OwnersListID     = "owners-list"
	OwnersToggleID   = "owners-toggle"
	StagesListID     = "stages-list"
	StagesToggleID   = "stages-toggle"
	defaultListLimit = 5
)

// HTMLFormatter writes a board as a self-contained HTML dashboard.
type HTMLFormatter struct {
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes the board as an HTML dashboard to w. The rendered page
// reflects the board's filter and sort: controls are preset, filtered rows
// carry the hidden class and every table records its sort state.
func (h *HTMLFormatter) Format(b Board, w io.Writer) error {
	if len(b.Rows) == 0 {
		return h.writeEmpty(w, b.Title)
	}

	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				data, _ := json.Marshal(v)
				return template.JS(data) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(htmlTemplate))
	})

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}

	if err := htmlTmpl.Execute(w, buildHTMLData(b, now)); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

type htmlData struct {
	Title        string
	GeneratedAt  string
	Total        int
	VisibleCount int
	Filter       board.FilterState
	Owners       []string
	Stages       []board.StageOption
	Columns      []htmlColumn
	Sort         *board.SortState
	Groups       []htmlGroup
	OwnerSummary htmlList
	StageSummary htmlList
	IDs          htmlIDs
}

// htmlIDs exposes the control ids to the template and the script.
type htmlIDs struct {
	Search         string `json:"search"`
	Owner          string `json:"owner"`
	Stage          string `json:"stage"`
	HideUnassigned string `json:"hideUnassigned"`
	VisibleCount   string `json:"visibleCount"`
}

type htmlColumn struct {
	Header string
	Arrow  string
}

type htmlGroup struct {
	ID      string
	TableID string
	Name    string
	Count   int
	Rows    []htmlRow
}

type htmlRow struct {
	board.Row
	Hidden bool
	Cells  []string
}

type htmlList struct {
	Title    string
	ID       string
	ButtonID string
	Items    []htmlListItem
	Toggle   board.ListToggle
}

type htmlListItem struct {
	Label  string
	Count  int
	Hidden bool
}

func buildHTMLData(b Board, now time.Time) htmlData {
	sorted, state := b.Sorted()
	res := board.Apply(sorted, b.Filter)
	opts := board.DeriveOptions(b.Rows)

	title := b.Title
	if title == "" {
		title = "Workboard"
	}
	limit := b.ListLimit
	if limit <= 0 {
		limit = defaultListLimit
	}

	return htmlData{
		Title:        title,
		GeneratedAt:  now.UTC().Format("2006-01-02 15:04 UTC"),
		Total:        len(sorted),
		VisibleCount: res.VisibleCount,
		Filter:       b.Filter,
		Owners:       opts.Owners,
		Stages:       opts.StageOptions(),
		Columns:      buildColumns(state),
		Sort:         state,
		Groups:       buildGroups(sorted, res.Visible, b.GroupBy),
		OwnerSummary: buildSummary("Owners", OwnersListID, OwnersToggleID, countBy(b.Rows, ownerKey), limit),
		StageSummary: buildSummary("Stages", StagesListID, StagesToggleID, countBy(b.Rows, stageKey), limit),
		IDs: htmlIDs{
			Search:         dom.SearchID,
			Owner:          dom.OwnerSelectID,
			Stage:          dom.StageSelectID,
			HideUnassigned: dom.HideUnassignedID,
			VisibleCount:   dom.VisibleCountID,
		},
	}
}

func buildColumns(state *board.SortState) []htmlColumn {
	cols := make([]htmlColumn, len(board.Columns))
	for i, h := range board.Columns {
		cols[i].Header = h
	}
	if state != nil && state.Column >= 0 && state.Column < len(cols) {
		cols[state.Column].Arrow = dom.ArrowUp
		if state.Direction == board.Descending {
			cols[state.Column].Arrow = dom.ArrowDown
		}
	}
	return cols
}

// buildGroups splits the sorted rows into board groups, carrying each row's
// visibility along. Grouping keeps input order, so every group table shows
// its rows in the board's sort order.
func buildGroups(sorted []board.Row, visible []bool, by string) []htmlGroup {
	groups := board.GroupIndexes(sorted, by)
	out := make([]htmlGroup, len(groups))
	for gi, g := range groups {
		id := uuidFor(g.Name)
		hg := htmlGroup{
			ID:      "group-" + id,
			TableID: "table-" + id,
			Name:    g.Name,
			Count:   len(g.Indexes),
			Rows:    make([]htmlRow, len(g.Indexes)),
		}
		for j, i := range g.Indexes {
			r := sorted[i]
			cells := make([]string, len(board.Columns))
			for c := range cells {
				cells[c] = r.Cell(c)
			}
			hg.Rows[j] = htmlRow{Row: r, Hidden: !visible[i], Cells: cells}
		}
		out[gi] = hg
	}
	return out
}

type countEntry struct {
	Label string
	Count int
}

func ownerKey(r board.Row) string { return r.Owner }

func stageKey(r board.Row) string { return board.HumanizeStage(r.Stage) }

func countBy(rows []board.Row, key func(board.Row) string) []countEntry {
	counts := make(map[string]int)
	for _, r := range rows {
		if k := key(r); k != "" {
			counts[k]++
		}
	}
	entries := make([]countEntry, 0, len(counts))
	for label, n := range counts {
		entries = append(entries, countEntry{Label: label, Count: n})
	}
	slices.SortFunc(entries, func(a, b countEntry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return entries
}

// buildSummary renders a count list collapsed to its first limit items.
func buildSummary(title, id, buttonID string, entries []countEntry, limit int) htmlList {
	toggle := board.ListToggle{Total: len(entries), Limit: limit}
	visible := toggle.Visible(false)
	l := htmlList{Title: title, ID: id, ButtonID: buttonID, Toggle: toggle}
	for i, e := range entries {
		l.Items = append(l.Items, htmlListItem{Label: e.Label, Count: e.Count, Hidden: i >= visible})
	}
	return l
}

func (h *HTMLFormatter) writeEmpty(w io.Writer, title string) error {
	if title == "" {
		title = "Workboard"
	}
	const emptyHTML = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>%s</title>
<style>body{font-family:sans-serif;display:flex;justify-content:center;align-items:center;height:100vh;color:#6c757d;}</style>
</head><body><p>%s</p></body></html>`
	if _, err := fmt.Fprintf(w, emptyHTML, template.HTMLEscapeString(title), EmptyMessage); err != nil {
		return fmt.Errorf("write empty html: %w", err)
	}
	return nil
}

func uuidFor(name string) string {
	return uuid.NewSHA1(groupNamespace, []byte(name)).String()
}
