// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

// Package board holds the decision logic behind a workboard dashboard: the
// multi-predicate row filter, the numeric-aware column sort, filter option
// derivation, and the truncated-list toggle. Every function here is pure;
// callers own the presentation (HTML, terminal, MCP) and pass rows and
// control values in explicitly.
package board

import "fmt"

// UnassignedOwner is the sentinel owner value for rows with no responsible
// party.
const UnassignedOwner = "Unassigned"

// Row is a single work item on the board.
type Row struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Owner     string   `json:"owner,omitempty" yaml:"owner,omitempty" toml:"owner,omitempty"`
	Workspace string   `json:"workspace,omitempty" yaml:"workspace,omitempty" toml:"workspace,omitempty"`
	Stage     string   `json:"stage,omitempty" yaml:"stage,omitempty" toml:"stage,omitempty"`
	HasOwner  bool     `json:"has_owner" yaml:"has_owner" toml:"has_owner"`
	Priority  *int     `json:"priority,omitempty" yaml:"priority,omitempty" toml:"priority,omitempty"`
	Group     string   `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	Labels    []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`
}

// Columns is the column layout of a board table, in cell order.
var Columns = []string{"ID", "Name", "Owner", "Workspace", "Stage", "Priority"}

// Column indexes into Columns.
const (
	ColumnID = iota
	ColumnName
	ColumnOwner
	ColumnWorkspace
	ColumnStage
	ColumnPriority
)

// Cell returns the display text of the given table column. Out-of-range
// columns read as the empty string.
func (r Row) Cell(column int) string {
	switch column {
	case ColumnID:
		return r.ID
	case ColumnName:
		return r.Name
	case ColumnOwner:
		return r.Owner
	case ColumnWorkspace:
		return r.Workspace
	case ColumnStage:
		return HumanizeStage(r.Stage)
	case ColumnPriority:
		return PriorityLabel(r.Priority)
	default:
		return ""
	}
}

// PriorityLabel renders a priority as "P<n>", or "" when unset.
func PriorityLabel(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("P%d", *p)
}

// Prio returns a pointer to p, for building rows with a priority.
func Prio(p int) *int {
	return &p
}

// NormalizeOwner fills in the owner sentinel and the HasOwner flag. An empty
// owner or the sentinel itself marks the row unassigned.
func NormalizeOwner(r *Row) {
	if r.Owner == "" || r.Owner == UnassignedOwner {
		r.Owner = UnassignedOwner
		r.HasOwner = false
		return
	}
	r.HasOwner = true
}
