package board

import "strings"

// FilterState is the set of control values a filter pass runs against. An
// empty field (or false) lets every row through for that predicate.
type FilterState struct {
	Query          string `json:"query,omitempty" yaml:"query,omitempty"`
	Owner          string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Stage          string `json:"stage,omitempty" yaml:"stage,omitempty"`
	HideUnassigned bool   `json:"hide_unassigned,omitempty" yaml:"hide_unassigned,omitempty"`
}

// IsZero reports whether the state passes every row.
func (s FilterState) IsZero() bool {
	return s == FilterState{}
}

// Match reports whether r passes all four predicates: text, owner, stage
// and unassigned exclusion.
func (s FilterState) Match(r Row) bool {
	if s.Query != "" {
		text := strings.ToLower(r.Name + " " + r.Owner + " " + r.Workspace + " " + r.Stage)
		if !strings.Contains(text, strings.ToLower(s.Query)) {
			return false
		}
	}
	if s.Owner != "" && r.Owner != s.Owner {
		return false
	}
	if s.Stage != "" && r.Stage != s.Stage {
		return false
	}
	if s.HideUnassigned && !r.HasOwner {
		return false
	}
	return true
}

// Result is the outcome of one filter pass. Visible is index-aligned with
// the input rows.
type Result struct {
	Visible      []bool
	VisibleCount int
}

// Apply computes the visibility of every row under state.
func Apply(rows []Row, state FilterState) Result {
	res := Result{Visible: make([]bool, len(rows))}
	for i, r := range rows {
		if state.Match(r) {
			res.Visible[i] = true
			res.VisibleCount++
		}
	}
	return res
}

// VisibleRows returns the rows that pass state, in input order.
func VisibleRows(rows []Row, state FilterState) []Row {
	var out []Row
	for _, r := range rows {
		if state.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
