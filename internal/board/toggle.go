package board

import "fmt"

// ListToggle describes a list truncated to Limit items out of Total, with a
// button that expands and collapses it.
type ListToggle struct {
	Total int
	Limit int
}

// Truncates reports whether the list needs an expand button at all.
func (l ListToggle) Truncates() bool {
	return l.Limit > 0 && l.Total > l.Limit
}

// Visible returns how many leading items are shown.
func (l ListToggle) Visible(expanded bool) int {
	if expanded || !l.Truncates() {
		return l.Total
	}
	return l.Limit
}

// Label returns the button text for the given state.
func (l ListToggle) Label(expanded bool) string {
	if expanded {
		return "Show less"
	}
	return fmt.Sprintf("Show all (%d)", l.Total)
}
