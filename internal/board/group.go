package board

import "sort"

// UngroupedName labels rows whose group key is empty.
const UngroupedName = "Ungrouped"

// Group is one collapsible section of the board.
type Group struct {
	Name string
	Rows []Row
}

// IndexGroup is a board group expressed as indexes into the grouped slice.
type IndexGroup struct {
	Name    string
	Indexes []int
}

// GroupRows splits rows into board groups. A row's explicit Group wins;
// otherwise the field named by "by" (workspace, stage or owner) is the key.
// Any other value puts every row without an explicit group into one
// section. Groups are ordered by name with the empty key last, and rows
// keep their input order within a group.
func GroupRows(rows []Row, by string) []Group {
	idx := GroupIndexes(rows, by)
	out := make([]Group, len(idx))
	for i, g := range idx {
		out[i].Name = g.Name
		out[i].Rows = make([]Row, len(g.Indexes))
		for j, k := range g.Indexes {
			out[i].Rows[j] = rows[k]
		}
	}
	return out
}

// GroupIndexes is GroupRows for callers that keep per-row data alongside
// the rows.
func GroupIndexes(rows []Row, by string) []IndexGroup {
	index := make(map[string]int)
	var groups []IndexGroup
	for i, r := range rows {
		key := GroupKey(r, by)
		g, ok := index[key]
		if !ok {
			g = len(groups)
			index[key] = g
			groups = append(groups, IndexGroup{Name: key})
		}
		groups[g].Indexes = append(groups[g].Indexes, i)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Name, groups[j].Name
		if a == "" || b == "" {
			return b == "" && a != ""
		}
		return a < b
	})
	for i := range groups {
		if groups[i].Name == "" {
			groups[i].Name = UngroupedName
		}
	}
	return groups
}

// GroupKey returns the group a row belongs to, or "" when it is ungrouped.
func GroupKey(r Row, by string) string {
	if r.Group != "" {
		return r.Group
	}
	switch by {
	case "workspace":
		return r.Workspace
	case "stage":
		return HumanizeStage(r.Stage)
	case "owner":
		return r.Owner
	default:
		return ""
	}
}
