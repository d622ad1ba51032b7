package dom

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/davetashner/workboard/internal/board"
)

// rows returns every board row element in document order.
func (d *Document) rows() []*html.Node {
	return findAll(d.root, func(n *html.Node) bool {
		return n.Data == "tr" && hasClass(n, RowClass)
	})
}

// rowRecord reads a board row from its data attributes. Absent attributes
// read as empty; only data-has-owner="true" marks a row as owned.
func rowRecord(n *html.Node) board.Row {
	return board.Row{
		ID:        attrOr(n, "data-id", ""),
		Name:      attrOr(n, "data-name", ""),
		Owner:     attrOr(n, "data-owner", ""),
		Workspace: attrOr(n, "data-workspace", ""),
		Stage:     attrOr(n, "data-stage", ""),
		HasOwner:  attrOr(n, "data-has-owner", "") == "true",
	}
}

// ReadRows returns the row records of every board row in document order.
func (d *Document) ReadRows() []board.Row {
	nodes := d.rows()
	out := make([]board.Row, len(nodes))
	for i, n := range nodes {
		out[i] = rowRecord(n)
	}
	return out
}

// VisibleRows returns the records of rows that are not hidden.
func (d *Document) VisibleRows() []board.Row {
	var out []board.Row
	for _, n := range d.rows() {
		if !hasClass(n, HiddenClass) {
			out = append(out, rowRecord(n))
		}
	}
	return out
}

// ReadFilterState reads the current values of the filter controls. Missing
// controls contribute their empty value.
func (d *Document) ReadFilterState() board.FilterState {
	var s board.FilterState
	if n := d.elementByID(SearchID); n != nil {
		s.Query = attrOr(n, "value", "")
	}
	if n := d.elementByID(OwnerSelectID); n != nil {
		s.Owner = selectedValue(n)
	}
	if n := d.elementByID(StageSelectID); n != nil {
		s.Stage = selectedValue(n)
	}
	if n := d.elementByID(HideUnassignedID); n != nil {
		_, s.HideUnassigned = attr(n, "checked")
	}
	return s
}

// SetFilterState writes s into the filter controls that exist. An owner or
// stage with no matching option leaves the select on its first option.
func (d *Document) SetFilterState(s board.FilterState) {
	if n := d.elementByID(SearchID); n != nil {
		setAttr(n, "value", s.Query)
	}
	if n := d.elementByID(OwnerSelectID); n != nil {
		selectValue(n, s.Owner)
	}
	if n := d.elementByID(StageSelectID); n != nil {
		selectValue(n, s.Stage)
	}
	if n := d.elementByID(HideUnassignedID); n != nil {
		if s.HideUnassigned {
			setAttr(n, "checked", "")
		} else {
			removeAttr(n, "checked")
		}
	}
}

// ApplyFilter marks every board row visible or hidden under s, writes the
// visible count into the count display when present, and returns the count.
func (d *Document) ApplyFilter(s board.FilterState) int {
	nodes := d.rows()
	records := make([]board.Row, len(nodes))
	for i, n := range nodes {
		records[i] = rowRecord(n)
	}

	res := board.Apply(records, s)
	for i, n := range nodes {
		setClass(n, HiddenClass, !res.Visible[i])
	}
	if n := d.elementByID(VisibleCountID); n != nil {
		setText(n, strconv.Itoa(res.VisibleCount))
	}
	return res.VisibleCount
}

func options(sel *html.Node) []*html.Node {
	return findAll(sel, func(n *html.Node) bool { return n.Data == "option" })
}

func optionValue(opt *html.Node) string {
	if v, ok := attr(opt, "value"); ok {
		return v
	}
	return textContent(opt)
}

// selectedValue mirrors the browser: the selected option, else the first.
func selectedValue(sel *html.Node) string {
	opts := options(sel)
	for _, o := range opts {
		if _, ok := attr(o, "selected"); ok {
			return optionValue(o)
		}
	}
	if len(opts) > 0 {
		return optionValue(opts[0])
	}
	return ""
}

func selectValue(sel *html.Node, value string) {
	for _, o := range options(sel) {
		if optionValue(o) == value {
			setAttr(o, "selected", "")
		} else {
			removeAttr(o, "selected")
		}
	}
}
