package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/workboard/internal/board"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the visible rows as Markdown tables, one per
// board group.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the board as a grouped Markdown document to w.
func (m *MarkdownFormatter) Format(b Board, w io.Writer) error {
	title := b.Title
	if title == "" {
		title = "Workboard"
	}
	if _, err := fmt.Fprintf(w, "# %s\n\n", title); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if len(b.Rows) == 0 {
		if _, err := fmt.Fprintf(w, "%s\n", EmptyMessage); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		return nil
	}

	visible := b.Visible()
	if _, err := fmt.Fprintf(w, "**Visible:** %d of %d", len(visible), len(b.Rows)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if f := describeFilter(b.Filter); f != "" {
		if _, err := fmt.Fprintf(w, " | **Filter:** %s", f); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	if _, err := fmt.Fprint(w, "\n\n"); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	for _, g := range board.GroupRows(visible, b.GroupBy) {
		if err := writeGroupSection(w, g); err != nil {
			return err
		}
	}
	return nil
}

func describeFilter(s board.FilterState) string {
	var parts []string
	if s.Query != "" {
		parts = append(parts, fmt.Sprintf("query `%s`", s.Query))
	}
	if s.Owner != "" {
		parts = append(parts, "owner "+s.Owner)
	}
	if s.Stage != "" {
		parts = append(parts, "stage "+board.HumanizeStage(s.Stage))
	}
	if s.HideUnassigned {
		parts = append(parts, "assigned only")
	}
	return strings.Join(parts, ", ")
}

func writeGroupSection(w io.Writer, g board.Group) error {
	if _, err := fmt.Fprintf(w, "## %s (%d)\n\n", g.Name, len(g.Rows)); err != nil {
		return fmt.Errorf("write group heading: %w", err)
	}

	header := "| " + strings.Join(board.Columns, " | ") + " |\n"
	sep := "|" + strings.Repeat("---|", len(board.Columns)) + "\n"
	if _, err := fmt.Fprint(w, header, sep); err != nil {
		return fmt.Errorf("write group table: %w", err)
	}

	for _, r := range g.Rows {
		cells := make([]string, len(board.Columns))
		for i := range cells {
			cells[i] = escapeCell(r.Cell(i))
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return fmt.Errorf("write section end: %w", err)
	}
	return nil
}

// escapeCell keeps a cell on one line and out of the column separators.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
