package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/workboard/internal/board"
	"github.com/davetashner/workboard/internal/config"
	"github.com/davetashner/workboard/internal/output"
	"github.com/davetashner/workboard/internal/source"
)

// FilterInput is the input schema for the filter_rows tool.
type FilterInput struct {
	Paths          []string `json:"paths,omitempty" jsonschema:"Row files (.jsonl, .json, .yaml, .toml) or directories with a beads backlog (default: current directory)"`
	Rev            string   `json:"rev,omitempty" jsonschema:"Git revision to read the sources at; paths are then relative to the repository root"`
	Query          string   `json:"query,omitempty" jsonschema:"Case-insensitive substring matched against name, owner, workspace and stage"`
	Owner          string   `json:"owner,omitempty" jsonschema:"Exact owner to keep (empty keeps all)"`
	Stage          string   `json:"stage,omitempty" jsonschema:"Exact stage token to keep, e.g. in_progress (empty keeps all)"`
	HideUnassigned bool     `json:"hide_unassigned,omitempty" jsonschema:"Drop rows without an owner"`
}

// SortInput is the input schema for the sort_rows tool.
type SortInput struct {
	Paths  []string `json:"paths,omitempty" jsonschema:"Row files or beads directories (default: current directory)"`
	Rev    string   `json:"rev,omitempty" jsonschema:"Git revision to read the sources at"`
	Clicks []int    `json:"clicks" jsonschema:"Column header clicks in order; 0=ID 1=Name 2=Owner 3=Workspace 4=Stage 5=Priority. Clicking the ascending column again sorts descending"`
}

// OptionsInput is the input schema for the board_options tool.
type OptionsInput struct {
	Paths []string `json:"paths,omitempty" jsonschema:"Row files or beads directories (default: current directory)"`
	Rev   string   `json:"rev,omitempty" jsonschema:"Git revision to read the sources at"`
}

// RenderInput is the input schema for the render_board tool.
type RenderInput struct {
	Paths          []string `json:"paths,omitempty" jsonschema:"Row files or beads directories (default: current directory)"`
	Rev            string   `json:"rev,omitempty" jsonschema:"Git revision to read the sources at"`
	Format         string   `json:"format,omitempty" jsonschema:"Output format: markdown, json, html or table (default: markdown)"`
	Query          string   `json:"query,omitempty" jsonschema:"Search text"`
	Owner          string   `json:"owner,omitempty" jsonschema:"Exact owner to keep"`
	Stage          string   `json:"stage,omitempty" jsonschema:"Exact stage token to keep"`
	HideUnassigned *bool    `json:"hide_unassigned,omitempty" jsonschema:"Drop rows without an owner; false overrides the config file"`
	Clicks         []int    `json:"clicks,omitempty" jsonschema:"Column header clicks to apply before rendering"`
	GroupBy        string   `json:"group_by,omitempty" jsonschema:"Group rows by workspace, stage, owner or none (default from config)"`
	Title          string   `json:"title,omitempty" jsonschema:"Board title (default from config, else Workboard)"`
}

// FilterOutput is the result of filter_rows.
type FilterOutput struct {
	Rows         []board.Row `json:"rows"`
	VisibleCount int         `json:"visible_count"`
	TotalCount   int         `json:"total_count"`
}

// SortOutput is the result of sort_rows.
type SortOutput struct {
	Rows []board.Row      `json:"rows"`
	Sort *board.SortState `json:"sort,omitempty"`
}

// OptionsOutput is the result of board_options.
type OptionsOutput struct {
	Owners []string            `json:"owners"`
	Stages []board.StageOption `json:"stages"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

var readOnly = &mcp.ToolAnnotations{
	ReadOnlyHint:    true,
	DestructiveHint: boolPtr(false),
	OpenWorldHint:   boolPtr(false),
}

// registerTools adds all board tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_rows",
		Description: "Filter work items by search text, owner, stage and assignment. Returns the visible rows and their count.",
		Annotations: readOnly,
	}, handleFilter)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sort_rows",
		Description: "Sort work items by replaying column header clicks. Numeric cells compare as numbers, others by locale order. Returns rows in order and the final sort state.",
		Annotations: readOnly,
	}, handleSort)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "board_options",
		Description: "List the distinct owners and stages offered by the board filter controls.",
		Annotations: readOnly,
	}, handleOptions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_board",
		Description: "Render the board with a filter and sort applied, as markdown, json, html or a plain table.",
		Annotations: readOnly,
	}, handleRender)
}

// loadRows reads the tool's sources from the working tree or, with rev,
// from a git revision of the repository containing the current directory.
func loadRows(ctx context.Context, paths []string, rev string) ([]board.Row, error) {
	if rev != "" {
		if len(paths) == 0 {
			paths = []string{"."}
		}
		rows, err := source.LoadRevision(ctx, ".", rev, paths...)
		if err != nil {
			return nil, fmt.Errorf("load sources at %s: %w", rev, err)
		}
		return rows, nil
	}

	resolved, err := ResolvePaths(paths)
	if err != nil {
		return nil, err
	}
	rows, err := source.Load(ctx, resolved...)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	slog.Debug("mcp loaded rows", "sources", len(resolved), "count", len(rows))
	return rows, nil
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func handleFilter(ctx context.Context, _ *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, any, error) {
	rows, err := loadRows(ctx, input.Paths, input.Rev)
	if err != nil {
		return nil, nil, err
	}

	state := board.FilterState{
		Query:          input.Query,
		Owner:          input.Owner,
		Stage:          input.Stage,
		HideUnassigned: input.HideUnassigned,
	}
	visible := board.VisibleRows(rows, state)
	if visible == nil {
		visible = []board.Row{}
	}
	return jsonResult(FilterOutput{
		Rows:         visible,
		VisibleCount: len(visible),
		TotalCount:   len(rows),
	})
}

func handleSort(ctx context.Context, _ *mcp.CallToolRequest, input SortInput) (*mcp.CallToolResult, any, error) {
	for _, c := range input.Clicks {
		if c < 0 || c >= len(board.Columns) {
			return nil, nil, fmt.Errorf("column %d out of range (0-%d)", c, len(board.Columns)-1)
		}
	}
	rows, err := loadRows(ctx, input.Paths, input.Rev)
	if err != nil {
		return nil, nil, err
	}

	sorted, state := board.SortClicks(rows, input.Clicks, nil, board.Row.Cell)
	if sorted == nil {
		sorted = []board.Row{}
	}
	return jsonResult(SortOutput{Rows: sorted, Sort: state})
}

func handleOptions(ctx context.Context, _ *mcp.CallToolRequest, input OptionsInput) (*mcp.CallToolResult, any, error) {
	rows, err := loadRows(ctx, input.Paths, input.Rev)
	if err != nil {
		return nil, nil, err
	}
	opts := board.DeriveOptions(rows)
	return jsonResult(OptionsOutput{Owners: opts.Owners, Stages: opts.StageOptions()})
}

func handleRender(ctx context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, any, error) {
	format := input.Format
	if format == "" {
		format = "markdown"
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	fileCfg, err := config.LoadMerged(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	settings := config.Merge(fileCfg, config.Settings{
		Title:   input.Title,
		GroupBy: input.GroupBy,
		Filter: board.FilterState{
			Query:          input.Query,
			Owner:          input.Owner,
			Stage:          input.Stage,
			HideUnassigned: input.HideUnassigned != nil && *input.HideUnassigned,
		},
		Sort:      input.Clicks,
		FilterSet: config.FilterFields{HideUnassigned: input.HideUnassigned != nil},
	}).WithDefaults()
	if err := config.ValidateGroupBy(settings.GroupBy); err != nil {
		return nil, nil, err
	}

	rows, err := loadRows(ctx, input.Paths, input.Rev)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	err = formatter.Format(output.Board{
		Title:     settings.Title,
		Rows:      rows,
		Filter:    settings.Filter,
		Sort:      settings.Sort,
		GroupBy:   settings.GroupBy,
		ListLimit: settings.ListLimit,
	}, &buf)
	if err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}
