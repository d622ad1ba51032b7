package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/davetashner/workboard/internal/board"
	"github.com/davetashner/workboard/internal/config"
	"github.com/davetashner/workboard/internal/output"
)

// Render-specific flag values.
var (
	renderFormat         string
	renderOutput         string
	renderQuery          string
	renderOwner          string
	renderStage          string
	renderHideUnassigned bool
	renderSort           clickList
	renderGroupBy        string
	renderTitle          string
	renderRev            string
	renderListLimit      int
)

// renderCmd renders a board from row sources.
var renderCmd = &cobra.Command{
	Use:   "render [paths...]",
	Short: "Render a board from work item sources",
	Long: `Render a board from one or more sources. A source is a beads backlog
(.jsonl, or a directory containing .beads/issues.jsonl), a JSON, YAML or
TOML row file. With no paths the current directory is used.

The filter flags preset the dashboard controls; every --sort is one click on
a column header (0=ID 1=Name 2=Owner 3=Workspace 4=Stage 5=Priority), so
--sort 1 --sort 1 sorts by name descending.

Examples:
  workboard render -o board.html
  workboard render backlog.yaml --owner alice --hide-unassigned -f markdown
  workboard render --sort 5 --group-by stage -f table
  workboard render --rev v1.2.0 . -o release-board.html`,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderFormat, "format", "f", "", "output format: html, json, markdown, table (default from config, else html)")
	f.StringVarP(&renderOutput, "output", "o", "", "output file path (default: stdout)")
	f.StringVar(&renderQuery, "query", "", "search text matched against name, owner, workspace and stage")
	f.StringVar(&renderOwner, "owner", "", "show only rows with this owner")
	f.StringVar(&renderStage, "stage", "", "show only rows in this stage (e.g. in_progress)")
	f.BoolVar(&renderHideUnassigned, "hide-unassigned", false, "hide rows without an owner")
	f.Var(&renderSort, "sort", "column header click; repeat to click again")
	f.StringVar(&renderGroupBy, "group-by", "", "group rows by workspace, stage, owner or none")
	f.StringVar(&renderTitle, "title", "", "board title")
	f.StringVar(&renderRev, "rev", "", "read the sources at this git revision")
	f.IntVar(&renderListLimit, "list-limit", 0, "items shown in collapsed summary lists")
}

func runRender(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadMerged(".")
	if err != nil {
		return exitError(ExitInvalidArgs, "workboard: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return exitError(ExitInvalidArgs, "workboard: %v", err)
	}

	flags := cmd.Flags()
	settings := config.Merge(fileCfg, config.Settings{
		Title:        renderTitle,
		OutputFormat: renderFormat,
		GroupBy:      renderGroupBy,
		ListLimit:    renderListLimit,
		Filter: board.FilterState{
			Query:          renderQuery,
			Owner:          renderOwner,
			Stage:          renderStage,
			HideUnassigned: renderHideUnassigned,
		},
		Sort: renderSort.clicks,
		FilterSet: config.FilterFields{
			Query:          flags.Changed("query"),
			Owner:          flags.Changed("owner"),
			Stage:          flags.Changed("stage"),
			HideUnassigned: flags.Changed("hide-unassigned"),
		},
	}).WithDefaults()

	if err := config.ValidateGroupBy(settings.GroupBy); err != nil {
		return exitError(ExitInvalidArgs, "workboard: --group-by: %v", err)
	}
	if settings.ListLimit < 0 {
		return exitError(ExitInvalidArgs, "workboard: --list-limit must be non-negative, got %d", settings.ListLimit)
	}
	formatter, err := output.GetFormatter(settings.OutputFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "workboard: %v", err)
	}

	rows, err := loadSources(cmd.Context(), args, renderRev)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(renderOutput, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	b := output.Board{
		Title:     settings.Title,
		Rows:      rows,
		Filter:    settings.Filter,
		Sort:      settings.Sort,
		GroupBy:   settings.GroupBy,
		ListLimit: settings.ListLimit,
	}
	if err := formatter.Format(b, w); err != nil {
		_ = closeFn()
		return wrapRenderErr(err)
	}
	if err := closeOutput(closeFn, renderOutput); err != nil {
		return err
	}

	slog.Info("rendered board",
		"format", formatter.Name(),
		"rows", len(rows),
		"visible", len(b.Visible()),
		"output", describe(renderOutput))
	return nil
}
