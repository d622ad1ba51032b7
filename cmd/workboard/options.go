package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/workboard/internal/board"
	"github.com/davetashner/workboard/internal/report"
)

// Options-specific flag values.
var (
	optionsFormat string
	optionsRev    string
)

// optionsCmd lists the values offered by the owner and stage filters.
var optionsCmd = &cobra.Command{
	Use:   "options [paths...]",
	Short: "List the owners and stages a board offers as filters",
	Long: `List the distinct owners (without "Unassigned") and stages found in the
sources, sorted alphabetically, with the label each stage is shown under.`,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().StringVarP(&optionsFormat, "format", "f", "table", "output format: table or json")
	optionsCmd.Flags().StringVar(&optionsRev, "rev", "", "read the sources at this git revision")
}

func runOptions(cmd *cobra.Command, args []string) error {
	if optionsFormat != "table" && optionsFormat != "json" {
		return exitError(ExitInvalidArgs, "workboard: unknown format %q (available: json, table)", optionsFormat)
	}

	rows, err := loadSources(cmd.Context(), args, optionsRev)
	if err != nil {
		return err
	}
	opts := board.DeriveOptions(rows)

	w := cmd.OutOrStdout()
	if optionsFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err := enc.Encode(struct {
			Owners []string            `json:"owners"`
			Stages []board.StageOption `json:"stages"`
		}{opts.Owners, opts.StageOptions()})
		if err != nil {
			return wrapRenderErr(fmt.Errorf("encode options: %w", err))
		}
		return nil
	}

	if err := report.WriteOptions(w, opts); err != nil {
		return wrapRenderErr(err)
	}
	return nil
}
