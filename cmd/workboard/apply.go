// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davetashner/workboard/internal/dom"
)

// Apply-specific flag values.
var (
	applyQuery          string
	applyOwner          string
	applyStage          string
	applyHideUnassigned bool
	applySort           tableClickList
	applyToggleGroups   []string
	applyExpand         []string
	applyOutput         string
	applyInPlace        bool
)

// applyCmd runs the dashboard's interactions against a rendered file.
var applyCmd = &cobra.Command{
	Use:   "apply <dashboard.html>",
	Short: "Apply filters, sorts and toggles to a rendered dashboard",
	Long: `Apply the dashboard's interactions to a rendered HTML file, as if a user
had used its controls, and write the resulting document.

Filter flags that are not given keep the value the document's controls
already hold; the filter is then re-applied to every row. Sorts, group
toggles and list expansions run in that order, each in flag order.
References to elements the document does not contain are skipped.

Examples:
  workboard apply board.html --owner alice -o alice.html
  workboard apply board.html --sort table-1234:1 --sort table-1234:1 --in-place
  workboard apply board.html --expand owners-list:owners-toggle:12:5`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	f := applyCmd.Flags()
	f.StringVar(&applyQuery, "query", "", "set the search box")
	f.StringVar(&applyOwner, "owner", "", "select an owner (empty for all)")
	f.StringVar(&applyStage, "stage", "", "select a stage (empty for all)")
	f.BoolVar(&applyHideUnassigned, "hide-unassigned", false, "set the hide-unassigned checkbox")
	f.Var(&applySort, "sort", "click column header <table-id>:<column>; repeatable")
	f.StringArrayVar(&applyToggleGroups, "toggle-group", nil, "toggle the group body with this id; repeatable")
	f.StringArrayVar(&applyExpand, "expand", nil, "toggle a summary list <list-id>:<button-id>:<total>:<limit>; repeatable")
	f.StringVarP(&applyOutput, "output", "o", "", "output file path (default: stdout)")
	f.BoolVar(&applyInPlace, "in-place", false, "overwrite the input file")
}

func runApply(cmd *cobra.Command, args []string) error {
	path := args[0]
	if applyInPlace && applyOutput != "" {
		return exitError(ExitInvalidArgs, "workboard: --in-place and --output are mutually exclusive")
	}
	expands := make([]listExpand, len(applyExpand))
	for i, s := range applyExpand {
		e, err := parseExpand(s)
		if err != nil {
			return exitError(ExitInvalidArgs, "workboard: --expand: %v", err)
		}
		expands[i] = e
	}

	f, err := os.Open(path) //nolint:gosec // user-specified dashboard path
	if err != nil {
		return exitError(ExitInvalidArgs, "workboard: cannot open %q (%v)", path, err)
	}
	doc, err := dom.Parse(f)
	_ = f.Close()
	if err != nil {
		return exitError(ExitInvalidArgs, "workboard: %q: %v", path, err)
	}

	state := doc.ReadFilterState()
	flags := cmd.Flags()
	if flags.Changed("query") {
		state.Query = applyQuery
	}
	if flags.Changed("owner") {
		state.Owner = applyOwner
	}
	if flags.Changed("stage") {
		state.Stage = applyStage
	}
	if flags.Changed("hide-unassigned") {
		state.HideUnassigned = applyHideUnassigned
	}
	doc.SetFilterState(state)
	visible := doc.ApplyFilter(state)
	slog.Debug("applied filter", "query", state.Query, "owner", state.Owner, "stage", state.Stage,
		"hide_unassigned", state.HideUnassigned, "visible", visible)

	for _, c := range applySort.clicks {
		s, ok := doc.SortTable(c.table, c.column)
		if !ok {
			slog.Warn("no such table", "id", c.table)
			continue
		}
		slog.Debug("sorted table", "id", c.table, "sort", s.String())
	}
	for _, id := range applyToggleGroups {
		if !doc.ToggleGroup(id) {
			slog.Warn("no such group", "id", id)
		}
	}
	for _, e := range expands {
		if !doc.ToggleList(e.list, e.button, e.total, e.limit) {
			slog.Warn("no such list", "list", e.list, "button", e.button)
		}
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return wrapRenderErr(err)
	}

	target := applyOutput
	if applyInPlace {
		target = path
	}
	w, closeFn, err := openOutput(target, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		_ = closeFn()
		return wrapRenderErr(fmt.Errorf("write %s: %w", describe(target), err))
	}
	if err := closeOutput(closeFn, target); err != nil {
		return err
	}

	slog.Info("applied dashboard interactions", "input", path, "visible", visible, "output", describe(target))
	return nil
}
