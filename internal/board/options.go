// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package board

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Caser keeps state between calls, so the shared one is locked.
var (
	titleMu    sync.Mutex
	titleCaser = cases.Title(language.Und, cases.NoLower)
)

// Options are the distinct values offered by the owner and stage filter
// controls.
type Options struct {
	Owners []string `json:"owners"`
	Stages []string `json:"stages"`
}

// StageOption pairs a stage token with its humanized label.
type StageOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DeriveOptions collects the sorted distinct owners (without the unassigned
// sentinel) and stages from the full row set. Empty values are skipped since
// the empty control value means "all".
func DeriveOptions(rows []Row) Options {
	owners := make(map[string]bool)
	stages := make(map[string]bool)
	for _, r := range rows {
		if r.Owner != "" && r.Owner != UnassignedOwner {
			owners[r.Owner] = true
		}
		if r.Stage != "" {
			stages[r.Stage] = true
		}
	}
	return Options{Owners: sortedSet(owners), Stages: sortedSet(stages)}
}

// StageOptions returns the stages with their display labels.
func (o Options) StageOptions() []StageOption {
	out := make([]StageOption, len(o.Stages))
	for i, s := range o.Stages {
		out[i] = StageOption{Value: s, Label: HumanizeStage(s)}
	}
	return out
}

// HumanizeStage turns a snake_case stage token into a label:
// "in_progress" becomes "In Progress".
func HumanizeStage(stage string) string {
	if stage == "" {
		return ""
	}
	titleMu.Lock()
	defer titleMu.Unlock()
	return titleCaser.String(strings.ReplaceAll(stage, "_", " "))
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
