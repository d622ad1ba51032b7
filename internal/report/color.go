// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strings"

	"github.com/fatih/color"

	"github.com/davetashner/workboard/internal/board"
)

var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorFaint  = color.New(color.Faint)
	colorBold   = color.New(color.Bold)
)

// ColorStage colors a humanized stage label by how far along it is.
func ColorStage(val string) string {
	switch strings.ToLower(val) {
	case "done", "closed", "shipped", "complete", "completed":
		return colorGreen.Sprint(val)
	case "blocked":
		return colorRed.Sprint(val)
	case "in progress", "review", "in review", "qa", "qa review":
		return colorYellow.Sprint(val)
	case "open", "todo", "backlog":
		return colorCyan.Sprint(val)
	default:
		return val
	}
}

// ColorPriority colors P0/P1 red and P2 yellow.
func ColorPriority(val string) string {
	switch val {
	case "P0", "P1":
		return colorRed.Sprint(val)
	case "P2":
		return colorYellow.Sprint(val)
	default:
		return val
	}
}

// ColorOwner dims the unassigned sentinel.
func ColorOwner(val string) string {
	if val == board.UnassignedOwner {
		return colorFaint.Sprint(val)
	}
	return val
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
