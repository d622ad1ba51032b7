// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/davetashner/workboard/internal/board"
)

// Bead is a single issue from a beads backlog (.beads/issues.jsonl).
type Bead struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Status    string   `json:"status"`
	Assignee  string   `json:"assignee,omitempty"`
	Owner     string   `json:"owner,omitempty"`
	Priority  *int     `json:"priority,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Workspace string   `json:"workspace,omitempty"`
}

// BeadsDir is the standard directory for beads data.
const BeadsDir = ".beads"

// IssuesFile is the standard filename for beads issues.
const IssuesFile = "issues.jsonl"

// Row converts the bead to a board row. Assignee takes precedence over
// owner when both are present.
func (b Bead) Row() board.Row {
	owner := b.Assignee
	if owner == "" {
		owner = b.Owner
	}
	return board.Row{
		ID:        b.ID,
		Name:      b.Title,
		Owner:     owner,
		Workspace: b.Workspace,
		Stage:     b.Status,
		Priority:  b.Priority,
		Labels:    b.Labels,
	}
}

// decodeBeads parses beads JSONL, one issue per line. Blank lines are
// skipped.
func decodeBeads(r io.Reader) ([]board.Row, error) {
	var rows []board.Row
	scanner := bufio.NewScanner(r)
	// Increase buffer for large JSONL lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var b Bead
		if err := json.Unmarshal(line, &b); err != nil {
			return nil, fmt.Errorf("parse bead at line %d: %w", lineNum, err)
		}
		rows = append(rows, b.Row())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read beads: %w", err)
	}
	return rows, nil
}
