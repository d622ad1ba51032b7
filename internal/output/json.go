// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davetashner/workboard/internal/board"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the visible rows with metadata for the JSON output format.
type JSONEnvelope struct {
	Rows     []board.Row  `json:"rows"`
	Metadata JSONMetadata `json:"metadata"`
}

// JSONMetadata describes the board the rows were taken from.
type JSONMetadata struct {
	Title        string             `json:"title,omitempty"`
	TotalCount   int                `json:"total_count"`
	VisibleCount int                `json:"visible_count"`
	Owners       []string           `json:"owners"`
	Stages       []string           `json:"stages"`
	Filter       *board.FilterState `json:"filter,omitempty"`
	Sort         *board.SortState   `json:"sort,omitempty"`
	GeneratedAt  string             `json:"generated_at"`
}

// JSONFormatter writes the visible rows as a JSON object with metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the rows that pass the board's filter, in sorted order, as
// a JSON document. Options are derived from the full row set.
func (f *JSONFormatter) Format(b Board, w io.Writer) error {
	sorted, state := b.Sorted()
	visible := board.VisibleRows(sorted, b.Filter)
	if visible == nil {
		visible = []board.Row{}
	}
	opts := board.DeriveOptions(b.Rows)

	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	envelope := JSONEnvelope{
		Rows: visible,
		Metadata: JSONMetadata{
			Title:        b.Title,
			TotalCount:   len(b.Rows),
			VisibleCount: len(visible),
			Owners:       opts.Owners,
			Stages:       opts.Stages,
			Sort:         state,
			GeneratedAt:  now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}
	if !b.Filter.IsZero() {
		filter := b.Filter
		envelope.Metadata.Filter = &filter
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode. An explicit Compact
// wins; otherwise terminals get pretty output and pipes or files get a
// single line.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// Non-file writers (buffers in tests) get pretty output.
	return false
}
