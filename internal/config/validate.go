// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/davetashner/workboard/internal/board"
	"github.com/davetashner/workboard/internal/output"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if err := ValidateGroupBy(cfg.GroupBy); err != nil {
		errs = append(errs, fmt.Sprintf("group_by: %v", err))
	}

	if cfg.ListLimit < 0 {
		errs = append(errs, fmt.Sprintf("list_limit: must be non-negative, got %d", cfg.ListLimit))
	}

	for i, col := range cfg.Sort {
		if col < 0 || col >= len(board.Columns) {
			errs = append(errs, fmt.Sprintf("sort[%d]: column %d out of range (0-%d)", i, col, len(board.Columns)-1))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ValidateGroupBy accepts the empty string (use the default) or one of the
// group-by values.
func ValidateGroupBy(v string) error {
	switch v {
	case "", GroupByWorkspace, GroupByStage, GroupByOwner, GroupByNone:
		return nil
	default:
		return fmt.Errorf("invalid value %q (must be workspace, stage, owner, or none)", v)
	}
}
