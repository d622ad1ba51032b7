// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/davetashner/workboard/internal/board"
)

// clickList collects repeated --sort flags. Each occurrence, or each entry of
// a comma-separated value, is one header click. Setting the empty string
// clears the list.
type clickList struct {
	clicks []int
}

var _ pflag.Value = (*clickList)(nil)

func (c *clickList) String() string {
	parts := make([]string, len(c.clicks))
	for i, n := range c.clicks {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (c *clickList) Set(s string) error {
	if s == "" {
		c.clicks = nil
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := parseColumn(part)
		if err != nil {
			return err
		}
		c.clicks = append(c.clicks, n)
	}
	return nil
}

func (c *clickList) Type() string { return "column" }

// tableClick is one header click on a named dashboard table.
type tableClick struct {
	table  string
	column int
}

// tableClickList collects repeated --sort table:column flags.
type tableClickList struct {
	clicks []tableClick
}

var _ pflag.Value = (*tableClickList)(nil)

func (c *tableClickList) String() string {
	parts := make([]string, len(c.clicks))
	for i, tc := range c.clicks {
		parts[i] = fmt.Sprintf("%s:%d", tc.table, tc.column)
	}
	return strings.Join(parts, ",")
}

func (c *tableClickList) Set(s string) error {
	if s == "" {
		c.clicks = nil
		return nil
	}
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return fmt.Errorf("expected <table-id>:<column>, got %q", s)
	}
	n, err := parseColumn(s[i+1:])
	if err != nil {
		return err
	}
	c.clicks = append(c.clicks, tableClick{table: s[:i], column: n})
	return nil
}

func (c *tableClickList) Type() string { return "table:column" }

func parseColumn(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid column %q", s)
	}
	if n < 0 || n >= len(board.Columns) {
		return 0, fmt.Errorf("column %d out of range (0-%d: %s)", n, len(board.Columns)-1, strings.Join(board.Columns, ", "))
	}
	return n, nil
}

// listExpand is a parsed --expand list:button:total:limit value.
type listExpand struct {
	list, button string
	total, limit int
}

func parseExpand(s string) (listExpand, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return listExpand{}, fmt.Errorf("expected <list-id>:<button-id>:<total>:<limit>, got %q", s)
	}
	total, err := strconv.Atoi(parts[2])
	if err != nil || total < 0 {
		return listExpand{}, fmt.Errorf("invalid total %q", parts[2])
	}
	limit, err := strconv.Atoi(parts[3])
	if err != nil || limit < 0 {
		return listExpand{}, fmt.Errorf("invalid limit %q", parts[3])
	}
	return listExpand{list: parts[0], button: parts[1], total: total, limit: limit}, nil
}
