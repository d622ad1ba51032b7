// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.OutputFormat)
	assert.Nil(t, cfg.Filter.HideUnassigned)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	content := `
title: Sprint 12
output_format: json
group_by: stage
list_limit: 8
filter:
  owner: ann
  hide_unassigned: true
sort: [4, 4]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Sprint 12", cfg.Title)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, GroupByStage, cfg.GroupBy)
	assert.Equal(t, 8, cfg.ListLimit)
	assert.Equal(t, "ann", cfg.Filter.Owner)
	require.NotNil(t, cfg.Filter.HideUnassigned)
	assert.True(t, *cfg.Filter.HideUnassigned)
	assert.Equal(t, []int{4, 4}, cfg.Sort)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{{invalid yaml"), 0o600))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestWrite_RoundTrip(t *testing.T) {
	hide := true
	cfg := &Config{Title: "Board", ListLimit: 3, Filter: FilterConfig{Stage: "todo", HideUnassigned: &hide}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))
	assert.Contains(t, buf.String(), "title: Board")
	assert.Contains(t, buf.String(), "  stage: todo")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), buf.Bytes(), 0o600))
	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRaw_AndWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	m, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Empty(t, m)

	m["title"] = "Raw"
	require.NoError(t, WriteFile(path, m))

	again, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Equal(t, "Raw", again["title"])
}

func TestLoadGlobal_UsesXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	assert.Equal(t, filepath.Join(xdg, "workboard", "config.yaml"), GlobalConfigPath())

	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "workboard"), 0o750))
	require.NoError(t, os.WriteFile(GlobalConfigPath(), []byte("title: Global\nlist_limit: 2\n"), 0o600))

	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, FileName), []byte("list_limit: 9\n"), 0o600))

	cfg, err := LoadMerged(repo)
	require.NoError(t, err)
	assert.Equal(t, "Global", cfg.Title)
	assert.Equal(t, 9, cfg.ListLimit)
}
