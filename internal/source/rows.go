// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/workboard/internal/board"
)

// rowFile is the document shape shared by JSON, YAML and TOML row files.
type rowFile struct {
	Rows []board.Row `json:"rows" yaml:"rows" toml:"rows"`
}

// Format identifies a row file encoding.
type Format string

// Supported row file formats.
const (
	FormatBeads Format = "jsonl"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// FormatFor picks the format from a file name's extension.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jsonl":
		return FormatBeads, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported row file %q (want .jsonl, .json, .yaml, .yml or .toml)", name)
	}
}

// Decode parses row file content named name. The rows are normalized: the
// owner sentinel and HasOwner are filled in and an empty workspace defaults
// to the file's base name.
func Decode(name string, data []byte) ([]board.Row, error) {
	format, err := FormatFor(name)
	if err != nil {
		return nil, err
	}

	var rows []board.Row
	switch format {
	case FormatBeads:
		rows, err = decodeBeads(bytes.NewReader(data))
	case FormatJSON:
		rows, err = decodeJSON(data)
	case FormatYAML:
		var f rowFile
		err = yaml.Unmarshal(data, &f)
		rows = f.Rows
	case FormatTOML:
		var f rowFile
		err = toml.Unmarshal(data, &f)
		rows = f.Rows
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	normalize(rows, DefaultWorkspace(name))
	return rows, nil
}

// decodeJSON accepts either {"rows": [...]} or a bare array.
func decodeJSON(data []byte) ([]board.Row, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows []board.Row
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}
	var f rowFile
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, err
	}
	return f.Rows, nil
}

func normalize(rows []board.Row, workspace string) {
	for i := range rows {
		board.NormalizeOwner(&rows[i])
		if rows[i].Workspace == "" {
			rows[i].Workspace = workspace
		}
	}
}

// DefaultWorkspace derives a workspace name from a source path: the
// repository name for .beads/issues.jsonl, otherwise the file's base name
// without extension.
func DefaultWorkspace(path string) string {
	clean := filepath.Clean(path)
	dir := filepath.Dir(clean)
	if filepath.Base(clean) == IssuesFile && filepath.Base(dir) == BeadsDir {
		repo := filepath.Base(filepath.Dir(dir))
		if repo != "." && repo != string(filepath.Separator) {
			return repo
		}
		return ""
	}
	base := filepath.Base(clean)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
