// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the board filter, sort and option derivation as tools over
// stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePath resolves a source path to an absolute, symlink-resolved path.
// It returns an error if the path does not exist.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}

	if _, err := os.Stat(absPath); err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	return absPath, nil
}

// ResolvePaths resolves every source path; an empty list stands for the
// current directory.
func ResolvePaths(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		abs, err := ResolvePath(p)
		if err != nil {
			return nil, err
		}
		out[i] = abs
	}
	return out, nil
}
