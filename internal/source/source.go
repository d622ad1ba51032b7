// Package source loads work items for a board from local row files, beads
// backlogs and git revisions.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/davetashner/workboard/internal/board"
)

// maxParallelLoads bounds how many sources are read at once.
const maxParallelLoads = 8

// Load reads every path concurrently and returns their rows concatenated
// in argument order. A directory stands for its .beads/issues.jsonl; a
// directory without one contributes no rows.
func Load(ctx context.Context, paths ...string) ([]board.Row, error) {
	results := make([][]board.Row, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := LoadPath(p)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []board.Row
	for i, rows := range results {
		slog.Debug("loaded rows", "source", paths[i], "count", len(rows))
		all = append(all, rows...)
	}
	return all, nil
}

// LoadPath reads a single row file or beads directory.
func LoadPath(path string) ([]board.Row, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", path, err)
	}

	if info.IsDir() {
		path = filepath.Join(path, BeadsDir, IssuesFile)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			slog.Warn("no beads backlog in directory", "path", filepath.Dir(filepath.Dir(path)))
			return nil, nil
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-specified source path
	if err != nil {
		return nil, fmt.Errorf("read source %q: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return Decode(abs, data)
}
