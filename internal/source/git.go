// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/davetashner/workboard/internal/board"
)

// LoadRevision reads row files as they existed at rev (a branch, tag or
// commit hash) in the repository at repoPath. Each file is relative to the
// repository root; a file naming a directory reads its beads backlog.
func LoadRevision(ctx context.Context, repoPath, rev string, files ...string) ([]board.Row, error) {
	if abs, err := filepath.Abs(repoPath); err == nil {
		repoPath = abs
	}
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", repoPath, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("load tree for %s: %w", hash, err)
	}

	var all []board.Row
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := filepath.ToSlash(filepath.Clean(f))
		if name == "." {
			name = path.Join(BeadsDir, IssuesFile)
		} else if _, err := tree.Tree(name); err == nil {
			name = path.Join(name, BeadsDir, IssuesFile)
		}

		file, err := tree.File(name)
		if err != nil {
			return nil, fmt.Errorf("%s at %s: %w", name, rev, err)
		}
		content, err := file.Contents()
		if err != nil {
			return nil, fmt.Errorf("read %s at %s: %w", name, rev, err)
		}
		rows, err := Decode(filepath.Join(repoPath, filepath.FromSlash(name)), []byte(content))
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}
