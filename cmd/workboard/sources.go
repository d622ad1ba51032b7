package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/davetashner/workboard/internal/board"
	"github.com/davetashner/workboard/internal/source"
)

// loadSources reads the rows named on the command line, from the working
// tree or, when rev is set, from that revision of the enclosing repository.
func loadSources(ctx context.Context, paths []string, rev string) ([]board.Row, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var rows []board.Row
	var err error
	if rev != "" {
		rows, err = source.LoadRevision(ctx, ".", rev, paths...)
	} else {
		rows, err = source.Load(ctx, paths...)
	}
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "workboard: %v", err)
	}
	slog.Info("loaded rows", "sources", len(paths), "count", len(rows), "rev", rev)
	return rows, nil
}

// openOutput returns the writer for -o: the named file, or fallback when
// path is empty. The returned close func is always safe to call.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path) //nolint:gosec // user-specified output path
	if err != nil {
		return nil, nil, exitError(ExitRenderFailure, "workboard: cannot create output file %q (%v)", path, err)
	}
	return f, f.Close, nil
}

func closeOutput(closeFn func() error, path string) error {
	if err := closeFn(); err != nil {
		return exitError(ExitRenderFailure, "workboard: cannot write output file %q (%v)", path, err)
	}
	return nil
}

// describe names an output destination for log records.
func describe(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

// wrapRenderErr turns a formatter error into an exit code error.
func wrapRenderErr(err error) error {
	return exitError(ExitRenderFailure, "workboard: rendering failed (%v)", err)
}
