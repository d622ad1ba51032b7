// Copyright 2026 The Workboard Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the workboard CLI.
const (
	ExitOK            = 0 // Output written.
	ExitInvalidArgs   = 1 // Invalid arguments, config or sources.
	ExitRenderFailure = 2 // Sources loaded but no output could be written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If the formatted message is empty, a
// generic description of the exit code is used.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitRenderFailure:
			msg = "workboard: rendering failed"
		default:
			msg = "workboard: invalid arguments"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
