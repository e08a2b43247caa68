// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for all CLI commands.
//
// Handlers always return errors instead of printing and returning nil;
// main maps them onto exit codes in one place.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/codebreakers/internal/cipher/transpose"
)

// Exit codes.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitGeneralError indicates a general error.
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments.
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file error.
	ExitConfigError = 3
)

// UsageError represents invalid command usage: a missing keyphrase, an
// unknown cipher name, conflicting flags.
type UsageError struct {
	Reason  string
	Example string // example of correct usage (optional)
}

func (e *UsageError) Error() string {
	if e.Example != "" {
		return fmt.Sprintf("%s (example: %s)", e.Reason, e.Example)
	}
	return e.Reason
}

// CommandError wraps a failure inside a command with its context.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	if errors.As(err, &usage) || errors.Is(err, transpose.ErrEmptyKey) {
		return ExitUsageError
	}
	return ExitGeneralError
}

// Exit reports err on stderr and terminates with the matching exit code.
func Exit(err error) {
	if err == nil {
		os.Exit(ExitSuccess)
	}
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
	os.Exit(ExitCode(err))
}
