// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the codebreakers command-line interface.
//
// The package owns argument parsing, the command handlers, shared lipgloss
// styles and terminal detection. Handlers always return errors; main
// decides how to report them and which exit code to use.
//
// # Commands
//
//   - encipher / decipher: run a cipher over text from arguments or stdin
//   - key: show the numeric key derived from a keyphrase
//   - freq: letter and digram frequency histograms
//   - history: list or clear recorded worksheets
//   - repl: interactive line-oriented session
//   - learn: rendered explainers for each cipher
//   - config: show and edit the configuration file
package cli
