// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command routing and usage text for codebreakers.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdWorkbench Command = iota // default: interactive TUI
	CmdEncipher
	CmdDecipher
	CmdKey
	CmdFreq
	CmdHistory
	CmdRepl
	CmdLearn
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments shared by all commands.
type Args struct {
	// Cipher selects transpose, vigenere or autokey (--cipher).
	Cipher string
	// Key is the keyphrase (--key).
	Key string
	// Plain suppresses five-letter group formatting (--plain).
	Plain bool
	// JSON switches freq output to JSON (--json).
	JSON bool
	// Digrams switches freq to digram counts (--digrams).
	Digrams bool
	// Subcommand is the first positional argument after the command.
	Subcommand string
	// Text is the remaining positional input, joined.
	Text []string
	// Raw holds the unparsed arguments after the command name.
	Raw []string
}

const usageText = `codebreakers - historical ciphers and cryptanalysis aids

Classic pen-and-paper cryptography for the terminal: columnar
transposition, the Vigenère family, and the frequency counts used to
break them.

Usage:
  codebreakers                         Start the interactive workbench
  codebreakers encipher [flags] [text] Encipher text (or stdin)
  codebreakers decipher [flags] [text] Decipher text (or stdin)
  codebreakers key PHRASE              Show the numeric key for a keyphrase
  codebreakers freq [flags] [text]     Letter/digram frequency histogram
  codebreakers history [show|clear]    Worksheet history
  codebreakers repl                    Interactive line-oriented session
  codebreakers learn [topic]           Explainers (transposition, vigenere,
                                       frequency)
  codebreakers config [show|set|path]  Configuration
  codebreakers version                 Show version
  codebreakers help                    Show this help

Flags:
  -c, --cipher NAME   Cipher: transpose (default), vigenere, autokey
  -k, --key PHRASE    Keyphrase
  --plain             Output letters without group formatting
  --digrams           Count digrams instead of single letters (freq)
  --json              JSON output (freq)

Examples:
  codebreakers encipher --key ZEBRAS "we are discovered, flee at once"
  codebreakers decipher --key ZEBRAS "EVLNA CDTES EAROF ODEEC WIREE"
  codebreakers encipher --cipher vigenere --key TYPE < message.txt
  codebreakers key BAACDDZZXY
  codebreakers freq --digrams < intercept.txt

Text is read from the arguments when present, otherwise from stdin.
Input is sanitized before use: letters are uppercased and everything
else is dropped.
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

func parseArgs(argv []string) (Command, Args) {
	if len(argv) == 0 {
		return CmdWorkbench, Args{}
	}

	cmd := CmdHelp
	switch argv[0] {
	case "encipher", "enc", "e":
		cmd = CmdEncipher
	case "decipher", "dec", "d":
		cmd = CmdDecipher
	case "key":
		cmd = CmdKey
	case "freq", "frequency":
		cmd = CmdFreq
	case "history":
		cmd = CmdHistory
	case "repl":
		cmd = CmdRepl
	case "learn":
		cmd = CmdLearn
	case "config":
		cmd = CmdConfig
	case "version", "--version", "-v":
		cmd = CmdVersion
	case "help", "--help", "-h":
		cmd = CmdHelp
	case "workbench", "tui":
		cmd = CmdWorkbench
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", argv[0])
		return CmdHelp, Args{}
	}

	raw := argv[1:]
	parser := NewArgParser(raw)

	return cmd, Args{
		Cipher:     parser.Flag("cipher", "c"),
		Key:        parser.Flag("key", "k"),
		Plain:      parser.BoolFlag("plain"),
		JSON:       parser.BoolFlag("json"),
		Digrams:    parser.BoolFlag("digrams"),
		Subcommand: parser.Subcommand(),
		Text:       parser.Positional(),
		Raw:        raw,
	}
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("codebreakers %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
