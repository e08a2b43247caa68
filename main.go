// codebreakers - classical ciphers and cryptanalysis aids for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/codebreakers/internal/cli"
	"github.com/jeranaias/codebreakers/internal/config"
	"github.com/jeranaias/codebreakers/internal/ui/workbench"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdWorkbench:
		runWorkbench()
	case cli.CmdEncipher:
		cli.Exit(cli.HandleEncipher(args))
	case cli.CmdDecipher:
		cli.Exit(cli.HandleDecipher(args))
	case cli.CmdKey:
		cli.Exit(cli.HandleKey(args))
	case cli.CmdFreq:
		cli.Exit(cli.HandleFreq(args))
	case cli.CmdHistory:
		cli.Exit(cli.HandleHistory(args))
	case cli.CmdRepl:
		cli.Exit(cli.HandleRepl(args))
	case cli.CmdLearn:
		cli.Exit(cli.HandleLearn(args))
	case cli.CmdConfig:
		cli.Exit(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

// runWorkbench starts the interactive TUI. Without a terminal there is
// nothing to interact with, so fall back to the usage text.
func runWorkbench() {
	if !cli.IsTTY() || !cli.IsStdoutTTY() {
		cli.PrintUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitConfigError)
	}

	program := tea.NewProgram(workbench.New(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitGeneralError)
	}
}
