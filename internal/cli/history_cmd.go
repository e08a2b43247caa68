// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - Worksheet history command handler.
//
// Command: history [subcommand]
//
// Subcommands:
//   show (default)      List recorded worksheets, newest first
//   clear               Delete all recorded worksheets
//
// Examples:
//   codebreakers history
//   codebreakers history show --limit 10
//   codebreakers history clear
package cli

import (
	"fmt"

	"github.com/jeranaias/codebreakers/internal/config"
	"github.com/jeranaias/codebreakers/internal/storage"
	"github.com/jeranaias/codebreakers/internal/util"
)

// HandleHistory handles the "history" command.
func HandleHistory(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return err
	}
	store, err := storage.Open(path)
	if err != nil {
		return &CommandError{Command: "history", Err: err}
	}
	defer store.Close()

	switch args.Subcommand {
	case "", "show":
		return showHistory(store, args)
	case "clear":
		if err := store.Clear(); err != nil {
			return &CommandError{Command: "history", Err: err}
		}
		fmt.Println(SuccessStyle.Render("History cleared."))
		return nil
	default:
		return &UsageError{
			Reason:  fmt.Sprintf("unknown history subcommand %q", args.Subcommand),
			Example: "codebreakers history [show|clear]",
		}
	}
}

func showHistory(store *storage.Store, args Args) error {
	limit := 20
	parser := NewArgParser(args.Raw)
	if v := parser.Flag("limit", "n"); v != "" {
		fmt.Sscanf(v, "%d", &limit)
	}

	sheets, err := store.List(limit)
	if err != nil {
		return &CommandError{Command: "history", Err: err}
	}
	if len(sheets) == 0 {
		fmt.Println(MutedStyle.Render("No worksheets recorded yet."))
		return nil
	}

	for _, ws := range sheets {
		fmt.Printf("%s %s %s %s\n",
			MutedStyle.Render(ws.CreatedAt.Format("2006-01-02 15:04")),
			TitleStyle.Render(fmt.Sprintf("%-9s", ws.Cipher)),
			ValueStyle.Render(fmt.Sprintf("%-8s", ws.Operation)),
			KeyStyle.Render(util.TruncateRunes(ws.Keyphrase, 16)),
		)
		fmt.Printf("  %s %s\n",
			MutedStyle.Render("in "),
			ValueStyle.Render(util.TruncateRunes(ws.Input, 60)))
		fmt.Printf("  %s %s\n",
			MutedStyle.Render("out"),
			ValueStyle.Render(util.TruncateRunes(ws.Output, 60)))
	}
	return nil
}
