// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// freq_cmd.go - Frequency analysis command handler.
//
// Command: freq [flags] [text]
// Aliases: frequency
//
// Examples:
//   codebreakers freq "some intercepted message"
//   codebreakers freq --digrams < intercept.txt
//   codebreakers freq --json < intercept.txt
//
// Flags:
//   --digrams     Count adjacent letter pairs instead of single letters
//   --json        Emit counts as JSON instead of a histogram
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/codebreakers/internal/alphabet"
	"github.com/jeranaias/codebreakers/internal/config"
	"github.com/jeranaias/codebreakers/internal/frequency"
)

// HandleFreq handles the "freq" command.
func HandleFreq(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	raw, err := readText(args)
	if err != nil {
		return err
	}
	text := alphabet.Sanitize([]byte(raw))

	if args.Digrams {
		counts := frequency.Digrams(text)
		if args.JSON {
			return writeJSON(counts.Map())
		}
		fmt.Print(frequency.DigramTable(counts))
		return nil
	}

	counts := frequency.Letters(text)
	if args.JSON {
		return writeJSON(counts.Map())
	}

	width := cfg.UI.HistogramWidth
	if w := GetTerminalWidth() - 10; w < width {
		width = w
	}
	fmt.Print(frequency.Histogram(counts, width))
	fmt.Println(MutedStyle.Render(fmt.Sprintf("%d letters", counts.Total())))
	return nil
}

func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
