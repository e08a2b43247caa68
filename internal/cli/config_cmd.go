// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command handler.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Print the effective configuration
//   set KEY VALUE       Change a setting and save the file
//   path                Print the config file location
//
// Settable keys:
//   default_cipher, format.group_size, format.line_size,
//   history.enabled, history.limit, ui.theme, ui.histogram_width
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/codebreakers/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return showConfig()
	case "path":
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	case "set":
		rest := NewArgParser(args.Raw).PositionalAfterSubcommand()
		if len(rest) != 2 {
			return &UsageError{
				Reason:  "config set needs a key and a value",
				Example: "codebreakers config set default_cipher vigenere",
			}
		}
		return setConfig(rest[0], rest[1])
	default:
		return &UsageError{
			Reason:  fmt.Sprintf("unknown config subcommand %q", args.Subcommand),
			Example: "codebreakers config [show|set|path]",
		}
	}
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	row := func(label, value string) {
		fmt.Println(LabelStyle.Render(label) + ValueStyle.Render(value))
	}
	fmt.Println(TitleStyle.Render("Configuration"))
	row("cipher", cfg.DefaultCipher)
	row("group size", strconv.Itoa(cfg.Format.GroupSize))
	row("line size", strconv.Itoa(cfg.Format.LineSize))
	row("history", strconv.FormatBool(cfg.History.Enabled))
	row("limit", strconv.Itoa(cfg.History.Limit))
	row("theme", cfg.UI.Theme)
	return nil
}

func setConfig(key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	atoi := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, &UsageError{Reason: fmt.Sprintf("%s needs a number, got %q", key, value)}
		}
		return n, nil
	}

	switch strings.ToLower(key) {
	case "default_cipher", "cipher":
		cfg.DefaultCipher = strings.ToLower(value)
	case "format.group_size", "group_size":
		if cfg.Format.GroupSize, err = atoi(); err != nil {
			return err
		}
	case "format.line_size", "line_size":
		if cfg.Format.LineSize, err = atoi(); err != nil {
			return err
		}
	case "history.enabled", "history":
		cfg.History.Enabled = value == "1" || strings.EqualFold(value, "true")
	case "history.limit":
		if cfg.History.Limit, err = atoi(); err != nil {
			return err
		}
	case "ui.theme", "theme":
		cfg.UI.Theme = strings.ToLower(value)
	case "ui.histogram_width", "histogram_width":
		if cfg.UI.HistogramWidth, err = atoi(); err != nil {
			return err
		}
	default:
		return &UsageError{
			Reason:  fmt.Sprintf("unknown config key %q", key),
			Example: "codebreakers config set theme dark",
		}
	}

	cfg.Validate()
	if err := config.Save(cfg); err != nil {
		return &CommandError{Command: "config", Err: err}
	}
	fmt.Println(SuccessStyle.Render("Saved."))
	return nil
}
