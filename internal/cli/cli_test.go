// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the codebreakers command-line interface.
package cli

import (
	"errors"
	"testing"

	"github.com/jeranaias/codebreakers/internal/cipher/transpose"
	"github.com/jeranaias/codebreakers/internal/config"
)

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"no args is workbench", nil, CmdWorkbench},
		{"encipher", []string{"encipher"}, CmdEncipher},
		{"encipher alias", []string{"enc"}, CmdEncipher},
		{"decipher short alias", []string{"d"}, CmdDecipher},
		{"key", []string{"key", "ZEBRAS"}, CmdKey},
		{"freq", []string{"freq"}, CmdFreq},
		{"history", []string{"history", "clear"}, CmdHistory},
		{"repl", []string{"repl"}, CmdRepl},
		{"learn", []string{"learn", "vigenere"}, CmdLearn},
		{"version flag", []string{"--version"}, CmdVersion},
		{"unknown falls back to help", []string{"bogus"}, CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := parseArgs(tt.argv)
			if cmd != tt.want {
				t.Errorf("parseArgs(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseArgs_Flags(t *testing.T) {
	_, args := parseArgs([]string{"encipher", "--cipher", "vigenere", "-k", "TYPE", "--plain", "hello", "world"})

	if args.Cipher != "vigenere" {
		t.Errorf("Cipher = %q", args.Cipher)
	}
	if args.Key != "TYPE" {
		t.Errorf("Key = %q", args.Key)
	}
	if !args.Plain {
		t.Error("Plain not set")
	}
	if len(args.Text) != 2 || args.Text[0] != "hello" {
		t.Errorf("Text = %v", args.Text)
	}
}

func TestArgParser_FlagFormats(t *testing.T) {
	p := NewArgParser([]string{"show", "--limit=10", "--json", "-k", "CAB", "extra"})

	if p.Subcommand() != "show" {
		t.Errorf("Subcommand = %q", p.Subcommand())
	}
	if p.Flag("limit") != "10" {
		t.Errorf("Flag(limit) = %q", p.Flag("limit"))
	}
	if !p.BoolFlag("json") {
		t.Error("BoolFlag(json) = false")
	}
	if p.Flag("key", "k") != "CAB" {
		t.Errorf("Flag(key, k) = %q", p.Flag("key", "k"))
	}
	if got := p.PositionalAfterSubcommand(); len(got) != 1 || got[0] != "extra" {
		t.Errorf("PositionalAfterSubcommand = %v", got)
	}
}

func TestArgParser_BoolFlagDoesNotSwallowText(t *testing.T) {
	p := NewArgParser([]string{"--plain", "attack", "at", "dawn"})

	if !p.BoolFlag("plain") {
		t.Error("BoolFlag(plain) = false")
	}
	if len(p.Positional()) != 3 {
		t.Errorf("Positional = %v, want 3 words", p.Positional())
	}
}

func TestArgParser_StdinDash(t *testing.T) {
	p := NewArgParser([]string{"-"})

	if len(p.Positional()) != 1 || p.Positional()[0] != "-" {
		t.Errorf("Positional = %v, want [-]", p.Positional())
	}
}

func TestSelectCipher(t *testing.T) {
	cfg := config.Default()

	name, err := selectCipher(Args{}, cfg)
	if err != nil || name != config.CipherTranspose {
		t.Errorf("selectCipher(default) = %q, %v", name, err)
	}

	name, err = selectCipher(Args{Cipher: "VIGENERE"}, cfg)
	if err != nil || name != config.CipherVigenere {
		t.Errorf("selectCipher(VIGENERE) = %q, %v", name, err)
	}

	if _, err := selectCipher(Args{Cipher: "rot13"}, cfg); err == nil {
		t.Error("selectCipher(rot13) should fail")
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(transpose.ErrEmptyKey); got != ExitUsageError {
		t.Errorf("ExitCode(ErrEmptyKey) = %d", got)
	}
	if got := ExitCode(&UsageError{Reason: "bad"}); got != ExitUsageError {
		t.Errorf("ExitCode(UsageError) = %d", got)
	}
	if got := ExitCode(errors.New("boom")); got != ExitGeneralError {
		t.Errorf("ExitCode(generic) = %d", got)
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &CommandError{Command: "history", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("CommandError does not unwrap")
	}
}
