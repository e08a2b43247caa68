// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Input plumbing and the shared cipher pipeline.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeranaias/codebreakers/internal/alphabet"
	"github.com/jeranaias/codebreakers/internal/cipher/transpose"
	"github.com/jeranaias/codebreakers/internal/cipher/vigenere"
	"github.com/jeranaias/codebreakers/internal/config"
	"github.com/jeranaias/codebreakers/internal/format"
	"github.com/jeranaias/codebreakers/internal/storage"
)

// readText returns the message text: positional arguments when present,
// stdin otherwise. A single "-" argument forces stdin.
func readText(args Args) (string, error) {
	parts := make([]string, 0, len(args.Text))
	for _, t := range args.Text {
		if t != "-" {
			parts = append(parts, t)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " "), nil
	}

	if IsTTY() {
		return "", &UsageError{
			Reason:  "no text given and stdin is a terminal",
			Example: `codebreakers encipher --key ZEBRAS "flee at once"`,
		}
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// selectCipher resolves the cipher name from the flag or the configured
// default.
func selectCipher(args Args, cfg *config.Config) (string, error) {
	name := strings.ToLower(args.Cipher)
	if name == "" {
		name = cfg.DefaultCipher
	}
	switch name {
	case config.CipherTranspose, config.CipherVigenere, config.CipherAutokey:
		return name, nil
	}
	return "", &UsageError{
		Reason:  fmt.Sprintf("unknown cipher %q", name),
		Example: "--cipher transpose|vigenere|autokey",
	}
}

// runCipher is the shared encipher/decipher pipeline: sanitize, run the
// selected cipher, format, print, and record a worksheet.
func runCipher(operation string, args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cipherName, err := selectCipher(args, cfg)
	if err != nil {
		return err
	}

	raw, err := readText(args)
	if err != nil {
		return err
	}

	keyphrase := alphabet.SanitizeString(args.Key)
	text := alphabet.Sanitize([]byte(raw))

	var out []alphabet.Letter
	switch cipherName {
	case config.CipherTranspose:
		key := transpose.DeriveKey(keyphrase)
		if operation == storage.OpEncipher {
			out, err = transpose.Encipher(key, text)
		} else {
			out, err = transpose.Decipher(key, text)
		}
		if err != nil {
			return err
		}
	case config.CipherVigenere:
		if operation == storage.OpEncipher {
			out = vigenere.Encipher(keyphrase, text)
		} else {
			out = vigenere.Decipher(keyphrase, text)
		}
	case config.CipherAutokey:
		if operation == storage.OpEncipher {
			out = vigenere.EncipherAutokey(keyphrase, text)
		} else {
			out = vigenere.DecipherAutokey(keyphrase, text)
		}
	}

	if args.Plain {
		fmt.Println(alphabet.String(out))
	} else {
		fmt.Println(format.GroupsN(out, cfg.Format.GroupSize, cfg.Format.LineSize))
	}

	recordWorksheet(cfg, &storage.Worksheet{
		Cipher:    cipherName,
		Operation: operation,
		Keyphrase: alphabet.String(keyphrase),
		Input:     alphabet.String(text),
		Output:    alphabet.String(out),
	})
	return nil
}

// recordWorksheet saves a worksheet when history is enabled. History is a
// convenience; a failure to record never fails the cipher operation.
func recordWorksheet(cfg *config.Config, ws *storage.Worksheet) {
	if !cfg.History.Enabled {
		return
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		return
	}
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		return
	}
	defer store.Close()
	store.MaxWorksheets = cfg.History.Limit

	if _, err := store.Save(ws); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record worksheet: %v\n", err)
	}
}
