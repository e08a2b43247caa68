// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// encipher_cmd.go - Encipher command handler.
//
// Command: encipher [flags] [text]
// Aliases: enc, e
//
// Examples:
//   codebreakers encipher --key ZEBRAS "we are discovered, flee at once"
//   codebreakers encipher --cipher vigenere --key TYPE < message.txt
//   codebreakers encipher --key CAB --plain "attack at dawn"
package cli

import (
	"github.com/jeranaias/codebreakers/internal/storage"
)

// HandleEncipher handles the "encipher" command.
func HandleEncipher(args Args) error {
	return runCipher(storage.OpEncipher, args)
}
