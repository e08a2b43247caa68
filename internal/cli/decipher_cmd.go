// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// decipher_cmd.go - Decipher command handler.
//
// Command: decipher [flags] [text]
// Aliases: dec, d
//
// Examples:
//   codebreakers decipher --key ZEBRAS "EVLNA CDTES EAROF ODEEC WIREE"
//   codebreakers decipher --cipher autokey --key ZZZ < cipher.txt
package cli

import (
	"github.com/jeranaias/codebreakers/internal/storage"
)

// HandleDecipher handles the "decipher" command.
func HandleDecipher(args Args) error {
	return runCipher(storage.OpDecipher, args)
}
