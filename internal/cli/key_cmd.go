// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// key_cmd.go - Key inspection command handler.
//
// Command: key PHRASE
//
// Shows the numeric key a keyphrase derives to, the same counting-off a
// cipher clerk would do on paper. Useful for checking work by hand:
//
//   $ codebreakers key BAACDD
//   keyphrase   BAACDD
//   key         2 0 1 3 4 5
package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/codebreakers/internal/alphabet"
	"github.com/jeranaias/codebreakers/internal/cipher/transpose"
)

// HandleKey handles the "key" command.
func HandleKey(args Args) error {
	phrase := args.Key
	if phrase == "" {
		phrase = strings.Join(args.Text, " ")
	}

	keyphrase := alphabet.SanitizeString(phrase)
	if len(keyphrase) == 0 {
		return &UsageError{
			Reason:  "no keyphrase given",
			Example: "codebreakers key ZEBRAS",
		}
	}

	key := transpose.DeriveKey(keyphrase)

	fmt.Println(LabelStyle.Render("keyphrase") + ValueStyle.Render(alphabet.String(keyphrase)))
	fmt.Println(LabelStyle.Render("key") + KeyStyle.Render(key.String()))
	return nil
}
