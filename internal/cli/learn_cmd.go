// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// learn_cmd.go - Rendered cipher explainers.
//
// Command: learn [topic]
//
// Topics:
//   transposition (default)  How columnar transposition works
//   vigenere                 The Vigenère family
//   frequency                Why frequency counts break ciphers
//
// The explainers are markdown rendered for the terminal; the same notes a
// student would keep while working through a cipher by hand.
package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const learnTransposition = `# Columnar transposition

Write the message row by row under the keyphrase, then read the columns
out in alphabetical order of the keyphrase letters.

## Derive the key

Count the keyphrase letters off in alphabetical order. Duplicates still
advance the count, in order of appearance:

    keyphrase  C A B        keyphrase  B A A C D D
    key        2 0 1        key        2 0 1 3 4 5

## Encipher

    C  A  B
    -------
    A  T  T      ATTACKATDAWN written row by row,
    A  C  K      columns read out in key order:
    A  T  D
    A  W  N      TCTWT KDNAA AA

## Decipher

The trick is that columns have unequal heights when the key length does
not divide the message length. Divide: the quotient is the base column
height, and the remainder tells you how many columns - the first ones in
*keyphrase* order - are one taller. Rebuild the columns, then read row by
row.

Try it: ` + "`codebreakers encipher --key CAB \"attack at dawn\"`" + `
`

const learnVigenere = `# The Vigenère family

A polyalphabetic substitution: with plaintext P, ciphertext C and key
stream K (all as numbers A=0..Z=25),

    encipher:  C = P + K  (mod 26)
    decipher:  P = C - K  (mod 26)

## Standard

The key repeats to cover the message. The repetition is its weakness:
Kasiski examination finds the period from repeated ciphertext fragments.

## Autokey

Both parties agree on a short *priming key*; the key stream is the
priming key followed by the plaintext itself, so it never repeats. To
decipher, each recovered letter extends your key stream by one.

Try it: ` + "`codebreakers encipher --cipher autokey --key ZZZ AAAAAA`" + `
`

const learnFrequency = `# Frequency analysis

The letters of a language have personalities of their own. In English
text E, T and A dominate; in a monoalphabetic cipher they still dominate,
just wearing disguises. Count the letters, compare the histogram shape to
the language's, and the disguise falls away.

Digram counts (adjacent pairs: TH, HE, IN...) sharpen the attack, and
they are how you tell a transposition from a substitution: transposition
preserves single-letter frequencies exactly but destroys the digrams.

Try it: ` + "`codebreakers freq --digrams < intercept.txt`" + `
`

// HandleLearn handles the "learn" command.
func HandleLearn(args Args) error {
	var doc string
	switch args.Subcommand {
	case "", "transposition", "transpose":
		doc = learnTransposition
	case "vigenere", "autokey":
		doc = learnVigenere
	case "frequency", "freq":
		doc = learnFrequency
	default:
		return &UsageError{
			Reason:  fmt.Sprintf("unknown topic %q", args.Subcommand),
			Example: "codebreakers learn [transposition|vigenere|frequency]",
		}
	}

	width := GetTerminalWidth()
	if width > 100 {
		width = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fall back to the raw markdown; the content still reads fine.
		fmt.Print(doc)
		return nil
	}

	out, err := renderer.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return nil
	}
	fmt.Print(out)
	return nil
}
