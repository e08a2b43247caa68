// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package alphabet provides the restricted letter alphabet used by every
// cipher in codebreakers.
package alphabet

import (
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Size is the number of letters in the alphabet.
const Size = 26

// Letter is a single uppercase letter. A Letter is only ever produced by
// Sanitize or FromValue, so it always holds a byte in 'A'..'Z'.
type Letter byte

// Byte returns the underlying ASCII byte.
func (l Letter) Byte() byte {
	return byte(l)
}

// Value returns the numeric value of the letter: A=0 .. Z=25.
func (l Letter) Value() int {
	return int(l - 'A')
}

// FromValue returns the Letter for a numeric value 0..25.
// It panics on out-of-range values; callers are expected to have reduced
// modulo Size already.
func FromValue(v int) Letter {
	if v < 0 || v >= Size {
		panic(fmt.Sprintf("alphabet: value %d out of range", v))
	}
	return Letter('A' + byte(v))
}

// String renders a letter sequence as a plain Go string.
func String(letters []Letter) string {
	buf := make([]byte, len(letters))
	for i, l := range letters {
		buf[i] = byte(l)
	}
	return string(buf)
}

// foldMarks decomposes Unicode input and strips combining marks, so that
// accented letters survive sanitization as their base letter (É -> E)
// instead of being dropped.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Sanitize normalizes raw input into the cipher alphabet.
//
// The input is:
//
//	(a) stripped of combining marks (diacritic folding),
//	(b) uppercased, then
//	(c) filtered down to 'A'..'Z', preserving order.
//
// Any byte sequence is valid input; there is no error path. Already
// sanitized input passes through unchanged.
func Sanitize(input []byte) []Letter {
	folded, _, err := transform.Bytes(foldMarks, input)
	if err != nil {
		// Malformed UTF-8 cannot be folded; the ASCII filter below
		// still produces a valid result from the raw bytes.
		folded = input
	}

	letters := make([]Letter, 0, len(folded))
	for _, b := range folded {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if b >= 'A' && b <= 'Z' {
			letters = append(letters, Letter(b))
		}
	}
	return letters
}

// SanitizeString is Sanitize for string input.
func SanitizeString(s string) []Letter {
	return Sanitize([]byte(s))
}
