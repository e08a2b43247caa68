// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// transpose.go - Columnar transposition encipher/decipher.
package transpose

import (
	"errors"
	"sort"

	"github.com/jeranaias/codebreakers/internal/alphabet"
)

// ErrEmptyKey is returned when an empty key is paired with non-empty text.
// Column assignment divides by the key length, so there is no meaningful
// way to proceed.
var ErrEmptyKey = errors.New("transpose: empty key with non-empty text")

// Encipher enciphers plain under key.
//
// Each letter is tagged with the rank of its column, key[idx mod n], and
// the ciphertext is the letters stably sorted by that tag. Stability is
// what makes this equivalent to reading each grid column top to bottom:
// letters sharing a rank keep their row-major order.
func Encipher(key Key, plain []alphabet.Letter) ([]alphabet.Letter, error) {
	if len(key) == 0 {
		if len(plain) == 0 {
			return nil, nil
		}
		return nil, ErrEmptyKey
	}

	type tagged struct {
		rank   int
		letter alphabet.Letter
	}

	text := make([]tagged, len(plain))
	for idx, p := range plain {
		text[idx] = tagged{rank: key[idx%len(key)], letter: p}
	}

	sort.SliceStable(text, func(i, j int) bool {
		return text[i].rank < text[j].rank
	})

	cipher := make([]alphabet.Letter, len(text))
	for i, t := range text {
		cipher[i] = t.letter
	}
	return cipher, nil
}

// Decipher inverts Encipher.
//
// The ciphertext was read out column by column, so the first step is to
// work out how tall each column was. With L = len(cipher) and n = len(key),
// every column holds at least L/n letters. The L%n leftover letters sit in
// the last, short grid row and belong to the first L%n columns in original
// keyphrase order; the column of rank i is therefore one taller exactly
// when key[p] == i for some p < L%n.
//
// The heights partition the ciphertext into per-rank queues, and popping
// from queue key[idx mod n] for each output position replays the original
// row-major order.
func Decipher(key Key, cipher []alphabet.Letter) ([]alphabet.Letter, error) {
	if len(key) == 0 {
		if len(cipher) == 0 {
			return nil, nil
		}
		return nil, ErrEmptyKey
	}

	base := len(cipher) / len(key)
	rem := len(cipher) % len(key)

	columns := make([][]alphabet.Letter, len(key))
	cursor := 0
	for rank := 0; rank < len(key); rank++ {
		height := base
		if rankInShortRow(key, rank, rem) {
			height++
		}
		columns[rank] = cipher[cursor : cursor+height]
		cursor += height
	}

	plain := make([]alphabet.Letter, 0, len(cipher))
	for idx := 0; idx < len(cipher); idx++ {
		rank := key[idx%len(key)]
		column := columns[rank]
		if len(column) == 0 {
			// The heights above partition the ciphertext exactly, so an
			// empty column here means the computation is wrong.
			panic("transpose: column exhausted during reconstruction")
		}
		plain = append(plain, column[0])
		columns[rank] = column[1:]
	}
	return plain, nil
}

// rankInShortRow reports whether the column of rank i still has a letter
// in the short last grid row, i.e. whether i is the rank of one of the
// first rem keyphrase positions.
func rankInShortRow(key Key, i, rem int) bool {
	for p := 0; p < rem; p++ {
		if key[p] == i {
			return true
		}
	}
	return false
}
