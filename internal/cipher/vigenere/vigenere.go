// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package vigenere implements the Vigenère cipher family.
//
// With P the plaintext, C the ciphertext and K the key stream, enciphering
// is C = P + K (mod 26) and deciphering is P = C - K. The standard cipher
// repeats the key to cover the message; the autokey variant extends a short
// priming key with the plaintext itself, so the key stream never repeats.
package vigenere

import (
	"github.com/jeranaias/codebreakers/internal/alphabet"
)

// Encipher enciphers plain under a repeating key.
//
// An empty key leaves the text unchanged; there is no key that "fails",
// which mirrors how the cipher was used on paper.
func Encipher(key, plain []alphabet.Letter) []alphabet.Letter {
	if len(key) == 0 {
		return append([]alphabet.Letter(nil), plain...)
	}

	out := make([]alphabet.Letter, len(plain))
	for i, p := range plain {
		out[i] = add(p, key[i%len(key)])
	}
	return out
}

// Decipher inverts Encipher under the same key.
func Decipher(key, cipher []alphabet.Letter) []alphabet.Letter {
	if len(key) == 0 {
		return append([]alphabet.Letter(nil), cipher...)
	}

	out := make([]alphabet.Letter, len(cipher))
	for i, c := range cipher {
		out[i] = sub(c, key[i%len(key)])
	}
	return out
}

// EncipherAutokey enciphers plain with the autokey system: the key stream
// is priming || plain, truncated to the message length.
func EncipherAutokey(priming, plain []alphabet.Letter) []alphabet.Letter {
	if len(priming) == 0 {
		return append([]alphabet.Letter(nil), plain...)
	}

	stream := make([]alphabet.Letter, 0, len(priming)+len(plain))
	stream = append(stream, priming...)
	stream = append(stream, plain...)

	out := make([]alphabet.Letter, len(plain))
	for i, p := range plain {
		out[i] = add(p, stream[i])
	}
	return out
}

// DecipherAutokey inverts EncipherAutokey. Only the priming key is known up
// front; each recovered plaintext letter extends the key stream for the
// letters after it.
func DecipherAutokey(priming, cipher []alphabet.Letter) []alphabet.Letter {
	if len(priming) == 0 {
		return append([]alphabet.Letter(nil), cipher...)
	}

	stream := append([]alphabet.Letter(nil), priming...)

	out := make([]alphabet.Letter, len(cipher))
	for i, c := range cipher {
		p := sub(c, stream[i])
		out[i] = p
		stream = append(stream, p)
	}
	return out
}

func add(p, k alphabet.Letter) alphabet.Letter {
	return alphabet.FromValue((p.Value() + k.Value()) % alphabet.Size)
}

func sub(c, k alphabet.Letter) alphabet.Letter {
	// Adding the complement avoids negative intermediate values.
	return alphabet.FromValue((c.Value() + alphabet.Size - k.Value()) % alphabet.Size)
}
