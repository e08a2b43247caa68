// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transpose implements the columnar transposition cipher.
//
// The message is written row by row into a grid as wide as the key, and the
// ciphertext is read out column by column in the order the key dictates.
//
// Enciphering "ATTACKATDAWN" under the keyphrase "CAB" (numeric key 2 0 1):
//
//	C  A  B        2  0  1
//	----------     -------
//	A  T  T        A  T  T
//	A  C  K        A  C  K
//	A  T  D        A  T  D
//	A  W  N        A  W  N
//
// Reading the columns in key order (0, 1, 2) gives "TCTW TKDN AAAA".
//
// Deciphering is the tricky direction: when the key length does not divide
// the message length the columns have unequal heights, and the grid must be
// reconstructed from the key alone before it can be read back row by row.
// See Decipher for the height computation.
//
// The numeric key is derived from a keyphrase by counting the letters off
// in alphabetical order; DeriveKey documents how repeated letters are
// resolved.
package transpose
