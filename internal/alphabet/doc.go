// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package alphabet provides the restricted letter alphabet used by every
// cipher in codebreakers.
//
// Historical manual ciphers operate on the 26 uppercase letters A-Z and
// nothing else. This package owns that boundary: Sanitize maps arbitrary
// user input (mixed case, punctuation, accented characters) onto a sequence
// of Letter values, and everything downstream can assume its input is
// already inside the alphabet.
//
// # Key Types
//
//   - Letter: a single uppercase letter, guaranteed in 'A'..'Z'
//   - Sanitize / SanitizeString: raw bytes -> []Letter
//
// # Usage
//
//	letters := alphabet.SanitizeString("We are discovered. Flee at once!")
//	fmt.Println(alphabet.String(letters)) // "WEAREDISCOVEREDFLEEATONCE"
package alphabet
