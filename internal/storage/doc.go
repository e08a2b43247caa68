// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists worksheet history for codebreakers.
//
// Every encipher/decipher operation can be recorded as a worksheet: the
// cipher used, the keyphrase, the input and the output. History makes the
// tool usable for classroom exercises where students compare runs, and a
// recorded worksheet can be replayed to verify a result.
//
// Worksheets live in a single SQLite database, by default
// ~/.codebreakers/history.db.
package storage
