// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench implements the interactive cipher workbench TUI.
//
// The workbench is a Bubble Tea program with two inputs (keyphrase and
// message) and a live result pane: as either input changes, the message is
// re-enciphered, deciphered back, and optionally run through frequency
// analysis. It is the classroom mode of codebreakers - the fastest way to
// see how changing one keyphrase letter scrambles the whole column order.
//
// Layout:
//
//	codebreakers - cipher workbench
//	┌ keyphrase ─────────┐  derived key: 5 2 1 3 0 4
//	│ ZEBRAS             │
//	└────────────────────┘
//	┌ message ───────────────────────────────┐
//	│ WE ARE DISCOVERED FLEE AT ONCE         │
//	└────────────────────────────────────────┘
//	┌ enciphered ────────────────────────────┐
//	│ EVLNA CDTES EAROF ODEEC WIREE          │
//	└────────────────────────────────────────┘
//
// Tab switches focus, ctrl+s cycles the cipher, ctrl+f toggles the
// frequency histogram, esc quits.
package workbench
