// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for codebreakers.
//
// This package contains the small helpers shared across the CLI, the TUI
// and storage: display-width aware string truncation and crash-safe file
// writing.
package util
