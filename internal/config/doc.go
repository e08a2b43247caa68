// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// codebreakers.
//
// Configuration lives in a TOML file with sensible defaults and
// environment variable overrides:
//
//   - ~/.codebreakers/config.toml
//   - CODEBREAKERS_* environment variables (highest precedence)
//   - Built-in defaults
//
// Validation clamps out-of-range values instead of failing, so a hand
// edited config file never locks the user out of the tool.
package config
