// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the codebreakers
// workbench.
//
// Colors are defined once as lipgloss AdaptiveColor values so every pane
// renders correctly on both light and dark terminals; Theme bundles them
// into the styles the workbench model consumes.
package styles
