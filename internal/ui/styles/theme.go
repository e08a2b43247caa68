// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the codebreakers
// workbench.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the workbench. It is built once
// at startup from the detected terminal capabilities and the configured
// theme preference.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// Panes
	Header      lipgloss.Style
	PaneTitle   lipgloss.Style
	ActivePane  lipgloss.Style
	PassivePane lipgloss.Style

	// Content
	KeyDisplay lipgloss.Style
	Output     lipgloss.Style
	Hint       lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
}

// NewTheme builds a Theme for the terminal. The preference is "auto",
// "dark" or "light"; "auto" queries the terminal background.
func NewTheme(preference string) *Theme {
	isDark := true
	switch preference {
	case "light":
		isDark = false
	case "dark":
		isDark = true
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	border := lipgloss.RoundedBorder()

	return &Theme{
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondary),

		ActivePane: lipgloss.NewStyle().
			Border(border).
			BorderForeground(Cyan).
			Padding(0, 1),

		PassivePane: lipgloss.NewStyle().
			Border(border).
			BorderForeground(Overlay).
			Padding(0, 1),

		KeyDisplay: lipgloss.NewStyle().
			Bold(true).
			Foreground(Purple),

		Output: lipgloss.NewStyle().
			Foreground(TextPrimary),

		Hint: lipgloss.NewStyle().
			Foreground(TextMuted),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(Rose),

		Success: lipgloss.NewStyle().
			Foreground(Emerald),
	}
}
