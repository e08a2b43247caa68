// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// view.go - Rendering for the workbench.
package workbench

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.theme.Header.Render("codebreakers - cipher workbench"))
	sb.WriteString("  ")
	sb.WriteString(m.theme.KeyDisplay.Render(m.cipherName()))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderPane("keyphrase", m.keyInput.View(), m.focus == focusKeyphrase))
	sb.WriteString("\n")

	if m.derivedKey != "" {
		sb.WriteString(m.theme.Hint.Render("derived key: "))
		sb.WriteString(m.theme.KeyDisplay.Render(m.derivedKey))
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderPane("message", m.messageInput.View(), m.focus == focusMessage))
	sb.WriteString("\n")

	if m.errMsg != "" {
		sb.WriteString(m.theme.Error.Render(m.errMsg))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.renderPane("enciphered", m.theme.Output.Render(emptyDash(m.enciphered)), false))
		sb.WriteString("\n")
		sb.WriteString(m.renderPane("deciphered", m.theme.Success.Render(emptyDash(m.deciphered)), false))
		sb.WriteString("\n")

		if m.showFreq && m.freqView != "" {
			sb.WriteString(m.renderPane("ciphertext frequencies", m.freqView, false))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(m.theme.Hint.Render("tab switch field - ctrl+s cycle cipher - ctrl+f frequencies - esc quit"))
	sb.WriteString("\n")

	return sb.String()
}

// renderPane draws a bordered, titled pane around content.
func (m Model) renderPane(title, content string, active bool) string {
	style := m.theme.PassivePane
	if active {
		style = m.theme.ActivePane
	}
	if m.width > 4 {
		style = style.Width(min(m.width-2, 76))
	}

	titled := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PaneTitle.Render(title),
		content,
	)
	return style.Render(titled)
}

func emptyDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
