// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Terminal rendering for frequency histograms.
package frequency

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/codebreakers/internal/alphabet"
)

var (
	letterStyle = lipgloss.NewStyle().Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"})
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"})
)

// Histogram renders one bar per letter, scaled so the longest bar fits
// maxBarWidth columns. Letters that never occur get an empty row, matching
// the pencil-and-paper tally layout.
func Histogram(c Counts, maxBarWidth int) string {
	if maxBarWidth < 1 {
		maxBarWidth = 1
	}

	max := c.Max()
	var sb strings.Builder

	for v := 0; v < alphabet.Size; v++ {
		letter := alphabet.FromValue(v)
		count := c[v]

		sb.WriteString(letterStyle.Render(string(letter.Byte())))
		sb.WriteByte(' ')

		if count > 0 {
			width := count
			if max > maxBarWidth {
				// Scale, but never round a non-zero count down to nothing.
				width = count * maxBarWidth / max
				if width == 0 {
					width = 1
				}
			}
			sb.WriteString(barStyle.Render(strings.Repeat("|", width)))
			sb.WriteByte(' ')
			sb.WriteString(countStyle.Render(fmt.Sprintf("%d", count)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DigramTable renders the non-zero digram counts as rows of "XY count"
// cells, most frequent first within each leading letter. Empty rows are
// elided; a full 26x26 grid is unreadable in a terminal.
func DigramTable(dc DigramCounts) string {
	var sb strings.Builder

	for left := 0; left < alphabet.Size; left++ {
		row := make([]string, 0, alphabet.Size)
		for right := 0; right < alphabet.Size; right++ {
			d := Digram{alphabet.FromValue(left), alphabet.FromValue(right)}
			if n, ok := dc[d]; ok {
				cell := fmt.Sprintf("%s %s", letterStyle.Render(d.String()), countStyle.Render(fmt.Sprintf("%-3d", n)))
				row = append(row, cell)
			}
		}
		if len(row) > 0 {
			sb.WriteString(strings.Join(row, "  "))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
