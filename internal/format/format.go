// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format pretty-prints letter sequences for terminal output.
//
// Enciphered text is traditionally written in five-letter groups to hide
// word boundaries; this package reproduces that convention. Formatting is
// purely cosmetic: it never reorders or drops letters, and sanitizing a
// formatted string recovers the original sequence.
package format

import (
	"strings"

	"github.com/jeranaias/codebreakers/internal/alphabet"
)

// Defaults for the classic codebook layout: five-letter groups, five
// groups per line.
const (
	DefaultGroupSize = 5
	DefaultLineSize  = 25
)

// Groups renders letters in groups of DefaultGroupSize separated by spaces,
// with a line break every DefaultLineSize letters.
func Groups(letters []alphabet.Letter) string {
	return GroupsN(letters, DefaultGroupSize, DefaultLineSize)
}

// GroupsN is Groups with configurable group and line sizes. A groupSize
// of zero or less disables grouping; a lineSize of zero or less disables
// line breaks.
func GroupsN(letters []alphabet.Letter, groupSize, lineSize int) string {
	var sb strings.Builder
	sb.Grow(len(letters) + len(letters)/4)

	for i, l := range letters {
		if i != 0 {
			if lineSize > 0 && i%lineSize == 0 {
				sb.WriteByte('\n')
			} else if groupSize > 0 && i%groupSize == 0 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(l.Byte())
	}
	return sb.String()
}
