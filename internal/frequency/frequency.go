// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package frequency provides letter and digram frequency counts.
//
// From David Kahn's "The Codebreakers": the letters of language have
// personalities of their own; though in a cryptogram they wear disguises,
// the cryptanalyst observes their actions and infers their identity.
// Counting is the whole trick - these histograms are the first tool
// against any mono-alphabetic cipher.
package frequency

import (
	"github.com/jeranaias/codebreakers/internal/alphabet"
)

// Counts holds one occurrence count per alphabet letter.
type Counts [alphabet.Size]int

// Letters counts how often each letter occurs in text.
func Letters(text []alphabet.Letter) Counts {
	var counts Counts
	for _, l := range text {
		counts[l.Value()]++
	}
	return counts
}

// Get returns the count for a letter.
func (c Counts) Get(l alphabet.Letter) int {
	return c[l.Value()]
}

// Total returns the number of letters counted.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Max returns the largest single count.
func (c Counts) Max() int {
	max := 0
	for _, n := range c {
		if n > max {
			max = n
		}
	}
	return max
}

// Map returns the counts keyed by letter, omitting zero entries.
// Used for JSON output.
func (c Counts) Map() map[string]int {
	m := make(map[string]int)
	for v, n := range c {
		if n > 0 {
			m[string(alphabet.FromValue(v).Byte())] = n
		}
	}
	return m
}

// Digram is an ordered pair of adjacent letters.
type Digram [2]alphabet.Letter

// String renders the pair, e.g. "TH".
func (d Digram) String() string {
	return string([]byte{d[0].Byte(), d[1].Byte()})
}

// DigramCounts maps each digram that occurs in a text to its count.
type DigramCounts map[Digram]int

// Digrams counts every adjacent letter pair in text. A text shorter than
// two letters has no digrams.
func Digrams(text []alphabet.Letter) DigramCounts {
	counts := make(DigramCounts)
	for i := 0; i+1 < len(text); i++ {
		counts[Digram{text[i], text[i+1]}]++
	}
	return counts
}

// Max returns the largest digram count.
func (dc DigramCounts) Max() int {
	max := 0
	for _, n := range dc {
		if n > max {
			max = n
		}
	}
	return max
}

// Map returns the counts keyed by digram. Used for JSON output.
func (dc DigramCounts) Map() map[string]int {
	m := make(map[string]int, len(dc))
	for d, n := range dc {
		m[d.String()] = n
	}
	return m
}
