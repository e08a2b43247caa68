// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// key.go - Numeric key derivation for columnar transposition.
package transpose

import (
	"fmt"
	"strings"

	"github.com/jeranaias/codebreakers/internal/alphabet"
)

// Key assigns a read-out rank to each keyphrase position: Key[p] is the
// rank of column p, and the column with rank 0 is read out first. A Key of
// length n is always a permutation of 0..n-1.
type Key []int

// DeriveKey converts a keyphrase into a numeric Key by counting the letters
// off in alphabetical order. Keys are 0-indexed.
//
// Repeated letters still advance the count, ordered by their position in
// the keyphrase: the first 'A' of "BAACDD" ranks 0, the second ranks 1.
//
//	DeriveKey("BACD")   -> [1 0 2 3]
//	DeriveKey("BAACDD") -> [2 0 1 3 4 5]
//
// An empty keyphrase yields an empty Key.
func DeriveKey(keyphrase []alphabet.Letter) Key {
	// How many times each letter value occurs in the keyphrase.
	var occurrences [alphabet.Size]int
	for _, l := range keyphrase {
		occurrences[l.Value()]++
	}

	// The rank of a letter decomposes into three parts:
	//
	//  1. one rank for every lesser value that occurs at all,
	//  2. one rank for every surplus duplicate of a lesser value,
	//  3. one rank for every earlier occurrence of the same value.
	//
	// Parts 1+2 place a value's first occurrence directly after all
	// occurrences of lesser values; part 3 orders duplicates by keyphrase
	// position.
	var assigned [alphabet.Size]int
	key := make(Key, 0, len(keyphrase))

	for _, l := range keyphrase {
		v := l.Value()

		rank := 0
		for lesser := 0; lesser < v; lesser++ {
			if occurrences[lesser] > 0 {
				rank += occurrences[lesser]
			}
		}
		rank += assigned[v]
		assigned[v]++

		key = append(key, rank)
	}

	// Every occurrence must have been ranked exactly once; anything else
	// is a bug in the formula above, not bad input.
	if assigned != occurrences {
		panic("transpose: key derivation counters diverged from occurrence counts")
	}

	return key
}

// Valid reports whether the Key is a permutation of 0..n-1.
func (k Key) Valid() bool {
	seen := make([]bool, len(k))
	for _, rank := range k {
		if rank < 0 || rank >= len(k) || seen[rank] {
			return false
		}
		seen[rank] = true
	}
	return true
}

// String renders the key as space-separated ranks, e.g. "2 0 1".
func (k Key) String() string {
	parts := make([]string, len(k))
	for i, rank := range k {
		parts[i] = fmt.Sprintf("%d", rank)
	}
	return strings.Join(parts, " ")
}
