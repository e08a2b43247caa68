// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package alphabet provides the restricted letter alphabet used by every
// cipher in codebreakers.
package alphabet

import (
	"testing"
	"testing/quick"
)

func TestSanitize_UppercasesAndFilters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed case with punctuation", "We are discovered. Flee at once!", "WEAREDISCOVEREDFLEEATONCE"},
		{"digits dropped", "attack at 0600", "ATTACKAT"},
		{"already sanitized", "ZEBRAS", "ZEBRAS"},
		{"empty", "", ""},
		{"only junk", "123 ,.;!\n\t", ""},
		{"newlines and tabs", "no\njustice\tno peace", "NOJUSTICENOPEACE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String(SanitizeString(tt.input))
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_FoldsDiacritics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"café", "CAFE"},
		{"Über", "UBER"},
		{"Ça va", "CAVA"},
		{"naïve", "NAIVE"},
	}

	for _, tt := range tests {
		got := String(SanitizeString(tt.input))
		if got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitize_MalformedUTF8(t *testing.T) {
	// Invalid UTF-8 must not panic; ASCII letters still come through.
	got := String(Sanitize([]byte{0xff, 'a', 0xfe, 'B'}))
	if got != "AB" {
		t.Errorf("Sanitize(invalid utf8) = %q, want %q", got, "AB")
	}
}

func TestSanitize_OutputAlwaysInAlphabet(t *testing.T) {
	property := func(input []byte) bool {
		for _, l := range Sanitize(input) {
			if l < 'A' || l > 'Z' {
				return false
			}
		}
		return true
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	property := func(input []byte) bool {
		once := Sanitize(input)
		twice := Sanitize([]byte(String(once)))
		return String(once) == String(twice)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestLetterValueRoundTrip(t *testing.T) {
	for v := 0; v < Size; v++ {
		if got := FromValue(v).Value(); got != v {
			t.Errorf("FromValue(%d).Value() = %d", v, got)
		}
	}
}

func TestFromValue_PanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromValue(26) did not panic")
		}
	}()
	FromValue(Size)
}
