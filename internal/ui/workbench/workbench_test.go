// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench implements the interactive cipher workbench TUI.
package workbench

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/codebreakers/internal/config"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.UI.Theme = "dark" // skip terminal background detection in tests
	return New(cfg)
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model)
}

func TestNew_DefaultsToConfiguredCipher(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Theme = "dark"
	cfg.DefaultCipher = config.CipherVigenere

	m := New(cfg)
	if m.cipherName() != config.CipherVigenere {
		t.Errorf("cipher = %q, want %q", m.cipherName(), config.CipherVigenere)
	}
}

func TestUpdate_LiveEncipher(t *testing.T) {
	m := newTestModel(t)

	m = typeString(m, "ZEBRAS")
	m = press(m, tea.KeyTab)
	m = typeString(m, "WE ARE DISCOVERED FLEE AT ONCE")

	if m.derivedKey != "5 2 1 3 0 4" {
		t.Errorf("derived key = %q, want %q", m.derivedKey, "5 2 1 3 0 4")
	}
	if m.enciphered != "EVLNA CDTES EAROF ODEEC WIREE" {
		t.Errorf("enciphered = %q", m.enciphered)
	}
	if m.deciphered != "WEARE DISCO VERED FLEEA TONCE" {
		t.Errorf("deciphered = %q", m.deciphered)
	}
}

func TestUpdate_EmptyKeyShowsHint(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyTab)
	m = typeString(m, "ATTACK")

	if m.errMsg == "" {
		t.Error("expected an empty-key hint for transpose with message text")
	}
}

func TestUpdate_CycleCipher(t *testing.T) {
	m := newTestModel(t)

	first := m.cipherName()
	m = press(m, tea.KeyCtrlS)
	if m.cipherName() == first {
		t.Error("ctrl+s did not cycle the cipher")
	}
}

func TestUpdate_VigenereHasNoDerivedKey(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyCtrlS) // transpose -> vigenere

	m = typeString(m, "TYPE")
	m = press(m, tea.KeyTab)
	m = typeString(m, "NOW IS THE TIME FOR ALL GOOD MEN")

	if m.derivedKey != "" {
		t.Errorf("vigenere should not display a derived key, got %q", m.derivedKey)
	}
	if m.enciphered != "GMLML RWIMG BIYMG EEJVS HBBIG" {
		t.Errorf("enciphered = %q", m.enciphered)
	}
}

func TestUpdate_ToggleFrequencyView(t *testing.T) {
	m := newTestModel(t)

	m = typeString(m, "CAB")
	m = press(m, tea.KeyTab)
	m = typeString(m, "ATTACK AT DAWN")
	m = press(m, tea.KeyCtrlF)

	if m.freqView == "" {
		t.Error("ctrl+f did not populate the frequency view")
	}
	if !strings.Contains(m.View(), "frequencies") {
		t.Error("frequency pane missing from view")
	}
}

func TestView_ContainsPanes(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"keyphrase", "message", "cipher workbench"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
