// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// update.go - Event handling and cipher recomputation for the workbench.
package workbench

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/codebreakers/internal/alphabet"
	"github.com/jeranaias/codebreakers/internal/cipher/transpose"
	"github.com/jeranaias/codebreakers/internal/cipher/vigenere"
	"github.com/jeranaias/codebreakers/internal/format"
	"github.com/jeranaias/codebreakers/internal/frequency"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextField):
			m.focus = (m.focus + 1) % focusCount
			if m.focus == focusKeyphrase {
				m.keyInput.Focus()
				m.messageInput.Blur()
			} else {
				m.keyInput.Blur()
				m.messageInput.Focus()
			}
			return m, nil

		case key.Matches(msg, m.keys.CycleCipher):
			m.cipher = (m.cipher + 1) % cipherCount
			m.recompute()
			return m, nil

		case key.Matches(msg, m.keys.ToggleFreq):
			m.showFreq = !m.showFreq
			m.recompute()
			return m, nil
		}
	}

	// Everything else feeds the focused input.
	var cmd tea.Cmd
	if m.focus == focusKeyphrase {
		m.keyInput, cmd = m.keyInput.Update(msg)
	} else {
		m.messageInput, cmd = m.messageInput.Update(msg)
	}
	m.recompute()
	return m, cmd
}

// recompute re-runs the selected cipher over the current inputs and
// refreshes every derived field.
func (m *Model) recompute() {
	m.errMsg = ""
	m.derivedKey = ""
	m.enciphered = ""
	m.deciphered = ""
	m.freqView = ""

	keyphrase := alphabet.SanitizeString(m.keyInput.Value())
	message := alphabet.SanitizeString(m.messageInput.Value())

	groups := func(letters []alphabet.Letter) string {
		return format.GroupsN(letters, m.cfg.Format.GroupSize, m.cfg.Format.LineSize)
	}

	var enciphered, deciphered []alphabet.Letter

	switch m.cipher {
	case cipherTranspose:
		key := transpose.DeriveKey(keyphrase)
		m.derivedKey = key.String()

		out, err := transpose.Encipher(key, message)
		if err != nil {
			if errors.Is(err, transpose.ErrEmptyKey) {
				m.errMsg = "enter a keyphrase to encipher"
			} else {
				m.errMsg = err.Error()
			}
			return
		}
		back, err := transpose.Decipher(key, out)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		enciphered, deciphered = out, back

	case cipherVigenere:
		enciphered = vigenere.Encipher(keyphrase, message)
		deciphered = vigenere.Decipher(keyphrase, enciphered)

	case cipherAutokey:
		enciphered = vigenere.EncipherAutokey(keyphrase, message)
		deciphered = vigenere.DecipherAutokey(keyphrase, enciphered)
	}

	m.enciphered = groups(enciphered)
	m.deciphered = groups(deciphered)

	if m.showFreq {
		m.freqView = frequency.Histogram(frequency.Letters(enciphered), m.cfg.UI.HistogramWidth)
	}
}
