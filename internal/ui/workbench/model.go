// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// model.go - Bubble Tea model for the cipher workbench.
package workbench

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/codebreakers/internal/config"
	"github.com/jeranaias/codebreakers/internal/ui/styles"
)

// Focusable inputs, cycled with tab.
const (
	focusKeyphrase = iota
	focusMessage
	focusCount
)

// Cipher selection, cycled with ctrl+s. The order matches the names in
// cipherNames.
const (
	cipherTranspose = iota
	cipherVigenere
	cipherAutokey
	cipherCount
)

var cipherNames = [cipherCount]string{
	config.CipherTranspose,
	config.CipherVigenere,
	config.CipherAutokey,
}

// Model is the Bubble Tea model for the workbench.
type Model struct {
	theme *styles.Theme
	cfg   *config.Config

	// Inputs
	keyInput     textinput.Model
	messageInput textinput.Model
	focus        int

	// Selection
	cipher int

	// Derived state, recomputed on every input change
	derivedKey string // numeric key display (transpose only)
	enciphered string // formatted ciphertext
	deciphered string // formatted round-trip plaintext
	errMsg     string

	// Frequency view
	showFreq  bool
	freqView  string

	// Dimensions
	width  int
	height int

	keys keyMap
}

// New creates a workbench model. The initial cipher comes from the
// configured default.
func New(cfg *config.Config) Model {
	keyInput := textinput.New()
	keyInput.Placeholder = "keyphrase, e.g. ZEBRAS"
	keyInput.CharLimit = 64
	keyInput.Focus()

	messageInput := textinput.New()
	messageInput.Placeholder = "message to encipher"
	messageInput.CharLimit = 512

	cipher := cipherTranspose
	for i, name := range cipherNames {
		if name == cfg.DefaultCipher {
			cipher = i
		}
	}

	m := Model{
		theme:        styles.NewTheme(cfg.UI.Theme),
		cfg:          cfg,
		keyInput:     keyInput,
		messageInput: messageInput,
		focus:        focusKeyphrase,
		cipher:       cipher,
		keys:         defaultKeyMap(),
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// cipherName returns the display name of the selected cipher.
func (m Model) cipherName() string {
	return cipherNames[m.cipher]
}
