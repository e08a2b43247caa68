// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Interactive line-oriented session.
//
// Command: repl
//
// Each line of input is run through the current cipher. Session state is
// changed with slash commands:
//
//   /cipher [name]      Show or switch cipher (transpose, vigenere, autokey)
//   /key [phrase]       Show or set the keyphrase
//   /mode [m]           Show or switch mode (encipher, decipher)
//   /freq               Histogram of all text entered this session
//   /help               Show commands
//   /quit               Exit (also Ctrl+D)
//
// Input history is kept at ~/.codebreakers/repl_history and works across
// sessions.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/codebreakers/internal/alphabet"
	"github.com/jeranaias/codebreakers/internal/cipher/transpose"
	"github.com/jeranaias/codebreakers/internal/cipher/vigenere"
	"github.com/jeranaias/codebreakers/internal/config"
	"github.com/jeranaias/codebreakers/internal/format"
	"github.com/jeranaias/codebreakers/internal/frequency"
)

// replSession holds the mutable state of one REPL run.
type replSession struct {
	cfg    *config.Config
	cipher string
	mode   string // "encipher" or "decipher"
	key    []alphabet.Letter

	// Everything entered this session, for /freq.
	seen []alphabet.Letter
}

// HandleRepl handles the "repl" command.
func HandleRepl(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	session := &replSession{
		cfg:    cfg,
		cipher: cfg.DefaultCipher,
		mode:   "encipher",
		key:    alphabet.SanitizeString(args.Key),
	}
	if args.Cipher != "" {
		if name, err := selectCipher(args, cfg); err == nil {
			session.cipher = name
		}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer saveReplHistory(line, historyPath)

	fmt.Println(TitleStyle.Render("codebreakers repl") + MutedStyle.Render("  /help for commands, /quit to exit"))
	session.printState()

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			// Ctrl+D or Ctrl+C ends the session.
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			fmt.Println()
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if quit := session.command(input); quit {
				return nil
			}
			continue
		}

		session.run(input)
	}
}

// command dispatches a slash command; true means quit.
func (s *replSession) command(input string) bool {
	fields := strings.Fields(input)
	arg := ""
	if len(fields) > 1 {
		arg = strings.Join(fields[1:], " ")
	}

	switch fields[0] {
	case "/quit", "/q", "/exit":
		return true

	case "/help", "/h":
		fmt.Println(MutedStyle.Render(`/cipher [name]  show or switch cipher
/key [phrase]   show or set the keyphrase
/mode [m]       encipher or decipher
/freq           histogram of this session's text
/quit           exit`))

	case "/cipher":
		if arg == "" {
			s.printState()
			break
		}
		switch strings.ToLower(arg) {
		case config.CipherTranspose, config.CipherVigenere, config.CipherAutokey:
			s.cipher = strings.ToLower(arg)
			s.printState()
		default:
			fmt.Println(ErrorStyle.Render(fmt.Sprintf("unknown cipher %q", arg)))
		}

	case "/key":
		if arg != "" {
			s.key = alphabet.SanitizeString(arg)
		}
		s.printState()

	case "/mode":
		switch strings.ToLower(arg) {
		case "":
			s.printState()
		case "encipher", "enc", "e":
			s.mode = "encipher"
			s.printState()
		case "decipher", "dec", "d":
			s.mode = "decipher"
			s.printState()
		default:
			fmt.Println(ErrorStyle.Render(fmt.Sprintf("unknown mode %q", arg)))
		}

	case "/freq":
		if len(s.seen) == 0 {
			fmt.Println(MutedStyle.Render("nothing entered yet"))
			break
		}
		fmt.Print(frequency.Histogram(frequency.Letters(s.seen), s.cfg.UI.HistogramWidth))

	default:
		fmt.Println(ErrorStyle.Render(fmt.Sprintf("unknown command %s", fields[0])))
	}
	return false
}

// run pushes one line of text through the current cipher.
func (s *replSession) run(input string) {
	text := alphabet.Sanitize([]byte(input))
	s.seen = append(s.seen, text...)

	var out []alphabet.Letter
	var err error

	switch s.cipher {
	case config.CipherTranspose:
		key := transpose.DeriveKey(s.key)
		if s.mode == "encipher" {
			out, err = transpose.Encipher(key, text)
		} else {
			out, err = transpose.Decipher(key, text)
		}
	case config.CipherVigenere:
		if s.mode == "encipher" {
			out = vigenere.Encipher(s.key, text)
		} else {
			out = vigenere.Decipher(s.key, text)
		}
	case config.CipherAutokey:
		if s.mode == "encipher" {
			out = vigenere.EncipherAutokey(s.key, text)
		} else {
			out = vigenere.DecipherAutokey(s.key, text)
		}
	}

	if err != nil {
		if errors.Is(err, transpose.ErrEmptyKey) {
			fmt.Println(ErrorStyle.Render("set a keyphrase first: /key ZEBRAS"))
		} else {
			fmt.Println(ErrorStyle.Render(err.Error()))
		}
		return
	}

	fmt.Println(ValueStyle.Render(format.GroupsN(out, s.cfg.Format.GroupSize, s.cfg.Format.LineSize)))
}

func (s *replSession) printState() {
	key := alphabet.String(s.key)
	if key == "" {
		key = "(none)"
	}
	fmt.Printf("%s %s  %s %s  %s %s\n",
		MutedStyle.Render("cipher"), KeyStyle.Render(s.cipher),
		MutedStyle.Render("mode"), ValueStyle.Render(s.mode),
		MutedStyle.Render("key"), KeyStyle.Render(key),
	)
}

func replHistoryPath() string {
	dir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

func saveReplHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
