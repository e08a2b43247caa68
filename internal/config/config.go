// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// codebreakers.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/codebreakers/internal/util"
)

// Ciphers the tool knows about; DefaultCipher must be one of these.
const (
	CipherTranspose = "transpose"
	CipherVigenere  = "vigenere"
	CipherAutokey   = "autokey"
)

// Config represents the complete codebreakers configuration.
type Config struct {
	// DefaultCipher is used when no --cipher flag is given.
	DefaultCipher string `toml:"default_cipher"`

	Format  FormatConfig  `toml:"format"`
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
}

// FormatConfig controls output grouping.
type FormatConfig struct {
	// GroupSize is the number of letters per group (0 disables grouping).
	GroupSize int `toml:"group_size"`
	// LineSize is the number of letters per line (0 disables line breaks).
	LineSize int `toml:"line_size"`
}

// HistoryConfig controls the worksheet history database.
type HistoryConfig struct {
	// Enabled records every encipher/decipher operation when true.
	Enabled bool `toml:"enabled"`
	// Path overrides the database location (empty = ~/.codebreakers/history.db).
	Path string `toml:"path"`
	// Limit caps the number of stored worksheets (0 = unlimited).
	Limit int `toml:"limit"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme"`
	// HistogramWidth is the maximum bar width for frequency histograms.
	HistogramWidth int `toml:"histogram_width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultCipher: CipherTranspose,
		Format: FormatConfig{
			GroupSize: 5,
			LineSize:  25,
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   200,
		},
		UI: UIConfig{
			Theme:          "auto",
			HistogramWidth: 60,
		},
	}
}

// ConfigDir returns the codebreakers configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".codebreakers"), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration file, fills defaults for missing keys,
// applies environment overrides and validates. A missing file is not an
// error; it yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit file path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to its default location.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration as TOML to path, atomically.
func SaveTo(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# codebreakers configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// ApplyEnvOverrides applies CODEBREAKERS_* environment variables on top of
// the loaded configuration. Environment wins over the file.
func (c *Config) ApplyEnvOverrides() {
	if cipher := os.Getenv("CODEBREAKERS_CIPHER"); cipher != "" {
		c.DefaultCipher = strings.ToLower(cipher)
	}
	if group := os.Getenv("CODEBREAKERS_GROUP_SIZE"); group != "" {
		if n, err := strconv.Atoi(group); err == nil {
			c.Format.GroupSize = n
		}
	}
	if line := os.Getenv("CODEBREAKERS_LINE_SIZE"); line != "" {
		if n, err := strconv.Atoi(line); err == nil {
			c.Format.LineSize = n
		}
	}
	if history := os.Getenv("CODEBREAKERS_HISTORY"); history != "" {
		c.History.Enabled = history == "1" || strings.EqualFold(history, "true")
	}
	if path := os.Getenv("CODEBREAKERS_HISTORY_PATH"); path != "" {
		c.History.Path = path
	}
	if theme := os.Getenv("CODEBREAKERS_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
}

// Validate clamps out-of-range values to sane bounds. It never fails:
// a broken config file degrades to defaults rather than an unusable tool.
func (c *Config) Validate() {
	switch c.DefaultCipher {
	case CipherTranspose, CipherVigenere, CipherAutokey:
	default:
		c.DefaultCipher = CipherTranspose
	}

	if c.Format.GroupSize < 0 {
		c.Format.GroupSize = 0
	}
	if c.Format.LineSize < 0 {
		c.Format.LineSize = 0
	}
	// A line break inside a group renders confusingly; align the line
	// size to a whole number of groups.
	if c.Format.GroupSize > 0 && c.Format.LineSize > 0 && c.Format.LineSize%c.Format.GroupSize != 0 {
		c.Format.LineSize -= c.Format.LineSize % c.Format.GroupSize
		if c.Format.LineSize == 0 {
			c.Format.LineSize = c.Format.GroupSize
		}
	}

	if c.History.Limit < 0 {
		c.History.Limit = 0
	}

	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		c.UI.Theme = "auto"
	}
	if c.UI.HistogramWidth < 10 {
		c.UI.HistogramWidth = 10
	}
	if c.UI.HistogramWidth > 200 {
		c.UI.HistogramWidth = 200
	}
}

// HistoryPath resolves the worksheet database location.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
