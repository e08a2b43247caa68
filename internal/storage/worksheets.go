// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists worksheet history for codebreakers.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	// ErrNotFound is returned when a worksheet ID does not exist.
	ErrNotFound = errors.New("storage: worksheet not found")
)

// Operation names recorded in worksheets.
const (
	OpEncipher = "encipher"
	OpDecipher = "decipher"
)

// Worksheet is one recorded cipher operation.
type Worksheet struct {
	ID        string
	Cipher    string // "transpose", "vigenere", "autokey"
	Operation string // OpEncipher or OpDecipher
	Keyphrase string // sanitized keyphrase
	Input     string // sanitized input letters
	Output    string // sanitized output letters
	CreatedAt time.Time
}

// Store is a worksheet history database.
type Store struct {
	db *sql.DB

	// MaxWorksheets caps stored history; oldest entries are pruned on
	// save. Zero means unlimited.
	MaxWorksheets int
}

const schema = `
CREATE TABLE IF NOT EXISTS worksheets (
	id         TEXT PRIMARY KEY,
	cipher     TEXT NOT NULL,
	operation  TEXT NOT NULL,
	keyphrase  TEXT NOT NULL,
	input      TEXT NOT NULL,
	output     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_worksheets_created ON worksheets(created_at);
`

// Open opens (creating if necessary) the worksheet database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, MaxWorksheets: 200}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a worksheet and returns its ID. A missing ID or timestamp
// is filled in.
func (s *Store) Save(ws *Worksheet) (string, error) {
	if ws.ID == "" {
		ws.ID = "ws_" + uuid.NewString()
	}
	if ws.CreatedAt.IsZero() {
		ws.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO worksheets (id, cipher, operation, keyphrase, input, output, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ws.ID, ws.Cipher, ws.Operation, ws.Keyphrase, ws.Input, ws.Output, ws.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save worksheet: %w", err)
	}

	if err := s.prune(); err != nil {
		return "", err
	}
	return ws.ID, nil
}

// Get returns the worksheet with the given ID.
func (s *Store) Get(id string) (*Worksheet, error) {
	row := s.db.QueryRow(
		`SELECT id, cipher, operation, keyphrase, input, output, created_at
		 FROM worksheets WHERE id = ?`, id)

	var ws Worksheet
	err := row.Scan(&ws.ID, &ws.Cipher, &ws.Operation, &ws.Keyphrase, &ws.Input, &ws.Output, &ws.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load worksheet: %w", err)
	}
	return &ws, nil
}

// List returns up to limit worksheets, newest first. A limit of zero or
// less returns everything.
func (s *Store) List(limit int) ([]Worksheet, error) {
	query := `SELECT id, cipher, operation, keyphrase, input, output, created_at
	          FROM worksheets ORDER BY created_at DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}
	defer rows.Close()

	var sheets []Worksheet
	for rows.Next() {
		var ws Worksheet
		if err := rows.Scan(&ws.ID, &ws.Cipher, &ws.Operation, &ws.Keyphrase, &ws.Input, &ws.Output, &ws.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worksheet: %w", err)
		}
		sheets = append(sheets, ws)
	}
	return sheets, rows.Err()
}

// Count returns the number of stored worksheets.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM worksheets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count worksheets: %w", err)
	}
	return n, nil
}

// Clear deletes all worksheets.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM worksheets`); err != nil {
		return fmt.Errorf("failed to clear worksheets: %w", err)
	}
	return nil
}

// prune drops the oldest worksheets beyond MaxWorksheets.
func (s *Store) prune() error {
	if s.MaxWorksheets <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM worksheets WHERE id NOT IN (
		   SELECT id FROM worksheets ORDER BY created_at DESC, id DESC LIMIT ?
		 )`, s.MaxWorksheets)
	if err != nil {
		return fmt.Errorf("failed to prune worksheets: %w", err)
	}
	return nil
}
