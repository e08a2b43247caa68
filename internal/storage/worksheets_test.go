// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists worksheet history for codebreakers.
package storage

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGet(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Save(&Worksheet{
		Cipher:    "transpose",
		Operation: OpEncipher,
		Keyphrase: "ZEBRAS",
		Input:     "WEAREDISCOVEREDFLEEATONCE",
		Output:    "EVLNACDTESEAROFODEECWIREE",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "ws_"), "ID should start with ws_, got %q", id)

	ws, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "transpose", ws.Cipher)
	assert.Equal(t, OpEncipher, ws.Operation)
	assert.Equal(t, "ZEBRAS", ws.Keyphrase)
	assert.Equal(t, "EVLNACDTESEAROFODEECWIREE", ws.Output)
	assert.False(t, ws.CreatedAt.IsZero())
}

func TestGet_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("ws_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	store := openTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := store.Save(&Worksheet{
			Cipher:    "vigenere",
			Operation: OpEncipher,
			Keyphrase: "TYPE",
			Input:     "AAA",
			Output:    "TTT",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	sheets, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, sheets, 3)
	assert.True(t, sheets[0].CreatedAt.After(sheets[1].CreatedAt))
	assert.True(t, sheets[1].CreatedAt.After(sheets[2].CreatedAt))
}

func TestList_Limit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.Save(&Worksheet{Cipher: "transpose", Operation: OpDecipher, Keyphrase: "CAB", Input: "X", Output: "X"})
		require.NoError(t, err)
	}

	sheets, err := store.List(2)
	require.NoError(t, err)
	assert.Len(t, sheets, 2)
}

func TestPrune(t *testing.T) {
	store := openTestStore(t)
	store.MaxWorksheets = 3

	base := time.Now().Add(-time.Hour)
	var lastID string
	for i := 0; i < 5; i++ {
		id, err := store.Save(&Worksheet{
			Cipher:    "transpose",
			Operation: OpEncipher,
			Keyphrase: "CAB",
			Input:     "X",
			Output:    "X",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		lastID = id
	}

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// The newest entry survives pruning.
	_, err = store.Get(lastID)
	assert.NoError(t, err)
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Save(&Worksheet{Cipher: "autokey", Operation: OpEncipher, Keyphrase: "ZZZ", Input: "AAAAAA", Output: "ZZZAAA"})
	require.NoError(t, err)

	require.NoError(t, store.Clear())

	count, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
