package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeAlphabet(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := randomCode(gameKeyLength)

		require.Len(t, code, gameKeyLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(gameKeyAlphabet, r), "unexpected character %q in %q", r, code)
		}
	}
}

func TestNewGameKeyAvoidsLiveSessions(t *testing.T) {
	taken := map[string]*session{
		"AB12": nil,
		"ZZZZ": nil,
		"0000": nil,
	}

	for i := 0; i < 100; i++ {
		key := newGameKey(taken)

		require.Len(t, key, gameKeyLength)
		_, exists := taken[key]
		assert.False(t, exists, "allocated key %q collides with a live session", key)
	}
}

func TestRandomIDUnique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := randomID()

		require.Len(t, id, 16)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}
