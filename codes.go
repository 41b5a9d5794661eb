package main

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	gameKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	gameKeyLength   = 4
)

// randomCode draws n characters from gameKeyAlphabet using rejection
// sampling, so every character is drawn uniformly.
func randomCode(n int) string {
	const max = byte(255 - (256 % len(gameKeyAlphabet)))

	out := make([]byte, 0, n)
	buf := make([]byte, n*2)

	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}

		for _, b := range buf {
			if b <= max {
				out = append(out, gameKeyAlphabet[int(b)%len(gameKeyAlphabet)])
				if len(out) == n {
					return string(out)
				}
			}
		}
	}

	return string(out)
}

// newGameKey generates a game key absent from taken. The key space is
// large relative to any realistic number of live games, so the retry
// loop terminates quickly in practice.
func newGameKey(taken map[string]*session) string {
	for {
		key := randomCode(gameKeyLength)
		if _, exists := taken[key]; !exists {
			return key
		}
	}
}

// randomID returns an opaque identifier for connections and players.
func randomID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
