package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifySkipsOriginator(t *testing.T) {
	reg, organizer, key := newTestGame(testConfig())

	playerA := testClient()
	playerB := testClient()
	_, err := reg.join(key, playerA, "Ada", "1111", "Foxes")
	require.NoError(t, err)
	_, err = reg.join(key, playerB, "Ben", "2222", "Owls")
	require.NoError(t, err)

	s, ok := reg.getSession(key)
	require.True(t, ok)

	received(organizer)
	received(playerA)
	received(playerB)

	msg := PlayerLeftMessage{Type: "playerLeft", ID: playerA.id, Name: "Ada"}
	s.notify(playerA, msg)

	assert.Empty(t, received(playerA))
	assert.Len(t, received(organizer), 1)
	assert.Len(t, received(playerB), 1)
}

func TestNotifyAllIncludesEveryone(t *testing.T) {
	reg, organizer, key := newTestGame(testConfig())

	playerA := testClient()
	_, err := reg.join(key, playerA, "Ada", "1111", "Foxes")
	require.NoError(t, err)

	s, ok := reg.getSession(key)
	require.True(t, ok)

	received(organizer)
	received(playerA)

	s.notifyAll(GameEndedMessage{Type: "gameEnded", GameKey: key, Message: "done"})

	assert.Len(t, received(organizer), 1)
	assert.Len(t, received(playerA), 1)
}

func TestSlowClientIsEvicted(t *testing.T) {
	reg, _, key := newTestGame(testConfig())

	// An unbuffered send channel with no reader models a stalled
	// connection: the first delivery attempt must evict it.
	stalled := &client{
		send: make(chan any),
		done: make(chan struct{}),
		id:   randomID(),
	}
	_, err := reg.join(key, stalled, "Ada", "1111", "Foxes")
	require.NoError(t, err)

	playerB := testClient()
	_, err = reg.join(key, playerB, "Ben", "2222", "Owls")
	require.NoError(t, err)

	s, ok := reg.getSession(key)
	require.True(t, ok)
	assert.False(t, s.audience[stalled], "stalled client should have been evicted")
	assert.True(t, s.audience[playerB])

	// Eviction is permanent; later broadcasts must not panic.
	s.notifyAll(GameEndedMessage{Type: "gameEnded", GameKey: key, Message: "done"})
}

func TestStalledOrganizerDoesNotPanic(t *testing.T) {
	reg := newRegistry(testConfig())

	// The organizer stalls immediately: no reader, no buffer.
	organizer := &client{
		send: make(chan any),
		done: make(chan struct{}),
		id:   randomID(),
	}
	key, err := reg.createSession(organizer, 1, "", testQuestions(), "")
	require.NoError(t, err)

	playerA := testClient()
	_, err = reg.join(key, playerA, "Ada", "1111", "Foxes")
	require.NoError(t, err)

	// The playerJoined broadcast evicted the organizer. Every further
	// answer mutation still tries to reach it; each attempt must be a
	// silent no-op, never a send on a dead connection.
	require.NoError(t, reg.submitAnswer(key, "Ada", "Foxes", 1, "1873", ""))
	require.NoError(t, reg.submitAnswer(key, "Ada", "Foxes", 2, "", "file:///red-door.jpg"))

	s, ok := reg.getSession(key)
	require.True(t, ok)
	assert.False(t, s.audience[organizer])
	assert.Empty(t, received(organizer))
}

func TestEnqueueAfterShutdown(t *testing.T) {
	c := testClient()
	c.shutdown()
	c.shutdown() // idempotent

	assert.False(t, c.enqueue("late message"))
	assert.Empty(t, received(c))
}
