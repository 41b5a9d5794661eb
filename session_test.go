package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	reg := newRegistry(testConfig())
	organizer := testClient()

	key, err := reg.createSession(organizer, 3, "Riverside Park", testQuestions(), "")
	require.NoError(t, err)
	require.Len(t, key, gameKeyLength)

	s, ok := reg.getSession(key)
	require.True(t, ok)
	assert.Equal(t, statusWaiting, s.status)
	assert.Same(t, organizer, s.organizer)
	assert.True(t, s.audience[organizer])
	assert.Equal(t, 3, s.timelineDays)
	assert.Equal(t, "Riverside Park", s.location)

	// Question ids are filled in from insertion order when absent.
	require.Len(t, s.questions, 2)
	assert.Equal(t, 1, s.questions[0].ID)
	assert.Equal(t, 2, s.questions[1].ID)
}

func TestCreateSessionPassword(t *testing.T) {
	cfg := testConfig()
	cfg.createPassword = "hunter2"
	reg := newRegistry(cfg)

	_, err := reg.createSession(testClient(), 1, "", testQuestions(), "wrong")
	assert.ErrorIs(t, err, errBadPassword)

	_, err = reg.createSession(testClient(), 1, "", testQuestions(), "hunter2")
	assert.NoError(t, err)
}

func TestGetSessionAbsent(t *testing.T) {
	reg := newRegistry(testConfig())

	_, ok := reg.getSession("AB12")
	assert.False(t, ok)
}

func TestDeleteSessionErrors(t *testing.T) {
	reg, _, key := newTestGame(testConfig())

	err := reg.deleteSession("XXXX", testClient())
	assert.ErrorIs(t, err, errGameNotFound)

	err = reg.deleteSession(key, testClient())
	assert.ErrorIs(t, err, errNotAuthorized)

	_, ok := reg.getSession(key)
	assert.True(t, ok, "failed delete must not remove the session")
}

func TestDeleteSessionNotifiesEveryone(t *testing.T) {
	reg, organizer, key := newTestGame(testConfig())

	playerA := testClient()
	playerB := testClient()
	_, err := reg.join(key, playerA, "Ada", "1111", "Foxes")
	require.NoError(t, err)
	_, err = reg.join(key, playerB, "Ben", "2222", "Owls")
	require.NoError(t, err)

	received(organizer)
	received(playerA)
	received(playerB)

	require.NoError(t, reg.deleteSession(key, organizer))

	// Termination notices go to the entire audience, organizer included.
	for _, c := range []*client{organizer, playerA, playerB} {
		msgs := received(c)
		require.Len(t, msgs, 1)
		ended, ok := msgs[0].(GameEndedMessage)
		require.True(t, ok)
		assert.Equal(t, key, ended.GameKey)
	}

	_, ok := reg.getSession(key)
	assert.False(t, ok)

	_, err = reg.join(key, testClient(), "Cam", "3333", "Foxes")
	assert.ErrorIs(t, err, errGameNotFound)
}

func TestOrganizerDisconnectEndsSession(t *testing.T) {
	reg, organizer, key := newTestGame(testConfig())

	playerA := testClient()
	_, err := reg.join(key, playerA, "Ada", "1111", "Foxes")
	require.NoError(t, err)
	received(playerA)

	reg.disconnect(organizer)

	msgs := received(playerA)
	require.Len(t, msgs, 1)
	ended, ok := msgs[0].(GameEndedMessage)
	require.True(t, ok)
	assert.Equal(t, key, ended.GameKey)

	_, ok = reg.getSession(key)
	assert.False(t, ok)
}

func TestPlayerDisconnectLeavesSessionIntact(t *testing.T) {
	reg, organizer, key := newTestGame(testConfig())

	playerA := testClient()
	playerB := testClient()
	joinedID, err := reg.join(key, playerA, "Ada", "1111", "Foxes")
	require.NoError(t, err)
	_, err = reg.join(key, playerB, "Ben", "2222", "Owls")
	require.NoError(t, err)

	received(organizer)
	received(playerB)

	reg.disconnect(playerA)

	for _, c := range []*client{organizer, playerB} {
		msgs := received(c)
		require.Len(t, msgs, 1)
		left, ok := msgs[0].(PlayerLeftMessage)
		require.True(t, ok)
		assert.Equal(t, joinedID, left.ID)
		assert.Equal(t, "Ada", left.Name)
	}

	s, ok := reg.getSession(key)
	require.True(t, ok)
	assert.False(t, s.audience[playerA])
	_, connected := s.conns[playerA.id]
	assert.False(t, connected)
}

func TestDisconnectSweepsEveryRole(t *testing.T) {
	reg := newRegistry(testConfig())

	// One connection organizes game A and plays in game B.
	dual := testClient()
	keyA, err := reg.createSession(dual, 1, "", testQuestions(), "")
	require.NoError(t, err)

	otherOrganizer := testClient()
	keyB, err := reg.createSession(otherOrganizer, 1, "", testQuestions(), "")
	require.NoError(t, err)
	_, err = reg.join(keyB, dual, "Ada", "1111", "Foxes")
	require.NoError(t, err)
	received(otherOrganizer)

	reg.disconnect(dual)

	// Game A dies with its organizer; game B survives with the player
	// record unhooked.
	_, ok := reg.getSession(keyA)
	assert.False(t, ok)

	s, ok := reg.getSession(keyB)
	require.True(t, ok)
	assert.False(t, s.audience[dual])
	_, connected := s.conns[dual.id]
	assert.False(t, connected)

	msgs := received(otherOrganizer)
	require.Len(t, msgs, 1)
	left, isLeft := msgs[0].(PlayerLeftMessage)
	require.True(t, isLeft)
	assert.Equal(t, "Ada", left.Name)

	// The surviving session still accepts and broadcasts joins.
	_, err = reg.join(keyB, testClient(), "Ben", "2222", "Owls")
	assert.NoError(t, err)
}

func TestSaveGame(t *testing.T) {
	reg, _, key := newTestGame(testConfig())

	assert.NoError(t, reg.saveGame(key))
	assert.ErrorIs(t, reg.saveGame("XXXX"), errGameNotFound)
}
