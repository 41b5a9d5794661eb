// Huntbox session coordinator
//
// One session per organizer connection, identified by a short shareable
// game key. Players join with the key plus a personal rejoin code, which
// lets them reclaim their identity (name, team, score) after a dropped
// connection. The organizer reviews and scores submitted answers.
//
// Sessions are volatile: they live exactly as long as the organizer's
// connection, and are deleted when the organizer leaves or asks for it.

package main

import (
	"sync"
)

type sessionStatus string

const (
	statusWaiting  sessionStatus = "waiting"
	statusPlaying  sessionStatus = "playing"
	statusFinished sessionStatus = "finished"
)

// Question is part of the createGame payload. Insertion order is the
// canonical question order; category is only a display grouping key.
type Question struct {
	ID             int    `json:"id"`
	Text           string `json:"text"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Caption        string `json:"caption,omitempty"`
	Category       string `json:"category,omitempty"`
	ExpectedAnswer string `json:"expectedAnswer,omitempty"`
}

// player is a participant's durable identity within one session. The
// stable id is assigned at first join and never changes; connID is
// re-pointed on every successful rejoin.
type player struct {
	id         string
	connID     string
	name       string
	teamName   string
	rejoinCode string
	score      int
}

const (
	answerPending   = "pending"
	answerCorrect   = "correct"
	answerIncorrect = "incorrect"
)

type answer struct {
	id             string
	questionID     int
	questionText   string
	expectedAnswer string
	playerName     string
	teamName       string
	text           string
	imageURI       string
	status         string
	score          int // 0 until scored, then 1-5
}

type session struct {
	key          string
	organizer    *client
	status       sessionStatus
	timelineDays int
	location     string
	questions    []Question
	currentIndex int

	players  map[string]*player // stable player id -> player
	conns    map[string]string  // connection id -> stable player id
	answers  []*answer          // insertion order
	audience map[*client]bool   // every live connection, organizer included
}

// Registry maps game keys to live sessions. It is constructed per server
// (no package-level state) and injected into every handler. One mutex
// serializes all session mutations, so each operation runs to completion
// before the next is processed.
type Registry struct {
	cfg *Config

	mu       sync.Mutex
	sessions map[string]*session
}

func newRegistry(cfg *Config) *Registry {
	return &Registry{
		cfg:      cfg,
		sessions: make(map[string]*session),
	}
}

// createSession allocates a key, stores a new waiting session, and
// registers c as its organizer. Question ids are filled in from insertion
// order when the client did not provide them.
func (r *Registry) createSession(c *client, timelineDays int, location string, questions []Question, password string) (string, error) {
	if r.cfg.createPassword != "" && password != r.cfg.createPassword {
		return "", errBadPassword
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	qs := make([]Question, len(questions))
	copy(qs, questions)
	for i := range qs {
		if qs[i].ID == 0 {
			qs[i].ID = i + 1
		}
	}

	s := &session{
		key:          newGameKey(r.sessions),
		organizer:    c,
		status:       statusWaiting,
		timelineDays: timelineDays,
		location:     location,
		questions:    qs,
		players:      make(map[string]*player),
		conns:        make(map[string]string),
		audience:     map[*client]bool{c: true},
	}
	r.sessions[s.key] = s

	logf(r.cfg, "GAMES: Created game %s with %d questions", s.key, len(qs))

	return s.key, nil
}

// saveGame acknowledges a save request. State is in-memory by design, so
// there is nothing to persist; the ack exists for client symmetry.
func (r *Registry) saveGame(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[key]; !ok {
		return errGameNotFound
	}

	logf(r.cfg, "GAMES: Game %s saved (in-memory only)", key)

	return nil
}

// deleteSession removes a session on the organizer's explicit request.
// The termination notice goes to the entire audience, organizer included.
func (r *Registry) deleteSession(key string, c *client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		return errGameNotFound
	}
	if s.organizer != c {
		return errNotAuthorized
	}

	s.status = statusFinished
	s.notifyAll(GameEndedMessage{
		Type:    "gameEnded",
		GameKey: key,
		Message: "Organizer deleted the game.",
	})
	delete(r.sessions, key)

	logf(r.cfg, "GAMES: Game %s deleted by organizer", key)

	return nil
}

// getSession looks up a session by key. Absence is a normal outcome, not
// an error. The returned session must only be inspected, never mutated.
func (r *Registry) getSession(key string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	return s, ok
}

// disconnect reacts to a closed connection, sweeping every session that
// references it: a connection may be organizer of one game and player in
// another. Within one session the organizer check takes precedence —
// losing the organizer ends the whole session — and a single connection
// is never both organizer and player in the same session.
func (r *Registry) disconnect(c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, s := range r.sessions {
		if s.organizer == c {
			s.status = statusFinished
			s.notifyAll(GameEndedMessage{
				Type:    "gameEnded",
				GameKey: key,
				Message: "Organizer disconnected",
			})
			delete(r.sessions, key)

			logf(r.cfg, "GAMES: Game %s ended, organizer disconnected", key)

			continue
		}

		if playerID, ok := s.conns[c.id]; ok {
			p := s.players[playerID]

			// The player record itself stays behind, keyed by its
			// stable id, so a later rejoin with the same rejoin code
			// reclaims the identity.
			delete(s.conns, c.id)
			delete(s.audience, c)

			s.notify(c, PlayerLeftMessage{
				Type: "playerLeft",
				ID:   c.id,
				Name: p.name,
			})

			logf(r.cfg, "GAMES: Player %q disconnected from game %s", p.name, key)
		}
	}

	c.shutdown()
}
