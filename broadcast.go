package main

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client is one live connection, organizer or player. The id is assigned
// at connect time and invalidated at disconnect.
type client struct {
	conn *websocket.Conn
	send chan any
	done chan struct{}
	id   string

	closeOnce sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan any, 16),
		done: make(chan struct{}),
		id:   randomID(),
	}
}

// shutdown marks the client dead, stopping its write pump. The send
// channel is never closed, so a late enqueue from any path is a harmless
// no-op rather than a panic. Safe to call repeatedly, from both the
// eviction and disconnect paths.
func (c *client) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// enqueue hands a message to the client's write pump without blocking.
// A dead client or a full send buffer refuses the message.
func (c *client) enqueue(msg any) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// notify delivers msg to the organizer and every other audience
// connection except origin. This dual addressing keeps the organizer's
// roster view and every player's peer-roster view consistent without a
// shared subscription model. Clients with a full send buffer are evicted.
func (s *session) notify(origin *client, msg any) {
	for cl := range s.audience {
		if cl == origin {
			continue
		}
		if !cl.enqueue(msg) {
			delete(s.audience, cl)
			cl.shutdown()
		}
	}
}

// notifyAll delivers msg to the entire audience, organizer and originator
// included. Termination notices always go to everyone.
func (s *session) notifyAll(msg any) {
	s.notify(nil, msg)
}

// notifyOrganizer delivers msg to the organizer connection only.
func (s *session) notifyOrganizer(msg any) {
	if s.organizer == nil {
		return
	}
	if !s.organizer.enqueue(msg) {
		delete(s.audience, s.organizer)
		s.organizer.shutdown()
	}
}

// notifyTeam delivers msg to every connected member of the named team.
func (s *session) notifyTeam(teamName string, msg any) {
	for cl := range s.audience {
		playerID, ok := s.conns[cl.id]
		if !ok {
			continue
		}
		p := s.players[playerID]
		if p == nil || p.teamName != teamName {
			continue
		}
		if !cl.enqueue(msg) {
			delete(s.audience, cl)
			cl.shutdown()
		}
	}
}
