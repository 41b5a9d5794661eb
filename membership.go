package main

// join binds a connection to a brand-new player identity inside a
// session. Rejoin codes must be unique per session, not globally, so the
// same code may be reused across different games. The returned connection
// id is the player's stable handle until their next reconnect.
func (r *Registry) join(key string, c *client, playerName, rejoinCode, teamName string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		return "", errGameNotFound
	}

	if s.organizer == c {
		return "", errAlreadyJoined
	}
	if _, ok := s.conns[c.id]; ok {
		return "", errAlreadyJoined
	}

	for _, p := range s.players {
		if p.rejoinCode == rejoinCode {
			return "", errRejoinCodeTaken
		}
	}

	p := &player{
		id:         randomID(),
		connID:     c.id,
		name:       playerName,
		teamName:   teamName,
		rejoinCode: rejoinCode,
	}
	s.players[p.id] = p
	s.conns[c.id] = p.id
	s.audience[c] = true

	s.notify(c, PlayerJoinedMessage{
		Type: "playerJoined",
		ID:   c.id,
		Name: playerName,
	})

	logf(r.cfg, "GAMES: Player %q joined game %s", playerName, key)

	return c.id, nil
}

// rejoin re-keys an existing player identity onto a new connection. Any
// number of rejoins with a valid code re-point the same logical player;
// name, team, rejoin code, and score are untouched.
func (r *Registry) rejoin(key string, c *client, rejoinCode string) (string, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		return "", "", errGameNotFound
	}

	var p *player
	for _, candidate := range s.players {
		if candidate.rejoinCode == rejoinCode {
			p = candidate
			break
		}
	}
	if p == nil {
		return "", "", errInvalidRejoinCode
	}

	oldID := p.connID

	// If the previous connection is somehow still around, drop it from
	// the audience so it stops receiving this player's broadcasts.
	for cl := range s.audience {
		if cl.id == oldID {
			delete(s.audience, cl)
			cl.shutdown()
			break
		}
	}
	delete(s.conns, oldID)

	p.connID = c.id
	s.conns[c.id] = p.id
	s.audience[c] = true

	// Both identifiers travel in the event so receivers can reconcile
	// any locally cached membership list.
	s.notify(c, PlayerRejoinedMessage{
		Type:  "playerRejoined",
		ID:    c.id,
		Name:  p.name,
		OldID: oldID,
	})

	logf(r.cfg, "GAMES: Player %q rejoined game %s", p.name, key)

	return c.id, p.name, nil
}
