package main

// Shared fixtures for the game tests. Connections are represented by bare
// clients with buffered channels; no websocket is involved.

func testConfig() *Config {
	return &Config{}
}

func testClient() *client {
	return &client{
		send: make(chan any, 16),
		done: make(chan struct{}),
		id:   randomID(),
	}
}

// received drains and returns everything queued on the client so far.
func received(c *client) []any {
	var out []any
	for {
		select {
		case m, ok := <-c.send:
			if !ok {
				return out
			}
			out = append(out, m)
		default:
			return out
		}
	}
}

func testQuestions() []Question {
	return []Question{
		{Text: "Find the oldest gravestone", Category: "history", ExpectedAnswer: "1873"},
		{Text: "Photograph the red door", Category: "landmarks"},
	}
}

// newTestGame creates a registry with one session and returns the
// registry, the organizer's client, and the game key.
func newTestGame(cfg *Config) (*Registry, *client, string) {
	reg := newRegistry(cfg)
	organizer := testClient()

	key, err := reg.createSession(organizer, 3, "Riverside Park", testQuestions(), "")
	if err != nil {
		panic(err)
	}

	return reg, organizer, key
}
