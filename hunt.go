package main

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// serveHuntWS upgrades the connection and runs its read/write pumps. All
// game traffic, for organizers and players alike, flows over this single
// endpoint; the game key travels inside each message.
func serveHuntWS(cfg *Config, reg *Registry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		c := newClient(conn)

		logf(cfg, "GAMES: Connection %s opened from %s", c.id, realIP(r))

		go c.writePump()
		c.readPump(cfg, reg)
	}
}

func (c *client) readPump(cfg *Config, reg *Registry) {
	defer func() {
		reg.disconnect(c)
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		dispatch(cfg, reg, c, msg)
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}
}

// dispatch runs one request against the registry and acknowledges it.
// Failures are recovered here and surfaced as failed acks; none are fatal
// to the connection or the process.
func dispatch(cfg *Config, reg *Registry, c *client, msg ClientMessage) {
	switch msg.Type {
	case "createGame":
		// Sessions without questions are useless to every client, so
		// reject them at intake rather than in the registry.
		if len(msg.Questions) == 0 {
			c.ack(msg.RequestID, errNoQuestions, nil)
			return
		}
		key, err := reg.createSession(c, msg.TimelineDays, msg.Location, msg.Questions, msg.Password)
		c.ack(msg.RequestID, err, func(a *AckMessage) {
			a.GameKey = key
		})

	case "saveGame":
		c.ack(msg.RequestID, reg.saveGame(msg.GameKey), nil)

	case "deleteGame":
		c.ack(msg.RequestID, reg.deleteSession(msg.GameKey, c), nil)

	case "joinGame":
		if msg.PlayerName == "" || msg.RejoinCode == "" {
			c.ack(msg.RequestID, errMissingJoinInfo, nil)
			return
		}
		playerID, err := reg.join(msg.GameKey, c, msg.PlayerName, msg.RejoinCode, msg.TeamName)
		c.ack(msg.RequestID, err, func(a *AckMessage) {
			a.GameKey = msg.GameKey
			a.PlayerID = playerID
		})

	case "rejoinGame":
		playerID, playerName, err := reg.rejoin(msg.GameKey, c, msg.RejoinCode)
		c.ack(msg.RequestID, err, func(a *AckMessage) {
			a.GameKey = msg.GameKey
			a.PlayerID = playerID
			a.PlayerName = playerName
		})

	case "submitAnswer":
		err := reg.submitAnswer(msg.GameKey, msg.PlayerName, msg.TeamName, msg.QuestionID, msg.SubmittedTextAnswer, msg.SubmittedImageURI)
		c.ack(msg.RequestID, err, nil)

	case "reviewAnswer":
		c.ack(msg.RequestID, reg.reviewAnswer(msg.GameKey, c, msg.AnswerID, msg.Status), nil)

	case "saveScore":
		c.ack(msg.RequestID, reg.saveScore(msg.GameKey, c, msg.AnswerID, msg.Score), nil)

	default:
		// ignore unknown types
	}
}

// ack reports an operation outcome back on the requesting connection.
func (c *client) ack(requestID int, err error, fill func(*AckMessage)) {
	a := AckMessage{
		Type:      "ack",
		RequestID: requestID,
	}
	if err != nil {
		a.Message = err.Error()
	} else {
		a.Success = true
		if fill != nil {
			fill(&a)
		}
	}

	if !c.enqueue(a) {
		c.shutdown()
	}
}

// serveHuntPage renders a minimal share page for a game key, with the QR
// code for joining. The page renders whether or not the game still
// exists; absence is a normal outcome the client handles itself.
func serveHuntPage(cfg *Config, reg *Registry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameKey := strings.ToUpper(ps.ByName("gamekey"))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		body := "<h1>Game " + gameKey + "</h1>"
		if _, ok := reg.getSession(gameKey); ok {
			body += `<p>Scan to join:</p><img src="` + strings.TrimSuffix(r.URL.Path, "/") + `/qr" alt="QR code" width="320" height="320">`
		} else {
			body += "<p>This game has ended.</p>"
		}

		_, _ = io.WriteString(w, newPage("Huntbox", body))
	}
}

// qrHandler generates a PNG QR code for the current game URL.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameKey := ps.ByName("gamekey")
	if gameKey == "" {
		http.Error(w, "missing game key", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gamekey/qr; strip trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// registerHuntGame sets up routes so that:
//   - {prefix}/ws               → WebSocket carrying all game traffic
//   - {prefix}$path/:gamekey    → share page for a game
//   - {prefix}$path/:gamekey/qr → PNG QR code for that game URL
func registerHuntGame(cfg *Config, path string, mux *httprouter.Router) {
	reg := newRegistry(cfg)

	mux.GET(cfg.prefix+"/ws", serveHuntWS(cfg, reg))

	mux.GET(cfg.prefix+path+"/:gamekey", serveHuntPage(cfg, reg))

	mux.GET(cfg.prefix+path+"/:gamekey/qr", qrHandler)
}
